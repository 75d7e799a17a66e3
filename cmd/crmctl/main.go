package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/crm-api/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "crmctl:", err)
		os.Exit(1)
	}
}
