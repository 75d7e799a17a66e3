// Package cli comandos de operación de crmctl: migraciones y datos iniciales.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/crm-api/pkg/config"
	"github.com/jhoicas/crm-api/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "crmctl",
	Short:         "Operación del CRM: migraciones, roles y usuario administrador",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

// bootstrap configuración y logger comunes a todos los comandos.
func bootstrap() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	return cfg, log, nil
}
