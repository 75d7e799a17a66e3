package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/crm-api/internal/infrastructure/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migraciones de base de datos",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Aplica todas las migraciones pendientes",
	Args:  cobra.NoArgs,
	RunE:  runMigrateUp,
}

var migrateDownCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Revierte migraciones (1 por defecto)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMigrateDown,
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Muestra la versión aplicada",
	Args:  cobra.NoArgs,
	RunE:  runMigrateVersion,
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
}

func openMigrator() (*postgres.Migrator, error) {
	cfg, _, err := bootstrap()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return postgres.NewMigrator(cfg.DB.ConnectionString())
}

func runMigrateUp(cmd *cobra.Command, _ []string) error {
	m, err := openMigrator()
	if err != nil {
		return err
	}
	defer m.Close()

	applied, err := m.Up()
	if err != nil {
		return err
	}
	if !applied {
		cmd.Println("migrate up: sin cambios")
		return nil
	}
	cmd.Println("migrate up: ok")
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	steps, err := parseSteps(args)
	if err != nil {
		return err
	}
	m, err := openMigrator()
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(steps); err != nil {
		return err
	}
	cmd.Printf("migrate down: %d revertida(s)\n", steps)
	return nil
}

func runMigrateVersion(cmd *cobra.Command, _ []string) error {
	m, err := openMigrator()
	if err != nil {
		return err
	}
	defer m.Close()

	v, dirty, err := m.Version()
	if err != nil {
		return err
	}
	cmd.Printf("versión %d (dirty=%t)\n", v, dirty)
	return nil
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("steps debe ser un entero positivo: %q", args[0])
	}
	return n, nil
}
