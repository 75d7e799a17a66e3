package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/crm-api/internal/application/identity"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/internal/infrastructure/postgres"
	"github.com/jhoicas/crm-api/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Datos iniciales",
}

var seedRolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Crea los roles base que falten",
	Args:  cobra.NoArgs,
	RunE:  runSeedRoles,
}

var seedAdminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Crea (o promueve) el usuario administrador de ADMIN_EMAIL / ADMIN_PASSWORD",
	Args:  cobra.NoArgs,
	RunE:  runSeedAdmin,
}

var adminEmail, adminPassword string

func init() {
	seedAdminCmd.Flags().StringVar(&adminEmail, "email", "", "email del administrador (por defecto ADMIN_EMAIL)")
	seedAdminCmd.Flags().StringVar(&adminPassword, "password", "", "contraseña (por defecto ADMIN_PASSWORD)")
	seedCmd.AddCommand(seedRolesCmd, seedAdminCmd)
}

// withUnitOfWork abre el pool, ejecuta fn y lo cierra.
func withUnitOfWork(ctx context.Context, fn func(uow repository.UnitOfWork, log *logger.Logger) error) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()
	return fn(postgres.NewUnitOfWork(pool), log)
}

func runSeedRoles(cmd *cobra.Command, _ []string) error {
	return withUnitOfWork(cmd.Context(), func(uow repository.UnitOfWork, log *logger.Logger) error {
		created, err := SeedRoles(cmd.Context(), uow)
		if err != nil {
			return err
		}
		log.Info().Strs("created", created).Msg("roles sembrados")
		return nil
	})
}

func runSeedAdmin(cmd *cobra.Command, _ []string) error {
	cfg, _, err := bootstrap()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	email, password := adminEmail, adminPassword
	if email == "" {
		email = cfg.Admin.Email
	}
	if password == "" {
		password = cfg.Admin.Password
	}
	return withUnitOfWork(cmd.Context(), func(uow repository.UnitOfWork, log *logger.Logger) error {
		created, err := EnsureAdmin(cmd.Context(), uow, email, password)
		if err != nil {
			return err
		}
		log.Info().Str("email", email).Bool("created", created).Msg("administrador listo")
		return nil
	})
}

// SeedRoles crea los roles base que falten; devuelve los creados.
func SeedRoles(ctx context.Context, uow repository.UnitOfWork) ([]string, error) {
	var created []string
	err := uow.Run(ctx, func(r repository.Repos) error {
		var err error
		created, err = identity.New(r).EnsureRoles(ctx, entity.SeedRoles...)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("seed roles: %w", err)
	}
	return created, nil
}

// EnsureAdmin crea el usuario con rol Admin o, si el email ya existe, le agrega el rol.
// created indica si el usuario es nuevo.
func EnsureAdmin(ctx context.Context, uow repository.UnitOfWork, email, password string) (created bool, err error) {
	if email == "" || password == "" {
		return false, errors.New("seed admin: email y contraseña son obligatorios")
	}
	err = uow.Run(ctx, func(r repository.Repos) error {
		svc := identity.New(r)
		if _, err := svc.EnsureRoles(ctx, entity.SeedRoles...); err != nil {
			return err
		}
		u, err := svc.FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		if u == nil {
			u = &entity.User{Email: email, FirstName: "Admin"}
			if err := svc.CreateUser(ctx, u, password); err != nil {
				return identity.AsValidation(err)
			}
			created = true
		}
		return svc.AddToRole(ctx, u, entity.RoleAdmin)
	})
	if err != nil {
		return false, fmt.Errorf("seed admin: %w", err)
	}
	return created, nil
}
