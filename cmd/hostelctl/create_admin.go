package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hostel/backend/internal/app"
	appidentity "github.com/hostel/backend/internal/application/identity"
	"github.com/hostel/backend/internal/infrastructure/auth"
	"github.com/hostel/backend/internal/infrastructure/logger"
	"github.com/hostel/backend/internal/infrastructure/persistence"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const adminPasswordEnv = "HOSTEL_ADMIN_PASSWORD"

func newCreateAdminCmd() *cobra.Command {
	var input appidentity.CreateAdminInput

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a staff account, or promote an existing user",
		Long: "Creates a staff account that can use the administrator API. " +
			"If the username exists the user is promoted instead. The password " +
			"may be passed in " + adminPasswordEnv + " to keep it out of shell history.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if input.Password == "" {
				input.Password = os.Getenv(adminPasswordEnv)
			}
			if input.Password == "" {
				return errors.New("a password is required (--password or " + adminPasswordEnv + ")")
			}

			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync(log) }()

			db, err := app.OpenDatabase(cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			authService := appidentity.NewAuthService(
				persistence.NewGormUserRepository(db.DB),
				auth.NewJWTService(cfg.JWT),
				auth.NewInMemoryTokenBlacklist(),
				appidentity.DefaultAuthServiceConfig(),
				log,
			)

			result, err := authService.CreateAdmin(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("failed to create admin: %w", err)
			}
			if result.Created {
				fmt.Fprintf(cmd.OutOrStdout(), "Admin %q created\n", result.User.Username)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Admin %q already existed and is a staff account\n", result.User.Username)
			}
			log.Debug("create-admin finished", zap.Bool("created", result.Created))
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Username, "username", "", "login name")
	cmd.Flags().StringVar(&input.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&input.Password, "password", "", "password (or set "+adminPasswordEnv+")")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}
