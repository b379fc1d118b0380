// Command bootstrap_admin provisions the initial admin account out of band.
// It talks to the credential store directly and is never exposed over HTTP:
// registration through the API always produces regular users, so the first
// admin (and any later promotion) has to come from here.
//
// The target database must already carry the schema; the server applies
// migrations on startup.
//
// Usage:
//
//	bootstrap_admin -username admin [-password s3cret]
//
// When -password is omitted and the account does not exist yet, a random
// password is generated and printed once. Promoting an existing user never
// touches their password.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dermengr/Currency/internal/core/services"
	"github.com/dermengr/Currency/internal/platform/config"
	"github.com/dermengr/Currency/internal/repositories/database/pgsql"
	"github.com/dermengr/Currency/internal/utils"
	"github.com/dermengr/Currency/pkg/database"
)

func main() {
	username := flag.String("username", "admin", "username of the admin account to create or promote")
	password := flag.String("password", "", "password for a newly created account (generated when empty; ignored for existing accounts)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	adminPassword := *password
	generated := false
	if adminPassword == "" {
		adminPassword, err = utils.GenerateRandomPassword(16)
		if err != nil {
			logger.Error("Failed to generate password", slog.String("error", err.Error()))
			os.Exit(1)
		}
		generated = true
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	repoProvider := pgsql.NewRepositoryProvider(dbPool)
	userService := services.NewUserService(repoProvider.UserRepo)

	admin, created, err := userService.EnsureAdminUser(ctx, *username, adminPassword)
	if err != nil {
		logger.Error("Failed to provision admin", slog.String("username", *username), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if created {
		logger.Info("Admin account created", slog.String("username", admin.Username), slog.String("user_id", admin.UserID))
		if generated {
			// Printed exactly once; only the bcrypt hash is stored.
			fmt.Printf("Generated admin password: %s\n", adminPassword)
		}
		return
	}

	logger.Info("Existing account holds the admin role", slog.String("username", admin.Username), slog.String("user_id", admin.UserID))
	if generated {
		logger.Info("Account already existed; the generated password was not applied")
	}
}
