package main

import (
	"context"
	"flag"
	"os"

	"github.com/light-bringer/storeadmin-service/internal/app/auth/domain"
	"github.com/light-bringer/storeadmin-service/internal/app/auth/usecases/ensure_user"
	"github.com/light-bringer/storeadmin-service/internal/config"
	"github.com/light-bringer/storeadmin-service/internal/pkg/logging"
	"github.com/light-bringer/storeadmin-service/internal/services"
)

func main() {
	var (
		email    = flag.String("email", "admin@example.com", "admin email")
		password = flag.String("password", "admin123", "admin password")
		name     = flag.String("name", "Admin", "admin display name")
		reset    = flag.Bool("reset", false, "overwrite the password of an existing user")
	)
	flag.Parse()

	cfg, err := config.Load()
	logger := logging.New(cfg.LogLevel)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	serviceOpts, err := services.NewServiceOptions(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize service", "error", err)
		os.Exit(1)
	}
	defer serviceOpts.Close()

	outcome, err := serviceOpts.EnsureUser.Execute(ctx, &ensure_user.Request{
		Email:         *email,
		Password:      *password,
		Name:          *name,
		Role:          domain.RoleAdmin,
		ResetPassword: *reset,
	})
	if err != nil {
		logger.Error("failed to seed admin user", "email", *email, "error", err)
		serviceOpts.Close()
		os.Exit(1)
	}
	logger.Info("admin user ready", "email", *email, "outcome", string(outcome))
}
