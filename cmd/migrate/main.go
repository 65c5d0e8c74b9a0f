package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/storeadmin-service/internal/config"
	"github.com/light-bringer/storeadmin-service/internal/pkg/ddl"
	"github.com/light-bringer/storeadmin-service/internal/pkg/logging"
)

type target struct {
	project  string
	instance string
	database string
}

func (t target) instancePath() string {
	return fmt.Sprintf("projects/%s/instances/%s", t.project, t.instance)
}

func (t target) databasePath() string {
	return fmt.Sprintf("%s/databases/%s", t.instancePath(), t.database)
}

func main() {
	var (
		tgt target
		dir string
	)
	flag.StringVar(&tgt.project, "project", config.GetEnvOrDefault("SPANNER_PROJECT_ID", "test-project"), "GCP project ID")
	flag.StringVar(&tgt.instance, "instance", config.GetEnvOrDefault("SPANNER_INSTANCE_ID", "dev-instance"), "Spanner instance ID")
	flag.StringVar(&tgt.database, "database", config.GetEnvOrDefault("SPANNER_DATABASE_ID", "store-admin-db"), "Spanner database ID")
	flag.StringVar(&dir, "migrations", "migrations", "directory containing migration SQL files")
	flag.Parse()

	logger := logging.New(config.GetEnvOrDefault("LOG_LEVEL", "info"))
	if host := os.Getenv("SPANNER_EMULATOR_HOST"); host != "" {
		logger.Info("using spanner emulator", "host", host)
	}

	if err := run(context.Background(), logger, tgt, dir); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
	logger.Info("migrations completed")
}

func run(ctx context.Context, logger *slog.Logger, tgt target, dir string) error {
	migrations, err := ddl.Load(dir)
	if err != nil {
		return err
	}

	if err := ensureInstance(ctx, logger, tgt); err != nil {
		return fmt.Errorf("failed to ensure instance: %w", err)
	}

	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create database admin client: %w", err)
	}
	defer adminClient.Close()

	if err := ensureDatabase(ctx, logger, adminClient, tgt); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}

	for _, m := range migrations {
		if len(m.Statements) == 0 {
			continue
		}
		logger.Info("applying migration", "file", m.Name, "statements", len(m.Statements))

		op, err := adminClient.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   tgt.databasePath(),
			Statements: m.Statements,
		})
		if err != nil {
			return fmt.Errorf("failed to start DDL update for %s: %w", m.Name, err)
		}
		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to apply %s: %w", m.Name, err)
		}
	}
	return nil
}

// ensureInstance creates the instance on the emulator config when missing.
func ensureInstance(ctx context.Context, logger *slog.Logger, tgt target) error {
	client, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer client.Close()

	_, err = client.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: tgt.instancePath()})
	switch status.Code(err) {
	case codes.OK:
		return nil
	case codes.NotFound:
	default:
		logger.Warn("unexpected error checking instance", "error", err)
		return nil
	}

	logger.Info("creating instance", "instance", tgt.instance)
	op, err := client.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     "projects/" + tgt.project,
		InstanceId: tgt.instance,
		Instance: &instancepb.Instance{
			Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", tgt.project),
			DisplayName: "Store Admin Development",
			NodeCount:   1,
		},
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create instance: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		logger.Warn("instance creation did not finish cleanly", "error", err)
	}
	return nil
}

func ensureDatabase(ctx context.Context, logger *slog.Logger, client *database.DatabaseAdminClient, tgt target) error {
	_, err := client.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: tgt.databasePath()})
	switch status.Code(err) {
	case codes.OK:
		return nil
	case codes.NotFound:
	default:
		if os.Getenv("SPANNER_EMULATOR_HOST") != "" {
			logger.Warn("proceeding despite database check error", "error", err)
			return nil
		}
		return fmt.Errorf("failed to check database: %w", err)
	}

	logger.Info("creating database", "database", tgt.database)
	op, err := client.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          tgt.instancePath(),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", tgt.database),
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for database creation: %w", err)
	}
	return nil
}
