package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // pgx5 database driver
	_ "github.com/golang-migrate/migrate/v4/source/file"     // file:// source driver

	"github.com/asmit/placenet/internal/config"
	"github.com/asmit/placenet/internal/pkg/logger"
)

// RunMigrations applies all pending SQL migrations from migrationsDir.
func RunMigrations(cfg *config.Config, migrationsDir string) error {
	m, err := migrate.New("file://"+migrationsDir, cfg.GetMigrationConnectionString())
	if err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info().Msg("Database schema is up to date")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info().Msg("Database migrations applied")
	return nil
}
