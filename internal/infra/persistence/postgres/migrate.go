package postgres

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"market/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationsDir = "migrations"

// Migrate applies every pending embedded migration.
func Migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	goose.SetBaseFS(embedMigrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "goose set dialect")
	}

	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return errors.Wrap(err, "goose up")
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return errors.Wrap(err, "goose version")
	}

	logger.InfoContext(ctx, "Database migrations applied", slog.Int64("version", version))

	return nil
}
