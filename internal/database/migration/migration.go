// Package migration applies the embedded schema migrations with goose.
package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"time"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

func newProvider(db *sql.DB) (*goose.Provider, error) {
	fsys, err := fs.Sub(embedMigrations, "sql")
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(goose.DialectPostgres, db, fsys, goose.WithDisableGlobalRegistry(true))
}

// Up applies every pending migration and logs one record per applied step.
// The provider is not closed: it would close db, which the caller owns.
func Up(ctx context.Context, db *sql.DB, log *slog.Logger) error {
	start := time.Now()
	log = log.With("component", "database")

	p, err := newProvider(db)
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	log.InfoContext(ctx, "db_migration_start")
	results, err := p.Up(ctx)
	for _, r := range results {
		attrs := []any{
			"migration_step", path.Base(r.Source.Path),
			"version", r.Source.Version,
			"step_duration_ms", r.Duration.Milliseconds(),
		}
		if r.Error != nil {
			log.ErrorContext(ctx, "db_migration_step_failed", append(attrs, "error", r.Error.Error())...)
			continue
		}
		log.InfoContext(ctx, "db_migration_step", attrs...)
	}
	if err != nil {
		log.ErrorContext(ctx, "db_migration_failed",
			"error", err.Error(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("migrate up: %w", err)
	}

	log.InfoContext(ctx, "db_migration_complete",
		"applied", len(results),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// StepStatus is the state of one migration file against the database.
type StepStatus struct {
	Version   int64
	Name      string
	Applied   bool
	AppliedAt time.Time
}

// Status reports every known migration and whether it has been applied.
func Status(ctx context.Context, db *sql.DB) ([]StepStatus, error) {
	p, err := newProvider(db)
	if err != nil {
		return nil, fmt.Errorf("load migrations: %w", err)
	}
	statuses, err := p.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("migration status: %w", err)
	}

	out := make([]StepStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, StepStatus{
			Version:   s.Source.Version,
			Name:      path.Base(s.Source.Path),
			Applied:   s.State == goose.StateApplied,
			AppliedAt: s.AppliedAt,
		})
	}
	return out, nil
}
