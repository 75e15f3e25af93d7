// Package cli holds the biztime command tree: serve runs the HTTP API, migrate
// manages the schema.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"biztime/internal/config"
	"biztime/internal/logger"
)

// Version is reported by --version and sent to Sentry as the release.
var Version = "dev"

// NewRootCommand builds the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "biztime",
		Short: "BizTime - companies and invoices over a REST API",
		Long: `BizTime serves CRUD routes for companies and their invoices, backed by PostgreSQL.

Configuration is read from the environment (a .env file is loaded when present).`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCommand(), newMigrateCommand())
	return root
}

// bootstrap loads configuration and builds the process logger.
func bootstrap() (*config.AppConfig, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.Location())
	slog.SetDefault(log)
	return cfg, log, nil
}
