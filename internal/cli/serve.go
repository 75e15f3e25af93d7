package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"biztime/internal/config"
	"biztime/internal/database"
	"biztime/internal/database/migration"
	"biztime/internal/http/handler"
	"biztime/internal/http/middleware"
	"biztime/internal/otel"
	"biztime/internal/repository/postgres"
	"biztime/internal/service"
	"biztime/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API on PORT.

Pending migrations are applied first unless DB_AUTO_MIGRATE=false.
SIGINT or SIGTERM drains in-flight requests before exiting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx)
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	if err := telemetry.SetupSentry(telemetry.SentryOptions{
		DSN:         cfg.SentryDSN,
		Environment: cfg.Env,
		Release:     "biztime@" + Version,
	}); err != nil {
		return err
	}
	defer telemetry.SentryFlush()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Error("tracing_shutdown_failed", "error", err.Error())
		}
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.Up(ctx, db, log); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app, err := newApp(cfg, log, db, reg)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		addr := listenAddr(cfg)
		log.Info("server_listening", "addr", addr, "env", cfg.Env)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	log.Info("server_shutting_down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// listenAddr joins APP_HOST and PORT. An empty host listens on every interface.
func listenAddr(cfg *config.AppConfig) string {
	return net.JoinHostPort(cfg.AppHost, cfg.Port)
}

// newApp assembles the fiber app: middleware chain, repositories, services and routes.
//
// otelfiber renders handler errors itself (through ErrorHandler) and returns nil,
// so the request logger and metrics sit inside it to see the original error.
// recover is innermost so a panic becomes an ordinary 500 for everything above.
func newApp(cfg *config.AppConfig, log *slog.Logger, db *sql.DB, reg *prometheus.Registry) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:               "biztime",
		ErrorHandler:          handler.ErrorHandler(log),
		BodyLimit:             cfg.BodyLimitBytes,
		DisableStartupMessage: true,
	})

	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		switch c.Path() {
		case "/metrics", "/healthz":
			return true
		}
		return false
	})))
	app.Use(middleware.Logger(log))
	app.Use(prom.Handler())
	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.Env != "production"}))

	companyRepo := postgres.NewCompanyPostgres(db)
	invoiceRepo := postgres.NewInvoicePostgres(db)

	handler.RegisterRoutes(app, db, handler.Services{
		Companies: service.NewCompanyService(companyRepo, invoiceRepo),
		Invoices:  service.NewInvoiceService(invoiceRepo),
	}, reg)

	return app, nil
}
