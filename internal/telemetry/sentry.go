// Package telemetry wires optional error reporting to Sentry.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"biztime/internal/logger"
)

// SentryOptions configures SetupSentry.
type SentryOptions struct {
	DSN         string
	Environment string
	Release     string
}

// SetupSentry initializes the Sentry SDK. No-ops if DSN is empty.
func SetupSentry(opts SentryOptions) error {
	if opts.DSN == "" {
		return nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         opts.DSN,
		Environment: opts.Environment,
		Release:     opts.Release,
	}); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}

// SentryFlush flushes buffered events before process exit.
func SentryFlush() {
	sentry.Flush(2 * time.Second)
}

// CaptureError reports err on a hub scoped to this call, tagged with tags and
// the request id found in ctx. It does nothing when Sentry is not configured.
func CaptureError(ctx context.Context, err error, tags map[string]string) {
	hub := sentry.CurrentHub()
	if hub.Client() == nil {
		return
	}
	hub = hub.Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		if id := logger.RequestID(ctx); id != "" {
			scope.SetTag("request_id", id)
		}
	})
	hub.CaptureException(err)
}
