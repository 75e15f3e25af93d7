package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"biztime/internal/apperr"
	"biztime/internal/telemetry"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	Error errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// writeError writes a standardized JSON error response.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{
		Error: errorEnvelope{Message: message, Status: status},
	})
}

// ErrorHandler returns a Fiber global error handler that renders every error a
// handler returns as {"error":{"message","status"}}.
//
// *apperr.Error and *fiber.Error carry their own status. Anything else is
// unclassified: it is rendered as a 500 with its own message, logged with the
// Postgres SQLSTATE when there is one, and reported to Sentry.
func ErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		ctx := c.UserContext()

		var ae *apperr.Error
		if errors.As(err, &ae) {
			log.DebugContext(ctx, "request rejected", "status", ae.Status, "error", ae.Message)
			return writeError(c, ae.Status, ae.Message)
		}
		var fe *fiber.Error
		if errors.As(err, &fe) {
			log.DebugContext(ctx, "request rejected", "status", fe.Code, "error", fe.Message)
			return writeError(c, fe.Code, fe.Message)
		}

		attrs := []any{"method", c.Method(), "path", c.Path(), "error", err.Error()}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			attrs = append(attrs,
				"sqlstate", pgErr.Code,
				"constraint", pgErr.ConstraintName,
				"integrity_violation", pgerrcode.IsIntegrityConstraintViolation(pgErr.Code),
			)
		}
		log.ErrorContext(ctx, "unhandled error", attrs...)
		telemetry.CaptureError(ctx, err, map[string]string{
			"method": c.Method(),
			"route":  c.Route().Path,
		})

		return writeError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// NotFound is the catch-all for requests that match no route.
func NotFound() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return apperr.RouteNotFound
	}
}
