package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"biztime/internal/apperr"
)

// responseStatus reports the status a request will be answered with. When the
// handler chain returned an error the ErrorHandler has not written the
// response yet, so the status is derived from the error itself.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return apperr.StatusOf(err)
}
