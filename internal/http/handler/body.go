package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"biztime/internal/apperr"
	"biztime/internal/validation"
)

// bindBody decodes the request body into dst after checking that every field in
// required is present and non-blank. An empty body counts as an object with no
// fields.
func bindBody(c *fiber.Ctx, dst any, required ...string) error {
	raw := c.Body()
	decode := c.App().Config().JSONDecoder

	body := map[string]any{}
	if len(raw) > 0 {
		if err := decode(raw, &body); err != nil {
			return bodyError(err)
		}
	}

	if err := validation.Required(body, required...); err != nil {
		return err
	}

	if len(raw) > 0 {
		if err := decode(raw, dst); err != nil {
			return bodyError(err)
		}
	}
	return nil
}

// bodyError maps a decode failure to a 400. Syntax errors keep the decoder's
// message, which names only the offending position. Type mismatches get a fixed
// message so Go type names never reach the client.
func bodyError(err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return apperr.New(syntaxErr.Error(), http.StatusBadRequest)
	}
	return apperr.InvalidInput()
}
