// Package validation holds the two checks every route shares: required body
// fields before a write, and row existence after a query.
package validation

import "biztime/internal/apperr"

// RowCounter is satisfied by any query result that knows how many rows it
// returned or affected.
type RowCounter interface {
	RowCount() int64
}

// Required fails with apperr.BadInput when any of fields is missing from body,
// is JSON null, or is the empty string. Types and ranges are not checked.
func Required(body map[string]any, fields ...string) error {
	for _, f := range fields {
		v, ok := body[f]
		if !ok || v == nil {
			return apperr.BadInput()
		}
		if s, isString := v.(string); isString && s == "" {
			return apperr.BadInput()
		}
	}
	return nil
}

// Exists fails with apperr.NotFound(label) when res holds zero rows. A zero-row
// SELECT, UPDATE ... RETURNING and DELETE all look the same here.
func Exists(res RowCounter, label string) error {
	if res.RowCount() == 0 {
		return apperr.NotFound(label)
	}
	return nil
}
