package repo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrProductNotFound is returned when a product does not exist under the
// caller's tenant. An existing product owned by another tenant yields the
// same error so cross-tenant probing learns nothing.
var ErrProductNotFound = errors.New("product not found")

// ErrNotificationNotFound mirrors ErrProductNotFound for notifications.
var ErrNotificationNotFound = errors.New("notification not found")

// FieldError describes a single invalid input field.
type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ValidationErrors is the error returned for malformed or out-of-range
// input. It is never retried and maps to a 400 at the HTTP layer.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = fmt.Sprintf("%s: %s", e.Field, e.Description)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
