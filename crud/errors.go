package crud

import "errors"

// ErrNotFound is returned by a Store when no record matches the id.
var ErrNotFound = errors.New("record not found")

// FieldError is a single failed validation check. Schemas return these
// in declaration order so the first failing field drives the response
// message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
