// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"errors"
	"fmt"
)

// ErrUnsupportedMediaType is returned from Decode() if the provided
// Content-Type: is not a JSON type.
type ErrUnsupportedMediaType struct {
	Type string
}

func (e ErrUnsupportedMediaType) Error() string {
	return fmt.Sprintf("Unsupported media type %q", e.Type)
}

// ErrorResponse is the service's structured error body.  Failing
// calls usually return one of these alongside the HTTP status.
type ErrorResponse struct {
	Message string `json:"message"`
	TypeKey string `json:"typeKey,omitempty"`
}

// ToError converts an error response to a plain error carrying the
// service's message, qualified by the type key when one was sent.
func (e *ErrorResponse) ToError() error {
	if e.TypeKey != "" {
		return fmt.Errorf("%s: %s", e.TypeKey, e.Message)
	}
	return errors.New(e.Message)
}
