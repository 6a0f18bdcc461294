// Package common defines shared sentinel errors used across the layers of
// the palette service. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Registration errors.
	ErrorLoginAlreadyExists = errors.New("login already exists")

	// Token lifecycle errors. These stay internal to the token codec and the
	// auth middleware; HTTP clients only ever see a generic unauthorized response.
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)
