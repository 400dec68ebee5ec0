package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the key value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyServerKey is returned when the "Authorization" header contains
	// the expected scheme prefix but the key value itself is an empty string.
	ErrEmptyServerKey = errors.New("empty key in `Authorization` header")

	// ErrWrongServerKey is returned when the presented key does not match the
	// configured server key.
	ErrWrongServerKey = errors.New("invalid server key")
)
