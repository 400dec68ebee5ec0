package config

import "errors"

var (
	// ErrServerKeyRequired is returned when no shared server key was
	// configured. The key gates the whole API; without one the server would
	// accept nobody.
	ErrServerKeyRequired = errors.New("server key is required")

	// ErrInvalidStorageConfigs is returned when the configured storage type
	// is not one of the supported backends.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs provided")
)
