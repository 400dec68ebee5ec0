package config

import (
	"time"
)

// Supported entity store backends.
const (
	StorageTypeJSON   = "json"
	StorageTypeSQLite = "sqlite"
)

// StructuredConfig is the top-level configuration container for the
// papyrusdb server. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the application-level settings, most importantly the shared
	// server key that gates the whole API.
	App App `envPrefix:"APP_"`

	// Server holds network address, timeout, and CORS settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Storage selects and configures the entity store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// ServerKey is the single shared secret every device must present as a
	// bearer token. It is loaded once at startup; there is no runtime
	// rotation path. Must be kept confidential.
	// Env: APP_SERVER_KEY
	ServerKey string `env:"SERVER_KEY"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORS enables cross-origin requests. Required whenever the client app
	// is served from a different origin than this server; without it only
	// same-origin requests get through.
	// Env: SERVER_CORS
	CORS bool `env:"CORS"`
}

// Storage selects the entity store backend and its settings.
type Storage struct {
	// Type is the backend kind: "json" (default) or "sqlite".
	// Env: STORAGE_TYPE
	Type string `env:"TYPE"`

	// JSON holds the file-backed store settings.
	JSON JSONStore `envPrefix:"JSON_"`

	// SQLite holds the SQLite store settings.
	SQLite SQLite `envPrefix:"SQLITE_"`
}

// JSONStore holds the settings of the JSON-file backend. Dir and File are
// split so an existing installer-managed database can be pointed at
// directly.
type JSONStore struct {
	// Dir is the directory holding the database file.
	// Env: STORAGE_JSON_DIR
	Dir string `env:"DIR"`

	// File is the database file name inside Dir.
	// Env: STORAGE_JSON_FILE
	File string `env:"FILE"`
}

// SQLite holds the settings of the SQLite backend.
type SQLite struct {
	// Path is the SQLite database file path.
	// Env: STORAGE_SQLITE_PATH
	Path string `env:"PATH"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
