package config

import "time"

// applyDefaults fills the fields every deployment may leave unset. The
// server key deliberately has no default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "localhost:8080"
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}

	if cfg.Storage.Type == "" {
		cfg.Storage.Type = StorageTypeJSON
	}
	if cfg.Storage.JSON.Dir == "" {
		cfg.Storage.JSON.Dir = "data"
	}
	if cfg.Storage.JSON.File == "" {
		cfg.Storage.JSON.File = "db.json"
	}
	if cfg.Storage.SQLite.Path == "" {
		cfg.Storage.SQLite.Path = "data/db.sqlite"
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.ServerKey == "" {
		return ErrServerKeyRequired
	}

	if cfg.Storage.Type != StorageTypeJSON && cfg.Storage.Type != StorageTypeSQLite {
		return ErrInvalidStorageConfigs
	}

	return nil
}
