package types

import (
	"errors"
	"fmt"
)

// Supported storage backends.
const (
	BackendSQLite = "sqlite"
)

// Configuration validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Config carries the settings a Store needs to open its backing files.
type Config struct {
	// Backend selects the storage implementation. Only "sqlite" is
	// currently supported.
	Backend string `json:"backend" yaml:"backend"`

	// DataDir is the directory holding the database file. It is created
	// if it does not exist.
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Validate checks that the configuration names a known backend.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return fmt.Errorf("%w: %q", ErrBackendUnknown, c.Backend)
	}
	return nil
}
