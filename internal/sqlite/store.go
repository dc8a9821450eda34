// Package sqlite implements the inventory store on a local SQLite database.
package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/larderhq/larder/pkg/types"
)

// dbFileName is the database file created inside Config.DataDir.
const dbFileName = "larder.db"

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store is the SQLite-backed inventory. It holds a single connection and
// assumes a single caller; no locking is performed.
type Store struct {
	db     *sql.DB
	log    *slog.Logger
	closed bool

	// now returns the current time. Overridden in tests to pin the
	// calendar day.
	now func() time.Time
}

// Open creates the data directory if needed, opens the database file inside
// it, and applies the schema. The caller owns the returned store and must
// close it.
func Open(cfg types.Config, log *slog.Logger) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	path := filepath.Join(cfg.DataDir, dbFileName)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One caller, one connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
	}

	log.Debug("store opened", "path", path)
	return &Store{db: db, log: log, now: time.Now}, nil
}

// Close releases the database handle. Closing twice is harmless.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	s.log.Debug("store closed")
	return nil
}

// today returns the current calendar day at midnight UTC. The day is taken
// from local wall-clock time so that "a day passed" matches the user's
// calendar, then pinned to UTC so date arithmetic never crosses a DST shift.
func (s *Store) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
