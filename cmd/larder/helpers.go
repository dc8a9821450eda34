// Shared helpers for larder CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/larderhq/larder/internal/sqlite"
	"github.com/larderhq/larder/pkg/types"
)

// openStore resolves the data directory and opens the inventory store. The
// caller must defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store, err := sqlite.Open(types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return store, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
