package sqlite

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/larderhq/larder/pkg/types"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestOpen(t *testing.T) {
	tmpDir := t.TempDir()

	s, err := Open(types.Config{
		Backend: types.BackendSQLite,
		DataDir: tmpDir,
	}, discardLogger())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	// Verify database file created
	dbPath := filepath.Join(tmpDir, dbFileName)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("%s not created", dbFileName)
	}
}

func TestOpen_CreatesDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "larder-data")

	s, err := Open(types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}, discardLogger())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(dataDir); err != nil {
		t.Errorf("data directory not created: %v", err)
	}
}

func TestOpen_InvalidConfig(t *testing.T) {
	_, err := Open(types.Config{
		Backend: "postgres",
		DataDir: t.TempDir(),
	}, discardLogger())
	if !errors.Is(err, types.ErrBackendUnknown) {
		t.Errorf("expected ErrBackendUnknown, got %v", err)
	}

	_, err = Open(types.Config{DataDir: t.TempDir()}, discardLogger())
	if !errors.Is(err, types.ErrBackendEmpty) {
		t.Errorf("expected ErrBackendEmpty, got %v", err)
	}
}

func TestOpen_NilLogger(t *testing.T) {
	s, err := Open(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}, nil)
	if err != nil {
		t.Fatalf("Open with nil logger failed: %v", err)
	}
	s.Close()
}

func TestClose(t *testing.T) {
	s, err := Open(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}, discardLogger())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Verify idempotent
	if err := s.Close(); err != nil {
		t.Errorf("second Close should not error, got %v", err)
	}

	// Verify operations fail after close
	if _, err := s.AddItem("milk", 2, 1); !errors.Is(err, types.ErrStoreClosed) {
		t.Errorf("AddItem after close: expected ErrStoreClosed, got %v", err)
	}
	if _, err := s.GetItem("milk"); !errors.Is(err, types.ErrStoreClosed) {
		t.Errorf("GetItem after close: expected ErrStoreClosed, got %v", err)
	}
	if _, err := s.UpdateItem("milk", nil, nil); !errors.Is(err, types.ErrStoreClosed) {
		t.Errorf("UpdateItem after close: expected ErrStoreClosed, got %v", err)
	}
	if err := s.DeleteItem("milk"); !errors.Is(err, types.ErrStoreClosed) {
		t.Errorf("DeleteItem after close: expected ErrStoreClosed, got %v", err)
	}
	if _, err := s.ListItems(); !errors.Is(err, types.ErrStoreClosed) {
		t.Errorf("ListItems after close: expected ErrStoreClosed, got %v", err)
	}
	if _, err := s.PredictRestock("milk"); !errors.Is(err, types.ErrStoreClosed) {
		t.Errorf("PredictRestock after close: expected ErrStoreClosed, got %v", err)
	}
	if err := s.Export(filepath.Join(t.TempDir(), "out.jsonl")); !errors.Is(err, types.ErrStoreClosed) {
		t.Errorf("Export after close: expected ErrStoreClosed, got %v", err)
	}
}

func TestReopen_KeepsData(t *testing.T) {
	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}

	s, err := Open(cfg, discardLogger())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := s.AddItem("eggs", 12, 4); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s, err = Open(cfg, discardLogger())
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()

	item, err := s.GetItem("eggs")
	if err != nil {
		t.Fatalf("GetItem after reopen failed: %v", err)
	}
	if item.Quantity != 12 || item.Threshold != 4 {
		t.Errorf("got quantity=%d threshold=%d, want 12 and 4", item.Quantity, item.Threshold)
	}
}
