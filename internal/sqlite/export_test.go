package sqlite

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/larderhq/larder/pkg/types"
)

func TestExport(t *testing.T) {
	s, err := Open(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}, discardLogger())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if _, err := s.AddItem("yogurt", 6, 2); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if _, err := s.AddItem("apples", 12, 4); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "inventory.jsonl")
	if err := s.Export(path); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening export: %v", err)
	}
	defer f.Close()

	var records []itemRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec itemRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", len(records)+1, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scanning export: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Name order, matching ListItems.
	if records[0].Name != "apples" || records[1].Name != "yogurt" {
		t.Errorf("got order %q, %q; want apples, yogurt", records[0].Name, records[1].Name)
	}
	if records[0].Quantity != 12 || records[0].Threshold != 4 {
		t.Errorf("apples record = %+v, want quantity 12 threshold 4", records[0])
	}
	if records[0].LastUpdated == "" {
		t.Error("last_updated missing from export")
	}
}

func TestExport_EmptyInventory(t *testing.T) {
	s, err := Open(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}, discardLogger())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	path := filepath.Join(t.TempDir(), "inventory.jsonl")
	if err := s.Export(path); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("export file missing: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("empty inventory export has %d bytes, want 0", info.Size())
	}
}

func TestExport_ReplacesExistingFile(t *testing.T) {
	s, err := Open(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}, discardLogger())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if _, err := s.AddItem("milk", 2, 1); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "inventory.jsonl")
	if err := os.WriteFile(path, []byte("stale contents\n"), 0o644); err != nil {
		t.Fatalf("seeding stale file: %v", err)
	}

	if err := s.Export(path); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	var rec itemRecord
	if err := json.Unmarshal(data[:len(data)-1], &rec); err != nil {
		t.Fatalf("export not replaced with JSON: %v", err)
	}
	if rec.Name != "milk" {
		t.Errorf("got record for %q, want milk", rec.Name)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("reading export dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("export dir has %d entries, want only the export file", len(entries))
	}
}
