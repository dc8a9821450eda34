package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/larderhq/larder/pkg/types"
)

// itemRecord is the JSONL export format, one object per line.
type itemRecord struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Threshold   int     `json:"threshold"`
	LastUpdated string  `json:"last_updated"`
	DailyUsage  float64 `json:"daily_usage"`
}

// Export writes every item to path as JSONL, ordered by name. The file is
// written via a temp file and renamed into place so readers never observe a
// partial export.
func (s *Store) Export(path string) error {
	if s.closed {
		return types.ErrStoreClosed
	}

	items, err := s.ListItems()
	if err != nil {
		return err
	}

	records := make([]json.RawMessage, 0, len(items))
	for _, it := range items {
		rec := itemRecord{
			ID:          it.ID,
			Name:        it.Name,
			Quantity:    it.Quantity,
			Threshold:   it.Threshold,
			LastUpdated: it.LastUpdated.Format(dateFormat),
			DailyUsage:  it.DailyUsage,
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshaling item %q: %w", it.Name, err)
		}
		records = append(records, data)
	}

	if err := writeJSONL(path, records); err != nil {
		return err
	}
	s.log.Debug("inventory exported", "path", path, "items", len(records))
	return nil
}

// writeJSONL atomically writes records to path using the temp-file, fsync,
// rename pattern. The temp file lives in the destination directory so the
// rename stays on one filesystem.
func writeJSONL(path string, records []json.RawMessage) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		tmp.Close()
		if !committed {
			os.Remove(tmpName)
		}
	}()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	committed = true
	return nil
}
