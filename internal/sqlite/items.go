package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/larderhq/larder/pkg/types"
)

// dateFormat is how last_updated days are stored, e.g. "2026-03-14".
const dateFormat = "2006-01-02"

// itemColumns is the SELECT list shared by every query that hydrates an Item.
const itemColumns = "id, name, quantity, threshold, last_updated, daily_usage"

// rowScanner abstracts *sql.Row and *sql.Rows for hydration.
type rowScanner interface {
	Scan(dest ...any) error
}

// hydrateItem converts a scanned items row into a types.Item.
func hydrateItem(row rowScanner) (types.Item, error) {
	var it types.Item
	var lastUpdated string
	if err := row.Scan(&it.ID, &it.Name, &it.Quantity, &it.Threshold, &lastUpdated, &it.DailyUsage); err != nil {
		return types.Item{}, err
	}
	var err error
	it.LastUpdated, err = time.Parse(dateFormat, lastUpdated)
	if err != nil {
		return types.Item{}, fmt.Errorf("parsing last_updated: %w", err)
	}
	return it, nil
}

// AddItem inserts a new item stamped with the current day and a zero usage
// rate. The name must not be tracked already.
func (s *Store) AddItem(name string, quantity, threshold int) (types.Item, error) {
	if s.closed {
		return types.Item{}, types.ErrStoreClosed
	}

	var exists int
	err := s.db.QueryRow("SELECT 1 FROM items WHERE name = ?", name).Scan(&exists)
	if err == nil {
		return types.Item{}, fmt.Errorf("adding item %q: %w", name, types.ErrDuplicateItem)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return types.Item{}, fmt.Errorf("checking item existence: %w", err)
	}

	item := types.Item{
		Name:        name,
		Quantity:    quantity,
		Threshold:   threshold,
		LastUpdated: s.today(),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return types.Item{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO items (name, quantity, threshold, last_updated, daily_usage) VALUES (?, ?, ?, ?, ?)",
		item.Name, item.Quantity, item.Threshold, item.LastUpdated.Format(dateFormat), item.DailyUsage,
	)
	if err != nil {
		return types.Item{}, fmt.Errorf("inserting item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return types.Item{}, fmt.Errorf("reading new item id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return types.Item{}, fmt.Errorf("committing item: %w", err)
	}

	item.ID = id
	s.log.Debug("item added",
		"name", item.Name, "quantity", item.Quantity, "threshold", item.Threshold)
	return item, nil
}

// GetItem returns the named item.
func (s *Store) GetItem(name string) (types.Item, error) {
	if s.closed {
		return types.Item{}, types.ErrStoreClosed
	}

	row := s.db.QueryRow("SELECT "+itemColumns+" FROM items WHERE name = ?", name)
	item, err := hydrateItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Item{}, fmt.Errorf("getting item %q: %w", name, types.ErrItemNotFound)
		}
		return types.Item{}, fmt.Errorf("getting item %q: %w", name, err)
	}
	return item, nil
}

// UpdateItem stores new quantity and threshold values for an item. A nil
// quantity or threshold keeps the stored value. The usage rate is recomputed
// from the observed drop only when at least one calendar day has passed and
// the quantity changed; same-day updates and pure threshold edits keep the
// previous rate. The item is re-stamped with the current day either way.
func (s *Store) UpdateItem(name string, quantity, threshold *int) (types.Item, error) {
	if s.closed {
		return types.Item{}, types.ErrStoreClosed
	}

	old, err := s.GetItem(name)
	if err != nil {
		return types.Item{}, err
	}

	updated := old
	if quantity != nil {
		updated.Quantity = *quantity
	}
	if threshold != nil {
		updated.Threshold = *threshold
	}

	today := s.today()
	daysPassed := daysBetween(old.LastUpdated, today)
	if daysPassed > 0 && updated.Quantity != old.Quantity {
		used := old.Quantity - updated.Quantity
		updated.DailyUsage = float64(used) / float64(daysPassed)
	}
	updated.LastUpdated = today

	tx, err := s.db.Begin()
	if err != nil {
		return types.Item{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"UPDATE items SET quantity = ?, threshold = ?, last_updated = ?, daily_usage = ? WHERE name = ?",
		updated.Quantity, updated.Threshold, updated.LastUpdated.Format(dateFormat), updated.DailyUsage, name,
	)
	if err != nil {
		return types.Item{}, fmt.Errorf("updating item: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return types.Item{}, fmt.Errorf("committing item update: %w", err)
	}

	s.log.Debug("item updated",
		"name", name, "quantity", updated.Quantity, "daily_usage", updated.DailyUsage)
	return updated, nil
}

// DeleteItem removes the named item.
func (s *Store) DeleteItem(name string) error {
	if s.closed {
		return types.ErrStoreClosed
	}

	res, err := s.db.Exec("DELETE FROM items WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("deleting item %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("deleting item %q: %w", name, types.ErrItemNotFound)
	}

	s.log.Debug("item deleted", "name", name)
	return nil
}

// ListItems returns every tracked item ordered by name.
func (s *Store) ListItems() ([]types.Item, error) {
	if s.closed {
		return nil, types.ErrStoreClosed
	}

	rows, err := s.db.Query("SELECT " + itemColumns + " FROM items ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	// Empty slice, not nil, when there are no items.
	items := []types.Item{}
	for rows.Next() {
		item, err := hydrateItem(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

// daysBetween counts whole calendar days between two midnights.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
