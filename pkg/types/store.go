package types

import "errors"

// Sentinel errors returned by Store implementations. Callers match them
// with errors.Is; implementations wrap them with context.
var (
	// ErrDuplicateItem is returned when adding an item whose name is
	// already tracked.
	ErrDuplicateItem = errors.New("item already exists")

	// ErrItemNotFound is returned when an operation names an item the
	// inventory does not contain.
	ErrItemNotFound = errors.New("item not found")

	// ErrInsufficientData is returned by PredictRestock when no usage
	// has been observed for the item yet.
	ErrInsufficientData = errors.New("not enough usage data")

	// ErrInvalidInput is returned when caller-supplied text cannot be
	// parsed into the values an operation needs.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreClosed is returned by operations invoked after Close.
	ErrStoreClosed = errors.New("store is closed")
)

// Store is the persistent inventory. Implementations are single-user: one
// process, one connection, no cross-process coordination.
type Store interface {
	// AddItem inserts a new item with the given starting quantity and
	// threshold. The usage rate starts at zero and the item is stamped
	// with the current day. Returns ErrDuplicateItem if the name is
	// already tracked.
	AddItem(name string, quantity, threshold int) (Item, error)

	// GetItem returns the item with the given name, or ErrItemNotFound.
	GetItem(name string) (Item, error)

	// UpdateItem records new values for an item. A nil quantity or
	// threshold keeps the stored value. When at least one calendar day
	// has passed since the last update and the quantity changed, the
	// usage rate is recomputed from the observed drop; otherwise the
	// previous rate is kept. The item is re-stamped with the current day
	// either way. Returns ErrItemNotFound if the name is not tracked.
	UpdateItem(name string, quantity, threshold *int) (Item, error)

	// DeleteItem removes the item with the given name. Returns
	// ErrItemNotFound if nothing was removed.
	DeleteItem(name string) error

	// ListItems returns every tracked item ordered by name. The slice is
	// empty, never nil, when the inventory has no items.
	ListItems() ([]Item, error)

	// PredictRestock estimates when the named item will reach its
	// threshold. Returns ErrInsufficientData when the stored usage rate
	// is zero or negative, and a Forecast with AlreadyLow set when the
	// item is below its threshold already.
	PredictRestock(name string) (Forecast, error)

	// Close releases the underlying database handle. Further calls on
	// the store return ErrStoreClosed. Closing twice is harmless.
	Close() error
}
