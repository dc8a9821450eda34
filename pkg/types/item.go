package types

import "time"

// Item is a tracked inventory entry. Quantity and Threshold are opaque
// counts; the store never rejects negative values, it simply records what
// the caller reports.
type Item struct {
	// ID is assigned by the storage backend on insert.
	ID int64 `json:"id"`

	// Name uniquely identifies the item within the inventory.
	Name string `json:"name"`

	// Quantity is the amount currently on hand.
	Quantity int `json:"quantity"`

	// Threshold is the restock level. The item counts as running low
	// only when quantity drops strictly below it.
	Threshold int `json:"threshold"`

	// LastUpdated is the calendar day, at midnight UTC, on which the
	// quantity was last recorded.
	LastUpdated time.Time `json:"last_updated"`

	// DailyUsage is the estimated consumption per day, derived from
	// observed quantity drops. Zero means no usage has been observed yet.
	DailyUsage float64 `json:"daily_usage"`
}

// BelowThreshold reports whether the item has already run low.
func (i Item) BelowThreshold() bool {
	return i.Quantity < i.Threshold
}
