package types

import "time"

// Forecast is the result of a restock prediction for a single item.
type Forecast struct {
	// Item is the inventory entry the forecast was computed for.
	Item Item `json:"item"`

	// AlreadyLow is true when the item sits below its threshold right
	// now. Days and RestockDate are zero in that case.
	AlreadyLow bool `json:"already_low"`

	// Days is the whole number of days until the quantity is expected to
	// reach the threshold at the current usage rate.
	Days int `json:"days"`

	// RestockDate is the calendar day, at midnight UTC, on which the
	// threshold is expected to be reached.
	RestockDate time.Time `json:"restock_date"`
}
