package sqlite

import (
	"fmt"

	"github.com/larderhq/larder/pkg/types"
)

// PredictRestock estimates when the named item reaches its threshold at the
// stored usage rate. Surplus divided by daily usage gives days remaining; a
// negative result means the item is below its threshold already, which is
// reported in the forecast rather than as an error.
func (s *Store) PredictRestock(name string) (types.Forecast, error) {
	if s.closed {
		return types.Forecast{}, types.ErrStoreClosed
	}

	item, err := s.GetItem(name)
	if err != nil {
		return types.Forecast{}, err
	}

	if item.DailyUsage <= 0 {
		return types.Forecast{}, fmt.Errorf("predicting restock for %q: %w", name, types.ErrInsufficientData)
	}

	daysLeft := float64(item.Quantity-item.Threshold) / item.DailyUsage
	if daysLeft < 0 {
		return types.Forecast{Item: item, AlreadyLow: true}, nil
	}

	days := int(daysLeft)
	return types.Forecast{
		Item:        item,
		Days:        days,
		RestockDate: s.today().AddDate(0, 0, days),
	}, nil
}
