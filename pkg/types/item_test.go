package types

import "testing"

func TestItemBelowThreshold(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want bool
	}{
		{
			name: "quantity above threshold",
			item: Item{Quantity: 10, Threshold: 3},
			want: false,
		},
		{
			name: "quantity equal to threshold is not low",
			item: Item{Quantity: 3, Threshold: 3},
			want: false,
		},
		{
			name: "quantity below threshold",
			item: Item{Quantity: 2, Threshold: 3},
			want: true,
		},
		{
			name: "negative quantity below zero threshold",
			item: Item{Quantity: -1, Threshold: 0},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.BelowThreshold(); got != tt.want {
				t.Errorf("BelowThreshold() = %v, want %v", got, tt.want)
			}
		})
	}
}
