package health

import "testing"

func TestLevelForQuantity(t *testing.T) {
	tests := []struct {
		name   string
		qty    float64
		minQty float64
		want   StockLevel
	}{
		{"zero is empty", 0, 10, LevelEmpty},
		{"at threshold is low", 10, 10, LevelLow},
		{"under threshold is low", 3, 10, LevelLow},
		{"at double threshold is medium", 20, 10, LevelMedium},
		{"between one and two thresholds", 15, 10, LevelMedium},
		{"beyond double threshold is full", 21, 10, LevelFull},
		{"zero threshold with stock is full", 5, 0, LevelFull},
		{"zero threshold without stock is empty", 0, 0, LevelEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevelForQuantity(tt.qty, tt.minQty); got != tt.want {
				t.Errorf("LevelForQuantity(%v, %v) = %q, want %q", tt.qty, tt.minQty, got, tt.want)
			}
		})
	}
}

func TestStockAlertSeverity(t *testing.T) {
	tests := []struct {
		name   string
		qty    float64
		minQty float64
		weeks  float64
		want   AlertSeverity
	}{
		{"empty stock is critical", 0, 10, 0, AlertCritical},
		{"low level triggers low stock", 8, 10, 8, AlertLowStock},
		{"short runway triggers low stock even above threshold", 30, 10, 1.5, AlertLowStock},
		{"healthy stock and runway", 30, 10, 15, AlertNone},
		{"exactly two weeks runway is not low", 30, 10, 2, AlertNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StockAlertSeverity(tt.qty, tt.minQty, tt.weeks); got != tt.want {
				t.Errorf("StockAlertSeverity(%v, %v, %v) = %q, want %q",
					tt.qty, tt.minQty, tt.weeks, got, tt.want)
			}
		})
	}
}
