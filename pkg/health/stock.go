package health

// StockLevel is the derived classification of an inventory quantity against
// its reorder threshold. It is recomputed on every stock check and is never
// a source of truth.
type StockLevel string

const (
	LevelEmpty  StockLevel = "empty"
	LevelLow    StockLevel = "low"
	LevelMedium StockLevel = "medium"
	LevelFull   StockLevel = "full"
)

// AlertSeverity is the alert branch chosen after a stock update.
type AlertSeverity string

const (
	AlertCritical AlertSeverity = "critical"
	AlertLowStock AlertSeverity = "low_stock"
	AlertNone     AlertSeverity = "none"
)

// LowRunwayWeeks is the projected runway below which a stocked item still
// triggers the low-stock alert path.
const LowRunwayWeeks = 2.0

// LevelForQuantity classifies a quantity against the item's reorder
// threshold: empty at zero, low up to the threshold, medium up to twice the
// threshold, full beyond.
func LevelForQuantity(quantity, minQuantity float64) StockLevel {
	switch {
	case quantity == 0:
		return LevelEmpty
	case quantity <= minQuantity:
		return LevelLow
	case quantity <= 2*minQuantity:
		return LevelMedium
	default:
		return LevelFull
	}
}

// StockAlertSeverity picks the alert branch after a quantity change: an
// empty item is critical, an item under its threshold or with under
// LowRunwayWeeks of projected runway is low-stock, anything else is fine.
func StockAlertSeverity(quantity, minQuantity, weeksRemaining float64) AlertSeverity {
	level := LevelForQuantity(quantity, minQuantity)
	switch {
	case quantity == 0 || level == LevelEmpty:
		return AlertCritical
	case weeksRemaining < LowRunwayWeeks || level == LevelLow:
		return AlertLowStock
	default:
		return AlertNone
	}
}
