package health

// EquipmentSupply is a device-scoped consumable requirement: the device
// declares what it consumes, how fast, and its own reorder threshold.
// InventoryItemID is a weak reference — it may point at an inventory record
// that no longer exists, which is a handled state, not an error.
type EquipmentSupply struct {
	ID                uint
	InventoryItemID   uint
	BurnPerWeek       float64
	MinQty            float64
	AccountOverride   string
	ChargeToProjectID uint
}

// StockRecord is the inventory-side view of a consumable used for the join.
type StockRecord struct {
	ID              uint
	Name            string
	CatalogNumber   string
	CurrentQuantity float64
}

// EnrichedSupply is the denormalized read model joining a supply requirement
// to its matched inventory record, with the computed runway fields attached.
// It is built on demand and never persisted.
type EnrichedSupply struct {
	EquipmentSupply

	Name            string
	CatalogNumber   string
	CurrentQuantity float64
	WeeksRemaining  float64
	HealthPercent   int
	NeedsReorder    bool
}

// EnrichSupply joins a supply requirement against the given inventory
// records. The second return value reports whether the supply's
// InventoryItemID resolved; a dangling reference yields (zero, false) and
// callers filter those out. An enriched view is never fabricated from a
// missing record.
//
// NeedsReorder compares against the supply's own MinQty, which is the
// device-specific threshold and may be stricter or looser than the
// inventory item's global one. That override is intentional policy.
func EnrichSupply(supply EquipmentSupply, stock []StockRecord, thresholds RunwayThresholds) (EnrichedSupply, bool) {
	var matched *StockRecord
	for i := range stock {
		if stock[i].ID == supply.InventoryItemID {
			matched = &stock[i]
			break
		}
	}
	if matched == nil {
		return EnrichedSupply{}, false
	}

	weeks := WeeksRemaining(matched.CurrentQuantity, supply.BurnPerWeek)

	return EnrichedSupply{
		EquipmentSupply: supply,
		Name:            matched.Name,
		CatalogNumber:   matched.CatalogNumber,
		CurrentQuantity: matched.CurrentQuantity,
		WeeksRemaining:  weeks,
		HealthPercent:   thresholds.HealthPercent(weeks),
		NeedsReorder:    matched.CurrentQuantity <= supply.MinQty,
	}, true
}

// AggregateHealth reduces a device's enriched supplies to a single score:
// the minimum of the individual health percentages. One critically low
// consumable drags the whole device down — weakest link, not an average.
// A device with no tracked supplies is vacuously healthy (100).
func AggregateHealth(supplies []EnrichedSupply) int {
	min := 100
	for _, s := range supplies {
		if s.HealthPercent < min {
			min = s.HealthPercent
		}
	}
	return min
}
