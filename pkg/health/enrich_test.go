package health

import (
	"math"
	"testing"
)

func testStock() []StockRecord {
	return []StockRecord{
		{ID: 1, Name: "Acetone 1L", CatalogNumber: "AC-100", CurrentQuantity: 15},
		{ID: 2, Name: "Nitrile Gloves M", CatalogNumber: "NG-200", CurrentQuantity: 100},
		{ID: 3, Name: "Pipette Tips 200uL", CatalogNumber: "PT-300", CurrentQuantity: 0},
	}
}

func TestEnrichSupplyJoinsMatchedRecord(t *testing.T) {
	supply := EquipmentSupply{
		ID:                7,
		InventoryItemID:   1,
		BurnPerWeek:       10,
		MinQty:            20,
		AccountOverride:   "core-facility",
		ChargeToProjectID: 42,
	}

	enriched, ok := EnrichSupply(supply, testStock(), DefaultRunwayThresholds())
	if !ok {
		t.Fatal("EnrichSupply returned absent for a resolvable reference")
	}

	if enriched.Name != "Acetone 1L" || enriched.CatalogNumber != "AC-100" {
		t.Errorf("joined fields = %q/%q, want Acetone 1L/AC-100", enriched.Name, enriched.CatalogNumber)
	}
	if enriched.CurrentQuantity != 15 {
		t.Errorf("CurrentQuantity = %v, want 15", enriched.CurrentQuantity)
	}
	// 15 units at 10/week → 1.5 weeks, under the device threshold of 20.
	if enriched.WeeksRemaining != 1.5 {
		t.Errorf("WeeksRemaining = %v, want 1.5", enriched.WeeksRemaining)
	}
	if !enriched.NeedsReorder {
		t.Error("NeedsReorder = false, want true (15 <= device MinQty 20)")
	}
	// Passthrough fields survive the join untouched.
	if enriched.AccountOverride != "core-facility" || enriched.ChargeToProjectID != 42 {
		t.Errorf("passthrough fields mangled: %+v", enriched.EquipmentSupply)
	}
}

func TestEnrichSupplyDeviceThresholdOverridesGlobal(t *testing.T) {
	// 100 gloves at 5/week with a loose device threshold of 10: healthy.
	supply := EquipmentSupply{InventoryItemID: 2, BurnPerWeek: 5, MinQty: 10}

	enriched, ok := EnrichSupply(supply, testStock(), DefaultRunwayThresholds())
	if !ok {
		t.Fatal("expected a match")
	}
	if enriched.WeeksRemaining != 20 {
		t.Errorf("WeeksRemaining = %v, want 20", enriched.WeeksRemaining)
	}
	if enriched.NeedsReorder {
		t.Error("NeedsReorder = true, want false (100 > device MinQty 10)")
	}
	if enriched.HealthPercent != 100 {
		t.Errorf("HealthPercent = %d, want 100", enriched.HealthPercent)
	}
}

func TestEnrichSupplyDanglingReference(t *testing.T) {
	supply := EquipmentSupply{InventoryItemID: 99, BurnPerWeek: 1, MinQty: 1}

	if _, ok := EnrichSupply(supply, testStock(), DefaultRunwayThresholds()); ok {
		t.Error("EnrichSupply resolved a dangling reference")
	}
	if _, ok := EnrichSupply(supply, nil, DefaultRunwayThresholds()); ok {
		t.Error("EnrichSupply resolved against an empty inventory")
	}
}

func TestEnrichSupplyRunwayRoundTrip(t *testing.T) {
	// Feeding the enriched quantity back through WeeksRemaining must
	// reproduce the enriched runway exactly.
	supply := EquipmentSupply{InventoryItemID: 1, BurnPerWeek: 4, MinQty: 5}

	enriched, ok := EnrichSupply(supply, testStock(), DefaultRunwayThresholds())
	if !ok {
		t.Fatal("expected a match")
	}
	again := WeeksRemaining(enriched.CurrentQuantity, supply.BurnPerWeek)
	if math.Abs(again-enriched.WeeksRemaining) != 0 {
		t.Errorf("round trip: %v != %v", again, enriched.WeeksRemaining)
	}
}

func TestAggregateHealth(t *testing.T) {
	if got := AggregateHealth(nil); got != 100 {
		t.Errorf("AggregateHealth(nil) = %d, want 100 (vacuously healthy)", got)
	}

	supplies := []EnrichedSupply{
		{HealthPercent: 80},
		{HealthPercent: 15},
		{HealthPercent: 100},
	}
	if got := AggregateHealth(supplies); got != 15 {
		t.Errorf("AggregateHealth = %d, want 15 (weakest link)", got)
	}
}

func TestAggregateHealthIgnoresZeroBurnSupplies(t *testing.T) {
	thresholds := DefaultRunwayThresholds()
	stock := testStock()

	limiting, ok := EnrichSupply(EquipmentSupply{InventoryItemID: 1, BurnPerWeek: 10, MinQty: 5}, stock, thresholds)
	if !ok {
		t.Fatal("expected a match")
	}
	// Zero burn → infinite runway → 100, so it can never be the minimum.
	zeroBurn, ok := EnrichSupply(EquipmentSupply{InventoryItemID: 3, BurnPerWeek: 0, MinQty: 5}, stock, thresholds)
	if !ok {
		t.Fatal("expected a match")
	}
	if zeroBurn.HealthPercent != 100 {
		t.Fatalf("zero-burn HealthPercent = %d, want 100", zeroBurn.HealthPercent)
	}

	with := AggregateHealth([]EnrichedSupply{limiting, zeroBurn})
	without := AggregateHealth([]EnrichedSupply{limiting})
	if with != without {
		t.Errorf("zero-burn supply changed the aggregate: %d != %d", with, without)
	}
}
