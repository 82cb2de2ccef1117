package query

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/labforge/labops/internal/equipment/domain"
	"github.com/labforge/labops/pkg/health"
)

type fakeRepo struct {
	devices map[uint]*domain.EquipmentDevice
}

func newFakeRepo(devices ...*domain.EquipmentDevice) *fakeRepo {
	r := &fakeRepo{devices: make(map[uint]*domain.EquipmentDevice)}
	for _, d := range devices {
		r.devices[d.ID] = d
	}
	return r
}

func (r *fakeRepo) Create(d *domain.EquipmentDevice) error { r.devices[d.ID] = d; return nil }

func (r *fakeRepo) FindByID(id uint) (*domain.EquipmentDevice, error) {
	d, ok := r.devices[id]
	if !ok {
		return nil, fmt.Errorf("record not found")
	}
	copied := *d
	return &copied, nil
}

func (r *fakeRepo) FindAll(int, int) ([]domain.EquipmentDevice, error) { return nil, nil }

func (r *fakeRepo) Update(d *domain.EquipmentDevice) error { return nil }

func (r *fakeRepo) Delete(id uint) error { return nil }

func (r *fakeRepo) RecordMaintenance(id uint, date string) error { return nil }

func (r *fakeRepo) AddSupply(s *domain.EquipmentSupply) error { return nil }

func (r *fakeRepo) UpdateSupply(s *domain.EquipmentSupply) error { return nil }

func (r *fakeRepo) RemoveSupply(id uint) error { return nil }

type fakeStock struct {
	records []health.StockRecord
	err     error
}

func (s *fakeStock) StockRecords(context.Context) ([]health.StockRecord, error) {
	return s.records, s.err
}

func sequencerDevice() *domain.EquipmentDevice {
	return &domain.EquipmentDevice{
		ID:               1,
		Name:             "Sequencer",
		LastMaintained:   time.Now().Format("2006-01-02"),
		MaintenanceDays:  90,
		ThresholdPercent: 20,
		Supplies: []domain.EquipmentSupply{
			{ID: 10, DeviceID: 1, InventoryItemID: 100, BurnPerWeek: 5, MinQty: 10},
			{ID: 11, DeviceID: 1, InventoryItemID: 999, BurnPerWeek: 1, MinQty: 1},
		},
	}
}

func TestDeviceHealthJoinsAndAggregates(t *testing.T) {
	repo := newFakeRepo(sequencerDevice())
	// Item 100 resolves; item 999 dangles after being deleted upstream.
	stock := &fakeStock{records: []health.StockRecord{
		{ID: 100, Name: "Flow Cells", CatalogNumber: "FC-281", CurrentQuantity: 17},
	}}
	handler := NewDeviceHealthHandler(repo, stock, health.DefaultRunwayThresholds())

	report, err := handler.Handle(context.Background(), DeviceHealthQuery{DeviceID: 1})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if report.MaintenancePercent != 100 {
		t.Errorf("MaintenancePercent = %d, want 100", report.MaintenancePercent)
	}
	if len(report.Supplies) != 1 {
		t.Fatalf("enriched %d supplies, want 1", len(report.Supplies))
	}

	// 17 units at 5/week → 3.4 weeks → 34% under the default 10-week anchor.
	s := report.Supplies[0]
	if s.WeeksRemaining != 3.4 {
		t.Errorf("WeeksRemaining = %v, want 3.4", s.WeeksRemaining)
	}
	if s.HealthPercent != 34 {
		t.Errorf("HealthPercent = %d, want 34", s.HealthPercent)
	}
	if s.NeedsReorder {
		t.Error("NeedsReorder set with 17 units against a min of 10")
	}
	if report.SupplyPercent != 34 {
		t.Errorf("SupplyPercent = %d, want 34", report.SupplyPercent)
	}

	if len(report.UnlinkedSupplyIDs) != 1 || report.UnlinkedSupplyIDs[0] != 11 {
		t.Errorf("UnlinkedSupplyIDs = %v, want [11]", report.UnlinkedSupplyIDs)
	}
}

func TestDeviceHealthNoSuppliesIsHealthy(t *testing.T) {
	device := sequencerDevice()
	device.Supplies = nil
	repo := newFakeRepo(device)
	handler := NewDeviceHealthHandler(repo, &fakeStock{}, health.DefaultRunwayThresholds())

	report, err := handler.Handle(context.Background(), DeviceHealthQuery{DeviceID: 1})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if report.SupplyPercent != 100 {
		t.Errorf("SupplyPercent = %d, want 100", report.SupplyPercent)
	}
}

func TestDeviceHealthInventoryOutageSurfaces(t *testing.T) {
	repo := newFakeRepo(sequencerDevice())
	stock := &fakeStock{err: fmt.Errorf("connection refused")}
	handler := NewDeviceHealthHandler(repo, stock, health.DefaultRunwayThresholds())

	if _, err := handler.Handle(context.Background(), DeviceHealthQuery{DeviceID: 1}); err == nil {
		t.Error("expected error when inventory records cannot be loaded")
	}
}

func TestDeviceHealthValidation(t *testing.T) {
	handler := NewDeviceHealthHandler(newFakeRepo(), &fakeStock{}, health.DefaultRunwayThresholds())

	if _, err := handler.Handle(context.Background(), DeviceHealthQuery{DeviceID: 0}); err == nil {
		t.Error("expected error for missing device_id")
	}
	if _, err := handler.Handle(context.Background(), DeviceHealthQuery{DeviceID: 99}); err == nil {
		t.Error("expected error for unknown device")
	}
}
