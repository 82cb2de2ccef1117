package command

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/labforge/labops/internal/alerting"
	"github.com/labforge/labops/internal/equipment/domain"
)

type fakeRepo struct {
	devices     map[uint]*domain.EquipmentDevice
	maintenance struct {
		id   uint
		date string
	}
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

func (r *fakeRepo) Update(d *domain.EquipmentDevice) error { r.devices[d.ID] = d; return nil }

func (r *fakeRepo) Delete(id uint) error { delete(r.devices, id); return nil }

func (r *fakeRepo) RecordMaintenance(id uint, date string) error {
	if _, ok := r.devices[id]; !ok {
		return fmt.Errorf("record not found")
	}
	r.maintenance.id = id
	r.maintenance.date = date
	r.devices[id].LastMaintained = date
	return nil
}

func (r *fakeRepo) AddSupply(s *domain.EquipmentSupply) error { return nil }

func (r *fakeRepo) UpdateSupply(s *domain.EquipmentSupply) error { return nil }

func (r *fakeRepo) RemoveSupply(id uint) error { return nil }

type recordingAlerter struct {
	alerts []alerting.MaintenanceAlert
}

func (a *recordingAlerter) DispatchMaintenanceAlert(_ context.Context, alert alerting.MaintenanceAlert) {
	a.alerts = append(a.alerts, alert)
}

func isoDaysAgo(days int) string {
	return time.Now().AddDate(0, 0, -days).Format("2006-01-02")
}

func TestMaintenanceCheckFreshDeviceStaysQuiet(t *testing.T) {
	repo := newFakeRepo(&domain.EquipmentDevice{
		ID:               1,
		Name:             "Incubator A",
		LastMaintained:   isoDaysAgo(0),
		MaintenanceDays:  90,
		ThresholdPercent: 20,
	})
	alerter := &recordingAlerter{}
	handler := NewMaintenanceCheckHandler(repo, alerter)

	result, err := handler.Handle(context.Background(), MaintenanceCheckCommand{DeviceID: 1})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if result.HealthPercent != 100 {
		t.Errorf("HealthPercent = %d, want 100", result.HealthPercent)
	}
	if result.DueSoon {
		t.Error("fresh device flagged as due soon")
	}
	if len(alerter.alerts) != 0 {
		t.Errorf("dispatched %d alerts, want 0", len(alerter.alerts))
	}
}

func TestMaintenanceCheckOverdueDeviceAlerts(t *testing.T) {
	// 85 of 90 days elapsed → round(100 * 5/90) = 6, below the 20 threshold.
	repo := newFakeRepo(&domain.EquipmentDevice{
		ID:               1,
		Name:             "Centrifuge B",
		LastMaintained:   isoDaysAgo(85),
		MaintenanceDays:  90,
		ThresholdPercent: 20,
	})
	alerter := &recordingAlerter{}
	handler := NewMaintenanceCheckHandler(repo, alerter)

	result, err := handler.Handle(context.Background(), MaintenanceCheckCommand{DeviceID: 1})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if result.HealthPercent != 6 {
		t.Errorf("HealthPercent = %d, want 6", result.HealthPercent)
	}
	if !result.DueSoon {
		t.Error("overdue device not flagged as due soon")
	}
	if len(alerter.alerts) != 1 {
		t.Fatalf("dispatched %d alerts, want 1", len(alerter.alerts))
	}
	if alerter.alerts[0].DeviceName != "Centrifuge B" {
		t.Errorf("alert device name = %q", alerter.alerts[0].DeviceName)
	}
}

func TestMaintenanceCheckUnparsableDateFailsOpen(t *testing.T) {
	// A bad date scores 100 rather than tripping false alerts.
	repo := newFakeRepo(&domain.EquipmentDevice{
		ID:               1,
		Name:             "Shaker C",
		LastMaintained:   "not-a-date",
		MaintenanceDays:  90,
		ThresholdPercent: 20,
	})
	alerter := &recordingAlerter{}
	handler := NewMaintenanceCheckHandler(repo, alerter)

	result, err := handler.Handle(context.Background(), MaintenanceCheckCommand{DeviceID: 1})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if result.HealthPercent != 100 {
		t.Errorf("HealthPercent = %d, want 100", result.HealthPercent)
	}
	if len(alerter.alerts) != 0 {
		t.Errorf("dispatched %d alerts, want 0", len(alerter.alerts))
	}
}

func TestMaintenanceCheckValidation(t *testing.T) {
	handler := NewMaintenanceCheckHandler(newFakeRepo(), nil)

	if _, err := handler.Handle(context.Background(), MaintenanceCheckCommand{DeviceID: 0}); err == nil {
		t.Error("expected error for missing device_id")
	}
	if _, err := handler.Handle(context.Background(), MaintenanceCheckCommand{DeviceID: 99}); err == nil {
		t.Error("expected error for unknown device")
	}
}

func TestRecordMaintenanceDefaultsToToday(t *testing.T) {
	repo := newFakeRepo(&domain.EquipmentDevice{ID: 1, Name: "Incubator A"})
	handler := NewRecordMaintenanceHandler(repo)

	if err := handler.Handle(RecordMaintenanceCommand{DeviceID: 1}); err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	want := time.Now().Format("2006-01-02")
	if repo.maintenance.date != want {
		t.Errorf("recorded date = %q, want %q", repo.maintenance.date, want)
	}
}

func TestRecordMaintenanceRejectsBadDate(t *testing.T) {
	repo := newFakeRepo(&domain.EquipmentDevice{ID: 1})
	handler := NewRecordMaintenanceHandler(repo)

	if err := handler.Handle(RecordMaintenanceCommand{DeviceID: 1, Date: "03/15/2026"}); err == nil {
		t.Error("expected error for non-ISO date")
	}
}
