package command

import (
	"context"
	"fmt"
	"testing"

	"github.com/labforge/labops/internal/alerting"
	"github.com/labforge/labops/internal/inventory/domain"
	"github.com/labforge/labops/pkg/health"
)

type fakeRepo struct {
	items       map[uint]*domain.InventoryItem
	updateErr   error
	lastUpdated struct {
		id       uint
		quantity float64
		level    string
	}
}

func newFakeRepo(items ...*domain.InventoryItem) *fakeRepo {
	r := &fakeRepo{items: make(map[uint]*domain.InventoryItem)}
	for _, item := range items {
		r.items[item.ID] = item
	}
	return r
}

func (r *fakeRepo) Create(item *domain.InventoryItem) error { r.items[item.ID] = item; return nil }

func (r *fakeRepo) FindByID(id uint) (*domain.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("record not found")
	}
	copied := *item
	return &copied, nil
}

func (r *fakeRepo) FindByCatalogNumber(string) (*domain.InventoryItem, error) {
	return nil, fmt.Errorf("record not found")
}

func (r *fakeRepo) FindAll(int, int) ([]domain.InventoryItem, error) { return nil, nil }

func (r *fakeRepo) FindBelowMinimum() ([]domain.InventoryItem, error) { return nil, nil }

func (r *fakeRepo) Update(item *domain.InventoryItem) error { r.items[item.ID] = item; return nil }

func (r *fakeRepo) Delete(id uint) error { delete(r.items, id); return nil }

func (r *fakeRepo) UpdateStock(id uint, quantity float64, level string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.lastUpdated.id = id
	r.lastUpdated.quantity = quantity
	r.lastUpdated.level = level
	if item, ok := r.items[id]; ok {
		item.CurrentQuantity = quantity
		item.InventoryLevel = level
	}
	return nil
}

type recordingAlerter struct {
	alerts []alerting.StockAlert
}

func (a *recordingAlerter) DispatchStockAlert(_ context.Context, alert alerting.StockAlert) {
	a.alerts = append(a.alerts, alert)
}

func gloveBox() *domain.InventoryItem {
	return &domain.InventoryItem{
		ID:          1,
		ProductName: "Nitrile Gloves M",
		MinQuantity: 10,
	}
}

func TestStockCheckRecomputesLevel(t *testing.T) {
	repo := newFakeRepo(gloveBox())
	handler := NewStockCheckHandler(repo, nil)

	result, err := handler.Handle(context.Background(), StockCheckCommand{ItemID: 1, NewQuantity: 15})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if repo.lastUpdated.level != string(health.LevelMedium) {
		t.Errorf("persisted level = %q, want medium", repo.lastUpdated.level)
	}
	if result.Severity != health.AlertNone {
		t.Errorf("severity = %q, want none", result.Severity)
	}
}

func TestStockCheckCriticalOnEmpty(t *testing.T) {
	repo := newFakeRepo(gloveBox())
	alerter := &recordingAlerter{}
	handler := NewStockCheckHandler(repo, alerter)

	result, err := handler.Handle(context.Background(), StockCheckCommand{ItemID: 1, NewQuantity: 0})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if result.Severity != health.AlertCritical {
		t.Errorf("severity = %q, want critical", result.Severity)
	}
	if len(alerter.alerts) != 1 {
		t.Fatalf("dispatched %d alerts, want 1", len(alerter.alerts))
	}
	if alerter.alerts[0].Severity != health.AlertCritical {
		t.Errorf("alert severity = %q, want critical", alerter.alerts[0].Severity)
	}
	if repo.lastUpdated.level != string(health.LevelEmpty) {
		t.Errorf("persisted level = %q, want empty", repo.lastUpdated.level)
	}
}

func TestStockCheckLowRunwayTriggersLowStock(t *testing.T) {
	repo := newFakeRepo(gloveBox())
	alerter := &recordingAlerter{}
	handler := NewStockCheckHandler(repo, alerter)

	// 15 units above the threshold of 10, but burning 10/week → 1.5 weeks.
	result, err := handler.Handle(context.Background(), StockCheckCommand{
		ItemID:      1,
		NewQuantity: 15,
		BurnPerWeek: 10,
	})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if result.WeeksRemaining != 1.5 {
		t.Errorf("WeeksRemaining = %v, want 1.5", result.WeeksRemaining)
	}
	if result.Severity != health.AlertLowStock {
		t.Errorf("severity = %q, want low_stock", result.Severity)
	}
	if len(alerter.alerts) != 1 {
		t.Errorf("dispatched %d alerts, want 1", len(alerter.alerts))
	}
}

func TestStockCheckUnknownBurnSkipsRunwayRule(t *testing.T) {
	repo := newFakeRepo(gloveBox())
	alerter := &recordingAlerter{}
	handler := NewStockCheckHandler(repo, alerter)

	// No burn rate: runway reads as effectively infinite, level is medium,
	// so no alert fires.
	result, err := handler.Handle(context.Background(), StockCheckCommand{ItemID: 1, NewQuantity: 15})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if result.WeeksRemaining != health.EffectivelyInfiniteWeeks {
		t.Errorf("WeeksRemaining = %v, want sentinel", result.WeeksRemaining)
	}
	if len(alerter.alerts) != 0 {
		t.Errorf("dispatched %d alerts, want 0", len(alerter.alerts))
	}
}

func TestStockCheckValidation(t *testing.T) {
	handler := NewStockCheckHandler(newFakeRepo(), nil)

	if _, err := handler.Handle(context.Background(), StockCheckCommand{ItemID: 0, NewQuantity: 1}); err == nil {
		t.Error("expected error for missing item_id")
	}
	if _, err := handler.Handle(context.Background(), StockCheckCommand{ItemID: 1, NewQuantity: -2}); err == nil {
		t.Error("expected error for negative quantity")
	}
	if _, err := handler.Handle(context.Background(), StockCheckCommand{ItemID: 99, NewQuantity: 1}); err == nil {
		t.Error("expected error for unknown item")
	}
}

func TestStockCheckWriteFailureSkipsAlert(t *testing.T) {
	repo := newFakeRepo(gloveBox())
	repo.updateErr = fmt.Errorf("connection reset")
	alerter := &recordingAlerter{}
	handler := NewStockCheckHandler(repo, alerter)

	if _, err := handler.Handle(context.Background(), StockCheckCommand{ItemID: 1, NewQuantity: 0}); err == nil {
		t.Fatal("expected error when the write fails")
	}
	if len(alerter.alerts) != 0 {
		t.Error("alert dispatched for a stock update that never persisted")
	}
}
