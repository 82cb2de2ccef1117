package alerting

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/labforge/labops/kafka"
	"github.com/labforge/labops/pkg/health"
)

type fakePublisher struct {
	stock       []kafka.StockAlertEvent
	maintenance []kafka.MaintenanceDueEvent
	funding     []kafka.FundingAlertEvent
	fail        bool
}

func (f *fakePublisher) PublishStockAlert(_ context.Context, e kafka.StockAlertEvent) error {
	if f.fail {
		return fmt.Errorf("broker unavailable")
	}
	f.stock = append(f.stock, e)
	return nil
}

func (f *fakePublisher) PublishMaintenanceDue(_ context.Context, e kafka.MaintenanceDueEvent) error {
	if f.fail {
		return fmt.Errorf("broker unavailable")
	}
	f.maintenance = append(f.maintenance, e)
	return nil
}

func (f *fakePublisher) PublishFundingAlert(_ context.Context, e kafka.FundingAlertEvent) error {
	if f.fail {
		return fmt.Errorf("broker unavailable")
	}
	f.funding = append(f.funding, e)
	return nil
}

type fakeRoster struct {
	profiles []health.PersonProfile
	err      error
}

func (f *fakeRoster) AlertRoster(context.Context) ([]health.PersonProfile, error) {
	return f.profiles, f.err
}

func labRoster() *fakeRoster {
	return &fakeRoster{profiles: []health.PersonProfile{
		{ID: 1, Name: "Ada", Email: "ada@lab.example", Role: health.RolePI},
		{ID: 2, Name: "Ben", Email: "ben@lab.example", Role: health.RoleResearcher},
		{ID: 3, Name: "Cam", Email: "cam@lab.example", Role: health.RoleLabManager},
	}}
}

func TestDispatchStockAlertSelectsRecipients(t *testing.T) {
	pub := &fakePublisher{}
	d := NewDispatcher(labRoster(), pub)

	d.DispatchStockAlert(context.Background(), StockAlert{
		ItemID:          7,
		ProductName:     "Acetone 1L",
		CurrentQuantity: 0,
		Severity:        health.AlertCritical,
	})

	assert.Len(t, pub.stock, 1)
	event := pub.stock[0]
	assert.Equal(t, uint(7), event.ItemID)
	assert.Equal(t, string(health.AlertCritical), event.Severity)
	// Researchers are not on the recipient list.
	assert.Equal(t, []string{"ada@lab.example", "cam@lab.example"}, event.Recipients)
}

func TestDispatchSwallowsTransportFailure(t *testing.T) {
	pub := &fakePublisher{fail: true}
	d := NewDispatcher(labRoster(), pub)

	// Must not panic or propagate; the triggering update goes through
	// regardless of the transport.
	d.DispatchStockAlert(context.Background(), StockAlert{ItemID: 1, Severity: health.AlertLowStock})
	d.DispatchMaintenanceAlert(context.Background(), MaintenanceAlert{DeviceID: 2})

	assert.Empty(t, pub.stock)
	assert.Empty(t, pub.maintenance)
}

func TestDispatchFundingAlertReportsOutcome(t *testing.T) {
	pub := &fakePublisher{}
	d := NewDispatcher(labRoster(), pub)

	ok := d.DispatchFundingAlert(context.Background(), FundingAlert{
		AllocationID:     3,
		GrantName:        "NSF-1234",
		PercentRemaining: 8,
		Priority:         health.PriorityHigh,
	})
	assert.True(t, ok, "successful dispatch should allow the caller to stamp last-warned")
	assert.Len(t, pub.funding, 1)

	pub.fail = true
	ok = d.DispatchFundingAlert(context.Background(), FundingAlert{AllocationID: 3})
	assert.False(t, ok, "failed dispatch must not stamp last-warned")
}

func TestDispatchWithBrokenRosterStillPublishes(t *testing.T) {
	pub := &fakePublisher{}
	d := NewDispatcher(&fakeRoster{err: fmt.Errorf("people service down")}, pub)

	d.DispatchStockAlert(context.Background(), StockAlert{ItemID: 9, Severity: health.AlertLowStock})

	assert.Len(t, pub.stock, 1)
	assert.Empty(t, pub.stock[0].Recipients)
}
