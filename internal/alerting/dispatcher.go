package alerting

import (
	"context"

	"github.com/labforge/labops/kafka"
	"github.com/labforge/labops/pkg/health"
	"github.com/labforge/labops/pkg/logger"
)

// RosterProvider supplies the people eligible to be considered for alert
// delivery. The dispatcher narrows the roster to alert-eligible roles.
type RosterProvider interface {
	AlertRoster(ctx context.Context) ([]health.PersonProfile, error)
}

// Publisher is the slice of the Kafka publisher the dispatcher needs.
type Publisher interface {
	PublishStockAlert(ctx context.Context, event kafka.StockAlertEvent) error
	PublishMaintenanceDue(ctx context.Context, event kafka.MaintenanceDueEvent) error
	PublishFundingAlert(ctx context.Context, event kafka.FundingAlertEvent) error
}

// Dispatcher turns alert payloads into published events. It resolves
// recipients from the roster and hands the event to the transport; transport
// failures are logged and counted but never propagated to the caller — a
// failed notification must not block or roll back the update that
// triggered it.
type Dispatcher struct {
	roster    RosterProvider
	publisher Publisher
}

// NewDispatcher creates a new alert dispatcher
func NewDispatcher(roster RosterProvider, publisher Publisher) *Dispatcher {
	return &Dispatcher{roster: roster, publisher: publisher}
}

// DispatchStockAlert publishes a stock alert for the given item.
func (d *Dispatcher) DispatchStockAlert(ctx context.Context, alert StockAlert) {
	recipients := d.recipients(ctx)

	err := d.publisher.PublishStockAlert(ctx, kafka.StockAlertEvent{
		ItemID:          alert.ItemID,
		ProductName:     alert.ProductName,
		CatalogNumber:   alert.CatalogNumber,
		CurrentQuantity: alert.CurrentQuantity,
		MinQuantity:     alert.MinQuantity,
		WeeksRemaining:  alert.WeeksRemaining,
		Severity:        string(alert.Severity),
		Recipients:      recipients,
	})
	if err != nil {
		alertsFailed.WithLabelValues("stock").Inc()
		logger.Logger.Error().
			Err(err).
			Uint("item_id", alert.ItemID).
			Str("severity", string(alert.Severity)).
			Msg("Failed to dispatch stock alert")
		return
	}

	alertsDispatched.WithLabelValues("stock", string(alert.Severity)).Inc()
}

// DispatchMaintenanceAlert publishes a maintenance-due alert for a device.
func (d *Dispatcher) DispatchMaintenanceAlert(ctx context.Context, alert MaintenanceAlert) {
	recipients := d.recipients(ctx)

	err := d.publisher.PublishMaintenanceDue(ctx, kafka.MaintenanceDueEvent{
		DeviceID:       alert.DeviceID,
		DeviceName:     alert.DeviceName,
		HealthPercent:  alert.HealthPercent,
		LastMaintained: alert.LastMaintained,
		Recipients:     recipients,
	})
	if err != nil {
		alertsFailed.WithLabelValues("maintenance").Inc()
		logger.Logger.Error().
			Err(err).
			Uint("device_id", alert.DeviceID).
			Int("health_percent", alert.HealthPercent).
			Msg("Failed to dispatch maintenance alert")
		return
	}

	alertsDispatched.WithLabelValues("maintenance", "due_soon").Inc()
}

// DispatchFundingAlert publishes a low-balance alert for an allocation.
// It returns whether the transport accepted the event so the caller can
// decide whether to stamp the allocation's last-warned timestamp.
func (d *Dispatcher) DispatchFundingAlert(ctx context.Context, alert FundingAlert) bool {
	recipients := d.recipients(ctx)

	err := d.publisher.PublishFundingAlert(ctx, kafka.FundingAlertEvent{
		AllocationID:     alert.AllocationID,
		GrantName:        alert.GrantName,
		PercentRemaining: alert.PercentRemaining,
		Priority:         string(alert.Priority),
		Recipients:       recipients,
	})
	if err != nil {
		alertsFailed.WithLabelValues("funding").Inc()
		logger.Logger.Error().
			Err(err).
			Uint("allocation_id", alert.AllocationID).
			Str("priority", string(alert.Priority)).
			Msg("Failed to dispatch funding alert")
		return false
	}

	alertsDispatched.WithLabelValues("funding", string(alert.Priority)).Inc()
	return true
}

// RecordThrottled counts an alert the cooldown gate suppressed.
func (d *Dispatcher) RecordThrottled() {
	alertsThrottled.Inc()
}

// recipients resolves the current alert-eligible roster to email addresses.
// A roster failure degrades to an empty recipient list rather than blocking
// the alert — the notifier falls back to its default channel.
func (d *Dispatcher) recipients(ctx context.Context) []string {
	if d.roster == nil {
		return nil
	}

	profiles, err := d.roster.AlertRoster(ctx)
	if err != nil {
		logger.Logger.Warn().
			Err(err).
			Msg("Failed to load alert roster, dispatching without recipients")
		return nil
	}

	eligible := health.AlertRecipients(profiles)
	emails := make([]string, 0, len(eligible))
	for _, p := range eligible {
		emails = append(emails, p.Email)
	}
	return emails
}
