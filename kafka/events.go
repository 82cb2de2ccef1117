package kafka

import "time"

// StockAlertEvent is published when a stock check leaves an inventory item
// empty or running low.
type StockAlertEvent struct {
	EventID         string    `json:"event_id"`
	EventType       string    `json:"event_type"`
	ItemID          uint      `json:"item_id"`
	ProductName     string    `json:"product_name"`
	CatalogNumber   string    `json:"catalog_number"`
	CurrentQuantity float64   `json:"current_quantity"`
	MinQuantity     float64   `json:"min_quantity"`
	WeeksRemaining  float64   `json:"weeks_remaining"`
	Severity        string    `json:"severity"`
	Recipients      []string  `json:"recipients"`
	Timestamp       time.Time `json:"timestamp"`
}

// MaintenanceDueEvent is published when a device's maintenance health drops
// below its due-soon threshold.
type MaintenanceDueEvent struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	DeviceID       uint      `json:"device_id"`
	DeviceName     string    `json:"device_name"`
	HealthPercent  int       `json:"health_percent"`
	LastMaintained string    `json:"last_maintained"`
	Recipients     []string  `json:"recipients"`
	Timestamp      time.Time `json:"timestamp"`
}

// FundingAlertEvent is published when an allocation's remaining balance
// classifies as medium or high risk and the throttle gate allows a send.
type FundingAlertEvent struct {
	EventID          string    `json:"event_id"`
	EventType        string    `json:"event_type"`
	AllocationID     uint      `json:"allocation_id"`
	GrantName        string    `json:"grant_name"`
	PercentRemaining float64   `json:"percent_remaining"`
	Priority         string    `json:"priority"`
	Recipients       []string  `json:"recipients"`
	Timestamp        time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeStockAlert     = "inventory.stock_alert"
	EventTypeMaintenanceDue = "equipment.maintenance_due"
	EventTypeFundingAlert   = "funding.low_balance"
)

// Kafka topics
const (
	TopicStockAlerts       = "stock-alerts"
	TopicMaintenanceAlerts = "maintenance-alerts"
	TopicFundingAlerts     = "funding-alerts"
)
