package alerting

import "github.com/labforge/labops/pkg/health"

// StockAlert is the payload handed to the dispatcher after a stock check
// lands in the critical or low-stock branch.
type StockAlert struct {
	ItemID          uint
	ProductName     string
	CatalogNumber   string
	CurrentQuantity float64
	MinQuantity     float64
	WeeksRemaining  float64
	Severity        health.AlertSeverity
}

// MaintenanceAlert is the payload for a device whose maintenance health
// dropped below its due-soon threshold.
type MaintenanceAlert struct {
	DeviceID       uint
	DeviceName     string
	HealthPercent  int
	LastMaintained string
}

// FundingAlert is the payload for an allocation classified as at-risk.
type FundingAlert struct {
	AllocationID     uint
	GrantName        string
	PercentRemaining float64
	Priority         health.Priority
}
