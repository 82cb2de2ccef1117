package query

import (
	"context"
	"fmt"

	"github.com/labforge/labops/internal/equipment/domain"
	"github.com/labforge/labops/pkg/health"
)

// StockProvider supplies the inventory-side records for the supply join.
type StockProvider interface {
	StockRecords(ctx context.Context) ([]health.StockRecord, error)
}

// DeviceHealthQuery represents the query for a device's composite health view
type DeviceHealthQuery struct {
	DeviceID uint
}

// DeviceHealthReport is the composite read model: maintenance freshness,
// per-supply runway, and the aggregate supply score. Supplies whose inventory
// reference no longer resolves are listed separately rather than scored.
type DeviceHealthReport struct {
	DeviceID           uint                    `json:"device_id"`
	DeviceName         string                  `json:"device_name"`
	MaintenancePercent int                     `json:"maintenance_percent"`
	MaintenanceDueSoon bool                    `json:"maintenance_due_soon"`
	SupplyPercent      int                     `json:"supply_percent"`
	Supplies           []health.EnrichedSupply `json:"supplies"`
	UnlinkedSupplyIDs  []uint                  `json:"unlinked_supply_ids,omitempty"`
}

// DeviceHealthHandler handles device health query
type DeviceHealthHandler struct {
	repo       domain.EquipmentRepository
	stock      StockProvider
	thresholds health.RunwayThresholds
}

// NewDeviceHealthHandler creates a new device health handler
func NewDeviceHealthHandler(repo domain.EquipmentRepository, stock StockProvider, thresholds health.RunwayThresholds) *DeviceHealthHandler {
	return &DeviceHealthHandler{repo: repo, stock: stock, thresholds: thresholds}
}

// Handle executes the device health query. It is a pure read: scoring a
// device here never dispatches alerts, that is the maintenance check's job.
func (h *DeviceHealthHandler) Handle(ctx context.Context, q DeviceHealthQuery) (*DeviceHealthReport, error) {
	if q.DeviceID == 0 {
		return nil, fmt.Errorf("device_id is required")
	}

	device, err := h.repo.FindByID(q.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("device not found: %w", err)
	}

	stock, err := h.stock.StockRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory records: %w", err)
	}

	enriched := make([]health.EnrichedSupply, 0, len(device.Supplies))
	var unlinked []uint
	for _, s := range device.Supplies {
		view, ok := health.EnrichSupply(s.HealthSupply(), stock, h.thresholds)
		if !ok {
			unlinked = append(unlinked, s.ID)
			continue
		}
		enriched = append(enriched, view)
	}

	maintenance := health.MaintenanceScore(device.LastMaintained, device.MaintenanceDays)

	return &DeviceHealthReport{
		DeviceID:           device.ID,
		DeviceName:         device.Name,
		MaintenancePercent: maintenance,
		MaintenanceDueSoon: maintenance < device.ThresholdPercent,
		SupplyPercent:      health.AggregateHealth(enriched),
		Supplies:           enriched,
		UnlinkedSupplyIDs:  unlinked,
	}, nil
}
