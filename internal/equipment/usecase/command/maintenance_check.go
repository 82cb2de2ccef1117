package command

import (
	"context"
	"fmt"

	"github.com/labforge/labops/internal/alerting"
	"github.com/labforge/labops/internal/equipment/domain"
	"github.com/labforge/labops/pkg/health"
)

// MaintenanceAlerter is the slice of the alert dispatcher this handler needs.
type MaintenanceAlerter interface {
	DispatchMaintenanceAlert(ctx context.Context, alert alerting.MaintenanceAlert)
}

// MaintenanceCheckCommand represents the command to evaluate a device's
// maintenance freshness and alert when it falls below the device threshold.
type MaintenanceCheckCommand struct {
	DeviceID uint
}

// MaintenanceCheckResult reports the computed score and whether it tripped
// the device's due-soon threshold.
type MaintenanceCheckResult struct {
	Device        *domain.EquipmentDevice `json:"device"`
	HealthPercent int                     `json:"health_percent"`
	DueSoon       bool                    `json:"due_soon"`
}

// MaintenanceCheckHandler handles maintenance check command
type MaintenanceCheckHandler struct {
	repo    domain.EquipmentRepository
	alerter MaintenanceAlerter
}

// NewMaintenanceCheckHandler creates a new maintenance check handler
func NewMaintenanceCheckHandler(repo domain.EquipmentRepository, alerter MaintenanceAlerter) *MaintenanceCheckHandler {
	return &MaintenanceCheckHandler{repo: repo, alerter: alerter}
}

// Handle executes the maintenance check command
func (h *MaintenanceCheckHandler) Handle(ctx context.Context, cmd MaintenanceCheckCommand) (*MaintenanceCheckResult, error) {
	if cmd.DeviceID == 0 {
		return nil, fmt.Errorf("device_id is required")
	}

	device, err := h.repo.FindByID(cmd.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("device not found: %w", err)
	}

	percent := health.MaintenanceScore(device.LastMaintained, device.MaintenanceDays)
	dueSoon := percent < device.ThresholdPercent

	if dueSoon && h.alerter != nil {
		h.alerter.DispatchMaintenanceAlert(ctx, alerting.MaintenanceAlert{
			DeviceID:       device.ID,
			DeviceName:     device.Name,
			HealthPercent:  percent,
			LastMaintained: device.LastMaintained,
		})
	}

	return &MaintenanceCheckResult{
		Device:        device,
		HealthPercent: percent,
		DueSoon:       dueSoon,
	}, nil
}
