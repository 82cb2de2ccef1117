package command

import (
	"fmt"

	"github.com/labforge/labops/internal/equipment/domain"
)

// UpdateDeviceCommand represents the command to update a device
type UpdateDeviceCommand struct {
	DeviceID         uint
	Name             string
	Location         string
	MaintenanceDays  int
	ThresholdPercent int
}

// UpdateDeviceHandler handles update device command
type UpdateDeviceHandler struct {
	repo domain.EquipmentRepository
}

// NewUpdateDeviceHandler creates a new update device handler
func NewUpdateDeviceHandler(repo domain.EquipmentRepository) *UpdateDeviceHandler {
	return &UpdateDeviceHandler{repo: repo}
}

// Handle executes the update device command
func (h *UpdateDeviceHandler) Handle(cmd UpdateDeviceCommand) (*domain.EquipmentDevice, error) {
	if cmd.DeviceID == 0 {
		return nil, fmt.Errorf("device_id is required")
	}

	device, err := h.repo.FindByID(cmd.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("device not found: %w", err)
	}

	if cmd.Name != "" {
		device.Name = cmd.Name
	}
	if cmd.Location != "" {
		device.Location = cmd.Location
	}
	if cmd.MaintenanceDays > 0 {
		device.MaintenanceDays = cmd.MaintenanceDays
	}
	if cmd.ThresholdPercent > 0 {
		if cmd.ThresholdPercent > 100 {
			return nil, fmt.Errorf("threshold_percent must be between 0 and 100")
		}
		device.ThresholdPercent = cmd.ThresholdPercent
	}

	if err := h.repo.Update(device); err != nil {
		return nil, fmt.Errorf("failed to update device: %w", err)
	}

	return device, nil
}
