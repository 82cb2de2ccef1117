package command

import (
	"fmt"

	"github.com/labforge/labops/internal/equipment/domain"
)

// DeleteDeviceCommand represents the command to delete a device
type DeleteDeviceCommand struct {
	DeviceID uint
}

// DeleteDeviceHandler handles delete device command
type DeleteDeviceHandler struct {
	repo domain.EquipmentRepository
}

// NewDeleteDeviceHandler creates a new delete device handler
func NewDeleteDeviceHandler(repo domain.EquipmentRepository) *DeleteDeviceHandler {
	return &DeleteDeviceHandler{repo: repo}
}

// Handle executes the delete device command
func (h *DeleteDeviceHandler) Handle(cmd DeleteDeviceCommand) error {
	if cmd.DeviceID == 0 {
		return fmt.Errorf("device_id is required")
	}

	if _, err := h.repo.FindByID(cmd.DeviceID); err != nil {
		return fmt.Errorf("device not found: %w", err)
	}

	if err := h.repo.Delete(cmd.DeviceID); err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}

	return nil
}
