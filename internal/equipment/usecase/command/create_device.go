package command

import (
	"fmt"
	"time"

	"github.com/labforge/labops/internal/equipment/domain"
)

// CreateDeviceCommand represents the command to create a device
type CreateDeviceCommand struct {
	Name             string
	Location         string
	LastMaintained   string
	MaintenanceDays  int
	ThresholdPercent int
}

// CreateDeviceHandler handles create device command
type CreateDeviceHandler struct {
	repo domain.EquipmentRepository
}

// NewCreateDeviceHandler creates a new create device handler
func NewCreateDeviceHandler(repo domain.EquipmentRepository) *CreateDeviceHandler {
	return &CreateDeviceHandler{repo: repo}
}

// Handle executes the create device command
func (h *CreateDeviceHandler) Handle(cmd CreateDeviceCommand) (*domain.EquipmentDevice, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	if cmd.MaintenanceDays <= 0 {
		return nil, fmt.Errorf("maintenance_days must be positive")
	}

	if cmd.ThresholdPercent < 0 || cmd.ThresholdPercent > 100 {
		return nil, fmt.Errorf("threshold_percent must be between 0 and 100")
	}

	if cmd.LastMaintained == "" {
		cmd.LastMaintained = time.Now().Format("2006-01-02")
	}

	device := &domain.EquipmentDevice{
		Name:             cmd.Name,
		Location:         cmd.Location,
		LastMaintained:   cmd.LastMaintained,
		MaintenanceDays:  cmd.MaintenanceDays,
		ThresholdPercent: cmd.ThresholdPercent,
	}

	if err := h.repo.Create(device); err != nil {
		return nil, fmt.Errorf("failed to create device: %w", err)
	}

	return device, nil
}
