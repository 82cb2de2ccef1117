package command

import (
	"fmt"
	"time"

	"github.com/labforge/labops/internal/equipment/domain"
)

// RecordMaintenanceCommand represents the command to record maintenance.
// Date is optional; empty means today.
type RecordMaintenanceCommand struct {
	DeviceID uint
	Date     string
}

// RecordMaintenanceHandler handles record maintenance command
type RecordMaintenanceHandler struct {
	repo domain.EquipmentRepository
}

// NewRecordMaintenanceHandler creates a new record maintenance handler
func NewRecordMaintenanceHandler(repo domain.EquipmentRepository) *RecordMaintenanceHandler {
	return &RecordMaintenanceHandler{repo: repo}
}

// Handle executes the record maintenance command
func (h *RecordMaintenanceHandler) Handle(cmd RecordMaintenanceCommand) error {
	if cmd.DeviceID == 0 {
		return fmt.Errorf("device_id is required")
	}

	if cmd.Date == "" {
		cmd.Date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", cmd.Date); err != nil {
		return fmt.Errorf("date must be an ISO date (YYYY-MM-DD): %w", err)
	}

	if err := h.repo.RecordMaintenance(cmd.DeviceID, cmd.Date); err != nil {
		return fmt.Errorf("failed to record maintenance: %w", err)
	}

	return nil
}
