package query

import (
	"fmt"

	"github.com/labforge/labops/internal/equipment/domain"
)

// GetDeviceQuery represents the query to get a device by ID
type GetDeviceQuery struct {
	DeviceID uint
}

// GetDeviceHandler handles get device query
type GetDeviceHandler struct {
	repo domain.EquipmentRepository
}

// NewGetDeviceHandler creates a new get device handler
func NewGetDeviceHandler(repo domain.EquipmentRepository) *GetDeviceHandler {
	return &GetDeviceHandler{repo: repo}
}

// Handle executes the get device query
func (h *GetDeviceHandler) Handle(q GetDeviceQuery) (*domain.EquipmentDevice, error) {
	if q.DeviceID == 0 {
		return nil, fmt.Errorf("device_id is required")
	}

	device, err := h.repo.FindByID(q.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("device not found: %w", err)
	}

	return device, nil
}
