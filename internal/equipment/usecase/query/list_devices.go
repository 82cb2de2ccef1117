package query

import (
	"fmt"

	"github.com/labforge/labops/internal/equipment/domain"
)

// ListDevicesQuery represents the query to list devices
type ListDevicesQuery struct {
	Limit  int
	Offset int
}

// ListDevicesHandler handles list devices query
type ListDevicesHandler struct {
	repo domain.EquipmentRepository
}

// NewListDevicesHandler creates a new list devices handler
func NewListDevicesHandler(repo domain.EquipmentRepository) *ListDevicesHandler {
	return &ListDevicesHandler{repo: repo}
}

// Handle executes the list devices query
func (h *ListDevicesHandler) Handle(q ListDevicesQuery) ([]domain.EquipmentDevice, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	devices, err := h.repo.FindAll(q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	return devices, nil
}
