package query

import (
	"fmt"

	"github.com/labforge/labops/internal/funding/domain"
)

// GetAllocationQuery represents the query to get an allocation by ID
type GetAllocationQuery struct {
	AllocationID uint
}

// GetAllocationHandler handles get allocation query
type GetAllocationHandler struct {
	repo domain.FundingRepository
}

// NewGetAllocationHandler creates a new get allocation handler
func NewGetAllocationHandler(repo domain.FundingRepository) *GetAllocationHandler {
	return &GetAllocationHandler{repo: repo}
}

// Handle executes the get allocation query
func (h *GetAllocationHandler) Handle(q GetAllocationQuery) (*domain.FundingAllocation, error) {
	if q.AllocationID == 0 {
		return nil, fmt.Errorf("allocation_id is required")
	}

	allocation, err := h.repo.FindByID(q.AllocationID)
	if err != nil {
		return nil, fmt.Errorf("allocation not found: %w", err)
	}

	return allocation, nil
}
