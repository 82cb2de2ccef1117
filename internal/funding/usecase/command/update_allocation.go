package command

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/labforge/labops/internal/funding/domain"
)

// UpdateAllocationCommand represents the command to update an allocation
type UpdateAllocationCommand struct {
	AllocationID    uint
	GrantName       string
	FundingSource   string
	AllocatedAmount decimal.Decimal
}

// UpdateAllocationHandler handles update allocation command
type UpdateAllocationHandler struct {
	repo domain.FundingRepository
}

// NewUpdateAllocationHandler creates a new update allocation handler
func NewUpdateAllocationHandler(repo domain.FundingRepository) *UpdateAllocationHandler {
	return &UpdateAllocationHandler{repo: repo}
}

// Handle executes the update allocation command. Raising or lowering the
// allocated amount adjusts the remaining budget by the same delta.
func (h *UpdateAllocationHandler) Handle(cmd UpdateAllocationCommand) (*domain.FundingAllocation, error) {
	if cmd.AllocationID == 0 {
		return nil, fmt.Errorf("allocation_id is required")
	}

	allocation, err := h.repo.FindByID(cmd.AllocationID)
	if err != nil {
		return nil, fmt.Errorf("allocation not found: %w", err)
	}

	if cmd.GrantName != "" {
		allocation.GrantName = cmd.GrantName
	}
	if cmd.FundingSource != "" {
		allocation.FundingSource = cmd.FundingSource
	}
	if cmd.AllocatedAmount.GreaterThan(decimal.Zero) {
		delta := cmd.AllocatedAmount.Sub(allocation.AllocatedAmount)
		allocation.AllocatedAmount = cmd.AllocatedAmount
		allocation.RemainingBudget = allocation.RemainingBudget.Add(delta)
	}

	if err := h.repo.Update(allocation); err != nil {
		return nil, fmt.Errorf("failed to update allocation: %w", err)
	}

	return allocation, nil
}
