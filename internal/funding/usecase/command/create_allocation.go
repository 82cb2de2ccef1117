package command

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/labforge/labops/internal/funding/domain"
)

// CreateAllocationCommand represents the command to create an allocation
type CreateAllocationCommand struct {
	GrantName       string
	FundingSource   string
	AllocatedAmount decimal.Decimal
	Currency        string
}

// CreateAllocationHandler handles create allocation command
type CreateAllocationHandler struct {
	repo domain.FundingRepository
}

// NewCreateAllocationHandler creates a new create allocation handler
func NewCreateAllocationHandler(repo domain.FundingRepository) *CreateAllocationHandler {
	return &CreateAllocationHandler{repo: repo}
}

// Handle executes the create allocation command
func (h *CreateAllocationHandler) Handle(cmd CreateAllocationCommand) (*domain.FundingAllocation, error) {
	if cmd.GrantName == "" {
		return nil, fmt.Errorf("grant_name is required")
	}

	if cmd.AllocatedAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("allocated_amount must be positive")
	}

	if cmd.Currency == "" {
		cmd.Currency = "USD"
	}

	allocation := &domain.FundingAllocation{
		GrantName:        cmd.GrantName,
		FundingSource:    cmd.FundingSource,
		AllocatedAmount:  cmd.AllocatedAmount,
		RemainingBudget:  cmd.AllocatedAmount,
		CurrentSpent:     decimal.Zero,
		CurrentCommitted: decimal.Zero,
		Currency:         cmd.Currency,
	}

	if err := h.repo.Create(allocation); err != nil {
		return nil, fmt.Errorf("failed to create allocation: %w", err)
	}

	return allocation, nil
}
