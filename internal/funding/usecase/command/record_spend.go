package command

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/labforge/labops/internal/funding/domain"
)

// RecordSpendCommand represents the command to record a spend or commitment
// against an allocation. Commit marks the amount as committed rather than
// spent; both reduce the remaining budget.
type RecordSpendCommand struct {
	AllocationID uint
	Amount       decimal.Decimal
	Commit       bool
}

// RecordSpendHandler handles record spend command
type RecordSpendHandler struct {
	repo domain.FundingRepository
}

// NewRecordSpendHandler creates a new record spend handler
func NewRecordSpendHandler(repo domain.FundingRepository) *RecordSpendHandler {
	return &RecordSpendHandler{repo: repo}
}

// Handle executes the record spend command
func (h *RecordSpendHandler) Handle(cmd RecordSpendCommand) (*domain.FundingAllocation, error) {
	if cmd.AllocationID == 0 {
		return nil, fmt.Errorf("allocation_id is required")
	}

	if cmd.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("amount must be positive")
	}

	allocation, err := h.repo.FindByID(cmd.AllocationID)
	if err != nil {
		return nil, fmt.Errorf("allocation not found: %w", err)
	}

	if cmd.Amount.GreaterThan(allocation.RemainingBudget) {
		return nil, fmt.Errorf("amount %s exceeds remaining budget %s",
			cmd.Amount.StringFixed(2), allocation.RemainingBudget.StringFixed(2))
	}

	if cmd.Commit {
		allocation.CurrentCommitted = allocation.CurrentCommitted.Add(cmd.Amount)
	} else {
		allocation.CurrentSpent = allocation.CurrentSpent.Add(cmd.Amount)
	}
	allocation.RemainingBudget = allocation.RemainingBudget.Sub(cmd.Amount)

	if err := h.repo.Update(allocation); err != nil {
		return nil, fmt.Errorf("failed to record spend: %w", err)
	}

	return allocation, nil
}
