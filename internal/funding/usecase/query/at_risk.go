package query

import (
	"fmt"

	"github.com/labforge/labops/internal/funding/domain"
	"github.com/labforge/labops/pkg/health"
)

// AtRiskHandler lists allocations classified high or medium priority.
type AtRiskHandler struct {
	repo domain.FundingRepository
}

// NewAtRiskHandler creates a new at-risk handler
func NewAtRiskHandler(repo domain.FundingRepository) *AtRiskHandler {
	return &AtRiskHandler{repo: repo}
}

// Handle returns the at-risk slice of the portfolio, worst first.
func (h *AtRiskHandler) Handle() ([]AllocationView, error) {
	allocations, err := h.repo.FindAll(100, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}

	var high, medium []AllocationView
	for _, a := range allocations {
		percent := health.PercentRemaining(a.RemainingBudget, a.AllocatedAmount)
		view := AllocationView{
			FundingAllocation: a,
			PercentRemaining:  percent,
			Priority:          health.FundingPriority(percent),
		}
		switch view.Priority {
		case health.PriorityHigh:
			high = append(high, view)
		case health.PriorityMedium:
			medium = append(medium, view)
		}
	}

	return append(high, medium...), nil
}
