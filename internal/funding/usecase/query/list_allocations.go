package query

import (
	"fmt"

	"github.com/labforge/labops/internal/funding/domain"
	"github.com/labforge/labops/pkg/health"
)

// ListAllocationsQuery represents the query to list allocations
type ListAllocationsQuery struct {
	Limit  int
	Offset int
}

// AllocationView pairs an allocation with its computed risk tier so list
// consumers do not re-derive the classification.
type AllocationView struct {
	domain.FundingAllocation

	PercentRemaining float64         `json:"percent_remaining"`
	Priority         health.Priority `json:"priority"`
}

// ListAllocationsHandler handles list allocations query
type ListAllocationsHandler struct {
	repo domain.FundingRepository
}

// NewListAllocationsHandler creates a new list allocations handler
func NewListAllocationsHandler(repo domain.FundingRepository) *ListAllocationsHandler {
	return &ListAllocationsHandler{repo: repo}
}

// Handle executes the list allocations query
func (h *ListAllocationsHandler) Handle(q ListAllocationsQuery) ([]AllocationView, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	allocations, err := h.repo.FindAll(q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}

	views := make([]AllocationView, 0, len(allocations))
	for _, a := range allocations {
		percent := health.PercentRemaining(a.RemainingBudget, a.AllocatedAmount)
		views = append(views, AllocationView{
			FundingAllocation: a,
			PercentRemaining:  percent,
			Priority:          health.FundingPriority(percent),
		})
	}

	return views, nil
}
