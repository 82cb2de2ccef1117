package command

import (
	"context"
	"fmt"
	"time"

	"github.com/labforge/labops/internal/alerting"
	"github.com/labforge/labops/internal/funding/domain"
	"github.com/labforge/labops/pkg/health"
)

// FundingAlerter is the slice of the alert dispatcher this handler needs.
// DispatchFundingAlert reports whether the transport accepted the event.
type FundingAlerter interface {
	DispatchFundingAlert(ctx context.Context, alert alerting.FundingAlert) bool
	RecordThrottled()
}

// BalanceCheckCommand represents the command to classify an allocation's
// remaining budget and alert when it is at risk.
type BalanceCheckCommand struct {
	AllocationID uint
}

// BalanceCheckResult reports the classification and what the check did
// about it.
type BalanceCheckResult struct {
	Allocation       *domain.FundingAllocation `json:"allocation"`
	PercentRemaining float64                   `json:"percent_remaining"`
	Priority         health.Priority           `json:"priority"`
	Notified         bool                      `json:"notified"`
	Throttled        bool                      `json:"throttled"`
}

// BalanceCheckHandler handles balance check command
type BalanceCheckHandler struct {
	repo     domain.FundingRepository
	alerter  FundingAlerter
	interval time.Duration
}

// NewBalanceCheckHandler creates a new balance check handler
func NewBalanceCheckHandler(repo domain.FundingRepository, alerter FundingAlerter, interval time.Duration) *BalanceCheckHandler {
	if interval <= 0 {
		interval = health.DefaultWarningInterval
	}
	return &BalanceCheckHandler{repo: repo, alerter: alerter, interval: interval}
}

// Handle executes the balance check command. High and medium priority
// allocations alert through the cooldown gate; the warning timestamp is
// stamped only after the transport accepts the event, so a failed dispatch
// leaves the allocation eligible for the next check.
func (h *BalanceCheckHandler) Handle(ctx context.Context, cmd BalanceCheckCommand) (*BalanceCheckResult, error) {
	if cmd.AllocationID == 0 {
		return nil, fmt.Errorf("allocation_id is required")
	}

	allocation, err := h.repo.FindByID(cmd.AllocationID)
	if err != nil {
		return nil, fmt.Errorf("allocation not found: %w", err)
	}

	percent := health.PercentRemaining(allocation.RemainingBudget, allocation.AllocatedAmount)
	priority := health.FundingPriority(percent)

	result := &BalanceCheckResult{
		Allocation:       allocation,
		PercentRemaining: percent,
		Priority:         priority,
	}

	if priority == health.PriorityLow || h.alerter == nil {
		return result, nil
	}

	if !health.ShouldNotify(allocation.LastLowBalanceWarningAt, h.interval) {
		h.alerter.RecordThrottled()
		result.Throttled = true
		return result, nil
	}

	if h.alerter.DispatchFundingAlert(ctx, alerting.FundingAlert{
		AllocationID:     allocation.ID,
		GrantName:        allocation.GrantName,
		PercentRemaining: percent,
		Priority:         priority,
	}) {
		result.Notified = true
		now := time.Now()
		if err := h.repo.StampWarned(allocation.ID, now); err != nil {
			return nil, fmt.Errorf("failed to stamp warning time: %w", err)
		}
		allocation.LastLowBalanceWarningAt = &now
	}

	return result, nil
}
