package command

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/labforge/labops/internal/alerting"
	"github.com/labforge/labops/internal/funding/domain"
	"github.com/labforge/labops/pkg/health"
)

type fakeRepo struct {
	allocations map[uint]*domain.FundingAllocation
	stamped     map[uint]time.Time
	stampErr    error
}

func newFakeRepo(allocations ...*domain.FundingAllocation) *fakeRepo {
	r := &fakeRepo{
		allocations: make(map[uint]*domain.FundingAllocation),
		stamped:     make(map[uint]time.Time),
	}
	for _, a := range allocations {
		r.allocations[a.ID] = a
	}
	return r
}

func (r *fakeRepo) Create(a *domain.FundingAllocation) error { r.allocations[a.ID] = a; return nil }

func (r *fakeRepo) FindByID(id uint) (*domain.FundingAllocation, error) {
	a, ok := r.allocations[id]
	if !ok {
		return nil, fmt.Errorf("record not found")
	}
	copied := *a
	return &copied, nil
}

func (r *fakeRepo) FindAll(int, int) ([]domain.FundingAllocation, error) { return nil, nil }

func (r *fakeRepo) Update(a *domain.FundingAllocation) error { r.allocations[a.ID] = a; return nil }

func (r *fakeRepo) Delete(id uint) error { delete(r.allocations, id); return nil }

func (r *fakeRepo) StampWarned(id uint, warnedAt time.Time) error {
	if r.stampErr != nil {
		return r.stampErr
	}
	r.stamped[id] = warnedAt
	return nil
}

type recordingAlerter struct {
	alerts    []alerting.FundingAlert
	throttled int
	fail      bool
}

func (a *recordingAlerter) DispatchFundingAlert(_ context.Context, alert alerting.FundingAlert) bool {
	if a.fail {
		return false
	}
	a.alerts = append(a.alerts, alert)
	return true
}

func (a *recordingAlerter) RecordThrottled() { a.throttled++ }

func grantR01(remaining int64) *domain.FundingAllocation {
	return &domain.FundingAllocation{
		ID:              1,
		GrantName:       "R01 Sequencing Core",
		AllocatedAmount: decimal.NewFromInt(1000),
		RemainingBudget: decimal.NewFromInt(remaining),
	}
}

func TestBalanceCheckHighPriorityNotifies(t *testing.T) {
	// 80 of 1000 remaining → 8% → high, never warned → alert goes out and
	// the warning timestamp is stamped.
	repo := newFakeRepo(grantR01(80))
	alerter := &recordingAlerter{}
	handler := NewBalanceCheckHandler(repo, alerter, 0)

	result, err := handler.Handle(context.Background(), BalanceCheckCommand{AllocationID: 1})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if result.Priority != health.PriorityHigh {
		t.Errorf("priority = %q, want high", result.Priority)
	}
	if !result.Notified {
		t.Error("expected notification for an unwarned high-priority allocation")
	}
	if len(alerter.alerts) != 1 {
		t.Fatalf("dispatched %d alerts, want 1", len(alerter.alerts))
	}
	if alerter.alerts[0].PercentRemaining != 8 {
		t.Errorf("alert percent = %v, want 8", alerter.alerts[0].PercentRemaining)
	}
	if _, ok := repo.stamped[1]; !ok {
		t.Error("warning timestamp not stamped after successful dispatch")
	}
}

func TestBalanceCheckRecentWarningThrottles(t *testing.T) {
	// Same 8% allocation warned 5 hours ago: still classified high, but the
	// 24h cooldown suppresses the repeat alert.
	alloc := grantR01(80)
	warnedAt := time.Now().Add(-5 * time.Hour)
	alloc.LastLowBalanceWarningAt = &warnedAt

	repo := newFakeRepo(alloc)
	alerter := &recordingAlerter{}
	handler := NewBalanceCheckHandler(repo, alerter, 0)

	result, err := handler.Handle(context.Background(), BalanceCheckCommand{AllocationID: 1})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if result.Priority != health.PriorityHigh {
		t.Errorf("priority = %q, want high", result.Priority)
	}
	if !result.Throttled {
		t.Error("expected the cooldown to throttle the repeat alert")
	}
	if len(alerter.alerts) != 0 {
		t.Errorf("dispatched %d alerts, want 0", len(alerter.alerts))
	}
	if alerter.throttled != 1 {
		t.Errorf("throttled counter = %d, want 1", alerter.throttled)
	}
	if _, ok := repo.stamped[1]; ok {
		t.Error("timestamp stamped for a throttled check")
	}
}

func TestBalanceCheckStaleWarningNotifiesAgain(t *testing.T) {
	// Warned 25 hours ago: the inclusive 24h boundary has passed.
	alloc := grantR01(150)
	warnedAt := time.Now().Add(-25 * time.Hour)
	alloc.LastLowBalanceWarningAt = &warnedAt

	repo := newFakeRepo(alloc)
	alerter := &recordingAlerter{}
	handler := NewBalanceCheckHandler(repo, alerter, 0)

	result, err := handler.Handle(context.Background(), BalanceCheckCommand{AllocationID: 1})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if result.Priority != health.PriorityMedium {
		t.Errorf("priority = %q, want medium", result.Priority)
	}
	if !result.Notified {
		t.Error("expected notification once the cooldown elapsed")
	}
}

func TestBalanceCheckHealthyAllocationStaysQuiet(t *testing.T) {
	repo := newFakeRepo(grantR01(600))
	alerter := &recordingAlerter{}
	handler := NewBalanceCheckHandler(repo, alerter, 0)

	result, err := handler.Handle(context.Background(), BalanceCheckCommand{AllocationID: 1})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if result.Priority != health.PriorityLow {
		t.Errorf("priority = %q, want low", result.Priority)
	}
	if len(alerter.alerts) != 0 || alerter.throttled != 0 {
		t.Error("low-priority allocation touched the alerter")
	}
}

func TestBalanceCheckFailedDispatchLeavesStampAlone(t *testing.T) {
	// A dropped event must not mark the allocation as warned, or the alert
	// would be silently lost until the next cooldown expires.
	repo := newFakeRepo(grantR01(80))
	alerter := &recordingAlerter{fail: true}
	handler := NewBalanceCheckHandler(repo, alerter, 0)

	result, err := handler.Handle(context.Background(), BalanceCheckCommand{AllocationID: 1})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if result.Notified {
		t.Error("Notified set even though the transport rejected the event")
	}
	if _, ok := repo.stamped[1]; ok {
		t.Error("timestamp stamped after a failed dispatch")
	}
}

func TestBalanceCheckValidation(t *testing.T) {
	handler := NewBalanceCheckHandler(newFakeRepo(), nil, 0)

	if _, err := handler.Handle(context.Background(), BalanceCheckCommand{AllocationID: 0}); err == nil {
		t.Error("expected error for missing allocation_id")
	}
	if _, err := handler.Handle(context.Background(), BalanceCheckCommand{AllocationID: 9}); err == nil {
		t.Error("expected error for unknown allocation")
	}
}

func TestRecordSpendReducesRemaining(t *testing.T) {
	repo := newFakeRepo(grantR01(600))
	handler := NewRecordSpendHandler(repo)

	alloc, err := handler.Handle(RecordSpendCommand{AllocationID: 1, Amount: decimal.NewFromInt(100)})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if !alloc.RemainingBudget.Equal(decimal.NewFromInt(500)) {
		t.Errorf("remaining = %s, want 500", alloc.RemainingBudget)
	}
	if !alloc.CurrentSpent.Equal(decimal.NewFromInt(100)) {
		t.Errorf("spent = %s, want 100", alloc.CurrentSpent)
	}
}

func TestRecordSpendRejectsOverdraft(t *testing.T) {
	repo := newFakeRepo(grantR01(50))
	handler := NewRecordSpendHandler(repo)

	if _, err := handler.Handle(RecordSpendCommand{AllocationID: 1, Amount: decimal.NewFromInt(100)}); err == nil {
		t.Error("expected error when spend exceeds remaining budget")
	}
}

func TestRecordSpendCommitTracksSeparately(t *testing.T) {
	repo := newFakeRepo(grantR01(600))
	handler := NewRecordSpendHandler(repo)

	alloc, err := handler.Handle(RecordSpendCommand{AllocationID: 1, Amount: decimal.NewFromInt(200), Commit: true})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if !alloc.CurrentCommitted.Equal(decimal.NewFromInt(200)) {
		t.Errorf("committed = %s, want 200", alloc.CurrentCommitted)
	}
	if !alloc.CurrentSpent.Equal(decimal.Zero) {
		t.Errorf("spent = %s, want 0", alloc.CurrentSpent)
	}
	if !alloc.RemainingBudget.Equal(decimal.NewFromInt(400)) {
		t.Errorf("remaining = %s, want 400", alloc.RemainingBudget)
	}
}
