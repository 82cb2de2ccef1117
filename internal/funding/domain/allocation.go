package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FundingAllocation represents a grant or account budget a lab draws on.
// RemainingBudget is maintained alongside spent/committed so the balance
// check reads one row. LastLowBalanceWarningAt is the throttle stamp: nil
// means no low-balance alert has ever gone out for this allocation.
type FundingAllocation struct {
	ID                      uint            `json:"id" gorm:"primaryKey"`
	GrantName               string          `json:"grant_name" gorm:"not null;index"`
	FundingSource           string          `json:"funding_source"`
	AllocatedAmount         decimal.Decimal `json:"allocated_amount" gorm:"type:numeric(14,2);not null"`
	RemainingBudget         decimal.Decimal `json:"remaining_budget" gorm:"type:numeric(14,2);not null"`
	CurrentSpent            decimal.Decimal `json:"current_spent" gorm:"type:numeric(14,2)"`
	CurrentCommitted        decimal.Decimal `json:"current_committed" gorm:"type:numeric(14,2)"`
	Currency                string          `json:"currency" gorm:"default:'USD'"`
	LastLowBalanceWarningAt *time.Time      `json:"last_low_balance_warning_at"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
	DeletedAt               gorm.DeletedAt  `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (FundingAllocation) TableName() string {
	return "funding_allocations"
}

// FundingRepository defines the contract for funding data access
type FundingRepository interface {
	Create(allocation *FundingAllocation) error
	FindByID(id uint) (*FundingAllocation, error)
	FindAll(limit, offset int) ([]FundingAllocation, error)
	Update(allocation *FundingAllocation) error
	Delete(id uint) error
	StampWarned(id uint, warnedAt time.Time) error
}
