package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/labforge/labops/internal/funding/domain"
)

type GormFundingRepository struct {
	db *gorm.DB
}

func NewGormFundingRepository(db *gorm.DB) *GormFundingRepository {
	return &GormFundingRepository{db: db}
}

func (r *GormFundingRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.FundingAllocation{})
}

func (r *GormFundingRepository) Create(allocation *domain.FundingAllocation) error {
	return r.db.Create(allocation).Error
}

func (r *GormFundingRepository) FindByID(id uint) (*domain.FundingAllocation, error) {
	var allocation domain.FundingAllocation
	err := r.db.First(&allocation, id).Error
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}

func (r *GormFundingRepository) FindAll(limit, offset int) ([]domain.FundingAllocation, error) {
	var allocations []domain.FundingAllocation
	err := r.db.Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&allocations).Error
	return allocations, err
}

func (r *GormFundingRepository) Update(allocation *domain.FundingAllocation) error {
	return r.db.Save(allocation).Error
}

func (r *GormFundingRepository) Delete(id uint) error {
	return r.db.Delete(&domain.FundingAllocation{}, id).Error
}

func (r *GormFundingRepository) StampWarned(id uint, warnedAt time.Time) error {
	return r.db.Model(&domain.FundingAllocation{}).
		Where("id = ?", id).
		Update("last_low_balance_warning_at", warnedAt).Error
}
