package repository

import (
	"github.com/labforge/labops/internal/inventory/domain"
	"gorm.io/gorm"
)

type GormInventoryRepository struct {
	db *gorm.DB
}

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

func (r *GormInventoryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.InventoryItem{})
}

func (r *GormInventoryRepository) Create(item *domain.InventoryItem) error {
	return r.db.Create(item).Error
}

func (r *GormInventoryRepository) FindByID(id uint) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormInventoryRepository) FindByCatalogNumber(catalogNumber string) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := r.db.Where("catalog_number = ?", catalogNumber).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormInventoryRepository) FindAll(limit, offset int) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	err := r.db.Limit(limit).Offset(offset).Find(&items).Error
	return items, err
}

func (r *GormInventoryRepository) FindBelowMinimum() ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	err := r.db.Where("current_quantity <= min_quantity").Find(&items).Error
	return items, err
}

func (r *GormInventoryRepository) Update(item *domain.InventoryItem) error {
	return r.db.Save(item).Error
}

func (r *GormInventoryRepository) Delete(id uint) error {
	return r.db.Delete(&domain.InventoryItem{}, id).Error
}

func (r *GormInventoryRepository) UpdateStock(id uint, quantity float64, level string) error {
	return r.db.Model(&domain.InventoryItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"current_quantity": quantity,
			"inventory_level":  level,
		}).Error
}
