package repository

import (
	"github.com/labforge/labops/internal/equipment/domain"
	"gorm.io/gorm"
)

type GormEquipmentRepository struct {
	db *gorm.DB
}

func NewGormEquipmentRepository(db *gorm.DB) *GormEquipmentRepository {
	return &GormEquipmentRepository{db: db}
}

func (r *GormEquipmentRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.EquipmentDevice{}, &domain.EquipmentSupply{})
}

func (r *GormEquipmentRepository) Create(device *domain.EquipmentDevice) error {
	return r.db.Create(device).Error
}

func (r *GormEquipmentRepository) FindByID(id uint) (*domain.EquipmentDevice, error) {
	var device domain.EquipmentDevice
	err := r.db.Preload("Supplies").First(&device, id).Error
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *GormEquipmentRepository) FindAll(limit, offset int) ([]domain.EquipmentDevice, error) {
	var devices []domain.EquipmentDevice
	err := r.db.Preload("Supplies").Limit(limit).Offset(offset).Find(&devices).Error
	return devices, err
}

func (r *GormEquipmentRepository) Update(device *domain.EquipmentDevice) error {
	return r.db.Save(device).Error
}

func (r *GormEquipmentRepository) Delete(id uint) error {
	if err := r.db.Where("device_id = ?", id).Delete(&domain.EquipmentSupply{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&domain.EquipmentDevice{}, id).Error
}

func (r *GormEquipmentRepository) RecordMaintenance(id uint, date string) error {
	return r.db.Model(&domain.EquipmentDevice{}).
		Where("id = ?", id).
		Update("last_maintained", date).Error
}

func (r *GormEquipmentRepository) AddSupply(supply *domain.EquipmentSupply) error {
	return r.db.Create(supply).Error
}

func (r *GormEquipmentRepository) UpdateSupply(supply *domain.EquipmentSupply) error {
	return r.db.Save(supply).Error
}

func (r *GormEquipmentRepository) RemoveSupply(id uint) error {
	return r.db.Delete(&domain.EquipmentSupply{}, id).Error
}
