package domain

import (
	"time"

	"gorm.io/gorm"

	"github.com/labforge/labops/pkg/health"
)

// EquipmentDevice represents an instrument the lab maintains on a schedule.
// LastMaintained is an ISO date string; MaintenanceDays is the interval the
// maintenance health decays over; ThresholdPercent is the score below which
// the device counts as due for maintenance soon.
type EquipmentDevice struct {
	ID               uint              `json:"id" gorm:"primaryKey"`
	Name             string            `json:"name" gorm:"not null;index"`
	Location         string            `json:"location"`
	LastMaintained   string            `json:"last_maintained"`
	MaintenanceDays  int               `json:"maintenance_days" gorm:"not null;default:90"`
	ThresholdPercent int               `json:"threshold_percent" gorm:"not null;default:20"`
	Supplies         []EquipmentSupply `json:"supplies" gorm:"foreignKey:DeviceID"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	DeletedAt        gorm.DeletedAt    `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (EquipmentDevice) TableName() string {
	return "equipment_devices"
}

// EquipmentSupply is a device-scoped consumable requirement. InventoryItemID
// is a weak reference into the inventory service's records; it may dangle
// after an item is deleted there, which the enrichment join treats as an
// expected absent state.
type EquipmentSupply struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	DeviceID          uint           `json:"device_id" gorm:"not null;index"`
	InventoryItemID   uint           `json:"inventory_item_id" gorm:"index"`
	BurnPerWeek       float64        `json:"burn_per_week" gorm:"not null;default:0"`
	MinQty            float64        `json:"min_qty" gorm:"not null;default:0"`
	AccountOverride   string         `json:"account_override"`
	ChargeToProjectID uint           `json:"charge_to_project_id"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (EquipmentSupply) TableName() string {
	return "equipment_supplies"
}

// HealthSupply maps the record to the engine's supply input.
func (s *EquipmentSupply) HealthSupply() health.EquipmentSupply {
	return health.EquipmentSupply{
		ID:                s.ID,
		InventoryItemID:   s.InventoryItemID,
		BurnPerWeek:       s.BurnPerWeek,
		MinQty:            s.MinQty,
		AccountOverride:   s.AccountOverride,
		ChargeToProjectID: s.ChargeToProjectID,
	}
}

// EquipmentRepository defines the contract for equipment data access
type EquipmentRepository interface {
	Create(device *EquipmentDevice) error
	FindByID(id uint) (*EquipmentDevice, error)
	FindAll(limit, offset int) ([]EquipmentDevice, error)
	Update(device *EquipmentDevice) error
	Delete(id uint) error
	RecordMaintenance(id uint, date string) error
	AddSupply(supply *EquipmentSupply) error
	UpdateSupply(supply *EquipmentSupply) error
	RemoveSupply(id uint) error
}
