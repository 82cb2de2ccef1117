package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/labforge/labops/pkg/health"
)

// InventoryItem represents a consumable tracked by the lab.
// InventoryLevel is derived from the quantity on every stock check and is
// never treated as a source of truth.
type InventoryItem struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	ProductName     string          `json:"product_name" gorm:"not null;index"`
	CatalogNumber   string          `json:"catalog_number" gorm:"index"`
	CurrentQuantity float64         `json:"current_quantity" gorm:"not null;default:0"`
	MinQuantity     float64         `json:"min_quantity" gorm:"not null;default:0"`
	Price           decimal.Decimal `json:"price" gorm:"type:numeric(12,2)"`
	Currency        string          `json:"currency" gorm:"default:'USD'"`
	InventoryLevel  string          `json:"inventory_level" gorm:"default:'full'"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// StockRecord maps the item to the engine's join view.
func (i *InventoryItem) StockRecord() health.StockRecord {
	return health.StockRecord{
		ID:              i.ID,
		Name:            i.ProductName,
		CatalogNumber:   i.CatalogNumber,
		CurrentQuantity: i.CurrentQuantity,
	}
}

// InventoryRepository defines the contract for inventory data access
type InventoryRepository interface {
	Create(item *InventoryItem) error
	FindByID(id uint) (*InventoryItem, error)
	FindByCatalogNumber(catalogNumber string) (*InventoryItem, error)
	FindAll(limit, offset int) ([]InventoryItem, error)
	FindBelowMinimum() ([]InventoryItem, error)
	Update(item *InventoryItem) error
	Delete(id uint) error
	UpdateStock(id uint, quantity float64, level string) error
}
