package command

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/labforge/labops/internal/inventory/domain"
	"github.com/labforge/labops/pkg/health"
)

// CreateItemCommand represents the command to create an inventory item
type CreateItemCommand struct {
	ProductName     string
	CatalogNumber   string
	CurrentQuantity float64
	MinQuantity     float64
	Price           decimal.Decimal
	Currency        string
}

// CreateItemHandler handles create item command
type CreateItemHandler struct {
	repo domain.InventoryRepository
}

// NewCreateItemHandler creates a new create item handler
func NewCreateItemHandler(repo domain.InventoryRepository) *CreateItemHandler {
	return &CreateItemHandler{repo: repo}
}

// Handle executes the create item command
func (h *CreateItemHandler) Handle(cmd CreateItemCommand) (*domain.InventoryItem, error) {
	if cmd.ProductName == "" {
		return nil, fmt.Errorf("product_name is required")
	}

	if cmd.CurrentQuantity < 0 {
		return nil, fmt.Errorf("current_quantity cannot be negative")
	}

	if cmd.MinQuantity < 0 {
		return nil, fmt.Errorf("min_quantity cannot be negative")
	}

	if cmd.Currency == "" {
		cmd.Currency = "USD"
	}

	item := &domain.InventoryItem{
		ProductName:     cmd.ProductName,
		CatalogNumber:   cmd.CatalogNumber,
		CurrentQuantity: cmd.CurrentQuantity,
		MinQuantity:     cmd.MinQuantity,
		Price:           cmd.Price,
		Currency:        cmd.Currency,
		InventoryLevel:  string(health.LevelForQuantity(cmd.CurrentQuantity, cmd.MinQuantity)),
	}

	if err := h.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}

	return item, nil
}
