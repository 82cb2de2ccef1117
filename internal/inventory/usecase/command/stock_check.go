package command

import (
	"context"
	"fmt"

	"github.com/labforge/labops/internal/alerting"
	"github.com/labforge/labops/internal/inventory/domain"
	"github.com/labforge/labops/pkg/health"
)

// StockAlerter is the slice of the alert dispatcher the stock check needs.
type StockAlerter interface {
	DispatchStockAlert(ctx context.Context, alert alerting.StockAlert)
}

// StockCheckCommand records the counted quantity for an item. BurnPerWeek is
// the expected consumption rate when the caller knows it (a device-driven
// check passes its supply's rate); zero means unknown, which reads as
// unlimited runway, so only the level rules can trigger an alert.
type StockCheckCommand struct {
	ItemID      uint
	NewQuantity float64
	BurnPerWeek float64
}

// StockCheckResult is the outcome of a stock check.
type StockCheckResult struct {
	Item           *domain.InventoryItem
	WeeksRemaining float64
	Severity       health.AlertSeverity
}

// StockCheckHandler applies a counted quantity to an item: it recomputes the
// derived inventory level, persists the update, and hands any resulting
// alert to the dispatcher. The alert path is strictly after the write and
// never fails it.
type StockCheckHandler struct {
	repo    domain.InventoryRepository
	alerter StockAlerter
}

// NewStockCheckHandler creates a new stock check handler
func NewStockCheckHandler(repo domain.InventoryRepository, alerter StockAlerter) *StockCheckHandler {
	return &StockCheckHandler{repo: repo, alerter: alerter}
}

// Handle executes the stock check command
func (h *StockCheckHandler) Handle(ctx context.Context, cmd StockCheckCommand) (*StockCheckResult, error) {
	if cmd.ItemID == 0 {
		return nil, fmt.Errorf("item_id is required")
	}
	if cmd.NewQuantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}

	item, err := h.repo.FindByID(cmd.ItemID)
	if err != nil {
		return nil, fmt.Errorf("inventory item not found: %w", err)
	}

	level := health.LevelForQuantity(cmd.NewQuantity, item.MinQuantity)
	if err := h.repo.UpdateStock(item.ID, cmd.NewQuantity, string(level)); err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}

	item.CurrentQuantity = cmd.NewQuantity
	item.InventoryLevel = string(level)

	weeks := health.WeeksRemaining(cmd.NewQuantity, cmd.BurnPerWeek)
	severity := health.StockAlertSeverity(cmd.NewQuantity, item.MinQuantity, weeks)

	if severity != health.AlertNone && h.alerter != nil {
		h.alerter.DispatchStockAlert(ctx, alerting.StockAlert{
			ItemID:          item.ID,
			ProductName:     item.ProductName,
			CatalogNumber:   item.CatalogNumber,
			CurrentQuantity: item.CurrentQuantity,
			MinQuantity:     item.MinQuantity,
			WeeksRemaining:  weeks,
			Severity:        severity,
		})
	}

	return &StockCheckResult{
		Item:           item,
		WeeksRemaining: weeks,
		Severity:       severity,
	}, nil
}
