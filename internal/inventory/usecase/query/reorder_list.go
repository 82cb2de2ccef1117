package query

import (
	"fmt"

	"github.com/labforge/labops/internal/inventory/domain"
)

// ReorderListHandler lists items at or below their reorder threshold.
type ReorderListHandler struct {
	repo domain.InventoryRepository
}

// NewReorderListHandler creates a new reorder list handler
func NewReorderListHandler(repo domain.InventoryRepository) *ReorderListHandler {
	return &ReorderListHandler{repo: repo}
}

// Handle returns every item whose quantity has fallen to its minimum.
func (h *ReorderListHandler) Handle() ([]domain.InventoryItem, error) {
	items, err := h.repo.FindBelowMinimum()
	if err != nil {
		return nil, fmt.Errorf("failed to list items needing reorder: %w", err)
	}

	return items, nil
}
