package command

import (
	"fmt"

	"github.com/labforge/labops/internal/equipment/domain"
)

// AddSupplyCommand represents the command to attach a supply line to a device
type AddSupplyCommand struct {
	DeviceID          uint
	InventoryItemID   uint
	BurnPerWeek       float64
	MinQty            float64
	AccountOverride   string
	ChargeToProjectID uint
}

// AddSupplyHandler handles add supply command
type AddSupplyHandler struct {
	repo domain.EquipmentRepository
}

// NewAddSupplyHandler creates a new add supply handler
func NewAddSupplyHandler(repo domain.EquipmentRepository) *AddSupplyHandler {
	return &AddSupplyHandler{repo: repo}
}

// Handle executes the add supply command
func (h *AddSupplyHandler) Handle(cmd AddSupplyCommand) (*domain.EquipmentSupply, error) {
	if cmd.DeviceID == 0 {
		return nil, fmt.Errorf("device_id is required")
	}

	if cmd.InventoryItemID == 0 {
		return nil, fmt.Errorf("inventory_item_id is required")
	}

	if cmd.BurnPerWeek < 0 {
		return nil, fmt.Errorf("burn_per_week cannot be negative")
	}

	if cmd.MinQty < 0 {
		return nil, fmt.Errorf("min_qty cannot be negative")
	}

	if _, err := h.repo.FindByID(cmd.DeviceID); err != nil {
		return nil, fmt.Errorf("device not found: %w", err)
	}

	supply := &domain.EquipmentSupply{
		DeviceID:          cmd.DeviceID,
		InventoryItemID:   cmd.InventoryItemID,
		BurnPerWeek:       cmd.BurnPerWeek,
		MinQty:            cmd.MinQty,
		AccountOverride:   cmd.AccountOverride,
		ChargeToProjectID: cmd.ChargeToProjectID,
	}

	if err := h.repo.AddSupply(supply); err != nil {
		return nil, fmt.Errorf("failed to add supply: %w", err)
	}

	return supply, nil
}

// RemoveSupplyCommand represents the command to detach a supply line
type RemoveSupplyCommand struct {
	SupplyID uint
}

// RemoveSupplyHandler handles remove supply command
type RemoveSupplyHandler struct {
	repo domain.EquipmentRepository
}

// NewRemoveSupplyHandler creates a new remove supply handler
func NewRemoveSupplyHandler(repo domain.EquipmentRepository) *RemoveSupplyHandler {
	return &RemoveSupplyHandler{repo: repo}
}

// Handle executes the remove supply command
func (h *RemoveSupplyHandler) Handle(cmd RemoveSupplyCommand) error {
	if cmd.SupplyID == 0 {
		return fmt.Errorf("supply_id is required")
	}

	if err := h.repo.RemoveSupply(cmd.SupplyID); err != nil {
		return fmt.Errorf("failed to remove supply: %w", err)
	}

	return nil
}
