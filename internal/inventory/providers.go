package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/labforge/labops/internal/alerting"
	"github.com/labforge/labops/internal/inventory/domain"
	"github.com/labforge/labops/internal/inventory/repository"
	"github.com/labforge/labops/internal/inventory/usecase/command"
)

// ProvideInventoryRepository provides the inventory repository
func ProvideInventoryRepository(db *gorm.DB) domain.InventoryRepository {
	return repository.NewGormInventoryRepository(db)
}

// ProvideStockAlerter provides the stock alerter backed by the dispatcher
func ProvideStockAlerter(dispatcher *alerting.Dispatcher) command.StockAlerter {
	return dispatcher
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideInventoryRepository,
	ProvideStockAlerter,
)
