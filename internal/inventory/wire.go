//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/labforge/labops/internal/alerting"
	httpDelivery "github.com/labforge/labops/internal/inventory/delivery/http"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, dispatcher *alerting.Dispatcher) (*httpDelivery.InventoryHandler, error) {
	wire.Build(
		RepositorySet,
		httpDelivery.NewInventoryHandler,
	)
	return nil, nil
}
