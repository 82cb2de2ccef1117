//go:build wireinject
// +build wireinject

package equipment

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/labforge/labops/internal/alerting"
	httpDelivery "github.com/labforge/labops/internal/equipment/delivery/http"
	"github.com/labforge/labops/internal/equipment/usecase/query"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, dispatcher *alerting.Dispatcher, stock query.StockProvider) (*httpDelivery.EquipmentHandler, error) {
	wire.Build(
		RepositorySet,
		httpDelivery.NewEquipmentHandler,
	)
	return nil, nil
}
