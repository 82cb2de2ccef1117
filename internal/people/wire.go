//go:build wireinject
// +build wireinject

package people

import (
	"database/sql"

	"github.com/google/wire"
	"gorm.io/gorm"

	httpDelivery "github.com/labforge/labops/internal/people/delivery/http"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, sqlDB *sql.DB) (*httpDelivery.PeopleHandler, error) {
	wire.Build(
		AllHandlersSet,
		httpDelivery.NewPeopleHandlerWithDI,
	)
	return nil, nil
}
