//go:build wireinject
// +build wireinject

package funding

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/labforge/labops/internal/alerting"
	"github.com/labforge/labops/internal/funding/handler"
)

// InitializeHandler initializes funding handler with all dependencies
func InitializeHandler(db *gorm.DB, dispatcher *alerting.Dispatcher, interval WarningInterval) (*handler.FundingHandler, error) {
	wire.Build(
		AllHandlersSet,
		handler.NewFundingHandlerWithDI,
	)
	return nil, nil
}
