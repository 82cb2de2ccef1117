package equipment

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/labforge/labops/internal/alerting"
	"github.com/labforge/labops/internal/equipment/domain"
	"github.com/labforge/labops/internal/equipment/repository"
	"github.com/labforge/labops/internal/equipment/usecase/command"
)

// ProvideEquipmentRepository provides the equipment repository
func ProvideEquipmentRepository(db *gorm.DB) domain.EquipmentRepository {
	return repository.NewGormEquipmentRepository(db)
}

// ProvideMaintenanceAlerter provides the maintenance alerter backed by the dispatcher
func ProvideMaintenanceAlerter(dispatcher *alerting.Dispatcher) command.MaintenanceAlerter {
	return dispatcher
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideEquipmentRepository,
	ProvideMaintenanceAlerter,
)
