package funding

import (
	"time"

	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/labforge/labops/internal/alerting"
	"github.com/labforge/labops/internal/funding/domain"
	"github.com/labforge/labops/internal/funding/repository"
	"github.com/labforge/labops/internal/funding/usecase/command"
	"github.com/labforge/labops/internal/funding/usecase/query"
)

// WarningInterval configures the balance-check cooldown.
type WarningInterval time.Duration

// ProvideFundingRepository provides the funding repository
func ProvideFundingRepository(db *gorm.DB) domain.FundingRepository {
	return repository.NewGormFundingRepository(db)
}

// ProvideFundingAlerter provides the funding alerter backed by the dispatcher
func ProvideFundingAlerter(dispatcher *alerting.Dispatcher) command.FundingAlerter {
	return dispatcher
}

// Command Handlers Providers
func ProvideCreateAllocationHandler(repo domain.FundingRepository) *command.CreateAllocationHandler {
	return command.NewCreateAllocationHandler(repo)
}

func ProvideUpdateAllocationHandler(repo domain.FundingRepository) *command.UpdateAllocationHandler {
	return command.NewUpdateAllocationHandler(repo)
}

func ProvideRecordSpendHandler(repo domain.FundingRepository) *command.RecordSpendHandler {
	return command.NewRecordSpendHandler(repo)
}

func ProvideBalanceCheckHandler(repo domain.FundingRepository, alerter command.FundingAlerter, interval WarningInterval) *command.BalanceCheckHandler {
	return command.NewBalanceCheckHandler(repo, alerter, time.Duration(interval))
}

// Query Handlers Providers
func ProvideGetAllocationHandler(repo domain.FundingRepository) *query.GetAllocationHandler {
	return query.NewGetAllocationHandler(repo)
}

func ProvideListAllocationsHandler(repo domain.FundingRepository) *query.ListAllocationsHandler {
	return query.NewListAllocationsHandler(repo)
}

func ProvideAtRiskHandler(repo domain.FundingRepository) *query.AtRiskHandler {
	return query.NewAtRiskHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideFundingRepository,
	ProvideFundingAlerter,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCreateAllocationHandler,
	ProvideUpdateAllocationHandler,
	ProvideRecordSpendHandler,
	ProvideBalanceCheckHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetAllocationHandler,
	ProvideListAllocationsHandler,
	ProvideAtRiskHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)
