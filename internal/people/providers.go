package people

import (
	"database/sql"

	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/labforge/labops/internal/people/domain"
	"github.com/labforge/labops/internal/people/repository"
	"github.com/labforge/labops/internal/people/usecase/command"
	"github.com/labforge/labops/internal/people/usecase/query"
)

// ProvidePersonRepository provides the person repository
func ProvidePersonRepository(db *gorm.DB) domain.PersonRepository {
	return repository.NewGormPersonRepository(db)
}

// ProvideRosterSource provides the raw-SQL roster reader
func ProvideRosterSource(db *sql.DB) query.RosterSource {
	return repository.NewPostgresRosterRepository(db)
}

// Command Handlers Providers
func ProvideRegisterPersonHandler(repo domain.PersonRepository) *command.RegisterPersonHandler {
	return command.NewRegisterPersonHandler(repo)
}

func ProvideLoginPersonHandler(repo domain.PersonRepository) *command.LoginPersonHandler {
	return command.NewLoginPersonHandler(repo)
}

func ProvideUpdatePersonHandler(repo domain.PersonRepository) *command.UpdatePersonHandler {
	return command.NewUpdatePersonHandler(repo)
}

func ProvideDeletePersonHandler(repo domain.PersonRepository) *command.DeletePersonHandler {
	return command.NewDeletePersonHandler(repo)
}

func ProvideChangeRoleHandler(repo domain.PersonRepository) *command.ChangeRoleHandler {
	return command.NewChangeRoleHandler(repo)
}

func ProvideToggleActiveHandler(repo domain.PersonRepository) *command.ToggleActiveHandler {
	return command.NewToggleActiveHandler(repo)
}

// Query Handlers Providers
func ProvideGetPersonHandler(repo domain.PersonRepository) *query.GetPersonHandler {
	return query.NewGetPersonHandler(repo)
}

func ProvideListPeopleHandler(repo domain.PersonRepository) *query.ListPeopleHandler {
	return query.NewListPeopleHandler(repo)
}

func ProvideRosterHandler(source query.RosterSource) *query.RosterHandler {
	return query.NewRosterHandler(source)
}

func ProvideRosterStatsHandler(repo domain.PersonRepository) *query.RosterStatsHandler {
	return query.NewRosterStatsHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvidePersonRepository,
	ProvideRosterSource,
)

var CommandHandlerSet = wire.NewSet(
	ProvideRegisterPersonHandler,
	ProvideLoginPersonHandler,
	ProvideUpdatePersonHandler,
	ProvideDeletePersonHandler,
	ProvideChangeRoleHandler,
	ProvideToggleActiveHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetPersonHandler,
	ProvideListPeopleHandler,
	ProvideRosterHandler,
	ProvideRosterStatsHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)
