package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/labforge/labops/internal/people/domain"
)

var tracer = otel.Tracer("people-repository")

// GormPersonRepositoryWithTracing wraps GormPersonRepository with tracing
type GormPersonRepositoryWithTracing struct {
	*GormPersonRepository
}

// NewGormPersonRepositoryWithTracing creates a new repository with tracing
func NewGormPersonRepositoryWithTracing(db *gorm.DB) *GormPersonRepositoryWithTracing {
	return &GormPersonRepositoryWithTracing{
		GormPersonRepository: NewGormPersonRepository(db),
	}
}

// CreateWithContext records a span around Create
func (r *GormPersonRepositoryWithTracing) CreateWithContext(ctx context.Context, person *domain.Person) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("person.username", person.Username),
			attribute.String("person.role", person.Role),
		),
	)
	defer span.End()

	err := r.GormPersonRepository.Create(person)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("person.id", int(person.ID)))
	return nil
}

// FindByIDWithContext records a span around FindByID
func (r *GormPersonRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.Person, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("person.id", int(id)),
		),
	)
	defer span.End()

	person, err := r.GormPersonRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("person.role", person.Role))
	return person, nil
}

// FindByRoleWithContext records a span around FindByRole
func (r *GormPersonRepositoryWithTracing) FindByRoleWithContext(ctx context.Context, role string, limit, offset int) ([]domain.Person, error) {
	_, span := tracer.Start(ctx, "repository.FindByRole",
		trace.WithAttributes(
			attribute.String("person.role", role),
		),
	)
	defer span.End()

	people, err := r.GormPersonRepository.FindByRole(role, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(people)))
	return people, nil
}
