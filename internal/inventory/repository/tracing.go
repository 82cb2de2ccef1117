package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/labforge/labops/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// GormInventoryRepositoryWithTracing wraps GormInventoryRepository with tracing
type GormInventoryRepositoryWithTracing struct {
	*GormInventoryRepository
}

// NewGormInventoryRepositoryWithTracing creates a new repository with tracing
func NewGormInventoryRepositoryWithTracing(db *gorm.DB) *GormInventoryRepositoryWithTracing {
	return &GormInventoryRepositoryWithTracing{
		GormInventoryRepository: NewGormInventoryRepository(db),
	}
}

// CreateWithContext records a span around Create
func (r *GormInventoryRepositoryWithTracing) CreateWithContext(ctx context.Context, item *domain.InventoryItem) error {
	_, span := tracer.Start(ctx, "repository.Create")
	defer span.End()

	span.SetAttributes(
		attribute.String("item.product_name", item.ProductName),
		attribute.String("item.catalog_number", item.CatalogNumber),
		attribute.Float64("item.current_quantity", item.CurrentQuantity),
	)

	err := r.GormInventoryRepository.Create(item)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("item.id", int(item.ID)))
	return nil
}

// FindByIDWithContext records a span around FindByID
func (r *GormInventoryRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.InventoryItem, error) {
	_, span := tracer.Start(ctx, "repository.FindByID")
	defer span.End()

	span.SetAttributes(attribute.Int("item.id", int(id)))

	item, err := r.GormInventoryRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("item.product_name", item.ProductName),
		attribute.Float64("item.current_quantity", item.CurrentQuantity),
		attribute.String("item.inventory_level", item.InventoryLevel),
	)
	return item, nil
}

// UpdateStockWithContext records a span around UpdateStock
func (r *GormInventoryRepositoryWithTracing) UpdateStockWithContext(ctx context.Context, id uint, quantity float64, level string) error {
	_, span := tracer.Start(ctx, "repository.UpdateStock")
	defer span.End()

	span.SetAttributes(
		attribute.Int("item.id", int(id)),
		attribute.Float64("stock.new_quantity", quantity),
		attribute.String("stock.new_level", level),
	)

	err := r.GormInventoryRepository.UpdateStock(id, quantity, level)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// FindBelowMinimumWithContext records a span around FindBelowMinimum
func (r *GormInventoryRepositoryWithTracing) FindBelowMinimumWithContext(ctx context.Context) ([]domain.InventoryItem, error) {
	_, span := tracer.Start(ctx, "repository.FindBelowMinimum")
	defer span.End()

	items, err := r.GormInventoryRepository.FindBelowMinimum()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, nil
}
