package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/labforge/labops/internal/equipment/domain"
)

var tracer = otel.Tracer("equipment-repository")

// GormEquipmentRepositoryWithTracing wraps GormEquipmentRepository with tracing
type GormEquipmentRepositoryWithTracing struct {
	*GormEquipmentRepository
}

// NewGormEquipmentRepositoryWithTracing creates a new repository with tracing
func NewGormEquipmentRepositoryWithTracing(db *gorm.DB) *GormEquipmentRepositoryWithTracing {
	return &GormEquipmentRepositoryWithTracing{
		GormEquipmentRepository: NewGormEquipmentRepository(db),
	}
}

// FindByIDWithContext records a span around FindByID
func (r *GormEquipmentRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.EquipmentDevice, error) {
	_, span := tracer.Start(ctx, "repository.FindByID")
	defer span.End()

	span.SetAttributes(attribute.Int("device.id", int(id)))

	device, err := r.GormEquipmentRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("device.name", device.Name),
		attribute.String("device.last_maintained", device.LastMaintained),
		attribute.Int("device.supply_count", len(device.Supplies)),
	)
	return device, nil
}

// RecordMaintenanceWithContext records a span around RecordMaintenance
func (r *GormEquipmentRepositoryWithTracing) RecordMaintenanceWithContext(ctx context.Context, id uint, date string) error {
	_, span := tracer.Start(ctx, "repository.RecordMaintenance")
	defer span.End()

	span.SetAttributes(
		attribute.Int("device.id", int(id)),
		attribute.String("maintenance.date", date),
	)

	err := r.GormEquipmentRepository.RecordMaintenance(id, date)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
