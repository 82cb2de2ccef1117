package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/labforge/labops/internal/people/domain"
)

// GormPersonRepository implements PersonRepository interface using GORM
type GormPersonRepository struct {
	db *gorm.DB
}

// NewGormPersonRepository creates a new GORM person repository
func NewGormPersonRepository(db *gorm.DB) *GormPersonRepository {
	return &GormPersonRepository{db: db}
}

// Create inserts a new person into the database
func (r *GormPersonRepository) Create(person *domain.Person) error {
	if err := r.db.Create(person).Error; err != nil {
		return fmt.Errorf("failed to create person: %w", err)
	}
	return nil
}

// FindByID retrieves a person by ID
func (r *GormPersonRepository) FindByID(id uint) (*domain.Person, error) {
	var person domain.Person
	if err := r.db.First(&person, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("person not found")
		}
		return nil, fmt.Errorf("failed to find person: %w", err)
	}
	return &person, nil
}

// FindByUsername retrieves a person by username
func (r *GormPersonRepository) FindByUsername(username string) (*domain.Person, error) {
	var person domain.Person
	if err := r.db.Where("username = ?", username).First(&person).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("person not found")
		}
		return nil, fmt.Errorf("failed to find person: %w", err)
	}
	return &person, nil
}

// FindByEmail retrieves a person by email
func (r *GormPersonRepository) FindByEmail(email string) (*domain.Person, error) {
	var person domain.Person
	if err := r.db.Where("email = ?", email).First(&person).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("person not found")
		}
		return nil, fmt.Errorf("failed to find person: %w", err)
	}
	return &person, nil
}

// FindAll retrieves all people with pagination
func (r *GormPersonRepository) FindAll(limit, offset int) ([]domain.Person, error) {
	var people []domain.Person
	query := r.db.Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&people).Error; err != nil {
		return nil, fmt.Errorf("failed to find people: %w", err)
	}
	return people, nil
}

// FindByRole retrieves people by role with pagination
func (r *GormPersonRepository) FindByRole(role string, limit, offset int) ([]domain.Person, error) {
	var people []domain.Person
	query := r.db.Where("role = ?", role).Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&people).Error; err != nil {
		return nil, fmt.Errorf("failed to find people by role: %w", err)
	}
	return people, nil
}

// Update updates a person's information
func (r *GormPersonRepository) Update(person *domain.Person) error {
	if err := r.db.Save(person).Error; err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}
	return nil
}

// Delete soft deletes a person from the database
func (r *GormPersonRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Person{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete person: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("person not found")
	}
	return nil
}

// Count returns the total number of people
func (r *GormPersonRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Person{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count people: %w", err)
	}
	return count, nil
}

// CountByRole returns the number of people holding a role
func (r *GormPersonRepository) CountByRole(role string) (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Person{}).Where("role = ?", role).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count people by role: %w", err)
	}
	return count, nil
}

// AutoMigrate runs database migrations
func (r *GormPersonRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Person{})
}
