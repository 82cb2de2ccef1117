package domain

import (
	"time"

	"gorm.io/gorm"

	"github.com/labforge/labops/pkg/health"
)

// Person represents a lab member (domain model)
type Person struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Username  string         `json:"username" gorm:"uniqueIndex;not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"` // Never expose password in JSON
	FullName  string         `json:"full_name" gorm:"not null"`
	Role      string         `json:"role" gorm:"not null;default:'Researcher'"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"` // Soft delete
}

// TableName specifies the table name
func (Person) TableName() string {
	return "people"
}

// ValidRole reports whether role is one of the lab roles.
func ValidRole(role string) bool {
	switch role {
	case health.RolePI, health.RoleLabManager, health.RoleAdministrator, health.RoleResearcher:
		return true
	}
	return false
}

// IsAdministrator checks if the person holds the Administrator role
func (p *Person) IsAdministrator() bool {
	return p.Role == health.RoleAdministrator
}

// HealthProfile maps the record to the engine's roster input.
func (p *Person) HealthProfile() health.PersonProfile {
	return health.PersonProfile{
		ID:    p.ID,
		Name:  p.FullName,
		Email: p.Email,
		Role:  p.Role,
	}
}

// PersonRepository defines the contract for people data access
type PersonRepository interface {
	Create(person *Person) error
	FindByID(id uint) (*Person, error)
	FindByUsername(username string) (*Person, error)
	FindByEmail(email string) (*Person, error)
	FindAll(limit, offset int) ([]Person, error)
	FindByRole(role string, limit, offset int) ([]Person, error)
	Update(person *Person) error
	Delete(id uint) error
	Count() (int64, error)
	CountByRole(role string) (int64, error)
}
