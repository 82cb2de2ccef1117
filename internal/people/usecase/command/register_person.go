package command

import (
	"fmt"
	"time"

	"github.com/labforge/labops/internal/people/domain"
	"github.com/labforge/labops/pkg/auth"
	"github.com/labforge/labops/pkg/health"
)

// RegisterPersonCommand represents the command to register a new lab member
type RegisterPersonCommand struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     string // Optional, defaults to "Researcher"
}

// RegisterPersonHandler handles person registration command
type RegisterPersonHandler struct {
	repo domain.PersonRepository
}

// NewRegisterPersonHandler creates a new register person handler
func NewRegisterPersonHandler(repo domain.PersonRepository) *RegisterPersonHandler {
	return &RegisterPersonHandler{repo: repo}
}

// Handle executes the register person command
func (h *RegisterPersonHandler) Handle(cmd RegisterPersonCommand) (*domain.Person, error) {
	// Validation
	if cmd.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if cmd.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if len(cmd.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}
	if cmd.FullName == "" {
		return nil, fmt.Errorf("full name is required")
	}

	// Check if person already exists
	if existing, _ := h.repo.FindByUsername(cmd.Username); existing != nil {
		return nil, fmt.Errorf("username already exists")
	}
	if existing, _ := h.repo.FindByEmail(cmd.Email); existing != nil {
		return nil, fmt.Errorf("email already exists")
	}

	// Hash password
	hashedPassword, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Set default role if not provided
	role := cmd.Role
	if role == "" {
		role = health.RoleResearcher
	}
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	person := &domain.Person{
		Username:  cmd.Username,
		Email:     cmd.Email,
		Password:  hashedPassword,
		FullName:  cmd.FullName,
		Role:      role,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.repo.Create(person); err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	return person, nil
}
