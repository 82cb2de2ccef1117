package command

import (
	"fmt"
	"time"

	"github.com/labforge/labops/internal/people/domain"
)

// UpdatePersonCommand represents the command to update a person's profile
type UpdatePersonCommand struct {
	PersonID uint
	Email    string
	FullName string
}

// UpdatePersonHandler handles person update command
type UpdatePersonHandler struct {
	repo domain.PersonRepository
}

// NewUpdatePersonHandler creates a new update person handler
func NewUpdatePersonHandler(repo domain.PersonRepository) *UpdatePersonHandler {
	return &UpdatePersonHandler{repo: repo}
}

// Handle executes the update person command
func (h *UpdatePersonHandler) Handle(cmd UpdatePersonCommand) (*domain.Person, error) {
	// Validation
	if cmd.PersonID == 0 {
		return nil, fmt.Errorf("invalid person id")
	}

	person, err := h.repo.FindByID(cmd.PersonID)
	if err != nil {
		return nil, fmt.Errorf("person not found")
	}

	if cmd.Email != "" && cmd.Email != person.Email {
		if existing, _ := h.repo.FindByEmail(cmd.Email); existing != nil {
			return nil, fmt.Errorf("email already exists")
		}
		person.Email = cmd.Email
	}
	if cmd.FullName != "" {
		person.FullName = cmd.FullName
	}
	person.UpdatedAt = time.Now()

	if err := h.repo.Update(person); err != nil {
		return nil, fmt.Errorf("failed to update person: %w", err)
	}

	return person, nil
}
