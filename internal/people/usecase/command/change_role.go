package command

import (
	"fmt"
	"time"

	"github.com/labforge/labops/internal/people/domain"
)

// ChangeRoleCommand represents the command to change a person's lab role
type ChangeRoleCommand struct {
	PersonID uint
	Role     string
}

// ChangeRoleHandler handles role change command
type ChangeRoleHandler struct {
	repo domain.PersonRepository
}

// NewChangeRoleHandler creates a new change role handler
func NewChangeRoleHandler(repo domain.PersonRepository) *ChangeRoleHandler {
	return &ChangeRoleHandler{repo: repo}
}

// Handle executes the change role command
func (h *ChangeRoleHandler) Handle(cmd ChangeRoleCommand) (*domain.Person, error) {
	// Validation
	if cmd.PersonID == 0 {
		return nil, fmt.Errorf("invalid person id")
	}
	if !domain.ValidRole(cmd.Role) {
		return nil, fmt.Errorf("invalid role %q", cmd.Role)
	}

	person, err := h.repo.FindByID(cmd.PersonID)
	if err != nil {
		return nil, fmt.Errorf("person not found")
	}

	person.Role = cmd.Role
	person.UpdatedAt = time.Now()

	if err := h.repo.Update(person); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	return person, nil
}
