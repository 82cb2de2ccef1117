package command

import (
	"fmt"
	"time"

	"github.com/labforge/labops/internal/people/domain"
)

// ToggleActiveCommand represents the command to activate/deactivate a person.
// Deactivated people drop out of the alert roster on the next dispatch.
type ToggleActiveCommand struct {
	PersonID uint
	IsActive bool
}

// ToggleActiveHandler handles activation toggle command
type ToggleActiveHandler struct {
	repo domain.PersonRepository
}

// NewToggleActiveHandler creates a new toggle active handler
func NewToggleActiveHandler(repo domain.PersonRepository) *ToggleActiveHandler {
	return &ToggleActiveHandler{repo: repo}
}

// Handle executes the toggle active command
func (h *ToggleActiveHandler) Handle(cmd ToggleActiveCommand) (*domain.Person, error) {
	// Validation
	if cmd.PersonID == 0 {
		return nil, fmt.Errorf("invalid person id")
	}

	person, err := h.repo.FindByID(cmd.PersonID)
	if err != nil {
		return nil, fmt.Errorf("person not found")
	}

	person.IsActive = cmd.IsActive
	person.UpdatedAt = time.Now()

	if err := h.repo.Update(person); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	return person, nil
}
