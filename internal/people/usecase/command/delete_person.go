package command

import (
	"fmt"

	"github.com/labforge/labops/internal/people/domain"
)

// DeletePersonCommand represents the command to delete a person
type DeletePersonCommand struct {
	PersonID uint
}

// DeletePersonHandler handles person deletion command
type DeletePersonHandler struct {
	repo domain.PersonRepository
}

// NewDeletePersonHandler creates a new delete person handler
func NewDeletePersonHandler(repo domain.PersonRepository) *DeletePersonHandler {
	return &DeletePersonHandler{repo: repo}
}

// Handle executes the delete person command
func (h *DeletePersonHandler) Handle(cmd DeletePersonCommand) error {
	// Validation
	if cmd.PersonID == 0 {
		return fmt.Errorf("invalid person id")
	}

	if err := h.repo.Delete(cmd.PersonID); err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	return nil
}
