package command

import (
	"fmt"

	"github.com/labforge/labops/internal/people/domain"
	"github.com/labforge/labops/pkg/auth"
)

// LoginPersonCommand represents the command to log a person in
type LoginPersonCommand struct {
	Username string
	Password string
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	Token  string         `json:"token"`
	Person *domain.Person `json:"person"`
}

// LoginPersonHandler handles login command
type LoginPersonHandler struct {
	repo domain.PersonRepository
}

// NewLoginPersonHandler creates a new login handler
func NewLoginPersonHandler(repo domain.PersonRepository) *LoginPersonHandler {
	return &LoginPersonHandler{repo: repo}
}

// Handle executes the login command
func (h *LoginPersonHandler) Handle(cmd LoginPersonCommand) (*LoginResponse, error) {
	// Validation
	if cmd.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	person, err := h.repo.FindByUsername(cmd.Username)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	if !person.IsActive {
		return nil, fmt.Errorf("account is deactivated")
	}

	if !auth.CheckPassword(person.Password, cmd.Password) {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := auth.GenerateToken(person.ID, person.Username, person.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		Token:  token,
		Person: person,
	}, nil
}
