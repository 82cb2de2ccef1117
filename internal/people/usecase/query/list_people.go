package query

import (
	"fmt"

	"github.com/labforge/labops/internal/people/domain"
)

// ListPeopleQuery represents the query to list people, optionally by role
type ListPeopleQuery struct {
	Role   string
	Limit  int
	Offset int
}

// ListPeopleHandler handles list people query
type ListPeopleHandler struct {
	repo domain.PersonRepository
}

// NewListPeopleHandler creates a new list people handler
func NewListPeopleHandler(repo domain.PersonRepository) *ListPeopleHandler {
	return &ListPeopleHandler{repo: repo}
}

// Handle executes the list people query
func (h *ListPeopleHandler) Handle(q ListPeopleQuery) ([]domain.Person, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	if q.Role != "" {
		if !domain.ValidRole(q.Role) {
			return nil, fmt.Errorf("invalid role %q", q.Role)
		}
		people, err := h.repo.FindByRole(q.Role, q.Limit, q.Offset)
		if err != nil {
			return nil, fmt.Errorf("failed to list people by role: %w", err)
		}
		return people, nil
	}

	people, err := h.repo.FindAll(q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	return people, nil
}
