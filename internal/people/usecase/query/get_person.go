package query

import (
	"fmt"

	"github.com/labforge/labops/internal/people/domain"
)

// GetPersonQuery represents the query to get a person by ID
type GetPersonQuery struct {
	PersonID uint
}

// GetPersonHandler handles get person query
type GetPersonHandler struct {
	repo domain.PersonRepository
}

// NewGetPersonHandler creates a new get person handler
func NewGetPersonHandler(repo domain.PersonRepository) *GetPersonHandler {
	return &GetPersonHandler{repo: repo}
}

// Handle executes the get person query
func (h *GetPersonHandler) Handle(q GetPersonQuery) (*domain.Person, error) {
	if q.PersonID == 0 {
		return nil, fmt.Errorf("invalid person id")
	}

	person, err := h.repo.FindByID(q.PersonID)
	if err != nil {
		return nil, fmt.Errorf("person not found")
	}

	return person, nil
}
