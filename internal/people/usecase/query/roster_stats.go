package query

import (
	"fmt"

	"github.com/labforge/labops/internal/people/domain"
	"github.com/labforge/labops/pkg/health"
)

// RosterStats summarizes the lab's membership by role.
type RosterStats struct {
	TotalPeople        int64 `json:"total_people"`
	PICount            int64 `json:"pi_count"`
	LabManagerCount    int64 `json:"lab_manager_count"`
	AdministratorCount int64 `json:"administrator_count"`
	ResearcherCount    int64 `json:"researcher_count"`
}

// RosterStatsHandler handles roster stats query
type RosterStatsHandler struct {
	repo domain.PersonRepository
}

// NewRosterStatsHandler creates a new roster stats handler
func NewRosterStatsHandler(repo domain.PersonRepository) *RosterStatsHandler {
	return &RosterStatsHandler{repo: repo}
}

// Handle executes the roster stats query
func (h *RosterStatsHandler) Handle() (*RosterStats, error) {
	total, err := h.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count people: %w", err)
	}

	stats := &RosterStats{TotalPeople: total}

	counts := []struct {
		role string
		dest *int64
	}{
		{health.RolePI, &stats.PICount},
		{health.RoleLabManager, &stats.LabManagerCount},
		{health.RoleAdministrator, &stats.AdministratorCount},
		{health.RoleResearcher, &stats.ResearcherCount},
	}
	for _, c := range counts {
		n, err := h.repo.CountByRole(c.role)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.role, err)
		}
		*c.dest = n
	}

	return stats, nil
}
