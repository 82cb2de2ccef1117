package query

import (
	"fmt"

	"github.com/labforge/labops/pkg/health"
)

// RosterSource reads active profiles for roster resolution.
type RosterSource interface {
	ActiveProfiles() ([]health.PersonProfile, error)
}

// RosterHandler resolves the alert roster: active people narrowed to the
// alert-eligible roles.
type RosterHandler struct {
	source RosterSource
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(source RosterSource) *RosterHandler {
	return &RosterHandler{source: source}
}

// Handle returns the current alert recipients.
func (h *RosterHandler) Handle() ([]health.PersonProfile, error) {
	profiles, err := h.source.ActiveProfiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	return health.AlertRecipients(profiles), nil
}
