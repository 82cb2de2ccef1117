package query

import (
	"fmt"
	"testing"

	"github.com/labforge/labops/pkg/health"
)

type fakeRosterSource struct {
	profiles []health.PersonProfile
	err      error
}

func (s *fakeRosterSource) ActiveProfiles() ([]health.PersonProfile, error) {
	return s.profiles, s.err
}

func TestRosterNarrowsToAlertRoles(t *testing.T) {
	source := &fakeRosterSource{profiles: []health.PersonProfile{
		{ID: 1, Name: "Ana Ruiz", Email: "aruiz@lab.example.org", Role: health.RolePI},
		{ID: 2, Name: "Sam Okafor", Email: "sokafor@lab.example.org", Role: health.RoleResearcher},
		{ID: 3, Name: "Lee Park", Email: "lpark@lab.example.org", Role: health.RoleLabManager},
	}}
	handler := NewRosterHandler(source)

	recipients, err := handler.Handle()
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if len(recipients) != 2 {
		t.Fatalf("got %d recipients, want 2", len(recipients))
	}
	if recipients[0].ID != 1 || recipients[1].ID != 3 {
		t.Errorf("recipients = %v, want PI then Lab Manager in roster order", recipients)
	}
}

func TestRosterSourceFailureSurfaces(t *testing.T) {
	handler := NewRosterHandler(&fakeRosterSource{err: fmt.Errorf("connection refused")})

	if _, err := handler.Handle(); err == nil {
		t.Error("expected error when the roster source fails")
	}
}
