package alerting

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labforge/labops/pkg/health"
	"github.com/labforge/labops/pkg/logger"
)

// PeopleClient fetches the lab roster from the people service over HTTP.
// It implements RosterProvider.
type PeopleClient struct {
	baseURL string
	client  *http.Client
}

// NewPeopleClient creates a new people service client
func NewPeopleClient(baseURL string) *PeopleClient {
	logger.Logger.Info().
		Str("base_url", baseURL).
		Msg("People service client initialized")

	return &PeopleClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 3 * time.Second},
	}
}

// AlertRoster returns all active profiles from the people service. Role
// filtering happens in the dispatcher so the eligible-role policy lives in
// one place.
func (c *PeopleClient) AlertRoster(ctx context.Context) ([]health.PersonProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/people?limit=100", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build roster request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("people service returned status %d", resp.StatusCode)
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    []struct {
			ID       uint   `json:"id"`
			FullName string `json:"full_name"`
			Email    string `json:"email"`
			Role     string `json:"role"`
			IsActive bool   `json:"is_active"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode roster response: %w", err)
	}
	if !envelope.Success {
		return nil, fmt.Errorf("people service reported failure")
	}

	profiles := make([]health.PersonProfile, 0, len(envelope.Data))
	for _, p := range envelope.Data {
		if !p.IsActive {
			continue
		}
		profiles = append(profiles, health.PersonProfile{
			ID:    p.ID,
			Name:  p.FullName,
			Email: p.Email,
			Role:  p.Role,
		})
	}
	return profiles, nil
}
