package repository

import (
	"database/sql"
	"fmt"

	"github.com/labforge/labops/pkg/health"
)

// PostgresRosterRepository reads the alert roster with raw SQL. The roster
// endpoint is hit on every alert dispatch across the platform, so it skips
// the ORM and selects exactly the columns the recipient selector needs.
type PostgresRosterRepository struct {
	db *sql.DB
}

// NewPostgresRosterRepository creates a new PostgreSQL roster repository
func NewPostgresRosterRepository(db *sql.DB) *PostgresRosterRepository {
	return &PostgresRosterRepository{db: db}
}

// ActiveProfiles returns the profiles of all active, non-deleted people.
func (r *PostgresRosterRepository) ActiveProfiles() ([]health.PersonProfile, error) {
	query := `
		SELECT id, full_name, email, role
		FROM people
		WHERE is_active = TRUE AND deleted_at IS NULL
		ORDER BY id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster: %w", err)
	}
	defer rows.Close()

	profiles := []health.PersonProfile{}
	for rows.Next() {
		var p health.PersonProfile
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Role); err != nil {
			return nil, fmt.Errorf("failed to scan roster row: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roster rows: %w", err)
	}

	return profiles, nil
}
