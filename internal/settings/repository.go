package settings

import (
	"context"
	"database/sql"
)

// Repository handles database operations for settings
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new settings repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Get reads the settings row. The row is seeded by the schema migration
// so it always exists.
func (r *Repository) Get(ctx context.Context) (*Settings, error) {
	s := &Settings{}
	err := r.db.QueryRowContext(ctx,
		`SELECT currency_symbol FROM settings WHERE id = 1`).Scan(&s.CurrencySymbol)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Update replaces the settings row and returns the stored value
func (r *Repository) Update(ctx context.Context, s *Settings) (*Settings, error) {
	stored := &Settings{}
	err := r.db.QueryRowContext(ctx, `
		UPDATE settings
		SET currency_symbol = $1
		WHERE id = 1
		RETURNING currency_symbol`,
		s.CurrencySymbol,
	).Scan(&stored.CurrencySymbol)
	if err != nil {
		return nil, err
	}
	return stored, nil
}
