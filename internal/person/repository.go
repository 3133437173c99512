package person

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository handles person data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new person repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new person into the database.
// Marking the person as primary clears the flag on everyone else;
// at most one person carries it.
func (r *Repository) Create(ctx context.Context, req *CreatePersonRequest) (*Person, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if req.IsPrimary {
		if _, err := tx.ExecContext(ctx, `UPDATE persons SET is_primary = FALSE WHERE is_primary`); err != nil {
			return nil, fmt.Errorf("failed to clear primary flag: %w", err)
		}
	}

	query := `
		INSERT INTO persons (id, name, contact, notes, is_primary)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, contact, notes, is_primary, created_at
	`

	person := &Person{}
	err = tx.QueryRowContext(ctx, query,
		uuid.New().String(),
		req.Name,
		req.Contact,
		req.Notes,
		req.IsPrimary,
	).Scan(
		&person.ID,
		&person.Name,
		&person.Contact,
		&person.Notes,
		&person.IsPrimary,
		&person.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return person, nil
}

// GetByID retrieves a person by their ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Person, error) {
	query := `
		SELECT id, name, contact, notes, is_primary, created_at
		FROM persons
		WHERE id = $1
	`

	person := &Person{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&person.ID,
		&person.Name,
		&person.Contact,
		&person.Notes,
		&person.IsPrimary,
		&person.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	return person, nil
}

// List retrieves all persons ordered by name
func (r *Repository) List(ctx context.Context) ([]*Person, error) {
	query := `
		SELECT id, name, contact, notes, is_primary, created_at
		FROM persons
		ORDER BY name, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	defer rows.Close()

	var persons []*Person
	for rows.Next() {
		person := &Person{}
		if err := rows.Scan(
			&person.ID,
			&person.Name,
			&person.Contact,
			&person.Notes,
			&person.IsPrimary,
			&person.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		persons = append(persons, person)
	}

	return persons, rows.Err()
}

// ListIDs retrieves the ids of every known person
func (r *Repository) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM persons ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list person ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan person id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// Update modifies an existing person
func (r *Repository) Update(ctx context.Context, id string, req *UpdatePersonRequest) (*Person, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if req.IsPrimary != nil && *req.IsPrimary {
		if _, err := tx.ExecContext(ctx, `UPDATE persons SET is_primary = FALSE WHERE is_primary AND id <> $1`, id); err != nil {
			return nil, fmt.Errorf("failed to clear primary flag: %w", err)
		}
	}

	query := `
		UPDATE persons
		SET name = COALESCE($2, name),
		    contact = COALESCE($3, contact),
		    notes = COALESCE($4, notes),
		    is_primary = COALESCE($5, is_primary)
		WHERE id = $1
		RETURNING id, name, contact, notes, is_primary, created_at
	`

	person := &Person{}
	err = tx.QueryRowContext(ctx, query, id, req.Name, req.Contact, req.Notes, req.IsPrimary).Scan(
		&person.ID,
		&person.Name,
		&person.Contact,
		&person.Notes,
		&person.IsPrimary,
		&person.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update person: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return person, nil
}

// Delete removes a person. Ledger entries referencing the id are left
// untouched; balances stay computable for the dangling id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM persons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrPersonNotFound
	}

	return nil
}
