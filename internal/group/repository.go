package group

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository handles group data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new group repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new group with its members
func (r *Repository) Create(ctx context.Context, req *CreateGroupRequest) (*Group, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO groups (id, name, notes)
		VALUES ($1, $2, $3)
		RETURNING id, name, notes, created_at
	`

	group := &Group{}
	err = tx.QueryRowContext(ctx, query, uuid.New().String(), req.Name, req.Notes).Scan(
		&group.ID,
		&group.Name,
		&group.Notes,
		&group.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	if err := insertMembers(ctx, tx, group.ID, req.MemberIDs); err != nil {
		return nil, err
	}
	group.MemberIDs = req.MemberIDs

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return group, nil
}

// GetByID retrieves a group with its members
func (r *Repository) GetByID(ctx context.Context, id string) (*Group, error) {
	query := `SELECT id, name, notes, created_at FROM groups WHERE id = $1`

	group := &Group{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&group.ID,
		&group.Name,
		&group.Notes,
		&group.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	members, err := r.getMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	group.MemberIDs = members

	return group, nil
}

// List retrieves all groups with their members
func (r *Repository) List(ctx context.Context) ([]*Group, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, notes, created_at FROM groups ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*Group
	for rows.Next() {
		group := &Group{}
		if err := rows.Scan(&group.ID, &group.Name, &group.Notes, &group.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, group := range groups {
		members, err := r.getMembers(ctx, group.ID)
		if err != nil {
			return nil, err
		}
		group.MemberIDs = members
	}

	return groups, nil
}

// Update modifies an existing group, replacing members when provided
func (r *Repository) Update(ctx context.Context, id string, req *UpdateGroupRequest) (*Group, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE groups
		SET name = COALESCE($2, name),
		    notes = COALESCE($3, notes)
		WHERE id = $1
		RETURNING id, name, notes, created_at
	`

	group := &Group{}
	err = tx.QueryRowContext(ctx, query, id, req.Name, req.Notes).Scan(
		&group.ID,
		&group.Name,
		&group.Notes,
		&group.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	if req.MemberIDs != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM group_members WHERE group_id = $1`, id); err != nil {
			return nil, fmt.Errorf("failed to clear group members: %w", err)
		}
		if err := insertMembers(ctx, tx, id, *req.MemberIDs); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	members, err := r.getMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	group.MemberIDs = members

	return group, nil
}

// Delete removes a group and its membership rows
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrGroupNotFound
	}

	return nil
}

func (r *Repository) getMembers(ctx context.Context, groupID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT person_id FROM group_members WHERE group_id = $1 ORDER BY person_id`, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}
		members = append(members, id)
	}

	return members, rows.Err()
}

func insertMembers(ctx context.Context, tx *sql.Tx, groupID string, memberIDs []string) error {
	for _, personID := range memberIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO group_members (group_id, person_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			groupID, personID)
		if err != nil {
			return fmt.Errorf("failed to insert group member: %w", err)
		}
	}
	return nil
}
