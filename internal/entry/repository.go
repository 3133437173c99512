package entry

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/Ashikrreddy06/Split-Wise/internal/ledger"
	"github.com/Ashikrreddy06/Split-Wise/internal/ledger/split"
)

// Repository handles entry and split data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new entry repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const entryColumns = `id, kind, description, amount, entry_date, payer_id, group_id, category, notes, split_mode, created_at`

// Create inserts a new entry with its resolved splits atomically
func (r *Repository) Create(ctx context.Context, e *Entry) (*Entry, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	e.ID = uuid.New().String()

	query := `
		INSERT INTO entries (id, kind, description, amount, entry_date, payer_id, group_id, category, notes, split_mode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`
	err = tx.QueryRowContext(ctx, query,
		e.ID, e.Kind, e.Description, e.Amount, e.Date,
		e.PayerID, e.GroupID, e.Category, e.Notes, e.SplitMode,
	).Scan(&e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	if err := insertSplits(ctx, tx, e.ID, e.Splits); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return e, nil
}

// Replace updates an entry in place by id, rewriting its splits.
// Returns nil when no entry has the id.
func (r *Repository) Replace(ctx context.Context, e *Entry) (*Entry, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE entries
		SET kind = $2, description = $3, amount = $4, entry_date = $5,
		    payer_id = $6, group_id = $7, category = $8, notes = $9, split_mode = $10
		WHERE id = $1
		RETURNING created_at
	`
	err = tx.QueryRowContext(ctx, query,
		e.ID, e.Kind, e.Description, e.Amount, e.Date,
		e.PayerID, e.GroupID, e.Category, e.Notes, e.SplitMode,
	).Scan(&e.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM entry_splits WHERE entry_id = $1`, e.ID); err != nil {
		return nil, fmt.Errorf("failed to clear splits: %w", err)
	}
	if err := insertSplits(ctx, tx, e.ID, e.Splits); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return e, nil
}

// GetByID retrieves an entry with its splits
func (r *Repository) GetByID(ctx context.Context, id string) (*Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE id = $1`

	e, err := scanEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	splits, err := r.getSplits(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Splits = splits

	return e, nil
}

// List retrieves entries newest-first, optionally filtered by group,
// with their splits attached
func (r *Repository) List(ctx context.Context, groupID *string, limit, offset int) ([]*Entry, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM entries WHERE $1::uuid IS NULL OR group_id = $1::uuid`
	if err := r.db.QueryRowContext(ctx, countQuery, groupID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count entries: %w", err)
	}

	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE $1::uuid IS NULL OR group_id = $1::uuid
		ORDER BY entry_date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, groupID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	entries, err := collectEntries(rows)
	if err != nil {
		return nil, 0, err
	}

	if err := r.attachSplits(ctx, entries); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// ListAll retrieves every entry with splits, in stable id order.
// This is the snapshot the balance aggregator consumes.
func (r *Repository) ListAll(ctx context.Context) ([]*Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	entries, err := collectEntries(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachSplits(ctx, entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// Delete removes an entry and its splits
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func (r *Repository) getSplits(ctx context.Context, entryID string) ([]Split, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT person_id, amount FROM entry_splits WHERE entry_id = $1 ORDER BY position`, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get splits: %w", err)
	}
	defer rows.Close()

	var splits []Split
	for rows.Next() {
		var s Split
		if err := rows.Scan(&s.PersonID, &s.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		splits = append(splits, s)
	}

	return splits, rows.Err()
}

// attachSplits loads the splits for a batch of entries in one query
func (r *Repository) attachSplits(ctx context.Context, entries []*Entry) error {
	if len(entries) == 0 {
		return nil
	}

	byID := make(map[string]*Entry, len(entries))
	ids := make([]string, len(entries))
	for i, e := range entries {
		byID[e.ID] = e
		ids[i] = e.ID
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT entry_id, person_id, amount FROM entry_splits WHERE entry_id = ANY($1) ORDER BY entry_id, position`,
		pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to get splits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entryID, personID string
		var amount decimal.Decimal
		if err := rows.Scan(&entryID, &personID, &amount); err != nil {
			return fmt.Errorf("failed to scan split: %w", err)
		}
		if e, ok := byID[entryID]; ok {
			e.Splits = append(e.Splits, Split{PersonID: personID, Amount: amount})
		}
	}

	return rows.Err()
}

func insertSplits(ctx context.Context, tx *sql.Tx, entryID string, splits []Split) error {
	for i, s := range splits {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO entry_splits (entry_id, position, person_id, amount) VALUES ($1, $2, $3, $4)`,
			entryID, i, s.PersonID, s.Amount)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	e := &Entry{}
	var kind, mode string
	var date time.Time
	err := row.Scan(
		&e.ID, &kind, &e.Description, &e.Amount, &date,
		&e.PayerID, &e.GroupID, &e.Category, &e.Notes, &mode, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Kind = ledger.Kind(kind)
	e.SplitMode = split.Mode(mode)
	e.Date = date
	return e, nil
}

func collectEntries(rows *sql.Rows) ([]*Entry, error) {
	var entries []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
