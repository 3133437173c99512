package snapshot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/Ashikrreddy06/Split-Wise/internal/entry"
	"github.com/Ashikrreddy06/Split-Wise/internal/group"
	"github.com/Ashikrreddy06/Split-Wise/internal/ledger"
	"github.com/Ashikrreddy06/Split-Wise/internal/ledger/split"
	"github.com/Ashikrreddy06/Split-Wise/internal/person"
)

// Repository reads and writes the full dataset as one unit. Import runs
// in a single transaction so a failed restore never leaves partial state.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new snapshot repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Export reads every table into a snapshot document
func (r *Repository) Export(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{Version: Version}

	if err := r.db.QueryRowContext(ctx,
		`SELECT currency_symbol FROM settings WHERE id = 1`).Scan(&snap.CurrencySymbol); err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var err error
	if snap.Persons, err = r.exportPersons(ctx); err != nil {
		return nil, err
	}
	if snap.Groups, err = r.exportGroups(ctx); err != nil {
		return nil, err
	}
	if snap.Entries, err = r.exportEntries(ctx); err != nil {
		return nil, err
	}

	return snap, nil
}

// Import wipes the current dataset and replaces it with the snapshot's
func (r *Repository) Import(ctx context.Context, snap *Snapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// entry_splits and group_members cascade from their parents
	for _, table := range []string{"entries", "groups", "persons"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE settings SET currency_symbol = $1 WHERE id = 1`, snap.CurrencySymbol); err != nil {
		return fmt.Errorf("failed to restore settings: %w", err)
	}

	for _, p := range snap.Persons {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO persons (id, name, contact, notes, is_primary, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			p.ID, p.Name, p.Contact, p.Notes, p.IsPrimary, p.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to restore person %s: %w", p.ID, err)
		}
	}

	for _, g := range snap.Groups {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO groups (id, name, notes, created_at)
			VALUES ($1, $2, $3, $4)`,
			g.ID, g.Name, g.Notes, g.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to restore group %s: %w", g.ID, err)
		}
		for _, memberID := range g.MemberIDs {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO group_members (group_id, person_id) VALUES ($1, $2)`,
				g.ID, memberID,
			); err != nil {
				return fmt.Errorf("failed to restore group member: %w", err)
			}
		}
	}

	for _, e := range snap.Entries {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO entries (id, kind, description, amount, entry_date, payer_id, group_id, category, notes, split_mode, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			e.ID, string(e.Kind), e.Description, e.Amount, e.Date, e.PayerID,
			e.GroupID, e.Category, e.Notes, string(e.SplitMode), e.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to restore entry %s: %w", e.ID, err)
		}
		for i, s := range e.Splits {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO entry_splits (entry_id, position, person_id, amount) VALUES ($1, $2, $3, $4)`,
				e.ID, i, s.PersonID, s.Amount,
			); err != nil {
				return fmt.Errorf("failed to restore entry splits: %w", err)
			}
		}
	}

	return tx.Commit()
}

func (r *Repository) exportPersons(ctx context.Context) ([]*person.Person, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, contact, notes, is_primary, created_at FROM persons ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to export persons: %w", err)
	}
	defer rows.Close()

	persons := []*person.Person{}
	for rows.Next() {
		p := &person.Person{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Contact, &p.Notes, &p.IsPrimary, &p.CreatedAt); err != nil {
			return nil, err
		}
		persons = append(persons, p)
	}
	return persons, rows.Err()
}

func (r *Repository) exportGroups(ctx context.Context) ([]*group.Group, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, notes, created_at FROM groups ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to export groups: %w", err)
	}
	defer rows.Close()

	groups := []*group.Group{}
	for rows.Next() {
		g := &group.Group{MemberIDs: []string{}}
		if err := rows.Scan(&g.ID, &g.Name, &g.Notes, &g.CreatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	byID := make(map[string]*group.Group, len(groups))
	ids := make([]string, len(groups))
	for i, g := range groups {
		byID[g.ID] = g
		ids[i] = g.ID
	}

	memberRows, err := r.db.QueryContext(ctx,
		`SELECT group_id, person_id FROM group_members WHERE group_id = ANY($1) ORDER BY group_id, person_id`,
		pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to export group members: %w", err)
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var groupID, personID string
		if err := memberRows.Scan(&groupID, &personID); err != nil {
			return nil, err
		}
		if g, ok := byID[groupID]; ok {
			g.MemberIDs = append(g.MemberIDs, personID)
		}
	}
	return groups, memberRows.Err()
}

func (r *Repository) exportEntries(ctx context.Context) ([]*entry.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, description, amount, entry_date, payer_id, group_id, category, notes, split_mode, created_at
		FROM entries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to export entries: %w", err)
	}
	defer rows.Close()

	entries := []*entry.Entry{}
	byID := make(map[string]*entry.Entry)
	for rows.Next() {
		e := &entry.Entry{}
		var kind, mode string
		if err := rows.Scan(&e.ID, &kind, &e.Description, &e.Amount, &e.Date, &e.PayerID,
			&e.GroupID, &e.Category, &e.Notes, &mode, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Kind = ledger.Kind(kind)
		e.SplitMode = split.Mode(mode)
		entries = append(entries, e)
		byID[e.ID] = e
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}

	splitRows, err := r.db.QueryContext(ctx,
		`SELECT entry_id, person_id, amount FROM entry_splits WHERE entry_id = ANY($1) ORDER BY entry_id, position`,
		pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to export entry splits: %w", err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		var entryID string
		var s entry.Split
		if err := splitRows.Scan(&entryID, &s.PersonID, &s.Amount); err != nil {
			return nil, err
		}
		if e, ok := byID[entryID]; ok {
			e.Splits = append(e.Splits, s)
		}
	}
	return entries, splitRows.Err()
}
