package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Common errors
var (
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	ErrUnknownPersonRef   = errors.New("snapshot references a person it does not contain")
)

// Store reads and replaces the dataset as one unit.
// The abstraction keeps the import validation testable without a database.
type Store interface {
	Export(ctx context.Context) (*Snapshot, error)
	Import(ctx context.Context, snap *Snapshot) error
}

// Service handles export and import of the full dataset
type Service struct {
	store Store
}

// NewService creates a new snapshot service
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Export produces a portable copy of everything
func (s *Service) Export(ctx context.Context) (*Snapshot, error) {
	snap, err := s.store.Export(ctx)
	if err != nil {
		return nil, err
	}
	snap.ExportedAt = time.Now().UTC().Format(time.RFC3339)
	return snap, nil
}

// Import validates a snapshot and replaces the current dataset with it.
// Entries may reference person ids absent from the snapshot's person list
// (a person deleted after the entry was recorded), so only group membership
// is cross-checked.
func (s *Service) Import(ctx context.Context, snap *Snapshot) error {
	if snap.Version != Version {
		return fmt.Errorf("%w: got %d, want %d", ErrUnsupportedVersion, snap.Version, Version)
	}
	if snap.CurrencySymbol == "" {
		snap.CurrencySymbol = "$"
	}

	known := make(map[string]bool, len(snap.Persons))
	for _, p := range snap.Persons {
		known[p.ID] = true
	}
	for _, g := range snap.Groups {
		for _, memberID := range g.MemberIDs {
			if !known[memberID] {
				return fmt.Errorf("%w: group %q member %s", ErrUnknownPersonRef, g.Name, memberID)
			}
		}
	}

	return s.store.Import(ctx, snap)
}
