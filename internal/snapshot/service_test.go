package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ashikrreddy06/Split-Wise/internal/entry"
	"github.com/Ashikrreddy06/Split-Wise/internal/group"
	"github.com/Ashikrreddy06/Split-Wise/internal/ledger"
	"github.com/Ashikrreddy06/Split-Wise/internal/person"
)

// fakeStore captures the snapshot handed to Import
type fakeStore struct {
	exported *Snapshot
	imported *Snapshot
}

func (f *fakeStore) Export(ctx context.Context) (*Snapshot, error) {
	return f.exported, nil
}

func (f *fakeStore) Import(ctx context.Context, snap *Snapshot) error {
	f.imported = snap
	return nil
}

func strPtr(s string) *string { return &s }

func sampleSnapshot() *Snapshot {
	groupID := "0f2a1f4e-1111-4e5a-9d3b-222233334444"
	return &Snapshot{
		Version:        Version,
		CurrencySymbol: "€",
		Persons: []*person.Person{
			{ID: "a-id", Name: "Alice", Contact: strPtr("alice@example.com"), IsPrimary: true,
				CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
			{ID: "b-id", Name: "Bob", Notes: strPtr("roommate"),
				CreatedAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)},
		},
		Groups: []*group.Group{
			{ID: groupID, Name: "Flat", MemberIDs: []string{"a-id", "b-id"},
				CreatedAt: time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)},
		},
		Entries: []*entry.Entry{
			{
				ID:          "e-id",
				Kind:        ledger.KindExpense,
				Description: "Groceries",
				Amount:      decimal.RequireFromString("41.37"),
				Date:        time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
				PayerID:     "a-id",
				GroupID:     &groupID,
				Category:    "food",
				SplitMode:   "EQUAL",
				Splits: []entry.Split{
					{PersonID: "a-id", Amount: decimal.RequireFromString("20.69")},
					{PersonID: "b-id", Amount: decimal.RequireFromString("20.68")},
				},
				CreatedAt: time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC),
			},
		},
	}
}

// TestSnapshotJSONRoundTrip marshals a populated snapshot and reads it back:
// every exported field has to survive the trip unchanged, otherwise a
// restored dataset would silently diverge from the original.
func TestSnapshotJSONRoundTrip(t *testing.T) {
	original := sampleSnapshot()
	original.ExportedAt = "2026-03-05T00:00:00Z"

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}

	var restored Snapshot
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}

	if restored.Version != original.Version {
		t.Errorf("version = %d, want %d", restored.Version, original.Version)
	}
	if restored.CurrencySymbol != original.CurrencySymbol {
		t.Errorf("currency symbol = %q, want %q", restored.CurrencySymbol, original.CurrencySymbol)
	}
	if restored.ExportedAt != original.ExportedAt {
		t.Errorf("exported_at = %q, want %q", restored.ExportedAt, original.ExportedAt)
	}

	if len(restored.Persons) != 2 {
		t.Fatalf("got %d persons, want 2", len(restored.Persons))
	}
	alice := restored.Persons[0]
	if alice.ID != "a-id" || alice.Name != "Alice" || !alice.IsPrimary {
		t.Errorf("person = %+v, want Alice (primary)", alice)
	}
	if alice.Contact == nil || *alice.Contact != "alice@example.com" {
		t.Errorf("contact = %v, want alice@example.com", alice.Contact)
	}
	if restored.Persons[1].Notes == nil || *restored.Persons[1].Notes != "roommate" {
		t.Errorf("notes = %v, want roommate", restored.Persons[1].Notes)
	}

	if len(restored.Groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(restored.Groups))
	}
	g := restored.Groups[0]
	if g.Name != "Flat" || len(g.MemberIDs) != 2 || g.MemberIDs[0] != "a-id" || g.MemberIDs[1] != "b-id" {
		t.Errorf("group = %+v, want Flat with members a-id, b-id", g)
	}

	if len(restored.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(restored.Entries))
	}
	e := restored.Entries[0]
	want := original.Entries[0]
	if e.Kind != want.Kind || e.Description != want.Description || e.PayerID != want.PayerID {
		t.Errorf("entry = %+v, want %+v", e, want)
	}
	if !e.Amount.Equal(want.Amount) {
		t.Errorf("amount = %s, want %s", e.Amount, want.Amount)
	}
	if !e.Date.Equal(want.Date) {
		t.Errorf("date = %s, want %s", e.Date, want.Date)
	}
	if e.GroupID == nil || *e.GroupID != *want.GroupID {
		t.Errorf("group_id = %v, want %v", e.GroupID, want.GroupID)
	}
	if e.Category != want.Category || string(e.SplitMode) != string(want.SplitMode) {
		t.Errorf("category/split_mode = %q/%q, want %q/%q", e.Category, e.SplitMode, want.Category, want.SplitMode)
	}
	if len(e.Splits) != 2 {
		t.Fatalf("got %d splits, want 2", len(e.Splits))
	}
	for i, s := range e.Splits {
		if s.PersonID != want.Splits[i].PersonID || !s.Amount.Equal(want.Splits[i].Amount) {
			t.Errorf("split[%d] = %+v, want %+v", i, s, want.Splits[i])
		}
	}
}

func TestImportValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(snap *Snapshot)
		wantErr error
	}{
		{
			name:    "rejects unsupported version",
			mutate:  func(snap *Snapshot) { snap.Version = Version + 1 },
			wantErr: ErrUnsupportedVersion,
		},
		{
			name: "rejects group member missing from the person list",
			mutate: func(snap *Snapshot) {
				snap.Groups[0].MemberIDs = append(snap.Groups[0].MemberIDs, "nobody")
			},
			wantErr: ErrUnknownPersonRef,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			svc := NewService(store)

			snap := sampleSnapshot()
			tt.mutate(snap)

			err := svc.Import(context.Background(), snap)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Import() error = %v, want %v", err, tt.wantErr)
			}
			if store.imported != nil {
				t.Error("store was written despite the validation error")
			}
		})
	}
}

func TestImport(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	snap := sampleSnapshot()
	if err := svc.Import(context.Background(), snap); err != nil {
		t.Fatalf("Import() unexpected error: %v", err)
	}
	if store.imported != snap {
		t.Error("valid snapshot did not reach the store")
	}

	// entries may reference deleted persons; only group membership is checked
	t.Run("dangling entry payer is accepted", func(t *testing.T) {
		store := &fakeStore{}
		svc := NewService(store)

		snap := sampleSnapshot()
		snap.Entries[0].PayerID = "gone"
		if err := svc.Import(context.Background(), snap); err != nil {
			t.Fatalf("Import() unexpected error: %v", err)
		}
	})

	t.Run("empty currency symbol falls back to the default", func(t *testing.T) {
		store := &fakeStore{}
		svc := NewService(store)

		snap := sampleSnapshot()
		snap.CurrencySymbol = ""
		if err := svc.Import(context.Background(), snap); err != nil {
			t.Fatalf("Import() unexpected error: %v", err)
		}
		if store.imported.CurrencySymbol != "$" {
			t.Errorf("currency symbol = %q, want $", store.imported.CurrencySymbol)
		}
	})
}

func TestExportStampsTimestamp(t *testing.T) {
	store := &fakeStore{exported: sampleSnapshot()}
	svc := NewService(store)

	snap, err := svc.Export(context.Background())
	if err != nil {
		t.Fatalf("Export() unexpected error: %v", err)
	}
	if snap.ExportedAt == "" {
		t.Error("exported_at not set")
	}
	if _, err := time.Parse(time.RFC3339, snap.ExportedAt); err != nil {
		t.Errorf("exported_at %q is not RFC3339: %v", snap.ExportedAt, err)
	}
}
