package entry

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Ashikrreddy06/Split-Wise/internal/ledger"
	"github.com/Ashikrreddy06/Split-Wise/internal/ledger/split"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validRequest() *CreateEntryRequest {
	return &CreateEntryRequest{
		Kind:        "expense",
		Description: "Groceries",
		Amount:      decimal.RequireFromString("10.00"),
		Date:        "2026-08-20",
		PayerID:     "alice",
		Category:    "food",
		SplitMode:   "EQUAL",
		Participants: []*Participant{
			{PersonID: "alice"},
			{PersonID: "bob"},
			{PersonID: "carol"},
		},
	}
}

func TestBuild(t *testing.T) {
	svc := NewService(nil, split.NewFactory())

	t.Run("resolves splits and preserves participant order", func(t *testing.T) {
		e, err := svc.build(validRequest())
		if err != nil {
			t.Fatalf("build() unexpected error: %v", err)
		}
		if e.Kind != ledger.KindExpense {
			t.Errorf("Kind = %s, want expense", e.Kind)
		}
		if e.SplitMode != split.ModeEqual {
			t.Errorf("SplitMode = %s, want EQUAL", e.SplitMode)
		}
		if len(e.Splits) != 3 {
			t.Fatalf("got %d splits, want 3", len(e.Splits))
		}
		// first participant absorbs the leftover cent
		if !e.Splits[0].Amount.Equal(decimal.RequireFromString("3.34")) {
			t.Errorf("first split = %s, want 3.34", e.Splits[0].Amount)
		}
		if e.Splits[0].PersonID != "alice" || e.Splits[2].PersonID != "carol" {
			t.Errorf("split order not preserved: %+v", e.Splits)
		}
		if e.Date.Format(dateLayout) != "2026-08-20" {
			t.Errorf("Date = %s, want 2026-08-20", e.Date.Format(dateLayout))
		}
	})

	t.Run("split errors never reach the repository", func(t *testing.T) {
		req := validRequest()
		req.SplitMode = "EXACT"
		req.Participants = []*Participant{
			{PersonID: "alice", Amount: decPtr("4.00")},
			{PersonID: "bob", Amount: decPtr("5.00")},
		}

		// svc.repo is nil: reaching it would panic, proving the ledger
		// cannot be mutated on a failed split calculation
		_, err := svc.build(req)
		var mismatch *split.SumMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("build() error = %v, want SumMismatchError", err)
		}
	})

	tests := []struct {
		name    string
		mutate  func(*CreateEntryRequest)
		wantErr error
	}{
		{
			name:    "unknown kind",
			mutate:  func(r *CreateEntryRequest) { r.Kind = "refund" },
			wantErr: ErrInvalidKind,
		},
		{
			name:    "blank description",
			mutate:  func(r *CreateEntryRequest) { r.Description = "   " },
			wantErr: ErrDescriptionMissing,
		},
		{
			name:    "zero amount",
			mutate:  func(r *CreateEntryRequest) { r.Amount = decimal.Zero },
			wantErr: ErrAmountNotPositive,
		},
		{
			name:    "negative amount",
			mutate:  func(r *CreateEntryRequest) { r.Amount = decimal.RequireFromString("-5") },
			wantErr: ErrAmountNotPositive,
		},
		{
			name:    "missing payer",
			mutate:  func(r *CreateEntryRequest) { r.PayerID = "" },
			wantErr: ErrPayerRequired,
		},
		{
			name:    "bad date format",
			mutate:  func(r *CreateEntryRequest) { r.Date = "20/08/2026" },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "no participants",
			mutate:  func(r *CreateEntryRequest) { r.Participants = nil },
			wantErr: split.ErrEmptyParticipants,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := svc.build(req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("build() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestToLedger(t *testing.T) {
	e := &Entry{
		Kind:    ledger.KindSettlement,
		PayerID: "bob",
		Splits: []Split{
			{PersonID: "alice", Amount: decimal.RequireFromString("20.00")},
		},
	}

	le := e.ToLedger()
	if le.Kind != ledger.KindSettlement || le.PayerID != "bob" {
		t.Errorf("ToLedger() = %+v", le)
	}
	if len(le.Splits) != 1 || le.Splits[0].PersonID != "alice" {
		t.Errorf("ToLedger() splits = %+v", le.Splits)
	}
}
