package balance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ashikrreddy06/Split-Wise/internal/entry"
	"github.com/Ashikrreddy06/Split-Wise/internal/ledger"
	"github.com/Ashikrreddy06/Split-Wise/internal/ledger/split"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// fakeEntries is an in-memory EntrySource backed by the real split calculator
type fakeEntries struct {
	entries []*entry.Entry
}

func (f *fakeEntries) ListAll(ctx context.Context) ([]*entry.Entry, error) {
	return f.entries, nil
}

func (f *fakeEntries) Create(ctx context.Context, req *entry.CreateEntryRequest) (*entry.Entry, error) {
	strategy, err := split.NewFactory().CreateFromString(req.SplitMode)
	if err != nil {
		return nil, err
	}
	inputs := make([]split.Input, len(req.Participants))
	for i, p := range req.Participants {
		inputs[i] = p.ToSplitInput()
	}
	outputs, err := strategy.Calculate(req.Amount, inputs)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}
	e := &entry.Entry{
		ID:          "generated",
		Kind:        ledger.Kind(req.Kind),
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		PayerID:     req.PayerID,
	}
	for _, o := range outputs {
		e.Splits = append(e.Splits, entry.Split{PersonID: o.PersonID, Amount: o.Amount})
	}
	f.entries = append(f.entries, e)
	return e, nil
}

type fakePersons struct {
	ids []string
}

func (f *fakePersons) ListIDs(ctx context.Context) ([]string, error) {
	return f.ids, nil
}

func sharedExpense(payer string, shares map[string]string) *entry.Entry {
	e := &entry.Entry{Kind: ledger.KindExpense, PayerID: payer}
	total := decimal.Zero
	for _, id := range []string{"alice", "bob", "carol"} {
		if amount, ok := shares[id]; ok {
			e.Splits = append(e.Splits, entry.Split{PersonID: id, Amount: dec(amount)})
			total = total.Add(dec(amount))
		}
	}
	e.Amount = total
	return e
}

func TestNetBalances(t *testing.T) {
	entries := &fakeEntries{entries: []*entry.Entry{
		sharedExpense("alice", map[string]string{"alice": "20", "bob": "20", "carol": "20"}),
	}}
	persons := &fakePersons{ids: []string{"alice", "bob", "carol"}}
	svc := NewService(entries, persons)

	balances, err := svc.NetBalances(context.Background())
	if err != nil {
		t.Fatalf("NetBalances() unexpected error: %v", err)
	}

	if len(balances) != 3 {
		t.Fatalf("got %d balances, want 3", len(balances))
	}
	// sorted largest creditor first, ties by id
	if balances[0].PersonID != "alice" || !balances[0].Amount.Equal(dec("40")) {
		t.Errorf("balances[0] = %+v, want alice +40", balances[0])
	}
	if balances[1].PersonID != "bob" || !balances[1].Amount.Equal(dec("-20")) {
		t.Errorf("balances[1] = %+v, want bob -20", balances[1])
	}
	if balances[0].Settled || !zeroCount(balances) {
		t.Errorf("settled flags wrong: %+v", balances)
	}
}

func zeroCount(balances []PersonBalance) bool {
	for _, b := range balances {
		if b.Settled != ledger.Settled(b.Amount) {
			return false
		}
	}
	return true
}

func TestSuggestedTransfers(t *testing.T) {
	entries := &fakeEntries{entries: []*entry.Entry{
		sharedExpense("alice", map[string]string{"alice": "20", "bob": "15", "carol": "25"}),
	}}
	persons := &fakePersons{ids: []string{"alice", "bob", "carol"}}
	svc := NewService(entries, persons)

	transfers, err := svc.SuggestedTransfers(context.Background())
	if err != nil {
		t.Fatalf("SuggestedTransfers() unexpected error: %v", err)
	}

	want := []TransferResponse{
		{FromID: "carol", ToID: "alice", Amount: dec("25")},
		{FromID: "bob", ToID: "alice", Amount: dec("15")},
	}
	if len(transfers) != len(want) {
		t.Fatalf("got %d transfers, want %d: %+v", len(transfers), len(want), transfers)
	}
	for i, w := range want {
		if transfers[i].FromID != w.FromID || transfers[i].ToID != w.ToID || !transfers[i].Amount.Equal(w.Amount) {
			t.Errorf("transfer[%d] = %+v, want %+v", i, transfers[i], w)
		}
	}
}

func TestSettle(t *testing.T) {
	entries := &fakeEntries{entries: []*entry.Entry{
		sharedExpense("alice", map[string]string{"alice": "20", "bob": "20", "carol": "20"}),
	}}
	persons := &fakePersons{ids: []string{"alice", "bob", "carol"}}
	svc := NewService(entries, persons)

	result, err := svc.Settle(context.Background(), &SettleRequest{
		FromID: "bob",
		ToID:   "alice",
		Amount: dec("20"),
		Date:   "2026-08-21",
	})
	if err != nil {
		t.Fatalf("Settle() unexpected error: %v", err)
	}

	// recording the transfer appends a settlement-kind entry
	recorded := entries.entries[len(entries.entries)-1]
	if recorded.Kind != ledger.KindSettlement || recorded.PayerID != "bob" {
		t.Errorf("recorded entry = %+v, want settlement paid by bob", recorded)
	}
	if len(recorded.Splits) != 1 || recorded.Splits[0].PersonID != "alice" || !recorded.Splits[0].Amount.Equal(dec("20")) {
		t.Errorf("recorded splits = %+v, want single alice 20", recorded.Splits)
	}

	// bob is settled afterwards, carol still owes
	for _, b := range result.Balances {
		switch b.PersonID {
		case "alice":
			if !b.Amount.Equal(dec("20")) {
				t.Errorf("alice = %s, want 20", b.Amount)
			}
		case "bob":
			if !b.Settled {
				t.Errorf("bob = %s, want settled", b.Amount)
			}
		case "carol":
			if !b.Amount.Equal(dec("-20")) {
				t.Errorf("carol = %s, want -20", b.Amount)
			}
		}
	}
}

func TestSettleValidation(t *testing.T) {
	svc := NewService(&fakeEntries{}, &fakePersons{})

	tests := []struct {
		name    string
		req     SettleRequest
		wantErr error
	}{
		{
			name:    "missing parties",
			req:     SettleRequest{Amount: dec("5")},
			wantErr: ErrPartyRequired,
		},
		{
			name:    "self settlement",
			req:     SettleRequest{FromID: "a", ToID: "a", Amount: dec("5")},
			wantErr: ErrSettleSelf,
		},
		{
			name:    "zero amount",
			req:     SettleRequest{FromID: "a", ToID: "b"},
			wantErr: ErrAmountNotPositive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Settle(context.Background(), &tt.req); err != tt.wantErr {
				t.Errorf("Settle() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
