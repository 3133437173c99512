package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSimplify(t *testing.T) {
	tests := []struct {
		name     string
		balances map[string]decimal.Decimal
		want     []SuggestedTransfer
	}{
		{
			name: "largest debtor matched first against the only creditor",
			balances: map[string]decimal.Decimal{
				"A": dec("50"),
				"B": dec("-30"),
				"C": dec("-20"),
			},
			want: []SuggestedTransfer{
				{FromID: "B", ToID: "A", Amount: dec("30")},
				{FromID: "C", ToID: "A", Amount: dec("20")},
			},
		},
		{
			name: "one debtor pays down multiple creditors",
			balances: map[string]decimal.Decimal{
				"A": dec("-60"),
				"B": dec("40"),
				"C": dec("20"),
			},
			want: []SuggestedTransfer{
				{FromID: "A", ToID: "B", Amount: dec("40")},
				{FromID: "A", ToID: "C", Amount: dec("20")},
			},
		},
		{
			name: "equal magnitudes keep sorted id order",
			balances: map[string]decimal.Decimal{
				"B": dec("-10"),
				"A": dec("-10"),
				"X": dec("20"),
			},
			want: []SuggestedTransfer{
				{FromID: "A", ToID: "X", Amount: dec("10")},
				{FromID: "B", ToID: "X", Amount: dec("10")},
			},
		},
		{
			name: "already settled map yields no transfers",
			balances: map[string]decimal.Decimal{
				"A": dec("0.01"),
				"B": dec("-0.01"),
				"C": dec("0"),
			},
			want: nil,
		},
		{
			name:     "empty map yields no transfers",
			balances: map[string]decimal.Decimal{},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Simplify(tt.balances)
			if len(got) != len(tt.want) {
				t.Fatalf("Simplify() returned %d transfers, want %d: %v", len(got), len(tt.want), got)
			}
			for i, w := range tt.want {
				if got[i].FromID != w.FromID || got[i].ToID != w.ToID || !got[i].Amount.Equal(w.Amount) {
					t.Errorf("transfer[%d] = %s->%s %s, want %s->%s %s",
						i, got[i].FromID, got[i].ToID, got[i].Amount, w.FromID, w.ToID, w.Amount)
				}
			}
		})
	}
}

// TestSimplifyResolvesBalances executes every suggested transfer against the
// input balances and checks that everyone lands within a cent of zero.
func TestSimplifyResolvesBalances(t *testing.T) {
	balances := map[string]decimal.Decimal{
		"A": dec("123.45"),
		"B": dec("-41.15"),
		"C": dec("-0.30"),
		"D": dec("-82.00"),
		"E": dec("7.18"),
		"F": dec("-7.18"),
	}

	remaining := make(map[string]decimal.Decimal, len(balances))
	for id, b := range balances {
		remaining[id] = b
	}

	for _, tr := range Simplify(balances) {
		remaining[tr.FromID] = remaining[tr.FromID].Add(tr.Amount)
		remaining[tr.ToID] = remaining[tr.ToID].Sub(tr.Amount)
	}

	for id, b := range remaining {
		if !Settled(b) {
			t.Errorf("balance[%s] = %s after executing all transfers, want settled", id, b)
		}
	}
}

// TestSimplifyDeterministic checks that output does not depend on map
// iteration order.
func TestSimplifyDeterministic(t *testing.T) {
	balances := map[string]decimal.Decimal{
		"A": dec("10"), "B": dec("10"), "C": dec("10"),
		"D": dec("-10"), "E": dec("-10"), "F": dec("-10"),
	}

	first := Simplify(balances)
	for i := 0; i < 20; i++ {
		again := Simplify(balances)
		if len(again) != len(first) {
			t.Fatalf("run %d returned %d transfers, first returned %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j].FromID != first[j].FromID || again[j].ToID != first[j].ToID || !again[j].Amount.Equal(first[j].Amount) {
				t.Fatalf("run %d transfer[%d] = %+v, first = %+v", i, j, again[j], first[j])
			}
		}
	}
}
