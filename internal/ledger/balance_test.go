package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		known   []string
		want    map[string]string
	}{
		{
			name:    "empty ledger is a valid fully-settled state",
			entries: nil,
			known:   []string{"A", "B"},
			want:    map[string]string{"A": "0", "B": "0"},
		},
		{
			name: "expense credits the payer per split",
			entries: []Entry{
				{Kind: KindExpense, PayerID: "A", Splits: []Split{
					{PersonID: "A", Amount: dec("20")},
					{PersonID: "B", Amount: dec("20")},
					{PersonID: "C", Amount: dec("20")},
				}},
			},
			known: []string{"A", "B", "C"},
			want:  map[string]string{"A": "40", "B": "-20", "C": "-20"},
		},
		{
			name: "settlement credits the payer and discharges the debt",
			entries: []Entry{
				{Kind: KindExpense, PayerID: "A", Splits: []Split{
					{PersonID: "A", Amount: dec("20")},
					{PersonID: "B", Amount: dec("20")},
					{PersonID: "C", Amount: dec("20")},
				}},
				{Kind: KindSettlement, PayerID: "B", Splits: []Split{
					{PersonID: "A", Amount: dec("20")},
				}},
			},
			known: []string{"A", "B", "C"},
			want:  map[string]string{"A": "20", "B": "0", "C": "-20"},
		},
		{
			name: "payer who is also a participant nets out on their own share",
			entries: []Entry{
				{Kind: KindExpense, PayerID: "A", Splits: []Split{
					{PersonID: "A", Amount: dec("50")},
					{PersonID: "B", Amount: dec("50")},
				}},
			},
			known: []string{"A", "B"},
			want:  map[string]string{"A": "50", "B": "-50"},
		},
		{
			name: "splits referencing unknown person ids initialize lazily",
			entries: []Entry{
				{Kind: KindExpense, PayerID: "gone", Splits: []Split{
					{PersonID: "A", Amount: dec("10")},
				}},
			},
			known: []string{"A"},
			want:  map[string]string{"A": "-10", "gone": "10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.entries, tt.known)
			if len(got) != len(tt.want) {
				t.Fatalf("Aggregate() returned %d balances, want %d", len(got), len(tt.want))
			}
			for id, want := range tt.want {
				b, ok := got[id]
				if !ok {
					t.Errorf("balance for %s missing", id)
					continue
				}
				if !b.Equal(dec(want)) {
					t.Errorf("balance[%s] = %s, want %s", id, b, want)
				}
			}
		})
	}
}

// TestAggregateZeroSum checks that money is neither created nor destroyed:
// any entry set aggregates to balances summing to zero.
func TestAggregateZeroSum(t *testing.T) {
	entries := []Entry{
		{Kind: KindExpense, PayerID: "A", Splits: []Split{
			{PersonID: "A", Amount: dec("3.34")},
			{PersonID: "B", Amount: dec("3.33")},
			{PersonID: "C", Amount: dec("3.33")},
		}},
		{Kind: KindExpense, PayerID: "B", Splits: []Split{
			{PersonID: "C", Amount: dec("17.25")},
			{PersonID: "D", Amount: dec("0.00")},
		}},
		{Kind: KindSettlement, PayerID: "C", Splits: []Split{
			{PersonID: "A", Amount: dec("5.00")},
		}},
	}

	balances := Aggregate(entries, []string{"A", "B", "C", "D"})

	sum := decimal.Zero
	for _, b := range balances {
		sum = sum.Add(b)
	}
	if !sum.IsZero() {
		t.Errorf("balances sum to %s, want 0", sum)
	}
}

// TestSettlementsResolveSuggestedTransfers records every suggested transfer
// as a settlement-kind entry and re-aggregates: the whole ledger must land
// within a cent of zero. Recording a transfer has to discharge the debt, not
// double it.
func TestSettlementsResolveSuggestedTransfers(t *testing.T) {
	known := []string{"A", "B", "C"}
	entries := []Entry{
		{Kind: KindExpense, PayerID: "A", Splits: []Split{
			{PersonID: "A", Amount: dec("20")},
			{PersonID: "B", Amount: dec("20")},
			{PersonID: "C", Amount: dec("20")},
		}},
		{Kind: KindExpense, PayerID: "B", Splits: []Split{
			{PersonID: "B", Amount: dec("5.50")},
			{PersonID: "C", Amount: dec("5.50")},
		}},
	}

	for _, tr := range Simplify(Aggregate(entries, known)) {
		entries = append(entries, Entry{
			Kind:    KindSettlement,
			PayerID: tr.FromID,
			Splits:  []Split{{PersonID: tr.ToID, Amount: tr.Amount}},
		})
	}

	for id, b := range Aggregate(entries, known) {
		if !Settled(b) {
			t.Errorf("balance[%s] = %s after recording all transfers, want settled", id, b)
		}
	}
}

func TestSettled(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"0", true},
		{"0.01", true},
		{"-0.01", true},
		{"0.02", false},
		{"-5", false},
	}

	for _, tt := range tests {
		if got := Settled(dec(tt.value)); got != tt.want {
			t.Errorf("Settled(%s) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
