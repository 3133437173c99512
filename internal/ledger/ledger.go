// Package ledger is the pure accounting engine: it folds ledger entries into
// net balances per person and derives suggested transfers that resolve them.
// It performs no I/O, holds no state, and never fails on well-formed input.
package ledger

import "github.com/shopspring/decimal"

// Kind tags the two transaction kinds an entry can carry
type Kind string

const (
	// KindExpense is a shared cost: the payer lent money to the split participants
	KindExpense Kind = "expense"
	// KindSettlement is a completed direct transfer that discharges existing debt
	KindSettlement Kind = "settlement"
)

// Split is one participant's monetary share of an entry's total
type Split struct {
	PersonID string
	Amount   decimal.Decimal
}

// Entry is the minimal view of a ledger entry the engine needs
type Entry struct {
	Kind    Kind
	PayerID string
	Splits  []Split
}

// SuggestedTransfer is a proposed payment derived from net balances.
// Recording one as paid means inserting a new settlement-kind entry;
// the transfer list itself is never mutated.
type SuggestedTransfer struct {
	FromID string
	ToID   string
	Amount decimal.Decimal
}

// settledEpsilon is the band within which a balance counts as zero
var settledEpsilon = decimal.RequireFromString("0.01")

// Settled reports whether a balance is negligible
func Settled(balance decimal.Decimal) bool {
	return balance.Abs().LessThanOrEqual(settledEpsilon)
}
