package ledger

import "github.com/shopspring/decimal"

// Aggregate folds the full entry set into one net balance per person.
// Positive means the person is owed money, negative means they owe.
//
// Both entry kinds share one sign convention: the payer handed over money,
// so each split credits the payer and debits its participant. For an expense
// the payer lent the split amounts (a payer who is also a participant nets
// out on their own share); for a settlement the payer repaid their debt,
// which moves the payer toward zero and the recipient back toward zero from
// the other side. Executing a suggested transfer as a settlement therefore
// resolves it rather than doubling it.
//
// Every known person id starts at zero. Splits referencing ids outside
// knownPersonIDs (e.g. a since-deleted person) are lazily initialized rather
// than rejected, so historical entries always stay computable.
func Aggregate(entries []Entry, knownPersonIDs []string) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal, len(knownPersonIDs))
	for _, id := range knownPersonIDs {
		balances[id] = decimal.Zero
	}

	for _, e := range entries {
		for _, s := range e.Splits {
			balances[s.PersonID] = balances[s.PersonID].Sub(s.Amount)
			balances[e.PayerID] = balances[e.PayerID].Add(s.Amount)
		}
	}

	return balances
}
