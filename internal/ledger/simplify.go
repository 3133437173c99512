package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

type party struct {
	id     string
	amount decimal.Decimal
}

// Simplify derives an ordered list of transfers that, if all executed, bring
// every balance to within a cent of zero.
//
// This is a deterministic greedy heuristic, not a minimum-transaction solver:
// creditors and debtors are sorted descending by magnitude, then walked with
// two pointers, always matching the current largest debtor against the
// current largest creditor for min(remaining debt, remaining credit). Ids are
// walked in sorted order before partitioning so map iteration never affects
// the output; ties keep that order.
//
// Balances within the settled band are excluded up front, and the loop stops
// once a computed transfer drops to a cent or less, which guards against
// spinning on accumulated rounding noise. A fully-settled input yields an
// empty list.
func Simplify(balances map[string]decimal.Decimal) []SuggestedTransfer {
	ids := make([]string, 0, len(balances))
	for id := range balances {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var creditors, debtors []party
	for _, id := range ids {
		b := balances[id]
		switch {
		case b.GreaterThan(settledEpsilon):
			creditors = append(creditors, party{id: id, amount: b})
		case b.LessThan(settledEpsilon.Neg()):
			debtors = append(debtors, party{id: id, amount: b.Neg()})
		}
	}

	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].amount.GreaterThan(debtors[j].amount)
	})
	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].amount.GreaterThan(creditors[j].amount)
	})

	var transfers []SuggestedTransfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := decimal.Min(debtors[i].amount, creditors[j].amount)
		if amount.LessThanOrEqual(settledEpsilon) {
			break
		}

		transfers = append(transfers, SuggestedTransfer{
			FromID: debtors[i].id,
			ToID:   creditors[j].id,
			Amount: amount,
		})

		debtors[i].amount = debtors[i].amount.Sub(amount)
		creditors[j].amount = creditors[j].amount.Sub(amount)

		if debtors[i].amount.LessThanOrEqual(settledEpsilon) {
			i++
		}
		if creditors[j].amount.LessThanOrEqual(settledEpsilon) {
			j++
		}
	}

	return transfers
}
