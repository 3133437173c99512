package balance

import (
	"github.com/shopspring/decimal"

	"github.com/Ashikrreddy06/Split-Wise/internal/ledger"
)

// PersonBalance is one person's net position across all entries.
// Positive means they are owed money, negative means they owe.
type PersonBalance struct {
	PersonID string          `json:"person_id"`
	Amount   decimal.Decimal `json:"amount"`
	Settled  bool            `json:"settled"`
}

// TransferResponse is a suggested payment that reduces outstanding debt
type TransferResponse struct {
	FromID string          `json:"from_id"`
	ToID   string          `json:"to_id"`
	Amount decimal.Decimal `json:"amount"`
}

// SettleRequest records a suggested transfer as paid
type SettleRequest struct {
	FromID      string          `json:"from_id" validate:"required"`
	ToID        string          `json:"to_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Date        string          `json:"date,omitempty"`        // YYYY-MM-DD, defaults to today
	Description string          `json:"description,omitempty"` // defaults to "Settle up"
}

// SettleResponse returns the recorded settlement entry id alongside the
// recomputed balances
type SettleResponse struct {
	EntryID  string          `json:"entry_id"`
	Balances []PersonBalance `json:"balances"`
}

func toTransferResponses(transfers []ledger.SuggestedTransfer) []TransferResponse {
	responses := make([]TransferResponse, len(transfers))
	for i, t := range transfers {
		responses[i] = TransferResponse{FromID: t.FromID, ToID: t.ToID, Amount: t.Amount}
	}
	return responses
}
