package entry

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ashikrreddy06/Split-Wise/internal/ledger"
	"github.com/Ashikrreddy06/Split-Wise/internal/ledger/split"
)

// Entry represents a recorded monetary event: a shared expense or a
// direct settlement. Immutable once created except through replace-in-place
// edit by id.
type Entry struct {
	ID          string          `json:"id"`
	Kind        ledger.Kind     `json:"kind"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"` // calendar day, not a time
	PayerID     string          `json:"payer_id"`
	GroupID     *string         `json:"group_id,omitempty"`
	Category    string          `json:"category,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	SplitMode   split.Mode      `json:"split_mode"`
	Splits      []Split         `json:"splits"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Split is one participant's resolved share of the entry total.
// Splits are stored in the order the split calculator produced them;
// their sum always reconciles with Amount to the cent.
type Split struct {
	PersonID string          `json:"person_id"`
	Amount   decimal.Decimal `json:"amount"`
}

// ToLedger converts the entry to the engine's minimal view
func (e *Entry) ToLedger() ledger.Entry {
	splits := make([]ledger.Split, len(e.Splits))
	for i, s := range e.Splits {
		splits[i] = ledger.Split{PersonID: s.PersonID, Amount: s.Amount}
	}
	return ledger.Entry{Kind: e.Kind, PayerID: e.PayerID, Splits: splits}
}
