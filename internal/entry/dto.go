package entry

import (
	"github.com/shopspring/decimal"

	"github.com/Ashikrreddy06/Split-Wise/internal/ledger/split"
)

// dateLayout is the wire format for the entry date (calendar day)
const dateLayout = "2006-01-02"

// Participant carries one participant's mode-specific allocation input
type Participant struct {
	PersonID string           `json:"person_id" validate:"required"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`  // For EXACT split
	Percent  *decimal.Decimal `json:"percent,omitempty"` // For PERCENT split
	Weight   *decimal.Decimal `json:"weight,omitempty"`  // For SHARES split
}

// ToSplitInput converts to the split package's input type
func (p *Participant) ToSplitInput() split.Input {
	return split.Input{
		PersonID: p.PersonID,
		Amount:   p.Amount,
		Percent:  p.Percent,
		Weight:   p.Weight,
	}
}

// CreateEntryRequest represents the request to create a ledger entry.
// The same shape drives replace-in-place updates.
type CreateEntryRequest struct {
	Kind         string          `json:"kind" validate:"required,oneof=expense settlement"`
	Description  string          `json:"description" validate:"required,min=1,max=255"`
	Amount       decimal.Decimal `json:"amount" validate:"required"`
	Date         string          `json:"date" validate:"required"` // YYYY-MM-DD
	PayerID      string          `json:"payer_id"`
	GroupID      *string         `json:"group_id,omitempty"`
	Category     string          `json:"category,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	SplitMode    string          `json:"split_mode" validate:"required,oneof=EQUAL EXACT PERCENT SHARES"`
	Participants []*Participant  `json:"participants" validate:"required,min=1"`
}

// EntryResponse represents the response for an entry
type EntryResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	PayerID     string          `json:"payer_id"`
	GroupID     *string         `json:"group_id,omitempty"`
	Category    string          `json:"category,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	SplitMode   string          `json:"split_mode"`
	Splits      []Split         `json:"splits"`
	CreatedAt   string          `json:"created_at"`
}

// ToResponse converts an Entry model to an EntryResponse DTO
func (e *Entry) ToResponse() *EntryResponse {
	return &EntryResponse{
		ID:          e.ID,
		Kind:        string(e.Kind),
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date.Format(dateLayout),
		PayerID:     e.PayerID,
		GroupID:     e.GroupID,
		Category:    e.Category,
		Notes:       e.Notes,
		SplitMode:   string(e.SplitMode),
		Splits:      e.Splits,
		CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
