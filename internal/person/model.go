package person

import "time"

// Person represents someone who can participate in ledger entries.
// The engine treats a person purely as an identifier key; entries may
// outlive the person they reference.
type Person struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   *string   `json:"contact,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	IsPrimary bool      `json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
}
