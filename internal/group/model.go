package group

import "time"

// Group represents a reusable set of people who share expenses
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Notes     *string   `json:"notes,omitempty"`
	MemberIDs []string  `json:"member_ids"`
	CreatedAt time.Time `json:"created_at"`
}
