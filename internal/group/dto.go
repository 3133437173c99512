package group

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	Name      string   `json:"name" validate:"required,min=1,max=255"`
	Notes     *string  `json:"notes,omitempty"`
	MemberIDs []string `json:"member_ids"`
}

// UpdateGroupRequest represents the request to update a group.
// MemberIDs, when present, replaces the membership wholesale.
type UpdateGroupRequest struct {
	Name      *string   `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Notes     *string   `json:"notes,omitempty"`
	MemberIDs *[]string `json:"member_ids,omitempty"`
}
