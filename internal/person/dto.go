package person

// CreatePersonRequest represents the request to create a person
type CreatePersonRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=255"`
	Contact   *string `json:"contact,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	IsPrimary bool    `json:"is_primary"`
}

// UpdatePersonRequest represents the request to update a person
type UpdatePersonRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Contact   *string `json:"contact,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	IsPrimary *bool   `json:"is_primary,omitempty"`
}
