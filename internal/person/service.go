package person

import (
	"context"
	"errors"
	"strings"
)

// Common errors
var (
	ErrPersonNotFound = errors.New("person not found")
	ErrNameRequired   = errors.New("name is required")
)

// Service handles person business logic
type Service struct {
	repo *Repository
}

// NewService creates a new person service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new person
func (s *Service) Create(ctx context.Context, req *CreatePersonRequest) (*Person, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrNameRequired
	}

	return s.repo.Create(ctx, req)
}

// GetByID retrieves a person by their ID
func (s *Service) GetByID(ctx context.Context, id string) (*Person, error) {
	person, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}
	return person, nil
}

// List retrieves all persons
func (s *Service) List(ctx context.Context) ([]*Person, error) {
	return s.repo.List(ctx)
}

// ListIDs retrieves the set of currently known person ids
func (s *Service) ListIDs(ctx context.Context) ([]string, error) {
	return s.repo.ListIDs(ctx)
}

// Update modifies an existing person
func (s *Service) Update(ctx context.Context, id string, req *UpdatePersonRequest) (*Person, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, ErrNameRequired
		}
		req.Name = &trimmed
	}

	person, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}
	return person, nil
}

// Delete removes a person. Existing entries keep referencing the id;
// the balance aggregator handles dangling ids without failing.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
