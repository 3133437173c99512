package entry

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Ashikrreddy06/Split-Wise/internal/ledger"
	"github.com/Ashikrreddy06/Split-Wise/internal/ledger/split"
)

// Common errors
var (
	ErrEntryNotFound      = errors.New("entry not found")
	ErrInvalidKind        = errors.New("kind must be expense or settlement")
	ErrInvalidDate        = errors.New("date must be formatted YYYY-MM-DD")
	ErrAmountNotPositive  = errors.New("amount must be greater than zero")
	ErrPayerRequired      = errors.New("payer_id is required")
	ErrDescriptionMissing = errors.New("description is required")
)

// Service handles entry business logic
type Service struct {
	repo         *Repository
	splitFactory *split.Factory
}

// NewService creates a new entry service with dependencies injected
func NewService(repo *Repository, splitFactory *split.Factory) *Service {
	return &Service{
		repo:         repo,
		splitFactory: splitFactory,
	}
}

// Create validates the request, resolves the splits with the requested
// strategy, and persists the entry. The ledger is never mutated when the
// split calculator rejects the input.
func (s *Service) Create(ctx context.Context, req *CreateEntryRequest) (*Entry, error) {
	e, err := s.build(req)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, e)
}

// Replace edits an entry in place by id: the whole record, splits included,
// is rebuilt from the request.
func (s *Service) Replace(ctx context.Context, id string, req *CreateEntryRequest) (*Entry, error) {
	e, err := s.build(req)
	if err != nil {
		return nil, err
	}
	e.ID = id

	updated, err := s.repo.Replace(ctx, e)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrEntryNotFound
	}
	return updated, nil
}

// GetByID retrieves an entry with its splits
func (s *Service) GetByID(ctx context.Context, id string) (*Entry, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrEntryNotFound
	}
	return e, nil
}

// List retrieves entries, optionally filtered by group
func (s *Service) List(ctx context.Context, groupID *string, page, perPage int) ([]*Entry, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.List(ctx, groupID, perPage, offset)
}

// ListAll retrieves the complete entry set, the snapshot fed to the
// balance aggregator
func (s *Service) ListAll(ctx context.Context) ([]*Entry, error) {
	return s.repo.ListAll(ctx)
}

// Delete removes an entry from the ledger. Balances self-correct on the
// next aggregation since they are always derived fresh from the entry set.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// build turns a raw request into a persistable entry with resolved splits
func (s *Service) build(req *CreateEntryRequest) (*Entry, error) {
	kind := ledger.Kind(req.Kind)
	if kind != ledger.KindExpense && kind != ledger.KindSettlement {
		return nil, ErrInvalidKind
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrDescriptionMissing
	}
	if !req.Amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}
	if req.PayerID == "" {
		return nil, ErrPayerRequired
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	strategy, err := s.splitFactory.CreateFromString(req.SplitMode)
	if err != nil {
		return nil, err
	}

	inputs := make([]split.Input, len(req.Participants))
	for i, p := range req.Participants {
		inputs[i] = p.ToSplitInput()
	}

	outputs, err := strategy.Calculate(req.Amount, inputs)
	if err != nil {
		return nil, err
	}

	splits := make([]Split, len(outputs))
	for i, o := range outputs {
		splits[i] = Split{PersonID: o.PersonID, Amount: o.Amount}
	}

	return &Entry{
		Kind:        kind,
		Description: strings.TrimSpace(req.Description),
		Amount:      req.Amount,
		Date:        date,
		PayerID:     req.PayerID,
		GroupID:     req.GroupID,
		Category:    req.Category,
		Notes:       req.Notes,
		SplitMode:   strategy.Mode(),
		Splits:      splits,
	}, nil
}
