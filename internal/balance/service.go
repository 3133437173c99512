package balance

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ashikrreddy06/Split-Wise/internal/entry"
	"github.com/Ashikrreddy06/Split-Wise/internal/ledger"
)

// Common errors
var (
	ErrSettleSelf        = errors.New("cannot settle with yourself")
	ErrAmountNotPositive = errors.New("amount must be greater than zero")
	ErrPartyRequired     = errors.New("from_id and to_id are required")
)

// EntrySource supplies the entry snapshot and records settlements.
// The abstraction keeps the balance computation testable without a database.
type EntrySource interface {
	ListAll(ctx context.Context) ([]*entry.Entry, error)
	Create(ctx context.Context, req *entry.CreateEntryRequest) (*entry.Entry, error)
}

// PersonSource supplies the set of currently known person ids
type PersonSource interface {
	ListIDs(ctx context.Context) ([]string, error)
}

// Service derives net balances and suggested transfers on demand.
// Nothing here is persisted: every computation starts from the full
// entry snapshot so the result can never drift from the entry log.
type Service struct {
	entries EntrySource
	persons PersonSource
}

// NewService creates a new balance service
func NewService(entries EntrySource, persons PersonSource) *Service {
	return &Service{entries: entries, persons: persons}
}

// NetBalances aggregates the full entry set into one balance per person,
// sorted largest creditor first. Ids referenced only by historical entries
// (e.g. deleted persons) appear alongside known ones.
func (s *Service) NetBalances(ctx context.Context) ([]PersonBalance, error) {
	balances, err := s.aggregate(ctx)
	if err != nil {
		return nil, err
	}
	return sortedBalances(balances), nil
}

// SuggestedTransfers derives the greedy settlement plan from the current
// net balances
func (s *Service) SuggestedTransfers(ctx context.Context) ([]TransferResponse, error) {
	balances, err := s.aggregate(ctx)
	if err != nil {
		return nil, err
	}
	return toTransferResponses(ledger.Simplify(balances)), nil
}

// Settle records a suggested transfer as paid by inserting a settlement-kind
// entry with payer from_id and a single exact split for to_id, then returns
// the recomputed balances.
func (s *Service) Settle(ctx context.Context, req *SettleRequest) (*SettleResponse, error) {
	if req.FromID == "" || req.ToID == "" {
		return nil, ErrPartyRequired
	}
	if req.FromID == req.ToID {
		return nil, ErrSettleSelf
	}
	if !req.Amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	description := req.Description
	if description == "" {
		description = "Settle up"
	}

	amount := req.Amount
	created, err := s.entries.Create(ctx, &entry.CreateEntryRequest{
		Kind:        string(ledger.KindSettlement),
		Description: description,
		Amount:      amount,
		Date:        date,
		PayerID:     req.FromID,
		SplitMode:   "EXACT",
		Participants: []*entry.Participant{
			{PersonID: req.ToID, Amount: &amount},
		},
	})
	if err != nil {
		return nil, err
	}

	balances, err := s.NetBalances(ctx)
	if err != nil {
		return nil, err
	}

	return &SettleResponse{EntryID: created.ID, Balances: balances}, nil
}

// aggregate builds the engine input snapshot and folds it into net balances
func (s *Service) aggregate(ctx context.Context) (map[string]decimal.Decimal, error) {
	all, err := s.entries.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	ids, err := s.persons.ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	ledgerEntries := make([]ledger.Entry, len(all))
	for i, e := range all {
		ledgerEntries[i] = e.ToLedger()
	}

	return ledger.Aggregate(ledgerEntries, ids), nil
}

// sortedBalances orders balances largest creditor first, ties by id
func sortedBalances(balances map[string]decimal.Decimal) []PersonBalance {
	result := make([]PersonBalance, 0, len(balances))
	for id, amount := range balances {
		result = append(result, PersonBalance{
			PersonID: id,
			Amount:   amount,
			Settled:  ledger.Settled(amount),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Amount.Equal(result[j].Amount) {
			return result[i].Amount.GreaterThan(result[j].Amount)
		}
		return result[i].PersonID < result[j].PersonID
	})

	return result
}
