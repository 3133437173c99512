package split

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Mode identifies a split allocation strategy
type Mode string

const (
	ModeEqual   Mode = "EQUAL"
	ModeExact   Mode = "EXACT"
	ModePercent Mode = "PERCENT"
	ModeShares  Mode = "SHARES"
)

// Input represents one participant in a split with mode-specific values
type Input struct {
	PersonID string           `json:"person_id"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`  // For EXACT split
	Percent  *decimal.Decimal `json:"percent,omitempty"` // For PERCENT split
	Weight   *decimal.Decimal `json:"weight,omitempty"`  // For SHARES split
}

// Output is the calculated share for a single participant
type Output struct {
	PersonID string          `json:"person_id"`
	Amount   decimal.Decimal `json:"amount"`
}

// Strategy is the interface that all split strategies must implement
type Strategy interface {
	// Calculate computes the share for every participant.
	// The returned shares always sum to totalAmount to the cent.
	Calculate(totalAmount decimal.Decimal, participants []Input) ([]Output, error)

	// Mode returns the mode identifier for this strategy
	Mode() Mode

	// Validate checks if the inputs are valid for this strategy
	Validate(totalAmount decimal.Decimal, participants []Input) error
}

// Factory creates split strategies based on the requested mode
type Factory struct{}

// NewFactory creates a new factory instance
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the strategy implementation for the given mode
func (f *Factory) Create(mode Mode) (Strategy, error) {
	switch mode {
	case ModeEqual:
		return &EqualStrategy{}, nil
	case ModeExact:
		return &ExactStrategy{}, nil
	case ModePercent:
		return &PercentStrategy{}, nil
	case ModeShares:
		return &SharesStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown split mode: %s", mode)
	}
}

// CreateFromString creates a strategy from a string mode (useful for API requests)
func (f *Factory) CreateFromString(mode string) (Strategy, error) {
	return f.Create(Mode(mode))
}

var (
	ErrEmptyParticipants = errors.New("at least one participant is required")
	ErrNegativeInput     = errors.New("amounts, percentages and weights cannot be negative")
	ErrPercentOutOfRange = errors.New("percentages must sum to 100")
	ErrZeroShares        = errors.New("total share weight must be greater than zero")
	ErrMissingAmount     = errors.New("amount required for all participants")
	ErrMissingPercent    = errors.New("percent required for all participants")
	ErrMissingWeight     = errors.New("weight required for all participants")
)

// SumMismatchError reports exact amounts that do not add up to the total.
// It carries both sums so callers can surface them next to the form field.
type SumMismatchError struct {
	Expected decimal.Decimal
	Actual   decimal.Decimal
}

func (e *SumMismatchError) Error() string {
	return fmt.Sprintf("exact amounts sum to %s, expected %s", e.Actual.StringFixed(2), e.Expected.StringFixed(2))
}

var (
	// centEpsilon is the tolerance for monetary sums
	centEpsilon = decimal.RequireFromString("0.01")
	// percentEpsilon is looser than the money epsilon since user-entered
	// percentages round more coarsely
	percentEpsilon = decimal.RequireFromString("0.5")

	hundred = decimal.NewFromInt(100)
)

// validateCommon applies checks shared by every strategy
func validateCommon(totalAmount decimal.Decimal, participants []Input) error {
	if len(participants) == 0 {
		return ErrEmptyParticipants
	}
	if totalAmount.IsNegative() {
		return ErrNegativeInput
	}
	return nil
}
