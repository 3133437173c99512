package split

import "github.com/shopspring/decimal"

// =============================================================================
// EXACT SPLIT STRATEGY
// Each participant owes a caller-supplied amount (must sum to total)
// =============================================================================

// ExactStrategy implements the Strategy interface for exact amount splits
type ExactStrategy struct{}

// Mode returns the split mode identifier
func (s *ExactStrategy) Mode() Mode {
	return ModeExact
}

// Validate checks if the inputs are valid for an exact split
func (s *ExactStrategy) Validate(totalAmount decimal.Decimal, participants []Input) error {
	if err := validateCommon(totalAmount, participants); err != nil {
		return err
	}

	sum := decimal.Zero
	for _, p := range participants {
		if p.Amount == nil {
			return ErrMissingAmount
		}
		if p.Amount.IsNegative() {
			return ErrNegativeInput
		}
		sum = sum.Add(*p.Amount)
	}

	if sum.Sub(totalAmount).Abs().GreaterThan(centEpsilon) {
		return &SumMismatchError{Expected: totalAmount, Actual: sum}
	}

	return nil
}

// Calculate returns each participant's supplied amount rounded to the cent.
// A zero amount is legal and keeps the participant on the entry with no share.
func (s *ExactStrategy) Calculate(totalAmount decimal.Decimal, participants []Input) ([]Output, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	outputs := make([]Output, len(participants))
	for i, p := range participants {
		outputs[i] = Output{PersonID: p.PersonID, Amount: p.Amount.Round(2)}
	}

	return outputs, nil
}
