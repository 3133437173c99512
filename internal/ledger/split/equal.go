package split

import "github.com/shopspring/decimal"

// =============================================================================
// EQUAL SPLIT STRATEGY
// Divides the total equally among all participants
// =============================================================================

// EqualStrategy implements the Strategy interface for equal splits
type EqualStrategy struct{}

// Mode returns the split mode identifier
func (s *EqualStrategy) Mode() Mode {
	return ModeEqual
}

// Validate checks if the inputs are valid for an equal split
func (s *EqualStrategy) Validate(totalAmount decimal.Decimal, participants []Input) error {
	return validateCommon(totalAmount, participants)
}

// Calculate divides the total evenly among all participants.
// Each share is the total over the headcount truncated to two decimals;
// the leftover remainder goes to the first participant in input order so
// the shares always reconcile with the total.
func (s *EqualStrategy) Calculate(totalAmount decimal.Decimal, participants []Input) ([]Output, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	count := decimal.NewFromInt(int64(len(participants)))
	share := totalAmount.Div(count).Truncate(2)

	outputs := make([]Output, len(participants))
	for i, p := range participants {
		outputs[i] = Output{PersonID: p.PersonID, Amount: share}
	}

	remainder := totalAmount.Sub(share.Mul(count))
	if !remainder.IsZero() {
		outputs[0].Amount = outputs[0].Amount.Add(remainder)
	}

	return outputs, nil
}
