package split

import "github.com/shopspring/decimal"

// =============================================================================
// SHARES SPLIT STRATEGY
// Divides the total proportionally to a weight per participant
// =============================================================================

// SharesStrategy implements the Strategy interface for weight-based splits
type SharesStrategy struct{}

// Mode returns the split mode identifier
func (s *SharesStrategy) Mode() Mode {
	return ModeShares
}

// Validate checks if the inputs are valid for a shares split.
// Individual weights may be zero but the total weight must be positive.
func (s *SharesStrategy) Validate(totalAmount decimal.Decimal, participants []Input) error {
	if err := validateCommon(totalAmount, participants); err != nil {
		return err
	}

	totalWeight := decimal.Zero
	for _, p := range participants {
		if p.Weight == nil {
			return ErrMissingWeight
		}
		if p.Weight.IsNegative() {
			return ErrNegativeInput
		}
		totalWeight = totalWeight.Add(*p.Weight)
	}

	if !totalWeight.IsPositive() {
		return ErrZeroShares
	}

	return nil
}

// Calculate divides the total proportionally to each participant's weight,
// rounded to the cent, with the last participant in input order absorbing
// the rounding residual. A zero-weight participant gets a 0.00 share.
func (s *SharesStrategy) Calculate(totalAmount decimal.Decimal, participants []Input) ([]Output, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	totalWeight := decimal.Zero
	for _, p := range participants {
		totalWeight = totalWeight.Add(*p.Weight)
	}

	outputs := make([]Output, len(participants))
	assigned := decimal.Zero
	last := len(participants) - 1

	for i, p := range participants {
		if i == last {
			outputs[i] = Output{PersonID: p.PersonID, Amount: totalAmount.Sub(assigned)}
			break
		}
		amount := totalAmount.Mul(*p.Weight).Div(totalWeight).Round(2)
		assigned = assigned.Add(amount)
		outputs[i] = Output{PersonID: p.PersonID, Amount: amount}
	}

	return outputs, nil
}
