package split

import "github.com/shopspring/decimal"

// =============================================================================
// PERCENT SPLIT STRATEGY
// Divides the total based on a percentage per participant
// =============================================================================

// PercentStrategy implements the Strategy interface for percentage-based splits
type PercentStrategy struct{}

// Mode returns the split mode identifier
func (s *PercentStrategy) Mode() Mode {
	return ModePercent
}

// Validate checks if the inputs are valid for a percent split.
// Percentages must sum to 100 within a 0.5 tolerance.
func (s *PercentStrategy) Validate(totalAmount decimal.Decimal, participants []Input) error {
	if err := validateCommon(totalAmount, participants); err != nil {
		return err
	}

	sum := decimal.Zero
	for _, p := range participants {
		if p.Percent == nil {
			return ErrMissingPercent
		}
		if p.Percent.IsNegative() {
			return ErrNegativeInput
		}
		sum = sum.Add(*p.Percent)
	}

	if sum.Sub(hundred).Abs().GreaterThan(percentEpsilon) {
		return ErrPercentOutOfRange
	}

	return nil
}

// Calculate divides the total by each participant's percentage.
// Shares are normalized against the actual percentage sum rather than an
// assumed 100 so the 0.5 slack stays conserving. The last participant in
// input order is forced to the unassigned remainder, which keeps the shares
// summing to the total despite per-term rounding.
func (s *PercentStrategy) Calculate(totalAmount decimal.Decimal, participants []Input) ([]Output, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	sumPercents := decimal.Zero
	for _, p := range participants {
		sumPercents = sumPercents.Add(*p.Percent)
	}

	outputs := make([]Output, len(participants))
	assigned := decimal.Zero
	last := len(participants) - 1

	for i, p := range participants {
		if i == last {
			outputs[i] = Output{PersonID: p.PersonID, Amount: totalAmount.Sub(assigned)}
			break
		}
		amount := totalAmount.Mul(*p.Percent).Div(sumPercents).Round(2)
		assigned = assigned.Add(amount)
		outputs[i] = Output{PersonID: p.PersonID, Amount: amount}
	}

	return outputs, nil
}
