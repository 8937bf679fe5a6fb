package split

import "github.com/adhamel/tripsplit/pkg/money"

// =============================================================================
// CUSTOM SPLIT STRATEGY
// Each participant owes a specific exact amount (must sum to total)
// =============================================================================

// CustomStrategy implements the Strategy interface for custom amount splits
type CustomStrategy struct{}

// Type returns the split type identifier
func (s *CustomStrategy) Type() SplitType {
	return SplitTypeCustom
}

// Validate checks if the inputs are valid for a custom split. Amounts are
// converted to minor units before comparison, so the check is exact: a
// one-cent mismatch is a mismatch.
func (s *CustomStrategy) Validate(totalAmount money.Amount, participants []ShareInput) error {
	if err := validateCommon(totalAmount, participants); err != nil {
		return err
	}

	var sum money.Amount
	for _, p := range participants {
		if p.Amount == nil {
			return ErrMissingAmount
		}
		if *p.Amount < 0 {
			return ErrNegativeAmount
		}
		sum += money.FromFloat(*p.Amount)
	}

	if sum != totalAmount {
		return ErrCustomAmountsMismatch
	}

	return nil
}

// Calculate returns the caller-specified amounts unchanged. There is no
// redistribution for custom splits; validation already guarantees the sum.
func (s *CustomStrategy) Calculate(totalAmount money.Amount, participants []ShareInput) ([]Share, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	shares := make([]Share, len(participants))
	for i, p := range participants {
		shares[i] = Share{
			ParticipantID: p.ParticipantID,
			Amount:        money.FromFloat(*p.Amount),
		}
	}

	return shares, nil
}
