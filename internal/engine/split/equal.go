package split

import "github.com/adhamel/tripsplit/pkg/money"

// =============================================================================
// EQUAL SPLIT STRATEGY
// Divides the expense equally among all participants
// =============================================================================

// EqualStrategy implements the Strategy interface for equal splits
type EqualStrategy struct{}

// Type returns the split type identifier
func (s *EqualStrategy) Type() SplitType {
	return SplitTypeEqual
}

// Validate checks if the inputs are valid for an equal split
func (s *EqualStrategy) Validate(totalAmount money.Amount, participants []ShareInput) error {
	return validateCommon(totalAmount, participants)
}

// Calculate divides the total evenly in minor units. Since the total rarely
// divides cleanly, the remainder cents go one each to the first participants
// in input order, so the shares always sum exactly to the total.
func (s *EqualStrategy) Calculate(totalAmount money.Amount, participants []ShareInput) ([]Share, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	n := int64(len(participants))
	base := int64(totalAmount) / n
	extra := int64(totalAmount) % n

	shares := make([]Share, len(participants))
	for i, p := range participants {
		amount := base
		if int64(i) < extra {
			amount++
		}
		shares[i] = Share{
			ParticipantID: p.ParticipantID,
			Amount:        money.Amount(amount),
		}
	}

	return shares, nil
}
