package split

import (
	"math"

	"github.com/adhamel/tripsplit/pkg/money"
)

// =============================================================================
// PERCENTAGE SPLIT STRATEGY
// Divides the expense based on specified percentages for each participant
// =============================================================================

// percentageTolerance absorbs float error when checking the percentages sum to 100
const percentageTolerance = 0.01

// PercentageStrategy implements the Strategy interface for percentage-based splits
type PercentageStrategy struct{}

// Type returns the split type identifier
func (s *PercentageStrategy) Type() SplitType {
	return SplitTypePercentage
}

// Validate checks if the inputs are valid for a percentage split
func (s *PercentageStrategy) Validate(totalAmount money.Amount, participants []ShareInput) error {
	if err := validateCommon(totalAmount, participants); err != nil {
		return err
	}

	var totalPercentage float64
	for _, p := range participants {
		if p.Percentage == nil {
			return ErrMissingPercentage
		}
		if *p.Percentage < 0 || *p.Percentage > 100 {
			return ErrPercentageOutOfRange
		}
		totalPercentage += *p.Percentage
	}

	if math.Abs(totalPercentage-100) > percentageTolerance {
		return ErrPercentagesInvalid
	}

	return nil
}

// Calculate computes each share as round(total * pct / 100) in minor units,
// then reconciles the rounding residual one cent at a time over the
// participants in input order until the shares sum exactly to the total.
func (s *PercentageStrategy) Calculate(totalAmount money.Amount, participants []ShareInput) ([]Share, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	shares := make([]Share, len(participants))
	var distributed int64
	for i, p := range participants {
		cents := int64(math.Round(float64(totalAmount) * (*p.Percentage) / 100))
		shares[i] = Share{
			ParticipantID: p.ParticipantID,
			Amount:        money.Amount(cents),
			Percentage:    p.Percentage,
		}
		distributed += cents
	}

	// Residual is at most a few cents; its sign tells which way to adjust.
	residual := int64(totalAmount) - distributed
	step := money.Amount(1)
	if residual < 0 {
		step = -1
	}
	for i := 0; residual != 0; i = (i + 1) % len(shares) {
		if step < 0 && shares[i].Amount == 0 {
			continue // never push a share negative
		}
		shares[i].Amount += step
		residual -= int64(step)
	}

	return shares, nil
}
