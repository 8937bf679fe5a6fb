package split

import (
	"errors"
	"fmt"

	"github.com/adhamel/tripsplit/pkg/money"
)

// SplitType defines the type of split strategy
type SplitType string

const (
	SplitTypeEqual      SplitType = "EQUAL"
	SplitTypePercentage SplitType = "PERCENTAGE"
	SplitTypeCustom     SplitType = "CUSTOM"
)

// ShareInput represents a participant in a split with optional values
type ShareInput struct {
	ParticipantID int64    `json:"participant_id"`
	Percentage    *float64 `json:"percentage,omitempty"` // For PERCENTAGE split
	Amount        *float64 `json:"amount,omitempty"`     // For CUSTOM split
}

// Share represents the calculated portion for a single participant.
// Every participant gets a share, the payer included: the balance
// accumulator nets the payer's own share against what they paid.
type Share struct {
	ParticipantID int64        `json:"participant_id"`
	Amount        money.Amount `json:"amount"`
	Percentage    *float64     `json:"percentage,omitempty"`
}

// Strategy is the interface that all split strategies must implement
type Strategy interface {
	// Calculate computes the share for every participant. The returned
	// shares always sum exactly to totalAmount in minor units.
	Calculate(totalAmount money.Amount, participants []ShareInput) ([]Share, error)

	// Type returns the type identifier for this strategy
	Type() SplitType

	// Validate checks if the inputs are valid for this strategy
	Validate(totalAmount money.Amount, participants []ShareInput) error
}

// Factory creates split strategies based on the requested type
type Factory struct{}

// NewFactory creates a new factory instance
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the appropriate strategy implementation based on the type
func (f *Factory) Create(splitType SplitType) (Strategy, error) {
	switch splitType {
	case SplitTypeEqual:
		return &EqualStrategy{}, nil
	case SplitTypePercentage:
		return &PercentageStrategy{}, nil
	case SplitTypeCustom:
		return &CustomStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown split type: %s", splitType)
	}
}

// CreateFromString creates a strategy from a string type (useful for API requests)
func (f *Factory) CreateFromString(splitType string) (Strategy, error) {
	return f.Create(SplitType(splitType))
}

var (
	ErrNoParticipants        = errors.New("at least one participant is required")
	ErrInvalidAmount         = errors.New("total amount must be positive")
	ErrPercentagesInvalid    = errors.New("percentages must sum to 100")
	ErrCustomAmountsMismatch = errors.New("custom amounts must sum to total amount")
	ErrNegativeAmount        = errors.New("amounts cannot be negative")
	ErrMissingPercentage     = errors.New("percentage value required for all participants")
	ErrMissingAmount         = errors.New("amount required for all participants")
	ErrPercentageOutOfRange  = errors.New("percentage must be between 0 and 100")
)

// validateCommon holds the checks shared by every strategy
func validateCommon(totalAmount money.Amount, participants []ShareInput) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	if totalAmount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
