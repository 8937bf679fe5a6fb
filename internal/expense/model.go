package expense

import (
	"time"

	"github.com/adhamel/tripsplit/internal/engine/split"
)

// Expense represents a shared expense within a trip
type Expense struct {
	ID          int64     `json:"id"`
	TripID      int64     `json:"trip_id"`
	PayerID     int64     `json:"payer_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	SplitType   string    `json:"split_type"` // EQUAL, PERCENTAGE, CUSTOM
	CreatedAt   time.Time `json:"created_at"`

	// Populated via JOIN
	PayerUsername string `json:"payer_username,omitempty"`
}

// ExpenseShare represents one participant's portion of an expense.
// Shares cover every participant, payer included; the payer's own share is
// netted against what they paid when balances are derived.
type ExpenseShare struct {
	ID            int64    `json:"id"`
	ExpenseID     int64    `json:"expense_id"`
	ParticipantID int64    `json:"participant_id"`
	Amount        float64  `json:"amount"`
	Percentage    *float64 `json:"percentage,omitempty"`

	// Populated via JOIN
	Username string `json:"username,omitempty"`
}

// ExpenseWithShares combines an expense with its calculated shares
type ExpenseWithShares struct {
	Expense *Expense
	Shares  []*ExpenseShare
}

// ShareParticipant is used when creating an expense with shares
type ShareParticipant struct {
	ParticipantID int64    `json:"participant_id"`
	Percentage    *float64 `json:"percentage,omitempty"` // For PERCENTAGE split
	Amount        *float64 `json:"amount,omitempty"`     // For CUSTOM split
}

// ToShareInput converts to the split package's input type
func (p *ShareParticipant) ToShareInput() split.ShareInput {
	return split.ShareInput{
		ParticipantID: p.ParticipantID,
		Percentage:    p.Percentage,
		Amount:        p.Amount,
	}
}
