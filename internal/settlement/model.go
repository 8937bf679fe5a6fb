package settlement

import "time"

// Settlement records a real-world payment between two trip members.
// Settlements are append-only: recording one is stating a fact, and balance
// calculations always replay the full history.
type Settlement struct {
	ID        int64     `json:"id"`
	TripID    int64     `json:"trip_id"`
	FromID    int64     `json:"from_participant_id"` // Who paid (debtor settling up)
	ToID      int64     `json:"to_participant_id"`   // Who received (creditor being paid)
	Amount    float64   `json:"amount"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Populated via JOIN
	FromUsername string `json:"from_username,omitempty"`
	ToUsername   string `json:"to_username,omitempty"`
}
