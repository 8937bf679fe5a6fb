package notification

import "time"

// Kind classifies what a notification is about
type Kind string

const (
	KindExpenseShare       Kind = "EXPENSE_SHARE"
	KindSettlementReceived Kind = "SETTLEMENT_RECEIVED"
	KindAddedToTrip        Kind = "ADDED_TO_TRIP"
)

// Notification is an activity record for one participant
type Notification struct {
	ID            int64     `json:"id"`
	ParticipantID int64     `json:"participant_id"`
	Kind          Kind      `json:"kind"`
	Message       string    `json:"message"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"created_at"`
}
