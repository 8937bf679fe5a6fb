package trip

import "time"

// Trip represents a group of participants sharing expenses in one currency.
// All balance math for a trip happens in its currency; partitioning
// mixed-currency spending into separate trips is the caller's job.
type Trip struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	CurrencyCode string    `json:"currency_code"`
	CreatedAt    time.Time `json:"created_at"`
}

// TripMember represents a participant's membership in a trip
type TripMember struct {
	ID            int64     `json:"id"`
	TripID        int64     `json:"trip_id"`
	ParticipantID int64     `json:"participant_id"`
	JoinedAt      time.Time `json:"joined_at"`

	// Populated from JOIN
	Username string `json:"username,omitempty"`
}
