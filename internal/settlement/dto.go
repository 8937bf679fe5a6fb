package settlement

// CreateSettlementRequest represents the request to record a settlement.
// The payer is the authenticated participant.
type CreateSettlementRequest struct {
	TripID          int64   `json:"trip_id" validate:"required"`
	ToParticipantID int64   `json:"to_participant_id" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Note            *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// SettlementResponse represents the response for a settlement
type SettlementResponse struct {
	ID           int64   `json:"id"`
	TripID       int64   `json:"trip_id"`
	FromID       int64   `json:"from_participant_id"`
	FromUsername string  `json:"from_username,omitempty"`
	ToID         int64   `json:"to_participant_id"`
	ToUsername   string  `json:"to_username,omitempty"`
	Amount       float64 `json:"amount"`
	Note         *string `json:"note,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// NetPositionResponse is one participant's overall balance within a trip
type NetPositionResponse struct {
	ParticipantID int64   `json:"participant_id"`
	Username      string  `json:"username,omitempty"`
	Amount        float64 `json:"amount"` // Positive = owed money, negative = owes money
	Message       string  `json:"message"`
}

// DebtResponse is a directed debt between two participants
type DebtResponse struct {
	FromID       int64   `json:"from_participant_id"`
	FromUsername string  `json:"from_username,omitempty"`
	ToID         int64   `json:"to_participant_id"`
	ToUsername   string  `json:"to_username,omitempty"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}

// TripBalancesResponse aggregates a trip's balance views
type TripBalancesResponse struct {
	TripID       int64                  `json:"trip_id"`
	Currency     string                 `json:"currency"`
	NetPositions []*NetPositionResponse `json:"net_positions"`
	Debts        []*DebtResponse        `json:"debts"`
}

// SettleUpResponse lists the minimal payment instructions for a trip
type SettleUpResponse struct {
	TripID       int64           `json:"trip_id"`
	Currency     string          `json:"currency"`
	Instructions []*DebtResponse `json:"instructions"`
}

// ToResponse converts a Settlement model to a SettlementResponse DTO
func (s *Settlement) ToResponse() *SettlementResponse {
	return &SettlementResponse{
		ID:           s.ID,
		TripID:       s.TripID,
		FromID:       s.FromID,
		FromUsername: s.FromUsername,
		ToID:         s.ToID,
		ToUsername:   s.ToUsername,
		Amount:       s.Amount,
		Note:         s.Note,
		CreatedAt:    s.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
