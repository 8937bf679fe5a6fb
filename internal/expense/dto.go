package expense

// CreateExpenseRequest represents the request to create an expense
type CreateExpenseRequest struct {
	TripID       int64               `json:"trip_id" validate:"required"`
	Description  string              `json:"description" validate:"required,min=1,max=255"`
	Amount       float64             `json:"amount" validate:"required,gt=0"`
	SplitType    string              `json:"split_type" validate:"required,oneof=EQUAL PERCENTAGE CUSTOM"`
	Participants []*ShareParticipant `json:"participants" validate:"required,min=1"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID            int64            `json:"id"`
	TripID        int64            `json:"trip_id"`
	PayerID       int64            `json:"payer_id"`
	PayerUsername string           `json:"payer_username,omitempty"`
	Description   string           `json:"description"`
	Amount        float64          `json:"amount"`
	SplitType     string           `json:"split_type"`
	CreatedAt     string           `json:"created_at"`
	Shares        []*ShareResponse `json:"shares,omitempty"`
}

// ShareResponse represents the response for an expense share
type ShareResponse struct {
	ID            int64    `json:"id"`
	ExpenseID     int64    `json:"expense_id"`
	ParticipantID int64    `json:"participant_id"`
	Username      string   `json:"username,omitempty"`
	Amount        float64  `json:"amount"`
	Percentage    *float64 `json:"percentage,omitempty"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ID:            e.ID,
		TripID:        e.TripID,
		PayerID:       e.PayerID,
		PayerUsername: e.PayerUsername,
		Description:   e.Description,
		Amount:        e.Amount,
		SplitType:     e.SplitType,
		CreatedAt:     e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponse converts an ExpenseShare model to a ShareResponse DTO
func (s *ExpenseShare) ToResponse() *ShareResponse {
	return &ShareResponse{
		ID:            s.ID,
		ExpenseID:     s.ExpenseID,
		ParticipantID: s.ParticipantID,
		Username:      s.Username,
		Amount:        s.Amount,
		Percentage:    s.Percentage,
	}
}
