package trip

// CreateTripRequest represents the request body for creating a trip
type CreateTripRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	Description  *string `json:"description,omitempty"`
	CurrencyCode string  `json:"currency_code" validate:"required,len=3"`
}

// AddMemberRequest represents the request body for adding a trip member
type AddMemberRequest struct {
	ParticipantID int64 `json:"participant_id" validate:"required"`
}

// TripResponse represents the response for a single trip
type TripResponse struct {
	ID           int64                 `json:"id"`
	Name         string                `json:"name"`
	Description  *string               `json:"description,omitempty"`
	CurrencyCode string                `json:"currency_code"`
	CreatedAt    string                `json:"created_at"`
	Members      []*TripMemberResponse `json:"members,omitempty"`
}

// TripMemberResponse represents a trip member in responses
type TripMemberResponse struct {
	ParticipantID int64  `json:"participant_id"`
	Username      string `json:"username,omitempty"`
	JoinedAt      string `json:"joined_at"`
}

// ToResponse converts a Trip model to a TripResponse DTO
func (t *Trip) ToResponse() *TripResponse {
	return &TripResponse{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		CurrencyCode: t.CurrencyCode,
		CreatedAt:    t.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponse converts a TripMember model to a TripMemberResponse DTO
func (m *TripMember) ToResponse() *TripMemberResponse {
	return &TripMemberResponse{
		ParticipantID: m.ParticipantID,
		Username:      m.Username,
		JoinedAt:      m.JoinedAt.Format("2006-01-02T15:04:05Z"),
	}
}
