package notification

import (
	"context"
	"errors"
	"log/slog"
)

// ErrNotificationNotFound is returned when a notification does not exist or
// belongs to another participant.
var ErrNotificationNotFound = errors.New("notification not found")

// Service handles notification business logic
type Service struct {
	repo *Repository
}

// NewService creates a new notification service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Notify records an activity notification for a participant. Failures are
// logged and swallowed: a missed notification must never fail the expense
// or settlement write that triggered it.
func (s *Service) Notify(ctx context.Context, participantID int64, kind Kind, message string) {
	if _, err := s.repo.Create(ctx, participantID, kind, message); err != nil {
		slog.Warn("failed to record notification",
			"participant_id", participantID,
			"kind", kind,
			"error", err,
		)
	}
}

// ListForParticipant retrieves a participant's notifications with pagination
func (s *Service) ListForParticipant(ctx context.Context, participantID int64, page, perPage int) ([]*Notification, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByParticipant(ctx, participantID, perPage, offset)
}

// MarkRead flags one of the participant's notifications as read
func (s *Service) MarkRead(ctx context.Context, id, participantID int64) (*Notification, error) {
	n, err := s.repo.MarkRead(ctx, id, participantID)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, ErrNotificationNotFound
	}
	return n, nil
}
