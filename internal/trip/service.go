package trip

import (
	"context"
	"errors"
	"fmt"

	"github.com/adhamel/tripsplit/internal/notification"
)

// Common errors
var (
	ErrTripNotFound        = errors.New("trip not found")
	ErrMemberNotFound      = errors.New("member not found")
	ErrMemberAlreadyExists = errors.New("participant is already a member of this trip")
	ErrNotMember           = errors.New("participant is not a member of this trip")
)

// Service handles trip business logic
type Service struct {
	repo     *Repository
	notifier *notification.Service
}

// NewService creates a new trip service
func NewService(repo *Repository, notifier *notification.Service) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Create creates a new trip and adds the creator as its first member
func (s *Service) Create(ctx context.Context, creatorID int64, req *CreateTripRequest) (*Trip, error) {
	t, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.AddMember(ctx, t.ID, creatorID); err != nil {
		// TODO: Should rollback trip creation in a transaction
		return nil, err
	}

	return t, nil
}

// GetByID retrieves a trip by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Trip, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTripNotFound
	}
	return t, nil
}

// GetByIDWithMembers retrieves a trip with all its members
func (s *Service) GetByIDWithMembers(ctx context.Context, id int64) (*Trip, []*TripMember, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	members, err := s.repo.GetMembers(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return t, members, nil
}

// AddMember adds a participant to a trip
func (s *Service) AddMember(ctx context.Context, tripID int64, req *AddMemberRequest) (*TripMember, error) {
	t, err := s.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	isMember, err := s.repo.IsMember(ctx, tripID, req.ParticipantID)
	if err != nil {
		return nil, err
	}
	if isMember {
		return nil, ErrMemberAlreadyExists
	}

	member, err := s.repo.AddMember(ctx, tripID, req.ParticipantID)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, req.ParticipantID, notification.KindAddedToTrip,
		fmt.Sprintf("You were added to trip %q", t.Name))

	return member, nil
}

// RemoveMember removes a participant from a trip
func (s *Service) RemoveMember(ctx context.Context, tripID, participantID int64) error {
	isMember, err := s.repo.IsMember(ctx, tripID, participantID)
	if err != nil {
		return err
	}
	if !isMember {
		return ErrMemberNotFound
	}

	return s.repo.RemoveMember(ctx, tripID, participantID)
}

// ListForParticipant retrieves all trips a participant belongs to
func (s *Service) ListForParticipant(ctx context.Context, participantID int64) ([]*Trip, error) {
	return s.repo.ListForParticipant(ctx, participantID)
}
