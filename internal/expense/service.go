package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/adhamel/tripsplit/internal/engine/split"
	"github.com/adhamel/tripsplit/internal/notification"
	"github.com/adhamel/tripsplit/internal/trip"
	"github.com/adhamel/tripsplit/pkg/money"
)

// Common errors
var (
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrTripNotFound         = errors.New("trip not found")
	ErrPayerNotMember       = errors.New("payer is not a member of this trip")
	ErrParticipantNotMember = errors.New("all split participants must be trip members")
	ErrNotPayer             = errors.New("only the payer can delete an expense")
	ErrDuplicateParticipant = errors.New("a participant appears more than once in the split")
)

// Service handles expense business logic
type Service struct {
	repo         *Repository
	tripRepo     *trip.Repository
	splitFactory *split.Factory
	notifier     *notification.Service
}

// NewService creates a new expense service with dependencies injected
func NewService(repo *Repository, tripRepo *trip.Repository, splitFactory *split.Factory, notifier *notification.Service) *Service {
	return &Service{
		repo:         repo,
		tripRepo:     tripRepo,
		splitFactory: splitFactory,
		notifier:     notifier,
	}
}

// CreateExpense creates a new expense and calculates shares using the
// requested split strategy. The engine does all the arithmetic; this layer
// only validates trip membership and persists the result.
func (s *Service) CreateExpense(ctx context.Context, payerID int64, req *CreateExpenseRequest) (*ExpenseWithShares, error) {
	t, err := s.tripRepo.GetByID(ctx, req.TripID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTripNotFound
	}

	members, err := s.tripRepo.GetMembers(ctx, req.TripID)
	if err != nil {
		return nil, err
	}
	memberSet := make(map[int64]bool, len(members))
	for _, m := range members {
		memberSet[m.ParticipantID] = true
	}
	if !memberSet[payerID] {
		return nil, ErrPayerNotMember
	}
	seen := make(map[int64]bool, len(req.Participants))
	for _, p := range req.Participants {
		if !memberSet[p.ParticipantID] {
			return nil, ErrParticipantNotMember
		}
		if seen[p.ParticipantID] {
			return nil, ErrDuplicateParticipant
		}
		seen[p.ParticipantID] = true
	}

	strategy, err := s.splitFactory.CreateFromString(req.SplitType)
	if err != nil {
		return nil, err
	}

	inputs := make([]split.ShareInput, len(req.Participants))
	for i, p := range req.Participants {
		inputs[i] = p.ToShareInput()
	}

	calculated, err := strategy.Calculate(money.FromFloat(req.Amount), inputs)
	if err != nil {
		return nil, err
	}

	e, err := s.repo.CreateExpense(ctx, payerID, req)
	if err != nil {
		return nil, err
	}

	shares := make([]*ExpenseShare, len(calculated))
	for i, c := range calculated {
		share, err := s.repo.CreateShare(ctx, e.ID, c.ParticipantID, c.Amount.Float64(), c.Percentage)
		if err != nil {
			// TODO: Should rollback expense creation in a transaction
			return nil, err
		}
		shares[i] = share

		if c.ParticipantID != payerID {
			s.notifier.Notify(ctx, c.ParticipantID, notification.KindExpenseShare,
				fmt.Sprintf("Your share of %q is %s %s", req.Description, c.Amount, t.CurrencyCode))
		}
	}

	slog.Info("expense created",
		"expense_id", e.ID,
		"trip_id", e.TripID,
		"payer_id", payerID,
		"split_type", req.SplitType,
		"shares", len(shares),
	)

	return &ExpenseWithShares{Expense: e, Shares: shares}, nil
}

// GetExpenseByID retrieves an expense with its shares
func (s *Service) GetExpenseByID(ctx context.Context, id int64) (*ExpenseWithShares, error) {
	e, err := s.repo.GetExpenseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrExpenseNotFound
	}

	shares, err := s.repo.GetSharesByExpenseID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ExpenseWithShares{Expense: e, Shares: shares}, nil
}

// ListByTrip retrieves expenses for a trip with pagination
func (s *Service) ListByTrip(ctx context.Context, tripID int64, page, perPage int) ([]*Expense, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByTripID(ctx, tripID, perPage, offset)
}

// DeleteExpense deletes an expense; only the payer may do so
func (s *Service) DeleteExpense(ctx context.Context, id, participantID int64) error {
	e, err := s.repo.GetExpenseByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return ErrExpenseNotFound
	}
	if e.PayerID != participantID {
		return ErrNotPayer
	}

	return s.repo.DeleteExpense(ctx, id)
}

// IsValidationError reports whether err comes from split input validation,
// as opposed to an infrastructure failure.
func IsValidationError(err error) bool {
	for _, target := range []error{
		split.ErrNoParticipants,
		split.ErrInvalidAmount,
		split.ErrPercentagesInvalid,
		split.ErrCustomAmountsMismatch,
		split.ErrNegativeAmount,
		split.ErrMissingPercentage,
		split.ErrMissingAmount,
		split.ErrPercentageOutOfRange,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
