package settlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/adhamel/tripsplit/internal/engine/balance"
	"github.com/adhamel/tripsplit/internal/expense"
	"github.com/adhamel/tripsplit/internal/notification"
	"github.com/adhamel/tripsplit/internal/trip"
	"github.com/adhamel/tripsplit/pkg/money"
)

// Common errors
var (
	ErrTripNotFound     = errors.New("trip not found")
	ErrNotMember        = errors.New("both participants must be trip members")
	ErrCannotSettleSelf = errors.New("cannot record a settlement with yourself")
	ErrInvalidAmount    = errors.New("settlement amount must be positive")

	// ErrUnbalanced surfaces the engine's conservation check: the trip's
	// stored expenses and shares are inconsistent.
	ErrUnbalanced = balance.ErrUnbalanced
)

// Service handles settlement business logic and exposes the trip-level
// balance views computed by the engine.
type Service struct {
	repo        *Repository
	expenseRepo *expense.Repository
	tripRepo    *trip.Repository
	notifier    *notification.Service
}

// NewService creates a new settlement service
func NewService(repo *Repository, expenseRepo *expense.Repository, tripRepo *trip.Repository, notifier *notification.Service) *Service {
	return &Service{
		repo:        repo,
		expenseRepo: expenseRepo,
		tripRepo:    tripRepo,
		notifier:    notifier,
	}
}

// Create records that the acting participant paid another trip member
func (s *Service) Create(ctx context.Context, fromID int64, req *CreateSettlementRequest) (*Settlement, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if fromID == req.ToParticipantID {
		return nil, ErrCannotSettleSelf
	}

	t, err := s.tripRepo.GetByID(ctx, req.TripID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTripNotFound
	}

	for _, id := range []int64{fromID, req.ToParticipantID} {
		isMember, err := s.tripRepo.IsMember(ctx, req.TripID, id)
		if err != nil {
			return nil, err
		}
		if !isMember {
			return nil, ErrNotMember
		}
	}

	// Normalize to a clean two-decimal amount before persisting.
	amount := money.FromFloat(req.Amount)
	settled, err := s.repo.Create(ctx, req.TripID, fromID, req.ToParticipantID, amount.Float64(), req.Note)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, req.ToParticipantID, notification.KindSettlementReceived,
		fmt.Sprintf("You received a payment of %s %s", amount, t.CurrencyCode))

	slog.Info("settlement recorded",
		"settlement_id", settled.ID,
		"trip_id", settled.TripID,
		"from", settled.FromID,
		"to", settled.ToID,
	)

	return settled, nil
}

// ListByTrip retrieves settlements for a trip with pagination
func (s *Service) ListByTrip(ctx context.Context, tripID int64, page, perPage int) ([]*Settlement, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByTrip(ctx, tripID, perPage, offset)
}

// tripHistory loads everything the engine needs for one trip: the member
// list, every expense with its shares, and every settlement, all converted
// to minor units at this boundary.
func (s *Service) tripHistory(ctx context.Context, tripID int64) (*trip.Trip, []*trip.TripMember, []balance.Expense, []balance.Settlement, error) {
	t, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if t == nil {
		return nil, nil, nil, nil, ErrTripNotFound
	}

	members, err := s.tripRepo.GetMembers(ctx, tripID)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	expenseRows, err := s.expenseRepo.ListWithSharesByTrip(ctx, tripID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	expenses := make([]balance.Expense, len(expenseRows))
	for i, row := range expenseRows {
		shares := make([]balance.Share, len(row.Shares))
		for j, sh := range row.Shares {
			shares[j] = balance.Share{
				ParticipantID: sh.ParticipantID,
				Amount:        money.FromFloat(sh.Amount),
			}
		}
		expenses[i] = balance.Expense{
			PayerID: row.Expense.PayerID,
			Total:   money.FromFloat(row.Expense.Amount),
			Shares:  shares,
		}
	}

	settlementRows, err := s.repo.ListAllByTrip(ctx, tripID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	settlements := make([]balance.Settlement, len(settlementRows))
	for i, row := range settlementRows {
		settlements[i] = balance.Settlement{
			FromID: row.FromID,
			ToID:   row.ToID,
			Amount: money.FromFloat(row.Amount),
		}
	}

	return t, members, expenses, settlements, nil
}

// TripBalances computes each member's net position and the netted pairwise
// debts for a trip.
func (s *Service) TripBalances(ctx context.Context, tripID int64) (*TripBalancesResponse, error) {
	t, members, expenses, settlements, err := s.tripHistory(ctx, tripID)
	if err != nil {
		return nil, err
	}

	participantIDs := make([]int64, len(members))
	names := make(map[int64]string, len(members))
	for i, m := range members {
		participantIDs[i] = m.ParticipantID
		names[m.ParticipantID] = m.Username
	}

	positions, err := balance.NetPositions(expenses, settlements, participantIDs)
	if err != nil {
		return nil, err
	}
	edges := balance.Pairwise(expenses, settlements, t.CurrencyCode)

	resp := &TripBalancesResponse{
		TripID:       t.ID,
		Currency:     t.CurrencyCode,
		NetPositions: make([]*NetPositionResponse, len(positions)),
		Debts:        make([]*DebtResponse, len(edges)),
	}
	for i, p := range positions {
		var message string
		switch {
		case p.Amount > 0:
			message = fmt.Sprintf("%s is owed %s %s", names[p.ParticipantID], p.Amount, t.CurrencyCode)
		case p.Amount < 0:
			message = fmt.Sprintf("%s owes %s %s", names[p.ParticipantID], p.Amount.Abs(), t.CurrencyCode)
		default:
			message = fmt.Sprintf("%s is settled up", names[p.ParticipantID])
		}
		resp.NetPositions[i] = &NetPositionResponse{
			ParticipantID: p.ParticipantID,
			Username:      names[p.ParticipantID],
			Amount:        p.Amount.Float64(),
			Message:       message,
		}
	}
	for i, e := range edges {
		resp.Debts[i] = debtResponse(e, names)
	}

	return resp, nil
}

// SettleUp computes the minimal payment instructions that would zero every
// member's balance in the trip.
func (s *Service) SettleUp(ctx context.Context, tripID int64) (*SettleUpResponse, error) {
	t, members, expenses, settlements, err := s.tripHistory(ctx, tripID)
	if err != nil {
		return nil, err
	}

	participantIDs := make([]int64, len(members))
	names := make(map[int64]string, len(members))
	for i, m := range members {
		participantIDs[i] = m.ParticipantID
		names[m.ParticipantID] = m.Username
	}

	positions, err := balance.NetPositions(expenses, settlements, participantIDs)
	if err != nil {
		return nil, err
	}
	instructions := balance.Simplify(positions, t.CurrencyCode)

	resp := &SettleUpResponse{
		TripID:       t.ID,
		Currency:     t.CurrencyCode,
		Instructions: make([]*DebtResponse, len(instructions)),
	}
	for i, e := range instructions {
		resp.Instructions[i] = debtResponse(e, names)
	}

	return resp, nil
}

func debtResponse(e balance.Edge, names map[int64]string) *DebtResponse {
	return &DebtResponse{
		FromID:       e.FromID,
		FromUsername: names[e.FromID],
		ToID:         e.ToID,
		ToUsername:   names[e.ToID],
		Amount:       e.Amount.Float64(),
		Currency:     e.Currency,
	}
}
