// Package balance derives who owes whom from a history of expenses and
// settlements. It is pure: inputs are value types owned by the caller,
// outputs are deterministic for identical inputs, and all arithmetic is in
// integer minor units.
package balance

import (
	"errors"
	"sort"

	"github.com/adhamel/tripsplit/pkg/money"
)

// Share is one participant's portion of one expense.
type Share struct {
	ParticipantID int64
	Amount        money.Amount
}

// Expense is the minimal expense view needed for balance calculations.
// Shares must cover every participant of the expense, payer included, and
// sum to Total.
type Expense struct {
	PayerID int64
	Total   money.Amount
	Shares  []Share
}

// Settlement records that FromID has already paid ToID, reducing FromID's
// outstanding debt.
type Settlement struct {
	FromID int64
	ToID   int64
	Amount money.Amount
}

// NetPosition is a participant's overall signed balance.
// Positive = owed money, negative = owes money.
type NetPosition struct {
	ParticipantID int64
	Amount        money.Amount
}

// Edge is a directed debt: FromID owes ToID the amount.
type Edge struct {
	FromID   int64
	ToID     int64
	Amount   money.Amount
	Currency string
}

// ErrUnbalanced indicates the inputs do not conserve to zero, which means
// the caller handed over inconsistent data, e.g. a share referencing a
// participant that is not in the group.
var ErrUnbalanced = errors.New("net positions do not sum to zero")

// NetPositions computes one signed balance per participant:
// total paid as payer, minus total owed as share recipient, plus the net
// settlement effect. Results follow the input order of participants.
//
// Only declared participants accumulate. A share or settlement referencing
// an unknown ID therefore breaks conservation and surfaces as ErrUnbalanced
// instead of silently skewing everyone's balance.
func NetPositions(expenses []Expense, settlements []Settlement, participants []int64) ([]NetPosition, error) {
	net := make(map[int64]money.Amount, len(participants))
	for _, id := range participants {
		net[id] = 0
	}
	credit := func(id int64, amount money.Amount) {
		if _, ok := net[id]; ok {
			net[id] += amount
		}
	}

	for _, e := range expenses {
		credit(e.PayerID, e.Total)
		for _, s := range e.Shares {
			credit(s.ParticipantID, -s.Amount)
		}
	}
	for _, s := range settlements {
		credit(s.FromID, s.Amount)
		credit(s.ToID, -s.Amount)
	}

	var sum money.Amount
	for _, v := range net {
		sum += v
	}
	if sum != 0 {
		return nil, ErrUnbalanced
	}

	positions := make([]NetPosition, len(participants))
	for i, id := range participants {
		positions[i] = NetPosition{ParticipantID: id, Amount: net[id]}
	}
	return positions, nil
}

type pairKey struct {
	lo, hi int64
}

// Pairwise nets the raw debt flow between every pair of participants into
// at most one directed edge per pair. Self-debt (a payer's own share) never
// produces an edge, and fully settled pairs produce none.
func Pairwise(expenses []Expense, settlements []Settlement, currency string) []Edge {
	// flow[k] > 0 means k.lo owes k.hi
	flow := make(map[pairKey]money.Amount)
	owe := func(from, to int64, amount money.Amount) {
		if from == to {
			return
		}
		if from < to {
			flow[pairKey{from, to}] += amount
		} else {
			flow[pairKey{to, from}] -= amount
		}
	}

	for _, e := range expenses {
		for _, s := range e.Shares {
			owe(s.ParticipantID, e.PayerID, s.Amount)
		}
	}
	for _, s := range settlements {
		// A payment is the opposite of incurring debt.
		owe(s.FromID, s.ToID, -s.Amount)
	}

	edges := make([]Edge, 0, len(flow))
	for k, amount := range flow {
		switch {
		case amount > 0:
			edges = append(edges, Edge{FromID: k.lo, ToID: k.hi, Amount: amount, Currency: currency})
		case amount < 0:
			edges = append(edges, Edge{FromID: k.hi, ToID: k.lo, Amount: -amount, Currency: currency})
		}
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].FromID != edges[j].FromID {
			return edges[i].FromID < edges[j].FromID
		}
		return edges[i].ToID < edges[j].ToID
	})
	return edges
}
