package balance

import (
	"fmt"
	"sort"

	"github.com/adhamel/tripsplit/pkg/money"
)

// Simplify collapses net positions into the smallest set of payment
// instructions that zeroes every participant's balance.
//
// Greedy multi-way netting: debtors sorted most-negative first, creditors
// most-positive first, then a two-pointer sweep matching the current debtor
// against the current creditor. Sorting is stable, so participants with
// equal balances keep their input order and the output is reproducible.
// At most debtors+creditors-1 instructions are emitted.
//
// Simplify panics if the positions do not sum to zero. That can only happen
// through a bug upstream of this package — it is not a recoverable input
// error, and producing payment instructions from inconsistent balances
// would be worse than crashing.
func Simplify(positions []NetPosition, currency string) []Edge {
	var sum money.Amount
	var debtors, creditors []NetPosition
	for _, p := range positions {
		sum += p.Amount
		switch {
		case p.Amount < 0:
			debtors = append(debtors, p)
		case p.Amount > 0:
			creditors = append(creditors, p)
		}
	}
	if sum != 0 {
		panic(fmt.Sprintf("balance: net positions sum to %s, want zero", sum))
	}

	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].Amount < debtors[j].Amount
	})
	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].Amount > creditors[j].Amount
	})

	var instructions []Edge
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := -debtors[i].Amount
		if creditors[j].Amount < amount {
			amount = creditors[j].Amount
		}

		instructions = append(instructions, Edge{
			FromID:   debtors[i].ParticipantID,
			ToID:     creditors[j].ParticipantID,
			Amount:   amount,
			Currency: currency,
		})

		debtors[i].Amount += amount
		creditors[j].Amount -= amount
		if debtors[i].Amount == 0 {
			i++
		}
		if creditors[j].Amount == 0 {
			j++
		}
	}

	return instructions
}
