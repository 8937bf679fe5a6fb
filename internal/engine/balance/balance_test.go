package balance

import (
	"errors"
	"testing"

	"github.com/adhamel/tripsplit/pkg/money"
)

// equalThreeWay builds an expense of `total` paid by payerID and split
// evenly among the given participants (total must divide cleanly).
func equalThreeWay(payerID int64, total money.Amount, participants ...int64) Expense {
	per := total / money.Amount(len(participants))
	shares := make([]Share, len(participants))
	for i, id := range participants {
		shares[i] = Share{ParticipantID: id, Amount: per}
	}
	return Expense{PayerID: payerID, Total: total, Shares: shares}
}

func TestNetPositions(t *testing.T) {
	const (
		alice int64 = 1
		bob   int64 = 2
		carol int64 = 3
	)

	tests := []struct {
		name         string
		expenses     []Expense
		settlements  []Settlement
		participants []int64
		want         map[int64]money.Amount
		wantErr      error
	}{
		{
			name:         "payer self-share nets out",
			expenses:     []Expense{equalThreeWay(alice, 9000, alice, bob, carol)},
			participants: []int64{alice, bob, carol},
			want:         map[int64]money.Amount{alice: 6000, bob: -3000, carol: -3000},
		},
		{
			name:     "settlement shifts positions",
			expenses: []Expense{equalThreeWay(alice, 9000, alice, bob, carol)},
			settlements: []Settlement{
				{FromID: bob, ToID: alice, Amount: 1000},
			},
			participants: []int64{alice, bob, carol},
			want:         map[int64]money.Amount{alice: 5000, bob: -2000, carol: -3000},
		},
		{
			name:         "no history means all zero",
			participants: []int64{alice, bob},
			want:         map[int64]money.Amount{alice: 0, bob: 0},
		},
		{
			name: "share for unknown participant is a caller bug",
			expenses: []Expense{
				{
					PayerID: alice,
					Total:   1000,
					Shares: []Share{
						{ParticipantID: alice, Amount: 500},
						{ParticipantID: 99, Amount: 500},
					},
				},
			},
			participants: []int64{alice, bob},
			wantErr:      ErrUnbalanced,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			positions, err := NetPositions(tt.expenses, tt.settlements, tt.participants)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NetPositions() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NetPositions() returned error: %v", err)
			}
			if len(positions) != len(tt.participants) {
				t.Fatalf("got %d positions, want %d", len(positions), len(tt.participants))
			}
			var sum money.Amount
			for i, p := range positions {
				if p.ParticipantID != tt.participants[i] {
					t.Errorf("position[%d] is for %d, want input order %d", i, p.ParticipantID, tt.participants[i])
				}
				if want := tt.want[p.ParticipantID]; p.Amount != want {
					t.Errorf("participant %d: net = %s, want %s", p.ParticipantID, p.Amount, want)
				}
				sum += p.Amount
			}
			if sum != 0 {
				t.Errorf("positions sum to %s, conservation requires zero", sum)
			}
		})
	}
}

func TestPairwise(t *testing.T) {
	const (
		alice int64 = 1
		bob   int64 = 2
	)

	t.Run("mutual debts net to a single edge", func(t *testing.T) {
		// A owes B 10, B owes A 4 -> one edge A->B 6.
		expenses := []Expense{
			{PayerID: bob, Total: 1000, Shares: []Share{{ParticipantID: alice, Amount: 1000}}},
			{PayerID: alice, Total: 400, Shares: []Share{{ParticipantID: bob, Amount: 400}}},
		}
		edges := Pairwise(expenses, nil, "USD")
		if len(edges) != 1 {
			t.Fatalf("got %d edges, want 1", len(edges))
		}
		want := Edge{FromID: alice, ToID: bob, Amount: 600, Currency: "USD"}
		if edges[0] != want {
			t.Errorf("edge = %+v, want %+v", edges[0], want)
		}
	})

	t.Run("settlement clears the pair", func(t *testing.T) {
		expenses := []Expense{
			{PayerID: bob, Total: 1000, Shares: []Share{{ParticipantID: alice, Amount: 1000}}},
		}
		settlements := []Settlement{{FromID: alice, ToID: bob, Amount: 1000}}
		if edges := Pairwise(expenses, settlements, "USD"); len(edges) != 0 {
			t.Errorf("got %d edges after full settlement, want 0", len(edges))
		}
	})

	t.Run("self-share produces no edge", func(t *testing.T) {
		expenses := []Expense{
			{PayerID: alice, Total: 500, Shares: []Share{{ParticipantID: alice, Amount: 500}}},
		}
		if edges := Pairwise(expenses, nil, "USD"); len(edges) != 0 {
			t.Errorf("got %d edges for a self-paid expense, want 0", len(edges))
		}
	})
}

func TestSimplify(t *testing.T) {
	const (
		alice int64 = 1
		bob   int64 = 2
		carol int64 = 3
	)

	t.Run("three-way scenario", func(t *testing.T) {
		// A paid 90 split evenly, B already settled 10 back to A.
		positions := []NetPosition{
			{ParticipantID: alice, Amount: 5000},
			{ParticipantID: bob, Amount: -2000},
			{ParticipantID: carol, Amount: -3000},
		}
		instructions := Simplify(positions, "USD")
		want := []Edge{
			{FromID: carol, ToID: alice, Amount: 3000, Currency: "USD"},
			{FromID: bob, ToID: alice, Amount: 2000, Currency: "USD"},
		}
		if len(instructions) != len(want) {
			t.Fatalf("got %d instructions, want %d", len(instructions), len(want))
		}
		for i := range want {
			if instructions[i] != want[i] {
				t.Errorf("instruction[%d] = %+v, want %+v", i, instructions[i], want[i])
			}
		}
	})

	t.Run("settled participants are dropped", func(t *testing.T) {
		positions := []NetPosition{
			{ParticipantID: alice, Amount: 0},
			{ParticipantID: bob, Amount: 700},
			{ParticipantID: carol, Amount: -700},
		}
		instructions := Simplify(positions, "EUR")
		if len(instructions) != 1 {
			t.Fatalf("got %d instructions, want 1", len(instructions))
		}
		if instructions[0].FromID != carol || instructions[0].ToID != bob {
			t.Errorf("instruction = %+v, want carol->bob", instructions[0])
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := Simplify(nil, "USD"); len(got) != 0 {
			t.Errorf("Simplify(nil) = %v, want no instructions", got)
		}
	})

	t.Run("unbalanced positions panic", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for positions that do not sum to zero")
			}
		}()
		Simplify([]NetPosition{{ParticipantID: alice, Amount: 100}}, "USD")
	})
}

// TestSimplifyProperties exercises the zeroing, minimality and determinism
// guarantees on a larger position set.
func TestSimplifyProperties(t *testing.T) {
	positions := []NetPosition{
		{ParticipantID: 1, Amount: 12345},
		{ParticipantID: 2, Amount: -5000},
		{ParticipantID: 3, Amount: -1295},
		{ParticipantID: 4, Amount: 700},
		{ParticipantID: 5, Amount: -700},  // equal magnitude to 4
		{ParticipantID: 6, Amount: -5000}, // equal magnitude to 2
		{ParticipantID: 7, Amount: -1050},
		{ParticipantID: 8, Amount: 0},
	}

	first := Simplify(positions, "USD")
	second := Simplify(positions, "USD")

	// Determinism: identical inputs, identical output, including order.
	if len(first) != len(second) {
		t.Fatalf("runs disagree on length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("runs disagree at %d: %+v vs %+v", i, first[i], second[i])
		}
	}

	// Minimality bound: at most nonzero participants - 1 instructions.
	nonzero := 0
	for _, p := range positions {
		if p.Amount != 0 {
			nonzero++
		}
	}
	if len(first) > nonzero-1 {
		t.Errorf("emitted %d instructions for %d nonzero participants", len(first), nonzero)
	}

	// Zeroing property: applying every instruction drives all positions to zero.
	net := make(map[int64]money.Amount, len(positions))
	for _, p := range positions {
		net[p.ParticipantID] = p.Amount
	}
	for _, e := range first {
		if e.Amount <= 0 {
			t.Fatalf("instruction %+v has non-positive amount", e)
		}
		net[e.FromID] += e.Amount
		net[e.ToID] -= e.Amount
	}
	for id, v := range net {
		if v != 0 {
			t.Errorf("participant %d left with %s after applying instructions", id, v)
		}
	}

	// Original input slice must be untouched.
	if positions[1].Amount != -5000 {
		t.Error("Simplify mutated its input")
	}
}
