package split

import (
	"errors"
	"testing"

	"github.com/adhamel/tripsplit/pkg/money"
)

func fptr(f float64) *float64 { return &f }

func sumShares(shares []Share) money.Amount {
	var sum money.Amount
	for _, s := range shares {
		sum += s.Amount
	}
	return sum
}

func TestEqualSplit(t *testing.T) {
	tests := []struct {
		name         string
		total        money.Amount
		participants []ShareInput
		wantErr      error
		wantAmounts  []money.Amount
	}{
		{
			name:  "100 among three gets extra cent to first",
			total: 10000,
			participants: []ShareInput{
				{ParticipantID: 1}, {ParticipantID: 2}, {ParticipantID: 3},
			},
			wantAmounts: []money.Amount{3334, 3333, 3333},
		},
		{
			name:  "two remainder cents go to first two",
			total: 1001, // 10.01 / 3
			participants: []ShareInput{
				{ParticipantID: 1}, {ParticipantID: 2}, {ParticipantID: 3},
			},
			wantAmounts: []money.Amount{334, 334, 333},
		},
		{
			name:         "single participant takes it all",
			total:        5000,
			participants: []ShareInput{{ParticipantID: 7}},
			wantAmounts:  []money.Amount{5000},
		},
		{
			name:         "no participants",
			total:        1000,
			participants: nil,
			wantErr:      ErrNoParticipants,
		},
		{
			name:         "zero total",
			total:        0,
			participants: []ShareInput{{ParticipantID: 1}},
			wantErr:      ErrInvalidAmount,
		},
		{
			name:         "negative total",
			total:        -100,
			participants: []ShareInput{{ParticipantID: 1}},
			wantErr:      ErrInvalidAmount,
		},
	}

	strategy := &EqualStrategy{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := strategy.Calculate(tt.total, tt.participants)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Calculate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Calculate() returned error: %v", err)
			}
			for i, want := range tt.wantAmounts {
				if shares[i].Amount != want {
					t.Errorf("share[%d] = %s, want %s", i, shares[i].Amount, want)
				}
			}
			if got := sumShares(shares); got != tt.total {
				t.Errorf("shares sum to %s, want %s", got, tt.total)
			}
		})
	}
}

func TestPercentageSplit(t *testing.T) {
	tests := []struct {
		name         string
		total        money.Amount
		participants []ShareInput
		wantErr      error
	}{
		{
			name:  "50 split 33.33/33.33/33.34 sums exactly",
			total: 5000,
			participants: []ShareInput{
				{ParticipantID: 1, Percentage: fptr(33.33)},
				{ParticipantID: 2, Percentage: fptr(33.33)},
				{ParticipantID: 3, Percentage: fptr(33.34)},
			},
		},
		{
			name:  "uneven percentages",
			total: 9999,
			participants: []ShareInput{
				{ParticipantID: 1, Percentage: fptr(70)},
				{ParticipantID: 2, Percentage: fptr(30)},
			},
		},
		{
			name:  "percentages not summing to 100",
			total: 5000,
			participants: []ShareInput{
				{ParticipantID: 1, Percentage: fptr(50)},
				{ParticipantID: 2, Percentage: fptr(40)},
			},
			wantErr: ErrPercentagesInvalid,
		},
		{
			name:  "missing percentage",
			total: 5000,
			participants: []ShareInput{
				{ParticipantID: 1, Percentage: fptr(50)},
				{ParticipantID: 2},
			},
			wantErr: ErrMissingPercentage,
		},
		{
			name:  "percentage out of range",
			total: 5000,
			participants: []ShareInput{
				{ParticipantID: 1, Percentage: fptr(150)},
				{ParticipantID: 2, Percentage: fptr(-50)},
			},
			wantErr: ErrPercentageOutOfRange,
		},
	}

	strategy := &PercentageStrategy{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := strategy.Calculate(tt.total, tt.participants)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Calculate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Calculate() returned error: %v", err)
			}
			if got := sumShares(shares); got != tt.total {
				t.Errorf("shares sum to %s, want %s", got, tt.total)
			}
			for i, s := range shares {
				if s.Amount < 0 {
					t.Errorf("share[%d] = %s, negative shares must never be emitted", i, s.Amount)
				}
			}
		})
	}
}

func TestCustomSplit(t *testing.T) {
	tests := []struct {
		name         string
		total        money.Amount
		participants []ShareInput
		wantErr      error
		wantAmounts  []money.Amount
	}{
		{
			name:  "amounts matching total accepted unchanged",
			total: 1000,
			participants: []ShareInput{
				{ParticipantID: 1, Amount: fptr(4.00)},
				{ParticipantID: 2, Amount: fptr(6.00)},
			},
			wantAmounts: []money.Amount{400, 600},
		},
		{
			name:  "amounts short of total rejected",
			total: 1000,
			participants: []ShareInput{
				{ParticipantID: 1, Amount: fptr(4.00)},
				{ParticipantID: 2, Amount: fptr(5.00)},
			},
			wantErr: ErrCustomAmountsMismatch,
		},
		{
			name:  "negative amount rejected",
			total: 1000,
			participants: []ShareInput{
				{ParticipantID: 1, Amount: fptr(-2.00)},
				{ParticipantID: 2, Amount: fptr(12.00)},
			},
			wantErr: ErrNegativeAmount,
		},
		{
			name:  "missing amount rejected",
			total: 1000,
			participants: []ShareInput{
				{ParticipantID: 1, Amount: fptr(10.00)},
				{ParticipantID: 2},
			},
			wantErr: ErrMissingAmount,
		},
	}

	strategy := &CustomStrategy{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := strategy.Calculate(tt.total, tt.participants)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Calculate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Calculate() returned error: %v", err)
			}
			for i, want := range tt.wantAmounts {
				if shares[i].Amount != want {
					t.Errorf("share[%d] = %s, want %s", i, shares[i].Amount, want)
				}
			}
		})
	}
}

// TestSumInvariant verifies that every strategy produces shares summing
// exactly to the total for group sizes 1 through 50.
func TestSumInvariant(t *testing.T) {
	totals := []money.Amount{10000, 9999, 101, 1} // 100.00, 99.99, 1.01, 0.01
	factory := NewFactory()

	for n := 1; n <= 50; n++ {
		equalInputs := make([]ShareInput, n)
		pctInputs := make([]ShareInput, n)
		pct := 100.0 / float64(n)
		for i := 0; i < n; i++ {
			equalInputs[i] = ShareInput{ParticipantID: int64(i + 1)}
			pctInputs[i] = ShareInput{ParticipantID: int64(i + 1), Percentage: fptr(pct)}
		}

		for _, total := range totals {
			for _, tc := range []struct {
				splitType SplitType
				inputs    []ShareInput
			}{
				{SplitTypeEqual, equalInputs},
				{SplitTypePercentage, pctInputs},
			} {
				strategy, err := factory.Create(tc.splitType)
				if err != nil {
					t.Fatalf("factory.Create(%s): %v", tc.splitType, err)
				}
				shares, err := strategy.Calculate(total, tc.inputs)
				if err != nil {
					t.Fatalf("%s n=%d total=%s: %v", tc.splitType, n, total, err)
				}
				if got := sumShares(shares); got != total {
					t.Errorf("%s n=%d: shares sum to %s, want %s", tc.splitType, n, got, total)
				}
			}
		}
	}
}

func TestFactoryRejectsUnknownType(t *testing.T) {
	if _, err := NewFactory().CreateFromString("FIBONACCI"); err == nil {
		t.Error("expected error for unknown split type")
	}
}
