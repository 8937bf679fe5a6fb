package money

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Amount
		wantErr bool
	}{
		{name: "two decimals", input: "12.34", want: 1234},
		{name: "no decimals", input: "7", want: 700},
		{name: "one decimal", input: "0.5", want: 50},
		{name: "negative", input: "-3.07", want: -307},
		{name: "zero", input: "0", want: 0},
		{name: "three decimals rejected", input: "1.005", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromFloat(t *testing.T) {
	tests := []struct {
		input float64
		want  Amount
	}{
		{100.00, 10000},
		{33.33, 3333},
		{0.125, 13},   // half rounds away from zero
		{-0.125, -13}, // symmetric for negatives
		{0, 0},
	}

	for _, tt := range tests {
		if got := FromFloat(tt.input); got != tt.want {
			t.Errorf("FromFloat(%v) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		input Amount
		want  string
	}{
		{1234, "12.34"},
		{-307, "-3.07"},
		{-7, "-0.07"},
		{0, "0.00"},
		{5, "0.05"},
	}

	for _, tt := range tests {
		if got := tt.input.String(); got != tt.want {
			t.Errorf("Amount(%d).String() = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, a := range []Amount{0, 1, 99, 100, 12345, -12345} {
		parsed, err := Parse(a.String())
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", a.String(), err)
		}
		if parsed != a {
			t.Errorf("round trip of %d via %q gave %d", a, a.String(), parsed)
		}
	}
}
