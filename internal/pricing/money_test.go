package pricing

import "testing"

func TestRoundCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.01},
		{-1.005, -1.01},
		{2.994, 2.99},
		{2.995, 3.00},
		{0, 0},
		{1.98, 1.98},
	}
	for _, tc := range cases {
		if got := RoundCurrency(tc.in); got != tc.want {
			t.Fatalf("RoundCurrency(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
