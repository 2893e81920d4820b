package cli

import "testing"

func TestProgressLine(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{0, "\rBurning in captions:   0%"},
		{42.4, "\rBurning in captions:  42%"},
		{100, "\rBurning in captions: 100%"},
	}

	for _, tt := range tests {
		if got := progressLine(tt.percent); got != tt.want {
			t.Errorf("progressLine(%v) = %q, want %q", tt.percent, got, tt.want)
		}
	}
}
