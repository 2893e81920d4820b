package segment

import "testing"

func TestRoundTime(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.23456, 1.235},
		{1.2344, 1.234},
		{2.0, 2.0},
		{0.0005, 0.001},
	}

	for _, tt := range tests {
		if got := RoundTime(tt.in); got != tt.want {
			t.Errorf("RoundTime(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestContains(t *testing.T) {
	s := New(1.0, 2.0, "x")

	if !s.Contains(1.0) || !s.Contains(2.0) || !s.Contains(1.5) {
		t.Error("expected boundaries and interior to be contained")
	}
	if s.Contains(0.999) || s.Contains(2.001) {
		t.Error("expected points outside the range to be excluded")
	}
}

func TestSortByTime(t *testing.T) {
	a := New(2.0, 3.0, "a")
	b := New(1.0, 5.0, "b")
	c := New(1.0, 2.0, "c")

	segments := []*Segment{a, b, c}
	SortByTime(segments)

	want := []*Segment{c, b, a}
	for i, s := range want {
		if segments[i] != s {
			t.Fatalf("position %d: got %q, want %q", i, segments[i].Text, s.Text)
		}
	}
}

func TestDurationFloor(t *testing.T) {
	s := New(1.0, 1.0, "x")
	if got := s.Duration(); got != MinDuration {
		t.Errorf("Duration() = %v, want floor %v", got, MinDuration)
	}
}
