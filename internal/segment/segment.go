package segment

import (
	"math"
	"sort"
)

// MinDuration is the shortest caption length that geometry-derived edits
// may produce, in seconds.
const MinDuration = 0.1

// represents a single time-ranged caption. Segments are mutable records:
// callers hold *Segment handles and identity is pointer identity, never
// field equality.
type Segment struct {
	Start float64 // seconds
	End   float64 // seconds
	Text  string
}

func New(start, end float64, text string) *Segment {
	return &Segment{Start: start, End: end, Text: text}
}

// caption length in seconds, floored at MinDuration
func (s *Segment) Duration() float64 {
	return math.Max(MinDuration, s.End-s.Start)
}

// reports whether t falls inside [Start, End]
func (s *Segment) Contains(t float64) bool {
	return s.Start <= t && t <= s.End
}

// RoundTime rounds a time value to millisecond precision.
func RoundTime(t float64) float64 {
	return math.Round(t*1000) / 1000
}

// SortByTime orders segments ascending by (start, end).
func SortByTime(segments []*Segment) {
	sort.SliceStable(segments, func(i, j int) bool {
		if segments[i].Start != segments[j].Start {
			return segments[i].Start < segments[j].Start
		}
		return segments[i].End < segments[j].End
	})
}
