package lyrics

import (
	"errors"
	"testing"

	"github.com/samkrish/capsync/internal/segment"
)

func TestParseLines(t *testing.T) {
	lines, err := ParseLines("  First line \n\n Second line\n\t\n")
	if err != nil {
		t.Fatalf("ParseLines failed: %v", err)
	}
	want := []string{"First line", "Second line"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestParseLinesEmpty(t *testing.T) {
	for _, raw := range []string{"", "\n\n", "   \n \t \n"} {
		if _, err := ParseLines(raw); !errors.Is(err, ErrEmptyLyrics) {
			t.Errorf("ParseLines(%q) = %v, want ErrEmptyLyrics", raw, err)
		}
	}
}

func TestAlignBasic(t *testing.T) {
	segments := []*segment.Segment{
		segment.New(0, 1, "hello world"),
		segment.New(1, 2, "goodbye now"),
	}
	lines := []string{"Hello world", "Goodbye now"}

	aligned, err := Align(segments, lines, Options{})
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}

	if len(aligned) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(aligned))
	}
	for i, want := range lines {
		if aligned[i].Text != want {
			t.Errorf("segment %d: got %q, want %q", i, aligned[i].Text, want)
		}
	}
	// timing comes from the input segments, untouched
	if aligned[0].Start != 0 || aligned[0].End != 1 ||
		aligned[1].Start != 1 || aligned[1].End != 2 {
		t.Error("aligned segments must keep the original timestamps")
	}
}

func TestAlignFallbackKeepsInputOrder(t *testing.T) {
	// zero overlap with every reference line forces the below-threshold
	// fallback, which must consume lines in strict order
	segments := []*segment.Segment{
		segment.New(0, 1, "zzz qqq"),
		segment.New(1, 2, "xxx vvv"),
		segment.New(2, 3, "kkk jjj"),
	}
	lines := []string{"one more day", "by the river", "until the end"}

	aligned, err := Align(segments, lines, Options{})
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}

	if len(aligned) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(aligned))
	}
	for i, want := range lines {
		if aligned[i].Text != want {
			t.Errorf("segment %d: got %q, want %q", i, aligned[i].Text, want)
		}
	}
}

func TestAlignSkipsAheadOverDroppedLine(t *testing.T) {
	// the transcriber missed "first verse line" entirely; the cursor must
	// jump past it without ever assigning it
	segments := []*segment.Segment{
		segment.New(0, 1, "second verse line"),
		segment.New(1, 2, "third verse line"),
	}
	lines := []string{"first verse line", "second verse line", "third verse line"}

	aligned, err := Align(segments, lines, Options{})
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}

	if len(aligned) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(aligned))
	}
	if aligned[0].Text != "second verse line" || aligned[1].Text != "third verse line" {
		t.Errorf("got %q, %q", aligned[0].Text, aligned[1].Text)
	}
}

func TestAlignSkipsEmptySegments(t *testing.T) {
	segments := []*segment.Segment{
		segment.New(0, 1, "..."),
		segment.New(1, 2, "hello world"),
	}
	lines := []string{"Hello world"}

	aligned, err := Align(segments, lines, Options{})
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}

	if len(aligned) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(aligned))
	}
	if aligned[0].Start != 1 || aligned[0].Text != "Hello world" {
		t.Errorf("got %+v", *aligned[0])
	}
}

func TestAlignDropsSegmentsPastLineExhaustion(t *testing.T) {
	segments := []*segment.Segment{
		segment.New(0, 1, "hello world"),
		segment.New(1, 2, "extra segment"),
		segment.New(2, 3, "another extra"),
	}
	lines := []string{"Hello world"}

	aligned, err := Align(segments, lines, Options{})
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	if len(aligned) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(aligned))
	}
}

func TestAlignNoAlignmentProduced(t *testing.T) {
	segments := []*segment.Segment{
		segment.New(0, 1, "!!!"),
		segment.New(1, 2, "   "),
	}
	lines := []string{"Hello world"}

	_, err := Align(segments, lines, Options{})
	if !errors.Is(err, ErrNoAlignment) {
		t.Errorf("got %v, want ErrNoAlignment", err)
	}
}

func TestAlignEmptyLines(t *testing.T) {
	segments := []*segment.Segment{segment.New(0, 1, "hello")}
	if _, err := Align(segments, nil, Options{}); !errors.Is(err, ErrEmptyLyrics) {
		t.Errorf("got %v, want ErrEmptyLyrics", err)
	}
}

func TestAlignLookaheadBound(t *testing.T) {
	// the matching line sits outside the lookahead window, so the aligner
	// must fall back instead of reaching it
	segments := []*segment.Segment{
		segment.New(0, 1, "the target phrase"),
	}
	lines := []string{
		"zz1", "zz2", "zz3",
		"the target phrase",
	}

	aligned, err := Align(segments, lines, Options{Lookahead: 2})
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	if aligned[0].Text != "zz1" {
		t.Errorf("got %q, want fallback to first unconsumed line", aligned[0].Text)
	}
}
