package lyrics

import (
	"errors"
	"strings"

	"github.com/samkrish/capsync/internal/segment"
)

var (
	// returned by ParseLines when the reference text holds no usable lines
	ErrEmptyLyrics = errors.New("lyric synchronization was requested, but no lyric lines were provided")
	// returned by Align when no segment could be assigned a line
	ErrNoAlignment = errors.New("lyric alignment produced no aligned segments")
)

const (
	DefaultMinSimilarity = 0.25
	DefaultLookahead     = 6
)

// Options tunes the aligner. Zero values fall back to the defaults.
type Options struct {
	// MinSimilarity is the score below which the aligner stops trusting the
	// windowed search and assigns the line at the cursor instead.
	MinSimilarity float64
	// Lookahead bounds how far past the cursor candidate lines are scored.
	Lookahead int
}

func (o Options) withDefaults() Options {
	if o.MinSimilarity <= 0 {
		o.MinSimilarity = DefaultMinSimilarity
	}
	if o.Lookahead <= 0 {
		o.Lookahead = DefaultLookahead
	}
	return o
}

// ParseLines splits raw lyric text into trimmed non-blank lines.
func ParseLines(raw string) ([]string, error) {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyLyrics
	}
	return lines, nil
}

// Align assigns each transcribed segment one reference line, preserving
// line order and never reusing a consumed line. Output segments reuse the
// input timestamps with the chosen line's raw text. Segments whose text
// normalizes to empty are skipped; segments past line exhaustion are
// dropped.
//
// The search is greedy and forward-only: every candidate in the lookahead
// window is scored against the segment and the strictly best match wins,
// ties going to the earliest line. A best score under MinSimilarity falls
// back to the line at the cursor, which guarantees forward progress on
// garbage transcriptions. Jumping the cursor past skipped lines is
// intentional: it tolerates the transcriber dropping a line entirely.
func Align(segments []*segment.Segment, lines []string, opts Options) ([]*segment.Segment, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyLyrics
	}
	opts = opts.withDefaults()

	normalized := make([]string, len(lines))
	for i, line := range lines {
		normalized[i] = Normalize(line)
	}

	var aligned []*segment.Segment
	lyricIdx := 0

	for _, seg := range segments {
		if lyricIdx >= len(lines) {
			break
		}

		segNorm := Normalize(seg.Text)
		if segNorm == "" {
			continue
		}

		bestIdx := lyricIdx
		bestScore := -1.0

		searchEnd := lyricIdx + opts.Lookahead
		if searchEnd > len(lines) {
			searchEnd = len(lines)
		}
		for idx := lyricIdx; idx < searchEnd; idx++ {
			if score := Ratio(segNorm, normalized[idx]); score > bestScore {
				bestScore = score
				bestIdx = idx
			}
		}

		var chosen string
		if bestScore < opts.MinSimilarity {
			chosen = lines[lyricIdx]
			lyricIdx++
		} else {
			chosen = lines[bestIdx]
			lyricIdx = bestIdx + 1
		}

		aligned = append(aligned, segment.New(seg.Start, seg.End, chosen))
	}

	if len(aligned) == 0 {
		return nil, ErrNoAlignment
	}
	return aligned, nil
}
