// Package timeline owns the ordered caption collection during an editing
// session and translates between screen geometry and time.
package timeline

import (
	"errors"
	"strings"

	"github.com/samkrish/capsync/internal/segment"
)

var (
	// returned by ApplyTextEdit when end <= start
	ErrInvalidRange = errors.New("caption end time must be greater than start time")
	// returned by ApplyTextEdit when the trimmed text is empty
	ErrEmptyText = errors.New("caption text cannot be empty")
)

// DragMode identifies which part of a caption block is being dragged.
type DragMode int

const (
	DragMove DragMode = iota
	DragResizeLeft
	DragResizeRight
)

// MinBlockWidthPx is the default narrowest width a caption block may be
// resized to on screen. The matching minimum duration is
// MinBlockWidthPx / pixelsPerSecond, never below segment.MinDuration.
const MinBlockWidthPx = 24.0

// DefaultCaptionSeconds is the default duration of a caption inserted at
// the playhead.
const DefaultCaptionSeconds = 2.0

// DefaultPixelsPerSecond is the default zoom of the geometry-to-time
// mapping.
const DefaultPixelsPerSecond = 120.0

// PlaceholderText is the text of a freshly inserted caption.
const PlaceholderText = "New caption"

// Config carries the geometry tunables of a Manager. Zero values fall
// back to the package defaults.
type Config struct {
	PixelsPerSecond       float64
	MinBlockWidthPx       float64
	DefaultCaptionSeconds float64
}

func (c Config) withDefaults() Config {
	if c.PixelsPerSecond <= 0 {
		c.PixelsPerSecond = DefaultPixelsPerSecond
	}
	if c.MinBlockWidthPx <= 0 {
		c.MinBlockWidthPx = MinBlockWidthPx
	}
	if c.DefaultCaptionSeconds <= 0 {
		c.DefaultCaptionSeconds = DefaultCaptionSeconds
	}
	return c
}

// Manager is the single source of truth for the segment collection.
// It is not safe for concurrent use; hosts driving it from multiple
// goroutines must serialize access externally.
type Manager struct {
	cfg Config

	segments []*segment.Segment
	selected *segment.Segment

	// set while a drag gesture is in flight so the collection does not
	// reorder mid-gesture; Commit clears it
	dirty bool
}

func NewManager(cfg Config) *Manager {
	return &Manager{cfg: cfg.withDefaults()}
}

// Load replaces the collection wholesale, re-sorts it, and drops any
// selection whose segment is no longer present.
func (m *Manager) Load(segments []*segment.Segment) {
	m.segments = segments
	segment.SortByTime(m.segments)
	m.dirty = false
	if m.IndexOf(m.selected) == -1 {
		m.selected = nil
	}
}

// Segments exposes the collection in sort order. Callers must not reorder it.
func (m *Manager) Segments() []*segment.Segment {
	return m.segments
}

func (m *Manager) Len() int {
	return len(m.segments)
}

// ActiveAt returns the first segment, in sort order, whose range contains t.
// Overlapping segments are legal; at most one is reported.
func (m *Manager) ActiveAt(t float64) *segment.Segment {
	for _, s := range m.segments {
		if s.Contains(t) {
			return s
		}
	}
	return nil
}

// IndexOf returns the rank of the handle in sort order, or -1 for a stale
// or nil handle.
func (m *Manager) IndexOf(s *segment.Segment) int {
	if s == nil {
		return -1
	}
	for i, existing := range m.segments {
		if existing == s {
			return i
		}
	}
	return -1
}

// Select records the last explicit user pick. Stale handles are ignored.
func (m *Manager) Select(s *segment.Segment) {
	if s == nil || m.IndexOf(s) >= 0 {
		m.selected = s
	}
}

// Selected returns the last explicit user pick, independent of ActiveAt.
func (m *Manager) Selected() *segment.Segment {
	return m.selected
}

// ApplyGeometry converts a dragged block rectangle (origin and width in
// pixels, post-delta) into new start/end times. Resize modes clamp the
// width to the configured minimum; move keeps the width and clamps the
// origin at zero. A non-positive pixelsPerSecond falls back to the
// configured zoom. Times are rounded to millisecond precision. The
// collection is NOT re-sorted until Commit so an in-flight gesture keeps
// its rank.
func (m *Manager) ApplyGeometry(s *segment.Segment, originPx, widthPx, pixelsPerSecond float64, mode DragMode) {
	if s == nil {
		return
	}
	if pixelsPerSecond <= 0 {
		pixelsPerSecond = m.cfg.PixelsPerSecond
	}

	switch mode {
	case DragResizeLeft:
		// right edge stays anchored while the width clamp pushes the
		// origin back out
		right := originPx + widthPx
		if widthPx < m.cfg.MinBlockWidthPx {
			widthPx = m.cfg.MinBlockWidthPx
		}
		originPx = right - widthPx
	case DragResizeRight:
		if widthPx < m.cfg.MinBlockWidthPx {
			widthPx = m.cfg.MinBlockWidthPx
		}
	}
	if originPx < 0 {
		originPx = 0
	}

	start := originPx / pixelsPerSecond
	duration := widthPx / pixelsPerSecond
	if duration < segment.MinDuration {
		duration = segment.MinDuration
	}

	s.Start = segment.RoundTime(start)
	s.End = segment.RoundTime(start + duration)
	m.dirty = true
}

// Commit re-sorts the collection after a drag gesture ends.
func (m *Manager) Commit() {
	if !m.dirty {
		return
	}
	segment.SortByTime(m.segments)
	m.dirty = false
}

// ApplyTextEdit validates and applies a direct field edit. On failure the
// segment is left untouched.
func (m *Manager) ApplyTextEdit(s *segment.Segment, start, end float64, text string) error {
	if s == nil {
		return ErrInvalidRange
	}
	if end <= start {
		return ErrInvalidRange
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyText
	}

	s.Start = segment.RoundTime(start)
	s.End = segment.RoundTime(end)
	s.Text = trimmed
	segment.SortByTime(m.segments)
	m.dirty = false
	return nil
}

// InsertAt creates a caption at the playhead with the configured duration
// and placeholder text, and returns its handle.
func (m *Manager) InsertAt(t float64) *segment.Segment {
	if t < 0 {
		t = 0
	}
	s := segment.New(
		segment.RoundTime(t),
		segment.RoundTime(t+m.cfg.DefaultCaptionSeconds),
		PlaceholderText,
	)
	m.segments = append(m.segments, s)
	segment.SortByTime(m.segments)
	return s
}

// Delete removes a segment by handle. Stale handles are a no-op.
func (m *Manager) Delete(s *segment.Segment) {
	idx := m.IndexOf(s)
	if idx < 0 {
		return
	}
	m.segments = append(m.segments[:idx], m.segments[idx+1:]...)
	if m.selected == s {
		m.selected = nil
	}
}

// Duration returns the largest end time across all segments, or 0 when empty.
func (m *Manager) Duration() float64 {
	var max float64
	for _, s := range m.segments {
		if s.End > max {
			max = s.End
		}
	}
	return max
}
