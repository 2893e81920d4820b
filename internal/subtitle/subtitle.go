// Package subtitle encodes and decodes caption segments in the SRT and ASS
// text formats.
package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samkrish/capsync/internal/segment"
)

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatASS Format = "ass"
)

// interface for writing subtitles to files
type Writer interface {
	Write(segments []*segment.Segment, path string) error
}

func NewWriter(format Format) (Writer, error) {
	switch format {
	case FormatSRT:
		return &SRTWriter{}, nil
	case FormatASS:
		return NewASSWriter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "srt":
		return FormatSRT, nil
	case "ass", "ssa":
		return FormatASS, nil
	default:
		return "", fmt.Errorf("unsupported subtitle format %q: use srt or ass", name)
	}
}

// file extension for a format
func ExtensionForFormat(format Format) string {
	if format == FormatASS {
		return ".ass"
	}
	return ".srt"
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}

// writeFileAtomic writes the whole document to a temp file in the target
// directory and renames it into place, so readers never observe a partial
// file.
func writeFileAtomic(path string, data []byte) error {
	if err := ensureDir(path); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".capsync-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write subtitle file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close subtitle file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
