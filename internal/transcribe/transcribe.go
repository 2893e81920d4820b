// Package transcribe turns an audio file into time-coded caption segments
// through an external speech-to-text provider.
package transcribe

import (
	"context"
	"fmt"
	"strings"

	"github.com/samkrish/capsync/internal/segment"
)

// transcription result
type Result struct {
	Segments []*segment.Segment
	Language string
	Duration float64 // seconds
}

// interface for audio transcription
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*Result, error)
}

// transcription service provider
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// transcription options
type Options struct {
	Language string // Source language of audio
	Model    string
	Prompt   string
}

// creates transcriber based on provider
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Transcriber, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAITranscriber(ctx, apiKey, opts)
	case ProviderGemini:
		return NewGeminiTranscriber(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// filterSegments drops entries with empty or whitespace-only text before
// they enter the caption timeline, and trims the rest.
func filterSegments(segments []*segment.Segment) []*segment.Segment {
	filtered := make([]*segment.Segment, 0, len(segments))
	for _, s := range segments {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		s.Text = text
		filtered = append(filtered, s)
	}
	return filtered
}

func maxEnd(segments []*segment.Segment) float64 {
	var max float64
	for _, s := range segments {
		if s.End > max {
			max = s.End
		}
	}
	return max
}
