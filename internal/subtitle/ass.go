package subtitle

import (
	"fmt"
	"math"
	"strings"

	"github.com/samkrish/capsync/internal/segment"
)

// Advanced SubStation Alpha format. Write-only: the editor persists its
// state as SRT and only emits ASS for styled burn-in export.
type ASSWriter struct {
	FontName string
	FontSize int
	PlayResX int
	PlayResY int
}

func NewASSWriter() *ASSWriter {
	return &ASSWriter{
		FontName: "Arial",
		FontSize: 44,
		PlayResX: 1920,
		PlayResY: 1080,
	}
}

// writes the segments to an ASS file
func (w *ASSWriter) Write(segments []*segment.Segment, path string) error {
	return writeFileAtomic(path, []byte(w.Encode(segments)))
}

// Encode renders the fixed script header followed by one Dialogue line per
// segment.
func (w *ASSWriter) Encode(segments []*segment.Segment) string {
	var sb strings.Builder

	sb.WriteString("[Script Info]\n")
	sb.WriteString("ScriptType: v4.00+\n")
	sb.WriteString("Collisions: Normal\n")
	sb.WriteString(fmt.Sprintf("PlayResX: %d\n", w.PlayResX))
	sb.WriteString(fmt.Sprintf("PlayResY: %d\n", w.PlayResY))
	sb.WriteString("WrapStyle: 0\n")
	sb.WriteString("ScaledBorderAndShadow: yes\n\n")

	sb.WriteString("[V4+ Styles]\n")
	sb.WriteString("Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")
	sb.WriteString(fmt.Sprintf("Style: Default,%s,%d,&H00FFFFFF,&H000000FF,&H00111111,&H66000000,0,0,0,0,100,100,0,0,1,2,0,2,24,24,32,1\n\n",
		w.FontName, w.FontSize))

	sb.WriteString("[Events]\n")
	sb.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")

	for _, s := range segments {
		sb.WriteString(fmt.Sprintf("Dialogue: 0,%s,%s,Default,,0,0,0,,%s\n",
			formatASSTime(s.Start),
			formatASSTime(s.End),
			escapeASSText(s.Text)))
	}

	return sb.String()
}

// ASS times carry centisecond precision and an unpadded hour digit.
func formatASSTime(seconds float64) string {
	centis := int64(math.Round(seconds * 100))
	hours := centis / 360_000
	rem := centis % 360_000
	minutes := rem / 6000
	rem %= 6000
	secs := rem / 100
	cs := rem % 100

	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, secs, cs)
}

// Backslash must be escaped first so the brace escapes are not doubled.
func escapeASSText(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	text = strings.ReplaceAll(text, "{", `\{`)
	text = strings.ReplaceAll(text, "}", `\}`)
	return text
}
