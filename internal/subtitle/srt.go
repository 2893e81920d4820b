package subtitle

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/samkrish/capsync/internal/segment"
)

// SubRip format
type SRTWriter struct{}

// writes the segments to an SRT file
func (w *SRTWriter) Write(segments []*segment.Segment, path string) error {
	return writeFileAtomic(path, []byte(EncodeSRT(segments)))
}

// EncodeSRT renders segments as sequential indexed SRT blocks.
func EncodeSRT(segments []*segment.Segment) string {
	var sb strings.Builder
	for i, s := range segments {
		if i > 0 {
			sb.WriteString("\n")
		}

		// index (1-based)
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString("\n")

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(formatSRTTime(s.Start))
		sb.WriteString(" --> ")
		sb.WriteString(formatSRTTime(s.End))
		sb.WriteString("\n")

		sb.WriteString(s.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatSRTTime(seconds float64) string {
	millis := int64(math.Round(seconds * 1000))
	hours := millis / 3_600_000
	rem := millis % 3_600_000
	minutes := rem / 60_000
	rem %= 60_000
	secs := rem / 1000
	ms := rem % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, ms)
}

var srtTimestampRegex = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2}),(\d{3})$`)

func parseSRTTime(token string) (float64, error) {
	matches := srtTimestampRegex.FindStringSubmatch(strings.TrimSpace(token))
	if matches == nil {
		return 0, fmt.Errorf("invalid SRT timestamp: %q", token)
	}

	h, _ := strconv.Atoi(matches[1])
	m, _ := strconv.Atoi(matches[2])
	s, _ := strconv.Atoi(matches[3])
	ms, _ := strconv.Atoi(matches[4])

	return float64(h)*3600 + float64(m)*60 + float64(s) + float64(ms)/1000, nil
}

// ParseSRTFile reads and decodes an SRT file.
func ParseSRTFile(path string) ([]*segment.Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read SRT file: %w", err)
	}

	segments, err := DecodeSRT(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return segments, nil
}

var blockSeparatorRegex = regexp.MustCompile(`\n\s*\n`)

// DecodeSRT parses SRT text into segments. Blocks missing the timestamp
// arrow are skipped so stray metadata lines are tolerated; a malformed
// timestamp aborts the whole decode.
func DecodeSRT(data string) ([]*segment.Segment, error) {
	data = strings.TrimPrefix(data, "\uFEFF")
	data = strings.ReplaceAll(data, "\r\n", "\n")

	var segments []*segment.Segment
	for _, block := range blockSeparatorRegex.Split(data, -1) {
		if strings.TrimSpace(block) == "" {
			continue
		}

		var lines []string
		for _, line := range strings.Split(block, "\n") {
			if strings.TrimSpace(line) != "" {
				lines = append(lines, strings.TrimRight(line, " \t"))
			}
		}
		if len(lines) < 2 {
			continue
		}
		if !strings.Contains(lines[1], "-->") {
			continue
		}

		parts := strings.SplitN(lines[1], "-->", 2)
		start, err := parseSRTTime(parts[0])
		if err != nil {
			return nil, err
		}
		end, err := parseSRTTime(parts[1])
		if err != nil {
			return nil, err
		}

		text := strings.TrimSpace(strings.Join(lines[2:], " "))
		if text == "" {
			continue
		}

		segments = append(segments, segment.New(start, end, text))
	}

	return segments, nil
}
