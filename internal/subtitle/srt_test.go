package subtitle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samkrish/capsync/internal/segment"
)

func TestEncodeSRT(t *testing.T) {
	segments := []*segment.Segment{
		segment.New(0.0, 1.5, "Hi"),
		segment.New(1.5, 3.0, "There"),
	}

	want := "1\n00:00:00,000 --> 00:00:01,500\nHi\n\n" +
		"2\n00:00:01,500 --> 00:00:03,000\nThere\n"

	if got := EncodeSRT(segments); got != want {
		t.Errorf("EncodeSRT() = %q, want %q", got, want)
	}
}

func TestFormatSRTTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00,000"},
		{1.5, "00:00:01,500"},
		{3661.2, "01:01:01,200"},
		{59.999, "00:00:59,999"},
		{7200, "02:00:00,000"},
	}

	for _, tt := range tests {
		if got := formatSRTTime(tt.seconds); got != tt.want {
			t.Errorf("formatSRTTime(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestDecodeSRT(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:04,000
Hello, world!

2
00:00:05,500 --> 00:00:08,200
This is a test.
With multiple lines.

NOTE stray metadata block
not a timestamp line

3
00:00:10,000 --> 00:00:12,500
Final subtitle.
`

	segments, err := DecodeSRT(content)
	if err != nil {
		t.Fatalf("DecodeSRT failed: %v", err)
	}

	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segments))
	}

	if segments[0].Start != 1.0 || segments[0].End != 4.0 {
		t.Errorf("segment 0: got [%v, %v], want [1, 4]", segments[0].Start, segments[0].End)
	}
	if segments[0].Text != "Hello, world!" {
		t.Errorf("segment 0: got %q", segments[0].Text)
	}

	// continuation lines collapse to a single space-joined line
	if segments[1].Text != "This is a test. With multiple lines." {
		t.Errorf("segment 1: got %q", segments[1].Text)
	}

	if segments[2].Start != 10.0 || segments[2].End != 12.5 {
		t.Errorf("segment 2: got [%v, %v], want [10, 12.5]", segments[2].Start, segments[2].End)
	}
}

func TestDecodeSRTDropsEmptyText(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:02,000\n\n\n2\n00:00:03,000 --> 00:00:04,000\nKept\n"

	segments, err := DecodeSRT(content)
	if err != nil {
		t.Fatalf("DecodeSRT failed: %v", err)
	}
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0].Text != "Kept" {
		t.Errorf("got %q, want %q", segments[0].Text, "Kept")
	}
}

func TestDecodeSRTMalformedTimestamp(t *testing.T) {
	content := "1\n00:00:aa,000 --> 00:00:02,000\nBroken\n"

	_, err := DecodeSRT(content)
	if err == nil {
		t.Fatal("expected error for malformed timestamp")
	}
	if !strings.Contains(err.Error(), "00:00:aa,000") {
		t.Errorf("expected error to name the offending token, got: %v", err)
	}
}

func TestSRTRoundTrip(t *testing.T) {
	original := []*segment.Segment{
		segment.New(0.0, 1.25, "First line"),
		segment.New(1.25, 3.875, "Second line"),
		segment.New(100.001, 3725.5, "Way later"),
	}

	decoded, err := DecodeSRT(EncodeSRT(original))
	if err != nil {
		t.Fatalf("round trip decode failed: %v", err)
	}

	if len(decoded) != len(original) {
		t.Fatalf("expected %d segments, got %d", len(original), len(decoded))
	}
	for i := range original {
		if decoded[i].Start != original[i].Start ||
			decoded[i].End != original[i].End ||
			decoded[i].Text != original[i].Text {
			t.Errorf("segment %d: got %+v, want %+v", i, *decoded[i], *original[i])
		}
	}
}

func TestSRTWriterCreatesParentDirs(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "deeper", "out.srt")

	writer := &SRTWriter{}
	segments := []*segment.Segment{segment.New(0, 1, "Hi")}
	if err := writer.Write(segments, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	parsed, err := ParseSRTFile(path)
	if err != nil {
		t.Fatalf("ParseSRTFile failed: %v", err)
	}
	if len(parsed) != 1 || parsed[0].Text != "Hi" {
		t.Errorf("unexpected parse result: %+v", parsed)
	}

	// no temp files should survive the atomic rename
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the output file, found %d entries", len(entries))
	}
}

func TestParseSRTFileMissing(t *testing.T) {
	_, err := ParseSRTFile(filepath.Join(t.TempDir(), "absent.srt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
