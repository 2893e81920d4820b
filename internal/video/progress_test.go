package video

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProgressFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "progress.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write progress file: %v", err)
	}
	return path
}

func TestParseProgress(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		duration float64
		want     float64
	}{
		{
			name:     "last write wins",
			content:  "out_time_ms=1000000\nframe=50\nout_time_ms=5000000\nprogress=continue\n",
			duration: 10,
			want:     50,
		},
		{
			name:     "malformed value skipped",
			content:  "out_time_ms=2000000\nout_time_ms=N/A\n",
			duration: 10,
			want:     20,
		},
		{
			name:     "clamped to 100",
			content:  "out_time_ms=20000000\n",
			duration: 10,
			want:     100,
		},
		{
			name:     "no out_time_ms yet",
			content:  "frame=1\nfps=0.0\n",
			duration: 10,
			want:     0,
		},
		{
			name:     "negative clamped to 0",
			content:  "out_time_ms=-500000\n",
			duration: 10,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeProgressFile(t, tt.content)
			if got := ParseProgress(path, tt.duration); got != tt.want {
				t.Errorf("ParseProgress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseProgressMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never-written.txt")
	if got := ParseProgress(path, 10); got != 0 {
		t.Errorf("ParseProgress() = %v, want 0 before ffmpeg writes the file", got)
	}
}

func TestParseProgressZeroDuration(t *testing.T) {
	path := writeProgressFile(t, "out_time_ms=5000000\n")
	for _, duration := range []float64{0, -1} {
		if got := ParseProgress(path, duration); got != 0 {
			t.Errorf("ParseProgress(duration=%v) = %v, want 0", duration, got)
		}
	}
}

func TestEscapeFilterPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/tmp/captions.ass", "/tmp/captions.ass"},
		{"/tmp/my captions.ass", `/tmp/my\ captions.ass`},
		{"/tmp/it's.ass", `/tmp/it\'s.ass`},
		{"a:b'c d[e],f", `a\:b\'c\ d\[e\]\,f`},
		{`back\slash`, `back\\slash`},
	}

	for _, tt := range tests {
		if got := EscapeFilterPath(tt.in); got != tt.want {
			t.Errorf("EscapeFilterPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
