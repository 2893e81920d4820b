package video

import (
	"os"
	"strconv"
	"strings"
)

// ParseProgress reads an ffmpeg -progress key=value log and returns the
// completion percentage against the given duration in seconds, clamped to
// [0, 100]. The log is a growing stream where the last write wins per key;
// out_time_ms carries microseconds despite its name. A missing file reads
// as 0 and malformed values are skipped.
func ParseProgress(path string, duration float64) float64 {
	if duration <= 0 {
		return 0
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}

	var outTimeMicros int64
	for _, line := range strings.Split(string(data), "\n") {
		value, ok := strings.CutPrefix(strings.TrimSpace(line), "out_time_ms=")
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			continue
		}
		outTimeMicros = n
	}

	percent := float64(outTimeMicros) / 1e6 / duration * 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
