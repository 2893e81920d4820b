// Package config holds the explicit runtime configuration. There is no
// ambient global state: callers load a Config once and pass it down.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full tunable surface, loadable from a YAML file.
type Config struct {
	Sync       SyncConfig       `yaml:"sync"`
	Timeline   TimelineConfig   `yaml:"timeline"`
	Transcribe TranscribeConfig `yaml:"transcribe"`
	Export     ExportConfig     `yaml:"export"`
}

// SyncConfig tunes the lyric aligner. The defaults are the values the
// aligner was shipped with; they have not been validated against a corpus,
// which is why they are exposed here.
type SyncConfig struct {
	MinSimilarity float64 `yaml:"min_similarity"`
	Lookahead     int     `yaml:"lookahead"`
}

// TimelineConfig tunes the geometry-to-time mapping of the caption timeline.
type TimelineConfig struct {
	PixelsPerSecond       float64 `yaml:"pixels_per_second"`
	MinBlockWidthPx       float64 `yaml:"min_block_width_px"`
	DefaultCaptionSeconds float64 `yaml:"default_caption_seconds"`
}

type TranscribeConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
}

type ExportConfig struct {
	FFmpegPath string `yaml:"ffmpeg_path"`
}

func Default() Config {
	return Config{
		Sync: SyncConfig{
			MinSimilarity: 0.25,
			Lookahead:     6,
		},
		Timeline: TimelineConfig{
			PixelsPerSecond:       120,
			MinBlockWidthPx:       24,
			DefaultCaptionSeconds: 2.0,
		},
		Transcribe: TranscribeConfig{
			Provider: "openai",
			Model:    "",
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnv loads a .env file from the working directory when present. API
// keys are only ever read from the environment, never from the YAML file.
func LoadEnv() {
	_ = godotenv.Load()
}

// APIKeyFromEnv returns the conventional API key variable for a provider.
func APIKeyFromEnv(provider string) string {
	switch strings.ToLower(provider) {
	case "gemini":
		return os.Getenv("GEMINI_API_KEY")
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	default:
		return ""
	}
}

// FFmpegPath resolves the ffmpeg binary override: config value first, then
// the FFMPEG_BIN environment variable. Empty means PATH lookup.
func (c Config) FFmpegPath() string {
	if c.Export.FFmpegPath != "" {
		return c.Export.FFmpegPath
	}
	return os.Getenv("FFMPEG_BIN")
}
