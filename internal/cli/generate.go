package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samkrish/capsync/internal/config"
	"github.com/samkrish/capsync/internal/lyrics"
	"github.com/samkrish/capsync/internal/segment"
	"github.com/samkrish/capsync/internal/subtitle"
	"github.com/samkrish/capsync/internal/timeline"
	"github.com/samkrish/capsync/internal/transcribe"
	"github.com/samkrish/capsync/internal/video"
)

var generateCmd = &cobra.Command{
	Use:   "generate [video_file]",
	Short: "Generate time-coded captions for a video file",
	Long: `Generate captions for the specified video using AI transcription.

Audio is extracted with ffmpeg, transcribed by the selected provider, and
written as an SRT or ASS subtitle file. When a lyrics source is supplied the
transcribed text is replaced by the matching lyric lines while the original
timing is kept.

Examples:
  capsync generate video.mp4
  capsync generate video.mp4 --format ass -o captions.ass
  capsync generate song.mp4 --lyrics-file lyrics.txt --similarity 0.3
  capsync generate song.mp4 --provider gemini --lyrics-clipboard`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().
		StringP("provider", "p", "", "Transcription provider (openai, gemini)")
	generateCmd.Flags().
		StringP("api-key", "k", "", "Provider API key (or set OPENAI_API_KEY / GEMINI_API_KEY)")
	generateCmd.Flags().
		String("model", "", "Transcription model override")
	generateCmd.Flags().
		StringP("format", "f", "srt", "Output subtitle format (srt, ass)")
	generateCmd.Flags().
		StringP("language", "l", "", "Language code (e.g., en, es, fr)")
	addLyricsFlags(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	videoPath := args[0]
	ctx := context.Background()

	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", videoPath)
	}

	providerStr, _ := cmd.Flags().GetString("provider")
	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	formatStr, _ := cmd.Flags().GetString("format")
	language, _ := cmd.Flags().GetString("language")
	outputPath, _ := cmd.Flags().GetString("output")

	if providerStr == "" {
		providerStr = cfg.Transcribe.Provider
	}
	if model == "" {
		model = cfg.Transcribe.Model
	}
	if apiKey == "" {
		apiKey = config.APIKeyFromEnv(providerStr)
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required: use --api-key or set the provider's environment variable")
	}

	format, err := subtitle.ParseFormat(formatStr)
	if err != nil {
		return err
	}
	if outputPath == "" {
		outputPath = strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) +
			subtitle.ExtensionForFormat(format)
	}

	lyricsText, syncLyrics, err := readLyricsText(cmd)
	if err != nil {
		return err
	}

	logger.Infow("Starting caption generation",
		"input", videoPath,
		"output", outputPath,
		"provider", providerStr,
		"format", string(format),
		"lyric_sync", syncLyrics,
	)

	tempDir, err := os.MkdirTemp("", "capsync-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	logger.Infow("Extracting audio from video")
	audioPath := filepath.Join(tempDir, "audio.wav")
	processor := video.NewProcessor(cfg.FFmpegPath())
	if err := processor.ExtractAudio(ctx, videoPath, audioPath, video.DefaultExtractAudioOptions()); err != nil {
		return fmt.Errorf("failed to extract audio: %w", err)
	}

	transcriber, err := transcribe.Factory(ctx, transcribe.Provider(providerStr), apiKey, transcribe.Options{
		Language: language,
		Model:    model,
	})
	if err != nil {
		return fmt.Errorf("failed to create transcriber: %w", err)
	}

	logger.Infow("Transcribing audio")
	result, err := transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}

	logger.Infow("Transcription complete",
		"segments", len(result.Segments),
	)

	manager := timeline.NewManager(timelineConfig())
	manager.Load(result.Segments)

	if syncLyrics {
		segments, err := syncSegmentsToLyrics(manager.Segments(), lyricsText, cmd)
		if err != nil {
			return err
		}
		manager.Load(segments)
		logger.Infow("Lyrics synced to caption timeline",
			"captions", manager.Len(),
		)
	}

	writer, err := subtitle.NewWriter(format)
	if err != nil {
		return err
	}
	if err := writer.Write(manager.Segments(), outputPath); err != nil {
		return fmt.Errorf("failed to write subtitles: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Captions generated successfully: %s\n", absOutput)
	fmt.Printf("  Entries: %d\n", manager.Len())
	fmt.Printf("  Duration: %.3fs\n", manager.Duration())

	return nil
}

// syncSegmentsToLyrics runs the aligner with flag overrides on top of the
// configured tunables.
func syncSegmentsToLyrics(segments []*segment.Segment, lyricsText string, cmd *cobra.Command) ([]*segment.Segment, error) {
	lines, err := lyrics.ParseLines(lyricsText)
	if err != nil {
		return nil, err
	}

	minSimilarity, _ := cmd.Flags().GetFloat64("similarity")
	lookahead, _ := cmd.Flags().GetInt("lookahead")
	opts := lyrics.Options{
		MinSimilarity: cfg.Sync.MinSimilarity,
		Lookahead:     cfg.Sync.Lookahead,
	}
	if minSimilarity > 0 {
		opts.MinSimilarity = minSimilarity
	}
	if lookahead > 0 {
		opts.Lookahead = lookahead
	}

	return lyrics.Align(segments, lines, opts)
}
