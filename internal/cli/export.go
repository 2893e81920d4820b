package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/samkrish/capsync/internal/subtitle"
	"github.com/samkrish/capsync/internal/timeline"
	"github.com/samkrish/capsync/internal/video"
)

var exportCmd = &cobra.Command{
	Use:   "export [video_file]",
	Short: "Burn captions permanently into a video",
	Long: `Render a caption file into the video frames using ffmpeg's subtitles
filter, copying the audio stream untouched.

The captions are re-serialized in the chosen format before export, so the
burned-in text always reflects the caption file as parsed. Progress is read
from ffmpeg's progress log; Ctrl-C cancels the export and discards the
partial output.

Examples:
  capsync export video.mp4 --captions captions.srt
  capsync export video.mp4 --captions captions.srt --format ass -o final.mp4`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().
		StringP("captions", "c", "", "Caption SRT file to burn in (default <video>.srt)")
	exportCmd.Flags().
		StringP("format", "f", "srt", "Subtitle format handed to the burn-in filter (srt, ass)")
}

// progressLine renders the in-place burn-in progress indicator.
func progressLine(percent float64) string {
	return fmt.Sprintf("\rBurning in captions: %3.0f%%", percent)
}

func runExport(cmd *cobra.Command, args []string) error {
	videoPath := args[0]

	captionsPath, _ := cmd.Flags().GetString("captions")
	formatStr, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	if captionsPath == "" {
		captionsPath = strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + ".srt"
	}

	format, err := subtitle.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	stem := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))
	if outputPath == "" {
		outputPath = fmt.Sprintf("%s_captioned_%s.mp4", stem, format)
	}

	segments, err := subtitle.ParseSRTFile(captionsPath)
	if err != nil {
		return err
	}
	if len(segments) == 0 {
		return fmt.Errorf("no captions found in %s", captionsPath)
	}

	manager := timeline.NewManager(timelineConfig())
	manager.Load(segments)

	tempDir, err := os.MkdirTemp("", "capsync-export-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	subtitlePath := filepath.Join(tempDir, filepath.Base(stem)+"_edited"+subtitle.ExtensionForFormat(format))
	writer, err := subtitle.NewWriter(format)
	if err != nil {
		return err
	}
	if err := writer.Write(manager.Segments(), subtitlePath); err != nil {
		return fmt.Errorf("failed to write subtitle file: %w", err)
	}

	progressPath := filepath.Join(tempDir, "ffmpeg_export_progress.txt")

	logger.Infow("Starting caption burn-in",
		"input", videoPath,
		"captions", captionsPath,
		"format", string(format),
		"output", outputPath,
	)

	processor := video.NewProcessor(cfg.FFmpegPath())
	job, err := processor.StartBurnIn(videoPath, subtitlePath, outputPath, progressPath)
	if err != nil {
		return err
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	duration := manager.Duration()
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for !job.Done() {
		select {
		case <-interrupt:
			fmt.Println()
			if err := job.Cancel(); err != nil {
				return err
			}
			return fmt.Errorf("export cancelled")
		case <-ticker.C:
			fmt.Print(progressLine(job.Progress(duration)))
		}
	}
	fmt.Println()

	if err := job.Err(); err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Captioned video exported successfully: %s\n", absOutput)

	return nil
}
