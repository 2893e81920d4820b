package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/samkrish/capsync/internal/subtitle"
	"github.com/samkrish/capsync/internal/timeline"
)

var syncCmd = &cobra.Command{
	Use:   "sync [captions.srt]",
	Short: "Align existing captions to reference lyrics",
	Long: `Replace the text of an existing SRT caption file with lyric lines,
keeping every caption's original timing.

Matching is fuzzy, greedy, and forward-only: lyric lines are never reordered
or reused, and a transcriber-dropped line is skipped rather than forced.

Examples:
  capsync sync captions.srt --lyrics-file lyrics.txt
  capsync sync captions.srt --lyrics-clipboard -o synced.srt
  cat lyrics.txt | capsync sync captions.srt --lyrics-stdin --similarity 0.4`,
	Args: cobra.ExactArgs(1),
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
	addLyricsFlags(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	srtPath := args[0]

	lyricsText, hasLyrics, err := readLyricsText(cmd)
	if err != nil {
		return err
	}
	if !hasLyrics {
		return fmt.Errorf("a lyrics source is required: use --lyrics-file, --lyrics-stdin, or --lyrics-clipboard")
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = srtPath
	}

	segments, err := subtitle.ParseSRTFile(srtPath)
	if err != nil {
		return err
	}
	if len(segments) == 0 {
		return fmt.Errorf("no captions found in %s", srtPath)
	}

	manager := timeline.NewManager(timelineConfig())
	manager.Load(segments)

	logger.Infow("Syncing lyrics to captions",
		"input", srtPath,
		"captions", manager.Len(),
	)

	aligned, err := syncSegmentsToLyrics(manager.Segments(), lyricsText, cmd)
	if err != nil {
		return err
	}
	manager.Load(aligned)

	writer := &subtitle.SRTWriter{}
	if err := writer.Write(manager.Segments(), outputPath); err != nil {
		return fmt.Errorf("failed to write synced captions: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Lyrics synced successfully: %s\n", absOutput)
	fmt.Printf("  Captions: %d\n", manager.Len())

	return nil
}
