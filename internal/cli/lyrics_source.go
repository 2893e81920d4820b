package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func addLyricsFlags(cmd *cobra.Command) {
	cmd.Flags().
		String("lyrics-file", "", "Plain-text lyrics file for lyric synchronization")
	cmd.Flags().
		Bool("lyrics-stdin", false, "Read lyrics text from standard input")
	cmd.Flags().
		Bool("lyrics-clipboard", false, "Read lyrics text from the system clipboard")
	cmd.Flags().
		Float64P("similarity", "s", 0, "Minimum match similarity for lyric sync (0 = config default)")
	cmd.Flags().
		Int("lookahead", 0, "Lyric search window size (0 = config default)")
}

// readLyricsText resolves the one lyrics source selected by flags. The
// second return is false when no source was requested.
func readLyricsText(cmd *cobra.Command) (string, bool, error) {
	lyricsFile, _ := cmd.Flags().GetString("lyrics-file")
	fromStdin, _ := cmd.Flags().GetBool("lyrics-stdin")
	fromClipboard, _ := cmd.Flags().GetBool("lyrics-clipboard")

	sources := 0
	if lyricsFile != "" {
		sources++
	}
	if fromStdin {
		sources++
	}
	if fromClipboard {
		sources++
	}
	if sources == 0 {
		return "", false, nil
	}
	if sources > 1 {
		return "", false, fmt.Errorf("use only one of --lyrics-file, --lyrics-stdin, --lyrics-clipboard")
	}

	switch {
	case lyricsFile != "":
		data, err := os.ReadFile(lyricsFile)
		if err != nil {
			return "", false, fmt.Errorf("failed to read lyrics file: %w", err)
		}
		return string(data), true, nil
	case fromStdin:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", false, fmt.Errorf("failed to read lyrics from stdin: %w", err)
		}
		return string(data), true, nil
	default:
		text, err := clipboard.ReadAll()
		if err != nil {
			return "", false, fmt.Errorf("failed to read lyrics from clipboard: %w", err)
		}
		return text, true, nil
	}
}
