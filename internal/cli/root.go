package cli

import (
	"github.com/spf13/cobra"

	"github.com/samkrish/capsync/internal/config"
	"github.com/samkrish/capsync/internal/logging"
	"github.com/samkrish/capsync/internal/timeline"
)

var (
	verbose    bool
	configPath string

	cfg    config.Config
	logger *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "capsync",
	Short: "Caption timeline editor and lyric sync for videos",
	Long: `Capsync generates time-coded captions for a video, aligns them to
pasted lyrics with fuzzy forward-only matching, and exports them as SRT or
ASS subtitle files or burned permanently into the video.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)
		config.LoadEnv()

		var err error
		cfg, err = config.Load(configPath)
		return err
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// timelineConfig maps the loaded configuration onto the timeline tunables.
func timelineConfig() timeline.Config {
	return timeline.Config{
		PixelsPerSecond:       cfg.Timeline.PixelsPerSecond,
		MinBlockWidthPx:       cfg.Timeline.MinBlockWidthPx,
		DefaultCaptionSeconds: cfg.Timeline.DefaultCaptionSeconds,
	}
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
