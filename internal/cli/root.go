package cli

import (
	"github.com/ruromgar/srt-subtitle-adjuster/internal/logging"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "srtadjust [subtitle_file]",
	Short: "Adjust the timing of subtitles in an SRT file",
	Long: `Srtadjust shifts every timestamp in a subtitle file by a fixed
offset, leaving all other content untouched.

The offset is given as [A|D]HH:MM:SS,MS, [A|D]MM:SS,MS or bare
seconds. A advances the subtitles, D delays them; without a marker
the offset advances.

Examples:
  srtadjust movie.srt -t A00:00:02,500
  srtadjust movie.srt -t D5 -o fixed.srt
  srtadjust movie.vtt -t 2:30`,
	Args:    cobra.ExactArgs(1),
	Version: version,
	RunE:    runAdjust,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().
		StringP("time", "t", "", "Time adjustment in format [A|D]HH:MM:SS,MS or [A|D]SS,MS. A is for advance, D is for delay")
	rootCmd.Flags().
		StringP("output", "o", "", "Output file path. If not specified, overwrite the input file")
	_ = rootCmd.MarkFlagRequired("time")
}
