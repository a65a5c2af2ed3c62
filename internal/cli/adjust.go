package cli

import (
	"fmt"
	"path/filepath"

	"github.com/ruromgar/srt-subtitle-adjuster/internal/subtitle"
	"github.com/ruromgar/srt-subtitle-adjuster/internal/timecode"
	"github.com/spf13/cobra"
)

func runAdjust(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	timeSpec, _ := cmd.Flags().GetString("time")
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = inputPath
	}

	offset, err := timecode.ParseOffset(timeSpec)
	if err != nil {
		return err
	}

	format := subtitle.FormatForPath(inputPath)

	logger.Infow("Adjusting subtitle timings",
		"input", inputPath,
		"output", outputPath,
		"format", string(format),
		"offset_ms", int(offset),
	)

	lines, err := subtitle.ReadLines(inputPath)
	if err != nil {
		return err
	}
	logger.Debugw("Read subtitle file", "lines", len(lines))

	adjusted, err := subtitle.ShiftLines(lines, format, offset)
	if err != nil {
		return err
	}

	if err := subtitle.WriteLines(outputPath, adjusted); err != nil {
		return fmt.Errorf("failed to write subtitle file %s: %w", outputPath, err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitle timings adjusted and saved to %s\n", absOutput)

	return nil
}
