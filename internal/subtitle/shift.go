package subtitle

import (
	"fmt"
	"regexp"

	"github.com/ruromgar/srt-subtitle-adjuster/internal/timecode"
)

// Timing lines are matched with fixed-width fields only. This is
// stricter than timecode.Parse on purpose: a line starting with
// 0:00:01,000 is not a timing line and passes through untouched, even
// though the adjuster itself would accept the stamp.
var (
	srtTimingPattern = regexp.MustCompile(
		`^(\d{2}:\d{2}:\d{2},\d{3}) --> (\d{2}:\d{2}:\d{2},\d{3})`,
	)
	vttTimingPattern = regexp.MustCompile(
		`^(\d{2}:\d{2}:\d{2}\.\d{3}) --> (\d{2}:\d{2}:\d{2}\.\d{3})`,
	)
)

// ShiftLines applies off to every timing line and returns a sequence
// of the same length. Lines that do not match the timing pattern are
// copied unchanged. A match supersedes the whole line: anything after
// the second time code is dropped. The first error stops processing;
// no partial result is returned.
func ShiftLines(
	lines []string,
	format Format,
	off timecode.Offset,
) ([]string, error) {
	pattern := srtTimingPattern
	if format == FormatVTT {
		pattern = vttTimingPattern
	}

	shifted := make([]string, 0, len(lines))
	for i, line := range lines {
		matches := pattern.FindStringSubmatch(line)
		if matches == nil {
			shifted = append(shifted, line)
			continue
		}

		start, err := shiftTimeCode(matches[1], off)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		end, err := shiftTimeCode(matches[2], off)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		shifted = append(shifted, renderTimingLine(format, start, end))
	}

	return shifted, nil
}

func shiftTimeCode(
	s string,
	off timecode.Offset,
) (timecode.TimeCode, error) {
	tc, err := timecode.Parse(s)
	if err != nil {
		return timecode.TimeCode{}, err
	}
	return tc.Shift(off)
}

func renderTimingLine(format Format, start, end timecode.TimeCode) string {
	if format == FormatVTT {
		return start.VTT() + " --> " + end.VTT()
	}
	return start.SRT() + " --> " + end.SRT()
}
