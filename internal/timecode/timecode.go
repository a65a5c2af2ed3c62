package timecode

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	msPerHour   = 3600000
	msPerMinute = 60000
	msPerSecond = 1000
)

// wall-clock style duration as it appears on subtitle timing lines
type TimeCode struct {
	Hours   int
	Minutes int
	Seconds int
	Millis  int
}

// leading zeros allowed, field widths unconstrained; the millisecond
// separator is a comma (SRT) or a dot (WebVTT)
var timeCodePattern = regexp.MustCompile(`^(\d+):(\d+):(\d+)[,.](\d+)`)

// Parse extracts a time code from the start of s.
func Parse(s string) (TimeCode, error) {
	matches := timeCodePattern.FindStringSubmatch(s)
	if matches == nil {
		return TimeCode{}, &FormatError{Input: s}
	}

	var fields [4]int
	for i, m := range matches[1:] {
		n, err := strconv.Atoi(m)
		if err != nil {
			return TimeCode{}, &FormatError{Input: s}
		}
		fields[i] = n
	}

	return TimeCode{
		Hours:   fields[0],
		Minutes: fields[1],
		Seconds: fields[2],
		Millis:  fields[3],
	}, nil
}

// FromMilliseconds decomposes a non-negative millisecond total into
// time code fields. Minutes, seconds and milliseconds stay within
// their bases; hours absorb the remainder and are unbounded.
func FromMilliseconds(total int) TimeCode {
	hours := total / msPerHour
	rem := total % msPerHour
	minutes := rem / msPerMinute
	rem %= msPerMinute

	return TimeCode{
		Hours:   hours,
		Minutes: minutes,
		Seconds: rem / msPerSecond,
		Millis:  rem % msPerSecond,
	}
}

func (t TimeCode) totalMillis() int {
	return t.Hours*msPerHour + t.Minutes*msPerMinute + t.Seconds*msPerSecond + t.Millis
}

// Shift moves the time code by off. A shift that would take the total
// below zero fails; no clamping is performed.
func (t TimeCode) Shift(off Offset) (TimeCode, error) {
	total := t.totalMillis() + int(off)
	if total < 0 {
		return TimeCode{}, &NegativeTimeError{TimeCode: t.SRT(), Offset: off}
	}
	return FromMilliseconds(total), nil
}

// SRT renders the canonical HH:MM:SS,mmm form. Hours wider than two
// digits render at their natural width.
func (t TimeCode) SRT() string {
	return fmt.Sprintf("%02d:%02d:%02d,%03d", t.Hours, t.Minutes, t.Seconds, t.Millis)
}

// VTT renders the HH:MM:SS.mmm form.
func (t TimeCode) VTT() string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hours, t.Minutes, t.Seconds, t.Millis)
}
