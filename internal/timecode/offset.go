package timecode

import (
	"strconv"
	"strings"
)

// signed adjustment in milliseconds, applied uniformly to every time
// code in a file
type Offset int

// ParseOffset converts an offset specification into an Offset.
//
// The specification is an optional direction marker followed by a
// duration: A advances (positive), D delays (negative), no marker
// advances. The duration is H:M:S, M:S or bare seconds, and the
// seconds part may carry a ,ms suffix. Field ranges are not validated;
// 90 minutes simply contributes ninety minutes.
func ParseOffset(spec string) (Offset, error) {
	sign := 1
	rest := spec
	switch {
	case strings.HasPrefix(rest, "A"):
		rest = rest[1:]
	case strings.HasPrefix(rest, "D"):
		sign = -1
		rest = rest[1:]
	}

	var hours, minutes, seconds, millis int
	var err error

	parts := strings.Split(rest, ":")
	switch len(parts) {
	case 3:
		if hours, err = strconv.Atoi(parts[0]); err != nil {
			return 0, &OffsetError{Spec: spec, Err: err}
		}
		if minutes, err = strconv.Atoi(parts[1]); err != nil {
			return 0, &OffsetError{Spec: spec, Err: err}
		}
		if seconds, millis, err = parseSeconds(parts[2]); err != nil {
			return 0, &OffsetError{Spec: spec, Err: err}
		}
	case 2:
		if minutes, err = strconv.Atoi(parts[0]); err != nil {
			return 0, &OffsetError{Spec: spec, Err: err}
		}
		if seconds, millis, err = parseSeconds(parts[1]); err != nil {
			return 0, &OffsetError{Spec: spec, Err: err}
		}
	case 1:
		if seconds, millis, err = parseSeconds(parts[0]); err != nil {
			return 0, &OffsetError{Spec: spec, Err: err}
		}
	default:
		return 0, &OffsetError{Spec: spec}
	}

	total := hours*msPerHour + minutes*msPerMinute + seconds*msPerSecond + millis

	return Offset(sign * total), nil
}

// seconds segment with an optional ,ms suffix
func parseSeconds(s string) (seconds, millis int, err error) {
	secPart, msPart, hasMillis := strings.Cut(s, ",")

	seconds, err = strconv.Atoi(secPart)
	if err != nil {
		return 0, 0, err
	}
	if hasMillis {
		millis, err = strconv.Atoi(msPart)
		if err != nil {
			return 0, 0, err
		}
	}

	return seconds, millis, nil
}
