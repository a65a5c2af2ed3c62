package timecode

import "fmt"

// time code text that does not match the H:M:S,mmm shape
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid time format %q", e.Input)
}

// adjustment that would move a time code below zero
type NegativeTimeError struct {
	TimeCode string
	Offset   Offset
}

func (e *NegativeTimeError) Error() string {
	return fmt.Sprintf(
		"adjusting %s by %dms results in negative time",
		e.TimeCode,
		e.Offset,
	)
}

// offset specification whose numeric parts cannot be parsed
type OffsetError struct {
	Spec string
	Err  error
}

func (e *OffsetError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid offset specification %q", e.Spec)
	}
	return fmt.Sprintf("invalid offset specification %q: %v", e.Spec, e.Err)
}

func (e *OffsetError) Unwrap() error {
	return e.Err
}
