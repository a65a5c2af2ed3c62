package subtitle

import (
	"path/filepath"
	"strings"
)

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

// FormatForPath picks the format from the file extension. Anything
// that is not clearly WebVTT is treated as SRT, so arbitrary text
// files keep SRT timing-line semantics.
func FormatForPath(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".vtt" {
		return FormatVTT
	}
	return FormatSRT
}
