package timecode

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeCode
		wantErr bool
	}{
		{"00:00:10,000", TimeCode{0, 0, 10, 0}, false},
		{"01:02:03,004", TimeCode{1, 2, 3, 4}, false},
		// widths are not constrained
		{"1:2:3,4", TimeCode{1, 2, 3, 4}, false},
		{"123:00:00,000", TimeCode{123, 0, 0, 0}, false},
		// WebVTT millisecond separator
		{"00:00:01.500", TimeCode{0, 0, 1, 500}, false},
		// match is anchored at the start, trailing text is ignored
		{"00:00:10,000 --> 00:00:12,000", TimeCode{0, 0, 10, 0}, false},
		{"", TimeCode{}, true},
		{"hello", TimeCode{}, true},
		{"12:34", TimeCode{}, true},
		{"12:34:56", TimeCode{}, true},
		{"x00:00:10,000", TimeCode{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded, want error", tt.input)
				}
				var formatErr *FormatError
				if !errors.As(err, &formatErr) {
					t.Errorf("Parse(%q) error = %v, want *FormatError", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestShift(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		offset  Offset
		want    string
		wantErr bool
	}{
		{"zero offset is identity", "00:00:10,000", 0, "00:00:10,000", false},
		{"advance", "00:00:10,000", 2500, "00:00:12,500", false},
		{"delay", "00:00:10,000", -5000, "00:00:05,000", false},
		{"carry across fields", "00:00:59,999", 1, "00:01:00,000", false},
		{"borrow across fields", "01:00:00,000", -1, "00:59:59,999", false},
		{"to exactly zero", "00:00:00,001", -1, "00:00:00,000", false},
		{"below zero fails", "00:00:00,000", -1, "", true},
		{"hours grow past two digits", "99:59:59,999", 1, "100:00:00,000", false},
		{"large advance", "00:00:00,000", 90 * msPerMinute, "01:30:00,000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}

			got, err := tc.Shift(tt.offset)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Shift(%d) succeeded, want error", tt.offset)
				}
				var negErr *NegativeTimeError
				if !errors.As(err, &negErr) {
					t.Errorf("Shift(%d) error = %v, want *NegativeTimeError", tt.offset, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Shift(%d) failed: %v", tt.offset, err)
			}
			if got.SRT() != tt.want {
				t.Errorf("Shift(%d) = %s, want %s", tt.offset, got.SRT(), tt.want)
			}
		})
	}
}

func TestShiftInverseCancellation(t *testing.T) {
	tc, err := Parse("01:23:45,678")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	forward, err := tc.Shift(4321)
	if err != nil {
		t.Fatalf("forward shift failed: %v", err)
	}
	back, err := forward.Shift(-4321)
	if err != nil {
		t.Fatalf("backward shift failed: %v", err)
	}
	if back != tc {
		t.Errorf("shift round trip = %+v, want %+v", back, tc)
	}
}

func TestFromMillisecondsFieldBounds(t *testing.T) {
	totals := []int{0, 1, 999, 1000, 59999, 60000, 3599999, 3600000, 987654321}

	for _, total := range totals {
		tc := FromMilliseconds(total)
		if tc.Hours != total/msPerHour {
			t.Errorf("FromMilliseconds(%d).Hours = %d, want %d", total, tc.Hours, total/msPerHour)
		}
		if tc.Minutes < 0 || tc.Minutes > 59 {
			t.Errorf("FromMilliseconds(%d).Minutes = %d, out of range", total, tc.Minutes)
		}
		if tc.Seconds < 0 || tc.Seconds > 59 {
			t.Errorf("FromMilliseconds(%d).Seconds = %d, out of range", total, tc.Seconds)
		}
		if tc.Millis < 0 || tc.Millis > 999 {
			t.Errorf("FromMilliseconds(%d).Millis = %d, out of range", total, tc.Millis)
		}
		if tc.totalMillis() != total {
			t.Errorf("FromMilliseconds(%d) flattens back to %d", total, tc.totalMillis())
		}
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		tc      TimeCode
		wantSRT string
		wantVTT string
	}{
		{TimeCode{0, 0, 0, 0}, "00:00:00,000", "00:00:00.000"},
		{TimeCode{1, 2, 3, 4}, "01:02:03,004", "01:02:03.004"},
		{TimeCode{102, 30, 0, 50}, "102:30:00,050", "102:30:00.050"},
	}

	for _, tt := range tests {
		if got := tt.tc.SRT(); got != tt.wantSRT {
			t.Errorf("%+v SRT() = %s, want %s", tt.tc, got, tt.wantSRT)
		}
		if got := tt.tc.VTT(); got != tt.wantVTT {
			t.Errorf("%+v VTT() = %s, want %s", tt.tc, got, tt.wantVTT)
		}
	}
}
