// Package timefmt renders and parses the clock strings used by timestamps
// and caption timecodes.
package timefmt

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatSeconds converts a second offset to zero-padded "MM:SS".
func FormatSeconds(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// ParseClock converts "MM:SS" or "HH:MM:SS" to whole seconds.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 2:
		minutes, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("invalid minutes %q: %w", parts[0], err)
		}
		seconds, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("invalid seconds %q: %w", parts[1], err)
		}
		return minutes*60 + seconds, nil
	case 3:
		hours, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("invalid hours %q: %w", parts[0], err)
		}
		minutes, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("invalid minutes %q: %w", parts[1], err)
		}
		seconds, err := strconv.Atoi(parts[2])
		if err != nil {
			return 0, fmt.Errorf("invalid seconds %q: %w", parts[2], err)
		}
		return hours*3600 + minutes*60 + seconds, nil
	default:
		return 0, fmt.Errorf("invalid time format %q", s)
	}
}

// ParseTimecode converts a caption timecode ("HH:MM:SS,mmm") to seconds.
// Caption sources are not controlled by this service, so malformed input
// yields 0 instead of an error.
func ParseTimecode(s string) float64 {
	parts := strings.Split(strings.Replace(s, ",", ".", 1), ":")
	if len(parts) != 3 {
		return 0
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0
	}
	return float64(hours)*3600 + float64(minutes)*60 + seconds
}
