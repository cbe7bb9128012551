package timeutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Define errors
var (
	// ErrInvalidFormat is returned when a duration string contains no valid tokens
	ErrInvalidFormat = errors.New("invalid duration format")

	// ErrOutOfRange is returned when a duration exceeds MaxSeconds
	ErrOutOfRange = errors.New("duration out of range")
)

// MaxSeconds caps parsed durations at ten years. Keeps absurd inputs like
// "9223372036854775807d" from overflowing the int64 total.
const MaxSeconds int64 = 10 * 365 * 86400

// tokenPattern matches one <integer><unit> token, units: s, m, h, d
var tokenPattern = regexp.MustCompile(`(\d+)([smhd])`)

// unit multipliers in seconds
var multipliers = map[string]int64{
	"s": 1,
	"m": 60,
	"h": 3600,
	"d": 86400,
}

// ParseDuration parses a human-entered duration string like "30s", "5m", "2h",
// "1d" or any concatenation such as "1d12h30m" into a number of seconds.
// Matching is case-insensitive and text between tokens is ignored, but a string
// with no tokens at all fails with ErrInvalidFormat. A result of zero (e.g.
// "0s") parses successfully; callers decide whether zero is acceptable.
func ParseDuration(s string) (int64, error) {
	matches := tokenPattern.FindAllStringSubmatch(strings.ToLower(s), -1)
	if len(matches) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	var total int64
	for _, m := range matches {
		value, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}

		multiplier := multipliers[m[2]]
		if value > MaxSeconds/multiplier {
			return 0, fmt.Errorf("%w: %q", ErrOutOfRange, s)
		}

		total += value * multiplier
		if total > MaxSeconds {
			return 0, fmt.Errorf("%w: %q", ErrOutOfRange, s)
		}
	}

	return total, nil
}

// FormatRemaining formats a number of seconds as a compact human-readable
// string like "1d 12h 30m 15s". Zero components are omitted; zero or negative
// input yields "0s".
func FormatRemaining(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}

	days := seconds / 86400
	seconds %= 86400
	hours := seconds / 3600
	seconds %= 3600
	minutes := seconds / 60
	seconds %= 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}

	return strings.Join(parts, " ")
}

// DiscordTimestamp formats a time as a Discord timestamp token that renders in
// each viewer's local time zone. Format types: t (short time), T (long time),
// d (short date), D (long date), f (short date/time), F (long date/time),
// R (relative).
func DiscordTimestamp(t time.Time, formatType string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), formatType)
}

// Formats holds the display variants for a giveaway deadline
type Formats struct {
	// Absolute is a plain UTC timestamp string
	Absolute string

	// DiscordAbsolute renders as a short date/time in the viewer's time zone
	DiscordAbsolute string

	// DiscordLong renders as a long date/time
	DiscordLong string

	// DiscordRelative renders as relative time ("in 2 hours")
	DiscordRelative string

	// DiscordTime renders as a short time
	DiscordTime string

	// DiscordDate renders as a short date
	DiscordDate string

	// Compact combines relative and short time for inline display
	Compact string
}

// EndTimeFormats produces the set of display strings for a deadline. Purely a
// function of the end time.
func EndTimeFormats(endTime time.Time) Formats {
	relative := DiscordTimestamp(endTime, "R")
	shortTime := DiscordTimestamp(endTime, "t")

	return Formats{
		Absolute:        endTime.UTC().Format("2006-01-02 15:04:05 UTC"),
		DiscordAbsolute: DiscordTimestamp(endTime, "f"),
		DiscordLong:     DiscordTimestamp(endTime, "F"),
		DiscordRelative: relative,
		DiscordTime:     shortTime,
		DiscordDate:     DiscordTimestamp(endTime, "d"),
		Compact:         fmt.Sprintf("%s (%s)", relative, shortTime),
	}
}
