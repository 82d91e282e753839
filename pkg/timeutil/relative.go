// Package timeutil renders task timestamps for people.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

// FromMillis converts an epoch-milliseconds timestamp.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// Relative describes ts as seen at now: "just now", "5 min ago", "3h ago" and
// "2d ago" up to a week, then an absolute date carrying the year only when it
// differs from now's. A zero ts renders as "".
func Relative(ts, now time.Time) string {
	if ts.IsZero() {
		return ""
	}
	diff := now.Sub(ts)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%d min ago", int(diff/time.Minute))
	case diff < day:
		return fmt.Sprintf("%dh ago", int(diff/time.Hour))
	case diff < 7*day:
		return fmt.Sprintf("%dd ago", int(diff/day))
	}
	ts = ts.In(now.Location())
	if ts.Year() != now.Year() {
		return ts.Format("2 Jan 2006, 15:04")
	}
	return ts.Format("2 Jan, 15:04")
}

// RelativeMillis is Relative for epoch-milliseconds; 0 renders as "".
func RelativeMillis(ms int64, now time.Time) string {
	if ms == 0 {
		return ""
	}
	return Relative(FromMillis(ms), now)
}

var agePattern = regexp.MustCompile(`^(\d+)(m|h|d|w)`)

var ageUnits = map[string]time.Duration{
	"m": time.Minute,
	"h": time.Hour,
	"d": day,
	"w": 7 * day,
}

// ParseAge parses an age such as "90m", "3d" or "1w2d" for filtering by
// creation time.
func ParseAge(input string) (time.Duration, error) {
	rest := strings.ToLower(strings.TrimSpace(input))
	if rest == "" {
		return 0, fmt.Errorf("empty age")
	}
	var total time.Duration
	for rest != "" {
		m := agePattern.FindStringSubmatch(rest)
		if m == nil {
			return 0, fmt.Errorf("invalid age segment %q", rest)
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid age value %q: %w", m[1], err)
		}
		total += time.Duration(n) * ageUnits[m[2]]
		rest = rest[len(m[0]):]
	}
	if total <= 0 {
		return 0, fmt.Errorf("age must be greater than zero")
	}
	return total, nil
}
