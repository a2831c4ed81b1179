package seismic

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the layout of date and time joined by a single space.
const TimestampLayout = "2006-01-02 15:04:05"

// MinTimestamp is substituted for timestamps that fail to parse, so such
// events sort before any real one and fall outside every sane year range.
var MinTimestamp = time.Date(-262144, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParseNumber accepts a JSON number literal or a JSON string holding a number.
// The result is always finite.
func ParseNumber(raw json.RawMessage) (float64, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0, fmt.Errorf("%w: missing value", ErrInvalidNumber)
	}

	if s[0] == '"' {
		var str string
		if err := json.Unmarshal([]byte(s), &str); err != nil {
			return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, s)
		}
		s = strings.TrimSpace(str)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidNumber, s)
	}
	return v, nil
}

// Timestamp is the outcome of parsing an event's date and time. An invalid
// Timestamp keeps the original text and reports MinTimestamp as its time.
type Timestamp struct {
	t        time.Time
	original string
	valid    bool
}

// ParseTimestamp parses "YYYY-MM-DD HH:MM:SS" as UTC. It never fails; check Valid.
func ParseTimestamp(s string) Timestamp {
	t, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
	if err != nil {
		return Timestamp{t: MinTimestamp, original: s}
	}
	return Timestamp{t: t, original: s, valid: true}
}

// Time returns the parsed time, or MinTimestamp when parsing failed.
func (ts Timestamp) Time() time.Time {
	if !ts.valid {
		return MinTimestamp
	}
	return ts.t
}

// Valid reports whether the original text parsed.
func (ts Timestamp) Valid() bool { return ts.valid }

// Original returns the text the timestamp was parsed from.
func (ts Timestamp) Original() string { return ts.original }

// ParseYear returns the integer before the first '-' in a YYYY-MM-DD date.
func ParseYear(date string) (int, error) {
	prefix, _, _ := strings.Cut(date, "-")
	year, err := strconv.Atoi(strings.TrimSpace(prefix))
	if err != nil {
		return 0, fmt.Errorf("invalid year in date %q: %w", date, err)
	}
	return year, nil
}
