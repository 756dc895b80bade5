// Package coerce converts raw string fields from delimited files into typed
// values. Every function is total: malformed input degrades to a defined
// fallback and a reporter warning instead of an error, so one bad field never
// blocks a migration run.
package coerce

import (
	"strconv"
	"strings"
	"time"

	"github.com/rpattn/seedloader/internal/report"
)

var timeLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05.000000",
	"2006/01/02",
	"01/02/2006",
	"02/01/2006",
}

// Coercer applies fallback-on-failure conversions, emitting warnings through
// the injected reporter.
type Coercer struct {
	reporter report.Reporter
}

// New creates a Coercer that reports parse warnings to the given reporter.
func New(reporter report.Reporter) *Coercer {
	return &Coercer{reporter: reporter}
}

// ToBool returns true iff the trimmed value case-insensitively matches one of
// the recognized truthy tokens ("true", "1", "t"). Everything else, including
// the empty string, is false. No warning is emitted; unrecognized tokens are a
// defined falsy value, not a parse failure.
func (c *Coercer) ToBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "t":
		return true
	}
	return false
}

// ToInt parses a base-10 integer. Unparseable input yields 0 and a warning.
func (c *Coercer) ToInt(field, raw string) int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		c.reporter.Warnf("field %s: unable to coerce %q to integer, defaulting to 0", field, raw)
		return 0
	}
	return value
}

// ToFloat parses a decimal number. Unparseable input yields 0.0 and a warning.
func (c *Coercer) ToFloat(field, raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		c.reporter.Warnf("field %s: unable to coerce %q to float, defaulting to 0", field, raw)
		return 0
	}
	return value
}

// ToTimestamp parses a date/time string against the recognized layouts. An
// unparseable or empty value yields the zero time.Time, which callers treat as
// the invalid-timestamp marker.
func (c *Coercer) ToTimestamp(field, raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	if raw != "" {
		c.reporter.Warnf("field %s: unrecognized timestamp format %q", field, raw)
	}
	return time.Time{}
}
