package coerce

import (
	"fmt"
	"testing"
	"time"
)

type recordingReporter struct {
	infos    []string
	warnings []string
	errs     []string
}

func (r *recordingReporter) Infof(format string, args ...any) {
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}

func (r *recordingReporter) Warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func (r *recordingReporter) Errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func TestToBoolRecognizedTokens(t *testing.T) {
	coercer := New(&recordingReporter{})

	truthy := []string{"true", "True", "TRUE", "1", "t", "T", " true "}
	for _, input := range truthy {
		if !coercer.ToBool(input) {
			t.Fatalf("expected %q to be true", input)
		}
	}

	falsy := []string{"", "false", "0", "no", "yes", "2", "truthy", "on"}
	for _, input := range falsy {
		if coercer.ToBool(input) {
			t.Fatalf("expected %q to be false", input)
		}
	}
}

func TestToIntDefaultsOnFailure(t *testing.T) {
	reporter := &recordingReporter{}
	coercer := New(reporter)

	if got := coercer.ToInt("stock", "42"); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if got := coercer.ToInt("stock", " 7 "); got != 7 {
		t.Fatalf("expected trimmed parse, got %d", got)
	}
	if len(reporter.warnings) != 0 {
		t.Fatalf("did not expect warnings for valid input, got %v", reporter.warnings)
	}

	for _, input := range []string{"", "abc", "1.5", "1e3"} {
		if got := coercer.ToInt("stock", input); got != 0 {
			t.Fatalf("expected 0 for %q, got %d", input, got)
		}
	}
	if len(reporter.warnings) != 4 {
		t.Fatalf("expected 4 warnings, got %d", len(reporter.warnings))
	}
}

func TestToFloatDefaultsOnFailure(t *testing.T) {
	reporter := &recordingReporter{}
	coercer := New(reporter)

	if got := coercer.ToFloat("price", "19.99"); got != 19.99 {
		t.Fatalf("expected 19.99, got %v", got)
	}
	if got := coercer.ToFloat("price", "abc"); got != 0 {
		t.Fatalf("expected 0 for unparseable input, got %v", got)
	}
	if len(reporter.warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(reporter.warnings))
	}
}

func TestToTimestampLayouts(t *testing.T) {
	coercer := New(&recordingReporter{})

	cases := map[string]time.Time{
		"2024-03-01":           time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		"2024-03-01 10:30:00":  time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		"2024-03-01T10:30:00Z": time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
	}
	for input, want := range cases {
		got := coercer.ToTimestamp("created_at", input)
		if !got.Equal(want) {
			t.Fatalf("timestamp %q: expected %v, got %v", input, want, got)
		}
	}
}

func TestToTimestampInvalidYieldsZero(t *testing.T) {
	reporter := &recordingReporter{}
	coercer := New(reporter)

	if got := coercer.ToTimestamp("created_at", "not-a-date"); !got.IsZero() {
		t.Fatalf("expected zero time for invalid input, got %v", got)
	}
	if len(reporter.warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(reporter.warnings))
	}

	// Empty input is the absent-value case, not a parse failure.
	if got := coercer.ToTimestamp("created_at", ""); !got.IsZero() {
		t.Fatalf("expected zero time for empty input, got %v", got)
	}
	if len(reporter.warnings) != 1 {
		t.Fatalf("did not expect a warning for empty input, got %v", reporter.warnings)
	}
}
