package scoring

import (
	"fmt"
	"strings"
)

// SchemaError reports feature input that does not match the canonical
// schema: missing fields or values not usable as numbers. Client fault.
type SchemaError struct {
	Fields []string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("feature schema: %s: %s", strings.Join(e.Fields, ", "), e.Reason)
}

// ScoringError wraps a classifier invocation failure. Scoring is pure and
// local, so callers never retry; the cause is preserved for logging.
type ScoringError struct {
	Err error
}

func (e *ScoringError) Error() string { return "scoring: " + e.Err.Error() }
func (e *ScoringError) Unwrap() error { return e.Err }
