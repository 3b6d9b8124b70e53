package reports

import "fmt"

// InvalidFilterError reports a malformed filter value (bad date string,
// out-of-range limit). Surfaced to the caller as a rejected request rather
// than silently corrected.
type InvalidFilterError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// QueryExecutionError wraps a store query failure with the report it was
// issued for. The underlying cause is preserved and never retried here.
type QueryExecutionError struct {
	Report string
	Cause  error
}

func (e *QueryExecutionError) Error() string {
	return fmt.Sprintf("report %s: query failed: %v", e.Report, e.Cause)
}

func (e *QueryExecutionError) Unwrap() error {
	return e.Cause
}
