// Package parsererror defines the error taxonomy for table normalization.
// Structural failures (SchemaError) abort a single conversion; value-level
// failures never surface as errors, they degrade in place and are reported
// through frame.CoercionStats.
package parsererror

import (
	"errors"
	"fmt"
	"strings"
)

// SchemaError indicates that no acceptable column could be resolved for a
// required canonical field. Downstream aggregation is meaningless without a
// valid shape, so this is fatal to the single normalization call.
type SchemaError struct {
	Field   string   // canonical field that could not be resolved, e.g. "date"
	Columns []string // column names that were actually present
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("no usable %s column found (columns: %s)",
		e.Field, strings.Join(e.Columns, ", "))
}

// IsSchemaError reports whether err is (or wraps) a SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}

// ValidationError indicates that an input file is not eligible for the
// pipeline it was handed to, e.g. a payroll export routed to the spending
// normalizer.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// RuleError indicates a malformed classification ruleset. Callers degrade to
// the default category rather than failing the conversion.
type RuleError struct {
	Path string
	Err  error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("invalid category ruleset %s: %v", e.Path, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}
