package fluentval

import (
	"slices"
	"strings"
)

// FieldError describes a single validation failure for one property.
type FieldError struct {
	Property string
	Message  string
}

// Result collects validation failures in evaluation order. A Result is
// produced by Validator.Validate and is append-only: errors are recorded in
// the order chains and steps were declared, and never reordered or removed.
type Result struct {
	errors []FieldError
}

func (r *Result) addError(property, message string) {
	r.errors = append(r.errors, FieldError{Property: property, Message: message})
}

// IsValid reports whether no rule failed.
func (r *Result) IsValid() bool {
	return len(r.errors) == 0
}

// IsNotValid reports whether at least one rule failed.
func (r *Result) IsNotValid() bool {
	return !r.IsValid()
}

// Errors returns the recorded failures in evaluation order. The returned
// slice is a copy; mutating it does not affect the Result.
func (r *Result) Errors() []FieldError {
	return slices.Clone(r.errors)
}

// Err converts the result into an error value. It returns nil for a valid
// result, otherwise an Errors aggregating every recorded failure. How an
// invalid result is reported (HTTP status, log entry, panic) is up to the
// caller; the engine itself never throws for data-driven failures.
func (r *Result) Err() error {
	if r.IsValid() {
		return nil
	}
	return Errors(slices.Clone(r.errors))
}

// String renders the result for logs and test output.
func (r *Result) String() string {
	if r.IsValid() {
		return "validation: valid"
	}

	var b strings.Builder
	b.WriteString("validation: invalid")
	for _, e := range r.errors {
		b.WriteString("\n - ")
		b.WriteString(e.Property)
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}
