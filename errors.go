package fluentval

import (
	"errors"
	"fmt"
	"strings"
)

// Errors is the error form of an invalid Result, preserving field order.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Property, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any failure was recorded for the property.
func (e Errors) Has(property string) bool {
	for _, fe := range e {
		if fe.Property == property {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for the property, in evaluation order.
func (e Errors) Get(property string) []string {
	var messages []string
	for _, fe := range e {
		if fe.Property == property {
			messages = append(messages, fe.Message)
		}
	}
	return messages
}

// Fields returns the distinct property names with failures, first-seen order.
func (e Errors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, fe := range e {
		if !seen[fe.Property] {
			fields = append(fields, fe.Property)
			seen[fe.Property] = true
		}
	}
	return fields
}

// AsErrors extracts validation failures from an error chain, or nil.
func AsErrors(err error) Errors {
	if err == nil {
		return nil
	}

	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

// IsErrors reports whether the error chain carries validation failures.
func IsErrors(err error) bool {
	if err == nil {
		return false
	}

	var verrs Errors
	return errors.As(err, &verrs)
}
