package fluentval

import (
	"fmt"
	"reflect"
	"strings"
)

// NotNil requires a present value: a nil interface, nil pointer, nil slice
// or nil map all fail.
func (c *RuleChain[T]) NotNil() ChainStep[T] {
	return c.add(func(v value) bool {
		return !v.isNil()
	}, "must not be null")
}

// IsNil requires an absent value. Useful for fields that must stay unset in
// a given state, typically combined with Unless.
func (c *RuleChain[T]) IsNil() ChainStep[T] {
	return c.add(func(v value) bool {
		return v.isNil()
	}, "must be null")
}

// NotEmpty requires a non-empty value. Strings must have at least one
// character, collections and maps at least one element; any other present
// value passes.
func (c *RuleChain[T]) NotEmpty() ChainStep[T] {
	return c.add(func(v value) bool {
		if v.isNil() {
			return false
		}
		if s, ok := v.text(); ok {
			return s != ""
		}
		if n, ok := v.count(); ok {
			return n > 0
		}
		return true
	}, "must not be empty")
}

// IsEmpty is the inverse of NotEmpty; a nil value counts as empty.
func (c *RuleChain[T]) IsEmpty() ChainStep[T] {
	return c.add(func(v value) bool {
		if v.isNil() {
			return true
		}
		if s, ok := v.text(); ok {
			return s == ""
		}
		if n, ok := v.count(); ok {
			return n == 0
		}
		return false
	}, "must be empty")
}

// NotBlank requires a string with at least one non-whitespace character.
// Non-text present values pass.
func (c *RuleChain[T]) NotBlank() ChainStep[T] {
	return c.add(func(v value) bool {
		if v.isNil() {
			return false
		}
		if s, ok := v.text(); ok {
			return strings.TrimSpace(s) != ""
		}
		return true
	}, "must not be blank")
}

// EqualTo requires the value to deep-equal other. Pointer values are
// compared by their dereferenced element.
func (c *RuleChain[T]) EqualTo(other any) ChainStep[T] {
	return c.add(func(v value) bool {
		return !v.isNil() && reflect.DeepEqual(v.deref, other)
	}, fmt.Sprintf("must be equal to %v", other))
}

// NotEqualTo requires the value to differ from other; nil always differs.
func (c *RuleChain[T]) NotEqualTo(other any) ChainStep[T] {
	return c.add(func(v value) bool {
		return v.isNil() || !reflect.DeepEqual(v.deref, other)
	}, fmt.Sprintf("must not be equal to %v", other))
}

// OneOf requires the value to deep-equal one of the allowed values. This is
// the membership check for enum-like fields.
func (c *RuleChain[T]) OneOf(allowed ...any) ChainStep[T] {
	return c.add(func(v value) bool {
		if v.isNil() {
			return false
		}
		for _, a := range allowed {
			if reflect.DeepEqual(v.deref, a) {
				return true
			}
		}
		return false
	}, fmt.Sprintf("must be one of %v", allowed))
}

// IsTrue requires a boolean true value.
func (c *RuleChain[T]) IsTrue() ChainStep[T] {
	return c.add(func(v value) bool {
		return v.shape == shapeBool && v.boolean
	}, "must be true")
}

// IsFalse requires a boolean false value.
func (c *RuleChain[T]) IsFalse() ChainStep[T] {
	return c.add(func(v value) bool {
		return v.shape == shapeBool && !v.boolean
	}, "must be false")
}
