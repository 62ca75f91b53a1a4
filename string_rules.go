package fluentval

import (
	"fmt"
	"strings"
	"unicode"
)

// Length requires the string to be exactly n characters long.
func (c *RuleChain[T]) Length(n int) ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && len(s) == n
	}, fmt.Sprintf("must be exactly %d characters long", n))
}

// LengthBetween requires the string length to fall in [min, max].
func (c *RuleChain[T]) LengthBetween(min, max int) ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && len(s) >= min && len(s) <= max
	}, fmt.Sprintf("must be between %d and %d characters long", min, max))
}

// MinLength requires the string to have at least n characters.
func (c *RuleChain[T]) MinLength(n int) ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && len(s) >= n
	}, fmt.Sprintf("must be at least %d characters long", n))
}

// MaxLength requires the string to have at most n characters.
func (c *RuleChain[T]) MaxLength(n int) ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && len(s) <= n
	}, fmt.Sprintf("must be at most %d characters long", n))
}

// StartsWith requires the string to begin with prefix.
func (c *RuleChain[T]) StartsWith(prefix string) ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && strings.HasPrefix(s, prefix)
	}, fmt.Sprintf("must start with '%s'", prefix))
}

// EndsWith requires the string to end with suffix.
func (c *RuleChain[T]) EndsWith(suffix string) ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && strings.HasSuffix(s, suffix)
	}, fmt.Sprintf("must end with '%s'", suffix))
}

// ContainsOnly requires every character of the string to appear in allowed.
func (c *RuleChain[T]) ContainsOnly(allowed string) ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		if !ok {
			return false
		}
		for _, r := range s {
			if !strings.ContainsRune(allowed, r) {
				return false
			}
		}
		return true
	}, "must contain only these characters: "+allowed)
}

// DoesNotContainAny rejects strings holding any character from forbidden.
func (c *RuleChain[T]) DoesNotContainAny(forbidden string) ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && !strings.ContainsAny(s, forbidden)
	}, "must not contain any of these characters: "+forbidden)
}

// HasMinWords requires at least n whitespace-separated words.
func (c *RuleChain[T]) HasMinWords(n int) ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && len(strings.Fields(s)) >= n
	}, fmt.Sprintf("must contain at least %d words", n))
}

// HasMaxWords requires at most n whitespace-separated words.
func (c *RuleChain[T]) HasMaxWords(n int) ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && len(strings.Fields(s)) <= n
	}, fmt.Sprintf("must contain at most %d words", n))
}

// IsUpperCase requires the string to equal its uppercase form.
func (c *RuleChain[T]) IsUpperCase() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && s == strings.ToUpper(s)
	}, "must be in uppercase")
}

// IsLowerCase requires the string to equal its lowercase form.
func (c *RuleChain[T]) IsLowerCase() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && s == strings.ToLower(s)
	}, "must be in lowercase")
}

// ContainsNoWhitespace rejects strings with any whitespace character.
func (c *RuleChain[T]) ContainsNoWhitespace() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		if !ok {
			return false
		}
		return !strings.ContainsFunc(s, unicode.IsSpace)
	}, "must not contain whitespace")
}
