package fluentval

import (
	"strconv"
	"strings"
	"unicode"
)

// ContainsUppercase requires at least one uppercase letter.
func (c *RuleChain[T]) ContainsUppercase() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && strings.ContainsFunc(s, unicode.IsUpper)
	}, "must contain at least one uppercase letter")
}

// ContainsLowercase requires at least one lowercase letter.
func (c *RuleChain[T]) ContainsLowercase() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && strings.ContainsFunc(s, unicode.IsLower)
	}, "must contain at least one lowercase letter")
}

// ContainsDigit requires at least one decimal digit.
func (c *RuleChain[T]) ContainsDigit() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && strings.ContainsFunc(s, unicode.IsDigit)
	}, "must contain at least one digit")
}

// ContainsSpecialChar requires at least one character that is neither a
// letter nor a digit.
func (c *RuleChain[T]) ContainsSpecialChar() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && strings.ContainsFunc(s, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
	}, "must contain at least one special character")
}

// PasswordMessages holds the message templates used by StrongPassword. The
// length templates support {min} and {max} placeholders.
type PasswordMessages struct {
	MinLength   string
	MaxLength   string
	Uppercase   string
	Lowercase   string
	Digit       string
	SpecialChar string
}

// DefaultPasswordMessages returns the stock StrongPassword wording.
func DefaultPasswordMessages() PasswordMessages {
	return PasswordMessages{
		MinLength:   "Password must be at least {min} characters long",
		MaxLength:   "Password must be at maximum {max} characters long",
		Uppercase:   "Password must contain at least one uppercase letter",
		Lowercase:   "Password must contain at least one lowercase letter",
		Digit:       "Password must contain at least one digit",
		SpecialChar: "Password must contain at least one special character",
	}
}

func (m PasswordMessages) minLength(min int) string {
	return strings.ReplaceAll(m.MinLength, "{min}", strconv.Itoa(min))
}

func (m PasswordMessages) maxLength(max int) string {
	return strings.ReplaceAll(m.MaxLength, "{max}", strconv.Itoa(max))
}

// StrongPassword bundles the standard password policy: length in [min, max]
// plus at least one uppercase letter, lowercase letter, digit and special
// character. Each criterion is its own step, so with the default Continue
// cascade every unmet criterion is reported.
func (c *RuleChain[T]) StrongPassword(min, max int) ChainStep[T] {
	return c.StrongPasswordWithMessages(min, max, DefaultPasswordMessages())
}

// StrongPasswordWithMessages is StrongPassword with caller-supplied wording.
func (c *RuleChain[T]) StrongPasswordWithMessages(min, max int, messages PasswordMessages) ChainStep[T] {
	c.MinLength(min).WithMessage(messages.minLength(min))
	c.MaxLength(max).WithMessage(messages.maxLength(max))
	c.ContainsUppercase().WithMessage(messages.Uppercase)
	c.ContainsLowercase().WithMessage(messages.Lowercase)
	c.ContainsDigit().WithMessage(messages.Digit)
	return c.ContainsSpecialChar().WithMessage(messages.SpecialChar)
}
