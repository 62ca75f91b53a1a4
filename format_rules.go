package fluentval

import (
	"encoding/base64"
	"net/netip"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	emailRegex        = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@([A-Za-z0-9][-A-Za-z0-9]*\.)+[A-Za-z]{2,}$`)
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	numericRegex      = regexp.MustCompile(`^[0-9]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	hexRegex          = regexp.MustCompile(`^#?[a-fA-F0-9]+$`)
	hexColorRegex     = regexp.MustCompile(`^#?([a-fA-F0-9]{6}|[a-fA-F0-9]{3})$`)
	asciiRegex        = regexp.MustCompile(`^[\x00-\x7F]*$`)
	camelCaseRegex    = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
	pascalCaseRegex   = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
	snakeCaseRegex    = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$|^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$`)
	kebabCaseRegex    = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)
	macAddressRegex   = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}([0-9A-Fa-f]{2})$|^([0-9A-Fa-f]{4}\.){2}[0-9A-Fa-f]{4}$|^[0-9A-Fa-f]{12}$`)
	nonDigitRegex     = regexp.MustCompile(`[^\d]`)

	// International phone formats: optional country and area code, several
	// grouping conventions, optional extension.
	phoneRegex = regexp.MustCompile(
		`^(?:\+\d{1,4}[\s\-.]?)?` +
			`(?:\(?\d{1,5}\)?[\s\-.]?)?` +
			`(?:` +
			`\d{3}[\s\-.]?\d{3}[\s\-.]?\d{4}` +
			`|\d{3}[\s\-.]?\d{4}` +
			`|\d{4}[\s\-.]?\d{3}[\s\-.]?\d{4}` +
			`|\d{2,3}[\s\-.]?\d{3,4}[\s\-.]?\d{3,4}` +
			`|\d{1,2}(?:[\s\-.]\d{2}){3,4}` +
			`|\d{6,}` +
			`)` +
			`(?:\s?(?:ext|x|ext\.)\s?\d{1,5})?$`)

	urlRegex = regexp.MustCompile(
		`(?i)^(https?|ftp)://` +
			`(?:(?:\d{1,3}\.){3}\d{1,3}` +
			`|\[[0-9a-fA-F:]+\]` +
			`|(?:(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}|localhost)` +
			`)` +
			`(?::\d{1,5})?` +
			`(?:/[^?#]*)?` +
			`(?:\?[^#]*)?` +
			`(?:#.*)?$`)
)

// Email requires a syntactically valid email address.
func (c *RuleChain[T]) Email() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && emailRegex.MatchString(s)
	}, "must be a valid email address")
}

// URL requires a valid http, https or ftp URL.
func (c *RuleChain[T]) URL() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		if !ok {
			return false
		}
		s = strings.TrimSpace(s)
		if s == "" || len(s) > 2048 {
			return false
		}
		return urlRegex.MatchString(s)
	}, "must be a valid URL")
}

// IsAlpha requires the string to contain only letters.
func (c *RuleChain[T]) IsAlpha() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && alphaRegex.MatchString(s)
	}, "must contain only letters")
}

// IsNumeric requires the string to contain only digits.
func (c *RuleChain[T]) IsNumeric() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && numericRegex.MatchString(s)
	}, "must contain only digits")
}

// IsAlphanumeric requires the string to contain only letters and digits.
func (c *RuleChain[T]) IsAlphanumeric() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && alphanumericRegex.MatchString(s)
	}, "must contain only letters and digits")
}

// IsHexadecimal requires a hexadecimal string, optionally prefixed with '#'.
func (c *RuleChain[T]) IsHexadecimal() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && hexRegex.MatchString(s)
	}, "must be a valid hexadecimal value")
}

// IsBase64 requires a decodable base64 string. Data URLs
// ("data:...;base64,....") are unwrapped before decoding.
func (c *RuleChain[T]) IsBase64() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		if !ok {
			return false
		}
		s = strings.TrimSpace(s)
		if strings.HasPrefix(s, "data:") {
			if _, payload, found := strings.Cut(s, ";base64,"); found {
				s = payload
			}
		}
		_, err := base64.StdEncoding.DecodeString(s)
		return err == nil
	}, "must be a valid Base64 encoded string")
}

// IsUUID requires a parseable UUID in any of the standard textual forms.
func (c *RuleChain[T]) IsUUID() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		if !ok {
			return false
		}
		_, err := uuid.Parse(s)
		return err == nil
	}, "must be a valid UUID")
}

// IsHexColor requires a 3- or 6-digit hex color, '#' optional.
func (c *RuleChain[T]) IsHexColor() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && hexColorRegex.MatchString(s)
	}, "must be a valid hex color code")
}

// IsASCII requires the string to contain only ASCII characters.
func (c *RuleChain[T]) IsASCII() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && asciiRegex.MatchString(s)
	}, "must contain only ASCII characters")
}

// IsCamelCase requires camelCase: leading lowercase letter, no separators.
func (c *RuleChain[T]) IsCamelCase() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && camelCaseRegex.MatchString(s)
	}, "must be in camelCase format")
}

// IsPascalCase requires PascalCase: leading uppercase letter, no separators.
func (c *RuleChain[T]) IsPascalCase() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && pascalCaseRegex.MatchString(s)
	}, "must be in PascalCase format")
}

// IsSnakeCase requires snake_case (or SCREAMING_SNAKE_CASE).
func (c *RuleChain[T]) IsSnakeCase() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && snakeCaseRegex.MatchString(s)
	}, "must be in snake_case format")
}

// IsKebabCase requires kebab-case.
func (c *RuleChain[T]) IsKebabCase() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && kebabCaseRegex.MatchString(s)
	}, "must be in kebab-case format")
}

// Matches requires the whole string to match the pattern. The pattern is
// compiled when the rule is declared; an invalid pattern is a wiring bug and
// panics at construction time.
func (c *RuleChain[T]) Matches(pattern string) ChainStep[T] {
	return c.MatchesRegexp(regexp.MustCompile(pattern))
}

// MatchesRegexp is Matches for a pre-compiled pattern.
func (c *RuleChain[T]) MatchesRegexp(re *regexp.Regexp) ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && matchesFully(re, s)
	}, "must match pattern: "+re.String())
}

// ContainsPattern requires the pattern to occur somewhere in the string.
func (c *RuleChain[T]) ContainsPattern(pattern string) ChainStep[T] {
	re := regexp.MustCompile(pattern)
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && re.MatchString(s)
	}, "must contain pattern: "+pattern)
}

// DoesNotMatchPattern rejects strings fully matching the pattern. A nil or
// non-text value trivially does not match and passes.
func (c *RuleChain[T]) DoesNotMatchPattern(pattern string) ChainStep[T] {
	re := regexp.MustCompile(pattern)
	return c.add(func(v value) bool {
		s, ok := v.text()
		if !ok {
			return true
		}
		return !matchesFully(re, s)
	}, "must not match pattern: "+pattern)
}

// matchesFully anchors the pattern to the whole input.
func matchesFully(re *regexp.Regexp, s string) bool {
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}

// IsPhoneNumber requires a plausible phone number: 6-20 digits overall in
// one of the common international grouping formats.
func (c *RuleChain[T]) IsPhoneNumber() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && isValidPhoneNumber(s)
	}, "must be a valid phone number")
}

func isValidPhoneNumber(phone string) bool {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return false
	}

	digits := len(nonDigitRegex.ReplaceAllString(trimmed, ""))
	if digits < 6 || digits > 20 {
		return false
	}
	return phoneRegex.MatchString(trimmed)
}

// IsIPAddress requires a valid IPv4 or IPv6 address.
func (c *RuleChain[T]) IsIPAddress() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		if !ok {
			return false
		}
		_, err := netip.ParseAddr(s)
		return err == nil
	}, "must be a valid IP address")
}

// IsIPv4 requires a valid dotted-quad IPv4 address.
func (c *RuleChain[T]) IsIPv4() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		if !ok {
			return false
		}
		addr, err := netip.ParseAddr(s)
		return err == nil && addr.Is4()
	}, "must be a valid IPv4 address")
}

// IsIPv6 requires a valid IPv6 address (IPv4-mapped forms included).
func (c *RuleChain[T]) IsIPv6() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		if !ok {
			return false
		}
		addr, err := netip.ParseAddr(s)
		return err == nil && !addr.Is4()
	}, "must be a valid IPv6 address")
}

// IsMACAddress requires a MAC address in colon, dash, dotted or bare form.
func (c *RuleChain[T]) IsMACAddress() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && macAddressRegex.MatchString(s)
	}, "must be a valid MAC address")
}
