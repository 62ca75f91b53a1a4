package fluentval

import (
	"math/big"
	"regexp"
	"strings"
)

// Check-digit arithmetic for standardized identifiers. These helpers are
// pure and deterministic; the rule factories below are thin adapters that
// fail closed for non-text values.

var (
	digitsRegex     = regexp.MustCompile(`^\d+$`)
	ibanShapeRegex  = regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z0-9]+$`)
	bicRegex        = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
	issnRegex       = regexp.MustCompile(`^\d{4}-\d{3}[\dX]$`)
	whitespaceRegex = regexp.MustCompile(`\s+`)

	ibanModulus = big.NewInt(97)
)

// validLuhn reports whether the digit string passes the Luhn check: from the
// rightmost digit, every second digit is doubled (minus 9 when above 9) and
// the total must divide by 10. Whitespace is ignored; any other non-digit
// fails.
func validLuhn(number string) bool {
	cleaned := whitespaceRegex.ReplaceAllString(number, "")
	if !digitsRegex.MatchString(cleaned) {
		return false
	}

	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		d := int(cleaned[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// validIBAN implements the ISO 13616 mod-97 check: rearrange the first four
// characters to the end, expand letters to two-digit ordinals (A=10..Z=35)
// and require the resulting integer to be ≡ 1 (mod 97). The digit string can
// reach 68 characters, hence big.Int.
func validIBAN(iban string) bool {
	cleaned := strings.ToUpper(whitespaceRegex.ReplaceAllString(iban, ""))
	if len(cleaned) < 15 || len(cleaned) > 34 {
		return false
	}
	if !ibanShapeRegex.MatchString(cleaned) {
		return false
	}

	rearranged := cleaned[4:] + cleaned[:4]
	var numeric strings.Builder
	for i := 0; i < len(rearranged); i++ {
		ch := rearranged[i]
		if ch >= 'A' && ch <= 'Z' {
			numeric.WriteByte('0' + (ch-'A'+10)/10)
			numeric.WriteByte('0' + (ch-'A'+10)%10)
		} else {
			numeric.WriteByte(ch)
		}
	}

	n, ok := new(big.Int).SetString(numeric.String(), 10)
	if !ok {
		return false
	}
	return new(big.Int).Mod(n, ibanModulus).Int64() == 1
}

// validISBN10 checks the weighted mod-11 sum of a 10-character ISBN; the
// final position may be 'X' (value 10). Hyphens are stripped first.
func validISBN10(isbn string) bool {
	cleaned := strings.ReplaceAll(isbn, "-", "")
	if len(cleaned) != 10 {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		ch := cleaned[i]
		if ch < '0' || ch > '9' {
			return false
		}
		sum += int(ch-'0') * (10 - i)
	}

	switch last := cleaned[9]; {
	case last == 'X':
		sum += 10
	case last >= '0' && last <= '9':
		sum += int(last - '0')
	default:
		return false
	}
	return sum%11 == 0
}

// validISBN13 checks the alternating 1/3-weighted sum of a 13-digit ISBN
// against its trailing check digit. Hyphens are stripped first.
func validISBN13(isbn string) bool {
	cleaned := strings.ReplaceAll(isbn, "-", "")
	if len(cleaned) != 13 || !digitsRegex.MatchString(cleaned) {
		return false
	}

	sum := 0
	for i := 0; i < 12; i++ {
		d := int(cleaned[i] - '0')
		if i%2 == 0 {
			sum += d
		} else {
			sum += d * 3
		}
	}

	check := (10 - sum%10) % 10
	return check == int(cleaned[12]-'0')
}

// validRoutingNumber checks the ABA 3-7-1 weighted checksum of a US bank
// routing number.
func validRoutingNumber(number string) bool {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(number, " ", ""), "-", "")
	if len(cleaned) != 9 || !digitsRegex.MatchString(cleaned) {
		return false
	}

	weights := [9]int{3, 7, 1, 3, 7, 1, 3, 7, 1}
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(cleaned[i]-'0') * weights[i]
	}
	return sum%10 == 0
}

// CreditCard requires a number that passes the Luhn check.
func (c *RuleChain[T]) CreditCard() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && validLuhn(s)
	}, "must be a valid credit card number")
}

// IsIBAN requires a valid International Bank Account Number; spaces in the
// conventional display grouping are ignored.
func (c *RuleChain[T]) IsIBAN() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && validIBAN(s)
	}, "must be a valid IBAN")
}

// IsBIC requires a valid 8- or 11-character BIC/SWIFT code.
func (c *RuleChain[T]) IsBIC() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && bicRegex.MatchString(s)
	}, "must be a valid BIC/SWIFT code")
}

// IsISBN requires a valid ISBN-10 or ISBN-13, with or without hyphens.
func (c *RuleChain[T]) IsISBN() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && (validISBN10(s) || validISBN13(s))
	}, "must be a valid ISBN")
}

// IsISSN requires a valid ISSN ("NNNN-NNNC", check character may be X).
func (c *RuleChain[T]) IsISSN() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && issnRegex.MatchString(s)
	}, "must be a valid ISSN")
}

// IsRoutingNumber requires a valid US ABA routing number.
func (c *RuleChain[T]) IsRoutingNumber() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		return ok && validRoutingNumber(s)
	}, "must be a valid ABA routing number")
}
