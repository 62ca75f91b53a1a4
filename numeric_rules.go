package fluentval

import (
	"fmt"
	"math"
)

// Numeric comparison rules coerce the value to float64 so mixed integer and
// float properties compare uniformly. A non-numeric value fails every rule
// in this file.

// GreaterThan requires value > min (exclusive).
func (c *RuleChain[T]) GreaterThan(min float64) ChainStep[T] {
	return c.add(func(v value) bool {
		n, ok := v.number()
		return ok && n > min
	}, fmt.Sprintf("must be greater than %v", min))
}

// GreaterThanOrEqualTo requires value >= min.
func (c *RuleChain[T]) GreaterThanOrEqualTo(min float64) ChainStep[T] {
	return c.add(func(v value) bool {
		n, ok := v.number()
		return ok && n >= min
	}, fmt.Sprintf("must be greater than or equal to %v", min))
}

// LessThan requires value < max (exclusive).
func (c *RuleChain[T]) LessThan(max float64) ChainStep[T] {
	return c.add(func(v value) bool {
		n, ok := v.number()
		return ok && n < max
	}, fmt.Sprintf("must be less than %v", max))
}

// LessThanOrEqualTo requires value <= max.
func (c *RuleChain[T]) LessThanOrEqualTo(max float64) ChainStep[T] {
	return c.add(func(v value) bool {
		n, ok := v.number()
		return ok && n <= max
	}, fmt.Sprintf("must be less than or equal to %v", max))
}

// InclusiveBetween requires min <= value <= max.
func (c *RuleChain[T]) InclusiveBetween(min, max float64) ChainStep[T] {
	return c.add(func(v value) bool {
		n, ok := v.number()
		return ok && n >= min && n <= max
	}, fmt.Sprintf("must be between %v and %v (inclusive)", min, max))
}

// ExclusiveBetween requires min < value < max.
func (c *RuleChain[T]) ExclusiveBetween(min, max float64) ChainStep[T] {
	return c.add(func(v value) bool {
		n, ok := v.number()
		return ok && n > min && n < max
	}, fmt.Sprintf("must be between %v and %v (exclusive)", min, max))
}

// IsPositive requires value > 0.
func (c *RuleChain[T]) IsPositive() ChainStep[T] {
	return c.add(func(v value) bool {
		n, ok := v.number()
		return ok && n > 0
	}, "must be positive")
}

// IsNegative requires value < 0.
func (c *RuleChain[T]) IsNegative() ChainStep[T] {
	return c.add(func(v value) bool {
		n, ok := v.number()
		return ok && n < 0
	}, "must be negative")
}

// IsZero requires value == 0.
func (c *RuleChain[T]) IsZero() ChainStep[T] {
	return c.add(func(v value) bool {
		n, ok := v.number()
		return ok && n == 0
	}, "must be zero")
}

// IsNotZero requires value != 0.
func (c *RuleChain[T]) IsNotZero() ChainStep[T] {
	return c.add(func(v value) bool {
		n, ok := v.number()
		return ok && n != 0
	}, "must not be zero")
}

// IsDivisibleBy requires the integer form of the value to divide evenly.
// Integer-typed values are exact; floats are truncated first.
func (c *RuleChain[T]) IsDivisibleBy(divisor int64) ChainStep[T] {
	if divisor == 0 {
		panic("fluentval: IsDivisibleBy requires a non-zero divisor")
	}
	return c.add(func(v value) bool {
		n, ok := v.exact()
		return ok && n%divisor == 0
	}, fmt.Sprintf("must be divisible by %d", divisor))
}

// IsEven requires an even integer value.
func (c *RuleChain[T]) IsEven() ChainStep[T] {
	return c.add(func(v value) bool {
		n, ok := v.exact()
		return ok && n%2 == 0
	}, "must be an even number")
}

// IsOdd requires an odd integer value.
func (c *RuleChain[T]) IsOdd() ChainStep[T] {
	return c.add(func(v value) bool {
		n, ok := v.exact()
		return ok && n%2 != 0
	}, "must be an odd number")
}

// IsPort requires a valid TCP/UDP port number.
func (c *RuleChain[T]) IsPort() ChainStep[T] {
	return c.add(func(v value) bool {
		n, ok := v.exact()
		return ok && n >= 0 && n <= 65535
	}, "must be a valid port number (0-65535)")
}

// IsPercentage requires a value in [0, 100].
func (c *RuleChain[T]) IsPercentage() ChainStep[T] {
	return c.add(func(v value) bool {
		n, ok := v.number()
		return ok && n >= 0 && n <= 100
	}, "must be a valid percentage (0-100)")
}

// IsLatitude requires a value in [-90, 90] degrees.
func (c *RuleChain[T]) IsLatitude() ChainStep[T] {
	return c.add(func(v value) bool {
		n, ok := v.number()
		return ok && n >= -90 && n <= 90
	}, "must be a valid latitude (-90 to 90)")
}

// IsLongitude requires a value in [-180, 180] degrees.
func (c *RuleChain[T]) IsLongitude() ChainStep[T] {
	return c.add(func(v value) bool {
		n, ok := v.number()
		return ok && n >= -180 && n <= 180
	}, "must be a valid longitude (-180 to 180)")
}

// DecimalPrecision limits the number of decimal places of a float value,
// preventing sub-cent noise in financial fields. The check multiplies and
// floors in binary floating point, so a few decimal values without an exact
// binary form (1.15, 2.675) are rejected at their nominal precision; callers
// needing exact decimal semantics should validate a string form instead.
func (c *RuleChain[T]) DecimalPrecision(maxDecimals int) ChainStep[T] {
	return c.add(func(v value) bool {
		n, ok := v.number()
		if !ok {
			return false
		}
		multiplier := math.Pow(10, float64(maxDecimals))
		return math.Floor(n*multiplier) == n*multiplier
	}, fmt.Sprintf("value cannot have more than %d decimal places", maxDecimals))
}

// MaxSizeInBytes requires the value to be at most maxBytes.
func (c *RuleChain[T]) MaxSizeInBytes(maxBytes int64) ChainStep[T] {
	return c.add(func(v value) bool {
		n, ok := v.exact()
		return ok && n <= maxBytes
	}, "must be at most "+formatBytes(maxBytes))
}

// MaxSizeInKB requires the value to be at most maxKB kilobytes.
func (c *RuleChain[T]) MaxSizeInKB(maxKB int64) ChainStep[T] {
	return c.MaxSizeInBytes(maxKB * 1024).WithMessage(fmt.Sprintf("must be at most %d KB", maxKB))
}

// MaxSizeInMB requires the value to be at most maxMB megabytes.
func (c *RuleChain[T]) MaxSizeInMB(maxMB int64) ChainStep[T] {
	return c.MaxSizeInBytes(maxMB * 1024 * 1024).WithMessage(fmt.Sprintf("must be at most %d MB", maxMB))
}

// MaxSizeInGB requires the value to be at most maxGB gigabytes.
func (c *RuleChain[T]) MaxSizeInGB(maxGB int64) ChainStep[T] {
	return c.MaxSizeInBytes(maxGB * 1024 * 1024 * 1024).WithMessage(fmt.Sprintf("must be at most %d GB", maxGB))
}

func formatBytes(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d bytes", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%d KB", bytes/1024)
	case bytes < 1024*1024*1024:
		return fmt.Sprintf("%d MB", bytes/(1024*1024))
	default:
		return fmt.Sprintf("%d GB", bytes/(1024*1024*1024))
	}
}
