package fluentval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluentval/fluentval"
)

func TestComparisonRules(t *testing.T) {
	t.Parallel()

	t.Run("greater than", func(t *testing.T) {
		build := func(c *fluentval.RuleChain[payload]) { c.GreaterThan(18) }
		assert.True(t, checkRule(build, 19).IsValid())
		assert.True(t, checkRule(build, 18.5).IsValid())
		assert.True(t, checkRule(build, 18).IsNotValid())

		result := checkRule(build, 10)
		require.True(t, result.IsNotValid())
		assert.Equal(t, "must be greater than 18", result.Errors()[0].Message)
	})

	t.Run("greater than or equal to", func(t *testing.T) {
		build := func(c *fluentval.RuleChain[payload]) { c.GreaterThanOrEqualTo(18) }
		assert.True(t, checkRule(build, 18).IsValid())
		assert.True(t, checkRule(build, 100).IsValid())

		result := checkRule(build, 17)
		require.True(t, result.IsNotValid())
		assert.Equal(t, "must be greater than or equal to 18", result.Errors()[0].Message)
	})

	t.Run("less than", func(t *testing.T) {
		build := func(c *fluentval.RuleChain[payload]) { c.LessThan(100) }
		assert.True(t, checkRule(build, 99).IsValid())
		assert.True(t, checkRule(build, 100).IsNotValid())
		assert.Equal(t, "must be less than 100", checkRule(build, 150).Errors()[0].Message)
	})

	t.Run("less than or equal to", func(t *testing.T) {
		build := func(c *fluentval.RuleChain[payload]) { c.LessThanOrEqualTo(100) }
		assert.True(t, checkRule(build, 100).IsValid())
		assert.True(t, checkRule(build, 101).IsNotValid())
	})

	t.Run("inclusive between", func(t *testing.T) {
		build := func(c *fluentval.RuleChain[payload]) { c.InclusiveBetween(1, 10) }
		assert.True(t, checkRule(build, 1).IsValid())
		assert.True(t, checkRule(build, 10).IsValid())
		assert.True(t, checkRule(build, 0).IsNotValid())
		assert.Equal(t, "must be between 1 and 10 (inclusive)", checkRule(build, 11).Errors()[0].Message)
	})

	t.Run("exclusive between", func(t *testing.T) {
		build := func(c *fluentval.RuleChain[payload]) { c.ExclusiveBetween(1, 10) }
		assert.True(t, checkRule(build, 5).IsValid())
		assert.True(t, checkRule(build, 1).IsNotValid())
		assert.True(t, checkRule(build, 10).IsNotValid())
	})

	t.Run("non-numeric shapes fail", func(t *testing.T) {
		nonNumbers := []any{"18", nil, true, []int{18}}
		for _, val := range nonNumbers {
			result := checkRule(func(c *fluentval.RuleChain[payload]) { c.GreaterThan(0) }, val)
			assert.True(t, result.IsNotValid(), "value should fail: %#v", val)
		}
	})

	t.Run("pointer numbers validate like their element", func(t *testing.T) {
		age := 21
		result := checkRule(func(c *fluentval.RuleChain[payload]) { c.GreaterThanOrEqualTo(18) }, &age)
		assert.True(t, result.IsValid())
	})
}

func TestSignRules(t *testing.T) {
	t.Parallel()

	assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsPositive() }, 0.01).IsValid())
	assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsPositive() }, 0).IsNotValid())
	assert.Equal(t, "must be positive",
		checkRule(func(c *fluentval.RuleChain[payload]) { c.IsPositive() }, -1).Errors()[0].Message)

	assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsNegative() }, -0.01).IsValid())
	assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsNegative() }, 0).IsNotValid())

	assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsZero() }, 0).IsValid())
	assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsZero() }, 0.0).IsValid())
	assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsZero() }, 1).IsNotValid())

	assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsNotZero() }, 1).IsValid())
	assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsNotZero() }, 0).IsNotValid())
}

func TestIntegerRules(t *testing.T) {
	t.Parallel()

	t.Run("divisible by", func(t *testing.T) {
		build := func(c *fluentval.RuleChain[payload]) { c.IsDivisibleBy(3) }
		assert.True(t, checkRule(build, 9).IsValid())
		assert.True(t, checkRule(build, 0).IsValid())
		assert.Equal(t, "must be divisible by 3", checkRule(build, 10).Errors()[0].Message)
	})

	t.Run("zero divisor panics", func(t *testing.T) {
		v := fluentval.New[payload]()
		chain := v.RuleFor("field", func(p payload) any { return p.v })
		assert.Panics(t, func() { chain.IsDivisibleBy(0) })
	})

	t.Run("even and odd", func(t *testing.T) {
		assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsEven() }, 4).IsValid())
		assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsEven() }, 5).IsNotValid())
		assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsOdd() }, 5).IsValid())
		assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsOdd() }, 4).IsNotValid())

		// Large int64 values stay exact.
		big := int64(1) << 62
		assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsEven() }, big).IsValid())
		assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsOdd() }, big+1).IsValid())
	})

	t.Run("values without an exact int64 form fail closed", func(t *testing.T) {
		overflowing := []any{
			uint64(math.MaxInt64) + 1,
			uint64(math.MaxUint64),
			math.NaN(),
			math.Inf(1),
			math.Inf(-1),
			1e300,
		}
		for _, val := range overflowing {
			assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsEven() }, val).IsNotValid(),
				"IsEven should fail: %v", val)
			assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsOdd() }, val).IsNotValid(),
				"IsOdd should fail: %v", val)
			assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsDivisibleBy(2) }, val).IsNotValid(),
				"IsDivisibleBy should fail: %v", val)
		}
	})

	t.Run("overflowing uints still compare as numbers", func(t *testing.T) {
		huge := uint64(math.MaxInt64) + 1
		assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.GreaterThan(0) }, huge).IsValid())
		assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsPositive() }, huge).IsValid())
	})
}

func TestRangeRules(t *testing.T) {
	t.Parallel()

	t.Run("port", func(t *testing.T) {
		build := func(c *fluentval.RuleChain[payload]) { c.IsPort() }
		for _, val := range []any{0, 80, 8080, 65535} {
			assert.True(t, checkRule(build, val).IsValid(), "port should pass: %v", val)
		}
		for _, val := range []any{-1, 65536, "8080"} {
			result := checkRule(build, val)
			require.True(t, result.IsNotValid(), "port should fail: %#v", val)
			assert.Equal(t, "must be a valid port number (0-65535)", result.Errors()[0].Message)
		}
	})

	t.Run("percentage", func(t *testing.T) {
		build := func(c *fluentval.RuleChain[payload]) { c.IsPercentage() }
		assert.True(t, checkRule(build, 0).IsValid())
		assert.True(t, checkRule(build, 99.9).IsValid())
		assert.True(t, checkRule(build, 100).IsValid())
		assert.True(t, checkRule(build, 100.1).IsNotValid())
		assert.True(t, checkRule(build, -0.1).IsNotValid())
	})

	t.Run("latitude and longitude", func(t *testing.T) {
		assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsLatitude() }, 52.52).IsValid())
		assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsLatitude() }, -90).IsValid())
		assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsLatitude() }, 90.1).IsNotValid())

		assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsLongitude() }, 13.405).IsValid())
		assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsLongitude() }, 180).IsValid())
		assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsLongitude() }, -180.5).IsNotValid())
	})
}

func TestDecimalPrecision(t *testing.T) {
	t.Parallel()

	build := func(c *fluentval.RuleChain[payload]) { c.DecimalPrecision(2) }
	assert.True(t, checkRule(build, 10.25).IsValid())
	assert.True(t, checkRule(build, 10.0).IsValid())
	assert.True(t, checkRule(build, 10).IsValid())

	result := checkRule(build, 10.256)
	require.True(t, result.IsNotValid())
	assert.Equal(t, "value cannot have more than 2 decimal places", result.Errors()[0].Message)
}

func TestByteSizeRules(t *testing.T) {
	t.Parallel()

	assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.MaxSizeInBytes(1000) }, 1000).IsValid())
	assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.MaxSizeInBytes(1000) }, 1001).IsNotValid())

	result := checkRule(func(c *fluentval.RuleChain[payload]) { c.MaxSizeInKB(10) }, 10*1024+1)
	require.True(t, result.IsNotValid())
	assert.Equal(t, "must be at most 10 KB", result.Errors()[0].Message)

	result = checkRule(func(c *fluentval.RuleChain[payload]) { c.MaxSizeInMB(5) }, 6*1024*1024)
	require.True(t, result.IsNotValid())
	assert.Equal(t, "must be at most 5 MB", result.Errors()[0].Message)

	assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.MaxSizeInGB(1) }, 512*1024*1024).IsValid())
}
