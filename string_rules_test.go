package fluentval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluentval/fluentval"
)

func TestLengthRules(t *testing.T) {
	t.Parallel()

	t.Run("exact length", func(t *testing.T) {
		build := func(c *fluentval.RuleChain[payload]) { c.Length(3) }
		assert.True(t, checkRule(build, "abc").IsValid())
		result := checkRule(build, "ab")
		require.True(t, result.IsNotValid())
		assert.Equal(t, "must be exactly 3 characters long", result.Errors()[0].Message)
	})

	t.Run("length between", func(t *testing.T) {
		build := func(c *fluentval.RuleChain[payload]) { c.LengthBetween(2, 4) }
		assert.True(t, checkRule(build, "ab").IsValid())
		assert.True(t, checkRule(build, "abcd").IsValid())
		assert.True(t, checkRule(build, "a").IsNotValid())
		assert.Equal(t, "must be between 2 and 4 characters long", checkRule(build, "abcde").Errors()[0].Message)
	})

	t.Run("min and max length", func(t *testing.T) {
		assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.MinLength(3) }, "abc").IsValid())
		assert.Equal(t, "must be at least 3 characters long",
			checkRule(func(c *fluentval.RuleChain[payload]) { c.MinLength(3) }, "ab").Errors()[0].Message)

		assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.MaxLength(3) }, "abc").IsValid())
		assert.Equal(t, "must be at most 3 characters long",
			checkRule(func(c *fluentval.RuleChain[payload]) { c.MaxLength(3) }, "abcd").Errors()[0].Message)
	})

	t.Run("non-text shapes fail", func(t *testing.T) {
		for _, val := range []any{nil, 123, []string{"abc"}} {
			result := checkRule(func(c *fluentval.RuleChain[payload]) { c.MinLength(1) }, val)
			assert.True(t, result.IsNotValid(), "value should fail: %#v", val)
		}
	})
}

func TestAffixRules(t *testing.T) {
	t.Parallel()

	build := func(c *fluentval.RuleChain[payload]) { c.StartsWith("ord_") }
	assert.True(t, checkRule(build, "ord_1234").IsValid())
	result := checkRule(build, "1234")
	require.True(t, result.IsNotValid())
	assert.Equal(t, "must start with 'ord_'", result.Errors()[0].Message)

	build = func(c *fluentval.RuleChain[payload]) { c.EndsWith(".csv") }
	assert.True(t, checkRule(build, "export.csv").IsValid())
	result = checkRule(build, "export.json")
	require.True(t, result.IsNotValid())
	assert.Equal(t, "must end with '.csv'", result.Errors()[0].Message)
}

func TestCharacterSetRules(t *testing.T) {
	t.Parallel()

	t.Run("contains only", func(t *testing.T) {
		build := func(c *fluentval.RuleChain[payload]) { c.ContainsOnly("0123456789-") }
		assert.True(t, checkRule(build, "555-0199").IsValid())
		assert.True(t, checkRule(build, "").IsValid())
		result := checkRule(build, "555x0199")
		require.True(t, result.IsNotValid())
		assert.Equal(t, "must contain only these characters: 0123456789-", result.Errors()[0].Message)
	})

	t.Run("does not contain any", func(t *testing.T) {
		build := func(c *fluentval.RuleChain[payload]) { c.DoesNotContainAny("<>&") }
		assert.True(t, checkRule(build, "plain text").IsValid())
		result := checkRule(build, "a < b")
		require.True(t, result.IsNotValid())
		assert.Equal(t, "must not contain any of these characters: <>&", result.Errors()[0].Message)
	})
}

func TestWordCountRules(t *testing.T) {
	t.Parallel()

	build := func(c *fluentval.RuleChain[payload]) { c.HasMinWords(2) }
	assert.True(t, checkRule(build, "two words").IsValid())
	assert.True(t, checkRule(build, "  spaced   out  ").IsValid())
	result := checkRule(build, "single")
	require.True(t, result.IsNotValid())
	assert.Equal(t, "must contain at least 2 words", result.Errors()[0].Message)

	build = func(c *fluentval.RuleChain[payload]) { c.HasMaxWords(3) }
	assert.True(t, checkRule(build, "one two three").IsValid())
	result = checkRule(build, "one two three four")
	require.True(t, result.IsNotValid())
	assert.Equal(t, "must contain at most 3 words", result.Errors()[0].Message)
}

func TestCaseRules(t *testing.T) {
	t.Parallel()

	assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsUpperCase() }, "HELLO 42!").IsValid())
	assert.Equal(t, "must be in uppercase",
		checkRule(func(c *fluentval.RuleChain[payload]) { c.IsUpperCase() }, "Hello").Errors()[0].Message)

	assert.True(t, checkRule(func(c *fluentval.RuleChain[payload]) { c.IsLowerCase() }, "hello 42!").IsValid())
	assert.Equal(t, "must be in lowercase",
		checkRule(func(c *fluentval.RuleChain[payload]) { c.IsLowerCase() }, "Hello").Errors()[0].Message)
}

func TestContainsNoWhitespace(t *testing.T) {
	t.Parallel()

	build := func(c *fluentval.RuleChain[payload]) { c.ContainsNoWhitespace() }
	assert.True(t, checkRule(build, "no-spaces-here").IsValid())

	invalidValues := []any{"has space", "tab\there", "new\nline"}
	for _, val := range invalidValues {
		result := checkRule(build, val)
		require.True(t, result.IsNotValid(), "value should fail: %q", val)
		assert.Equal(t, "must not contain whitespace", result.Errors()[0].Message)
	}
}
