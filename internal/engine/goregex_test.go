// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goRegexForTest(t *testing.T) Engine {
	t.Helper()
	r := NewRegistry(Options{})
	eng, ok := r.Engine(ProfileGoRegex)
	require.True(t, ok)
	return eng
}

func TestGoRegexDigits(t *testing.T) {
	t.Parallel()
	eng := goRegexForTest(t)

	res, err := eng.Evaluate(context.Background(), Request{Pattern: `\d+`, Input: "abc123def456"})
	require.NoError(t, err)
	require.Len(t, res.Matches, 2)

	first := res.Matches[0].Groups[0]
	second := res.Matches[1].Groups[0]
	assert.Equal(t, 3, first.Start)
	assert.Equal(t, 6, first.End)
	assert.Equal(t, "123", first.Value)
	assert.Equal(t, 9, second.Start)
	assert.Equal(t, 12, second.End)
	assert.Equal(t, "456", second.Value)
}

func TestGoRegexInvalidPatternReturnsError(t *testing.T) {
	t.Parallel()
	eng := goRegexForTest(t)

	res, err := eng.Evaluate(context.Background(), Request{Pattern: `[`, Input: "abc"})
	require.Error(t, err)
	assert.Nil(t, res)

	var engErr *Error
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, ErrSyntax, engErr.Kind)
	assert.NotEmpty(t, engErr.Message)
}

func TestGoRegexNoMatchIsEmptyNotError(t *testing.T) {
	t.Parallel()
	eng := goRegexForTest(t)

	res, err := eng.Evaluate(context.Background(), Request{Pattern: `xyz`, Input: "abc"})
	require.NoError(t, err)
	assert.Empty(t, res.Matches)
	assert.True(t, res.Empty())
}

func TestGoRegexEmptyPattern(t *testing.T) {
	t.Parallel()
	eng := goRegexForTest(t)

	res, err := eng.Evaluate(context.Background(), Request{Pattern: "", Input: "abc"})
	require.NoError(t, err)
	assert.True(t, res.Empty())
}

func TestGoRegexNamedGroups(t *testing.T) {
	t.Parallel()
	eng := goRegexForTest(t)

	res, err := eng.Evaluate(context.Background(), Request{
		Pattern: `(?P<year>\d{4})-(?P<month>\d{2})`,
		Input:   "released 2024-06",
	})
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)

	groups := res.Matches[0].Groups
	require.Len(t, groups, 3)
	assert.Equal(t, 0, groups[0].Index)
	assert.Equal(t, "2024-06", groups[0].Value)
	assert.Equal(t, "year", groups[1].Name)
	assert.Equal(t, "2024", groups[1].Value)
	assert.Equal(t, "month", groups[2].Name)
	assert.Equal(t, "06", groups[2].Value)
}

func TestGoRegexUnparticipatingGroupSkipped(t *testing.T) {
	t.Parallel()
	eng := goRegexForTest(t)

	res, err := eng.Evaluate(context.Background(), Request{Pattern: `(a)|(b)`, Input: "b"})
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)

	// Group 1 did not participate; only the full match and group 2 appear.
	groups := res.Matches[0].Groups
	require.Len(t, groups, 2)
	assert.Equal(t, 0, groups[0].Index)
	assert.Equal(t, 2, groups[1].Index)
}

func TestGoRegexMultilineAnchors(t *testing.T) {
	t.Parallel()
	eng := goRegexForTest(t)

	res, err := eng.Evaluate(context.Background(), Request{Pattern: `^b.*$`, Input: "alpha\nbeta\nbravo"})
	require.NoError(t, err)
	assert.Len(t, res.Matches, 2)
}

func TestGoRegexRejectsDisabledFeatures(t *testing.T) {
	t.Parallel()
	eng := goRegexForTest(t)

	res, err := eng.Evaluate(context.Background(), Request{Pattern: `a(?=b)`, Input: "ab"})
	require.Error(t, err)
	assert.Nil(t, res)

	var engErr *Error
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, ErrSyntax, engErr.Kind)
	assert.Equal(t, 1, engErr.Offset, "offset should point at the lookahead token")
}

func TestGoRegexSpansAreOrderedAndBounded(t *testing.T) {
	t.Parallel()
	eng := goRegexForTest(t)

	input := "one 1 two 22 three 333"
	res, err := eng.Evaluate(context.Background(), Request{Pattern: `\d+`, Input: input})
	require.NoError(t, err)

	prevStart := -1
	for _, m := range res.Matches {
		for _, g := range m.Groups {
			assert.GreaterOrEqual(t, g.Start, 0)
			assert.LessOrEqual(t, g.End, len(input))
			assert.LessOrEqual(t, g.Start, g.End)
		}
		require.NotEmpty(t, m.Groups)
		assert.Greater(t, m.Groups[0].Start, prevStart)
		prevStart = m.Groups[0].Start
	}
}
