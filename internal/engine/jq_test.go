// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jqForTest(t *testing.T) Engine {
	t.Helper()
	if !binaryOnPath("jq") {
		t.Skip("jq not installed")
	}
	r := NewRegistry(Options{})
	eng, ok := r.Engine(ProfileJq)
	require.True(t, ok)
	return eng
}

func TestJqFieldAccess(t *testing.T) {
	t.Parallel()
	eng := jqForTest(t)

	res, err := eng.Evaluate(context.Background(), Request{Pattern: ".name", Input: `{"name":"rexi"}`})
	require.NoError(t, err)
	assert.Equal(t, "\"rexi\"\n", res.Output)
}

func TestJqEmptyFilterDefaultsToIdentity(t *testing.T) {
	t.Parallel()
	eng := jqForTest(t)

	res, err := eng.Evaluate(context.Background(), Request{Pattern: "", Input: `{"key": "value"}`})
	require.NoError(t, err)
	assert.Contains(t, res.Output, `"key": "value"`)
}

func TestJqIterate(t *testing.T) {
	t.Parallel()
	eng := jqForTest(t)

	res, err := eng.Evaluate(context.Background(), Request{
		Pattern: ".users[].name",
		Input:   `{"users": [{"name": "Alice"}, {"name": "Bob"}]}`,
	})
	require.NoError(t, err)
	assert.Contains(t, res.Output, `"Alice"`)
	assert.Contains(t, res.Output, `"Bob"`)
}

func TestJqInvalidJSONInput(t *testing.T) {
	t.Parallel()
	eng := jqForTest(t)

	res, err := eng.Evaluate(context.Background(), Request{Pattern: ".", Input: "invalid json"})
	require.Error(t, err)
	assert.Nil(t, res)

	var engErr *Error
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, ErrRuntime, engErr.Kind)
}

func TestJqInvalidFilter(t *testing.T) {
	t.Parallel()
	eng := jqForTest(t)

	res, err := eng.Evaluate(context.Background(), Request{Pattern: ".[", Input: `{"key": "value"}`})
	require.Error(t, err)
	assert.Nil(t, res)

	var engErr *Error
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, ErrSyntax, engErr.Kind)
	assert.NotEmpty(t, engErr.Message)
}

func TestJqMissingBinary(t *testing.T) {
	t.Parallel()
	eng := newJqEngine(profileByID(t, ProfileJq), "definitely-not-jq", time.Second)
	assert.False(t, eng.Available())

	_, err := eng.Evaluate(context.Background(), Request{Pattern: ".", Input: "{}"})
	var engErr *Error
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, ErrUnavailable, engErr.Kind)
}
