// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func awkProfile() *Profile {
	for _, p := range defaultProfiles() {
		if p.ID == ProfileAwk {
			return p
		}
	}
	return nil
}

func TestParseRecordLine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		line string
		want Record
		ok   bool
	}{
		{
			name: "three fields",
			line: "RECORD:1|NF:3|FULL:one two three|FIELDS:1:one,2:two,3:three",
			want: Record{
				Number: 1,
				NF:     3,
				Full:   "one two three",
				Fields: []Field{{1, "one"}, {2, "two"}, {3, "three"}},
			},
			ok: true,
		},
		{
			name: "escaped pipe in record",
			line: `RECORD:2|NF:1|FULL:a\|b|FIELDS:1:a\|b`,
			want: Record{
				Number: 2,
				NF:     1,
				Full:   "a|b",
				Fields: []Field{{1, "a|b"}},
			},
			ok: true,
		},
		{
			name: "escaped comma in field",
			line: `RECORD:3|NF:1|FULL:a,b|FIELDS:1:a\,b`,
			want: Record{
				Number: 3,
				NF:     1,
				Full:   "a,b",
				Fields: []Field{{1, "a,b"}},
			},
			ok: true,
		},
		{
			name: "empty record",
			line: "RECORD:4|NF:0|FULL:|FIELDS:",
			want: Record{Number: 4, NF: 0, Full: ""},
			ok:   true,
		},
		{
			name: "field value containing colon",
			line: "RECORD:5|NF:1|FULL:a:b|FIELDS:1:a:b",
			want: Record{
				Number: 5,
				NF:     1,
				Full:   "a:b",
				Fields: []Field{{1, "a:b"}},
			},
			ok: true,
		},
		{name: "missing record number", line: "NF:1|FULL:x|FIELDS:1:x", ok: false},
		{name: "garbage", line: "not a record line", ok: false},
		{name: "non-numeric NR", line: "RECORD:x|NF:1|FULL:x|FIELDS:1:x", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := parseRecordLine(tt.line)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSplitUnescaped(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"a", "b", "c"}, splitUnescaped("a|b|c", '|'))
	assert.Equal(t, []string{`a\|b`, "c"}, splitUnescaped(`a\|b|c`, '|'))
	assert.Equal(t, []string{""}, splitUnescaped("", '|'))
	assert.Equal(t, []string{"a", ""}, splitUnescaped("a|", '|'))
}

func TestAwkEngineUnavailable(t *testing.T) {
	t.Parallel()
	eng := newAwkEngine(awkProfile(), "definitely-not-an-awk-binary", time.Second)
	assert.False(t, eng.Available())

	res, err := eng.Evaluate(context.Background(), Request{Pattern: "{print}", Input: "x\n"})
	require.Error(t, err)
	assert.Nil(t, res)

	var engErr *Error
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, ErrUnavailable, engErr.Kind)
}

func TestAwkEngineFieldBreakdown(t *testing.T) {
	t.Parallel()
	if DetectAwk() == "" {
		t.Skip("no awk interpreter installed")
	}
	eng := newAwkEngine(awkProfile(), "", 5*time.Second)

	res, err := eng.Evaluate(context.Background(), Request{Input: "one two\nthree four five\n"})
	require.NoError(t, err)
	require.Len(t, res.Records, 2)

	assert.Equal(t, 1, res.Records[0].Number)
	assert.Equal(t, 2, res.Records[0].NF)
	assert.Equal(t, "one two", res.Records[0].Full)
	assert.Equal(t, []Field{{1, "one"}, {2, "two"}}, res.Records[0].Fields)

	assert.Equal(t, 3, res.Records[1].NF)
	assert.Equal(t, "five", res.Records[1].Fields[2].Value)
}

func TestAwkEngineProgramOutput(t *testing.T) {
	t.Parallel()
	if DetectAwk() == "" {
		t.Skip("no awk interpreter installed")
	}
	eng := newAwkEngine(awkProfile(), "", 5*time.Second)

	res, err := eng.Evaluate(context.Background(), Request{
		Pattern: "{print $1}",
		Input:   "one two\nthree four\n",
	})
	require.NoError(t, err)
	assert.Equal(t, "one\nthree\n", res.Output)
	assert.NotEmpty(t, res.Records)
}

func TestAwkEngineSyntaxError(t *testing.T) {
	t.Parallel()
	if DetectAwk() == "" {
		t.Skip("no awk interpreter installed")
	}
	eng := newAwkEngine(awkProfile(), "", 5*time.Second)

	res, err := eng.Evaluate(context.Background(), Request{Pattern: "{print $1", Input: "x\n"})
	require.Error(t, err)
	assert.Nil(t, res)

	var engErr *Error
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, ErrSyntax, engErr.Kind)
}

func TestAwkEngineRuntimeFatalIsRuntimeError(t *testing.T) {
	t.Parallel()
	if DetectAwk() == "" {
		t.Skip("no awk interpreter installed")
	}
	eng := newAwkEngine(awkProfile(), "", 5*time.Second)

	// Compiles fine, dies at runtime; must not be reported as a syntax error.
	res, err := eng.Evaluate(context.Background(), Request{Pattern: "{print 1/0}", Input: "x\n"})
	require.Error(t, err)
	assert.Nil(t, res)

	var engErr *Error
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, ErrRuntime, engErr.Kind)
}

func TestClassifyAwkFailure(t *testing.T) {
	t.Parallel()

	err := classifyAwkFailure(&commandOutput{
		ExitCode: 2,
		Stderr:   "gawk: cmd. line:1: syntax error at or near }\n",
	})
	assert.Equal(t, ErrSyntax, err.Kind)

	// gawk exits 2 for runtime fatals too; the stderr text decides.
	err = classifyAwkFailure(&commandOutput{
		ExitCode: 2,
		Stderr:   "gawk: cmd. line:1: fatal: division by zero attempted\n",
	})
	assert.Equal(t, ErrRuntime, err.Kind)

	err = classifyAwkFailure(&commandOutput{ExitCode: 1})
	assert.Equal(t, ErrRuntime, err.Kind)
	assert.Equal(t, "awk program failed", err.Message)
}

func TestAwkEngineTimeout(t *testing.T) {
	t.Parallel()
	if DetectAwk() == "" {
		t.Skip("no awk interpreter installed")
	}
	eng := newAwkEngine(awkProfile(), "", 200*time.Millisecond)

	res, err := eng.Evaluate(context.Background(), Request{
		Pattern: "BEGIN{while(1){}}",
		Input:   "x\n",
	})
	require.Error(t, err)
	assert.Nil(t, res)

	var engErr *Error
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, ErrTimeout, engErr.Kind)
}

func TestAwkEngineCancelledContext(t *testing.T) {
	t.Parallel()
	if DetectAwk() == "" {
		t.Skip("no awk interpreter installed")
	}
	eng := newAwkEngine(awkProfile(), "", 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := eng.Evaluate(ctx, Request{Pattern: "{print}", Input: "x\n"})
	require.Error(t, err)
	assert.Nil(t, res)
	// A superseded evaluation surfaces the raw context error so the caller
	// can discard it silently instead of displaying it.
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDetectAwkVariants(t *testing.T) {
	t.Parallel()
	variants := AwkVariants()
	assert.Len(t, variants, 3)
	for _, name := range []string{"gawk", "mawk", "awk"} {
		_, present := variants[name]
		assert.True(t, present, "variant %s should be probed", name)
	}
}
