// SPDX-License-Identifier: Apache-2.0

// Package engine wraps the external pattern-evaluation engines (Go's regexp
// package, POSIX grep and sed, an AWK interpreter, the jq binary) behind a
// uniform interface so the UI never branches on engine identity. Each profile
// maps to exactly one Engine implementation.
package engine

import (
	"context"
	"fmt"
)

// ErrorKind classifies evaluation failures. All of them are recoverable; the
// session keeps running and the user keeps editing.
type ErrorKind int

const (
	// ErrSyntax means the pattern or script failed to compile or parse.
	ErrSyntax ErrorKind = iota
	// ErrUnavailable means the external binary backing the profile is not
	// installed on this system.
	ErrUnavailable
	// ErrTimeout means the evaluation exceeded its deadline.
	ErrTimeout
	// ErrRuntime means the engine started but failed (non-zero exit,
	// stderr output, invalid input document, ...).
	ErrRuntime
)

func (k ErrorKind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax error"
	case ErrUnavailable:
		return "engine unavailable"
	case ErrTimeout:
		return "timeout"
	case ErrRuntime:
		return "runtime error"
	default:
		return "unknown error"
	}
}

// Error is the structured failure every Engine reports instead of panicking.
// Offset, when >= 0, is a byte offset into the pattern string suitable for
// pointing a caret at the offending position.
type Error struct {
	Kind    ErrorKind
	Message string
	Offset  int
}

func (e *Error) Error() string { return e.Message }

func syntaxError(offset int, format string, args ...any) *Error {
	return &Error{Kind: ErrSyntax, Message: fmt.Sprintf(format, args...), Offset: offset}
}

func runtimeError(format string, args ...any) *Error {
	return &Error{Kind: ErrRuntime, Message: fmt.Sprintf(format, args...), Offset: -1}
}

func unavailableError(binary string) *Error {
	return &Error{
		Kind:    ErrUnavailable,
		Message: fmt.Sprintf("%s not found; install it to use this profile", binary),
		Offset:  -1,
	}
}

// Request is one immutable evaluation: a pattern (or script) applied to an
// input payload. A new Request is created for every debounced edit.
type Request struct {
	Pattern string
	Input   string
}

// Group is a single captured range. Offsets are byte offsets into the input.
// Index 0 is the full match; names are empty for unnamed groups.
type Group struct {
	Start int
	End   int
	Value string
	Name  string
	Index int
}

// Match is one engine match with its capture groups. Groups[0] is always the
// full match when present.
type Match struct {
	Groups []Group
}

// Field is one AWK field ($i) within a record.
type Field struct {
	Index int
	Value string
}

// Record is one input line as AWK sees it.
type Record struct {
	Number int // NR
	NF     int
	Full   string // $0
	Fields []Field
}

// Result is the polymorphic outcome of an evaluation. Regex-family engines
// fill Matches; the AWK engine fills Records plus the program's Output;
// transform engines (jq, sed) fill Output only.
type Result struct {
	Profile string
	Matches []Match
	Records []Record
	Output  string
}

// Empty reports whether the result carries nothing to display.
func (r *Result) Empty() bool {
	return r == nil || (len(r.Matches) == 0 && len(r.Records) == 0 && r.Output == "")
}

// Engine evaluates patterns for exactly one profile. Implementations must
// never panic on malformed input: compile and parse failures come back as a
// *Error. The context bounds external-process evaluations; a superseded
// evaluation is cancelled through it.
type Engine interface {
	// Profile returns the profile this engine serves.
	Profile() *Profile

	// Available reports whether the backing engine can be invoked on this
	// system. Native engines are always available; external ones require
	// their binary on PATH.
	Available() bool

	// Evaluate runs the request. An empty pattern yields an empty Result
	// and no error. The returned error, when engine-originated, is *Error.
	Evaluate(ctx context.Context, req Request) (*Result, error)
}
