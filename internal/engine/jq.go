// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
	"time"
)

// jq exit codes per its manual: 2 for usage/system errors (including input
// that fails to parse as JSON), 3 for a filter compile error.
const (
	jqExitUsage   = 2
	jqExitCompile = 3
)

// jqEngine applies the user's filter to the JSON input via the jq binary. An
// empty filter defaults to identity so the document renders as soon as a JSON
// input is loaded.
type jqEngine struct {
	profile *Profile
	binary  string
	timeout time.Duration
}

func newJqEngine(profile *Profile, binary string, timeout time.Duration) *jqEngine {
	return &jqEngine{profile: profile, binary: binary, timeout: timeout}
}

func (e *jqEngine) Profile() *Profile { return e.profile }

func (e *jqEngine) Available() bool { return binaryOnPath(e.binary) }

func (e *jqEngine) Evaluate(ctx context.Context, req Request) (*Result, error) {
	res := &Result{Profile: e.profile.ID}

	filter := req.Pattern
	if filter == "" {
		filter = "."
	}

	out, err := runCommand(ctx, e.timeout, e.binary, req.Input, "--", filter)
	if err != nil {
		return nil, err
	}

	switch out.ExitCode {
	case 0:
		res.Output = out.Stdout
		return res, nil
	case jqExitCompile:
		return nil, syntaxError(-1, "%s", firstStderrLine(out.Stderr, "jq rejected the filter"))
	default:
		return nil, runtimeError("%s", firstStderrLine(out.Stderr, "jq failed"))
	}
}
