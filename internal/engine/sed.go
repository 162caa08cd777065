// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
	"time"
)

// sedEngine pipes the input through `sed -E` with the user's script and
// returns the transformed stream. A failing script (sed exits non-zero) is a
// syntax error: with input on stdin there is nothing else for sed to reject.
type sedEngine struct {
	profile *Profile
	binary  string
	timeout time.Duration
}

func newSedEngine(profile *Profile, binary string, timeout time.Duration) *sedEngine {
	return &sedEngine{profile: profile, binary: binary, timeout: timeout}
}

func (e *sedEngine) Profile() *Profile { return e.profile }

func (e *sedEngine) Available() bool { return binaryOnPath(e.binary) }

func (e *sedEngine) Evaluate(ctx context.Context, req Request) (*Result, error) {
	res := &Result{Profile: e.profile.ID}
	if req.Pattern == "" {
		return res, nil
	}

	out, err := runCommand(ctx, e.timeout, e.binary, req.Input, "-E", "--", req.Pattern)
	if err != nil {
		return nil, err
	}
	if out.ExitCode != 0 {
		return nil, syntaxError(-1, "%s", firstStderrLine(out.Stderr, "sed rejected the script"))
	}

	res.Output = out.Stdout
	return res, nil
}
