// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"rexi/internal/logger"
)

// DefaultTimeout bounds a single external evaluation. Pathological patterns
// (catastrophic backtracking in grep -P, runaway AWK loops) get killed rather
// than hanging the session.
const DefaultTimeout = 5 * time.Second

// commandOutput is the raw outcome of one external engine invocation.
// Engines interpret the exit code themselves: for grep, exit 1 simply means
// "no match".
type commandOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// lookPath is swappable in tests.
var lookPath = exec.LookPath

// binaryOnPath reports whether the named binary can be invoked.
func binaryOnPath(binary string) bool {
	_, err := lookPath(binary)
	return err == nil
}

// runCommand invokes an external engine binary with the given stdin, bounded
// by timeout. It returns a *Error only for failures that preclude an exit
// code: missing binary, timeout, or cancellation of a superseded evaluation
// (reported as the context's error).
func runCommand(ctx context.Context, timeout time.Duration, binary string, stdin string, args ...string) (*commandOutput, error) {
	if !binaryOnPath(binary) {
		return nil, unavailableError(binary)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	logger.Debug("engine invocation finished",
		"binary", binary, "duration", time.Since(start), "err", err)

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return nil, &Error{
			Kind:    ErrTimeout,
			Message: "evaluation timed out after " + timeout.String(),
			Offset:  -1,
		}
	case ctx.Err() != nil:
		// Superseded by a newer keystroke; the caller discards this.
		return nil, ctx.Err()
	}

	out := &commandOutput{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, runtimeError("failed to run %s: %v", binary, err)
		}
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			out.ExitCode = status.ExitStatus()
		} else {
			out.ExitCode = exitErr.ExitCode()
		}
	}
	return out, nil
}

// firstStderrLine trims an engine's stderr down to a single displayable line.
func firstStderrLine(stderr, fallback string) string {
	for _, line := range strings.Split(stderr, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return fallback
}
