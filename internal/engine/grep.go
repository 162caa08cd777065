// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// grepEngine backs the grep (ERE) and pcre profiles by shelling out to grep
// with --only-matching --byte-offset, then parsing the offset-prefixed match
// lines back into spans. grep reports no capture groups, so every match is a
// single full-match group.
type grepEngine struct {
	profile     *Profile
	binary      string
	dialectFlag string // "-E" or "-P"
	timeout     time.Duration
}

func newGrepEngine(profile *Profile, binary, dialectFlag string, timeout time.Duration) *grepEngine {
	return &grepEngine{profile: profile, binary: binary, dialectFlag: dialectFlag, timeout: timeout}
}

func (e *grepEngine) Profile() *Profile { return e.profile }

func (e *grepEngine) Available() bool { return binaryOnPath(e.binary) }

func (e *grepEngine) Evaluate(ctx context.Context, req Request) (*Result, error) {
	res := &Result{Profile: e.profile.ID}
	if req.Pattern == "" {
		return res, nil
	}
	if err := e.profile.Validate(req.Pattern); err != nil {
		return nil, err
	}

	// -a forces text mode so inputs with odd bytes still report offsets.
	out, err := runCommand(ctx, e.timeout, e.binary, req.Input,
		e.dialectFlag, "--only-matching", "--byte-offset", "-a", "--", req.Pattern)
	if err != nil {
		return nil, err
	}

	switch out.ExitCode {
	case 0:
		// matches below
	case 1:
		return res, nil // grep exit 1 means no match, not failure
	default:
		return nil, classifyGrepFailure(e.binary, out)
	}

	matches, perr := parseGrepMatches(out.Stdout, req.Input)
	if perr != nil {
		return nil, perr
	}
	res.Matches = matches
	return res, nil
}

// classifyGrepFailure maps a failing grep exit to the error taxonomy. Exit 2
// is grep's "trouble" status; with input on stdin that is a rejected pattern.
// Anything higher is not defined by grep and is reported as a runtime failure.
func classifyGrepFailure(binary string, out *commandOutput) *Error {
	if out.ExitCode == 2 {
		return syntaxError(-1, "%s", firstStderrLine(out.Stderr, binary+" rejected the pattern"))
	}
	return runtimeError("%s", firstStderrLine(out.Stderr, binary+" failed"))
}

// parseGrepMatches converts "byteoffset:matchtext" lines into matches. The
// offset always precedes the first colon; the match text itself may contain
// colons. Offsets outside the input are dropped rather than trusted.
func parseGrepMatches(stdout, input string) ([]Match, *Error) {
	var matches []Match
	for _, line := range strings.Split(stdout, "\n") {
		if line == "" {
			continue
		}
		sep := strings.IndexByte(line, ':')
		if sep < 0 {
			return nil, runtimeError("unparseable grep output line: %q", line)
		}
		offset, err := strconv.Atoi(line[:sep])
		if err != nil {
			return nil, runtimeError("bad byte offset in grep output: %q", line[:sep])
		}
		value := line[sep+1:]
		end := offset + len(value)
		if offset < 0 || end > len(input) {
			continue
		}
		matches = append(matches, Match{Groups: []Group{{
			Start: offset,
			End:   end,
			Value: value,
			Index: 0,
		}}})
	}
	return matches, nil
}
