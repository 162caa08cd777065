// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// awkVariants are probed in preference order.
var awkVariants = []string{"gawk", "mawk", "awk"}

// DetectAwk returns the first AWK interpreter found on PATH, or "" when none
// is installed.
func DetectAwk() string {
	for _, variant := range awkVariants {
		if binaryOnPath(variant) {
			return variant
		}
	}
	return ""
}

// AwkVariants reports the availability of each known AWK interpreter.
func AwkVariants() map[string]bool {
	found := make(map[string]bool, len(awkVariants))
	for _, variant := range awkVariants {
		found[variant] = binaryOnPath(variant)
	}
	return found
}

// fieldProgram is the generated AWK program used for the field-breakdown
// pane. For every input record it emits one machine-parseable line:
//
//	RECORD:<NR>|NF:<NF>|FULL:<$0>|FIELDS:<i>:<$i>,...
//
// Literal pipes in record text are escaped as \| (and commas within fields as
// \,) so the line can be split on unescaped separators when parsed back.
const fieldProgram = `{
	printf "RECORD:%d|NF:%d|FULL:", NR, NF
	full = $0
	gsub(/\|/, "\\|", full)
	printf "%s", full
	printf "|FIELDS:"
	for (i = 1; i <= NF; i++) {
		f = $i
		gsub(/\|/, "\\|", f)
		gsub(/,/, "\\,", f)
		printf "%d:%s", i, f
		if (i < NF) printf ","
	}
	printf "\n"
}`

// awkEngine runs the user's AWK program for the output pane and a generated
// field-breakdown program for the fields pane, both through the detected
// interpreter binary.
type awkEngine struct {
	profile *Profile
	binary  string
	timeout time.Duration
}

func newAwkEngine(profile *Profile, binary string, timeout time.Duration) *awkEngine {
	if binary == "" {
		binary = DetectAwk()
	}
	if binary == "" {
		binary = "awk" // keeps error messages concrete when nothing is installed
	}
	return &awkEngine{profile: profile, binary: binary, timeout: timeout}
}

func (e *awkEngine) Profile() *Profile { return e.profile }

func (e *awkEngine) Available() bool { return binaryOnPath(e.binary) }

func (e *awkEngine) Evaluate(ctx context.Context, req Request) (*Result, error) {
	res := &Result{Profile: e.profile.ID}

	// The field breakdown is shown even before the user types a program.
	records, err := e.fieldBreakdown(ctx, req.Input)
	if err != nil {
		return nil, err
	}
	res.Records = records

	if req.Pattern == "" {
		return res, nil
	}

	out, err := runCommand(ctx, e.timeout, e.binary, req.Input, "--", req.Pattern)
	if err != nil {
		return nil, err
	}
	if out.ExitCode != 0 {
		return nil, classifyAwkFailure(out)
	}
	res.Output = out.Stdout
	return res, nil
}

// classifyAwkFailure maps a non-zero awk exit to the error taxonomy. gawk and
// mawk both exit 2 for compile errors and runtime fatals (division by zero,
// bad getline); only the stderr text tells them apart.
func classifyAwkFailure(out *commandOutput) *Error {
	if out.ExitCode == 2 && strings.Contains(strings.ToLower(out.Stderr), "syntax error") {
		return syntaxError(-1, "%s", firstStderrLine(out.Stderr, "awk rejected the program"))
	}
	return runtimeError("%s", firstStderrLine(out.Stderr, "awk program failed"))
}

func (e *awkEngine) fieldBreakdown(ctx context.Context, input string) ([]Record, error) {
	out, err := runCommand(ctx, e.timeout, e.binary, input, "--", fieldProgram)
	if err != nil {
		return nil, err
	}
	if out.ExitCode != 0 {
		return nil, runtimeError("field breakdown failed: %s",
			firstStderrLine(out.Stderr, "awk exited with status "+strconv.Itoa(out.ExitCode)))
	}

	var records []Record
	for _, line := range strings.Split(strings.TrimRight(out.Stdout, "\n"), "\n") {
		if line == "" {
			continue
		}
		rec, ok := parseRecordLine(line)
		if !ok {
			continue // tolerate lines the breakdown program mangled
		}
		records = append(records, rec)
	}
	return records, nil
}

// parseRecordLine decodes one fieldProgram output line back into a Record.
func parseRecordLine(line string) (Record, bool) {
	rec := Record{Number: -1, NF: -1}
	sawFull := false

	for _, part := range splitUnescaped(line, '|') {
		switch {
		case strings.HasPrefix(part, "RECORD:"):
			n, err := strconv.Atoi(part[len("RECORD:"):])
			if err != nil {
				return Record{}, false
			}
			rec.Number = n
		case strings.HasPrefix(part, "NF:"):
			n, err := strconv.Atoi(part[len("NF:"):])
			if err != nil {
				return Record{}, false
			}
			rec.NF = n
		case strings.HasPrefix(part, "FULL:"):
			rec.Full = unescapePipes(part[len("FULL:"):])
			sawFull = true
		case strings.HasPrefix(part, "FIELDS:"):
			body := part[len("FIELDS:"):]
			if body == "" {
				continue
			}
			for _, f := range splitUnescaped(body, ',') {
				sep := strings.IndexByte(f, ':')
				if sep < 0 {
					return Record{}, false
				}
				idx, err := strconv.Atoi(f[:sep])
				if err != nil {
					return Record{}, false
				}
				rec.Fields = append(rec.Fields, Field{
					Index: idx,
					Value: unescapePipes(f[sep+1:]),
				})
			}
		}
	}

	if rec.Number < 0 || rec.NF < 0 || !sawFull {
		return Record{}, false
	}
	return rec, true
}

// splitUnescaped splits s on sep, honoring backslash escapes of sep.
func splitUnescaped(s string, sep byte) []string {
	var parts []string
	var cur strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && s[i+1] == sep {
			cur.WriteByte('\\')
			cur.WriteByte(sep)
			i++
			continue
		}
		if s[i] == sep {
			parts = append(parts, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(s[i])
	}
	parts = append(parts, cur.String())
	return parts
}

func unescapePipes(s string) string {
	s = strings.ReplaceAll(s, `\|`, "|")
	return strings.ReplaceAll(s, `\,`, ",")
}
