// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
	"regexp"
)

// goRegexEngine matches with Go's native regexp package. RE2 guarantees
// linear-time matching, so no timeout is applied; validation against the
// profile's feature set happens before compilation so dialect mismatches get
// a pointed error instead of an opaque compile failure.
type goRegexEngine struct {
	profile *Profile
}

func newGoRegexEngine(profile *Profile) *goRegexEngine {
	return &goRegexEngine{profile: profile}
}

func (e *goRegexEngine) Profile() *Profile { return e.profile }

func (e *goRegexEngine) Available() bool { return true }

func (e *goRegexEngine) Evaluate(_ context.Context, req Request) (*Result, error) {
	res := &Result{Profile: e.profile.ID}
	if req.Pattern == "" {
		return res, nil
	}
	if err := e.profile.Validate(req.Pattern); err != nil {
		return nil, err
	}

	re, err := regexp.Compile("(?m)" + req.Pattern)
	if err != nil {
		return nil, syntaxError(-1, "regex error: %v", unwrapRegexpError(err))
	}

	names := re.SubexpNames()
	for _, idx := range re.FindAllSubmatchIndex([]byte(req.Input), -1) {
		match := Match{}
		for g := 0; g*2+1 < len(idx); g++ {
			start, end := idx[g*2], idx[g*2+1]
			if start < 0 {
				continue // group did not participate in this match
			}
			name := ""
			if g < len(names) {
				name = names[g]
			}
			match.Groups = append(match.Groups, Group{
				Start: start,
				End:   end,
				Value: req.Input[start:end],
				Name:  name,
				Index: g,
			})
		}
		res.Matches = append(res.Matches, match)
	}
	return res, nil
}

// unwrapRegexpError strips regexp.Compile's "error parsing regexp: " prefix,
// which reads poorly inline next to the pattern field.
func unwrapRegexpError(err error) string {
	const prefix = "error parsing regexp: "
	msg := err.Error()
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
