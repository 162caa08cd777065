// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"sort"
	"strings"
)

// ProfileKind distinguishes engines that report match offsets from engines
// that emit a transformed document.
type ProfileKind int

const (
	KindRegex ProfileKind = iota
	KindTransform
)

// Regex feature identifiers used by profile validation and the features
// editor. They mirror the dialect differences between the backing engines.
const (
	FeatAnchors      = "anchors"
	FeatClasses      = "classes"
	FeatAlternation  = "alternation"
	FeatEscapes      = "escapes"
	FeatQuantifiers  = "quantifiers"
	FeatGroups       = "groups"
	FeatNonCapturing = "non_capturing"
	FeatNamedGroups  = "named_groups"
	FeatBackrefs     = "backreferences"
	FeatLookahead    = "lookahead"
	FeatLookbehind   = "lookbehind"
	FeatAtomic       = "atomic"
	FeatPossessive   = "possessive"
	FeatRecursion    = "recursion"
	FeatUnicodeProps = "unicode_properties"
)

// Profile describes one pattern dialect: which engine backs it and which
// regex features its dialect supports. Transform profiles carry no feature
// set; their scripts are validated by the engine itself.
type Profile struct {
	ID          string
	Name        string
	Description string
	Kind        ProfileKind
	Features    map[string]bool
}

// Has reports whether a regex feature is enabled for this profile.
func (p *Profile) Has(feature string) bool { return p.Features[feature] }

// FeatureSet returns the enabled features in sorted order.
func (p *Profile) FeatureSet() []string {
	out := make([]string, 0, len(p.Features))
	for f, on := range p.Features {
		if on {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

// featureChecks are cheap textual probes for constructs a dialect may not
// support. A full pattern parser would be more precise; the backing engine
// still has the final word at compile time.
var featureChecks = []struct {
	feature string
	tokens  []string
	label   string
}{
	{FeatLookahead, []string{"(?=", "(?!"}, "lookahead"},
	{FeatLookbehind, []string{"(?<=", "(?<!"}, "lookbehind"},
	{FeatAtomic, []string{"(?>"}, "atomic groups"},
	{FeatPossessive, []string{"*+", "++", "?+"}, "possessive quantifiers"},
	{FeatRecursion, []string{"(?R)", "(?0)"}, "recursion"},
	{FeatNamedGroups, []string{"(?P<", "(?<"}, "named groups"},
	{FeatBackrefs, []string{`\1`, `\2`, `\3`, `\4`, `\5`, `\6`, `\7`, `\8`, `\9`}, "backreferences"},
	{FeatUnicodeProps, []string{`\p{`, `\P{`}, "unicode properties"},
}

// Validate rejects patterns that use features disabled in this profile. The
// returned error carries the byte offset of the offending token so the UI can
// point at it. Transform profiles always pass.
func (p *Profile) Validate(pattern string) *Error {
	if p.Kind != KindRegex {
		return nil
	}
	for _, check := range featureChecks {
		if p.Has(check.feature) {
			continue
		}
		for _, tok := range check.tokens {
			// "(?<" also prefixes lookbehind; don't misreport it as a
			// named group when lookbehind is enabled.
			if tok == "(?<" && p.Has(FeatLookbehind) {
				if idx := findNamedGroupToken(pattern); idx >= 0 {
					return syntaxError(idx, "%s are not enabled in the %s profile", check.label, p.Name)
				}
				continue
			}
			if idx := strings.Index(pattern, tok); idx >= 0 {
				return syntaxError(idx, "%s are not enabled in the %s profile", check.label, p.Name)
			}
		}
	}
	return nil
}

// findNamedGroupToken locates a "(?<name>" opener that is not a lookbehind
// assertion, returning -1 when absent.
func findNamedGroupToken(pattern string) int {
	for i := 0; ; {
		idx := strings.Index(pattern[i:], "(?<")
		if idx < 0 {
			return -1
		}
		at := i + idx
		rest := pattern[at+3:]
		if !strings.HasPrefix(rest, "=") && !strings.HasPrefix(rest, "!") {
			return at
		}
		i = at + 3
	}
}

func featureSet(features ...string) map[string]bool {
	set := make(map[string]bool, len(features))
	for _, f := range features {
		set[f] = true
	}
	return set
}

// Profile IDs. ProfileGoRegex is the default.
const (
	ProfileGoRegex = "go-re"
	ProfilePCRE    = "pcre"
	ProfileGrep    = "grep"
	ProfileSed     = "sed"
	ProfileAwk     = "awk"
	ProfileJq      = "jq"
	ProfileCustom  = "custom"
)

var baseFeatures = []string{
	FeatAnchors, FeatClasses, FeatAlternation, FeatEscapes,
	FeatQuantifiers, FeatGroups, FeatNonCapturing,
}

func defaultProfiles() []*Profile {
	return []*Profile{
		{
			ID:          ProfileGoRegex,
			Name:        "Go (RE2)",
			Description: "Go's native regexp package, RE2 syntax",
			Kind:        KindRegex,
			Features: featureSet(append(baseFeatures,
				FeatNamedGroups, FeatUnicodeProps)...),
		},
		{
			ID:          ProfilePCRE,
			Name:        "PCRE",
			Description: "Perl-compatible matching via grep -P",
			Kind:        KindRegex,
			Features: featureSet(append(baseFeatures,
				FeatNamedGroups, FeatBackrefs, FeatLookahead, FeatLookbehind,
				FeatAtomic, FeatPossessive, FeatRecursion, FeatUnicodeProps)...),
		},
		{
			ID:          ProfileGrep,
			Name:        "Grep (ERE)",
			Description: "POSIX extended regular expressions via grep -E",
			Kind:        KindRegex,
			Features:    featureSet(append(baseFeatures, FeatBackrefs)...),
		},
		{
			ID:          ProfileSed,
			Name:        "Sed",
			Description: "Stream transformation via sed -E",
			Kind:        KindTransform,
		},
		{
			ID:          ProfileAwk,
			Name:        "AWK",
			Description: "AWK program with per-record field breakdown",
			Kind:        KindTransform,
		},
		{
			ID:          ProfileJq,
			Name:        "JQ",
			Description: "JSON filtering via the jq binary",
			Kind:        KindTransform,
		},
	}
}
