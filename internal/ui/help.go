// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"strings"
)

// helpEntry is one pattern construct with its description.
type helpEntry struct {
	pattern string
	desc    string
}

// helpCategory groups related constructs for the help overlay.
type helpCategory struct {
	name    string
	entries []helpEntry
}

var helpCategories = []helpCategory{
	{"Anchors", []helpEntry{
		{"^", "Start of string (or line in multiline mode)"},
		{"$", "End of string (or line in multiline mode)"},
		{`\b`, "Word boundary"},
		{`\B`, "Not a word boundary"},
	}},
	{"Quantifiers", []helpEntry{
		{"*", "0 or more"},
		{"+", "1 or more"},
		{"?", "0 or 1"},
		{"{n}", "Exactly n times"},
		{"{n,}", "n or more times"},
		{"{n,m}", "Between n and m times"},
	}},
	{"Character Classes", []helpEntry{
		{".", "Any character (except newline)"},
		{`\d`, "Digit [0-9]"},
		{`\D`, "Non-digit"},
		{`\w`, "Word character [a-zA-Z0-9_]"},
		{`\W`, "Non-word character"},
		{`\s`, "Whitespace"},
		{`\S`, "Non-whitespace"},
		{"[abc]", "Any of a, b, or c"},
		{"[^abc]", "Not a, b, or c"},
	}},
	{"Groups", []helpEntry{
		{"(...)", "Capturing group"},
		{"(?:...)", "Non-capturing group"},
		{"(?P<name>...)", "Named capturing group"},
		{`\1`, "Backreference to group 1"},
	}},
	{"Lookaround", []helpEntry{
		{"(?=...)", "Positive lookahead"},
		{"(?!...)", "Negative lookahead"},
		{"(?<=...)", "Positive lookbehind"},
		{"(?<!...)", "Negative lookbehind"},
	}},
	{"Flags", []helpEntry{
		{"(?i)", "Case-insensitive"},
		{"(?m)", "Multiline"},
		{"(?s)", "Dot matches newline"},
	}},
	{"AWK", []helpEntry{
		{"{print $1}", "Print the first field of every record"},
		{"NR", "Current record number"},
		{"NF", "Field count of the current record"},
		{"/re/ {..}", "Run the action for matching records"},
	}},
	{"JQ", []helpEntry{
		{".", "Identity: the whole document"},
		{".name", "Object field access"},
		{".[]", "Iterate array elements"},
		{"select(..)", "Keep values matching a condition"},
	}},
}

// renderHelpContent formats the help overlay body. Availability of a
// construct still depends on the selected profile's dialect.
func renderHelpContent() string {
	var b strings.Builder
	for i, cat := range helpCategories {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(helpHeadingStyle.Render(cat.name))
		b.WriteString("\n")
		for _, e := range cat.entries {
			fmt.Fprintf(&b, "  %-15s %s\n", e.pattern, e.desc)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
