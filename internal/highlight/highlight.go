// SPDX-License-Identifier: Apache-2.0

// Package highlight converts engine results into renderable spans and styled
// terminal text. Engines report byte offsets; the display buffer is rune
// indexed, so spans are remapped before rendering.
package highlight

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"rexi/internal/engine"
)

// Style tags a span with how it should be drawn.
type Style int

const (
	// StyleMatch marks a full match (group 0); drawn underlined.
	StyleMatch Style = iota
	// StyleGroup marks a capture group; drawn in the group color.
	StyleGroup
)

// RenderSpan is a highlightable range in rune offsets against the display
// buffer, ordered by start when produced by Spans.
type RenderSpan struct {
	Start int
	End   int
	Style Style
}

var (
	matchStyle = lipgloss.NewStyle().Underline(true)
	groupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	bothStyle  = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("9"))
)

// Spans maps a result's matches onto ordered rune-offset spans. Zero-width
// matches produce no span; spans outside the input are clipped. Overlap
// between spans is preserved and resolved by Render.
func Spans(input string, res *engine.Result) []RenderSpan {
	if res == nil || len(res.Matches) == 0 {
		return nil
	}

	toRune := byteToRuneTable(input)
	runeLen := toRune[len(input)]

	var spans []RenderSpan
	for _, m := range res.Matches {
		for _, g := range m.Groups {
			start, end := g.Start, g.End
			if start >= end {
				continue // empty match highlights nothing
			}
			if start < 0 || start > len(input) || end > len(input) {
				continue
			}
			style := StyleGroup
			if g.Index == 0 {
				style = StyleMatch
			}
			rs := RenderSpan{Start: toRune[start], End: toRune[end], Style: style}
			if rs.End > runeLen {
				rs.End = runeLen
			}
			if rs.Start >= rs.End {
				continue
			}
			spans = append(spans, rs)
		}
	}

	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End > spans[j].End
	})
	return spans
}

// byteToRuneTable maps every byte offset of input (inclusive of len(input))
// to the rune offset it falls in. Offsets inside a multi-byte rune map to
// that rune. Invalid UTF-8 bytes count as one rune each, the same way
// []rune(input) decodes them, so spans stay aligned with Render.
func byteToRuneTable(input string) []int {
	table := make([]int, len(input)+1)
	runeIdx := 0
	for byteIdx := 0; byteIdx < len(input); {
		_, size := utf8.DecodeRuneInString(input[byteIdx:])
		for j := 0; j < size; j++ {
			table[byteIdx+j] = runeIdx
		}
		byteIdx += size
		runeIdx++
	}
	table[len(input)] = runeIdx
	return table
}

// Render draws the input with the given spans applied. Overlapping spans are
// resolved by segmenting the text at every span boundary and tracking how
// many match and group spans cover each segment.
func Render(input string, spans []RenderSpan) string {
	if len(spans) == 0 {
		return input
	}

	runes := []rune(input)
	matchDelta := make(map[int]int)
	groupDelta := make(map[int]int)
	boundaries := map[int]bool{0: true, len(runes): true}

	for _, s := range spans {
		start, end := s.Start, s.End
		if start < 0 {
			start = 0
		}
		if end > len(runes) {
			end = len(runes)
		}
		if start >= end {
			continue
		}
		boundaries[start] = true
		boundaries[end] = true
		if s.Style == StyleMatch {
			matchDelta[start]++
			matchDelta[end]--
		} else {
			groupDelta[start]++
			groupDelta[end]--
		}
	}

	cuts := make([]int, 0, len(boundaries))
	for b := range boundaries {
		cuts = append(cuts, b)
	}
	sort.Ints(cuts)

	var out strings.Builder
	matchDepth, groupDepth := 0, 0
	for i := 0; i < len(cuts)-1; i++ {
		matchDepth += matchDelta[cuts[i]]
		groupDepth += groupDelta[cuts[i]]
		segment := string(runes[cuts[i]:cuts[i+1]])
		switch {
		case matchDepth > 0 && groupDepth > 0:
			out.WriteString(bothStyle.Render(segment))
		case groupDepth > 0:
			out.WriteString(groupStyle.Render(segment))
		case matchDepth > 0:
			out.WriteString(matchStyle.Render(segment))
		default:
			out.WriteString(segment)
		}
	}
	return out.String()
}

// GroupsReport formats the capture-group pane: one line per capture group
// (index > 0), numbered by match. The full match is shown by the highlight,
// not repeated here.
func GroupsReport(res *engine.Result) string {
	if res == nil {
		return ""
	}
	var b strings.Builder
	for mi, m := range res.Matches {
		for _, g := range m.Groups {
			if g.Index == 0 {
				continue
			}
			name := ""
			if g.Name != "" {
				name = " " + g.Name
			}
			fmt.Fprintf(&b, "match %d  group %d%s  (%d, %d)  %q\n",
				mi+1, g.Index, name, g.Start, g.End, g.Value)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FieldsReport formats the AWK field-breakdown pane.
func FieldsReport(records []engine.Record) string {
	var b strings.Builder
	for _, rec := range records {
		fmt.Fprintf(&b, "record %d (NF=%d): %s\n", rec.Number, rec.NF, rec.Full)
		for _, f := range rec.Fields {
			fmt.Fprintf(&b, "  $%d = %q\n", f.Index, f.Value)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
