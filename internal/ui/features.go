// SPDX-License-Identifier: Apache-2.0

// The features editor: a checkbox list of regex dialect features grouped by
// category. Applying the edits registers a "custom" profile backed by the
// native engine; cancelling discards them.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rexi/internal/engine"
)

type featureItem struct {
	id    string
	label string
}

type featureCategory struct {
	name  string
	items []featureItem
}

var featureCategories = []featureCategory{
	{"Anchors & Boundaries", []featureItem{
		{engine.FeatAnchors, "Start/End (^, $)"},
		{engine.FeatLookahead, "Lookahead (?=...)"},
		{engine.FeatLookbehind, "Lookbehind (?<=...)"},
	}},
	{"Groups & Captures", []featureItem{
		{engine.FeatGroups, "Capturing Groups (...)"},
		{engine.FeatNamedGroups, "Named Groups (?P<name>...)"},
		{engine.FeatNonCapturing, "Non-capturing (?:...)"},
		{engine.FeatBackrefs, `Backreferences \1`},
	}},
	{"Quantifiers", []featureItem{
		{engine.FeatQuantifiers, "Basic (*, +, ?)"},
		{engine.FeatPossessive, "Possessive (*+, ++, ?+)"},
		{engine.FeatAtomic, "Atomic Groups (?>...)"},
	}},
	{"Other", []featureItem{
		{engine.FeatClasses, "Character Classes [...]"},
		{engine.FeatAlternation, "Alternation |"},
		{engine.FeatEscapes, `Escapes \d, \w`},
		{engine.FeatUnicodeProps, `Unicode Properties \p{...}`},
		{engine.FeatRecursion, "Recursion (?R)"},
	}},
}

// featuresModel is the state of the features editor overlay.
type featuresModel struct {
	source  string // profile the edits started from
	enabled map[string]bool
	cursor  int
}

func newFeaturesModel(p *engine.Profile) featuresModel {
	enabled := make(map[string]bool, len(p.Features))
	for f, on := range p.Features {
		enabled[f] = on
	}
	return featuresModel{source: p.Name, enabled: enabled}
}

func featureCount() int {
	n := 0
	for _, cat := range featureCategories {
		n += len(cat.items)
	}
	return n
}

func itemAt(idx int) featureItem {
	for _, cat := range featureCategories {
		if idx < len(cat.items) {
			return cat.items[idx]
		}
		idx -= len(cat.items)
	}
	return featureItem{}
}

// handleKey moves the cursor and toggles checkboxes. Apply and Close are
// handled by the parent model.
func (f *featuresModel) handleKey(msg tea.KeyMsg, keymap KeyMap) {
	switch {
	case msg.String() == "up" || msg.String() == "k":
		if f.cursor > 0 {
			f.cursor--
		}
	case msg.String() == "down" || msg.String() == "j":
		if f.cursor < featureCount()-1 {
			f.cursor++
		}
	case key.Matches(msg, keymap.Toggle):
		item := itemAt(f.cursor)
		if item.id != "" {
			f.enabled[item.id] = !f.enabled[item.id]
		}
	}
}

func (f featuresModel) view(keymap KeyMap) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Regex Features"))
	fmt.Fprintf(&b, "  %s\n\n", profileStyle.Render("based on "+f.source))

	idx := 0
	for _, cat := range featureCategories {
		b.WriteString(categoryStyle.Render(cat.name))
		b.WriteString("\n")
		for _, item := range cat.items {
			cursor := "  "
			if idx == f.cursor {
				cursor = cursorStyle.Render("> ")
			}
			box := "[ ]"
			if f.enabled[item.id] {
				box = checkedStyle.Render("[x]")
			}
			fmt.Fprintf(&b, "%s%s %s\n", cursor, box, item.label)
			idx++
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("[%s] toggle  [%s] apply as custom profile  [esc] cancel",
		keymap.Toggle.Help().Key, keymap.Apply.Help().Key))
	return b.String()
}
