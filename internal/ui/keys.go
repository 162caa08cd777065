// SPDX-License-Identifier: Apache-2.0

// This file defines the keyboard bindings for the TUI application. The
// pattern field owns ordinary typing, so every action is bound to a key the
// field ignores (function keys, tab, control chords).

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Quit      key.Binding // Exit the application
	ForceQuit key.Binding // Exit from any state

	Help     key.Binding // Toggle the pattern-syntax help overlay
	Features key.Binding // Open the regex features editor
	Close    key.Binding // Dismiss an overlay

	NextProfile key.Binding // Cycle to the next pattern profile
	PrevProfile key.Binding // Cycle to the previous pattern profile

	CopyPattern key.Binding // Copy the current pattern to the clipboard
	CopyResult  key.Binding // Copy the evaluation output to the clipboard
	TogglePane  key.Binding // Show/hide the groups pane

	ScrollUp   key.Binding // Scroll the result pane up
	ScrollDown key.Binding // Scroll the result pane down
	PgUp       key.Binding // Page the result pane up
	PgDown     key.Binding // Page the result pane down

	// Features editor
	Toggle key.Binding // Toggle the feature under the cursor
	Apply  key.Binding // Apply the edited feature set
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "help"),
	),
	Features: key.NewBinding(
		key.WithKeys("f2"),
		key.WithHelp("f2", "features"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "f1"),
		key.WithHelp("esc", "close"),
	),
	NextProfile: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next profile"),
	),
	PrevProfile: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev profile"),
	),
	CopyPattern: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy pattern"),
	),
	CopyResult: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "copy output"),
	),
	TogglePane: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("ctrl+g", "toggle groups pane"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "scroll down"),
	),
	PgUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PgDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle feature"),
	),
	Apply: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
}

// ShortHelp implements help.KeyMap for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextProfile, k.Help, k.Features, k.CopyPattern, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextProfile, k.PrevProfile, k.Help, k.Features},
		{k.CopyPattern, k.CopyResult, k.TogglePane},
		{k.ScrollUp, k.ScrollDown, k.PgUp, k.PgDown, k.Quit},
	}
}
