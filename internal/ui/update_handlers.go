// SPDX-License-Identifier: Apache-2.0

// Update handlers for each UI state. The pattern field owns ordinary typing
// in the main state; everything else is matched against the keymap first.

package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rexi/internal/engine"
)

func (m Model) handleMainKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit), key.Matches(msg, m.keymap.Quit):
		if m.cancelEval != nil {
			m.cancelEval()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.currentState = stateHelp
		m.helpView.SetContent(renderHelpContent())
		m.helpView.GotoTop()
		return m, nil

	case key.Matches(msg, m.keymap.Features):
		p := m.profile()
		if p == nil || p.Kind != engine.KindRegex {
			return m, func() tea.Msg {
				return noticeMsg{text: "features apply to regex profiles only"}
			}
		}
		m.features = newFeaturesModel(p)
		m.currentState = stateFeatures
		return m, nil

	case key.Matches(msg, m.keymap.NextProfile):
		return m, m.switchProfile(1)

	case key.Matches(msg, m.keymap.PrevProfile):
		return m, m.switchProfile(-1)

	case key.Matches(msg, m.keymap.CopyPattern):
		return m, copyCmd(m.patternInput.Value(), "pattern")

	case key.Matches(msg, m.keymap.CopyResult):
		return m, copyCmd(m.copyableOutput(), "output")

	case key.Matches(msg, m.keymap.TogglePane):
		m.showGroupsPane = !m.showGroupsPane
		m.layout()
		m.refreshPanes()
		return m, nil

	case key.Matches(msg, m.keymap.ScrollUp), key.Matches(msg, m.keymap.ScrollDown),
		key.Matches(msg, m.keymap.PgUp), key.Matches(msg, m.keymap.PgDown):
		var cmd tea.Cmd
		m.resultView, cmd = m.resultView.Update(msg)
		return m, cmd
	}

	before := m.patternInput.Value()
	var cmd tea.Cmd
	m.patternInput, cmd = m.patternInput.Update(msg)
	if m.patternInput.Value() != before {
		return m, tea.Batch(cmd, m.bumpGeneration())
	}
	return m, cmd
}

func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Close):
		m.currentState = stateMain
		return m, nil
	}
	var cmd tea.Cmd
	m.helpView, cmd = m.helpView.Update(msg)
	return m, cmd
}

func (m Model) handleFeatureKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Close):
		// Cancel: the edited set is discarded with the submodel.
		m.currentState = stateMain
		return m, nil

	case key.Matches(msg, m.keymap.Apply):
		custom := m.registry.SetCustom(m.features.enabled)
		m.profiles = m.registry.Profiles()
		for i, p := range m.profiles {
			if p.ID == custom.ID {
				m.profileIdx = i
			}
		}
		m.patternInput.Placeholder = patternPlaceholder(custom)
		m.currentState = stateMain
		m.generation++
		return m, m.startEvaluation()
	}

	m.features.handleKey(msg, m.keymap)
	return m, nil
}

// copyableOutput picks the text the copy-output action should export: the
// transformed document for transform profiles, the raw input for regex ones
// (the highlight is styling, not text).
func (m *Model) copyableOutput() string {
	if m.result != nil && m.result.Output != "" {
		return m.result.Output
	}
	if m.result != nil && len(m.result.Matches) > 0 {
		return m.input
	}
	return ""
}
