// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"rexi/internal/engine"
	"rexi/internal/highlight"
)

// layout resizes the panes to the current window. The result pane takes the
// remaining height after the fixed chrome; when the groups pane is visible it
// takes roughly a third of it.
func (m *Model) layout() {
	contentHeight := m.height - headerHeight - inputHeight - footerHeight
	if contentHeight < 2 {
		contentHeight = 2
	}
	paneWidth := m.width - 2 // border
	if paneWidth < 1 {
		paneWidth = 1
	}

	groupsHeight := 0
	if m.showGroupsPane {
		groupsHeight = contentHeight / 3
		if groupsHeight < 3 {
			groupsHeight = 3
		}
	}
	resultHeight := contentHeight - groupsHeight
	if resultHeight < 1 {
		resultHeight = 1
	}

	// Inner sizes exclude the pane borders and title line.
	m.resultView.Width = paneWidth
	m.resultView.Height = max(resultHeight-3, 1)
	m.groupsView.Width = paneWidth
	m.groupsView.Height = max(groupsHeight-3, 1)
	m.helpView.Width = paneWidth
	m.helpView.Height = contentHeight
	m.patternInput.Width = max(m.width-len(m.patternInput.Prompt)-1, 10)
}

// refreshPanes recomputes both pane contents from the current result.
func (m *Model) refreshPanes() {
	p := m.profile()
	if p == nil {
		return
	}

	switch {
	case m.evalErr != nil:
		// Keep the un-highlighted input visible under the error.
		m.resultView.SetContent(m.input)
		m.groupsView.SetContent("")

	case p.Kind == engine.KindRegex:
		spans := highlight.Spans(m.input, m.result)
		m.resultView.SetContent(highlight.Render(m.input, spans))
		m.groupsView.SetContent(highlight.GroupsReport(m.result))

	default:
		output := ""
		if m.result != nil {
			output = m.result.Output
		}
		if output == "" {
			output = m.input
		}
		m.resultView.SetContent(output)
		if m.result != nil && len(m.result.Records) > 0 {
			m.groupsView.SetContent(highlight.FieldsReport(m.result.Records))
		} else {
			m.groupsView.SetContent("")
		}
	}
}

// View renders the whole screen for the current state.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.currentState {
	case stateHelp:
		return m.viewHelp()
	case stateFeatures:
		return m.features.view(m.keymap)
	default:
		return m.viewMain()
	}
}

func (m Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.patternInput.View())
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")

	b.WriteString(renderPane(m.resultPaneTitle(), m.resultView.View(), m.resultView.Width))
	if m.showGroupsPane {
		b.WriteString("\n")
		b.WriteString(renderPane(m.groupsPaneTitle(), m.groupsView.View(), m.groupsView.Width))
	}

	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
	} else {
		b.WriteString(m.helpBar.ShortHelpView(m.keymap.ShortHelp()))
	}
	return b.String()
}

func (m Model) renderHeader() string {
	p := m.profile()
	title := titleStyle.Render("rexi")
	if p == nil {
		return title
	}

	profile := profileStyle.Render(p.Name)
	avail := ""
	if eng := m.currentEngine(); eng != nil && !eng.Available() {
		avail = unavailableStyle.Render(" [engine missing]")
	}
	return fmt.Sprintf("%s  %s%s", title, profile, avail)
}

// renderStatusLine draws the line under the pattern field: a caret pointing
// into the pattern plus the error message when evaluation failed, otherwise
// an activity hint.
func (m Model) renderStatusLine() string {
	if m.evalErr != nil {
		msg := errorStyle.Render(m.evalErr.Kind.String() + ": " + m.evalErr.Message)
		if m.evalErr.Offset >= 0 && m.evalErr.Offset <= len(m.patternInput.Value()) {
			col := utf8.RuneCountInString(m.patternInput.Value()[:m.evalErr.Offset])
			pad := strings.Repeat(" ", len(m.patternInput.Prompt)+col)
			return pad + caretStyle.Render("^") + " " + msg
		}
		return strings.Repeat(" ", len(m.patternInput.Prompt)) + msg
	}
	if m.evaluating {
		return evaluatingStyle.Render("evaluating...")
	}
	return ""
}

func (m Model) resultPaneTitle() string {
	p := m.profile()
	if p != nil && p.Kind == engine.KindTransform {
		return "Output"
	}
	return "Result"
}

func (m Model) groupsPaneTitle() string {
	if p := m.profile(); p != nil && p.ID == engine.ProfileAwk {
		return "Fields"
	}
	return "Groups"
}

func (m Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pattern Help"))
	b.WriteString("\n")
	b.WriteString(paneBorderStyle.Render(m.helpView.View()))
	b.WriteString("\n")
	b.WriteString(m.helpBar.ShortHelpView([]key.Binding{m.keymap.Close}))
	return b.String()
}

func renderPane(title, content string, width int) string {
	head := paneTitleStyle.Render(title)
	body := lipgloss.JoinVertical(lipgloss.Left, head, content)
	return paneBorderStyle.Width(width).Render(body)
}

func patternPlaceholder(p *engine.Profile) string {
	if p == nil {
		return "Enter pattern"
	}
	switch p.ID {
	case engine.ProfileAwk:
		return "Enter AWK program"
	case engine.ProfileJq:
		return "Enter jq filter"
	case engine.ProfileSed:
		return "Enter sed script"
	default:
		return "Enter regex pattern"
	}
}
