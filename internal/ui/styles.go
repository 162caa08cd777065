// SPDX-License-Identifier: Apache-2.0

package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	profileStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	unavailableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	caretStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	noticeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	evaluatingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	paneTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	paneBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("238"))

	// Features editor
	categoryStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cursorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	checkedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	helpHeadingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
)
