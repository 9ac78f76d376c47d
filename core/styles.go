package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorAccent).
			Bold(true)

	helpBarStyle = lipgloss.NewStyle().Foreground(colorMuted)

	selectedFieldStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	hiddenFieldStyle   = lipgloss.NewStyle().Foreground(colorWarn)
	sectionTitleStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	ruleStyle          = lipgloss.NewStyle().Foreground(colorBorder)

	cursorCellStyle   = lipgloss.NewStyle().Reverse(true)
	previewPickStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	selectedProcStyle = lipgloss.NewStyle().Reverse(true)

	procRunningStyle  = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	procFinishedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	procFailedStyle   = lipgloss.NewStyle().Foreground(colorError)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
	debugTagStyle = lipgloss.NewStyle().Foreground(colorWarn).Background(colorSurface)
)
