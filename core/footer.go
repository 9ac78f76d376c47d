package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/sepdash/widgets"
)

var (
	footerKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	footerDescStyle = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
)

// renderFooter lists the bindings active in the current mode, first key plus
// description, in registration order.
func (a *App) renderFooter() string {
	var b strings.Builder
	for _, kb := range a.keys.BindingsForScope(a.state.Mode.String()) {
		if len(kb.Keys) == 0 {
			continue
		}
		h := key.NewBinding(key.WithKeys(kb.Keys...), key.WithHelp(kb.Keys[0], kb.Description)).Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(footerDescStyle.Render("  "))
		}
		b.WriteString(footerKeyStyle.Render(h.Key))
		b.WriteString(footerDescStyle.Render(" " + h.Desc))
	}
	return renderBar(footerStyle, maxInt(1, a.width), b.String())
}

func (a *App) renderStatusBar() string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = "Ready"
	}
	if a.state.Debug {
		msg = debugTagStyle.Render("[debug]") + " " + msg
	}
	style := statusBarStyle
	if a.statusErr {
		style = statusErrBarStyle
	}
	return renderBar(style, maxInt(1, a.width), msg)
}

// renderBar flattens text to a single line padded to exactly width columns.
// The bar's background comes from the style itself.
func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	return style.MaxWidth(width).Render(widgets.PadRight(line, width))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
