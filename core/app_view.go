package core

import (
	"fmt"
	"strings"

	"github.com/jask/sepdash/internal/proc"
	"github.com/jask/sepdash/widgets"
)

// View composes the whole frame: header, field list, the edit section when
// open, the process panel, then the status, command and footer bars. Every
// line goes through display-width clipping, so narrow terminals truncate
// instead of wrapping.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	width, height := a.width, a.height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	var b strings.Builder
	title := a.cat.T("header")
	if s := a.currentScreen(); s != nil {
		title += "  " + s.Title
	}
	b.WriteString(renderBar(headerBarStyle, width, title))
	b.WriteString("\n")
	b.WriteString(helpBarStyle.Render(widgets.TrimToWidth(a.cat.T("help_bar"), width)))
	b.WriteString("\n\n")

	b.WriteString(a.renderFields(width))
	if a.state.Mode == ModeEdit {
		b.WriteString(a.renderEdit(width))
	}
	b.WriteString("\n")
	b.WriteString(a.renderProcesses(width))

	body := widgets.FitHeight(b.String(), height-3)
	base := body + "\n" +
		a.renderStatusBar() + "\n" +
		a.renderCommandBar(width) + "\n" +
		a.renderFooter()

	if a.state.Mode == ModeHelp {
		return appStyle.Render(widgets.RenderPopup(base, a.helpContent(), width, height))
	}
	return appStyle.Render(widgets.FitHeight(base, height))
}

func (a *App) renderFields(width int) string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render(a.cat.T("fields")))
	b.WriteString("\n")
	for i, f := range a.visible() {
		prefix := "   "
		if i == a.state.VisibleIndex {
			prefix = ">> "
		}
		line := fmt.Sprintf("%s%-22s = %s", prefix, f.Name, f.Value.String())
		if a.state.Debug && a.reg.Hidden(a.screenID, f.ID) {
			line += " " + a.cat.T("hidden_marker")
		}
		line = widgets.TrimToWidth(line, width)
		switch {
		case i == a.state.VisibleIndex:
			line = selectedFieldStyle.Render(line)
		case a.state.Debug && a.reg.Hidden(a.screenID, f.ID):
			line = hiddenFieldStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) renderEdit(width int) string {
	f, err := a.reg.FieldByID(a.state.EditingFieldID)
	if err != nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(ruleStyle.Render(widgets.Rule(width)))
	b.WriteString("\n")
	b.WriteString(sectionTitleStyle.Render(fmt.Sprintf("%s %s (%s)", a.cat.T("editing"), f.Name, f.Type)))
	b.WriteString("\n")
	b.WriteString(widgets.TrimToWidth("> "+renderWithCursor(&a.state.Edit), width))
	b.WriteString("\n")
	if len(a.state.Preview) > 0 {
		b.WriteString(helpBarStyle.Render(a.cat.T("preview")))
		b.WriteString("\n")
		grid := widgets.ColumnGrid(a.state.Preview, width, 6, 30, a.state.PreviewIndex, func(s string) string { return previewPickStyle.Render(s) })
		if grid != "" {
			b.WriteString(grid)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderWithCursor draws a line buffer with the cursor cell reversed. A
// cursor at the end reverses a synthetic trailing space.
func renderWithCursor(buf *LineBuffer) string {
	runes := []rune(buf.String())
	pos := buf.Pos()
	if pos >= len(runes) {
		return string(runes) + cursorCellStyle.Render(" ")
	}
	return string(runes[:pos]) + cursorCellStyle.Render(string(runes[pos])) + string(runes[pos+1:])
}

func (a *App) renderProcesses(width int) string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render(a.cat.T("processes")))
	b.WriteString("\n")
	records := a.procs.List()
	if len(records) == 0 {
		b.WriteString(helpBarStyle.Render(a.cat.T("process_none")))
		b.WriteString("\n")
		return b.String()
	}

	header := fmt.Sprintf("   %-4s %-7s %-10s %-9s %s",
		a.cat.T("process_id"), a.cat.T("process_pid"), a.cat.T("process_status"),
		a.cat.T("process_start"), a.cat.T("process_cmd"))
	b.WriteString(helpBarStyle.Render(widgets.TrimToWidth(header, width)))
	b.WriteString("\n")

	for _, r := range records {
		selected := a.state.Mode == ModeProcessSelect && r.ID == a.state.SelectedProcessID
		prefix := "   "
		if selected {
			prefix = " > "
		}
		line := fmt.Sprintf("%s%-4d %-7d %-10s %-9s %s",
			prefix, r.ID, r.PID, a.statusText(r.Status),
			r.StartTime.Format("15:04:05"), r.Command)
		line = widgets.TrimToWidth(line, width)
		switch {
		case selected:
			line = selectedProcStyle.Render(line)
		case r.Status == proc.StatusRunning:
			line = procRunningStyle.Render(line)
		case r.Status == proc.StatusFailed:
			line = procFailedStyle.Render(line)
		default:
			line = procFinishedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) renderCommandBar(width int) string {
	if a.state.Mode == ModeCommand {
		return widgets.PadRight(widgets.TrimToWidth(":"+renderWithCursor(&a.state.Command), width), width)
	}
	hint := helpBarStyle.Render(widgets.TrimToWidth(a.cat.T("cmd_prompt")+"  :", width))
	return widgets.PadRight(hint, width)
}

func (a *App) helpContent() string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render(a.cat.T("help_title")))
	b.WriteString("\n\n")
	for _, kb := range a.keys.BindingsForScope("view") {
		if len(kb.Keys) == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %-12s %s\n", kb.Keys[0], kb.Description)
	}
	b.WriteString("\n")
	for _, c := range a.commands.All() {
		fmt.Fprintf(&b, "  %-18s %s\n", c.Usage, c.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}
