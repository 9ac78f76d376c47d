package core

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sepdash/internal/proc"
)

// Update routes messages: window geometry, process events, then keys through
// the mode-specific handlers. Text entry is handled per mode after the key
// registry, so bound actions always win over rune insertion.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case ShutdownMsg:
		return a, a.shutdown()

	case ProcessEventMsg:
		a.onProcessEvent(msg.Event)
		return a, nil

	case tea.KeyMsg:
		return a.onKey(msg)
	}
	return a, nil
}

func (a *App) onProcessEvent(ev proc.Event) {
	if a.hist != nil {
		_ = a.hist.RecordExit(ev.JobID, ev.Status.String(), ev.ExitCode, time.Now())
	}
	text := fmt.Sprintf("id=%d: %s (exit %d)", ev.RecordID, a.statusText(ev.Status), ev.ExitCode)
	if ev.Status == proc.StatusFailed {
		a.SetError(text)
	} else {
		a.SetStatus(text)
	}
}

func (a *App) statusText(s proc.Status) string {
	switch s {
	case proc.StatusRunning:
		return a.cat.T("status_running")
	case proc.StatusCompleted:
		return a.cat.T("status_completed")
	case proc.StatusKilled:
		return a.cat.T("status_killed")
	case proc.StatusFailed:
		return a.cat.T("status_failed")
	}
	return s.String()
}

func (a *App) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := a.state.Mode.String()

	// Global bindings fire in every mode.
	switch {
	case a.keys.IsAction(msg, ActionInterrupt, scope):
		return a, a.shutdown()
	case a.keys.IsAction(msg, ActionDebugToggle, scope):
		return a, a.cmdDebug()
	case a.keys.IsAction(msg, ActionSwitchScreen, scope):
		a.switchScreen()
		return a, nil
	}

	switch a.state.Mode {
	case ModeView:
		return a, a.keyView(msg, scope)
	case ModeEdit:
		return a, a.keyEdit(msg, scope)
	case ModeCommand:
		return a, a.keyCommand(msg, scope)
	case ModeHelp:
		if a.keys.IsAction(msg, ActionCancel, scope) {
			a.state.ExitHelp()
		}
		return a, nil
	case ModeProcessSelect:
		return a, a.keyProcessSelect(msg, scope)
	}
	return a, nil
}

// switchScreen toggles between the two screens and resets interaction state.
// Debug survives; an open edit or command line does not.
func (a *App) switchScreen() {
	a.screenID = OtherScreen(a.screenID)
	a.state = NewUIState(a.state.Debug)
	if s := a.currentScreen(); s != nil {
		a.SetStatus(fmt.Sprintf("%s %s", a.cat.T("switched_screen"), s.Title))
	}
}

func (a *App) keyView(msg tea.KeyMsg, scope string) tea.Cmd {
	visible := a.visible()
	switch {
	case a.keys.IsAction(msg, ActionUp, scope):
		a.state.VisibleIndex--
		a.state.ClampIndex(len(visible))
	case a.keys.IsAction(msg, ActionDown, scope):
		a.state.VisibleIndex++
		a.state.ClampIndex(len(visible))
	case a.keys.IsAction(msg, ActionConfirm, scope):
		if len(visible) == 0 {
			return nil
		}
		a.state.ClampIndex(len(visible))
		f := visible[a.state.VisibleIndex]
		a.state.EnterEdit(f)
		a.state.SetPreview(BuildPreview(f, a.state.Edit.String()))
	case a.keys.IsAction(msg, ActionCommandMode, scope):
		a.state.EnterCommand()
	case a.keys.IsAction(msg, ActionProcessSelect, scope):
		records := a.procs.List()
		if len(records) == 0 {
			a.SetStatus(a.cat.T("process_none"))
			return nil
		}
		a.state.EnterProcessSelect(records[0].ID)
	}
	return nil
}

func (a *App) keyEdit(msg tea.KeyMsg, scope string) tea.Cmd {
	f, err := a.reg.FieldByID(a.state.EditingFieldID)
	if err != nil {
		// The anchor vanished out from under the edit; view mode recovers.
		a.state.ExitEdit(a.visible())
		return nil
	}

	switch {
	case a.keys.IsAction(msg, ActionCancel, scope):
		a.state.ExitEdit(a.visible())
		return nil
	case a.keys.IsAction(msg, ActionConfirm, scope):
		f.Value = CoerceValue(f.Type, a.state.Edit.String())
		_ = a.saveCache()
		a.state.ExitEdit(a.visible())
		return nil
	case a.keys.IsAction(msg, ActionUp, scope):
		a.state.PreviewUp()
		return nil
	case a.keys.IsAction(msg, ActionDown, scope):
		a.state.PreviewDown()
		return nil
	case a.keys.IsAction(msg, ActionComplete, scope):
		if item, ok := a.state.CompletionItem(); ok {
			a.state.Edit.SetText(item)
			a.state.SetPreview(BuildPreview(f, item))
		}
		return nil
	case a.keys.IsAction(msg, ActionClearLine, scope):
		a.state.Edit.Clear()
		a.state.SetPreview(BuildPreview(f, ""))
		return nil
	}

	if a.editText(&a.state.Edit, msg) {
		a.state.SetPreview(BuildPreview(f, a.state.Edit.String()))
	}
	return nil
}

func (a *App) keyCommand(msg tea.KeyMsg, scope string) tea.Cmd {
	switch {
	case a.keys.IsAction(msg, ActionCancel, scope):
		a.state.ExitCommand()
		return nil
	case a.keys.IsAction(msg, ActionConfirm, scope):
		line := a.state.Command.String()
		a.state.ExitCommand()
		return a.executeCommand(line)
	case a.keys.IsAction(msg, ActionClearLine, scope):
		a.state.Command.Clear()
		return nil
	}
	a.editText(&a.state.Command, msg)
	return nil
}

// editText applies cursor movement and text entry to a line buffer. Reports
// whether the buffer content changed (cursor moves do not count).
func (a *App) editText(buf *LineBuffer, msg tea.KeyMsg) bool {
	switch msg.String() {
	case "left":
		buf.Left()
		return false
	case "right":
		buf.Right()
		return false
	case "backspace":
		return buf.Backspace()
	case "delete":
		return buf.Delete()
	}
	switch msg.Type {
	case tea.KeySpace:
		buf.Insert(' ')
		return true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			buf.Insert(r)
		}
		return len(msg.Runes) > 0
	}
	return false
}

func (a *App) keyProcessSelect(msg tea.KeyMsg, scope string) tea.Cmd {
	records := a.procs.List()
	if len(records) == 0 {
		a.state.ExitProcessSelect()
		return nil
	}
	idx := 0
	for i, r := range records {
		if r.ID == a.state.SelectedProcessID {
			idx = i
			break
		}
	}

	switch {
	case a.keys.IsAction(msg, ActionCancel, scope):
		a.state.ExitProcessSelect()
	case a.keys.IsAction(msg, ActionUp, scope):
		if idx > 0 {
			idx--
		}
		a.state.SelectedProcessID = records[idx].ID
	case a.keys.IsAction(msg, ActionDown, scope):
		if idx < len(records)-1 {
			idx++
		}
		a.state.SelectedProcessID = records[idx].ID
	case a.keys.IsAction(msg, ActionKillProcess, scope):
		if a.procs.Kill(records[idx].ID) {
			a.SetStatus(fmt.Sprintf("%s (id=%d)", a.cat.T("kill_success"), records[idx].ID))
		} else {
			a.SetError(fmt.Sprintf("%s: %d", a.cat.T("kill_error"), records[idx].ID))
		}
	case a.keys.IsAction(msg, ActionConfirm, scope):
		r := records[idx]
		a.SetStatus(fmt.Sprintf("id=%d pid=%d %s %s", r.ID, r.PID, a.statusText(r.Status), r.Command))
	}
	return nil
}
