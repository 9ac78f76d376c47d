package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "f2":
		return tea.KeyMsg{Type: tea.KeyF2}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestIsActionScopes(t *testing.T) {
	r := NewKeyRegistry(DefaultKeyBindings())

	if !r.IsAction(keyPress("tab"), ActionComplete, "edit") {
		t.Error("tab should complete in edit mode")
	}
	if r.IsAction(keyPress("tab"), ActionComplete, "view") {
		t.Error("tab should not complete in view mode")
	}
	if !r.IsAction(keyPress(":"), ActionCommandMode, "view") {
		t.Error("colon should open command mode from view")
	}
	if r.IsAction(keyPress(":"), ActionCommandMode, "edit") {
		t.Error("colon must be plain text inside an edit")
	}
	if !r.IsAction(keyPress("ctrl+c"), ActionInterrupt, "edit") {
		t.Error("ctrl+c is global")
	}
	if !r.IsAction(keyPress("f2"), ActionSwitchScreen, "procsel") {
		t.Error("f2 is global")
	}
}

func TestIsActionSpaceAliases(t *testing.T) {
	r := NewKeyRegistry(DefaultKeyBindings())
	if !r.IsAction(keyPress(" "), ActionProcessSelect, "view") {
		t.Error("space should open process select in view mode")
	}
	if r.IsAction(keyPress(" "), ActionProcessSelect, "edit") {
		t.Error("space must insert text in edit mode")
	}
}

func TestBindingsForScope(t *testing.T) {
	r := NewKeyRegistry(DefaultKeyBindings())
	view := r.BindingsForScope("view")
	if len(view) == 0 {
		t.Fatal("view scope has no bindings")
	}
	for _, b := range view {
		if b.Action == ActionKillProcess {
			t.Error("kill binding leaked into view scope")
		}
	}

	procsel := r.BindingsForScope("procsel")
	found := false
	for _, b := range procsel {
		if b.Action == ActionKillProcess {
			found = true
		}
	}
	if !found {
		t.Error("procsel scope missing kill binding")
	}
}

func TestRegisterCustomBinding(t *testing.T) {
	r := NewKeyRegistry(nil)
	r.Register(KeyBinding{Keys: []string{"X"}, Action: "custom", Scopes: []string{"view"}})
	if !r.IsAction(keyPress("x"), "custom", "view") {
		t.Error("key matching should be case-insensitive")
	}
	if r.IsAction(keyPress("x"), "custom", "help") {
		t.Error("scope mismatch should not fire")
	}
}
