package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Key actions, bound per mode scope. Text-entry runes never go through the
// registry; only logical actions do.
const (
	ActionCancel        = "cancel"
	ActionConfirm       = "confirm"
	ActionUp            = "up"
	ActionDown          = "down"
	ActionComplete      = "complete"
	ActionClearLine     = "clear-line"
	ActionCommandMode   = "command-mode"
	ActionProcessSelect = "process-select"
	ActionKillProcess   = "kill-process"
	ActionDebugToggle   = "debug-toggle"
	ActionSwitchScreen  = "switch-screen"
	ActionInterrupt     = "interrupt"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string // mode names; empty or "*" matches every mode
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

// BindingsForScope returns the bindings active in a mode, in registration
// order, for footer help rendering.
func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// IsAction reports whether the pressed key maps to the action within the
// given mode scope.
func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

// DefaultKeyBindings is the stock keymap. Logical names only; the renderer
// shows the first key of each binding in the footer.
func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"enter"}, Action: ActionConfirm, Description: "edit/confirm", Scopes: []string{"view", "edit", "command", "procsel"}},
		{Keys: []string{"esc"}, Action: ActionCancel, Description: "back", Scopes: []string{"edit", "command", "help", "procsel"}},
		{Keys: []string{"up"}, Action: ActionUp, Description: "up", Scopes: []string{"view", "edit", "procsel"}},
		{Keys: []string{"down"}, Action: ActionDown, Description: "down", Scopes: []string{"view", "edit", "procsel"}},
		{Keys: []string{"tab"}, Action: ActionComplete, Description: "complete", Scopes: []string{"edit"}},
		{Keys: []string{":"}, Action: ActionCommandMode, Description: "command", Scopes: []string{"view"}},
		{Keys: []string{" ", "space"}, Action: ActionProcessSelect, Description: "processes", Scopes: []string{"view"}},
		{Keys: []string{"k"}, Action: ActionKillProcess, Description: "kill", Scopes: []string{"procsel"}},
		{Keys: []string{"ctrl+u"}, Action: ActionClearLine, Description: "clear input", Scopes: []string{"edit", "command"}},
		{Keys: []string{"ctrl+d"}, Action: ActionDebugToggle, Description: "debug", Scopes: []string{"*"}},
		{Keys: []string{"f2"}, Action: ActionSwitchScreen, Description: "switch screen", Scopes: []string{"*"}},
		{Keys: []string{"ctrl+c"}, Action: ActionInterrupt, Description: "quit", Scopes: []string{"*"}},
	}
}
