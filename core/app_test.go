package core

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sepdash/internal/config"
	"github.com/jask/sepdash/internal/i18n"
	"github.com/jask/sepdash/internal/proc"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Config{}
	cfg.Worker.Program = "python"
	cfg.Cache.Path = filepath.Join(t.TempDir(), "fields.cache")
	return NewApp(cfg, DefaultRegistry(), proc.NewManager(nil), nil, i18n.New("en"), ScreenInference)
}

func send(a *App, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = a.Update(m)
	}
	return cmd
}

func typeString(a *App, s string) {
	for _, r := range s {
		send(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNavigateAndOpenEdit(t *testing.T) {
	a := newTestApp(t)
	send(a, keyPress("down"))
	if a.State().VisibleIndex != 1 {
		t.Fatalf("index = %d, want 1", a.State().VisibleIndex)
	}
	send(a, keyPress("enter"))
	if a.State().Mode != ModeEdit {
		t.Fatalf("mode = %v, want edit", a.State().Mode)
	}
	f := a.visible()[1]
	if a.State().Edit.String() != f.Value.String() {
		t.Fatalf("buffer seeded with %q, want %q", a.State().Edit.String(), f.Value.String())
	}
	send(a, keyPress("esc"))
	if a.State().Mode != ModeView {
		t.Fatal("esc did not cancel the edit")
	}
	if f.Value.String() != a.visible()[1].Value.String() {
		t.Fatal("cancel must not touch the value")
	}
}

func TestEditConfirmCoercesAndPersists(t *testing.T) {
	a := newTestApp(t)
	// extract_instrumental is the 8th visible inference field.
	a.State().VisibleIndex = 6
	send(a, keyPress("enter"), keyPress("ctrl+u"))
	typeString(a, "yes")
	send(a, keyPress("enter"))

	f, err := a.reg.FieldByID(7)
	if err != nil {
		t.Fatal(err)
	}
	if f.Value.Kind() != KindBool || !f.Value.Bool() {
		t.Fatalf("confirm left value %v, want bool true", f.Value)
	}
	if a.State().Mode != ModeView {
		t.Fatal("confirm should return to view")
	}
}

func TestTabCompletionAppliesPreview(t *testing.T) {
	a := newTestApp(t)
	a.State().VisibleIndex = 0 // model_type enum
	send(a, keyPress("enter"), keyPress("ctrl+u"))
	typeString(a, "htdem")
	send(a, keyPress("tab"))
	if got := a.State().Edit.String(); got != "htdemucs" {
		t.Fatalf("completion produced %q, want htdemucs", got)
	}
	// Completion rebuilds the preview from the new text.
	if len(a.State().Preview) != 1 || a.State().Preview[0] != "htdemucs" {
		t.Fatalf("preview after completion = %v", a.State().Preview)
	}
}

func TestPreviewHighlightCompletion(t *testing.T) {
	a := newTestApp(t)
	a.State().VisibleIndex = 0
	send(a, keyPress("enter"), keyPress("ctrl+u"))
	typeString(a, "scnet")
	send(a, keyPress("down"), keyPress("down"))
	idx := a.State().PreviewIndex
	if idx != 1 {
		t.Fatalf("highlight = %d, want 1", idx)
	}
	want := a.State().Preview[idx]
	send(a, keyPress("tab"))
	if a.State().Edit.String() != want {
		t.Fatalf("completed %q, want highlighted %q", a.State().Edit.String(), want)
	}
}

func TestCommandModeUnknownSuggests(t *testing.T) {
	a := newTestApp(t)
	send(a, keyPress(":"))
	if a.State().Mode != ModeCommand {
		t.Fatal("colon did not open command mode")
	}
	typeString(a, "quti")
	send(a, keyPress("enter"))
	status, isErr := a.Status()
	if !isErr || !strings.Contains(status, "quit") {
		t.Fatalf("status = %q err=%v, want unknown-command with hint", status, isErr)
	}
	if a.State().Mode != ModeView {
		t.Fatal("command execution should land back in view")
	}
}

func TestCommandDebugAndLanguage(t *testing.T) {
	a := newTestApp(t)
	before := len(a.visible())
	send(a, keyPress(":"))
	typeString(a, "debug")
	send(a, keyPress("enter"))
	if !a.State().Debug || len(a.visible()) <= before {
		t.Fatal("debug command did not reveal hidden fields")
	}

	send(a, keyPress(":"))
	typeString(a, "language zh")
	send(a, keyPress("enter"))
	if a.cat.Language() != "zh" {
		t.Fatalf("language = %q, want zh", a.cat.Language())
	}
	send(a, keyPress(":"))
	typeString(a, "language xx")
	send(a, keyPress("enter"))
	if _, isErr := a.Status(); !isErr {
		t.Fatal("unknown language should error")
	}
	if a.cat.Language() != "zh" {
		t.Fatal("failed switch must not change the language")
	}
}

func TestDebugToggleClampsSelection(t *testing.T) {
	a := newTestApp(t)
	send(a, keyPress("ctrl+d"))
	all := len(a.visible())
	a.State().VisibleIndex = all - 1
	send(a, keyPress("ctrl+d"))
	if a.State().Debug {
		t.Fatal("second toggle should turn debug off")
	}
	if n := len(a.visible()); a.State().VisibleIndex >= n {
		t.Fatalf("index %d out of bounds for %d fields", a.State().VisibleIndex, n)
	}
}

func TestSwitchScreenResetsState(t *testing.T) {
	a := newTestApp(t)
	send(a, keyPress("ctrl+d"), keyPress(":"))
	send(a, keyPress("esc"), keyPress("f2"))
	if a.ScreenID() != ScreenTrain {
		t.Fatalf("screen = %q, want train", a.ScreenID())
	}
	if a.State().Mode != ModeView || a.State().VisibleIndex != 0 {
		t.Fatal("switch should reset interaction state")
	}
	if !a.State().Debug {
		t.Fatal("debug must survive the switch")
	}
	send(a, keyPress("f2"))
	if a.ScreenID() != ScreenInference {
		t.Fatal("second switch should toggle back")
	}
}

func TestProcessSelectEmptyTable(t *testing.T) {
	a := newTestApp(t)
	send(a, keyPress(" "))
	if a.State().Mode != ModeView {
		t.Fatal("empty table must not enter process select")
	}
	status, _ := a.Status()
	if status == "" {
		t.Fatal("expected a status message for the empty table")
	}
}

func TestShutdownMessageQuits(t *testing.T) {
	a := newTestApp(t)
	cmd := send(a, ShutdownMsg{})
	if cmd == nil {
		t.Fatal("shutdown should produce a quit command")
	}
	if msg := cmd(); msg == nil {
		t.Fatal("quit command returned nil msg")
	}
}

func TestViewFillsTerminal(t *testing.T) {
	a := newTestApp(t)
	send(a, tea.WindowSizeMsg{Width: 60, Height: 20})
	view := a.View()
	if got := len(strings.Split(view, "\n")); got != 20 {
		t.Fatalf("view is %d lines, want 20", got)
	}
	if !strings.Contains(view, "Inference Config") {
		t.Fatal("header missing screen title")
	}
}

func TestFooterFollowsMode(t *testing.T) {
	a := newTestApp(t)
	send(a, tea.WindowSizeMsg{Width: 80, Height: 24})
	footer := a.renderFooter()
	if !strings.Contains(footer, "command") {
		t.Fatal("view-mode footer should describe the command binding")
	}
	if strings.Contains(footer, "complete") {
		t.Fatal("completion binding leaked into view-mode footer")
	}
	send(a, keyPress("enter"))
	if footer := a.renderFooter(); !strings.Contains(footer, "complete") {
		t.Fatal("edit-mode footer should describe the completion binding")
	}
}

func TestHelpPopupOpensAndCloses(t *testing.T) {
	a := newTestApp(t)
	send(a, keyPress(":"))
	typeString(a, "help")
	send(a, keyPress("enter"))
	if a.State().Mode != ModeHelp {
		t.Fatal("help command did not open help")
	}
	send(a, tea.WindowSizeMsg{Width: 80, Height: 24})
	if view := a.View(); !strings.Contains(view, ":run") {
		t.Fatal("help popup should list commands")
	}
	send(a, keyPress("esc"))
	if a.State().Mode != ModeView {
		t.Fatal("esc did not close help")
	}
}
