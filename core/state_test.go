package core

import "testing"

func TestExitEditRederivesIndex(t *testing.T) {
	r := DefaultRegistry()
	s := NewUIState(false)

	// Select the last visible field and open an edit.
	visible := r.VisibleFields(ScreenInference, false)
	s.VisibleIndex = len(visible) - 1
	f := visible[s.VisibleIndex]
	s.EnterEdit(f)

	// Debug flips while the edit is open; the visible list grows and the
	// edited field's position shifts.
	s.Debug = true
	grown := r.VisibleFields(ScreenInference, true)
	s.ExitEdit(grown)

	if s.Mode != ModeView {
		t.Fatalf("mode = %v, want view", s.Mode)
	}
	if grown[s.VisibleIndex].ID != f.ID {
		t.Errorf("selection landed on field %d, want %d", grown[s.VisibleIndex].ID, f.ID)
	}
}

func TestExitEditFieldNoLongerVisible(t *testing.T) {
	r := DefaultRegistry()
	s := NewUIState(true)

	all := r.VisibleFields(ScreenInference, true)
	// Edit a hidden-by-default field, then turn debug off underneath it.
	var hidden *Field
	var hiddenIdx int
	for i, f := range all {
		if r.Hidden(ScreenInference, f.ID) {
			hidden, hiddenIdx = f, i
			break
		}
	}
	if hidden == nil {
		t.Fatal("schema has no hidden inference field")
	}
	s.VisibleIndex = hiddenIdx
	s.EnterEdit(hidden)

	s.Debug = false
	shrunk := r.VisibleFields(ScreenInference, false)
	s.ExitEdit(shrunk)

	if s.VisibleIndex < 0 || s.VisibleIndex >= len(shrunk) {
		t.Errorf("index %d out of bounds for %d visible fields", s.VisibleIndex, len(shrunk))
	}
}

func TestClampIndex(t *testing.T) {
	s := NewUIState(false)
	s.VisibleIndex = 9
	s.ClampIndex(3)
	if s.VisibleIndex != 2 {
		t.Errorf("got %d, want 2", s.VisibleIndex)
	}
	s.VisibleIndex = -4
	s.ClampIndex(3)
	if s.VisibleIndex != 0 {
		t.Errorf("got %d, want 0", s.VisibleIndex)
	}
	s.ClampIndex(0)
	if s.VisibleIndex != 0 {
		t.Errorf("empty list: got %d, want 0", s.VisibleIndex)
	}
}

func TestPreviewNavigation(t *testing.T) {
	s := NewUIState(false)
	s.SetPreview([]string{"a", "b", "c"})
	if s.PreviewIndex != -1 {
		t.Fatalf("fresh preview should have no highlight, got %d", s.PreviewIndex)
	}
	if item, ok := s.CompletionItem(); !ok || item != "a" {
		t.Fatalf("default completion = %q, want first item", item)
	}

	s.PreviewUp()
	if s.PreviewIndex != 0 {
		t.Fatalf("up from none should land on 0, got %d", s.PreviewIndex)
	}
	s.PreviewDown()
	s.PreviewDown()
	s.PreviewDown()
	if s.PreviewIndex != 2 {
		t.Fatalf("down saturates at last item, got %d", s.PreviewIndex)
	}
	if item, _ := s.CompletionItem(); item != "c" {
		t.Fatalf("highlighted completion = %q, want c", item)
	}

	// Shrinking the list keeps the highlight in bounds.
	s.SetPreview([]string{"x"})
	if s.PreviewIndex != 0 {
		t.Fatalf("highlight after shrink = %d, want 0", s.PreviewIndex)
	}
	s.SetPreview(nil)
	if s.PreviewIndex != -1 {
		t.Fatalf("empty preview should clear highlight, got %d", s.PreviewIndex)
	}
	if _, ok := s.CompletionItem(); ok {
		t.Fatal("empty preview should have no completion")
	}
}

func TestModeTransitions(t *testing.T) {
	s := NewUIState(true)
	s.EnterCommand()
	s.Command.InsertString("run")
	s.ExitCommand()
	if s.Mode != ModeView || s.Command.Len() != 0 {
		t.Fatalf("command exit left mode %v buffer %q", s.Mode, s.Command.String())
	}

	s.EnterHelp()
	if s.Mode != ModeHelp {
		t.Fatal("help did not open")
	}
	s.ExitHelp()

	s.EnterProcessSelect(7)
	if s.Mode != ModeProcessSelect || s.SelectedProcessID != 7 {
		t.Fatalf("procsel state: mode %v id %d", s.Mode, s.SelectedProcessID)
	}
	s.ExitProcessSelect()
	if s.Mode != ModeView || s.SelectedProcessID != 0 {
		t.Fatal("procsel exit did not reset")
	}
	if !s.Debug {
		t.Fatal("debug must survive mode churn")
	}
}
