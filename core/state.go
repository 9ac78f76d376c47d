package core

// Mode is the mutually exclusive interaction context. Exactly one is active.
type Mode int

const (
	ModeView Mode = iota
	ModeEdit
	ModeCommand
	ModeHelp
	ModeProcessSelect
)

func (m Mode) String() string {
	switch m {
	case ModeView:
		return "view"
	case ModeEdit:
		return "edit"
	case ModeCommand:
		return "command"
	case ModeHelp:
		return "help"
	case ModeProcessSelect:
		return "procsel"
	}
	return "view"
}

// UIState is the single mutable root of interaction state. Nothing outside
// this type mutates "what is selected". Debug survives screen switches (it is
// a process-wide toggle); everything else is reset by NewUIState.
type UIState struct {
	Mode         Mode
	VisibleIndex int // index into the current visible-fields list

	EditingFieldID int // valid iff Mode == ModeEdit
	Edit           LineBuffer
	Preview        []string
	PreviewIndex   int // -1 means no item highlighted

	Command LineBuffer

	SelectedProcessID int // valid iff Mode == ModeProcessSelect

	Debug bool
}

func NewUIState(debug bool) UIState {
	return UIState{Mode: ModeView, PreviewIndex: -1, Debug: debug}
}

// ClampIndex forces VisibleIndex into the bounds of a visible list of length
// n (0 when the list is empty). Called after anything that can change the
// visible list, the debug toggle in particular.
func (s *UIState) ClampIndex(n int) {
	if n <= 0 {
		s.VisibleIndex = 0
		return
	}
	if s.VisibleIndex < 0 {
		s.VisibleIndex = 0
	}
	if s.VisibleIndex >= n {
		s.VisibleIndex = n - 1
	}
}

// EnterEdit moves VIEW -> EDIT over a field: the field id is captured as the
// anchor, the buffer is seeded from the current value with the cursor at the
// end, and the preview is cleared (the caller recomputes it).
func (s *UIState) EnterEdit(f *Field) {
	s.Mode = ModeEdit
	s.EditingFieldID = f.ID
	s.Edit.SetText(f.Value.String())
	s.Preview = nil
	s.PreviewIndex = -1
}

// ExitEdit moves EDIT -> VIEW. VisibleIndex is re-derived by searching the
// current visible list for the edited field's id — never by trusting the old
// index, since the visible list may have changed (debug toggle) while the
// edit was open. A field no longer visible leaves the index untouched and
// ClampIndex bounds it.
func (s *UIState) ExitEdit(visible []*Field) {
	for i, f := range visible {
		if f.ID == s.EditingFieldID {
			s.VisibleIndex = i
			break
		}
	}
	s.Mode = ModeView
	s.EditingFieldID = 0
	s.Edit.Clear()
	s.Preview = nil
	s.PreviewIndex = -1
	s.ClampIndex(len(visible))
}

// EnterCommand moves VIEW -> COMMAND with an empty command line.
func (s *UIState) EnterCommand() {
	s.Mode = ModeCommand
	s.Command.Clear()
}

// ExitCommand discards the command line and returns to VIEW.
func (s *UIState) ExitCommand() {
	s.Mode = ModeView
	s.Command.Clear()
}

func (s *UIState) EnterHelp() { s.Mode = ModeHelp }
func (s *UIState) ExitHelp()  { s.Mode = ModeView }

// EnterProcessSelect moves VIEW -> PROCESS_SELECT seeded with the first
// record. Callers must not invoke it with an empty table.
func (s *UIState) EnterProcessSelect(firstID int) {
	s.Mode = ModeProcessSelect
	s.SelectedProcessID = firstID
}

// ExitProcessSelect clears the selection and returns to VIEW.
func (s *UIState) ExitProcessSelect() {
	s.Mode = ModeView
	s.SelectedProcessID = 0
}

// SetPreview installs freshly built preview items, keeping the highlight
// inside the new bounds (-1 stays "none", and an empty list forces it).
func (s *UIState) SetPreview(items []string) {
	s.Preview = items
	if len(items) == 0 {
		s.PreviewIndex = -1
		return
	}
	if s.PreviewIndex >= len(items) {
		s.PreviewIndex = len(items) - 1
	}
	if s.PreviewIndex < -1 {
		s.PreviewIndex = -1
	}
}

// PreviewUp moves the highlight toward the first item, entering the list at
// item 0 when nothing is highlighted yet.
func (s *UIState) PreviewUp() {
	if len(s.Preview) == 0 {
		return
	}
	if s.PreviewIndex <= 0 {
		s.PreviewIndex = 0
		return
	}
	s.PreviewIndex--
}

func (s *UIState) PreviewDown() {
	if len(s.Preview) == 0 {
		return
	}
	if s.PreviewIndex < len(s.Preview)-1 {
		s.PreviewIndex++
	}
}

// CompletionItem returns the preview item tab-completion should apply: the
// highlighted one, or the first when nothing is highlighted.
func (s *UIState) CompletionItem() (string, bool) {
	if len(s.Preview) == 0 {
		return "", false
	}
	if s.PreviewIndex >= 0 && s.PreviewIndex < len(s.Preview) {
		return s.Preview[s.PreviewIndex], true
	}
	return s.Preview[0], true
}
