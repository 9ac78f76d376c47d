package core

// LineBuffer is the single-line text buffer shared by edit mode and command
// mode. The cursor is a rune index and is always kept in [0, Len()].
type LineBuffer struct {
	runes []rune
	pos   int
}

func (b *LineBuffer) String() string { return string(b.runes) }
func (b *LineBuffer) Len() int       { return len(b.runes) }
func (b *LineBuffer) Pos() int       { return b.pos }

// SetText replaces the whole buffer and moves the cursor to the end. This is
// also the completion primitive: applying a preview item is SetText(item).
func (b *LineBuffer) SetText(s string) {
	b.runes = []rune(s)
	b.pos = len(b.runes)
}

func (b *LineBuffer) Clear() {
	b.runes = b.runes[:0]
	b.pos = 0
}

func (b *LineBuffer) Insert(r rune) {
	b.clamp()
	b.runes = append(b.runes, 0)
	copy(b.runes[b.pos+1:], b.runes[b.pos:])
	b.runes[b.pos] = r
	b.pos++
}

func (b *LineBuffer) InsertString(s string) {
	for _, r := range s {
		b.Insert(r)
	}
}

// Backspace removes the rune before the cursor. Reports whether anything
// changed.
func (b *LineBuffer) Backspace() bool {
	b.clamp()
	if b.pos == 0 {
		return false
	}
	b.runes = append(b.runes[:b.pos-1], b.runes[b.pos:]...)
	b.pos--
	return true
}

// Delete removes the rune under the cursor.
func (b *LineBuffer) Delete() bool {
	b.clamp()
	if b.pos >= len(b.runes) {
		return false
	}
	b.runes = append(b.runes[:b.pos], b.runes[b.pos+1:]...)
	return true
}

func (b *LineBuffer) Left() {
	if b.pos > 0 {
		b.pos--
	}
}

func (b *LineBuffer) Right() {
	if b.pos < len(b.runes) {
		b.pos++
	}
}

func (b *LineBuffer) clamp() {
	if b.pos < 0 {
		b.pos = 0
	}
	if b.pos > len(b.runes) {
		b.pos = len(b.runes)
	}
}
