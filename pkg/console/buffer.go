package console

// Buffer is the editable command line: a rune slice and a cursor in [0, Len()].
type Buffer struct {
	runes  []rune
	cursor int
}

// String returns the buffer contents.
func (b *Buffer) String() string { return string(b.runes) }

// Runes returns the buffer contents. The slice must not be modified.
func (b *Buffer) Runes() []rune { return b.runes }

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int { return len(b.runes) }

// Cursor returns the cursor offset.
func (b *Buffer) Cursor() int { return b.cursor }

// Insert adds r at the cursor and advances the cursor past it.
func (b *Buffer) Insert(r rune) {
	b.runes = append(b.runes, 0)
	copy(b.runes[b.cursor+1:], b.runes[b.cursor:])
	b.runes[b.cursor] = r
	b.cursor++
}

// Backspace removes the rune before the cursor. Returns false at the start of the buffer.
func (b *Buffer) Backspace() bool {
	if b.cursor == 0 {
		return false
	}
	b.cursor--
	b.runes = append(b.runes[:b.cursor], b.runes[b.cursor+1:]...)
	return true
}

// Delete removes the rune at the cursor. Returns false at the end of the buffer.
func (b *Buffer) Delete() bool {
	if b.cursor >= len(b.runes) {
		return false
	}
	b.runes = append(b.runes[:b.cursor], b.runes[b.cursor+1:]...)
	return true
}

// SetCursor moves the cursor, clamped to [0, Len()].
func (b *Buffer) SetCursor(idx int) {
	b.cursor = clamp(idx, 0, len(b.runes))
}

// Move shifts the cursor by delta, clamped.
func (b *Buffer) Move(delta int) { b.SetCursor(b.cursor + delta) }

// Home moves the cursor to the start.
func (b *Buffer) Home() { b.cursor = 0 }

// End moves the cursor past the last rune.
func (b *Buffer) End() { b.cursor = len(b.runes) }

// Set replaces the contents and puts the cursor at the end.
func (b *Buffer) Set(s string) {
	b.runes = []rune(s)
	b.cursor = len(b.runes)
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.runes = b.runes[:0]
	b.cursor = 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
