package console

// History is the append-only list of submitted lines plus a navigation index.
// The index ranges over [0, Len()]; Len() means "editing a fresh line".
type History struct {
	entries []string
	index   int
	limit   int
}

// NewHistory creates a history. limit <= 0 keeps every entry.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Add appends line and resets navigation to the fresh line.
func (h *History) Add(line string) {
	h.entries = append(h.entries, line)
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
	h.index = len(h.entries)
}

// Prev steps towards older entries, clamping at the oldest.
// Returns the selected entry and false if there is no history.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.index > 0 {
		h.index--
	}
	return h.entries[h.index], true
}

// Next steps towards newer entries, clamping at the fresh line, which selects "".
// Returns false if there is no history.
func (h *History) Next() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.index < len(h.entries) {
		h.index++
	}
	return h.Selected(), true
}

// Selected returns the entry at the navigation index, or "" on the fresh line.
func (h *History) Selected() string {
	if h.index >= len(h.entries) {
		return ""
	}
	return h.entries[h.index]
}

// Index returns the navigation index.
func (h *History) Index() int { return h.index }

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }

// Last returns the most recent entry.
func (h *History) Last() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	return h.entries[len(h.entries)-1], true
}

// Entries returns a copy of all entries, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Reset returns navigation to the fresh line.
func (h *History) Reset() { h.index = len(h.entries) }
