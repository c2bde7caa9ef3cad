package console

import (
	"image"
	"image/color"
)

// Line is one logical line of a Lines surface.
type Line struct {
	Text  []rune
	Color color.RGBA
}

// String returns the line text.
func (l Line) String() string { return string(l.Text) }

// Row is one wrapped display row.
type Row struct {
	Text  string
	Color color.RGBA
}

// Lines is a growing list of text lines. Lines are stored unwrapped and
// wrapped against the configured width when rows are produced, so changing
// the width reflows everything.
type Lines struct {
	width  int
	lines  []Line
	open   bool // last committed line has no trailing newline yet
	input  []rune
	live   bool
	cursor int
	scroll int
	fg     color.RGBA
}

// NewLines creates a line surface wrapping at width characters.
func NewLines(width int) *Lines {
	return &Lines{
		width: max(width, 1),
		fg:    color.RGBA{255, 255, 255, 255},
	}
}

// Width returns the wrap width in characters.
func (l *Lines) Width() int { return l.width }

// SetWidth changes the wrap width; rows reflow on the next read.
func (l *Lines) SetWidth(width int) { l.width = max(width, 1) }

// SetForeground implements Surface.
func (l *Lines) SetForeground(c color.RGBA) { l.fg = c }

// Lines returns the committed logical lines.
func (l *Lines) Lines() []Line { return l.lines }

// Write implements Surface.
func (l *Lines) Write(s string) {
	for _, r := range s {
		if r == '\n' {
			if !l.open {
				l.lines = append(l.lines, Line{Color: l.fg})
			}
			l.open = false
			continue
		}
		if !l.open {
			l.lines = append(l.lines, Line{Color: l.fg})
			l.open = true
		}
		last := &l.lines[len(l.lines)-1]
		last.Text = append(last.Text, r)
	}
}

// Edit implements Surface.
func (l *Lines) Edit(line []rune, cursor int) {
	l.input = append(l.input[:0], line...)
	l.cursor = clamp(cursor, 0, len(l.input))
	l.live = true
	l.scroll = 0
}

// Commit implements Surface.
func (l *Lines) Commit() {
	if !l.live {
		return
	}
	text := make([]rune, len(l.input))
	copy(text, l.input)
	l.lines = append(l.lines, Line{Text: text, Color: l.fg})
	l.open = false
	l.input = l.input[:0]
	l.live = false
	l.cursor = 0
}

// Clear implements Surface.
func (l *Lines) Clear() {
	l.lines = nil
	l.open = false
	l.input = l.input[:0]
	l.live = false
	l.cursor = 0
	l.scroll = 0
}

// Scroll moves the view by delta rows; positive values show older rows.
func (l *Lines) Scroll(delta int) {
	l.scroll = clamp(l.scroll+delta, 0, max(len(l.Rows())-1, 0))
}

// ScrollOffset returns how many rows the view is scrolled back.
func (l *Lines) ScrollOffset() int { return l.scroll }

// Rows returns every wrapped row: committed lines followed by the live input.
func (l *Lines) Rows() []Row {
	var rows []Row
	for _, line := range l.lines {
		rows = l.appendWrapped(rows, line.Text, line.Color)
	}
	if l.live {
		rows = l.appendWrapped(rows, l.input, l.fg)
	}
	return rows
}

// Visible returns at most n rows ending at the current scroll position.
func (l *Lines) Visible(n int) []Row {
	rows := l.Rows()
	end := max(len(rows)-l.scroll, 0)
	start := max(end-n, 0)
	return rows[start:end]
}

// Cursor implements Surface. The row counts from the first row returned by Rows.
func (l *Lines) Cursor() image.Point {
	committed := 0
	for _, line := range l.lines {
		committed += wrappedRows(len(line.Text), l.width)
	}
	return image.Pt(l.cursor%l.width, committed+l.cursor/l.width)
}

// VisibleCursor returns the cursor relative to the first row of Visible(n),
// and false when the cursor is scrolled out of view.
func (l *Lines) VisibleCursor(n int) (image.Point, bool) {
	end := max(len(l.Rows())-l.scroll, 0)
	start := max(end-n, 0)
	cur := l.Cursor()
	cur.Y -= start
	return cur, l.live && cur.Y >= 0 && cur.Y < n
}

func (l *Lines) appendWrapped(rows []Row, text []rune, c color.RGBA) []Row {
	if len(text) == 0 {
		return append(rows, Row{Color: c})
	}
	for start := 0; start < len(text); start += l.width {
		end := min(start+l.width, len(text))
		rows = append(rows, Row{Text: string(text[start:end]), Color: c})
	}
	return rows
}

// wrappedRows returns how many rows n runes occupy at width.
func wrappedRows(n, width int) int {
	if n == 0 {
		return 1
	}
	return (n + width - 1) / width
}
