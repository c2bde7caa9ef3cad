package console

import (
	"image"
	"image/color"
)

// Surface is the presentation side of the console. It receives committed
// output and the live input line and decides where each rune lands.
type Surface interface {
	// Write appends committed text at the write position. '\n' starts a new row.
	Write(s string)
	// Edit lays out the live input line (prompt included) on a fresh row below
	// the committed text, with the cursor at offset cursor into line.
	Edit(line []rune, cursor int)
	// Commit turns the live input line into committed text.
	Commit()
	// Clear removes everything.
	Clear()
	// Cursor returns the cursor cell as (column, row).
	Cursor() image.Point
	// SetForeground sets the colour used for subsequent writes.
	SetForeground(c color.RGBA)
}

// scroller is implemented by surfaces with scrollback.
type scroller interface {
	Scroll(delta int)
}
