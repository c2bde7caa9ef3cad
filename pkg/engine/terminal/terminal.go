package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// ConsoleSize returns a console grid size that fits the terminal, leaving
// reserve rows free for a status line. Explicit non-zero sizes win.
func ConsoleSize(width, height, reserve int) (int, int) {
	tw, th := GetSize()
	if width <= 0 {
		width = tw
	}
	if height <= 0 {
		height = th - reserve
	}
	if height < 1 {
		height = 1
	}
	return width, height
}

// ANSI control sequences used by the terminal renderer.
const (
	seqHome       = "\x1b[H"
	seqClear      = "\x1b[2J"
	seqHideCursor = "\x1b[?25l"
	seqShowCursor = "\x1b[?25h"
	seqEraseLine  = "\x1b[K"
)

// Home moves the cursor to the top-left corner.
func Home(w io.Writer) { fmt.Fprint(w, seqHome) }

// Clear erases the screen and homes the cursor.
func Clear(w io.Writer) { fmt.Fprint(w, seqClear+seqHome) }

// HideCursor hides the hardware cursor; the console draws its own.
func HideCursor(w io.Writer) { fmt.Fprint(w, seqHideCursor) }

// ShowCursor restores the hardware cursor.
func ShowCursor(w io.Writer) { fmt.Fprint(w, seqShowCursor) }

// EraseLine clears from the cursor to the end of the line.
func EraseLine(w io.Writer) { fmt.Fprint(w, seqEraseLine) }
