package console

import (
	"fmt"
	"image/color"
	"strings"
	"time"
)

// Layout selects the display surface.
type Layout int

const (
	LayoutGrid  Layout = iota // Fixed glyph grid
	LayoutLines               // Growing list of wrapped text lines
)

// EmptySubmit selects what Enter does on an empty buffer.
type EmptySubmit int

const (
	EmptyIgnore    EmptySubmit = iota // Nothing happens
	EmptyNewPrompt                    // The blank line is committed and a new prompt is shown
	EmptyRepeat                       // The most recent history entry is submitted again
)

// Config holds construction parameters for a Console.
type Config struct {
	// Size in characters
	Width  int
	Height int

	// Scaling factors applied to the font's glyph size
	ScaleX float64
	ScaleY float64

	Prompt string
	Layout Layout

	EmptySubmit   EmptySubmit
	ForwardDelete bool // Delete removes the rune at the cursor; off means the key is unsupported
	HistoryLimit  int  // 0 keeps every entry

	BlinkPeriod time.Duration

	Background color.RGBA
	Foreground color.RGBA
	Border     color.RGBA
}

// DefaultConfig returns an 80x24 grid console with a "$ " prompt.
func DefaultConfig() Config {
	return Config{
		Width:       80,
		Height:      24,
		ScaleX:      1,
		ScaleY:      1,
		Prompt:      "$ ",
		Layout:      LayoutGrid,
		BlinkPeriod: 500 * time.Millisecond,
		Background:  color.RGBA{0, 0, 0, 230},
		Foreground:  color.RGBA{255, 255, 255, 255},
		Border:      color.RGBA{255, 255, 255, 255},
	}
}

// ParseLayout parses "grid" or "lines".
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(s) {
	case "grid", "":
		return LayoutGrid, nil
	case "lines":
		return LayoutLines, nil
	}
	return LayoutGrid, fmt.Errorf("unknown layout %q (want grid or lines)", s)
}

// ParseEmptySubmit parses "ignore", "prompt" or "repeat".
func ParseEmptySubmit(s string) (EmptySubmit, error) {
	switch strings.ToLower(s) {
	case "ignore", "":
		return EmptyIgnore, nil
	case "prompt":
		return EmptyNewPrompt, nil
	case "repeat":
		return EmptyRepeat, nil
	}
	return EmptyIgnore, fmt.Errorf("unknown empty-submit policy %q (want ignore, prompt or repeat)", s)
}
