// Package console implements an in-game developer console: an editable
// command line with history, a command table with a catch-all entry handler,
// and a glyph grid or line list that renderers draw once per frame.
//
// The console is single-threaded. Hosts feed it one input.Intent at a time
// through Update and draw it from the same goroutine.
package console

import (
	"fmt"
	"image/color"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/leonelquinteros/gotext"

	"devconsole/pkg/engine/input"
)

// Console is the developer console widget.
type Console struct {
	// Focused consoles accept input and show a blinking cursor.
	Focused bool

	// EntryHandler, when set, receives any entry that does not match a
	// command or "clear", as a single raw string.
	EntryHandler EntryHandler

	cfg      Config
	prompt   []rune
	font     Font
	buffer   Buffer
	history  *History
	commands *CommandTable
	surface  Surface
	blink    blinker
	live     bool // the prompt and buffer are laid out on the surface
}

// New creates a console and emits the first prompt.
func New(cfg Config) *Console {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.ScaleX <= 0 {
		cfg.ScaleX = 1
	}
	if cfg.ScaleY <= 0 {
		cfg.ScaleY = 1
	}

	c := &Console{
		Focused:  true,
		cfg:      cfg,
		prompt:   []rune(cfg.Prompt),
		history:  NewHistory(cfg.HistoryLimit),
		commands: NewCommandTable(),
		blink:    blinker{period: cfg.BlinkPeriod},
	}

	switch cfg.Layout {
	case LayoutLines:
		c.surface = NewLines(cfg.Width)
	default:
		c.surface = NewGrid(cfg.Width, cfg.Height)
	}
	c.surface.SetForeground(cfg.Foreground)

	c.newPrompt()
	return c
}

// Config returns the console configuration, including colour changes.
func (c *Console) Config() Config { return c.cfg }

// Surface returns the display surface, a *Grid or a *Lines.
func (c *Console) Surface() Surface { return c.surface }

// Font returns the attached font, or nil.
func (c *Console) Font() Font { return c.font }

// SetFont attaches f. Without a font the console cannot be drawn.
func (c *Console) SetFont(f Font) { c.font = f }

// CellSize returns the on-screen size of one character cell.
func (c *Console) CellSize() (w, h float64) {
	if c.font == nil {
		return 0, 0
	}
	glyph := c.font.GlyphSize()
	return float64(glyph.X) * c.cfg.ScaleX, float64(glyph.Y) * c.cfg.ScaleY
}

// PixelSize returns the on-screen size of the whole console.
func (c *Console) PixelSize() (w, h float64) {
	cw, ch := c.CellSize()
	return cw * float64(c.cfg.Width), ch * float64(c.cfg.Height)
}

// Resize changes the console size in characters. A lines console reflows
// its scrollback; a grid console starts over with an empty grid.
func (c *Console) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if width == c.cfg.Width && height == c.cfg.Height {
		return
	}
	c.cfg.Width, c.cfg.Height = width, height

	switch s := c.surface.(type) {
	case *Lines:
		s.SetWidth(width)
	case *Grid:
		c.surface = NewGrid(width, height)
		c.surface.SetForeground(c.cfg.Foreground)
	}
	c.relayout()
}

// SetColors changes the panel colours. The foreground applies to text
// written from now on.
func (c *Console) SetColors(background, foreground, border color.RGBA) {
	c.cfg.Background = background
	c.cfg.Foreground = foreground
	c.cfg.Border = border
	c.surface.SetForeground(foreground)
}

// Prompt returns the prompt string.
func (c *Console) Prompt() string { return string(c.prompt) }

// SetPrompt replaces the prompt used by the current and future input lines.
func (c *Console) SetPrompt(p string) {
	c.cfg.Prompt = p
	c.prompt = []rune(p)
	if c.live {
		c.relayout()
	}
}

// Buffer returns the text being edited.
func (c *Console) Buffer() string { return c.buffer.String() }

// CursorAt returns the cursor offset within the buffer.
func (c *Console) CursorAt() int { return c.buffer.Cursor() }

// SetCursor moves the buffer cursor, clamped to the buffer.
func (c *Console) SetCursor(idx int) {
	c.buffer.SetCursor(idx)
	c.relayout()
}

// History returns the submitted-line history.
func (c *Console) History() *History { return c.history }

// Commands returns the command table.
func (c *Console) Commands() *CommandTable { return c.commands }

// AddCommand registers h under name. A later registration replaces an
// earlier one. "clear" is reserved.
func (c *Console) AddCommand(name string, h Handler) error {
	return c.commands.Register(name, h)
}

// CursorVisible advances the blink timer and reports whether the cursor
// should be drawn this frame.
func (c *Console) CursorVisible(now time.Time) bool {
	if !c.Focused {
		return false
	}
	return c.blink.visible(now)
}

// Update applies one input intent.
func (c *Console) Update(in input.Intent) {
	if !c.Focused {
		return
	}

	switch in.Action {
	case input.ActionInsert:
		if !unicode.IsPrint(in.Rune) {
			return
		}
		c.buffer.Insert(in.Rune)
	case input.ActionBackspace:
		if !c.buffer.Backspace() {
			return
		}
	case input.ActionDeleteForward:
		if !c.cfg.ForwardDelete || !c.buffer.Delete() {
			return
		}
	case input.ActionCursorLeft:
		c.buffer.Move(-1)
	case input.ActionCursorRight:
		c.buffer.Move(1)
	case input.ActionCursorHome:
		c.buffer.Home()
	case input.ActionCursorEnd:
		c.buffer.End()
	case input.ActionHistoryPrev:
		entry, ok := c.history.Prev()
		if !ok {
			return
		}
		c.buffer.Set(entry)
	case input.ActionHistoryNext:
		entry, ok := c.history.Next()
		if !ok {
			return
		}
		c.buffer.Set(entry)
	case input.ActionComplete:
		c.complete()
	case input.ActionScrollUp:
		c.scroll(1)
		return
	case input.ActionScrollDown:
		c.scroll(-1)
		return
	case input.ActionSubmit:
		c.submit()
	default:
		return
	}

	c.blink.wake()
	c.relayout()
}

// Run dispatches entry without touching the buffer or history. It returns
// false when nothing handled it: no command matched, it is not "clear" and
// there is no entry handler.
func (c *Console) Run(entry string) bool {
	args := Tokenize(entry)
	if len(args) == 0 {
		return true
	}

	if args[0] == ClearCommand {
		c.Clear()
		return true
	}
	if h, ok := c.commands.Lookup(args[0]); ok {
		c.printResult(h(args))
		return true
	}
	if c.EntryHandler != nil {
		c.printResult(c.EntryHandler(entry))
		return true
	}
	return false
}

// Clear empties the display and the buffer.
func (c *Console) Clear() {
	c.surface.Clear()
	c.buffer.Clear()
	c.history.Reset()
	if c.live {
		c.relayout()
	}
}

// Write appends p to the output, honouring newlines. It implements io.Writer.
func (c *Console) Write(p []byte) (int, error) {
	c.surface.Write(string(p))
	if c.live {
		c.relayout()
	}
	return len(p), nil
}

// Print appends its operands to the output, formatted as fmt.Sprint.
func (c *Console) Print(a ...any) {
	fmt.Fprint(c, a...)
}

// Println appends its operands and a newline to the output.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c, a...)
}

// Printf appends formatted output.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c, format, a...)
}

func (c *Console) printResult(res string) {
	if res == "" {
		return
	}
	c.Println(strings.TrimSuffix(res, "\n"))
}

func (c *Console) submit() {
	line := c.buffer.String()

	if strings.TrimSpace(line) == "" {
		switch c.cfg.EmptySubmit {
		case EmptyNewPrompt:
			c.surface.Commit()
			c.buffer.Clear()
			c.history.Reset()
			c.newPrompt()
			return
		case EmptyRepeat:
			last, ok := c.history.Last()
			if !ok {
				return
			}
			line = last
			c.buffer.Set(line)
			c.relayout()
		default:
			return
		}
	}

	c.surface.Commit()
	c.live = false
	c.buffer.Clear()
	c.history.Add(line)

	if !c.Run(line) {
		c.Println(gotext.Get("command not found: %s", Tokenize(line)[0]))
	}

	c.newPrompt()
}

func (c *Console) complete() {
	text := c.buffer.String()
	if strings.ContainsFunc(text, unicode.IsSpace) {
		return
	}

	matches := c.commands.Complete(text)
	switch len(matches) {
	case 0:
		return
	case 1:
		c.buffer.Set(matches[0] + " ")
	default:
		if prefix := commonPrefix(matches); utf8.RuneCountInString(prefix) > utf8.RuneCountInString(text) {
			c.buffer.Set(prefix)
			return
		}
		c.Println(strings.Join(matches, "  "))
	}
}

func (c *Console) scroll(dir int) {
	s, ok := c.surface.(scroller)
	if !ok {
		return
	}
	s.Scroll(dir * max(c.cfg.Height-1, 1))
}

func (c *Console) newPrompt() {
	c.live = true
	c.relayout()
}

// relayout pushes the prompt, buffer and cursor to the surface.
func (c *Console) relayout() {
	if !c.live {
		return
	}
	line := make([]rune, 0, len(c.prompt)+c.buffer.Len())
	line = append(line, c.prompt...)
	line = append(line, c.buffer.Runes()...)
	c.surface.Edit(line, len(c.prompt)+c.buffer.Cursor())
}

func commonPrefix(words []string) string {
	if len(words) == 0 {
		return ""
	}
	prefix := []rune(words[0])
	for _, w := range words[1:] {
		n := 0
		for _, r := range w {
			if n == len(prefix) || prefix[n] != r {
				break
			}
			n++
		}
		prefix = prefix[:n]
	}
	return string(prefix)
}
