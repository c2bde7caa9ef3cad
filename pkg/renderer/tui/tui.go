// Package tui hosts the console in a raw-mode terminal, redrawing the whole
// frame with ANSI colours after every key.
package tui

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	imgcolor "image/color"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/mattn/go-runewidth"

	"devconsole/pkg/console"
	"devconsole/pkg/engine/input"
	"devconsole/pkg/engine/terminal"
)

// TUIRenderer is the terminal host.
type TUIRenderer struct {
	console *console.Console
	in      *input.TerminalReader
	stdin   bool
	out     *bufio.Writer
	restore func()
	quit    bool

	colorCursor color.Style
	colorStatus color.Style
}

// New creates a terminal host reading keys from in and drawing to out.
func New(c *console.Console, in io.Reader, out io.Writer) *TUIRenderer {
	return &TUIRenderer{
		console: c,
		in:      input.NewTerminalReader(in),
		stdin:   in == os.Stdin,
		out:     bufio.NewWriter(out),
	}
}

// Init sets up colours, puts stdin into raw mode when it is a terminal and
// registers the quit command.
func (t *TUIRenderer) Init() error {
	t.colorCursor = color.Style{color.OpReverse}
	t.colorStatus = color.Style{color.FgGray}

	if t.stdin && input.IsTerminal() {
		restore, err := input.RawMode()
		if err != nil {
			return err
		}
		t.restore = restore
	}

	if err := t.console.AddCommand("quit", func([]string) string {
		t.quit = true
		return ""
	}); err != nil {
		return fmt.Errorf("register quit: %w", err)
	}
	return nil
}

// Run draws the console and applies keys until Ctrl+C, the quit command or
// the end of input.
func (t *TUIRenderer) Run() error {
	defer t.close()

	terminal.HideCursor(t.out)
	terminal.Clear(t.out)
	if err := t.render(); err != nil {
		return err
	}

	for {
		ev, err := t.in.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		intent := input.Translate(ev)
		switch intent.Action {
		case input.ActionQuit:
			return nil
		case input.ActionNone, input.ActionToggleConsole:
			continue
		}
		t.console.Update(intent)
		if t.quit {
			return nil
		}

		if err := t.render(); err != nil {
			return err
		}
	}
}

func (t *TUIRenderer) close() {
	terminal.ShowCursor(t.out)
	fmt.Fprint(t.out, "\r\n")
	t.out.Flush()
	if t.restore != nil {
		t.restore()
		t.restore = nil
	}
}

func (t *TUIRenderer) render() error {
	terminal.Home(t.out)
	t.out.WriteString(t.frame())
	return t.out.Flush()
}

// frame returns one full redraw: every console row followed by a status line.
func (t *TUIRenderer) frame() string {
	cfg := t.console.Config()
	var sb strings.Builder

	switch s := t.console.Surface().(type) {
	case *console.Grid:
		w, h := s.Size()
		cur := s.Cursor()
		for y := 0; y < h; y++ {
			cells := make([]cell, w)
			for x := range cells {
				c := s.At(x, y)
				cells[x] = cell{r: c.Glyph, fg: c.Color}
				if c.Glyph == 0 {
					cells[x] = cell{r: ' ', fg: cfg.Foreground}
				}
			}
			cursorX := -1
			if t.console.Focused && cur.Y == y {
				cursorX = cur.X
			}
			t.writeRow(&sb, cells, w, cfg.Background, cursorX)
		}
	case *console.Lines:
		rows := s.Visible(cfg.Height)
		cur, curOK := s.VisibleCursor(cfg.Height)
		for y := 0; y < cfg.Height; y++ {
			var cells []cell
			if y < len(rows) {
				for _, r := range rows[y].Text {
					cells = append(cells, cell{r: r, fg: rows[y].Color})
				}
			}
			for len(cells) < s.Width() {
				cells = append(cells, cell{r: ' ', fg: cfg.Foreground})
			}
			cursorX := -1
			if t.console.Focused && curOK && cur.Y == y {
				cursorX = cur.X
			}
			t.writeRow(&sb, cells, s.Width(), cfg.Background, cursorX)
		}
	}

	sb.WriteString(t.colorStatus.Sprint(gotext.Get("Ctrl+C to quit")))
	terminal.EraseLine(&sb)
	return sb.String()
}

type cell struct {
	r  rune
	fg imgcolor.RGBA
}

// writeRow writes at most width terminal columns of cells, grouping runs of
// the same colour, then erases the rest of the line.
func (t *TUIRenderer) writeRow(sb *strings.Builder, cells []cell, width int, bg imgcolor.RGBA, cursorX int) {
	var run strings.Builder
	var runFg imgcolor.RGBA
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(rgbStyle(runFg, bg).Sprint(run.String()))
		run.Reset()
	}

	cols := 0
	for x, c := range cells {
		r := c.r
		w := runewidth.RuneWidth(r)
		if w == 0 {
			r, w = ' ', 1
		}
		if cols+w > width {
			break
		}
		cols += w

		if x == cursorX {
			flush()
			sb.WriteString(t.colorCursor.Sprint(string(r)))
			continue
		}
		if run.Len() > 0 && c.fg != runFg {
			flush()
		}
		runFg = c.fg
		run.WriteRune(r)
	}
	flush()

	terminal.EraseLine(sb)
	sb.WriteString("\r\n")
}

func rgbStyle(fg, bg imgcolor.RGBA) *color.RGBStyle {
	return color.NewRGBStyle(color.RGB(fg.R, fg.G, fg.B), color.RGB(bg.R, bg.G, bg.B, true))
}

// Size picks a console size for the current terminal, keeping one row for
// the status line. Explicit sizes win.
func Size(width, height int) image.Point {
	w, h := terminal.ConsoleSize(width, height, 1)
	return image.Pt(w, h)
}
