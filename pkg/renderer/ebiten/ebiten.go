package ebiten

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"

	"devconsole/pkg/console"
	"devconsole/pkg/engine/input"
)

// New creates an Ebiten host for c.
func New(c *console.Console, opts Options) *Renderer {
	if opts.FontSize <= 0 {
		opts.FontSize = defaultFontSize
	}
	if opts.Title == "" {
		opts.Title = "Developer Console"
	}
	e := &Renderer{
		console: c,
		opts:    opts,
		repeat:  input.NewKeyRepeater(),
		slide:   slide{duration: slideDuration},
	}
	e.slide.set(opts.Open)
	c.Focused = opts.Open
	return e
}

// Init loads the console font, sizes the window around the console panel
// and registers the quit command.
func (e *Renderer) Init() error {
	if err := e.loadFont(); err != nil {
		return err
	}
	e.console.SetFont(e.atlas)

	w, h := e.console.PixelSize()
	e.windowWidth = int(w) + consoleMargin*2
	e.windowHeight = int(h)*3/2 + consoleMargin*2
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(e.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := e.console.AddCommand("quit", func([]string) string {
		e.quit = true
		return ""
	}); err != nil {
		return fmt.Errorf("register quit: %w", err)
	}
	return nil
}

// Run starts the Ebiten game loop and blocks until the window closes.
func (e *Renderer) Run() error {
	return ebiten.RunGame(e)
}

// Layout implements ebiten.Game. A lines console rewraps to the window
// width; a grid console keeps its configured size.
func (e *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth && e.console.Config().Layout == console.LayoutLines {
		cw, _ := e.console.CellSize()
		if cols := fitColumns(outsideWidth, cw); cols > 0 {
			e.console.Resize(cols, e.console.Config().Height)
		}
	}
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}

// fitColumns returns how many cells of width cellWidth fit between the
// window margins, or 0 when the cell size is unknown.
func fitColumns(windowWidth int, cellWidth float64) int {
	if cellWidth <= 0 {
		return 0
	}
	return max(int(float64(windowWidth-consoleMargin*2)/cellWidth+1e-6), 1)
}

// Draw implements ebiten.Game. The console slides down from the top edge
// over the scene.
func (e *Renderer) Draw(screen *ebiten.Image) {
	e.drawScene(screen)

	now := time.Now()
	progress := e.slide.at(now)
	if progress <= 0 {
		return
	}

	_, h := e.console.PixelSize()
	top := consoleMargin + int((h+consoleMargin)*(progress-1))
	e.drawConsole(screen, image.Pt(consoleMargin, top), now)
}

// drawScene stands in for the game the console is embedded in.
func (e *Renderer) drawScene(screen *ebiten.Image) {
	screen.Fill(colorScene)
	if e.face == nil {
		return
	}

	hint := gotext.Get("Press ` to toggle the console")
	w, h := text.Measure(hint, e.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(e.windowWidth)/2-w/2, float64(e.windowHeight)-h-consoleMargin*2)
	op.ColorScale.ScaleWithColor(colorSceneText)
	text.Draw(screen, hint, e.face, op)
}
