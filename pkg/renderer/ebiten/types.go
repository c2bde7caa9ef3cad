// Package ebiten hosts the console in an Ebiten window, drawn over a demo
// scene and toggled with the backtick key.
package ebiten

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"devconsole/pkg/console"
	"devconsole/pkg/engine/input"
)

const (
	defaultFontSize = 16
	consoleMargin   = 8 // Gap between the window edge and the console panel
	slideDuration   = 200 * time.Millisecond
	atlasColumns    = 16
	maxQuadsPerDraw = 65535 / 4 // uint16 indices address at most 65535 vertices
)

var (
	colorScene     = color.RGBA{26, 26, 46, 255}
	colorSceneText = color.RGBA{120, 130, 180, 255}
)

// Options configures the window.
type Options struct {
	Title    string
	FontSize float64 // Point size of the console font; the console scale multiplies it
	Open     bool    // Start with the console shown
}

// Renderer implements ebiten.Game around a console.Console.
type Renderer struct {
	console *console.Console
	opts    Options

	windowWidth  int
	windowHeight int

	// Face rasterised into the atlas
	face       *text.GoTextFace
	atlas      *console.GlyphAtlas
	atlasImage *ebiten.Image // Built on the first Draw

	slide  slide
	repeat *input.KeyRepeater
	chars  []rune
	quit   bool

	// Reused per frame
	verts    []console.Vertex
	vertices []ebiten.Vertex
	indices  []uint16

	windowOpenedLogged bool
}
