package ebiten

import (
	"bytes"
	"fmt"
	"image"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	"devconsole/pkg/console"
)

// loadFont parses the Go Mono face and lays out the glyph atlas. The atlas
// image itself needs the graphics context and is rasterised on the first Draw.
func (e *Renderer) loadFont() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("load monospace font: %w", err)
	}
	e.face = &text.GoTextFace{Source: src, Size: e.opts.FontSize}
	e.atlas = console.NewGlyphAtlas(glyphSize(e.face), atlasColumns, console.DefaultRunes())
	return nil
}

// glyphSize returns the cell size of a monospace face, rounded up to whole pixels.
func glyphSize(face *text.GoTextFace) image.Point {
	m := face.Metrics()
	w := math.Ceil(text.Advance("M", face))
	h := math.Ceil(m.HAscent + m.HDescent)
	return image.Pt(max(int(w), 1), max(int(h), 1))
}

// atlasImageOrBuild returns the rasterised atlas, drawing every glyph in
// white at its atlas cell the first time it is needed.
func (e *Renderer) atlasImageOrBuild() *ebiten.Image {
	if e.atlasImage != nil {
		return e.atlasImage
	}

	size := e.atlas.Size()
	img := ebiten.NewImage(size.X, size.Y)
	for _, r := range e.atlas.Runes() {
		bounds, ok := e.atlas.GlyphBounds(r)
		if !ok {
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(bounds.Min.X), float64(bounds.Min.Y))
		text.Draw(img, string(r), e.face, op)
	}
	e.atlasImage = img

	log.Printf("Glyph atlas built (%d glyphs, %dx%d)", len(e.atlas.Runes()), size.X, size.Y)
	return img
}
