package console

import "image"

// Font describes a monospace glyph atlas. The console does not own the font;
// it must stay valid for as long as it is attached.
type Font interface {
	// GlyphSize is the size of one glyph cell in atlas pixels.
	GlyphSize() image.Point
	// GlyphBounds returns the atlas region holding r.
	GlyphBounds(r rune) (image.Rectangle, bool)
}

// GlyphAtlas lays runes out on a fixed grid of equally sized cells. It
// implements Font; renderers rasterise the glyphs into an image at Bounds.
type GlyphAtlas struct {
	glyph    image.Point
	columns  int
	index    map[rune]int
	runes    []rune
	fallback rune
}

// DefaultRunes covers printable ASCII and Latin-1.
func DefaultRunes() []rune {
	runes := make([]rune, 0, 0x7e-0x20+1+0xff-0xa1+1)
	for r := rune(0x20); r <= 0x7e; r++ {
		runes = append(runes, r)
	}
	for r := rune(0xa1); r <= 0xff; r++ {
		runes = append(runes, r)
	}
	return runes
}

// NewGlyphAtlas lays out runes in rows of columns cells of size glyph.
// Runes missing from the atlas resolve to '?' when it is present.
func NewGlyphAtlas(glyph image.Point, columns int, runes []rune) *GlyphAtlas {
	if columns < 1 {
		columns = 16
	}
	a := &GlyphAtlas{
		glyph:    glyph,
		columns:  columns,
		index:    make(map[rune]int, len(runes)),
		fallback: '?',
	}
	for _, r := range runes {
		if _, dup := a.index[r]; dup {
			continue
		}
		a.index[r] = len(a.runes)
		a.runes = append(a.runes, r)
	}
	return a
}

// GlyphSize implements Font.
func (a *GlyphAtlas) GlyphSize() image.Point { return a.glyph }

// GlyphBounds implements Font.
func (a *GlyphAtlas) GlyphBounds(r rune) (image.Rectangle, bool) {
	i, ok := a.index[r]
	if !ok {
		if i, ok = a.index[a.fallback]; !ok {
			return image.Rectangle{}, false
		}
	}
	return a.cell(i), true
}

func (a *GlyphAtlas) cell(i int) image.Rectangle {
	origin := image.Pt(i%a.columns*a.glyph.X, i/a.columns*a.glyph.Y)
	return image.Rectangle{Min: origin, Max: origin.Add(a.glyph)}
}

// Runes returns the runes in atlas order.
func (a *GlyphAtlas) Runes() []rune { return a.runes }

// Size returns the pixel size of the whole atlas.
func (a *GlyphAtlas) Size() image.Point {
	rows := (len(a.runes) + a.columns - 1) / a.columns
	return image.Pt(a.columns*a.glyph.X, rows*a.glyph.Y)
}
