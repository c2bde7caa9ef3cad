package ebiten

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"devconsole/pkg/console"
)

// drawConsole draws the console panel with its top-left corner at origin.
// Everything is drawn into a sub-image clipped to the panel, so dst's own
// drawing state is left as it was.
func (e *Renderer) drawConsole(dst *ebiten.Image, origin image.Point, now time.Time) {
	if e.console.Font() == nil {
		return
	}
	w, h := e.console.PixelSize()
	panel := image.Rect(origin.X, origin.Y, origin.X+int(w), origin.Y+int(h))
	clip := panel.Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	sub := dst.SubImage(clip).(*ebiten.Image)

	cfg := e.console.Config()
	ox, oy := float32(origin.X), float32(origin.Y)
	vector.DrawFilledRect(sub, ox, oy, float32(w), float32(h), cfg.Background, false)

	switch s := e.console.Surface().(type) {
	case *console.Grid:
		e.drawGrid(sub, s, ox, oy)
		if e.console.CursorVisible(now) {
			e.drawCursor(sub, s.Cursor(), ox, oy, cfg.Foreground)
		}
	case *console.Lines:
		e.drawLines(sub, s, ox, oy)
		cur, ok := s.VisibleCursor(cfg.Height)
		if ok && e.console.CursorVisible(now) {
			e.drawCursor(sub, cur, ox, oy, cfg.Foreground)
		}
	}

	vector.StrokeRect(sub, ox+0.5, oy+0.5, float32(w)-1, float32(h)-1, 1, cfg.Border, false)
}

// drawGrid draws every glyph of the grid in batched DrawTriangles calls
// sampling the font atlas.
func (e *Renderer) drawGrid(dst *ebiten.Image, g *console.Grid, ox, oy float32) {
	cfg := e.console.Config()
	e.verts = g.AppendVertices(e.verts[:0], e.atlas, cfg.ScaleX, cfg.ScaleY)
	if len(e.verts) == 0 {
		return
	}
	atlas := e.atlasImageOrBuild()

	for start := 0; start < len(e.verts); start += maxQuadsPerDraw * 4 {
		end := min(start+maxQuadsPerDraw*4, len(e.verts))
		e.vertices = appendVertices(e.vertices[:0], e.verts[start:end], ox, oy)
		e.indices = appendQuadIndices(e.indices[:0], (end-start)/4)
		dst.DrawTriangles(e.vertices, e.indices, atlas, &ebiten.DrawTrianglesOptions{})
	}
}

// drawLines draws the visible rows of a line surface with the font face.
func (e *Renderer) drawLines(dst *ebiten.Image, l *console.Lines, ox, oy float32) {
	cfg := e.console.Config()
	_, ch := e.console.CellSize()
	for i, row := range l.Visible(cfg.Height) {
		if row.Text == "" {
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Scale(cfg.ScaleX, cfg.ScaleY)
		op.GeoM.Translate(float64(ox), float64(oy)+float64(i)*ch)
		op.ColorScale.ScaleWithColor(row.Color)
		text.Draw(dst, row.Text, e.face, op)
	}
}

// drawCursor draws an underline bar in the cell at cur.
func (e *Renderer) drawCursor(dst *ebiten.Image, cur image.Point, ox, oy float32, fg color.RGBA) {
	cw, ch := e.console.CellSize()
	bar := max(float32(ch)/8, 2)
	x := ox + float32(cur.X)*float32(cw)
	y := oy + float32(cur.Y+1)*float32(ch) - bar
	vector.DrawFilledRect(dst, x, y, float32(cw), bar, fg, false)
}

// appendVertices converts console vertices to Ebiten vertices offset by
// (dx, dy), with colours scaled to [0, 1].
func appendVertices(dst []ebiten.Vertex, src []console.Vertex, dx, dy float32) []ebiten.Vertex {
	for _, v := range src {
		dst = append(dst, ebiten.Vertex{
			DstX:   v.X + dx,
			DstY:   v.Y + dy,
			SrcX:   v.U,
			SrcY:   v.V,
			ColorR: float32(v.Color.R) / 255,
			ColorG: float32(v.Color.G) / 255,
			ColorB: float32(v.Color.B) / 255,
			ColorA: float32(v.Color.A) / 255,
		})
	}
	return dst
}

// appendQuadIndices appends two triangles per quad for vertices laid out
// top-left, top-right, bottom-right, bottom-left.
func appendQuadIndices(dst []uint16, quads int) []uint16 {
	for q := 0; q < quads; q++ {
		base := uint16(q * 4)
		dst = append(dst, base, base+1, base+2, base, base+2, base+3)
	}
	return dst
}
