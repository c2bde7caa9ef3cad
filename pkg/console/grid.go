package console

import (
	"image"
	"image/color"
	"strings"
)

// Cell is one glyph slot of a Grid. A zero Glyph is an empty cell.
type Cell struct {
	Glyph rune
	Color color.RGBA
}

// Grid is a fixed-size character grid. Text flows left to right and wraps at
// the right edge; a newline right after a wrap does not add a blank row.
// Writing past the last cell clears the grid and continues at the top-left.
type Grid struct {
	width, height int
	cells         []Cell
	fg            color.RGBA

	write      int // linear index of the next committed rune
	inputStart int // linear index of the live input line
	inputLen   int // cells occupied by the live input line
	cursor     int
	wrapped    bool // the last committed rune filled its row
}

// NewGrid creates a width x height grid. Sizes below 1 are raised to 1.
func NewGrid(width, height int) *Grid {
	width = max(width, 1)
	height = max(height, 1)
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		fg:     color.RGBA{255, 255, 255, 255},
	}
}

// Size returns the grid size in cells.
func (g *Grid) Size() (width, height int) { return g.width, g.height }

// Cells returns the cells in row-major order. The slice must not be modified.
func (g *Grid) Cells() []Cell { return g.cells }

// At returns the cell at column x, row y.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return Cell{}
	}
	return g.cells[y*g.width+x]
}

// CursorIndex returns the cursor as a linear cell index.
func (g *Grid) CursorIndex() int { return g.cursor }

// Cursor implements Surface.
func (g *Grid) Cursor() image.Point {
	return image.Pt(g.cursor%g.width, g.cursor/g.width)
}

// SetForeground implements Surface.
func (g *Grid) SetForeground(c color.RGBA) { g.fg = c }

// Write implements Surface.
func (g *Grid) Write(s string) {
	g.clearInput()
	for _, r := range s {
		g.put(r)
	}
	g.inputStart = g.write
	g.cursor = min(g.write, len(g.cells)-1)
}

// Edit implements Surface.
func (g *Grid) Edit(line []rune, cursor int) {
	g.clearInput()

	start := g.write
	if start%g.width != 0 {
		start = g.nextLine(start)
	}
	if start+len(line) > len(g.cells) {
		g.clearCells()
		g.write = 0
		g.wrapped = false
		start = 0
	}

	// A line longer than the grid shows whole rows from its tail, keeping
	// the cursor row on screen.
	skip := 0
	if over := max(len(line), cursor+1) - len(g.cells); over > 0 {
		skip = (over + g.width - 1) / g.width
		skip = min(skip, max(cursor, 0)/g.width)
	}
	line = line[skip*g.width:]
	cursor -= skip * g.width

	n := min(len(line), len(g.cells)-start)
	for i := 0; i < n; i++ {
		g.set(start+i, line[i])
	}

	g.inputStart = start
	g.inputLen = n
	g.cursor = clamp(start+cursor, 0, len(g.cells)-1)
}

// Commit implements Surface.
func (g *Grid) Commit() {
	end := g.inputStart + g.inputLen
	if g.inputLen == 0 || end%g.width != 0 {
		end = g.nextLine(end)
	}
	g.write = end
	g.inputStart = end
	g.inputLen = 0
	g.wrapped = false
	g.cursor = min(g.write, len(g.cells)-1)
}

// Clear implements Surface.
func (g *Grid) Clear() {
	g.clearCells()
	g.write = 0
	g.wrapped = false
	g.inputStart = 0
	g.inputLen = 0
	g.cursor = 0
}

// Rows returns each row as text with trailing blanks trimmed.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		sb.Reset()
		for _, c := range g.cells[y*g.width : (y+1)*g.width] {
			if c.Glyph == 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(c.Glyph)
			}
		}
		rows[y] = strings.TrimRight(sb.String(), " ")
	}
	return rows
}

// String returns the non-empty rows joined by newlines.
func (g *Grid) String() string {
	rows := g.Rows()
	last := len(rows)
	for last > 0 && rows[last-1] == "" {
		last--
	}
	return strings.Join(rows[:last], "\n")
}

// put writes one committed rune at the write position.
func (g *Grid) put(r rune) {
	if r == '\n' {
		// The row already ended when the last rune filled it
		if !g.wrapped {
			g.write = g.nextLine(g.write)
		}
		g.wrapped = false
		return
	}
	if g.write >= len(g.cells) {
		g.clearCells()
		g.write = 0
	}
	g.set(g.write, r)
	g.write++
	g.wrapped = g.write%g.width == 0
}

func (g *Grid) set(i int, r rune) {
	if r == ' ' {
		g.cells[i] = Cell{}
		return
	}
	g.cells[i] = Cell{Glyph: r, Color: g.fg}
}

// clearInput blanks the cells used by the live input line.
func (g *Grid) clearInput() {
	end := min(g.inputStart+g.inputLen, len(g.cells))
	for i := g.inputStart; i < end; i++ {
		g.cells[i] = Cell{}
	}
	g.inputLen = 0
}

func (g *Grid) clearCells() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
}

func (g *Grid) nextLine(i int) int {
	return i + g.width - i%g.width
}

// Vertex is one corner of a glyph quad: destination position in console
// pixels, source position in the font atlas and a colour.
type Vertex struct {
	X, Y  float32
	U, V  float32
	Color color.RGBA
}

// AppendVertices appends four vertices per visible glyph (top-left,
// top-right, bottom-right, bottom-left) and returns the extended slice.
// scaleX and scaleY multiply the font's glyph size to give the cell size.
func (g *Grid) AppendVertices(dst []Vertex, font Font, scaleX, scaleY float64) []Vertex {
	if font == nil {
		return dst
	}
	glyph := font.GlyphSize()
	cw := float32(float64(glyph.X) * scaleX)
	ch := float32(float64(glyph.Y) * scaleY)

	for i, c := range g.cells {
		if c.Glyph == 0 {
			continue
		}
		src, ok := font.GlyphBounds(c.Glyph)
		if !ok {
			continue
		}
		x := float32(i%g.width) * cw
		y := float32(i/g.width) * ch
		u0, v0 := float32(src.Min.X), float32(src.Min.Y)
		u1, v1 := float32(src.Max.X), float32(src.Max.Y)
		dst = append(dst,
			Vertex{X: x, Y: y, U: u0, V: v0, Color: c.Color},
			Vertex{X: x + cw, Y: y, U: u1, V: v0, Color: c.Color},
			Vertex{X: x + cw, Y: y + ch, U: u1, V: v1, Color: c.Color},
			Vertex{X: x, Y: y + ch, U: u0, V: v1, Color: c.Color},
		)
	}
	return dst
}
