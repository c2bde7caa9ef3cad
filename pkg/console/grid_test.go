package console

import (
	"image"
	"image/color"
	"testing"
)

func TestGrid_WriteWrapsAtRightEdge(t *testing.T) {
	g := NewGrid(4, 3)
	g.Write("abcdef")
	want := "abcd\nef"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := g.Cursor(); got != image.Pt(2, 1) {
		t.Errorf("Cursor() = %v, want (2,1)", got)
	}
}

func TestGrid_NewlineAfterFullRow(t *testing.T) {
	g := NewGrid(4, 3)
	g.Write("abcd")
	g.Write("\n")
	g.Write("x")
	if got := g.String(); got != "abcd\nx" {
		t.Errorf("String() = %q, want %q", got, "abcd\nx")
	}
}

func TestGrid_NewlineAtRowStart(t *testing.T) {
	g := NewGrid(4, 5)
	g.Write("ab\n")
	g.Write("\n")
	g.Write("abcd\n\nx")
	if got := g.String(); got != "ab\n\nabcd\n\nx" {
		t.Errorf("String() = %q, want %q", got, "ab\n\nabcd\n\nx")
	}
}

func TestGrid_WritePastEndClears(t *testing.T) {
	g := NewGrid(3, 2)
	g.Write("abcdef")
	g.Write("g")
	if got := g.String(); got != "g" {
		t.Errorf("String() = %q, want %q", got, "g")
	}
	if g.CursorIndex() != 1 {
		t.Errorf("CursorIndex() = %d, want 1", g.CursorIndex())
	}
}

func TestGrid_EditReplacesLiveLine(t *testing.T) {
	g := NewGrid(6, 3)
	g.Edit([]rune("$ abcd"), 6)
	g.Edit([]rune("$ a"), 3)
	if got := g.String(); got != "$ a" {
		t.Errorf("String() = %q, want %q", got, "$ a")
	}
	if got := g.Cursor(); got != image.Pt(3, 0) {
		t.Errorf("Cursor() = %v, want (3,0)", got)
	}
}

func TestGrid_EditLongerThanGridShowsTail(t *testing.T) {
	g := NewGrid(4, 2)
	g.Edit([]rune("$ abcdefghij"), 12)
	if got := g.String(); got != "ghij" {
		t.Errorf("String() = %q, want %q", got, "ghij")
	}
	if got := g.Cursor(); got != image.Pt(0, 1) {
		t.Errorf("Cursor() = %v, want (0,1)", got)
	}

	// Typing one more rune keeps it and the cursor on screen
	g.Edit([]rune("$ abcdefghijk"), 13)
	if got := g.At(3, 0).Glyph; got != 'j' {
		t.Errorf("At(3,0) = %q, want 'j'", got)
	}
	if got := g.At(0, 1).Glyph; got != 'k' {
		t.Errorf("At(0,1) = %q, want 'k'", got)
	}
	if got := g.Cursor(); got != image.Pt(1, 1) {
		t.Errorf("Cursor() = %v, want (1,1)", got)
	}
}

func TestGrid_EditLongerThanGridFollowsCursor(t *testing.T) {
	g := NewGrid(4, 2)
	g.Edit([]rune("$ abcdefghij"), 0)
	if got := g.String(); got != "$ ab\ncdef" {
		t.Errorf("String() = %q, want %q", got, "$ ab\ncdef")
	}
	if g.CursorIndex() != 0 {
		t.Errorf("CursorIndex() = %d, want 0", g.CursorIndex())
	}

	g.Edit([]rune("$ abcdefghij"), 9)
	if got := g.String(); got != "cdef\nghij" {
		t.Errorf("String() = %q, want %q", got, "cdef\nghij")
	}
	if got := g.Cursor(); got != image.Pt(1, 1) {
		t.Errorf("Cursor() = %v, want (1,1)", got)
	}
}

func TestGrid_CommitFullRow(t *testing.T) {
	g := NewGrid(4, 3)
	g.Edit([]rune("$ ab"), 4)
	g.Commit()
	g.Edit([]rune("$ "), 2)
	if got := g.String(); got != "$ ab\n$" {
		t.Errorf("String() = %q, want %q", got, "$ ab\n$")
	}
}

func TestGrid_ClearResetsCursor(t *testing.T) {
	g := NewGrid(4, 3)
	g.Write("hello")
	g.Clear()
	if g.String() != "" || g.CursorIndex() != 0 {
		t.Errorf("after Clear String() = %q CursorIndex() = %d", g.String(), g.CursorIndex())
	}
}

func TestGrid_ForegroundApplies(t *testing.T) {
	g := NewGrid(4, 1)
	red := color.RGBA{255, 0, 0, 255}
	g.Write("a")
	g.SetForeground(red)
	g.Write("b")
	if got := g.At(0, 0).Color; got == red {
		t.Errorf("At(0,0).Color = %v, want the original foreground", got)
	}
	if got := g.At(1, 0).Color; got != red {
		t.Errorf("At(1,0).Color = %v, want %v", got, red)
	}
	if got := g.At(9, 9); got != (Cell{}) {
		t.Errorf("At out of range = %v, want empty cell", got)
	}
}

func TestGrid_AppendVertices(t *testing.T) {
	g := NewGrid(4, 2)
	g.Write("a b\nc")
	atlas := NewGlyphAtlas(image.Pt(8, 16), 16, DefaultRunes())

	if got := g.AppendVertices(nil, nil, 1, 1); len(got) != 0 {
		t.Errorf("AppendVertices without font = %d vertices, want 0", len(got))
	}

	verts := g.AppendVertices(nil, atlas, 2, 1)
	// Spaces are empty cells and produce no quad
	if len(verts) != 3*4 {
		t.Fatalf("len = %d, want 12", len(verts))
	}

	src, _ := atlas.GlyphBounds('b')
	quad := verts[4:8]
	want := []Vertex{
		{X: 32, Y: 0, U: float32(src.Min.X), V: float32(src.Min.Y)},
		{X: 48, Y: 0, U: float32(src.Max.X), V: float32(src.Min.Y)},
		{X: 48, Y: 16, U: float32(src.Max.X), V: float32(src.Max.Y)},
		{X: 32, Y: 16, U: float32(src.Min.X), V: float32(src.Max.Y)},
	}
	for i := range want {
		want[i].Color = g.At(2, 0).Color
		if quad[i] != want[i] {
			t.Errorf("vertex %d = %+v, want %+v", i, quad[i], want[i])
		}
	}

	if last := verts[8]; last.X != 0 || last.Y != 16 {
		t.Errorf("'c' quad starts at (%v,%v), want (0,16)", last.X, last.Y)
	}
}

func TestGlyphAtlas_Bounds(t *testing.T) {
	atlas := NewGlyphAtlas(image.Pt(8, 16), 16, DefaultRunes())

	tests := []struct {
		r    rune
		want image.Rectangle
	}{
		{' ', image.Rect(0, 0, 8, 16)},
		{'!', image.Rect(8, 0, 16, 16)},
		{'0', image.Rect(0, 16, 8, 32)},
		{'世', mustBounds(t, atlas, '?')},
	}
	for _, tt := range tests {
		got, ok := atlas.GlyphBounds(tt.r)
		if !ok || got != tt.want {
			t.Errorf("GlyphBounds(%q) = %v,%v, want %v,true", tt.r, got, ok, tt.want)
		}
	}

	rows := (len(DefaultRunes()) + 15) / 16
	if got := atlas.Size(); got != image.Pt(128, rows*16) {
		t.Errorf("Size() = %v, want (128,%d)", got, rows*16)
	}
}

func TestGlyphAtlas_NoFallback(t *testing.T) {
	atlas := NewGlyphAtlas(image.Pt(8, 8), 4, []rune("ab"))
	if _, ok := atlas.GlyphBounds('z'); ok {
		t.Error("GlyphBounds(z) ok = true without a '?' glyph")
	}
	if got := string(atlas.Runes()); got != "ab" {
		t.Errorf("Runes() = %q, want %q", got, "ab")
	}
}

func mustBounds(t *testing.T, f Font, r rune) image.Rectangle {
	t.Helper()
	b, ok := f.GlyphBounds(r)
	if !ok {
		t.Fatalf("GlyphBounds(%q) not found", r)
	}
	return b
}

func TestLines_WriteAndReflow(t *testing.T) {
	l := NewLines(5)
	l.Write("hello world\npartial")
	l.Write(" line\n")

	if n := len(l.Lines()); n != 2 {
		t.Fatalf("len(Lines()) = %d, want 2", n)
	}
	if got := l.Lines()[1].String(); got != "partial line" {
		t.Errorf("Lines()[1] = %q, want %q", got, "partial line")
	}
	if n := len(l.Rows()); n != 6 {
		t.Errorf("len(Rows()) at width 5 = %d, want 6", n)
	}

	l.SetWidth(20)
	if n := len(l.Rows()); n != 2 {
		t.Errorf("len(Rows()) at width 20 = %d, want 2", n)
	}
}

func TestLines_EmptyLineKeepsRow(t *testing.T) {
	l := NewLines(10)
	l.Write("a\n\nb\n")
	rows := l.Rows()
	if len(rows) != 3 || rows[1].Text != "" {
		t.Errorf("Rows() = %+v, want a blank middle row", rows)
	}
}

func TestLines_Visible(t *testing.T) {
	l := NewLines(10)
	for _, s := range []string{"1", "2", "3", "4", "5"} {
		l.Write(s + "\n")
	}
	got := l.Visible(2)
	if len(got) != 2 || got[0].Text != "4" || got[1].Text != "5" {
		t.Errorf("Visible(2) = %+v, want rows 4 and 5", got)
	}

	l.Scroll(3)
	got = l.Visible(2)
	if len(got) != 2 || got[0].Text != "1" || got[1].Text != "2" {
		t.Errorf("scrolled Visible(2) = %+v, want rows 1 and 2", got)
	}

	l.Scroll(100)
	if l.ScrollOffset() != 4 {
		t.Errorf("ScrollOffset() = %d, want 4", l.ScrollOffset())
	}
}

func TestLines_VisibleCursor(t *testing.T) {
	l := NewLines(10)
	for _, s := range []string{"1", "2", "3"} {
		l.Write(s + "\n")
	}
	if _, ok := l.VisibleCursor(2); ok {
		t.Error("VisibleCursor() ok = true without a live line")
	}

	l.Edit([]rune("$ ab"), 4)
	cur, ok := l.VisibleCursor(2)
	if !ok || cur != image.Pt(4, 1) {
		t.Errorf("VisibleCursor(2) = %v,%v, want (4,1),true", cur, ok)
	}

	l.Scroll(2)
	if _, ok := l.VisibleCursor(2); ok {
		t.Error("VisibleCursor() ok = true while scrolled back")
	}
}
