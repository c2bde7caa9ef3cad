package console

import "testing"

func TestBuffer_Insert(t *testing.T) {
	var b Buffer
	for _, r := range "héllo" {
		b.Insert(r)
	}
	if b.String() != "héllo" {
		t.Errorf("String() = %q, want %q", b.String(), "héllo")
	}
	if b.Len() != 5 || b.Cursor() != 5 {
		t.Errorf("Len() = %d Cursor() = %d, want 5 5", b.Len(), b.Cursor())
	}

	b.SetCursor(1)
	b.Insert('X')
	if b.String() != "hXéllo" {
		t.Errorf("mid insert String() = %q, want %q", b.String(), "hXéllo")
	}
	if b.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", b.Cursor())
	}
}

func TestBuffer_Backspace(t *testing.T) {
	var b Buffer
	if b.Backspace() {
		t.Error("Backspace() on empty buffer = true, want false")
	}

	b.Set("abc")
	b.Home()
	if b.Backspace() {
		t.Error("Backspace() at start = true, want false")
	}
	b.End()
	if !b.Backspace() {
		t.Fatal("Backspace() at end = false, want true")
	}
	if b.String() != "ab" || b.Cursor() != 2 {
		t.Errorf("got %q cursor %d, want %q cursor 2", b.String(), b.Cursor(), "ab")
	}
}

func TestBuffer_Delete(t *testing.T) {
	var b Buffer
	b.Set("abc")
	if b.Delete() {
		t.Error("Delete() at end = true, want false")
	}
	b.SetCursor(1)
	if !b.Delete() {
		t.Fatal("Delete() = false, want true")
	}
	if b.String() != "ac" || b.Cursor() != 1 {
		t.Errorf("got %q cursor %d, want %q cursor 1", b.String(), b.Cursor(), "ac")
	}
}

func TestBuffer_CursorClamps(t *testing.T) {
	var b Buffer
	b.Set("abc")

	tests := []struct {
		set  int
		want int
	}{
		{-5, 0},
		{0, 0},
		{2, 2},
		{3, 3},
		{99, 3},
	}
	for _, tt := range tests {
		b.SetCursor(tt.set)
		if b.Cursor() != tt.want {
			t.Errorf("SetCursor(%d): Cursor() = %d, want %d", tt.set, b.Cursor(), tt.want)
		}
	}

	b.Home()
	b.Move(-1)
	if b.Cursor() != 0 {
		t.Errorf("Move(-1) at start: Cursor() = %d, want 0", b.Cursor())
	}
	b.End()
	b.Move(1)
	if b.Cursor() != 3 {
		t.Errorf("Move(1) at end: Cursor() = %d, want 3", b.Cursor())
	}
}

func TestBuffer_Clear(t *testing.T) {
	var b Buffer
	b.Set("abc")
	b.Clear()
	if b.String() != "" || b.Cursor() != 0 {
		t.Errorf("after Clear got %q cursor %d", b.String(), b.Cursor())
	}
}

func TestHistory_Navigation(t *testing.T) {
	h := NewHistory(0)
	for _, line := range []string{"a", "b", "c"} {
		h.Add(line)
	}

	wantPrev := []string{"c", "b", "a", "a"}
	for i, want := range wantPrev {
		got, ok := h.Prev()
		if !ok || got != want {
			t.Errorf("Prev() #%d = %q,%v, want %q,true", i+1, got, ok, want)
		}
	}

	wantNext := []string{"b", "c", "", ""}
	for i, want := range wantNext {
		got, ok := h.Next()
		if !ok || got != want {
			t.Errorf("Next() #%d = %q,%v, want %q,true", i+1, got, ok, want)
		}
	}
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(0)
	if _, ok := h.Prev(); ok {
		t.Error("Prev() on empty history ok = true")
	}
	if _, ok := h.Next(); ok {
		t.Error("Next() on empty history ok = true")
	}
	if _, ok := h.Last(); ok {
		t.Error("Last() on empty history ok = true")
	}
	if h.Selected() != "" {
		t.Errorf("Selected() = %q, want empty", h.Selected())
	}
}

func TestHistory_AddResetsIndex(t *testing.T) {
	h := NewHistory(0)
	h.Add("a")
	h.Add("b")
	h.Prev()
	h.Prev()
	h.Add("c")
	if h.Index() != 3 {
		t.Errorf("Index() = %d, want 3", h.Index())
	}
	if got, _ := h.Prev(); got != "c" {
		t.Errorf("Prev() = %q, want %q", got, "c")
	}
}

func TestHistory_Limit(t *testing.T) {
	h := NewHistory(2)
	for _, line := range []string{"a", "b", "c"} {
		h.Add(line)
	}
	got := h.Entries()
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("Entries() = %v, want [b c]", got)
	}
	if last, _ := h.Last(); last != "c" {
		t.Errorf("Last() = %q, want %q", last, "c")
	}
}
