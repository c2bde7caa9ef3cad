package cvar

import (
	"image/color"
	"strings"
	"sync"
	"testing"
)

func TestStore_GetSet(t *testing.T) {
	s := New()
	if _, ok := s.Get("missing"); ok {
		t.Error("Get(missing) ok = true")
	}

	s.Set("Console.Prompt", "> ")
	v, ok := s.Get("console.prompt")
	if !ok || v != "> " {
		t.Errorf("Get(console.prompt) = %q,%v, want %q,true", v, ok, "> ")
	}

	s.Default("console.prompt", "$ ")
	if v, _ := s.Get("console.prompt"); v != "> " {
		t.Errorf("Default overwrote an existing value: %q", v)
	}
	s.Default("version", "dev")
	if v, _ := s.Get("version"); v != "dev" {
		t.Errorf("Get(version) = %q, want %q", v, "dev")
	}
}

func TestStore_Names(t *testing.T) {
	s := New()
	for _, n := range []string{"b", "C", "a"} {
		s.Set(n, "1")
	}
	if got := strings.Join(s.Names(), ","); got != "a,b,c" {
		t.Errorf("Names() = %s, want a,b,c", got)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestStore_Concurrent(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Set("k", "v")
				s.Get("k")
				s.Names()
			}
		}()
	}
	wg.Wait()
}

func TestParseColorRGBA(t *testing.T) {
	tests := []struct {
		in     string
		want   color.RGBA
		wantOK bool
	}{
		{"0,0,0,230", color.RGBA{0, 0, 0, 230}, true},
		{" 255 , 128, 0 ,255", color.RGBA{255, 128, 0, 255}, true},
		{"1,2,3", color.RGBA{}, false},
		{"1,2,3,4,5", color.RGBA{}, false},
		{"256,0,0,0", color.RGBA{}, false},
		{"-1,0,0,0", color.RGBA{}, false},
		{"red,0,0,0", color.RGBA{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseColorRGBA(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseColorRGBA(%q) = %v,%v, want %v,%v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestStore_Color(t *testing.T) {
	s := New()
	want := color.RGBA{10, 20, 30, 40}
	s.SetColor("console.background", want)
	if v, _ := s.Get("console.background"); v != "10,20,30,40" {
		t.Errorf("stored %q, want %q", v, "10,20,30,40")
	}
	got, ok := s.Color("console.background")
	if !ok || got != want {
		t.Errorf("Color() = %v,%v, want %v,true", got, ok, want)
	}

	s.Set("console.foreground", "white")
	if _, ok := s.Color("console.foreground"); ok {
		t.Error("Color() of a malformed value ok = true")
	}
	if _, ok := s.Color("nope"); ok {
		t.Error("Color() of a missing value ok = true")
	}
}
