// Package cvar holds named configuration variables that can be read and
// changed at runtime from the console.
package cvar

import (
	"image/color"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Store is a set of string-valued configuration variables. Names are
// case-insensitive. A Store is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	vars map[string]string
}

// New creates an empty store.
func New() *Store {
	return &Store{vars: make(map[string]string)}
}

// Get retrieves a variable.
func (s *Store) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, exists := s.vars[strings.ToLower(name)]
	return value, exists
}

// Set creates or replaces a variable.
func (s *Store) Set(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars[strings.ToLower(name)] = value
}

// Default sets name only if it is not already defined.
func (s *Store) Default(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name = strings.ToLower(name)
	if _, ok := s.vars[name]; !ok {
		s.vars[name] = value
	}
}

// Names returns every variable name in alphabetical order.
func (s *Store) Names() []string {
	s.mu.RLock()
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	s.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Len returns the number of variables.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vars)
}

// Color parses the variable name as an "R,G,B,A" colour.
func (s *Store) Color(name string) (color.RGBA, bool) {
	v, ok := s.Get(name)
	if !ok {
		return color.RGBA{}, false
	}
	return ParseColorRGBA(v)
}

// SetColor stores c as "R,G,B,A".
func (s *Store) SetColor(name string, c color.RGBA) {
	s.Set(name, FormatColorRGBA(c))
}

// ParseColorRGBA parses "R,G,B,A" into color.RGBA. Values 0-255.
func ParseColorRGBA(s string) (color.RGBA, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return color.RGBA{}, false
	}
	var vals [4]uint8
	for i := 0; i < 4; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return color.RGBA{}, false
		}
		vals[i] = uint8(n)
	}
	return color.RGBA{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, true
}

// FormatColorRGBA is the inverse of ParseColorRGBA.
func FormatColorRGBA(c color.RGBA) string {
	return strconv.Itoa(int(c.R)) + "," + strconv.Itoa(int(c.G)) + "," +
		strconv.Itoa(int(c.B)) + "," + strconv.Itoa(int(c.A))
}
