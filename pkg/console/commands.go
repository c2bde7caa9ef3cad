package console

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/zyedidia/generic/mapset"
)

// ClearCommand is the reserved command name that always clears the display.
const ClearCommand = "clear"

// Handler runs a command. args[0] is the command name. A non-empty result is
// printed as an output line.
type Handler func(args []string) string

// EntryHandler receives the raw line when no command matches.
// A non-empty result is printed as an output line.
type EntryHandler func(entry string) string

var (
	ErrEmptyName  = errors.New("empty command name")
	ErrNilHandler = errors.New("nil command handler")
	ErrReserved   = errors.New("reserved command name")
	ErrInvalid    = errors.New("command name contains whitespace")
)

// reservedNames cannot be registered.
var reservedNames = func() mapset.Set[string] {
	s := mapset.New[string]()
	s.Put(ClearCommand)
	return s
}()

// CommandTable maps command names to handlers.
type CommandTable struct {
	handlers map[string]Handler
}

// NewCommandTable creates an empty table.
func NewCommandTable() *CommandTable {
	return &CommandTable{handlers: make(map[string]Handler)}
}

// Register adds or replaces the handler for name. The last registration wins.
func (t *CommandTable) Register(name string, h Handler) error {
	switch {
	case name == "":
		return ErrEmptyName
	case strings.ContainsFunc(name, unicode.IsSpace):
		return fmt.Errorf("%w: %q", ErrInvalid, name)
	case reservedNames.Has(name):
		return fmt.Errorf("%w: %q", ErrReserved, name)
	case h == nil:
		return fmt.Errorf("%w: %q", ErrNilHandler, name)
	}
	t.handlers[name] = h
	return nil
}

// Remove drops the handler for name, if any.
func (t *CommandTable) Remove(name string) {
	delete(t.handlers, name)
}

// Lookup returns the handler registered for name.
func (t *CommandTable) Lookup(name string) (Handler, bool) {
	h, ok := t.handlers[name]
	return h, ok
}

// Names returns the registered command names in alphabetical order.
func (t *CommandTable) Names() []string {
	names := make([]string, 0, len(t.handlers))
	for name := range t.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Complete returns every name, registered or reserved, starting with prefix, sorted.
func (t *CommandTable) Complete(prefix string) []string {
	matches := mapset.New[string]()
	for name := range t.handlers {
		if strings.HasPrefix(name, prefix) {
			matches.Put(name)
		}
	}
	reservedNames.Each(func(name string) {
		if strings.HasPrefix(name, prefix) {
			matches.Put(name)
		}
	})

	out := make([]string, 0, matches.Size())
	matches.Each(func(name string) { out = append(out, name) })
	sort.Strings(out)
	return out
}

// Tokenize splits a line on whitespace. Quoting is not supported.
func Tokenize(line string) []string {
	return strings.Fields(line)
}
