// Package builtin provides the stock console commands: help, echo, history,
// cvar access, colour reloading, key binding and version.
package builtin

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"devconsole/pkg/console"
	"devconsole/pkg/engine/cvar"
	"devconsole/pkg/engine/input"
)

// Colour cvars read by color_update.
const (
	CvarBackground = "console.background"
	CvarForeground = "console.foreground"
	CvarBorder     = "console.border"
)

// descriptions is the help text for each builtin.
var descriptions = map[string]string{
	"bind":         "Bind a key to an action",
	"clear":        "Clear console output",
	"color_update": "Reload colors from cvars",
	"echo":         "Print the arguments",
	"get":          "Get a configuration variable",
	"help":         "Show this help",
	"history":      "List submitted commands",
	"list":         "List all cvars",
	"set":          "Set a configuration variable",
	"version":      "Show the build version",
}

// usages is printed in front of each description by help.
var usages = map[string]string{
	"bind": "bind [<key> <action>]",
	"get":  "get <cvar>",
	"set":  "set <cvar> <value>",
}

// Register adds every builtin to c and seeds the colour cvars from the
// console configuration when they are not already set.
func Register(c *console.Console, vars *cvar.Store) error {
	cfg := c.Config()
	vars.Default(CvarBackground, cvar.FormatColorRGBA(cfg.Background))
	vars.Default(CvarForeground, cvar.FormatColorRGBA(cfg.Foreground))
	vars.Default(CvarBorder, cvar.FormatColorRGBA(cfg.Border))

	b := &builtins{console: c, vars: vars}
	commands := map[string]console.Handler{
		"bind":         b.bind,
		"color_update": b.colorUpdate,
		"echo":         echo,
		"get":          b.get,
		"help":         b.help,
		"history":      b.history,
		"list":         b.list,
		"set":          b.set,
		"version":      b.version,
	}

	var errs []error
	for name, h := range commands {
		if err := c.AddCommand(name, h); err != nil {
			errs = append(errs, fmt.Errorf("register %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

type builtins struct {
	console *console.Console
	vars    *cvar.Store
}

func echo(args []string) string {
	return strings.Join(args[1:], " ")
}

func (b *builtins) help(args []string) string {
	names := append(b.console.Commands().Names(), console.ClearCommand)
	width := 0
	for _, name := range names {
		width = max(width, len(label(name)))
	}

	lines := []string{gotext.Get("Commands:")}
	for _, name := range sortedUnique(names) {
		desc, ok := descriptions[name]
		if !ok {
			lines = append(lines, "  "+label(name))
			continue
		}
		lines = append(lines, fmt.Sprintf("  %-*s  - %s", width, label(name), gotext.Get(desc)))
	}
	return strings.Join(lines, "\n")
}

func label(name string) string {
	if u, ok := usages[name]; ok {
		return u
	}
	return name
}

func (b *builtins) history(args []string) string {
	entries := b.console.History().Entries()
	if len(entries) == 0 {
		return ""
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%4d  %s", i+1, e)
	}
	return strings.Join(lines, "\n")
}

func (b *builtins) get(args []string) string {
	if len(args) < 2 {
		return gotext.Get("Usage: get <cvar>")
	}
	name := strings.ToLower(args[1])
	value, ok := b.vars.Get(name)
	if !ok {
		return gotext.Get("Unknown cvar: %s", name)
	}
	return fmt.Sprintf("%s = %q", name, value)
}

func (b *builtins) set(args []string) string {
	if len(args) < 3 {
		return gotext.Get("Usage: set <cvar> <value>")
	}
	name := strings.ToLower(args[1])
	value := strings.Join(args[2:], " ")
	b.vars.Set(name, value)
	return fmt.Sprintf("%s = %q", name, value)
}

func (b *builtins) list(args []string) string {
	names := b.vars.Names()
	if len(names) == 0 {
		return gotext.Get("No cvars defined")
	}
	lines := []string{gotext.Get("Cvars (%d):", len(names))}
	for _, name := range names {
		value, _ := b.vars.Get(name)
		lines = append(lines, fmt.Sprintf("  %s = %q", name, value))
	}
	return strings.Join(lines, "\n")
}

func (b *builtins) colorUpdate(args []string) string {
	cfg := b.console.Config()
	bg, fg, border := cfg.Background, cfg.Foreground, cfg.Border

	var bad []string
	assign := func(key string, dst *color.RGBA) {
		if _, ok := b.vars.Get(key); !ok {
			return
		}
		c, ok := b.vars.Color(key)
		if !ok {
			bad = append(bad, key)
			return
		}
		*dst = c
	}
	assign(CvarBackground, &bg)
	assign(CvarForeground, &fg)
	assign(CvarBorder, &border)

	if len(bad) > 0 {
		return gotext.Get("Invalid color (want R,G,B,A): %s", strings.Join(bad, ", "))
	}
	b.console.SetColors(bg, fg, border)
	return gotext.Get("Colors reloaded from cvars")
}

func (b *builtins) bind(args []string) string {
	if len(args) == 1 {
		return listBindings()
	}
	if len(args) < 3 {
		return gotext.Get("Usage: bind <key> <action>")
	}
	key := strings.ToLower(args[1])
	actionName := strings.Join(args[2:], " ")

	action, ok := input.ParseAction(actionName)
	if !ok {
		return gotext.Get("Unknown action: %s", actionName)
	}
	if !input.SetSingleBinding(action, key) {
		return gotext.Get("Cannot bind '%s' to %s", key, input.ActionName(action))
	}
	return gotext.Get("Bound '%s' to %s", key, input.ActionName(action))
}

// listBindings shows each bound action with its keys, in action order.
func listBindings() string {
	byAction := input.GetBindingsByAction()
	actions := make([]input.Action, 0, len(byAction))
	for act := range byAction {
		actions = append(actions, act)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	lines := []string{gotext.Get("Bindings:")}
	for _, act := range actions {
		codes := byAction[act]
		sort.Strings(codes)
		lines = append(lines, fmt.Sprintf("  %-16s %s", input.ActionName(act), strings.Join(codes, ", ")))
	}
	return strings.Join(lines, "\n")
}

func (b *builtins) version(args []string) string {
	v, ok := b.vars.Get("version")
	if !ok {
		v = "dev"
	}
	if commit, ok := b.vars.Get("commit"); ok && commit != "" {
		return fmt.Sprintf("%s (%s)", v, commit)
	}
	return v
}

func sortedUnique(names []string) []string {
	set := mapset.New[string]()
	for _, n := range names {
		set.Put(n)
	}
	out := make([]string, 0, set.Size())
	set.Each(func(n string) { out = append(out, n) })
	sort.Strings(out)
	return out
}
