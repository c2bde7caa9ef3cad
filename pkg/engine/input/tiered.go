package input

import (
	"sort"
	"strings"
	"time"
	"unicode"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level console editing intent.
type Action int

const (
	ActionNone Action = iota

	// Text entry
	ActionInsert // Insert Intent.Rune at the cursor

	// Editing
	ActionBackspace
	ActionDeleteForward
	ActionSubmit
	ActionComplete

	// Cursor
	ActionCursorLeft
	ActionCursorRight
	ActionCursorHome
	ActionCursorEnd

	// History / scrollback
	ActionHistoryPrev
	ActionHistoryNext
	ActionScrollUp
	ActionScrollDown

	// Host
	ActionToggleConsole
	ActionQuit
)

// CodeText is the raw code carried by printable text events; the rune is in RawInput.Rune.
const CodeText = "text"

// Intent is the high-level description of what the user wants the console to do.
type Intent struct {
	Action Action
	Rune   rune // Only meaningful for ActionInsert
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "backspace", "arrow_up", "text").
type RawInput struct {
	Device    Device
	Code      string
	Rune      rune
	Timestamp time.Time
}

// Text builds a raw text event for r.
func Text(device Device, r rune) RawInput {
	return RawInput{Device: device, Code: CodeText, Rune: r}
}

// Key builds a raw key event for code.
func Key(device Device, code string) RawInput {
	return RawInput{Device: device, Code: code}
}

// DebouncedInput is the 2nd-layer representation after debouncing/deduplication.
// Key repeat is handled by KeyRepeater before events get here, so this is a
// thin copy that keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
	Rune   rune
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
		Rune:   raw.Rune,
	}
}

// defaultBindings is the binding table restored by ResetBindings.
var defaultBindings = map[string]Action{
	// Editing
	"backspace": ActionBackspace,
	"delete":    ActionDeleteForward,
	"enter":     ActionSubmit,
	"kp_enter":  ActionSubmit,
	"tab":       ActionComplete,

	// Cursor (arrows are reserved)
	"arrow_left":  ActionCursorLeft,
	"arrow_right": ActionCursorRight,
	"home":        ActionCursorHome,
	"end":         ActionCursorEnd,
	"ctrl_a":      ActionCursorHome,
	"ctrl_e":      ActionCursorEnd,

	// History (arrows are reserved)
	"arrow_up":   ActionHistoryPrev,
	"arrow_down": ActionHistoryNext,
	"ctrl_p":     ActionHistoryPrev,
	"ctrl_n":     ActionHistoryNext,

	// Scrollback
	"page_up":   ActionScrollUp,
	"page_down": ActionScrollDown,

	// Host
	"grave":  ActionToggleConsole,
	"f1":     ActionToggleConsole,
	"ctrl_c": ActionQuit,
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = copyBindings(defaultBindings)

func copyBindings(src map[string]Action) map[string]Action {
	dst := make(map[string]Action, len(src))
	for code, act := range src {
		dst[code] = act
	}
	return dst
}

// reservedCode reports whether code must keep its default binding.
func reservedCode(code string) bool {
	switch code {
	case "arrow_left", "arrow_right", "arrow_up", "arrow_down", "enter", "backspace", CodeText:
		return true
	}
	return false
}

// controlActions maps control runes delivered as text to editing actions.
var controlActions = map[rune]Action{
	'\b':   ActionBackspace,
	'\r':   ActionSubmit,
	'\n':   ActionSubmit,
	'\t':   ActionComplete,
	0x7f:   ActionBackspace,
	0x0003: ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if ev.Code == CodeText {
		if act, ok := controlActions[ev.Rune]; ok {
			return Intent{Action: act}
		}
		if !unicode.IsPrint(ev.Rune) {
			return Intent{Action: ActionNone}
		}
		return Intent{Action: ActionInsert, Rune: ev.Rune}
	}
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// Translate runs a raw event through every layer.
func Translate(raw RawInput) Intent {
	return MapToIntent(NewDebouncedInput(raw))
}

// actionNames is used for both display and parsing.
var actionNames = map[Action]string{
	ActionInsert:        "Insert",
	ActionBackspace:     "Backspace",
	ActionDeleteForward: "Delete",
	ActionSubmit:        "Submit",
	ActionComplete:      "Complete",
	ActionCursorLeft:    "Cursor Left",
	ActionCursorRight:   "Cursor Right",
	ActionCursorHome:    "Cursor Home",
	ActionCursorEnd:     "Cursor End",
	ActionHistoryPrev:   "History Previous",
	ActionHistoryNext:   "History Next",
	ActionScrollUp:      "Scroll Up",
	ActionScrollDown:    "Scroll Down",
	ActionToggleConsole: "Toggle Console",
	ActionQuit:          "Quit",
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "None"
}

// ParseAction resolves a user-supplied action name ("historyprev", "history previous",
// "toggle_console", ...). It ignores case, spaces, dashes and underscores.
func ParseAction(name string) (Action, bool) {
	want := normalizeActionName(name)
	if want == "" {
		return ActionNone, false
	}
	for act, actName := range actionNames {
		if normalizeActionName(actName) == want {
			return act, true
		}
	}
	switch want {
	case "toggle", "console":
		return ActionToggleConsole, true
	case "prev", "previous", "up":
		return ActionHistoryPrev, true
	case "next", "down":
		return ActionHistoryNext, true
	case "home":
		return ActionCursorHome, true
	case "end":
		return ActionCursorEnd, true
	}
	return ActionNone, false
}

func normalizeActionName(s string) string {
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(s))
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so listings don't shuffle between calls.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Reserved codes keep their bindings and cannot be taken over.
// Returns false if the binding was refused.
func SetSingleBinding(action Action, code string) bool {
	if action == ActionNone || action == ActionInsert {
		return false
	}
	if code == "" || reservedCode(code) {
		return false
	}
	for c, a := range bindings {
		if reservedCode(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	bindings[code] = action
	return true
}

// ResetBindings restores the default binding table.
func ResetBindings() {
	bindings = copyBindings(defaultBindings)
}
