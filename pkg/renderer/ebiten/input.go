package ebiten

import (
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"devconsole/pkg/engine/input"
)

// keyCode pairs an Ebiten key with the raw code the bindings use.
type keyCode struct {
	key  ebiten.Key
	code string
	ctrl bool // Only while Control is held
}

// keyCodes lists every key the host polls.
var keyCodes = buildKeyCodes()

func buildKeyCodes() []keyCode {
	codes := []keyCode{
		{key: ebiten.KeyBackspace, code: "backspace"},
		{key: ebiten.KeyDelete, code: "delete"},
		{key: ebiten.KeyEnter, code: "enter"},
		{key: ebiten.KeyNumpadEnter, code: "kp_enter"},
		{key: ebiten.KeyTab, code: "tab"},
		{key: ebiten.KeyArrowLeft, code: "arrow_left"},
		{key: ebiten.KeyArrowRight, code: "arrow_right"},
		{key: ebiten.KeyArrowUp, code: "arrow_up"},
		{key: ebiten.KeyArrowDown, code: "arrow_down"},
		{key: ebiten.KeyHome, code: "home"},
		{key: ebiten.KeyEnd, code: "end"},
		{key: ebiten.KeyPageUp, code: "page_up"},
		{key: ebiten.KeyPageDown, code: "page_down"},
		{key: ebiten.KeyGraveAccent, code: "grave"},
		{key: ebiten.KeyEscape, code: "escape"},
	}
	for k := ebiten.KeyF1; k <= ebiten.KeyF12; k++ {
		codes = append(codes, keyCode{key: k, code: strings.ToLower(k.String())})
	}
	for k := ebiten.KeyA; k <= ebiten.KeyZ; k++ {
		codes = append(codes, keyCode{key: k, code: "ctrl_" + string(rune('a'+(k-ebiten.KeyA))), ctrl: true})
	}
	return codes
}

// Update implements ebiten.Game.
func (e *Renderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Console window opened (%dx%d)", w, h)
	}

	if e.quit {
		return ebiten.Termination
	}

	now := time.Now()
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	toggled := false

	for _, kc := range keyCodes {
		pressed := ebiten.IsKeyPressed(kc.key) && kc.ctrl == ctrl
		if !e.repeat.Step(kc.code, pressed, now) {
			continue
		}

		intent := input.Translate(input.RawInput{Device: input.DeviceKeyboard, Code: kc.code, Timestamp: now})
		switch intent.Action {
		case input.ActionNone:
		case input.ActionToggleConsole:
			if inpututil.IsKeyJustPressed(kc.key) && e.toggle(now) {
				toggled = true
			}
		case input.ActionQuit:
			if inpututil.IsKeyJustPressed(kc.key) {
				return ebiten.Termination
			}
		default:
			e.console.Update(intent)
		}
	}

	// Text typed this frame; the toggle key's own character is dropped
	e.chars = ebiten.AppendInputChars(e.chars[:0])
	if !toggled && !ctrl {
		for _, r := range e.chars {
			e.console.Update(input.Translate(input.Text(input.DeviceKeyboard, r)))
		}
	}

	if e.quit {
		return ebiten.Termination
	}
	return nil
}

// toggle shows or hides the console. Hidden consoles ignore input.
func (e *Renderer) toggle(now time.Time) bool {
	if !e.slide.toggle(now) {
		return false
	}
	e.console.Focused = e.slide.open
	e.repeat.Reset()
	return true
}
