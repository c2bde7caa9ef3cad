package input

import "time"

// Key repeat timing for held editing keys.
const (
	KeyRepeatInitialDelay = 500 * time.Millisecond
	KeyRepeatInterval     = 100 * time.Millisecond
)

// keyRepeatInfo tracks the repeat state for a key
type keyRepeatInfo struct {
	firstPressed time.Time
	lastRepeat   time.Time
}

// KeyRepeater turns polled "is the key down" state into discrete key events:
// one on the initial press, then one every Interval once Delay has elapsed.
type KeyRepeater struct {
	Delay    time.Duration
	Interval time.Duration

	state map[string]keyRepeatInfo
}

// NewKeyRepeater creates a repeater with the default timings.
func NewKeyRepeater() *KeyRepeater {
	return &KeyRepeater{
		Delay:    KeyRepeatInitialDelay,
		Interval: KeyRepeatInterval,
		state:    make(map[string]keyRepeatInfo),
	}
}

// Step reports whether code should fire an event at now given its pressed state.
func (k *KeyRepeater) Step(code string, pressed bool, now time.Time) bool {
	if k.state == nil {
		k.state = make(map[string]keyRepeatInfo)
	}
	state, exists := k.state[code]

	if !pressed {
		if exists {
			delete(k.state, code)
		}
		return false
	}

	if !exists {
		// First press fires immediately
		k.state[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}

	if now.Sub(state.firstPressed) < k.Delay {
		return false
	}
	if now.Sub(state.lastRepeat) < k.Interval {
		return false
	}
	state.lastRepeat = now
	k.state[code] = state
	return true
}

// Reset forgets every held key, e.g. when the console loses focus.
func (k *KeyRepeater) Reset() {
	k.state = make(map[string]keyRepeatInfo)
}
