package console

import "time"

// blinker toggles cursor visibility whenever period has elapsed between polls.
// It only advances when polled, so a console that is not drawn does not blink.
type blinker struct {
	period time.Duration
	last   time.Time
	on     bool
}

func (b *blinker) visible(now time.Time) bool {
	if b.period <= 0 {
		return true
	}
	if b.last.IsZero() {
		b.last = now
		b.on = true
		return b.on
	}
	if now.Sub(b.last) >= b.period {
		b.on = !b.on
		b.last = now
	}
	return b.on
}

// wake shows the cursor and restarts the period, so typing keeps it visible.
func (b *blinker) wake() {
	b.on = true
	b.last = time.Time{}
}
