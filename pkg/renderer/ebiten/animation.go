package ebiten

import (
	"math"
	"time"
)

// slide tracks the console's open/close animation. Progress runs from 0
// (hidden) to 1 (fully shown).
type slide struct {
	open      bool
	animating bool
	start     time.Time
	duration  time.Duration
	progress  float64
}

// toggle flips the target state. Toggles while animating are ignored.
func (s *slide) toggle(now time.Time) bool {
	if s.animating {
		return false
	}
	s.open = !s.open
	s.animating = true
	s.start = now
	return true
}

// set jumps straight to a state without animating.
func (s *slide) set(open bool) {
	s.open = open
	s.animating = false
	s.progress = 0
	if open {
		s.progress = 1
	}
}

// at advances the animation and returns the progress at now.
func (s *slide) at(now time.Time) float64 {
	if !s.animating {
		return s.progress
	}

	elapsed := now.Sub(s.start)
	if elapsed >= s.duration || s.duration <= 0 {
		s.set(s.open)
		return s.progress
	}

	eased := easeInOut(float64(elapsed) / float64(s.duration))
	if s.open {
		s.progress = eased
	} else {
		s.progress = 1 - eased
	}
	return s.progress
}

// easeInOut provides a smooth cubic easing curve.
func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}
