package format

import (
	"math"
	"time"
)

const (
	// CounterDuration is how long an impact counter takes to reach its target.
	CounterDuration = 2 * time.Second
	// CounterFrame is the tick interval of the counter animation.
	CounterFrame = 16 * time.Millisecond
)

// Counter returns the value an animated counter displays after elapsed time
// when counting from zero to target over duration. The counter advances in
// CounterFrame steps, shows whole numbers while running and lands exactly on
// target. A non-positive duration shows the target immediately.
func Counter(target float64, elapsed, duration time.Duration) float64 {
	if duration <= 0 || elapsed >= duration {
		return target
	}
	if elapsed <= 0 {
		return 0
	}
	frames := float64(elapsed / CounterFrame)
	increment := target / (float64(duration) / float64(CounterFrame))
	current := frames * increment
	if current >= target {
		return target
	}
	return math.Floor(current)
}
