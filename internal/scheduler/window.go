package scheduler

import (
	"fmt"

	"github.com/WathsalaM369/stress-management-coach/internal/model"
)

// Usability floors in minutes. A window whose remaining capacity drops
// under the phase floor stops being offered in that phase.
const (
	partialFitFloor = 15
	rescueFloor     = 10
)

// window tracks the mutable remaining capacity of a time window during a
// single allocation pass. Each Schedule call builds its own arena, so no
// state ever leaks between calls.
type window struct {
	index     int
	source    model.TimeWindow
	duration  int
	remaining int
	exhausted bool
}

// newArena builds the per-call window state, applying the default label
// for unlabeled slots.
func newArena(windows []model.TimeWindow) []*window {
	arena := make([]*window, len(windows))
	for i, w := range windows {
		src := w
		if src.Label == "" {
			src.Label = fmt.Sprintf("Time slot %d", i+1)
		}
		d := src.DurationMinutes()
		arena[i] = &window{index: i, source: src, duration: d, remaining: d}
	}
	return arena
}

// consume removes minutes from the window and marks it exhausted once it
// is fully used or falls under the phase floor. Callers must clamp the
// requested minutes to the remaining capacity first; remaining never goes
// below zero.
func (w *window) consume(minutes, floor int) {
	if minutes > w.remaining {
		minutes = w.remaining
	}
	w.remaining -= minutes
	if w.remaining <= 0 || w.remaining < floor {
		w.exhausted = true
	}
}

// usable reports whether the window can still host an allocation of at
// least min minutes.
func (w *window) usable(min int) bool {
	return !w.exhausted && w.remaining >= min
}
