package scheduler

import (
	"fmt"
	"sort"

	"github.com/WathsalaM369/stress-management-coach/internal/model"
)

// Confidence levels per allocation outcome. Heuristic quality scores,
// not probabilities.
const (
	confidencePerfect = 0.9
	confidenceScaled  = 0.8
	confidencePartial = 0.6
	confidenceRescue  = 0.5
)

// allocate runs the three assignment phases over the scored tasks and the
// window arena, returning exactly one item per task in input order. The
// arena is mutated in a single sequential pass; tasks placed in an earlier
// phase are never reconsidered.
func allocate(scored []ScoredTask, arena []*window) []model.ScheduleItem {
	items := make([]model.ScheduleItem, len(scored))
	for i, st := range scored {
		items[i] = model.ScheduleItem{
			Task:            st.Task,
			Status:          model.StatusNotScheduled,
			DeadlineUrgency: st.DeadlineUrgency,
			Notes:           []string{},
		}
	}

	// Priority order, descending. Stable so equal priorities keep their
	// input order, which keeps the whole schedule deterministic.
	order := make([]int, len(scored))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scored[order[a]].FinalPriority > scored[order[b]].FinalPriority
	})

	totalRequested := 0
	for _, st := range scored {
		totalRequested += st.Task.DurationMinutes()
	}
	totalCapacity := 0
	for _, w := range arena {
		totalCapacity += w.duration
	}
	overcommitted := totalRequested > totalCapacity

	pending := phasePerfectFit(scored, arena, items, order)
	unplaced := phasePartialFit(scored, arena, items, pending, overcommitted)
	phaseRescue(scored, arena, items, unplaced)

	return items
}

// phasePerfectFit places each task, in priority order, into the window
// with the smallest strictly positive leftover (best-fit). An exact fit
// has no leftover and falls through to phase 2. Ties go to the earlier
// window in input order. Returns the task indexes left pending.
func phasePerfectFit(scored []ScoredTask, arena []*window, items []model.ScheduleItem, order []int) []int {
	var pending []int

	for _, idx := range order {
		duration := scored[idx].Task.DurationMinutes()

		best := -1
		bestLeftover := 0
		for _, w := range arena {
			if !w.usable(duration) {
				continue
			}
			leftover := w.remaining - duration
			if leftover <= 0 {
				continue
			}
			if best == -1 || leftover < bestLeftover {
				best = w.index
				bestLeftover = leftover
			}
		}
		if best == -1 {
			pending = append(pending, idx)
			continue
		}

		w := arena[best]
		w.consume(duration, 0)
		items[idx].Window = &w.source
		items[idx].AllocatedMinutes = duration
		items[idx].Status = model.StatusComplete
		items[idx].Confidence = confidencePerfect
		items[idx].Notes = append(items[idx].Notes,
			fmt.Sprintf("Perfect fit in a %d-minute slot", w.duration))
	}

	return pending
}

// phasePartialFit gives the largest remaining window to the next most
// important pending task: later tasks will have fewer options, so the
// biggest slot goes to the highest priority first. Returns the indexes of
// tasks that found no qualifying window.
func phasePartialFit(scored []ScoredTask, arena []*window, items []model.ScheduleItem, pending []int, overcommitted bool) []int {
	var unplaced []int

	for _, idx := range pending {
		duration := scored[idx].Task.DurationMinutes()

		best := -1
		for _, w := range arena {
			if !w.usable(partialFitFloor) {
				continue
			}
			if best == -1 || w.remaining > arena[best].remaining {
				best = w.index
			}
		}
		if best == -1 {
			items[idx].Confidence = 0.0
			items[idx].Notes = append(items[idx].Notes,
				"No available time slots remaining - consider adding more time blocks")
			unplaced = append(unplaced, idx)
			continue
		}

		w := arena[best]
		allocated := duration
		if w.remaining < allocated {
			allocated = w.remaining
		}

		switch {
		case allocated < duration:
			items[idx].Status = model.StatusPartial
			items[idx].Confidence = confidencePartial
			items[idx].Notes = append(items[idx].Notes,
				fmt.Sprintf("Partial allocation: %d of %d minutes - plan a follow-up session for the rest", allocated, duration))
		case overcommitted:
			// Full allocation, but total demand exceeded total capacity
			// at call start: flag the fit as scaled.
			items[idx].Status = model.StatusScaled
			items[idx].Confidence = confidenceScaled
			items[idx].Notes = append(items[idx].Notes,
				fmt.Sprintf("Scheduled %d minutes in the largest remaining slot", allocated))
		default:
			items[idx].Status = model.StatusComplete
			items[idx].Confidence = confidenceScaled
			items[idx].Notes = append(items[idx].Notes,
				fmt.Sprintf("Scheduled %d minutes in the largest remaining slot", allocated))
		}

		w.consume(allocated, partialFitFloor)
		items[idx].Window = &w.source
		items[idx].AllocatedMinutes = allocated
	}

	return unplaced
}

// phaseRescue is the last resort for tasks still unscheduled: high
// priority, urgent, or inflexible tasks get squeezed into any window with
// at least rescueFloor minutes left. First found is acceptable here; this
// is not an optimization pass.
func phaseRescue(scored []ScoredTask, arena []*window, items []model.ScheduleItem, unplaced []int) {
	for _, idx := range unplaced {
		st := scored[idx]
		if !rescueEligible(st) {
			continue
		}

		var target *window
		for _, w := range arena {
			if w.usable(rescueFloor) {
				target = w
				break
			}
		}
		if target == nil {
			continue
		}

		duration := st.Task.DurationMinutes()
		allocated := duration
		if target.remaining < allocated {
			allocated = target.remaining
		}

		status := model.StatusScaled
		if allocated < duration {
			status = model.StatusPartial
		}

		target.consume(allocated, rescueFloor)
		items[idx].Window = &target.source
		items[idx].AllocatedMinutes = allocated
		items[idx].Status = status
		items[idx].Confidence = confidenceRescue
		items[idx].Notes = append(items[idx].Notes,
			fmt.Sprintf("Emergency scheduling: %d minutes for high-priority task", allocated))
	}
}

// rescueEligible selects tasks that cannot simply be dropped: explicitly
// high priority, urgent deadline, or marked inflexible by the caller.
func rescueEligible(st ScoredTask) bool {
	return st.Task.Priority == model.PriorityHigh ||
		st.DeadlineUrgency > 0.8 ||
		!st.Task.Flexible()
}
