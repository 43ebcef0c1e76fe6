// Package scheduler implements the stress-aware task scheduling engine:
// priority scoring, three-phase best-fit allocation into time windows and
// summary insights. The engine performs no I/O and keeps no state between
// calls; a Schedule call is a pure function of its inputs plus the clock
// used for deadline urgency and generated task ids.
package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/WathsalaM369/stress-management-coach/internal/model"
)

// Validation errors returned before any allocation happens. Scheduling
// shortfalls are never errors; they surface as item statuses.
var (
	ErrNoTasks            = errors.New("task list cannot be empty")
	ErrNoTimeWindows      = errors.New("time window list cannot be empty")
	ErrInvalidTimeWindow  = errors.New("time window must end after it starts")
	ErrInvalidStressLevel = errors.New("stress level must be between 0 and 10")
)

// Engine produces stress-aware schedules. Stateless between calls: every
// call builds its own window arena, so concurrent callers scheduling
// independent requests need no coordination.
type Engine struct {
	now func() time.Time
}

// New returns an engine using the wall clock.
func New() *Engine {
	return &Engine{now: time.Now}
}

// NewWithClock returns an engine with a fixed reference clock. Tests use
// this to make results fully reproducible.
func NewWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Schedule assigns tasks to time windows and returns the annotated
// schedule with aggregate insights. Every input task yields exactly one
// item, in input order. Repeated calls with identical inputs and clock
// yield identical results.
func (e *Engine) Schedule(tasks []model.Task, windows []model.TimeWindow, stress model.StressContext) (*model.ScheduleResult, error) {
	if err := validate(tasks, windows, stress); err != nil {
		return nil, err
	}

	now := e.now()
	normalized := normalizeTasks(tasks, now)

	scored := make([]ScoredTask, len(normalized))
	for i, task := range normalized {
		scored[i] = Score(task, stress.Level, now)
	}

	arena := newArena(windows)
	items := allocate(scored, arena)
	attachAdvisoryNotes(items, stress)

	scheduled := 0
	for _, item := range items {
		if item.Scheduled() {
			scheduled++
		}
	}

	return &model.ScheduleResult{
		Items:          items,
		StressAnalysis: buildStressAnalysis(stress),
		TaskAnalysis: model.TaskAnalysis{
			TotalTasks:     len(items),
			ScheduledTasks: scheduled,
		},
		Insights: buildInsights(items, stress),
	}, nil
}

func validate(tasks []model.Task, windows []model.TimeWindow, stress model.StressContext) error {
	if len(tasks) == 0 {
		return ErrNoTasks
	}
	if len(windows) == 0 {
		return ErrNoTimeWindows
	}
	for i, w := range windows {
		if !w.Valid() {
			return fmt.Errorf("time window %d (%q): %w", i+1, w.Label, ErrInvalidTimeWindow)
		}
	}
	if stress.Level < 0 || stress.Level > 10 {
		return ErrInvalidStressLevel
	}
	return nil
}

// normalizeTasks fills the documented defaults: generated ids, medium
// priority, the work category. Input slices are never mutated.
func normalizeTasks(tasks []model.Task, now time.Time) []model.Task {
	normalized := make([]model.Task, len(tasks))
	for i, task := range tasks {
		if task.ID == "" {
			task.ID = fmt.Sprintf("task_%d_%d", now.UnixMilli(), i)
		}
		if task.Priority == "" {
			task.Priority = model.PriorityMedium
		}
		if task.Category == "" {
			task.Category = "work"
		}
		normalized[i] = task
	}
	return normalized
}
