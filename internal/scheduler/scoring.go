package scheduler

import (
	"strings"
	"time"

	"github.com/WathsalaM369/stress-management-coach/internal/model"
)

// Final priority weights. Urgency dominates: a missed deadline is the
// costliest failure mode, so it outranks importance and stress fit.
const (
	urgencyWeight    = 0.5
	importanceWeight = 0.3
	compatWeight     = 0.2
)

// defaultUrgency applies when a task carries no deadline or the deadline
// string cannot be parsed.
const defaultUrgency = 0.2

// Keyword tables behind complexity scoring and task type classification.
// Matching is case-insensitive substring search over the task title.
var (
	complexKeywords = []string{"analysis", "research", "development", "complex", "detailed"}
	simpleKeywords  = []string{"update", "check", "review", "simple", "quick"}

	taskTypeGroups = []struct {
		keywords []string
		taskType model.TaskType
	}{
		{[]string{"code", "develop", "analysis"}, model.TaskTypeDeepWork},
		{[]string{"design", "create", "brainstorm"}, model.TaskTypeCreative},
		{[]string{"email", "meeting", "plan"}, model.TaskTypeAdministrative},
	}
)

// ScoredTask is a task annotated with the scores that drive allocation.
// All score fields are in [0,1].
type ScoredTask struct {
	Task                model.Task     `json:"task"`
	DeadlineUrgency     float64        `json:"deadline_urgency"`
	Importance          float64        `json:"importance"`
	ComplexityScore     float64        `json:"complexity_score"`
	TaskType            model.TaskType `json:"task_type"`
	StressCompatibility float64        `json:"stress_compatibility"`
	FinalPriority       float64        `json:"final_priority"`
}

// Score computes every scheduling score for a task. Pure function; now is
// the reference instant for deadline urgency.
func Score(task model.Task, stressLevel int, now time.Time) ScoredTask {
	urgency := deadlineUrgency(task.Deadline, now)
	importance := importanceOf(task.Priority)
	complexity := complexityOf(task.Title)
	compat := stressCompatibility(complexity, stressLevel)

	return ScoredTask{
		Task:                task,
		DeadlineUrgency:     urgency,
		Importance:          importance,
		ComplexityScore:     complexity,
		TaskType:            classifyTaskType(task.Title),
		StressCompatibility: compat,
		FinalPriority:       urgency*urgencyWeight + importance*importanceWeight + compat*compatWeight,
	}
}

// deadlineUrgency maps hours-until-deadline onto a stepped [0,1] scale.
// Deadlines already in the past land in the most urgent step.
func deadlineUrgency(deadline string, now time.Time) float64 {
	if deadline == "" {
		return defaultUrgency
	}
	due, err := time.Parse(time.RFC3339, deadline)
	if err != nil {
		return defaultUrgency
	}

	hours := due.Sub(now).Hours()
	switch {
	case hours <= 6:
		return 1.0
	case hours <= 24:
		return 0.9
	case hours <= 48:
		return 0.7
	case hours <= 168:
		return 0.5
	default:
		return 0.3
	}
}

func importanceOf(priority model.TaskPriority) float64 {
	switch priority {
	case model.PriorityHigh:
		return 1.0
	case model.PriorityLow:
		return 0.3
	default:
		return 0.6
	}
}

// complexityOf starts at a neutral 0.5 and shifts on keyword hits. Both
// adjustments apply before clamping when a title matches both sets.
func complexityOf(title string) float64 {
	lower := strings.ToLower(title)
	score := 0.5
	if containsAny(lower, complexKeywords) {
		score += 0.2
	}
	if containsAny(lower, simpleKeywords) {
		score -= 0.2
	}
	return clamp(score, 0.1, 1.0)
}

// classifyTaskType returns the first matching keyword group, checked in
// fixed order, or routine when nothing matches.
func classifyTaskType(title string) model.TaskType {
	lower := strings.ToLower(title)
	for _, group := range taskTypeGroups {
		if containsAny(lower, group.keywords) {
			return group.taskType
		}
	}
	return model.TaskTypeRoutine
}

// stressCompatibility compounds task complexity with the current stress
// level. Floored at 0.1 so no task is ever fully incompatible.
func stressCompatibility(complexity float64, stressLevel int) float64 {
	compat := 1.0 - complexity*float64(stressLevel)/10.0*0.7
	if compat < 0.1 {
		return 0.1
	}
	return compat
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
