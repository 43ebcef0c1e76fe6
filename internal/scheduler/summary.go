package scheduler

import (
	"fmt"

	"github.com/WathsalaM369/stress-management-coach/internal/model"
)

// Stress thresholds used across the summary rules.
const (
	highStressLevel     = 7
	veryHighStressLevel = 8
	mediumStressLevel   = 5
)

// Workload ceilings in hours, after which alerts fire.
const (
	stressedWorkHoursLimit = 6.0
	dailyWorkHoursLimit    = 8.0
)

// buildStressAnalysis maps the stress level onto its impact tier and the
// suggested action tags.
func buildStressAnalysis(stress model.StressContext) model.StressAnalysis {
	var impact string
	var actions []string

	switch {
	case stress.Level >= veryHighStressLevel:
		impact = "High stress significantly limits capacity for demanding work"
		actions = []string{"simplify_tasks", "add_breaks", "defer_non_urgent"}
	case stress.Level >= mediumStressLevel:
		impact = "Moderate stress affects task selection"
		actions = []string{"balance_workload", "add_breaks"}
	default:
		impact = "Low stress allows optimal productivity"
		actions = []string{"tackle_complex_work", "maintain_momentum"}
	}

	return model.StressAnalysis{
		Level:              stress.Level,
		Mood:               stress.Mood,
		Impact:             impact,
		RecommendedActions: actions,
	}
}

// buildInsights reduces the final item list into totals, the confidence
// average and the recommendation texts.
func buildInsights(items []model.ScheduleItem, stress model.StressContext) model.Insights {
	totalMinutes := 0
	confidenceSum := 0.0
	scheduled := 0
	notScheduled := 0
	partial := 0

	for _, item := range items {
		totalMinutes += item.AllocatedMinutes
		confidenceSum += item.Confidence
		if item.Scheduled() {
			scheduled++
		}
		if item.Status == model.StatusNotScheduled {
			notScheduled++
		}
		if item.Status == model.StatusPartial {
			partial++
		}
	}

	totalWorkHours := float64(totalMinutes) / 60.0
	averageConfidence := 0.0
	if len(items) > 0 {
		averageConfidence = confidenceSum / float64(len(items))
	}

	var recommendations []string
	if scheduled == len(items) {
		recommendations = append(recommendations, "All tasks successfully scheduled!")
	} else {
		if notScheduled > 0 {
			recommendations = append(recommendations,
				fmt.Sprintf("%d task(s) could not be scheduled - consider adding more time blocks", notScheduled))
		}
		if partial > 0 {
			recommendations = append(recommendations,
				fmt.Sprintf("%d task(s) received partial time - plan follow-up sessions to finish them", partial))
		}
	}
	if stress.Level >= highStressLevel {
		recommendations = append(recommendations,
			"High stress detected - schedule breaks between tasks")
	}

	return model.Insights{
		TotalWorkHours:          totalWorkHours,
		AverageConfidence:       averageConfidence,
		Recommendations:         recommendations,
		WorkloadAlerts:          buildWorkloadAlerts(totalWorkHours, stress.Level),
		PostponementSuggestions: buildPostponementSuggestions(items, stress.Level),
	}
}

// buildWorkloadAlerts flags schedules that exceed healthy working limits.
func buildWorkloadAlerts(totalWorkHours float64, stressLevel int) []model.WorkloadAlert {
	alerts := []model.WorkloadAlert{}

	if stressLevel >= highStressLevel && totalWorkHours > stressedWorkHoursLimit {
		alerts = append(alerts, model.WorkloadAlert{
			Type:            "high_stress_heavy_workload",
			Message:         "High stress level combined with heavy workload detected",
			SuggestedAction: "Consider rescheduling non-urgent tasks or adding more breaks",
			TotalWorkHours:  totalWorkHours,
			StressLevel:     stressLevel,
		})
	}
	if totalWorkHours > dailyWorkHoursLimit {
		alerts = append(alerts, model.WorkloadAlert{
			Type:            "excessive_workload",
			Message:         "Schedule exceeds recommended daily work hours",
			SuggestedAction: "Consider postponing some tasks to maintain productivity and wellbeing",
			TotalWorkHours:  totalWorkHours,
			StressLevel:     stressLevel,
		})
	}

	return alerts
}

// buildPostponementSuggestions offers to defer low-priority flexible work
// once stress gets very high. Only flexible tasks qualify; inflexible
// work has to stay on the schedule.
func buildPostponementSuggestions(items []model.ScheduleItem, stressLevel int) []model.PostponementSuggestion {
	suggestions := []model.PostponementSuggestion{}
	if stressLevel < veryHighStressLevel {
		return suggestions
	}

	for _, item := range items {
		if !item.Scheduled() {
			continue
		}
		if item.Task.Priority != model.PriorityLow || !item.Task.Flexible() {
			continue
		}
		suggestions = append(suggestions, model.PostponementSuggestion{
			TaskID:           item.Task.ID,
			TaskTitle:        item.Task.Title,
			Reason:           "High stress level reduces effectiveness for non-urgent tasks",
			SuggestedNewTime: "Tomorrow or when stress level decreases",
		})
	}

	return suggestions
}

// attachAdvisoryNotes appends stress and mood guidance to every scheduled
// item, after allocation has written the placement notes.
func attachAdvisoryNotes(items []model.ScheduleItem, stress model.StressContext) {
	for i := range items {
		item := &items[i]
		if !item.Scheduled() {
			continue
		}

		if stress.Level >= highStressLevel {
			if item.Task.DurationMinutes() > 60 {
				item.Notes = append(item.Notes,
					"Consider breaking this task into smaller chunks due to high stress")
			}
			item.Notes = append(item.Notes,
				"Take short breaks every 25 minutes to maintain focus")
		}

		switch stress.Mood {
		case "tired":
			item.Notes = append(item.Notes,
				"This might feel challenging given your current energy level")
		case "energetic":
			item.Notes = append(item.Notes,
				"Good time to tackle this with your current energy")
		case "scattered":
			item.Notes = append(item.Notes,
				"Try minimizing distractions while working on this task")
		}

		if item.Task.Priority == model.PriorityHigh {
			item.Notes = append(item.Notes, "High priority task - focus on completion")
		}
	}
}
