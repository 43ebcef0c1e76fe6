package scheduler

import (
	"strings"
	"testing"
	"time"

	"github.com/WathsalaM369/stress-management-coach/internal/model"
)

func windowOf(start time.Time, minutes int, label string) model.TimeWindow {
	return model.TimeWindow{
		StartTime: start,
		EndTime:   start.Add(time.Duration(minutes) * time.Minute),
		Label:     label,
	}
}

func testEngine() *Engine {
	return NewWithClock(func() time.Time { return testNow })
}

func hasNote(item model.ScheduleItem, fragment string) bool {
	for _, note := range item.Notes {
		if strings.Contains(note, fragment) {
			return true
		}
	}
	return false
}

// One task that fits comfortably lands as a perfect fit.
func TestScheduleSingleTaskPerfectFit(t *testing.T) {
	tasks := []model.Task{
		{Title: "Write report", EstimatedDuration: 60, Priority: model.PriorityHigh},
	}
	windows := []model.TimeWindow{windowOf(testNow, 90, "Morning")}

	result, err := testEngine().Schedule(tasks, windows, model.StressContext{Level: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item := result.Items[0]
	if item.Status != model.StatusComplete {
		t.Errorf("status = %q, want complete", item.Status)
	}
	if item.AllocatedMinutes != 60 {
		t.Errorf("allocated = %d, want 60", item.AllocatedMinutes)
	}
	if !almostEqual(item.Confidence, 0.9) {
		t.Errorf("confidence = %v, want 0.9", item.Confidence)
	}
	if item.Window == nil || item.Window.Label != "Morning" {
		t.Errorf("window = %+v, want Morning", item.Window)
	}
	if !hasNote(item, "Perfect fit") {
		t.Errorf("missing perfect fit note, got %v", item.Notes)
	}
}

// A task bigger than every window gets the largest one, truncated.
func TestScheduleOversizedTaskPartial(t *testing.T) {
	tasks := []model.Task{
		{Title: "Deep cleanup", EstimatedDuration: 120},
	}
	windows := []model.TimeWindow{windowOf(testNow, 60, "")}

	result, err := testEngine().Schedule(tasks, windows, model.StressContext{Level: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item := result.Items[0]
	if item.Status != model.StatusPartial {
		t.Errorf("status = %q, want partial", item.Status)
	}
	if item.AllocatedMinutes != 60 {
		t.Errorf("allocated = %d, want 60", item.AllocatedMinutes)
	}
	if !almostEqual(item.Confidence, 0.6) {
		t.Errorf("confidence = %v, want 0.6", item.Confidence)
	}
	if !hasNote(item, "Partial allocation: 60 of 120 minutes") {
		t.Errorf("missing partial note, got %v", item.Notes)
	}
	// unlabeled windows get the default label
	if item.Window == nil || item.Window.Label != "Time slot 1" {
		t.Errorf("window label = %+v, want default", item.Window)
	}
}

// No windows at all is a validation error, not an empty schedule.
func TestScheduleNoWindowsFails(t *testing.T) {
	tasks := []model.Task{
		{Title: "Urgent fix", EstimatedDuration: 60, Priority: model.PriorityHigh, Deadline: deadlineIn(2)},
	}

	result, err := testEngine().Schedule(tasks, nil, model.StressContext{Level: 3})
	if err != ErrNoTimeWindows {
		t.Fatalf("err = %v, want ErrNoTimeWindows", err)
	}
	if result != nil {
		t.Fatalf("result should be nil on validation failure")
	}
}

// When capacity runs out, the urgent task wins and the flexible low
// priority one is left unscheduled with an explanatory note.
func TestScheduleUrgentTaskWinsContention(t *testing.T) {
	tasks := []model.Task{
		{Title: "Tidy backlog", EstimatedDuration: 60, Priority: model.PriorityLow},
		{Title: "Ship hotfix", EstimatedDuration: 60, Priority: model.PriorityHigh, Deadline: deadlineIn(2)},
	}
	windows := []model.TimeWindow{windowOf(testNow, 60, "")}

	result, err := testEngine().Schedule(tasks, windows, model.StressContext{Level: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	low, high := result.Items[0], result.Items[1]

	// an exact fit under overcommitment lands in phase 2 as scaled
	if high.Status != model.StatusScaled || high.AllocatedMinutes != 60 {
		t.Errorf("urgent task = %q/%d, want scaled/60", high.Status, high.AllocatedMinutes)
	}
	if !almostEqual(high.Confidence, 0.8) {
		t.Errorf("urgent confidence = %v, want 0.8", high.Confidence)
	}
	if low.Status != model.StatusNotScheduled || low.AllocatedMinutes != 0 {
		t.Errorf("low task = %q/%d, want not_scheduled/0", low.Status, low.AllocatedMinutes)
	}
	if low.Window != nil {
		t.Errorf("unscheduled task should have no window")
	}
	if !almostEqual(low.Confidence, 0.0) {
		t.Errorf("unscheduled confidence = %v, want 0", low.Confidence)
	}
	if !hasNote(low, "consider adding more time blocks") {
		t.Errorf("missing capacity note, got %v", low.Notes)
	}
	if result.TaskAnalysis.ScheduledTasks != 1 || result.TaskAnalysis.TotalTasks != 2 {
		t.Errorf("task analysis = %+v", result.TaskAnalysis)
	}
}

// An overcommitted schedule still rescues the high priority overflow
// task instead of dropping it: some minutes at reduced confidence.
func TestScheduleRescuesHighPriorityOverflow(t *testing.T) {
	tasks := []model.Task{
		{Title: "Prepare briefing", EstimatedDuration: 60, Deadline: deadlineIn(2)},
		{Title: "Draft proposal", EstimatedDuration: 68, Deadline: deadlineIn(2)},
		{Title: "Fix login outage", EstimatedDuration: 72, Priority: model.PriorityHigh},
	}
	windows := []model.TimeWindow{
		windowOf(testNow, 70, "Block A"),
		windowOf(testNow.Add(2*time.Hour), 80, "Block B"),
	}

	result, err := testEngine().Schedule(tasks, windows, model.StressContext{Level: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The two urgent medium tasks take the windows as perfect fits,
	// leaving 10 and 12 minutes: below the partial-fit floor but above
	// the rescue floor.
	overflow := result.Items[2]
	if overflow.Status == model.StatusNotScheduled {
		t.Fatalf("high priority overflow was dropped: %+v", overflow)
	}
	if !almostEqual(overflow.Confidence, 0.5) {
		t.Errorf("rescue confidence = %v, want 0.5", overflow.Confidence)
	}
	if overflow.AllocatedMinutes != 10 {
		t.Errorf("rescued minutes = %d, want 10", overflow.AllocatedMinutes)
	}
	if overflow.Status != model.StatusPartial {
		t.Errorf("status = %q, want partial (truncated rescue)", overflow.Status)
	}
	if !hasNote(overflow, "Emergency scheduling") {
		t.Errorf("missing rescue note, got %v", overflow.Notes)
	}
}

// A low priority flexible task without deadline pressure is not
// eligible for rescue and stays unscheduled.
func TestRescueSkipsFlexibleLowPriority(t *testing.T) {
	tasks := []model.Task{
		{Title: "Prepare briefing", EstimatedDuration: 60, Deadline: deadlineIn(2)},
		{Title: "Draft proposal", EstimatedDuration: 68, Deadline: deadlineIn(2)},
		{Title: "Sort old screenshots", EstimatedDuration: 72, Priority: model.PriorityLow},
	}
	windows := []model.TimeWindow{
		windowOf(testNow, 70, ""),
		windowOf(testNow.Add(2*time.Hour), 80, ""),
	}

	result, err := testEngine().Schedule(tasks, windows, model.StressContext{Level: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := result.Items[2].Status; got != model.StatusNotScheduled {
		t.Errorf("status = %q, want not_scheduled", got)
	}
}

// Marking the same task inflexible flips rescue eligibility.
func TestRescueHonorsInflexibleTask(t *testing.T) {
	inflexible := false
	tasks := []model.Task{
		{Title: "Prepare briefing", EstimatedDuration: 60, Deadline: deadlineIn(2)},
		{Title: "Draft proposal", EstimatedDuration: 68, Deadline: deadlineIn(2)},
		{Title: "Sort old screenshots", EstimatedDuration: 72, Priority: model.PriorityLow, IsFlexible: &inflexible},
	}
	windows := []model.TimeWindow{
		windowOf(testNow, 70, ""),
		windowOf(testNow.Add(2*time.Hour), 80, ""),
	}

	result, err := testEngine().Schedule(tasks, windows, model.StressContext{Level: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item := result.Items[2]
	if item.Status == model.StatusNotScheduled {
		t.Fatalf("inflexible task should be rescued")
	}
	if !almostEqual(item.Confidence, 0.5) {
		t.Errorf("confidence = %v, want 0.5", item.Confidence)
	}
}

// Best-fit prefers the smallest sufficient window; ties go to the
// earlier window in input order.
func TestBestFitSelection(t *testing.T) {
	tasks := []model.Task{{Title: "Write notes", EstimatedDuration: 50}}
	windows := []model.TimeWindow{
		windowOf(testNow, 120, "Big"),
		windowOf(testNow.Add(3*time.Hour), 60, "Snug"),
		windowOf(testNow.Add(6*time.Hour), 90, "Middle"),
	}

	result, err := testEngine().Schedule(tasks, windows, model.StressContext{Level: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.Items[0].Window.Label; got != "Snug" {
		t.Errorf("picked %q, want the tightest window", got)
	}

	// identical windows: the earlier one wins
	windows = []model.TimeWindow{
		windowOf(testNow, 60, "First"),
		windowOf(testNow.Add(3*time.Hour), 60, "Second"),
	}
	result, err = testEngine().Schedule(tasks, windows, model.StressContext{Level: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.Items[0].Window.Label; got != "First" {
		t.Errorf("tie-break picked %q, want First", got)
	}
}

// A full phase-2 allocation under overcommitment is reported as scaled.
func TestPartialFitScaledStatus(t *testing.T) {
	tasks := []model.Task{
		{Title: "Prepare briefing", EstimatedDuration: 90, Deadline: deadlineIn(2)},
		{Title: "Organize inbox", EstimatedDuration: 100},
	}
	windows := []model.TimeWindow{
		windowOf(testNow, 90, ""),
		windowOf(testNow.Add(2*time.Hour), 40, ""),
	}

	result, err := testEngine().Schedule(tasks, windows, model.StressContext{Level: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// first task fits the 90-minute window exactly: phase 2, full
	// minutes, flagged scaled because total demand exceeds capacity
	first := result.Items[0]
	if first.Status != model.StatusScaled || first.AllocatedMinutes != 90 {
		t.Errorf("item = %q/%d, want scaled/90", first.Status, first.AllocatedMinutes)
	}
	if !almostEqual(first.Confidence, 0.8) {
		t.Errorf("confidence = %v, want 0.8", first.Confidence)
	}

	// second task: no perfect fit, gets the 40-minute window truncated
	second := result.Items[1]
	if second.Status != model.StatusPartial || second.AllocatedMinutes != 40 {
		t.Errorf("item = %q/%d, want partial/40", second.Status, second.AllocatedMinutes)
	}
}

// A rescue that covers the full requested duration is reported as
// scaled, still at rescue confidence.
func TestRescueFullAllocationScaled(t *testing.T) {
	tasks := []model.Task{
		{Title: "Prepare briefing", EstimatedDuration: 60, Deadline: deadlineIn(2)},
		{Title: "Draft proposal", EstimatedDuration: 68, Deadline: deadlineIn(2)},
		{Title: "Approve release", EstimatedDuration: 12, Priority: model.PriorityHigh},
	}
	windows := []model.TimeWindow{
		windowOf(testNow, 72, ""),
		windowOf(testNow.Add(2*time.Hour), 80, ""),
	}

	result, err := testEngine().Schedule(tasks, windows, model.StressContext{Level: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// both windows are left with exactly 12 minutes: too small for
	// phase 2, an exact match for the 12-minute rescue
	item := result.Items[2]
	if item.Status != model.StatusScaled {
		t.Errorf("status = %q, want scaled", item.Status)
	}
	if item.AllocatedMinutes != 12 {
		t.Errorf("allocated = %d, want 12", item.AllocatedMinutes)
	}
	if !almostEqual(item.Confidence, 0.5) {
		t.Errorf("confidence = %v, want 0.5", item.Confidence)
	}
}

// Invalid windows are rejected before any allocation.
func TestScheduleRejectsInvalidWindow(t *testing.T) {
	tasks := []model.Task{{Title: "Anything", EstimatedDuration: 30}}
	windows := []model.TimeWindow{
		{StartTime: testNow, EndTime: testNow.Add(-time.Hour), Label: "Backwards"},
	}

	_, err := testEngine().Schedule(tasks, windows, model.StressContext{Level: 3})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "Backwards") {
		t.Errorf("error should name the window: %v", err)
	}
}

func TestScheduleRejectsStressOutOfRange(t *testing.T) {
	tasks := []model.Task{{Title: "Anything", EstimatedDuration: 30}}
	windows := []model.TimeWindow{windowOf(testNow, 60, "")}

	if _, err := testEngine().Schedule(tasks, windows, model.StressContext{Level: 11}); err != ErrInvalidStressLevel {
		t.Errorf("level 11: err = %v, want ErrInvalidStressLevel", err)
	}
	if _, err := testEngine().Schedule(tasks, windows, model.StressContext{Level: -1}); err != ErrInvalidStressLevel {
		t.Errorf("level -1: err = %v, want ErrInvalidStressLevel", err)
	}
}

// Defaults: generated id, medium priority, work category, 60 minutes.
func TestScheduleAppliesTaskDefaults(t *testing.T) {
	tasks := []model.Task{{Title: "Untouched defaults"}}
	windows := []model.TimeWindow{windowOf(testNow, 90, "")}

	result, err := testEngine().Schedule(tasks, windows, model.StressContext{Level: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	task := result.Items[0].Task
	if task.ID == "" {
		t.Error("task id was not generated")
	}
	if task.Priority != model.PriorityMedium {
		t.Errorf("priority = %q, want medium", task.Priority)
	}
	if task.Category != "work" {
		t.Errorf("category = %q, want work", task.Category)
	}
	if result.Items[0].AllocatedMinutes != 60 {
		t.Errorf("allocated = %d, want the 60-minute default", result.Items[0].AllocatedMinutes)
	}
}
