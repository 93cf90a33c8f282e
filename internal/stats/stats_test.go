package stats

import (
	"testing"

	"github.com/tmalley/focusboard/internal/models"
)

func completedTask(at string) models.Task {
	return models.Task{Text: "t", Completed: true, CompletedAt: &at}
}

func TestBuildSummaryFillsEveryDay(t *testing.T) {
	records := []models.WorkRecord{
		{Date: "2026-08-20", SecondsWorked: 3600},
		{Date: "2026-08-22", SecondsWorked: 1800},
	}

	summary, err := BuildSummary(records, nil, "2026-08-20", "2026-08-23")
	if err != nil {
		t.Fatalf("BuildSummary() failed: %v", err)
	}

	if len(summary.Days) != 4 {
		t.Fatalf("len(Days) = %d, want 4 inclusive days", len(summary.Days))
	}
	wantMinutes := []int{60, 0, 30, 0}
	for i, day := range summary.Days {
		if day.FocusMinutes != wantMinutes[i] {
			t.Errorf("Days[%d].FocusMinutes = %d, want %d", i, day.FocusMinutes, wantMinutes[i])
		}
	}
	if summary.TotalFocusMinutes != 90 {
		t.Errorf("TotalFocusMinutes = %d, want 90", summary.TotalFocusMinutes)
	}
	if summary.ActiveDays != 2 {
		t.Errorf("ActiveDays = %d, want 2", summary.ActiveDays)
	}
	if summary.AvgFocusMinutes != 45 {
		t.Errorf("AvgFocusMinutes = %g, want 45 over active days", summary.AvgFocusMinutes)
	}
	if summary.BestDay != "2026-08-20" {
		t.Errorf("BestDay = %s, want 2026-08-20", summary.BestDay)
	}
}

func TestBuildSummaryCountsCompletedTasks(t *testing.T) {
	tasks := []models.Task{
		completedTask("2026-08-20T09:30:00Z"),
		completedTask("2026-08-20T17:00:00Z"),
		completedTask("2026-08-21T12:00:00Z"),
		{Text: "open"},
		{Text: "bad timestamp", Completed: true, CompletedAt: strPtr("not-a-time")},
	}

	summary, err := BuildSummary(nil, tasks, "2026-08-20", "2026-08-21")
	if err != nil {
		t.Fatalf("BuildSummary() failed: %v", err)
	}

	if summary.TotalCompleted != 3 {
		t.Errorf("TotalCompleted = %d, want 3", summary.TotalCompleted)
	}
	if summary.Days[0].TasksCompleted != 2 {
		t.Errorf("Days[0].TasksCompleted = %d, want 2", summary.Days[0].TasksCompleted)
	}
}

func strPtr(s string) *string { return &s }

func TestBuildSummarySwapsInvertedRange(t *testing.T) {
	summary, err := BuildSummary(nil, nil, "2026-08-23", "2026-08-20")
	if err != nil {
		t.Fatalf("BuildSummary() failed: %v", err)
	}
	if len(summary.Days) != 4 {
		t.Errorf("len(Days) = %d, want 4 after swapping bounds", len(summary.Days))
	}
	if summary.Days[0].Date != "2026-08-20" {
		t.Errorf("Days[0].Date = %s, want 2026-08-20", summary.Days[0].Date)
	}
}

func TestBuildSummaryBadDate(t *testing.T) {
	if _, err := BuildSummary(nil, nil, "yesterday", "2026-08-20"); err == nil {
		t.Error("BuildSummary() with a bad date returned nil error")
	}
}

func TestBuildSummaryEmptyRangeAvgIsZero(t *testing.T) {
	summary, err := BuildSummary(nil, nil, "2026-08-20", "2026-08-20")
	if err != nil {
		t.Fatalf("BuildSummary() failed: %v", err)
	}
	if summary.AvgFocusMinutes != 0 {
		t.Errorf("AvgFocusMinutes = %g, want 0 with no activity", summary.AvgFocusMinutes)
	}
	if summary.BestDay != "" {
		t.Errorf("BestDay = %q, want empty with no activity", summary.BestDay)
	}
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name  string
		tasks []models.Task
		want  float64
	}{
		{"empty", nil, 0},
		{"none completed", []models.Task{{}, {}}, 0},
		{"half completed", []models.Task{{Completed: true}, {}}, 0.5},
		{"all completed", []models.Task{{Completed: true}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletionRate(tt.tasks); got != tt.want {
				t.Errorf("CompletionRate() = %g, want %g", got, tt.want)
			}
		})
	}
}
