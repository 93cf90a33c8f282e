// Package stats aggregates work-log records and tasks into the daily
// statistics shown by the stats tab and the stats command.
package stats

import (
	"time"

	"github.com/tmalley/focusboard/internal/constants"
	"github.com/tmalley/focusboard/internal/models"
)

// DayStat is the aggregate for one calendar day.
type DayStat struct {
	Date           string
	FocusMinutes   int
	TasksCompleted int
}

// Summary covers a contiguous date range.
type Summary struct {
	Days              []DayStat
	TotalFocusMinutes int
	TotalCompleted    int
	ActiveDays        int     // days with any focus time
	AvgFocusMinutes   float64 // over active days
	BestDay           string  // date with the most focus minutes, empty if none
}

// BuildSummary aggregates records and tasks over [startDate, endDate],
// both inclusive, local calendar days. Every day in the range appears
// in Days, including days without any activity.
func BuildSummary(records []models.WorkRecord, tasks []models.Task, startDate, endDate string) (Summary, error) {
	start, err := time.Parse(constants.DateFormat, startDate)
	if err != nil {
		return Summary{}, err
	}
	end, err := time.Parse(constants.DateFormat, endDate)
	if err != nil {
		return Summary{}, err
	}
	if end.Before(start) {
		start, end = end, start
	}

	minutesByDate := make(map[string]int, len(records))
	for _, r := range records {
		minutesByDate[r.Date] += r.FocusMinutes()
	}

	completedByDate := make(map[string]int)
	for _, t := range tasks {
		if !t.Completed || t.CompletedAt == nil {
			continue
		}
		done, err := time.Parse(time.RFC3339, *t.CompletedAt)
		if err != nil {
			continue
		}
		completedByDate[done.Local().Format(constants.DateFormat)]++
	}

	var summary Summary
	bestMinutes := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := day.Format(constants.DateFormat)
		stat := DayStat{
			Date:           date,
			FocusMinutes:   minutesByDate[date],
			TasksCompleted: completedByDate[date],
		}
		summary.Days = append(summary.Days, stat)
		summary.TotalFocusMinutes += stat.FocusMinutes
		summary.TotalCompleted += stat.TasksCompleted
		if stat.FocusMinutes > 0 {
			summary.ActiveDays++
		}
		if stat.FocusMinutes > bestMinutes {
			bestMinutes = stat.FocusMinutes
			summary.BestDay = date
		}
	}

	if summary.ActiveDays > 0 {
		summary.AvgFocusMinutes = float64(summary.TotalFocusMinutes) / float64(summary.ActiveDays)
	}

	return summary, nil
}

// CompletionRate returns the completed share of all tasks, 0 when empty.
func CompletionRate(tasks []models.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(tasks))
}
