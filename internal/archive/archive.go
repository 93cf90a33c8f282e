// Package archive renders and parses the day-keyed markdown archive
// format. Both directions are pure text transformations; file I/O and
// dialogs belong to the callers.
package archive

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tmalley/focusboard/internal/constants"
	"github.com/tmalley/focusboard/internal/models"
)

// TaskLine is one archived task entry.
type TaskLine struct {
	Text string
	Done bool
}

// DaySnapshot is one day's worth of archive content.
type DaySnapshot struct {
	Date         string // YYYY-MM-DD
	FocusMinutes int
	Tasks        []TaskLine
}

// RenderDay renders one day section of the archive.
//
//	## 2026-08-24
//
//	Focus: 132 min
//
//	- [x] Write report
//	- [ ] Email client
func RenderDay(date string, tasks []models.Task, focusMinutes int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n\n", date)
	fmt.Fprintf(&b, "Focus: %d min\n", focusMinutes)

	if len(tasks) > 0 {
		b.WriteString("\n")
		for _, t := range tasks {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s\n", mark, t.Text)
		}
	}

	return b.String()
}

// ParseArchive parses archive text back into day snapshots. Unknown
// lines are skipped; a malformed date header ends the previous section
// without starting a new one so a partially corrupted archive still
// yields its intact days.
func ParseArchive(text string) []DaySnapshot {
	var snapshots []DaySnapshot
	var current *DaySnapshot

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")

		switch {
		case strings.HasPrefix(line, "## "):
			date := strings.TrimSpace(strings.TrimPrefix(line, "## "))
			current = nil
			if _, err := time.Parse(constants.DateFormat, date); err != nil {
				continue
			}
			snapshots = append(snapshots, DaySnapshot{Date: date})
			current = &snapshots[len(snapshots)-1]

		case strings.HasPrefix(line, "Focus:"):
			if current == nil {
				continue
			}
			fields := strings.Fields(strings.TrimPrefix(line, "Focus:"))
			if len(fields) == 0 {
				continue
			}
			if minutes, err := strconv.Atoi(fields[0]); err == nil && minutes >= 0 {
				current.FocusMinutes = minutes
			}

		case strings.HasPrefix(line, "- ["):
			if current == nil || len(line) < len("- [ ] ") {
				continue
			}
			mark := line[3]
			if line[4] != ']' || (mark != ' ' && mark != 'x' && mark != 'X') {
				continue
			}
			text := strings.TrimSpace(line[5:])
			if text == "" {
				continue
			}
			current.Tasks = append(current.Tasks, TaskLine{
				Text: text,
				Done: mark != ' ',
			})
		}
	}

	return snapshots
}

// Render renders a full archive document, most recent day first.
func Render(snapshots []DaySnapshot) string {
	var sections []string
	for _, s := range snapshots {
		var tasks []models.Task
		for _, t := range s.Tasks {
			tasks = append(tasks, models.Task{Text: t.Text, Completed: t.Done})
		}
		sections = append(sections, RenderDay(s.Date, tasks, s.FocusMinutes))
	}
	return strings.Join(sections, "\n")
}
