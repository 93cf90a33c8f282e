package archive

import (
	"strings"
	"testing"

	"github.com/tmalley/focusboard/internal/models"
)

func TestRenderDay(t *testing.T) {
	completedAt := "2026-08-24T10:00:00Z"
	tasks := []models.Task{
		{Text: "Write report", Completed: true, CompletedAt: &completedAt},
		{Text: "Email client"},
	}

	got := RenderDay("2026-08-24", tasks, 132)

	want := "## 2026-08-24\n\nFocus: 132 min\n\n- [x] Write report\n- [ ] Email client\n"
	if got != want {
		t.Errorf("RenderDay() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderDayNoTasks(t *testing.T) {
	got := RenderDay("2026-08-24", nil, 45)
	if strings.Contains(got, "- [") {
		t.Errorf("RenderDay() with no tasks contains a task line:\n%s", got)
	}
	if !strings.Contains(got, "Focus: 45 min") {
		t.Errorf("RenderDay() missing focus line:\n%s", got)
	}
}

func TestParseArchiveRoundtrip(t *testing.T) {
	snapshots := []DaySnapshot{
		{
			Date:         "2026-08-24",
			FocusMinutes: 132,
			Tasks: []TaskLine{
				{Text: "Write report", Done: true},
				{Text: "Email client", Done: false},
			},
		},
		{
			Date:         "2026-08-23",
			FocusMinutes: 20,
			Tasks: []TaskLine{
				{Text: "Plan sprint", Done: true},
			},
		},
	}

	parsed := ParseArchive(Render(snapshots))

	if len(parsed) != 2 {
		t.Fatalf("len(parsed) = %d, want 2", len(parsed))
	}
	for i, snap := range snapshots {
		got := parsed[i]
		if got.Date != snap.Date || got.FocusMinutes != snap.FocusMinutes {
			t.Errorf("day %d: got %s/%dmin, want %s/%dmin", i, got.Date, got.FocusMinutes, snap.Date, snap.FocusMinutes)
		}
		if len(got.Tasks) != len(snap.Tasks) {
			t.Fatalf("day %d: len(tasks) = %d, want %d", i, len(got.Tasks), len(snap.Tasks))
		}
		for j, task := range snap.Tasks {
			if got.Tasks[j] != task {
				t.Errorf("day %d task %d: got %+v, want %+v", i, j, got.Tasks[j], task)
			}
		}
	}
}

func TestParseArchiveTolerance(t *testing.T) {
	text := strings.Join([]string{
		"# Focusboard archive",
		"",
		"## 2026-08-24",
		"random prose the parser should skip",
		"Focus: 90 min",
		"- [x] Done thing",
		"- [?] bad checkbox mark",
		"- [x]",
		"",
		"## not-a-date",
		"Focus: 999 min",
		"- [x] Orphaned task",
		"",
		"## 2026-08-23",
		"Focus: abc min",
		"- [ ] Open thing",
	}, "\n")

	parsed := ParseArchive(text)

	if len(parsed) != 2 {
		t.Fatalf("len(parsed) = %d, want 2 intact days", len(parsed))
	}

	first := parsed[0]
	if first.FocusMinutes != 90 {
		t.Errorf("first.FocusMinutes = %d, want 90", first.FocusMinutes)
	}
	if len(first.Tasks) != 1 || first.Tasks[0].Text != "Done thing" {
		t.Errorf("first.Tasks = %+v, want only the well-formed line", first.Tasks)
	}

	// The malformed header ended the section; its lines belong nowhere
	second := parsed[1]
	if second.Date != "2026-08-23" {
		t.Errorf("second.Date = %s, want 2026-08-23", second.Date)
	}
	if second.FocusMinutes != 0 {
		t.Errorf("second.FocusMinutes = %d, want 0 for unparseable focus line", second.FocusMinutes)
	}
	if len(second.Tasks) != 1 || second.Tasks[0].Done {
		t.Errorf("second.Tasks = %+v, want one open task", second.Tasks)
	}
}

func TestParseArchiveEmpty(t *testing.T) {
	if got := ParseArchive(""); len(got) != 0 {
		t.Errorf("ParseArchive(\"\") = %+v, want empty", got)
	}
}
