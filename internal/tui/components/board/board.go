// Package board renders the kanban tab: one vertical lane per column
// with a cursor for keyboard navigation.
package board

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/tmalley/focusboard/internal/models"
)

type Model struct {
	columns       []models.Column
	tasksByColumn map[string][]models.Task
	columnCursor  int
	taskCursor    int
	accent        string
	width         int
	height        int
}

func New(accent string) Model {
	return Model{
		tasksByColumn: make(map[string][]models.Task),
		accent:        accent,
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetData replaces the board contents and clamps the cursor.
func (m *Model) SetData(columns []models.Column, tasksByColumn map[string][]models.Task) {
	m.columns = columns
	m.tasksByColumn = tasksByColumn
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if len(m.columns) == 0 {
		m.columnCursor = 0
		m.taskCursor = 0
		return
	}
	if m.columnCursor >= len(m.columns) {
		m.columnCursor = len(m.columns) - 1
	}
	tasks := m.tasksByColumn[m.columns[m.columnCursor].ID]
	if m.taskCursor >= len(tasks) {
		m.taskCursor = len(tasks) - 1
	}
	if m.taskCursor < 0 {
		m.taskCursor = 0
	}
}

func (m *Model) MoveLeft() {
	if m.columnCursor > 0 {
		m.columnCursor--
		m.clampCursor()
	}
}

func (m *Model) MoveRight() {
	if m.columnCursor < len(m.columns)-1 {
		m.columnCursor++
		m.clampCursor()
	}
}

func (m *Model) MoveUp() {
	if m.taskCursor > 0 {
		m.taskCursor--
	}
}

func (m *Model) MoveDown() {
	if len(m.columns) == 0 {
		return
	}
	tasks := m.tasksByColumn[m.columns[m.columnCursor].ID]
	if m.taskCursor < len(tasks)-1 {
		m.taskCursor++
	}
}

// SelectedColumn returns the column under the cursor, nil when empty.
func (m *Model) SelectedColumn() *models.Column {
	if len(m.columns) == 0 {
		return nil
	}
	col := m.columns[m.columnCursor]
	return &col
}

// SelectedTask returns the task under the cursor, nil when empty.
func (m *Model) SelectedTask() *models.Task {
	col := m.SelectedColumn()
	if col == nil {
		return nil
	}
	tasks := m.tasksByColumn[col.ID]
	if m.taskCursor >= len(tasks) {
		return nil
	}
	task := tasks[m.taskCursor]
	return &task
}

func (m Model) View() string {
	if len(m.columns) == 0 {
		return "No columns. Use 'focusboard column add' to create one."
	}

	laneWidth := 28
	if m.width > 0 {
		available := m.width/len(m.columns) - 2
		if available > 18 && available < laneWidth {
			laneWidth = available
		}
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	activeTitleStyle := titleStyle.Foreground(lipgloss.Color(m.accent))
	laneStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(laneWidth).
		Padding(0, 1)
	activeLaneStyle := laneStyle.BorderForeground(lipgloss.Color(m.accent))
	selectedStyle := lipgloss.NewStyle().Reverse(true)
	doneStyle := lipgloss.NewStyle().Faint(true).Strikethrough(true)

	var lanes []string
	for i, column := range m.columns {
		tasks := m.tasksByColumn[column.ID]

		title := titleStyle
		lane := laneStyle
		if i == m.columnCursor {
			title = activeTitleStyle
			lane = activeLaneStyle
		}

		lines := []string{title.Render(fmt.Sprintf("%s (%d)", column.Title, len(tasks)))}
		for j, task := range tasks {
			mark := "[ ]"
			if task.Completed {
				mark = "[x]"
			}
			line := fmt.Sprintf("%s %s", mark, truncate(task.Text, laneWidth-6))
			if task.Completed {
				line = doneStyle.Render(line)
			}
			if i == m.columnCursor && j == m.taskCursor {
				line = selectedStyle.Render(line)
			}
			lines = append(lines, line)
		}
		if len(tasks) == 0 {
			lines = append(lines, lipgloss.NewStyle().Faint(true).Render("(empty)"))
		}

		lanes = append(lanes, lane.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, lanes...)
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
