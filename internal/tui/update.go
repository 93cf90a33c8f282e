package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/tmalley/focusboard/internal/logger"
	"github.com/tmalley/focusboard/internal/models"
	"github.com/tmalley/focusboard/internal/notifier"
	"github.com/tmalley/focusboard/internal/timer"
	"github.com/tmalley/focusboard/internal/tui/components/board"
	"github.com/tmalley/focusboard/internal/tui/components/statsview"
	"github.com/tmalley/focusboard/internal/tui/components/timerview"
	"github.com/tmalley/focusboard/internal/validation"
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ledgerFlushInterval is the number of ticks between write-throughs of
// buffered work seconds.
const ledgerFlushInterval = 30

func notifyCmd(n *notifier.Notifier, kind notifier.Kind, text string) tea.Cmd {
	return func() tea.Msg {
		if err := n.Notify(kind, text); err != nil {
			logger.Debug("Notification not delivered", "kind", kind, "error", err)
		}
		return nil
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := msg.Height - 4
		m.timerView.SetSize(msg.Width, contentHeight)
		m.boardView.SetSize(msg.Width-4, contentHeight)
		m.statsView.SetSize(msg.Width-4, contentHeight)
		return m, nil

	case tickMsg:
		return m.handleTick()
	}

	// Form states consume everything except escape
	switch m.state {
	case StateEditTask:
		return m.updateTaskForm(msg)
	case StateEditSettings:
		return m.updateSettingsForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}

	return m, tea.Batch(cmds...)
}

// handleTick drives the state machine and detects mode transitions by
// comparing the snapshot before and after.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	before := m.lastSnap
	m.machine.Tick()
	after := m.machine.State()
	m.lastSnap = after

	var cmds []tea.Cmd
	if cmd := m.transitionCmd(before, after); cmd != nil {
		cmds = append(cmds, cmd)
	}

	m.tickCount++
	if m.tickCount%ledgerFlushInterval == 0 {
		m.ledger.Flush()
	}

	m.refreshTimerView()

	if after.Active {
		cmds = append(cmds, tickCmd())
	} else {
		m.ticking = false
		m.ledger.Flush()
		m.refreshStats()
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) transitionCmd(before, after timer.Snapshot) tea.Cmd {
	if before.Mode == after.Mode {
		return nil
	}

	switch {
	case before.Mode == timer.ModeWork && after.Mode == timer.ModeShortBreak:
		m.refreshStats()
		return notifyCmd(m.notify, notifier.KindBreakStart, "Work period complete. Time for a break.")
	case before.Mode == timer.ModeShortBreak && after.Mode == timer.ModeWork:
		return notifyCmd(m.notify, notifier.KindBreakEnd, "Break is over. Back to work.")
	case before.Mode == timer.ModeWork && after.Mode == timer.ModeMicroBreak:
		return notifyCmd(m.notify, notifier.KindMicroBreak, "Micro-break. Look away from the screen.")
	}
	return nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The micro-break overlay captures input; only skip and quit work.
	if m.lastSnap.Overlay {
		switch {
		case key.Matches(msg, m.keys.Skip):
			m.machine.SkipMicroBreak()
			m.lastSnap = m.machine.State()
			m.refreshTimerView()
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		m.state = nextTab(m.state, 1)
		if m.state == StateStats {
			m.refreshStats()
		}
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.state = nextTab(m.state, -1)
		if m.state == StateStats {
			m.refreshStats()
		}
		return m, nil
	}

	switch m.state {
	case StateTimer:
		return m.handleTimerKey(msg)
	case StateBoard:
		return m.handleBoardKey(msg)
	case StateSettings:
		if key.Matches(msg, m.keys.Edit) {
			m.openSettingsForm()
			return m, m.form.Init()
		}
	}

	return m, nil
}

func nextTab(state SessionState, direction int) SessionState {
	tabs := []SessionState{StateTimer, StateBoard, StateStats, StateSettings}
	for i, tab := range tabs {
		if tab == state {
			return tabs[(i+direction+len(tabs))%len(tabs)]
		}
	}
	return state
}

func (m Model) handleTimerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.machine.Toggle()
		m.lastSnap = m.machine.State()
		m.refreshTimerView()
		if m.lastSnap.Active && !m.ticking {
			m.ticking = true
			return m, tickCmd()
		}
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.machine.Reset()
		m.ledger.Flush()
		m.lastSnap = m.machine.State()
		m.refreshTimerView()
		return m, nil
	case key.Matches(msg, m.keys.Skip):
		m.machine.SkipMicroBreak()
		m.lastSnap = m.machine.State()
		m.refreshTimerView()
		return m, nil
	}
	return m, nil
}

func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.boardView.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.boardView.MoveDown()
	case key.Matches(msg, m.keys.Left):
		m.boardView.MoveLeft()
	case key.Matches(msg, m.keys.Right):
		m.boardView.MoveRight()
	case key.Matches(msg, m.keys.Done):
		if task := m.boardView.SelectedTask(); task != nil {
			toggleCompleted(task)
			if err := m.store.UpdateTask(*task); err == nil {
				_ = m.refreshBoard()
				m.refreshStats()
			}
		}
	case key.Matches(msg, m.keys.MoveTask):
		if err := m.moveSelectedTask(); err != nil {
			logger.Warn("Failed to move task", "error", err)
		}
	case key.Matches(msg, m.keys.Add):
		m.openTaskForm(nil)
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Edit):
		if task := m.boardView.SelectedTask(); task != nil {
			m.openTaskForm(task)
			return m, m.form.Init()
		}
	case key.Matches(msg, m.keys.Delete):
		if task := m.boardView.SelectedTask(); task != nil {
			m.taskToDeleteID = task.ID
			m.previousState = m.state
			m.state = StateConfirmDelete
		}
	}
	return m, nil
}

func toggleCompleted(task *models.Task) {
	if task.Completed {
		task.Completed = false
		task.CompletedAt = nil
		return
	}
	now := time.Now().UTC().Format(time.RFC3339)
	task.Completed = true
	task.CompletedAt = &now
}

// moveSelectedTask sends the selected task to the next column, wrapping
// around to the first.
func (m *Model) moveSelectedTask() error {
	task := m.boardView.SelectedTask()
	if task == nil {
		return nil
	}
	columns, err := m.store.GetAllColumns()
	if err != nil {
		return err
	}
	for i, column := range columns {
		if column.ID == task.ColumnID {
			target := columns[(i+1)%len(columns)]
			existing, err := m.store.GetTasksForColumn(target.ID)
			if err != nil {
				return err
			}
			if err := m.store.MoveTask(task.ID, target.ID, len(existing)); err != nil {
				return err
			}
			return m.refreshBoard()
		}
	}
	return nil
}

func (m *Model) openTaskForm(task *models.Task) {
	m.taskForm = &TaskFormModel{}
	m.editingTask = nil
	title := "New task"
	if task != nil {
		m.taskForm.Text = task.Text
		m.editingTask = task
		title = "Edit task"
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&m.taskForm.Text),
		),
	)
	m.previousState = m.state
	m.state = StateEditTask
}

func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateBoard
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		text := strings.TrimSpace(m.taskForm.Text)
		if text == "" {
			m.state = StateBoard
			return m, tea.Batch(cmds...)
		}
		if err := m.saveTaskForm(text); err != nil {
			m.formError = fmt.Sprintf("Failed to save task: %v", err)
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}
		m.formError = ""
		_ = m.refreshBoard()
		m.state = StateBoard
	case huh.StateAborted:
		m.state = StateBoard
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) saveTaskForm(text string) error {
	if m.editingTask != nil {
		task := *m.editingTask
		task.Text = text
		return m.store.UpdateTask(task)
	}

	column := m.boardView.SelectedColumn()
	if column == nil {
		return fmt.Errorf("no column selected")
	}
	existing, err := m.store.GetTasksForColumn(column.ID)
	if err != nil {
		return err
	}
	return m.store.AddTask(models.Task{
		ID:        uuid.New().String(),
		Text:      text,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		ColumnID:  column.ID,
		Position:  len(existing),
	})
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if err := m.store.DeleteTask(m.taskToDeleteID); err == nil {
				_ = m.refreshBoard()
			}
			m.taskToDeleteID = ""
			m.state = m.previousState
		case "n", "N", "esc":
			m.taskToDeleteID = ""
			m.state = m.previousState
		}
	}
	return m, nil
}

func (m *Model) openSettingsForm() {
	settings := m.machine.Settings()
	m.settingsForm = &SettingsFormModel{
		WorkMinutes:       strconv.Itoa(settings.WorkMinutes),
		BreakMinutes:      strconv.Itoa(settings.BreakMinutes),
		MicroBreakSeconds: strconv.Itoa(settings.MicroBreakSeconds),
		MinInterval:       strconv.Itoa(settings.MicroBreakMinInterval),
		MaxInterval:       strconv.Itoa(settings.MicroBreakMaxInterval),
		EnableMicroBreaks: settings.EnableMicroBreaks,
		AutoStartWork:     settings.AutoStartWork,
		AutoStartBreak:    settings.AutoStartBreak,
		ToneVolume:        strconv.Itoa(settings.ToneVolume),
		BackgroundVolume:  strconv.Itoa(settings.BackgroundVolume),
		CustomSoundPath:   settings.CustomSoundPath,
		ThemeColor:        settings.ThemeColor,
		DarkMode:          settings.DarkMode,
		UIScale:           fmt.Sprintf("%g", settings.UIScale),
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Work minutes").Value(&m.settingsForm.WorkMinutes),
			huh.NewInput().Title("Break minutes").Value(&m.settingsForm.BreakMinutes),
			huh.NewInput().Title("Micro-break seconds").Value(&m.settingsForm.MicroBreakSeconds),
			huh.NewInput().Title("Micro-break min interval (minutes)").Value(&m.settingsForm.MinInterval),
			huh.NewInput().Title("Micro-break max interval (minutes)").Value(&m.settingsForm.MaxInterval),
			huh.NewConfirm().Title("Enable micro-breaks").Value(&m.settingsForm.EnableMicroBreaks),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Auto-start work after break").Value(&m.settingsForm.AutoStartWork),
			huh.NewConfirm().Title("Auto-start break after work").Value(&m.settingsForm.AutoStartBreak),
			huh.NewInput().Title("Tone volume (0-100)").Value(&m.settingsForm.ToneVolume),
			huh.NewInput().Title("Background volume (0-100)").Value(&m.settingsForm.BackgroundVolume),
			huh.NewInput().Title("Custom sound path").Value(&m.settingsForm.CustomSoundPath),
		),
		huh.NewGroup(
			huh.NewInput().Title("Theme color (hex)").Value(&m.settingsForm.ThemeColor),
			huh.NewConfirm().Title("Dark mode").Value(&m.settingsForm.DarkMode),
			huh.NewInput().Title("UI scale (0.5-1.0)").Value(&m.settingsForm.UIScale),
		),
	)
	m.previousState = m.state
	m.state = StateEditSettings
}

func (m Model) updateSettingsForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.formError = ""
		m.state = StateSettings
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		settings, err := m.parseSettingsForm()
		if err != nil {
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}
		if err := validation.ValidateSettings(settings); err != nil {
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}
		if err := m.store.SaveSettings(settings); err != nil {
			m.formError = fmt.Sprintf("Failed to save settings: %v", err)
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}

		m.applySettings(settings)
		m.formError = ""
		m.state = StateSettings
	case huh.StateAborted:
		m.formError = ""
		m.state = StateSettings
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) parseSettingsForm() (models.Settings, error) {
	f := m.settingsForm
	settings := models.Settings{
		EnableMicroBreaks: f.EnableMicroBreaks,
		AutoStartWork:     f.AutoStartWork,
		AutoStartBreak:    f.AutoStartBreak,
		CustomSoundPath:   strings.TrimSpace(f.CustomSoundPath),
		ThemeColor:        strings.TrimSpace(f.ThemeColor),
		DarkMode:          f.DarkMode,
	}

	fields := []struct {
		name  string
		value string
		dst   *int
	}{
		{"work minutes", f.WorkMinutes, &settings.WorkMinutes},
		{"break minutes", f.BreakMinutes, &settings.BreakMinutes},
		{"micro-break seconds", f.MicroBreakSeconds, &settings.MicroBreakSeconds},
		{"micro-break min interval", f.MinInterval, &settings.MicroBreakMinInterval},
		{"micro-break max interval", f.MaxInterval, &settings.MicroBreakMaxInterval},
		{"tone volume", f.ToneVolume, &settings.ToneVolume},
		{"background volume", f.BackgroundVolume, &settings.BackgroundVolume},
	}
	for _, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field.value))
		if err != nil {
			return models.Settings{}, fmt.Errorf("invalid %s: %q", field.name, field.value)
		}
		*field.dst = n
	}

	scale, err := strconv.ParseFloat(strings.TrimSpace(f.UIScale), 64)
	if err != nil {
		return models.Settings{}, fmt.Errorf("invalid ui scale: %q", f.UIScale)
	}
	settings.UIScale = scale

	return settings, nil
}

// applySettings pushes saved settings into the running timer and
// rebuilds the theme-dependent pieces.
func (m *Model) applySettings(settings models.Settings) {
	m.machine.ApplySettings(settings)
	m.player.SetSoundPath(settings.CustomSoundPath)
	m.styles = newStyles(settings.ThemeColor, settings.DarkMode)
	m.timerView = timerview.New(settings.ThemeColor)
	m.timerView.SetSize(m.width, m.height-4)
	m.boardView = board.New(settings.ThemeColor)
	m.boardView.SetSize(m.width-4, m.height-4)
	m.statsView = statsViewFor(settings.ThemeColor, m.width-4, m.height-4)
	_ = m.refreshBoard()
	m.lastSnap = m.machine.State()
	m.refreshTimerView()
	m.refreshStats()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.ledger.Flush()
	m.player.StopBackground()
	return m, tea.Quit
}

func statsViewFor(accent string, width, height int) statsview.Model {
	sv := statsview.New(accent)
	sv.SetSize(width, height)
	return sv
}
