package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/tmalley/focusboard/internal/constants"
	"github.com/tmalley/focusboard/internal/ledger"
	"github.com/tmalley/focusboard/internal/models"
	"github.com/tmalley/focusboard/internal/notifier"
	"github.com/tmalley/focusboard/internal/stats"
	"github.com/tmalley/focusboard/internal/storage"
	"github.com/tmalley/focusboard/internal/timer"
	"github.com/tmalley/focusboard/internal/tui/components/board"
	"github.com/tmalley/focusboard/internal/tui/components/statsview"
	"github.com/tmalley/focusboard/internal/tui/components/timerview"
)

type SessionState int

const (
	StateTimer SessionState = iota
	StateBoard
	StateStats
	StateSettings
	StateEditTask
	StateEditSettings
	StateConfirmDelete
)

type TaskFormModel struct {
	Text string
}

type SettingsFormModel struct {
	WorkMinutes       string
	BreakMinutes      string
	MicroBreakSeconds string
	MinInterval       string
	MaxInterval       string
	EnableMicroBreaks bool
	AutoStartWork     bool
	AutoStartBreak    bool
	ToneVolume        string
	BackgroundVolume  string
	CustomSoundPath   string
	ThemeColor        string
	DarkMode          bool
	UIScale           string
}

// TimerAudio is the audio collaborator the model drives. Satisfied by
// audio.Player; narrowed here so tests can substitute a recorder.
type TimerAudio interface {
	timer.Audio
	SetSoundPath(path string)
}

type Model struct {
	store   storage.Provider
	machine *timer.Machine
	ledger  *ledger.Ledger
	player  TimerAudio
	notify  *notifier.Notifier

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	styles        styles

	timerView timerview.Model
	boardView board.Model
	statsView statsview.Model

	form         *huh.Form
	taskForm     *TaskFormModel
	settingsForm *SettingsFormModel
	editingTask  *models.Task

	taskToDeleteID string
	formError      string

	lastSnap  timer.Snapshot
	ticking   bool
	tickCount int
	quitting  bool
	width     int
	height    int
}

// NewModel builds the full TUI from the store. The timer starts paused
// in work mode.
func NewModel(store storage.Provider, player TimerAudio) (Model, error) {
	settings, err := store.GetSettings()
	if err != nil {
		return Model{}, err
	}

	player.SetSoundPath(settings.CustomSoundPath)

	ldg := ledger.New(store)
	machine := timer.New(settings, timer.Config{
		Audio:  player,
		Ledger: ldg,
	})

	m := Model{
		store:     store,
		machine:   machine,
		ledger:    ldg,
		player:    player,
		notify:    notifier.New(),
		state:     StateTimer,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		styles:    newStyles(settings.ThemeColor, settings.DarkMode),
		timerView: timerview.New(settings.ThemeColor),
		boardView: board.New(settings.ThemeColor),
		statsView: statsview.New(settings.ThemeColor),
		lastSnap:  machine.State(),
	}

	if err := m.refreshBoard(); err != nil {
		return Model{}, err
	}
	m.refreshStats()
	m.refreshTimerView()

	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) refreshBoard() error {
	columns, err := m.store.GetAllColumns()
	if err != nil {
		return err
	}
	tasksByColumn := make(map[string][]models.Task, len(columns))
	for _, column := range columns {
		tasks, err := m.store.GetTasksForColumn(column.ID)
		if err != nil {
			return err
		}
		tasksByColumn[column.ID] = tasks
	}
	m.boardView.SetData(columns, tasksByColumn)
	return nil
}

func (m *Model) refreshStats() {
	today := time.Now()
	to := today.Format(constants.DateFormat)
	from := today.AddDate(0, 0, -6).Format(constants.DateFormat)

	records, err := m.store.GetWorkRecords(from, to)
	if err != nil {
		return
	}
	tasks, err := m.store.GetAllTasks()
	if err != nil {
		return
	}
	summary, err := stats.BuildSummary(records, tasks, from, to)
	if err != nil {
		return
	}
	m.statsView.SetSummary(summary)
}

func (m *Model) refreshTimerView() {
	snap := m.machine.State()
	settings := m.machine.Settings()
	m.timerView.SetState(snap, timer.DurationFor(snap.Mode, settings), m.todayMinutes())
}

// todayMinutes combines the persisted work log with seconds still
// buffered in the ledger.
func (m *Model) todayMinutes() int {
	today := time.Now().Format(constants.DateFormat)
	record, err := m.store.GetWorkRecord(today)
	if err != nil {
		return 0
	}
	return (record.SecondsWorked + m.ledger.Pending(today)) / 60
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateTimer:
		keys = append(keys, m.keys.Toggle, m.keys.Reset, m.keys.Skip)
	case StateBoard:
		keys = append(keys, m.keys.Add, m.keys.Done, m.keys.MoveTask)
	case StateSettings:
		keys = append(keys, m.keys.Edit)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right}

	var actions []key.Binding
	switch m.state {
	case StateTimer:
		actions = []key.Binding{m.keys.Toggle, m.keys.Reset, m.keys.Skip}
	case StateBoard:
		actions = []key.Binding{m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Done, m.keys.MoveTask}
	case StateSettings:
		actions = []key.Binding{m.keys.Edit}
	}

	return [][]key.Binding{global, navigation, actions}
}
