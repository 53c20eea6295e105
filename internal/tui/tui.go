// Package tui is the terminal front end: an overview of the tournament
// structure and chip plan, and the clock itself.
package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/lox/tourneyclock/internal/chips"
	"github.com/lox/tourneyclock/internal/clock"
	"github.com/lox/tourneyclock/internal/config"
	"github.com/lox/tourneyclock/internal/schedule"
)

// Settings are the tournament parameters the overview starts from
type Settings struct {
	Name          string
	Schedule      *schedule.Schedule
	Chips         chips.Set
	Distributions chips.Distributions
	PerColor      int
	BlindMinutes  int
	Stack         int
	Players       int
}

// SettingsFromConfig builds Settings from a validated config
func SettingsFromConfig(cfg *config.Config) (Settings, error) {
	sched, err := cfg.Schedule()
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Name:          cfg.Tournament.Name,
		Schedule:      sched,
		Chips:         cfg.ChipSet(),
		Distributions: cfg.ChipDistributions(),
		PerColor:      cfg.Inventory.PerColor,
		BlindMinutes:  cfg.Tournament.BlindMinutes,
		Stack:         cfg.Tournament.StartingStack,
		Players:       cfg.Tournament.Players,
	}, nil
}

type screen int

const (
	overviewScreen screen = iota
	clockScreen
)

// clockUpdatedMsg is sent whenever the clock publishes a new snapshot
type clockUpdatedMsg struct{}

// QuitMsg is a custom message to signal quit
type QuitMsg struct{}

// Option configures a Model
type Option func(*Model)

// WithClockOptions passes options through to the clock, e.g. a sound sink
// or a mock time source
func WithClockOptions(opts ...clock.Option) Option {
	return func(m *Model) { m.clockOpts = append(m.clockOpts, opts...) }
}

// WithTerminal overrides whether stdout is a terminal, which gates full
// screen mode
func WithTerminal(isTTY bool) Option {
	return func(m *Model) { m.isTTY = isTTY }
}

// Model is the Bubble Tea model for the tournament clock
type Model struct {
	settings Settings
	clock    *clock.Clock
	logger   *log.Logger

	clockOpts []clock.Option

	// UI components
	overviewKeys overviewKeyMap
	clockKeys    clockKeyMap
	help         help.Model
	progress     progress.Model

	// State
	screen     screen
	selected   int
	fullScreen bool
	isTTY      bool
	status     string
	quitting   bool
	updates    chan struct{}
	quitSignal chan struct{}

	// Dimensions
	width  int
	height int
}

// New creates the model and the clock it drives
func New(settings Settings, logger *log.Logger, opts ...Option) *Model {
	m := &Model{
		settings:     settings,
		logger:       logger.WithPrefix("tui"),
		overviewKeys: newOverviewKeyMap(),
		clockKeys:    newClockKeyMap(),
		help:         help.New(),
		progress:     progress.New(progress.WithSolidFill("#7D56F4"), progress.WithoutPercentage()),
		isTTY:        isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
		updates:      make(chan struct{}, 1),
		quitSignal:   make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(m)
	}
	clockOpts := append([]clock.Option{clock.WithLogger(logger)}, m.clockOpts...)
	clockOpts = append(clockOpts, clock.WithListener(m.clockUpdated))
	m.clock = clock.New(clockOpts...)
	return m
}

// Clock returns the clock the model drives
func (m *Model) Clock() *clock.Clock {
	return m.clock
}

// Settings returns the current overview settings
func (m *Model) Settings() Settings {
	return m.settings
}

// Quit asks the running program to exit. It never blocks.
func (m *Model) Quit() {
	select {
	case m.quitSignal <- struct{}{}:
	default:
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.listenForQuit(), m.listenForClock())
}

// clockUpdated is the clock listener. It runs on whichever goroutine changed
// the clock, including Update itself, so it only flags that a redraw is due.
func (m *Model) clockUpdated(clock.Snapshot) {
	select {
	case m.updates <- struct{}{}:
	default:
	}
}

// listenForClock returns a command that waits for the next clock change
func (m *Model) listenForClock() tea.Cmd {
	return func() tea.Msg {
		<-m.updates
		return clockUpdatedMsg{}
	}
}

// listenForQuit returns a command that listens for quit signals
func (m *Model) listenForQuit() tea.Cmd {
	return func() tea.Msg {
		<-m.quitSignal
		return QuitMsg{}
	}
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case QuitMsg:
		return m, m.quit()

	case clockUpdatedMsg:
		// View reads a fresh snapshot, so re-arming the listener is enough
		return m, m.listenForClock()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = max(10, min(msg.Width-8, 60))
		m.logger.Debug("Updated dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		if m.screen == clockScreen {
			return m, m.handleClockKey(msg)
		}
		return m, m.handleOverviewKey(msg)
	}
	return m, nil
}

func (m *Model) handleOverviewKey(msg tea.KeyMsg) tea.Cmd {
	k := m.overviewKeys
	switch {
	case key.Matches(msg, k.Quit):
		return m.quit()
	case key.Matches(msg, k.Up):
		m.selected = max(0, m.selected-1)
	case key.Matches(msg, k.Down):
		m.selected = min(m.settings.Schedule.Len()-1, m.selected+1)
	case key.Matches(msg, k.More):
		m.settings.Players = config.ClampPlayers(m.settings.Players + 1)
	case key.Matches(msg, k.Fewer):
		m.settings.Players = config.ClampPlayers(m.settings.Players - 1)
	case key.Matches(msg, k.Stack):
		m.settings.Stack = m.settings.Distributions.NextStack(m.settings.Stack)
		m.logger.Debug("Starting stack changed", "stack", m.settings.Stack)
	case key.Matches(msg, k.Duration):
		m.cycleDuration()
	case key.Matches(msg, k.Open):
		m.status = ""
		m.screen = clockScreen
		m.clock.Open(m.settings.Schedule, m.settings.BlindMinutes)
	}
	return nil
}

func (m *Model) handleClockKey(msg tea.KeyMsg) tea.Cmd {
	k := m.clockKeys
	switch {
	case key.Matches(msg, k.Quit):
		return m.quit()
	case key.Matches(msg, k.Toggle):
		m.clock.ToggleRunning()
	case key.Matches(msg, k.Next):
		m.clock.Advance()
	case key.Matches(msg, k.Prev):
		m.clock.Retreat()
	case key.Matches(msg, k.Reset):
		m.clock.ResetLevel()
	case key.Matches(msg, k.Duration):
		m.cycleDuration()
	case key.Matches(msg, k.FullScreen):
		return m.toggleFullScreen()
	case key.Matches(msg, k.Close):
		m.clock.Close()
		m.screen = overviewScreen
		m.status = ""
		if m.fullScreen {
			m.fullScreen = false
			return tea.ExitAltScreen
		}
	}
	return nil
}

// cycleDuration moves to the next blind duration. An open clock restarts the
// current level with it.
func (m *Model) cycleDuration() {
	m.settings.BlindMinutes = config.NextDuration(m.settings.BlindMinutes)
	m.clock.SetBlindMinutes(m.settings.BlindMinutes)
}

func (m *Model) toggleFullScreen() tea.Cmd {
	if !m.isTTY {
		m.logger.Warn("Full screen is not available without a terminal")
		m.status = "Full screen needs a terminal"
		return nil
	}
	m.fullScreen = !m.fullScreen
	m.status = ""
	if m.fullScreen {
		return tea.EnterAltScreen
	}
	return tea.ExitAltScreen
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.clock.Close()
	return tea.Quit
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.screen == clockScreen {
		return m.renderClock(m.clock.Snapshot())
	}
	return m.renderOverview()
}
