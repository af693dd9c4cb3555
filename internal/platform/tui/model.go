package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

var hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// maxPendingMoves bounds the move queue so key repeat cannot build a backlog
// that keeps moving the player after the key is released.
const maxPendingMoves = 2

// Model is the Bubble Tea model for one dodge session. The session starts on
// the first message that shows the window is large enough for the frame.
type Model struct {
	config  core.RuntimeConfig
	clock   core.Clock
	logger  *log.Logger
	keys    KeyMap
	help    help.Model
	screen  *core.Screen
	session *dodge.Session
	pending []core.Action
	result  *dodge.Result
	onEnd   func(dodge.Result)
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithClock replaces the system clock, mainly for tests.
func WithClock(c core.Clock) ModelOption {
	return func(m *Model) {
		m.clock = c
	}
}

// WithLogger routes session events to l.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithResultHandler registers fn to receive the result once the session ends.
func WithResultHandler(fn func(dodge.Result)) ModelOption {
	return func(m *Model) {
		m.onEnd = fn
	}
}

// NewModel creates a model for a terminal of cfg.ScreenW x cfg.ScreenH.
func NewModel(cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.Tick <= 0 {
		cfg.Tick = core.DefaultConfig().Tick
	}
	w, h := dodge.FrameSize(dodge.DefaultGrid)
	m := Model{
		config: cfg,
		clock:  core.SystemClock{},
		logger: log.New(io.Discard),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		screen: core.NewScreen(w, h),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m.maybeStart(), nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues movement for the next tick, dropping the oldest move when
// the queue is full. Quit is applied at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		if m.session == nil || m.result != nil {
			return m, tea.Quit
		}
		m.pending = m.pending[:0]
		m.session.Step(m.clock.Now(), core.ActionQuit)
		return m.finish()
	case action.IsMove() && m.session != nil:
		if len(m.pending) >= maxPendingMoves {
			m.pending = m.pending[1:]
		}
		m.pending = append(m.pending, action)
	}
	return m, nil
}

// handleTick runs one session step with at most one queued action.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m = m.maybeStart()
	if m.session == nil {
		return m, tickCmd(m.config.Tick)
	}
	if m.result != nil {
		return m, nil
	}

	action := core.ActionNone
	if len(m.pending) > 0 {
		action = m.pending[0]
		m.pending = m.pending[1:]
	}

	if res := m.session.Step(m.clock.Now(), action); res.State == dodge.StateEnded {
		return m.finish()
	}
	return m, tickCmd(m.config.Tick)
}

// maybeStart creates the session once the terminal fits the frame.
func (m Model) maybeStart() Model {
	if m.session != nil || !m.fits() {
		return m
	}
	m.session = dodge.NewSession(m.clock.Now(), m.config.SeedOrNow(), dodge.WithLogger(m.logger))
	return m
}

func (m Model) fits() bool {
	w, h := dodge.FrameSize(dodge.DefaultGrid)
	return m.config.ScreenW >= w && m.config.ScreenH >= h
}

func (m Model) finish() (tea.Model, tea.Cmd) {
	r := m.session.Result()
	m.result = &r
	if m.onEnd != nil {
		m.onEnd(r)
	}
	return m, tea.Quit
}

// Result returns the session result once the session has ended.
func (m Model) Result() (dodge.Result, bool) {
	if m.result == nil {
		return dodge.Result{}, false
	}
	return *m.result, true
}

// Snapshot returns the current session state, if a session is running.
func (m Model) Snapshot() (dodge.Snapshot, bool) {
	if m.session == nil {
		return dodge.Snapshot{}, false
	}
	return m.session.Snapshot(), true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.result != nil {
		return ""
	}
	if m.session == nil {
		w, h := dodge.FrameSize(dodge.DefaultGrid)
		return fmt.Sprintf("Terminal too small: need at least %dx%d, have %dx%d.\nResize the window to start, or press q to quit.",
			w, h, m.config.ScreenW, m.config.ScreenH)
	}

	dodge.Render(m.session.Snapshot(), m.screen)
	view := RenderScreen(m.screen)

	_, h := dodge.FrameSize(dodge.DefaultGrid)
	if m.config.ScreenH > h {
		view += "\n" + hintStyle.Render(m.help.View(m.keys))
	}
	return view
}

// Run plays one session on the local terminal and returns its result. If the
// player quits before the window is large enough, the result is a zero-score quit.
func Run(cfg core.RuntimeConfig, logger *log.Logger) (dodge.Result, error) {
	model := NewModel(cfg, WithLogger(logger))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return dodge.Result{}, fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		if r, ok := m.Result(); ok {
			return r, nil
		}
	}
	return dodge.Result{Outcome: dodge.OutcomeQuit}, nil
}
