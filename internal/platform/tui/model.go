package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/duel"
	"github.com/vovakirdan/tui-duel/internal/storage"
)

// maxFrameDelta caps the simulation step after a stall (resize, suspend)
// so the game does not jump forward.
const maxFrameDelta = 0.25

// Model is the Bubble Tea model for running a duel match.
type Model struct {
	game   *duel.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig

	keys  keyMap
	help  help.Model
	frame core.InputFrame

	// Shield keys toggle because terminals have no key-release events
	p1Shield bool
	p2Shield bool

	lastTick   time.Time
	matchSaved bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *duel.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate < 1 {
		cfg.TickRate = 1
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-1), // Bottom row is the help bar
		store:  store,
		config: cfg,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input into the pending frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.keys.applyKey(msg, &m.frame):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.P1Shield):
		m.p1Shield = !m.p1Shield

	case key.Matches(msg, m.keys.P2Shield):
		m.p2Shield = !m.p2Shield
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width

	// Note: This resets the match so the size check reruns
	if m.game.State() != duel.StateMatchOver {
		m.game.Reset(m.config)
		m.matchSaved = false
	}

	return m, nil
}

// handleTick advances the simulation by the real elapsed time.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = at.Sub(m.lastTick).Seconds()
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}
		if dt < 0 {
			dt = 0
		}
	}
	m.lastTick = at

	m.frame.P1.Shield = m.p1Shield
	m.frame.P2.Shield = m.p2Shield
	m.game.Step(dt, m.frame)

	if m.game.State() == duel.StateMatchOver {
		m.saveMatch()
	} else {
		m.matchSaved = false
		// Shields drop automatically between rounds
		if m.game.State() != duel.StatePlaying {
			m.p1Shield = false
			m.p2Shield = false
		}
	}

	m.frame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveMatch persists the finished match once.
func (m *Model) saveMatch() {
	if m.matchSaved || m.store == nil {
		return
	}

	match := m.game.Match()
	winner := 1
	if match.Leader() == core.Player2 {
		winner = 2
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveMatch(storage.MatchRecord{
		Winner:       winner,
		Score1:       match.Wins[0],
		Score2:       match.Wins[1],
		Rounds:       len(match.History),
		History:      match.HistoryString(),
		VsCPU:        m.game.CPUEnabled(),
		DurationSecs: int(m.game.MatchElapsed()),
	})
	m.matchSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *duel.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
