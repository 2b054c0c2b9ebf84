package tui

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/games/runner"
)

// Rows reserved outside the playfield: HUD line on top, help line below.
const (
	hudRows  = 1
	helpRows = 1
)

// Model is the Bubble Tea model driving one runner session.
type Model struct {
	game     *runner.Game
	cfg      config.RunnerConfig
	screen   *core.Screen
	runtime  core.RuntimeConfig
	clock    *runner.FrameClock
	keys     KeyMap
	help     help.Model
	snapshot runner.Snapshot
	quitting bool
}

// NewModel creates a model for a fresh run sized to the runtime screen.
func NewModel(cfg config.RunnerConfig, rt core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	cols, rows := playfieldSize(rt.ScreenW, rt.ScreenH)
	game := runner.New(cfg, rand.NewSource(rt.Seed),
		runner.WithLogger(logger),
		runner.WithLayout(FitLayout(cfg, cols, rows)),
	)

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		game:     game,
		cfg:      cfg,
		screen:   core.NewScreen(cols, rows),
		runtime:  rt,
		clock:    runner.NewFrameClock(cfg.Physics.MaxFrameStep),
		keys:     DefaultKeyMap(),
		help:     h,
		snapshot: game.Snapshot(),
	}
}

// playfieldSize returns the cells left for the game once the HUD and help
// lines are taken.
func playfieldSize(w, h int) (int, int) {
	return core.Max(w, 0), core.Max(h-hudRows-helpRows, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if c := m.keys.Command(msg); c != core.CommandNone {
		m.game.Push(c)
	}
	return m, nil
}

// handleResize refits the viewport to the new terminal without resetting
// the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.help.Width = msg.Width

	cols, rows := playfieldSize(msg.Width, msg.Height)
	m.screen.Resize(cols, rows)
	m.game.SetLayout(FitLayout(m.cfg, cols, rows))
	m.snapshot = m.game.Snapshot()

	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	res := m.game.Advance(m.clock.Tick(now))
	m.snapshot = res.Snapshot

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	hud := renderHUD(m.snapshot.DisplayScore(), m.snapshot.SpeedText(), m.runtime.ScreenW)

	runner.Render(m.snapshot, m.screen)
	if m.snapshot.GameOver {
		drawCenteredMessage(m.screen, "GAME OVER", gameOverSubtitle(m.snapshot.DisplayScore()))
	}

	return hud + "\n" + RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Snapshot returns the last frame shown.
func (m Model) Snapshot() runner.Snapshot {
	return m.snapshot
}

func gameOverSubtitle(score int) string {
	return "Score: " + strconv.Itoa(score) + " | Enter/R to restart"
}

// Run starts the Bubble Tea program for a local session.
func Run(cfg config.RunnerConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
