package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bee-garden/internal/core"
	"github.com/vovakirdan/bee-garden/internal/garden"
	"github.com/vovakirdan/bee-garden/internal/storage"
)

// History records finished runs and serves them to the scoreboard.
// *storage.Store implements it.
type History interface {
	SaveScore(runID string, score int) (int64, error)
	TopScores(limit int) ([]storage.ScoreEntry, error)
	RecentScores(limit int) ([]storage.ScoreEntry, error)
	Stats() (*storage.Stats, error)
}

// Model is the Bubble Tea model for one garden session.
type Model struct {
	game       *garden.Game
	screen     *core.Screen
	history    History
	config     core.RuntimeConfig
	keys       *KeyMapper
	hold       *HoldTracker
	logger     *log.Logger
	scoreboard *ScoreboardModel // Non-nil while the run history is open
	sharing    bool             // Share panel shown over the game-over screen
	quitting   bool
	scoreSaved bool      // Whether the current run has been recorded
	lastTick   time.Time // Frame time key presses are stamped with
}

// NewModel creates a Bubble Tea model hosting game. history may be nil.
func NewModel(game *garden.Game, history History, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	input := game.Config().Input

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		history: history,
		config:  cfg,
		keys:    NewKeyMapper(),
		hold:    NewHoldTracker(input.InitialHold, input.RepeatHold),
		logger:  logger,
	}
}

// Init starts the frame loop. The garden waits on the title screen.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Movement only while running, so S can mean share on the game-over screen
	if m.game.Phase() == garden.PhaseRunning {
		if key, ok := m.keys.MovementKey(msg); ok {
			released, _ := m.hold.Press(key, m.now())
			for _, k := range released {
				m.game.Release(k)
			}
			m.game.Press(key)
			return m, nil
		}
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	phase := m.game.Phase()
	switch action {
	case core.ActionConfirm:
		if phase == garden.PhaseIdle || (phase == garden.PhaseEnded && !m.sharing) {
			m.startRun()
		}
	case core.ActionRestart:
		if phase == garden.PhaseEnded {
			m.startRun()
		}
	case core.ActionShare:
		if phase == garden.PhaseEnded {
			m.sharing = true
		}
	case core.ActionBack:
		m.sharing = false
	case core.ActionScoreboard:
		if phase != garden.PhaseRunning {
			sb := NewScoreboardModel(m.history, m.config.ScreenW, m.config.ScreenH)
			sb.embedded = true
			m.scoreboard = &sb
		}
	}

	return m, nil
}

// now returns the time of the latest frame.
func (m Model) now() time.Time {
	if m.lastTick.IsZero() {
		return time.Now()
	}
	return m.lastTick
}

// startRun begins a new run with no keys held.
func (m *Model) startRun() {
	for _, k := range m.hold.ReleaseAll() {
		m.game.Release(k)
	}
	m.game.Start()
	m.sharing = false
	m.scoreSaved = false
}

// updateScoreboard forwards input to the open scoreboard.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}

	m.scoreboard = &sb
	return m, cmd
}

// handleResize processes window resize events. The board keeps its size;
// only the cells it maps onto change.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.scoreboard != nil {
		next, _ := m.scoreboard.Update(msg)
		if sb, ok := next.(ScoreboardModel); ok {
			m.scoreboard = &sb
		}
	}
	return m, nil
}

// handleTick advances the garden one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.lastTick = now
	for _, k := range m.hold.Expire(now) {
		m.game.Release(k)
	}

	m.game.Tick(now)

	// Record the run on game over (once)
	if score, ok := m.game.FinalScore(); ok && !m.scoreSaved {
		m.recordRun(score)
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun appends the finished run to the history.
func (m *Model) recordRun(score int) {
	if m.history == nil {
		return
	}
	if _, err := m.history.SaveScore(m.game.RunID(), score); err != nil {
		m.logger.Warn("could not record run", "run", m.game.RunID(), "score", score, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	garden.Render(m.game.Snapshot(), m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".bee-garden", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("garden_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}
	if m.sharing {
		return shareBox(m.game.ShareText(), m.game.ShareURL(), m.config.ScreenW, m.config.ScreenH)
	}

	garden.Render(m.game.Snapshot(), m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with a model hosting game.
func Run(game *garden.Game, history History, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, history, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
