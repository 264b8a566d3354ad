package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-jumper/internal/core"
)

// Game is the contract between a game and the terminal loop.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Model is the Bubble Tea model that runs a single game.
type Model struct {
	game      Game
	screen    *core.Screen
	config    core.RuntimeConfig
	router    *InputRouter
	keys      KeyMap
	help      help.Model
	gameState core.GameState
	logger    *log.Logger
	quitting  bool
}

// NewModel creates a model and resets the game so the first frame has a world.
// holdTicks is how long a movement key stays held after a press.
func NewModel(game Game, cfg core.RuntimeConfig, holdTicks int, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	game.Reset(cfg)
	logger.Debug("game reset", "game", game.ID(), "seed", cfg.Seed)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config:    cfg,
		router:    NewInputRouter(keys, holdTicks),
		keys:      keys,
		help:      help.New(),
		gameState: game.State(),
		logger:    logger,
	}
}

// playfieldHeight leaves one row for the help line.
func playfieldHeight(termH int) int {
	return max(1, termH-1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.router.HandleKey(msg) {
		m.logger.Info("quit", "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize only resizes the screen. World coordinates do not depend on
// the terminal size, so the run continues untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width

	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.router.Frame())
	m.gameState = result.State
	m.logTransition(prev, m.gameState)

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logTransition(prev, next core.GameState) {
	switch {
	case !prev.Started && next.Started:
		m.logger.Info("run started", "game", m.game.ID())
	case !prev.GameOver && next.GameOver:
		m.router.Release()
		m.logger.Info("game over", "score", next.Score)
	case prev.GameOver && !next.GameOver:
		m.logger.Info("restarted", "previous_score", prev.Score)
	}
}

// State returns the game state seen after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program for the given game.
func Run(game Game, cfg core.RuntimeConfig, holdTicks int, logger *log.Logger) error {
	model := NewModel(game, cfg, holdTicks, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
