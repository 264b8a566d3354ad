package jumper

import (
	"math/rand"

	"github.com/vovakirdan/pixel-jumper/internal/config"
	"github.com/vovakirdan/pixel-jumper/internal/core"
)

// Game adapts a World to the tick/render contract of the terminal platform.
type Game struct {
	cfg   config.JumperConfig
	world *World
}

// New creates a game with the given constants. Call Reset before stepping.
func New(cfg config.JumperConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "jumper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pixel Jumper"
}

// Reset builds a new world seeded from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.world = NewWorld(g.cfg, rand.New(rand.NewSource(runtime.Seed)))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.world.Step(IntentsFromFrame(in))
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		Started:  g.world.Phase() != PhaseNotStarted,
		GameOver: g.world.Phase() == PhaseGameOver,
	}
}

// World exposes the underlying world for read-only inspection.
func (g *Game) World() *World {
	return g.world
}
