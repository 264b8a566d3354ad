// Package jumper implements Pixel Jumper, an endless vertical platform climber.
// The player jumps between randomly placed platforms that scroll down as the
// player climbs, collecting coins until falling off the bottom.
package jumper

import (
	"slices"

	"github.com/vovakirdan/pixel-jumper/internal/config"
)

// Phase is the lifecycle state of a world.
type Phase int

const (
	PhaseNotStarted Phase = iota // Waiting for the first start input
	PhaseRunning                 // Physics advances every tick
	PhaseGameOver                // Waiting for restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// World holds the complete game state and advances it one tick at a time.
// It is not safe for concurrent use; the caller owns the tick loop.
type World struct {
	cfg       config.JumperConfig
	spawn     *Spawner
	player    Player
	platforms []Platform
	coins     []Coin
	score     int
	started   bool
	over      bool
	tick      uint64 // Running ticks since the last reset
}

// NewWorld creates a world in the NotStarted phase.
// cfg must be valid (see config.JumperConfig.Validate).
func NewWorld(cfg config.JumperConfig, rng Source) *World {
	w := &World{
		cfg:   cfg,
		spawn: NewSpawner(rng, cfg),
	}
	w.Reset()
	return w
}

// Reset builds a fresh player, platform set and coin set and returns to NotStarted.
// The random source keeps its position, so successive resets differ.
func (w *World) Reset() {
	w.player = NewPlayer(w.cfg)

	w.platforms = make([]Platform, 0, w.cfg.Platforms.Count)
	w.platforms = append(w.platforms, w.spawn.StartPlatform())
	for len(w.platforms) < w.cfg.Platforms.Count {
		w.platforms = append(w.platforms, w.spawn.Platform())
	}

	w.coins = make([]Coin, 0, w.cfg.Coins.Count)
	for len(w.coins) < w.cfg.Coins.Count {
		w.coins = append(w.coins, w.spawn.Coin())
	}

	w.score = 0
	w.started = false
	w.over = false
	w.tick = 0
}

// Restart resets the world and goes straight back to Running.
func (w *World) Restart() {
	w.Reset()
	w.started = true
}

// Step applies one tick of intents and then advances the simulation.
func (w *World) Step(in Intents) {
	w.Apply(in)
	w.Advance()
}

// Apply routes intents according to the lifecycle phase.
func (w *World) Apply(in Intents) {
	switch w.Phase() {
	case PhaseNotStarted:
		if in.Start {
			w.started = true
		}
	case PhaseRunning:
		w.player.MovingLeft = in.MoveLeft
		w.player.MovingRight = in.MoveRight
		if in.Jump && w.player.OnGround {
			w.player.Jump(w.cfg.Physics.JumpForce)
		}
	case PhaseGameOver:
		if in.Restart {
			w.Restart()
		}
	}
}

// Advance runs one simulation tick. It does nothing outside PhaseRunning.
func (w *World) Advance() {
	if !w.started || w.over {
		return
	}
	w.tick++

	w.player.Update(w.cfg)

	if w.player.Y > float64(w.cfg.World.Height) {
		w.over = true
		return
	}

	w.landOnPlatforms()
	w.collectCoins()

	if line := w.cfg.ScrollLine(); w.player.Y < float64(line) {
		w.scroll(line - int(w.player.Y))
		w.recycleOffscreen()
	}
}

// landOnPlatforms snaps a falling player onto any platform it reached.
// Platforms are checked in order and landing zeroes DY, so when two
// platforms overlap the player the earlier one wins.
func (w *World) landOnPlatforms() {
	w.player.OnGround = false
	for _, pl := range w.platforms {
		if w.player.landsOn(pl, w.cfg) {
			w.player.Y = float64(pl.Y - w.cfg.Player.Height)
			w.player.DY = 0
			w.player.OnGround = true
		}
	}
}

func (w *World) collectCoins() {
	box := w.player.Box(w.cfg)
	var picked int
	w.coins, picked = replaceMatching(w.coins,
		func(c Coin) bool { return box.Intersects(c.Box(w.cfg)) },
		w.spawn.Coin,
	)
	w.score += picked * w.cfg.Scoring.CoinReward
}

// scroll moves the camera up by moving everything else down.
func (w *World) scroll(offset int) {
	w.player.Y += float64(offset)
	for i := range w.platforms {
		w.platforms[i].Y += offset
	}
	for i := range w.coins {
		w.coins[i].Y += offset
	}
}

func (w *World) recycleOffscreen() {
	bottom := w.cfg.World.Height

	var passed int
	w.platforms, passed = replaceMatching(w.platforms,
		func(p Platform) bool { return p.Y > bottom },
		w.spawn.Platform,
	)
	w.score += passed * w.cfg.Scoring.PlatformReward

	w.coins, _ = replaceMatching(w.coins,
		func(c Coin) bool { return c.Y > bottom },
		w.spawn.Coin,
	)
}

// Phase returns the current lifecycle phase.
func (w *World) Phase() Phase {
	switch {
	case !w.started:
		return PhaseNotStarted
	case w.over:
		return PhaseGameOver
	default:
		return PhaseRunning
	}
}

// Score returns the current score.
func (w *World) Score() int { return w.score }

// Tick returns the number of running ticks since the last reset.
func (w *World) Tick() uint64 { return w.tick }

// Player returns a copy of the player.
func (w *World) Player() Player { return w.player }

// Platforms returns a copy of the active platforms.
func (w *World) Platforms() []Platform { return slices.Clone(w.platforms) }

// Coins returns a copy of the active coins.
func (w *World) Coins() []Coin { return slices.Clone(w.coins) }

// Config returns the constants the world runs with.
func (w *World) Config() config.JumperConfig { return w.cfg }
