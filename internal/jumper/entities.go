package jumper

import (
	"github.com/vovakirdan/pixel-jumper/internal/config"
	"github.com/vovakirdan/pixel-jumper/internal/core"
)

// Player is the jumping character. Position is the top-left of the hitbox.
type Player struct {
	X, Y        float64
	DY          float64 // Vertical velocity, positive = down
	MovingLeft  bool
	MovingRight bool
	OnGround    bool
}

// NewPlayer places a player at the horizontal center, half way down the world.
func NewPlayer(cfg config.JumperConfig) Player {
	return Player{
		X: float64(cfg.World.Width/2 - cfg.Player.Width/2),
		Y: float64(cfg.World.Height / 2),
	}
}

// Update moves the player horizontally, then applies gravity to velocity
// and velocity to position.
func (p *Player) Update(cfg config.JumperConfig) {
	maxX := float64(cfg.World.Width - cfg.Player.Width)
	if p.MovingLeft {
		p.X = core.ClampF(p.X-cfg.Player.MoveSpeed, 0, maxX)
	}
	if p.MovingRight {
		p.X = core.ClampF(p.X+cfg.Player.MoveSpeed, 0, maxX)
	}

	p.DY += cfg.Physics.Gravity
	p.Y += p.DY
}

// Jump launches the player upward.
func (p *Player) Jump(force float64) {
	p.DY = -force
	p.OnGround = false
}

// Box returns the player's hitbox.
func (p Player) Box(cfg config.JumperConfig) core.Box {
	return core.NewBox(p.X, p.Y, float64(cfg.Player.Width), float64(cfg.Player.Height))
}

// landsOn reports whether a falling player touches the top band of a platform.
// The band reaches LandingTolerance below the platform's bottom edge so a
// fast fall cannot skip through it in one tick.
func (p Player) landsOn(pl Platform, cfg config.JumperConfig) bool {
	if p.DY <= 0 {
		return false
	}
	feet := p.Y + float64(cfg.Player.Height)
	return p.X+float64(cfg.Player.Width) > float64(pl.X) &&
		p.X < float64(pl.X+pl.Width) &&
		feet > float64(pl.Y) &&
		feet < float64(pl.Y+cfg.Platforms.Height+cfg.Physics.LandingTolerance)
}

// Platform is a horizontal ledge the player can land on from above.
type Platform struct {
	X, Y  int
	Width int
}

// Coin is a pickup worth Scoring.CoinReward points.
type Coin struct {
	X, Y int
}

// Box returns the coin's hitbox.
func (c Coin) Box(cfg config.JumperConfig) core.Box {
	size := float64(cfg.Coins.Size)
	return core.NewBox(float64(c.X), float64(c.Y), size, size)
}
