package jumper

import (
	"fmt"
	"math"

	"github.com/vovakirdan/pixel-jumper/internal/config"
	"github.com/vovakirdan/pixel-jumper/internal/core"
)

// Visual characters for rendering
const (
	PlayerHeadChar = '█'
	PlayerBodyChar = '█'
	PlayerEyeChar  = '•'
	PlayerLegsChar = '▌'
	GrassChar      = '▀'
	SoilChar       = '█'
	CoinChar       = '●'
	CloudChar      = '░'
)

// clouds are fixed background decorations in world units: x, y, size.
var clouds = [][3]int{
	{100, 100, 60},
	{300, 180, 50},
	{600, 120, 70},
}

// viewport maps world units onto screen cells.
type viewport struct {
	screenW, screenH int
	worldW, worldH   int
}

func newViewport(dst *core.Screen, cfg config.JumperConfig) viewport {
	return viewport{
		screenW: dst.Width(),
		screenH: dst.Height(),
		worldW:  cfg.World.Width,
		worldH:  cfg.World.Height,
	}
}

func (v viewport) x(wx float64) int {
	return int(math.Floor(wx * float64(v.screenW) / float64(v.worldW)))
}

func (v viewport) y(wy float64) int {
	return int(math.Floor(wy * float64(v.screenH) / float64(v.worldH)))
}

// w scales a horizontal length, never below one cell.
func (v viewport) w(n int) int {
	return max(1, (n*v.screenW+v.worldW/2)/v.worldW)
}

// h scales a vertical length, never below one cell.
func (v viewport) h(n int) int {
	return max(1, (n*v.screenH+v.worldH/2)/v.worldH)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := newViewport(dst, g.cfg)

	g.drawClouds(dst, v)

	switch g.world.Phase() {
	case PhaseNotStarted:
		g.drawStartScreen(dst)
	case PhaseGameOver:
		g.drawGameOver(dst)
	default:
		g.drawPlayfield(dst, v)
	}
}

func (g *Game) drawClouds(dst *core.Screen, v viewport) {
	for _, c := range clouds {
		x, y, size := c[0], c[1], c[2]
		dst.DrawHLine(v.x(float64(x)), v.y(float64(y+size/2)), v.w(2*size), CloudChar, core.ColorWhite)
	}
}

func (g *Game) drawStartScreen(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-3, "PIXEL JUMPER", core.ColorBrightWhite)
	dst.DrawTextCentered(mid-1, "Press SPACE to start", core.ColorWhite)
	dst.DrawTextCentered(mid, "Use LEFT/RIGHT arrows to move", core.ColorWhite)
	dst.DrawTextCentered(mid+1, "Press SPACE to jump", core.ColorWhite)
}

func (g *Game) drawGameOver(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, "GAME OVER", core.ColorBrightWhite)
	dst.DrawTextCentered(mid, fmt.Sprintf("Score: %d", g.world.Score()), core.ColorBrightYellow)
	dst.DrawTextCentered(mid+2, "Press R to restart", core.ColorWhite)
}

func (g *Game) drawPlayfield(dst *core.Screen, v viewport) {
	for _, p := range g.world.platforms {
		g.drawPlatform(dst, v, p)
	}
	for _, c := range g.world.coins {
		half := g.cfg.Coins.Size / 2
		dst.SetColor(v.x(float64(c.X+half)), v.y(float64(c.Y+half)), CoinChar, core.ColorBrightYellow)
	}
	g.drawPlayer(dst, v)

	dst.DrawTextColor(2, 0, fmt.Sprintf("Score: %d", g.world.Score()), core.ColorBrightWhite)
}

func (g *Game) drawPlatform(dst *core.Screen, v viewport, p Platform) {
	x, y := v.x(float64(p.X)), v.y(float64(p.Y))
	w, h := v.w(p.Width), v.h(g.cfg.Platforms.Height)

	dst.DrawHLine(x, y, w, GrassChar, core.ColorBrightGreen)
	if h > 1 {
		dst.DrawRect(core.NewRect(x, y+1, w, h-1), SoilChar, core.ColorGreen)
	}
}

// drawPlayer renders a head row, a body and, when tall enough, legs.
// The eye sits on the side the player is moving towards.
func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	p := g.world.player
	x, y := v.x(p.X), v.y(p.Y)
	w, h := v.w(g.cfg.Player.Width), v.h(g.cfg.Player.Height)

	dst.DrawHLine(x, y, w, PlayerHeadChar, core.ColorSkin)
	eyeX := x + w - 1
	if p.MovingLeft {
		eyeX = x
	}
	dst.SetColor(eyeX, y, PlayerEyeChar, core.ColorGray)

	bodyRows := h - 1
	if h >= 3 {
		bodyRows = h - 2
		dst.DrawHLine(x, y+h-1, w, PlayerLegsChar, core.ColorGray)
	}
	if bodyRows > 0 {
		dst.DrawRect(core.NewRect(x, y+1, w, bodyRows), PlayerBodyChar, core.ColorBlue)
	}
}
