package jumper

import "math"

// Autopilot returns intents for a simple bot: start the run, steer under
// the nearest platform above the player's feet and jump whenever grounded.
// It drives the headless simulator.
func Autopilot(w *World) Intents {
	switch w.Phase() {
	case PhaseNotStarted:
		return Intents{Start: true}
	case PhaseGameOver:
		return Intents{}
	}

	p := w.player
	speed := w.cfg.Player.MoveSpeed
	center := p.X + float64(w.cfg.Player.Width)/2
	feet := p.Y + float64(w.cfg.Player.Height)

	target, best := center, math.MaxFloat64
	for _, pl := range w.platforms {
		gap := feet - float64(pl.Y)
		if gap <= 0 || gap >= best {
			continue
		}
		best = gap
		target = float64(pl.X) + float64(pl.Width)/2
	}

	in := Intents{Jump: p.OnGround}
	switch {
	case target < center-speed:
		in.MoveLeft = true
	case target > center+speed:
		in.MoveRight = true
	}
	return in
}
