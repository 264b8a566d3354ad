package jumper

// Snapshot captures the observable game state for determinism testing and
// the headless simulator.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	PlayerX   float64
	PlayerY   float64
	PlayerDY  float64
	OnGround  bool
	Platforms int
	Coins     int
}

// Snapshot returns the current game snapshot.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:      w.tick,
		Phase:     w.Phase(),
		Score:     w.score,
		PlayerX:   w.player.X,
		PlayerY:   w.player.Y,
		PlayerDY:  w.player.DY,
		OnGround:  w.player.OnGround,
		Platforms: len(w.platforms),
		Coins:     len(w.coins),
	}
}
