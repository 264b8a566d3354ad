package jumper

import (
	"github.com/vovakirdan/pixel-jumper/internal/config"
)

// Source is the random number source used for every spawn.
// *rand.Rand satisfies it; tests can supply a scripted one.
type Source interface {
	Intn(n int) int
}

// Spawner places new platforms and coins at random positions.
type Spawner struct {
	rng Source
	cfg config.JumperConfig
}

// NewSpawner creates a spawner. The config must have passed Validate,
// otherwise Intn receives an empty range and panics.
func NewSpawner(rng Source, cfg config.JumperConfig) *Spawner {
	return &Spawner{rng: rng, cfg: cfg}
}

// StartPlatform returns the fixed platform under the player's spawn point.
func (s *Spawner) StartPlatform() Platform {
	w := s.cfg.Platforms.StartWidth
	return Platform{
		X:     s.cfg.World.Width/2 - w/2,
		Y:     s.cfg.World.Height/2 + s.cfg.Platforms.StartOffsetY,
		Width: w,
	}
}

// Platform returns a platform somewhere in the middle band of the world.
func (s *Spawner) Platform() Platform {
	pc := s.cfg.Platforms
	x := s.rng.Intn(s.cfg.World.Width - pc.SpawnMarginX)
	y := s.rng.Intn(s.cfg.World.Height-pc.SpawnTop-pc.SpawnBottom) + pc.SpawnTop
	width := s.rng.Intn(pc.MaxWidth-pc.MinWidth) + pc.MinWidth
	return Platform{X: x, Y: y, Width: width}
}

// Coin returns a coin in the upper part of the world.
func (s *Spawner) Coin() Coin {
	x := s.rng.Intn(s.cfg.World.Width - s.cfg.Coins.Size)
	y := s.rng.Intn(s.cfg.World.Height - s.cfg.Coins.SpawnBottomMargin)
	return Coin{X: x, Y: y}
}

// replaceMatching removes every item for which hit is true and appends one
// fresh item per removal, keeping survivors in order. All hits are decided
// before the slice changes. Returns the new slice and the number replaced.
func replaceMatching[T any](items []T, hit func(T) bool, spawn func() T) ([]T, int) {
	var doomed []int
	for i, it := range items {
		if hit(it) {
			doomed = append(doomed, i)
		}
	}
	if len(doomed) == 0 {
		return items, 0
	}

	fresh := make([]T, 0, len(doomed))
	for range doomed {
		fresh = append(fresh, spawn())
	}

	kept := make([]T, 0, len(items))
	next := 0
	for i, it := range items {
		if next < len(doomed) && doomed[next] == i {
			next++
			continue
		}
		kept = append(kept, it)
	}
	return append(kept, fresh...), len(doomed)
}
