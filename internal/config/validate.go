package config

import "fmt"

// ValidationError reports a constant that would make spawning or physics
// impossible. These are caught once at load time; the game loop never
// checks them again.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid config [%s]: %s", e.Field, e.Message)
}

// Validate checks that every random range is non-empty and every size is positive.
func (c JumperConfig) Validate() error {
	w, h := c.World.Width, c.World.Height

	checks := []struct {
		ok      bool
		field   string
		message string
	}{
		{w > 0 && h > 0, "world", fmt.Sprintf("size must be positive, got %dx%d", w, h)},
		{c.World.ScrollDivisor >= 1, "world.scroll_divisor", "must be at least 1"},
		{c.Player.Width > 0 && c.Player.Height > 0, "player", "size must be positive"},
		{c.Player.Width <= w, "player.width", fmt.Sprintf("%d does not fit in world width %d", c.Player.Width, w)},
		{c.Player.MoveSpeed >= 0, "player.move_speed", "must not be negative"},
		{c.Physics.Gravity >= 0, "physics.gravity", "must not be negative"},
		{c.Physics.JumpForce >= 0, "physics.jump_force", "must not be negative"},
		{c.Physics.LandingTolerance >= 0, "physics.landing_tolerance", "must not be negative"},
		{c.Platforms.Count >= 1, "platforms.count", "must include the start platform"},
		{c.Platforms.Height > 0, "platforms.height", "must be positive"},
		{c.Platforms.MinWidth > 0, "platforms.min_width", "must be positive"},
		{c.Platforms.MaxWidth > c.Platforms.MinWidth, "platforms.max_width",
			fmt.Sprintf("must exceed min_width %d", c.Platforms.MinWidth)},
		{c.Platforms.SpawnMarginX < w, "platforms.spawn_margin_x",
			fmt.Sprintf("leaves no room in world width %d", w)},
		{c.Platforms.SpawnTop >= 0 && c.Platforms.SpawnBottom >= 0, "platforms.spawn_top",
			"spawn margins must not be negative"},
		{c.Platforms.SpawnTop+c.Platforms.SpawnBottom < h, "platforms.spawn_bottom",
			fmt.Sprintf("spawn band is empty in world height %d", h)},
		{c.Platforms.StartWidth > 0, "platforms.start_width", "must be positive"},
		{c.Coins.Count >= 0, "coins.count", "must not be negative"},
		{c.Coins.Size > 0 && c.Coins.Size < w, "coins.size",
			fmt.Sprintf("must be in (0, %d)", w)},
		{c.Coins.SpawnBottomMargin < h, "coins.spawn_bottom_margin",
			fmt.Sprintf("leaves no room in world height %d", h)},
		{c.Scoring.CoinReward >= 0 && c.Scoring.PlatformReward >= 0, "scoring", "rewards must not be negative"},
		{c.Input.HoldTicks >= 1, "input.hold_ticks", "must be at least 1"},
	}

	for _, chk := range checks {
		if !chk.ok {
			return ValidationError{Field: chk.field, Message: chk.message}
		}
	}
	return nil
}
