// Package config provides YAML-based loading of the game constants.
package config

// JumperConfig contains every tunable constant of the game.
type JumperConfig struct {
	World     WorldConfig    `yaml:"world"`
	Player    PlayerConfig   `yaml:"player"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Platforms PlatformConfig `yaml:"platforms"`
	Coins     CoinConfig     `yaml:"coins"`
	Scoring   ScoringConfig  `yaml:"scoring"`
	Input     InputConfig    `yaml:"input"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// ScrollDivisor places the scroll line at Height/ScrollDivisor from the top.
	ScrollDivisor int `yaml:"scroll_divisor"`
}

// PlayerConfig defines the player hitbox and horizontal speed.
type PlayerConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	MoveSpeed float64 `yaml:"move_speed"`
}

// PhysicsConfig defines vertical motion.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // Added to dy every tick
	JumpForce float64 `yaml:"jump_force"` // dy becomes -JumpForce on jump
	// LandingTolerance extends the landing band below the platform's bottom edge.
	LandingTolerance int `yaml:"landing_tolerance"`
}

// PlatformConfig defines platform size and spawn ranges.
type PlatformConfig struct {
	Count        int `yaml:"count"` // Including the start platform
	Height       int `yaml:"height"`
	MinWidth     int `yaml:"min_width"` // Inclusive
	MaxWidth     int `yaml:"max_width"` // Exclusive
	SpawnMarginX int `yaml:"spawn_margin_x"`
	SpawnTop     int `yaml:"spawn_top"`
	SpawnBottom  int `yaml:"spawn_bottom"`
	StartWidth   int `yaml:"start_width"`
	StartOffsetY int `yaml:"start_offset_y"` // Below the player's spawn height
}

// CoinConfig defines coin size and spawn ranges.
type CoinConfig struct {
	Count             int `yaml:"count"`
	Size              int `yaml:"size"`
	SpawnBottomMargin int `yaml:"spawn_bottom_margin"`
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	CoinReward     int `yaml:"coin_reward"`
	PlatformReward int `yaml:"platform_reward"`
}

// InputConfig tunes the terminal input emulation.
type InputConfig struct {
	// HoldTicks is how long a movement key stays held after its last press.
	HoldTicks int `yaml:"hold_ticks"`
}

// ScrollLine returns the y coordinate the camera keeps the player below.
func (c JumperConfig) ScrollLine() int {
	return c.World.Height / c.World.ScrollDivisor
}
