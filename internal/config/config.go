// Package config provides YAML-based game configuration loading and
// difficulty presets for the duel platform.
package config

import "fmt"

// DuelConfig contains all tunable parameters for a duel match.
type DuelConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Shooting ShootingConfig `yaml:"shooting"`
	Shield   ShieldConfig   `yaml:"shield"`
	Rounds   RoundsConfig   `yaml:"rounds"`
	Walls    WallsConfig    `yaml:"walls"`
	Pickups  PickupsConfig  `yaml:"pickups"`
	CPU      CPUConfig      `yaml:"cpu"`
}

// BoardConfig defines the arena dimensions and base movement speed.
// All distances are in tiles, speeds in tiles per second.
type BoardConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	PlayerSpeed float64 `yaml:"player_speed"`
}

// ShootingConfig defines projectile behavior and hit effects.
type ShootingConfig struct {
	FireRate        float64 `yaml:"fire_rate"`        // Shots per second at multiplier 1.0
	ProjectileSpeed float64 `yaml:"projectile_speed"` // Tiles per second
	ProjectileSize  float64 `yaml:"projectile_size"`  // In tiles
	SlowFactor      float64 `yaml:"slow_factor"`      // Target speed multiplier when hit
	SlowDuration    float64 `yaml:"slow_duration"`    // Seconds
	SpeedupFactor   float64 `yaml:"speedup_factor"`   // Shooter speed multiplier on hit
	SpeedupDuration float64 `yaml:"speedup_duration"` // Seconds
}

// ShieldConfig defines the deflection reward mechanics.
type ShieldConfig struct {
	BoostDuration float64 `yaml:"boost_duration"` // Seconds each deflection boost lasts
	BoostAmount   float64 `yaml:"boost_amount"`   // Additive speed bonus per deflection
	BoostMax      float64 `yaml:"boost_max"`      // Cap on total deflection bonus
}

// RoundsConfig defines match structure and the pre-round countdown.
type RoundsConfig struct {
	RoundsToWin       int     `yaml:"rounds_to_win"`
	CountdownTicks    int     `yaml:"countdown_ticks"`    // Countdown starts from this number
	CountdownDuration float64 `yaml:"countdown_duration"` // Total countdown length in seconds
}

// WallsConfig defines random wall generation for the arena.
type WallsConfig struct {
	Enabled     bool    `yaml:"enabled"`
	PerSide     int     `yaml:"per_side"` // Walls per half, mirrored to the other half
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	MinDistance float64 `yaml:"min_distance"` // Minimum distance between wall centers
}

// PickupsConfig defines collectible spawning and effect durations.
type PickupsConfig struct {
	Enabled        bool    `yaml:"enabled"`
	Count          int     `yaml:"count"` // Pickups spawned per match
	Size           float64 `yaml:"size"`  // In tiles
	BoostDuration  float64 `yaml:"boost_duration"`
	DebuffDuration float64 `yaml:"debuff_duration"`
}

// CPUConfig defines the computer opponent's skill range.
// Skill scales reaction quality between 0.0 and 1.0.
type CPUConfig struct {
	MinSkill float64 `yaml:"min_skill"`
	MaxSkill float64 `yaml:"max_skill"`
}

// Validate checks the configuration for values that would break the
// simulation. Returns the first problem found.
func (c DuelConfig) Validate() error {
	if c.Board.Width < 8 || c.Board.Height < 4 {
		return fmt.Errorf("config: board must be at least 8x4 tiles, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.Board.PlayerSpeed <= 0 {
		return fmt.Errorf("config: player_speed must be positive, got %g", c.Board.PlayerSpeed)
	}
	if c.Shooting.FireRate <= 0 {
		return fmt.Errorf("config: fire_rate must be positive, got %g", c.Shooting.FireRate)
	}
	if c.Shooting.ProjectileSpeed <= 0 {
		return fmt.Errorf("config: projectile_speed must be positive, got %g", c.Shooting.ProjectileSpeed)
	}
	if c.Shooting.SlowFactor <= 0 || c.Shooting.SlowFactor >= 1 {
		return fmt.Errorf("config: slow_factor must be in (0, 1), got %g", c.Shooting.SlowFactor)
	}
	if c.Shooting.SlowDuration <= 0 || c.Shooting.SpeedupDuration <= 0 {
		return fmt.Errorf("config: effect durations must be positive")
	}
	if c.Shooting.SpeedupFactor < 1 {
		return fmt.Errorf("config: speedup_factor must be at least 1, got %g", c.Shooting.SpeedupFactor)
	}
	if c.Shield.BoostDuration <= 0 || c.Shield.BoostAmount < 0 || c.Shield.BoostMax < 0 {
		return fmt.Errorf("config: shield boost values must be non-negative with positive duration")
	}
	if c.Rounds.RoundsToWin < 1 {
		return fmt.Errorf("config: rounds_to_win must be at least 1, got %d", c.Rounds.RoundsToWin)
	}
	if c.Rounds.CountdownTicks < 0 || c.Rounds.CountdownDuration < 0 {
		return fmt.Errorf("config: countdown values must be non-negative")
	}
	if c.Walls.Enabled {
		if c.Walls.Width <= 0 || c.Walls.Height <= 0 {
			return fmt.Errorf("config: wall dimensions must be positive")
		}
		if c.Walls.Width >= float64(c.Board.Width)/2-3 {
			return fmt.Errorf("config: walls too wide for board, got %g", c.Walls.Width)
		}
	}
	if c.Pickups.Enabled {
		if c.Pickups.Size <= 0 {
			return fmt.Errorf("config: pickup size must be positive, got %g", c.Pickups.Size)
		}
		if c.Pickups.BoostDuration <= 0 || c.Pickups.DebuffDuration <= 0 {
			return fmt.Errorf("config: pickup effect durations must be positive")
		}
	}
	if c.CPU.MinSkill < 0 || c.CPU.MaxSkill > 1 || c.CPU.MinSkill > c.CPU.MaxSkill {
		return fmt.Errorf("config: cpu skill range must satisfy 0 <= min <= max <= 1")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ValidPreset reports whether the preset name is recognized.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}

// ApplyDuelPreset modifies the config based on a difficulty preset.
// "fixed" leaves the loaded config untouched.
func ApplyDuelPreset(cfg *DuelConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Walls.PerSide = 2
		cfg.Pickups.Count = 8
		cfg.CPU.MinSkill = 0.3
		cfg.CPU.MaxSkill = 0.5
	case DifficultyHard:
		cfg.Walls.PerSide = 4
		cfg.Pickups.Count = 4
		cfg.CPU.MinSkill = 0.8
		cfg.CPU.MaxSkill = 0.95
	}
}
