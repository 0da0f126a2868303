package config

import (
	_ "embed"
)

//go:embed defaults/duel.yaml
var defaultDuelYAML []byte

// DefaultDuelConfig returns the default duel configuration.
func DefaultDuelConfig() DuelConfig {
	return DuelConfig{
		Board: BoardConfig{
			Width:       40,
			Height:      20,
			PlayerSpeed: 5.0,
		},
		Shooting: ShootingConfig{
			FireRate:        5.0,
			ProjectileSpeed: 100.0,
			ProjectileSize:  1.0,
			SlowFactor:      0.5,
			SlowDuration:    2.0,
			SpeedupFactor:   1.5,
			SpeedupDuration: 1.0,
		},
		Shield: ShieldConfig{
			BoostDuration: 4.0,
			BoostAmount:   0.05,
			BoostMax:      0.5,
		},
		Rounds: RoundsConfig{
			RoundsToWin:       3,
			CountdownTicks:    3,
			CountdownDuration: 2.0,
		},
		Walls: WallsConfig{
			Enabled:     true,
			PerSide:     3,
			Width:       2.0,
			Height:      3.0,
			MinDistance: 5.0,
		},
		Pickups: PickupsConfig{
			Enabled:        true,
			Count:          6,
			Size:           1.0,
			BoostDuration:  3.0,
			DebuffDuration: 3.0,
		},
		CPU: CPUConfig{
			MinSkill: 0.6,
			MaxSkill: 0.85,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML config.
func GetDefaultYAML() []byte {
	return defaultDuelYAML
}
