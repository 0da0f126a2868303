package config

import "testing"

func TestValidateAcceptsDefaults(t *testing.T) {
	cfg := DefaultDuelConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DuelConfig)
	}{
		{"tiny board", func(c *DuelConfig) { c.Board.Width = 4 }},
		{"zero player speed", func(c *DuelConfig) { c.Board.PlayerSpeed = 0 }},
		{"zero fire rate", func(c *DuelConfig) { c.Shooting.FireRate = 0 }},
		{"slow factor at 1", func(c *DuelConfig) { c.Shooting.SlowFactor = 1.0 }},
		{"negative slow duration", func(c *DuelConfig) { c.Shooting.SlowDuration = -1 }},
		{"speedup factor below 1", func(c *DuelConfig) { c.Shooting.SpeedupFactor = 0.9 }},
		{"zero rounds to win", func(c *DuelConfig) { c.Rounds.RoundsToWin = 0 }},
		{"zero wall height", func(c *DuelConfig) { c.Walls.Height = 0 }},
		{"zero pickup size", func(c *DuelConfig) { c.Pickups.Size = 0 }},
		{"zero boost duration", func(c *DuelConfig) { c.Pickups.BoostDuration = 0 }},
		{"negative debuff duration", func(c *DuelConfig) { c.Pickups.DebuffDuration = -3 }},
		{"inverted cpu skill range", func(c *DuelConfig) { c.CPU.MinSkill = 0.9; c.CPU.MaxSkill = 0.5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDuelConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error, got nil")
			}
		})
	}
}

func TestDisabledPickupDurationsNotChecked(t *testing.T) {
	cfg := DefaultDuelConfig()
	cfg.Pickups.Enabled = false
	cfg.Pickups.DebuffDuration = -1

	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled pickups should skip duration checks, got %v", err)
	}
}

func TestApplyDuelPreset(t *testing.T) {
	cfg := DefaultDuelConfig()
	ApplyDuelPreset(&cfg, DifficultyEasy)
	if cfg.Walls.PerSide != 2 || cfg.Pickups.Count != 8 {
		t.Errorf("easy preset not applied: %d walls per side, %d pickups", cfg.Walls.PerSide, cfg.Pickups.Count)
	}

	cfg = DefaultDuelConfig()
	ApplyDuelPreset(&cfg, DifficultyFixed)
	if cfg != DefaultDuelConfig() {
		t.Error("fixed preset should leave the config untouched")
	}

	if !ValidPreset(DifficultyHard) || ValidPreset("impossible") {
		t.Error("preset validity check broken")
	}
}
