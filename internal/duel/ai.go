package duel

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/core"
)

// CPUPlayer drives the right-side player with simple heuristics: race
// toward the centerline, mirror the opponent's vertical position, shoot
// when in range and shield against incoming shots.
//
// Skill is drawn once per match from the configured range. Higher skill
// shortens the shot cooldown and widens the shield reaction range.
type CPUPlayer struct {
	skill        float64
	shotCooldown float64
	lastShot     float64
}

// NewCPUPlayer creates a CPU opponent with a randomized skill level.
func NewCPUPlayer(cfg config.CPUConfig, fireRate float64, rng *rand.Rand) *CPUPlayer {
	skill := cfg.MinSkill + rng.Float64()*(cfg.MaxSkill-cfg.MinSkill)
	if skill <= 0 {
		skill = 0.1
	}
	return &CPUPlayer{
		skill:        skill,
		shotCooldown: (1.0 / fireRate) / skill,
	}
}

// Reset clears per-round shooting state.
func (c *CPUPlayer) Reset() {
	c.lastShot = 0
}

// Intent computes this tick's input for the CPU-controlled player.
func (c *CPUPlayer) Intent(self, opponent *Player, boardWidth float64, now float64) core.Intent {
	var in core.Intent

	dx := opponent.X - self.X
	dy := opponent.Y - self.Y
	distance := math.Sqrt(dx*dx + dy*dy)

	// Shield when the opponent has shots in the air and is close enough
	// to threaten. Reaction range scales with skill.
	shieldRange := boardWidth / 3 * c.skill
	if len(opponent.Projectiles) > 0 && distance < shieldRange {
		in.Shield = true
	}

	// Race toward the centerline while mirroring the opponent's row.
	// A raised shield locks horizontal movement anyway, so only steer
	// when the shield is down.
	if !in.Shield {
		targetX := boardWidth / 2
		targetY := opponent.Y

		if self.X > targetX {
			in.MoveX = -1
		} else if self.X < targetX {
			in.MoveX = 1
		}
		if self.Y > targetY {
			in.MoveY = -1
		} else if self.Y < targetY {
			in.MoveY = 1
		}
	}

	// Shoot on cooldown once the opponent is within half the board.
	if !in.Shield && distance < boardWidth/2 && now-c.lastShot > c.shotCooldown {
		in.Shoot = true
		c.lastShot = now
	}

	return in
}
