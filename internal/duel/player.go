package duel

import (
	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/core"
)

// playerSize is the player's collision box edge in tiles.
const playerSize = 1.0

// minSeparation keeps players from overlapping. A move is allowed only
// if the players stay at least this far apart on one axis.
const minSeparation = 1.1

// Player is one duelist: position, shield state, active projectiles
// and timed speed effects.
type Player struct {
	ID   core.PlayerID
	X, Y float64

	ShieldActive bool
	Projectiles  []*Projectile
	Effects      Effects

	startX, startY float64
	lastShot       float64
	cfg            *config.DuelConfig
}

// NewPlayer creates a player at the given starting position.
func NewPlayer(id core.PlayerID, x, y float64, cfg *config.DuelConfig) *Player {
	return &Player{
		ID:      id,
		X:       x,
		Y:       y,
		startX:  x,
		startY:  y,
		Effects: NewEffects(*cfg),
		cfg:     cfg,
	}
}

// Reset returns the player to its starting position and clears all
// effects, projectiles and shield state.
func (p *Player) Reset() {
	p.X = p.startX
	p.Y = p.startY
	p.ShieldActive = false
	p.Projectiles = p.Projectiles[:0]
	p.Effects.Reset()
	p.lastShot = 0
}

// Direction returns the player's forward direction along the x axis.
func (p *Player) Direction() float64 {
	if p.ID == core.Player1 {
		return 1
	}
	return -1
}

// Rect returns the player's collision box.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, playerSize, playerSize)
}

// SpeedMultiplier returns the combined speed multiplier at the given time.
func (p *Player) SpeedMultiplier(now float64) float64 {
	return p.Effects.Multiplier(now)
}

// CanShoot reports whether the fire-rate cooldown has elapsed.
// A raised shield blocks shooting entirely, and the cooldown scales with
// the player's speed multiplier so slowed players also shoot slower.
func (p *Player) CanShoot(now float64) bool {
	if p.ShieldActive {
		return false
	}
	mult := p.SpeedMultiplier(now)
	return now-p.lastShot >= 1.0/(p.cfg.Shooting.FireRate*mult)
}

// Shoot fires a projectile toward the opponent's side if the cooldown
// allows it.
func (p *Player) Shoot(now float64) {
	if !p.CanShoot(now) {
		return
	}
	dir := p.Direction()
	pr := NewProjectile(p.X+dir, p.Y, dir, p.cfg.Shooting.ProjectileSize, false)
	p.Projectiles = append(p.Projectiles, pr)
	p.lastShot = now
}

// Move applies one tick of movement. dx and dy are desired velocities in
// tiles per second; the final displacement is scaled by dt and the
// player's speed multiplier. The move is rejected outright, not clamped,
// if it would leave the arena, overlap the opponent or enter a wall.
// A raised shield locks horizontal movement.
func (p *Player) Move(dx, dy, dt, now float64, other *Player, walls []core.Rect) {
	if p.ShieldActive {
		dx = 0
	}
	if dx == 0 && dy == 0 {
		return
	}

	mult := p.SpeedMultiplier(now)
	newX := p.X + dx*dt*mult
	newY := p.Y + dy*dt*mult

	w := float64(p.cfg.Board.Width)
	h := float64(p.cfg.Board.Height)
	if newX < 0 || newX > w-1 || newY < 0 || newY > h-1 {
		return
	}
	if core.AbsF(newX-other.X) < minSeparation && core.AbsF(newY-other.Y) < minSeparation {
		return
	}

	candidate := core.NewRect(newX, newY, playerSize, playerSize)
	for _, wall := range walls {
		if candidate.Intersects(wall) {
			return
		}
	}

	p.X = newX
	p.Y = newY
}

// Progress returns how far the player has advanced toward the centerline
// as a percentage. 100 means the player's leading edge reached the
// center. The leading edge differs per side: the left player's front is
// X+1, the right player's front is X itself.
func (p *Player) Progress() float64 {
	centerX := float64(p.cfg.Board.Width) / 2
	var distance float64
	if p.X < centerX {
		distance = centerX - (p.X + playerSize)
	} else {
		distance = p.X - centerX
	}
	return (centerX - distance) / centerX * 100
}

// UpdateProjectiles advances this player's shots and resolves collisions
// against walls and the opponent.
//
// A shot that reaches an unshielded opponent slows them and grants the
// shooter a speedup. A shielded opponent absorbs the shot, earns a
// deflection boost, and fires the shot back at double speed. The
// deflected shot belongs to the defender, so the original shooter's own
// shield can still deflect it again.
func (p *Player) UpdateProjectiles(dt, now float64, other *Player, walls []core.Rect) {
	w := float64(p.cfg.Board.Width)
	h := float64(p.cfg.Board.Height)
	speed := p.cfg.Shooting.ProjectileSpeed

	kept := p.Projectiles[:0]
	for _, pr := range p.Projectiles {
		pr.Advance(dt, speed)

		if pr.OutOfBounds(w, h) {
			continue
		}

		hitWall := false
		for _, wall := range walls {
			if pr.Rect().Intersects(wall) {
				hitWall = true
				break
			}
		}
		if hitWall {
			continue
		}

		if pr.Rect().Intersects(other.Rect()) {
			if other.ShieldActive {
				other.Effects.AddBoost(now, p.cfg.Shield.BoostDuration, p.cfg.Shield.BoostAmount)

				deflectDir := -pr.Direction
				deflected := NewProjectile(
					other.X+deflectDir,
					other.Y,
					deflectDir,
					p.cfg.Shooting.ProjectileSize,
					true,
				)
				other.Projectiles = append(other.Projectiles, deflected)
			} else {
				other.Effects.ApplySlow(now, p.cfg.Shooting.SlowDuration)
				p.Effects.ApplySpeedup(now, p.cfg.Shooting.SpeedupDuration)
			}
			// The original shot is consumed either way
			continue
		}

		kept = append(kept, pr)
	}
	p.Projectiles = kept
}
