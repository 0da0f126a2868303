package duel

import "github.com/vovakirdan/tui-duel/internal/core"

// deflectedSpeedFactor is applied to shots bounced back by a shield.
const deflectedSpeedFactor = 2.0

// Projectile is a shot traveling horizontally across the arena.
type Projectile struct {
	X, Y      float64
	Direction float64 // +1 traveling right, -1 traveling left
	Deflected bool    // Deflected shots travel at double speed
	Size      float64
}

// NewProjectile creates a projectile at the given position.
func NewProjectile(x, y, direction, size float64, deflected bool) *Projectile {
	return &Projectile{
		X:         x,
		Y:         y,
		Direction: direction,
		Deflected: deflected,
		Size:      size,
	}
}

// Advance moves the projectile by one time step at the given base speed.
func (pr *Projectile) Advance(dt, speed float64) {
	mult := 1.0
	if pr.Deflected {
		mult = deflectedSpeedFactor
	}
	pr.X += pr.Direction * speed * mult * dt
}

// Rect returns the projectile's bounding box for collision checks.
func (pr *Projectile) Rect() core.Rect {
	return core.NewRect(pr.X, pr.Y, pr.Size, pr.Size)
}

// OutOfBounds reports whether the projectile has left the arena.
func (pr *Projectile) OutOfBounds(width, height float64) bool {
	return pr.X < 0 || pr.X > width || pr.Y < 0 || pr.Y > height
}
