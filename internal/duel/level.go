package duel

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/core"
)

// spawnBuffer keeps walls and pickups away from player starting tiles.
const spawnBuffer = 1.5

// maxPlacementAttempts bounds random placement retries per object.
const maxPlacementAttempts = 100

// Pickup placement constraints. When the constrained attempts run out,
// a short relaxed pass drops everything except wall and spawn checks.
const (
	pickupEdgeBuffer   = 1.0
	pickupCenterBuffer = 2.0
	pickupSpacing      = 2.0
	relaxedAttempts    = 20
)

// Level holds the generated arena layout for one match.
// Walls persist across rounds; pickups are consumed as collected.
type Level struct {
	Walls   []core.Rect
	Pickups []*Pickup
}

// StartPositions returns the two players' starting coordinates:
// vertically centered at the far left and far right columns.
func StartPositions(cfg *config.DuelConfig) (p1x, p1y, p2x, p2y float64) {
	midY := float64(cfg.Board.Height/2) - 0.5
	return 0, midY, float64(cfg.Board.Width - 1), midY
}

// GenerateLevel builds a random arena: mirrored wall pairs plus scattered
// pickups. The same seed always produces the same layout.
func GenerateLevel(cfg *config.DuelConfig, reg *PickupRegistry, rng *rand.Rand) *Level {
	lvl := &Level{}
	lvl.Walls = generateWalls(cfg, rng)
	lvl.Pickups = generatePickups(cfg, reg, rng, lvl.Walls)
	return lvl
}

// generateWalls places wall pairs on the left half and mirrors each onto
// the right half, keeping the arena symmetric. Walls are placed by their
// bottom-left corner, kept apart by a minimum center distance, and kept
// out of both spawn zones. The placement range spans every corridor from
// spawn to center, so the first placed pair already forces both players
// to navigate around a wall.
func generateWalls(cfg *config.DuelConfig, rng *rand.Rand) []core.Rect {
	if !cfg.Walls.Enabled {
		return nil
	}

	boardW := float64(cfg.Board.Width)
	boardH := float64(cfg.Board.Height)
	centerX := boardW / 2
	wallW := cfg.Walls.Width
	wallH := cfg.Walls.Height
	p1x, p1y, _, _ := StartPositions(cfg)

	var walls []core.Rect
	for i := 0; i < cfg.Walls.PerSide; i++ {
		placed := false
		for attempt := 0; attempt < maxPlacementAttempts && !placed; attempt++ {
			// Bottom-left corner, left half only, clear of the edge columns
			x := uniform(rng, 2, centerX-wallW-1)
			y := uniform(rng, wallH, boardH-0.5)
			candidate := core.NewRect(x, y-wallH, wallW, wallH)

			if tooCloseToWalls(candidate, walls, cfg.Walls.MinDistance) {
				continue
			}
			if overlapsWalls(candidate, walls) {
				continue
			}
			// Keep clear of P1's spawn; the mirror keeps clear of P2's
			if core.AbsF(x-p1x) < spawnBuffer && core.AbsF(y-p1y) < spawnBuffer {
				continue
			}

			mirroredX := boardW - x - wallW
			walls = append(walls, candidate)
			walls = append(walls, core.NewRect(mirroredX, y-wallH, wallW, wallH))
			placed = true
		}
		if !placed {
			break
		}
	}
	return walls
}

// generatePickups scatters pickups evenly across the two halves, keeping
// them off walls, away from both spawn zones, clear of the centerline,
// and spaced apart from each other. Each pickup's kind is a coin flip
// between the registered boost and debuff. Placement degrades in two
// steps: constrained sampling first, then a short relaxed pass, then
// the pickup is silently dropped.
func generatePickups(cfg *config.DuelConfig, reg *PickupRegistry, rng *rand.Rand, walls []core.Rect) []*Pickup {
	if !cfg.Pickups.Enabled {
		return nil
	}

	boardW := float64(cfg.Board.Width)
	boardH := float64(cfg.Board.Height)
	centerX := boardW / 2
	size := cfg.Pickups.Size
	p1x, p1y, p2x, p2y := StartPositions(cfg)

	inSpawnZone := func(x, y float64) bool {
		if core.AbsF(x-p1x) < spawnBuffer && core.AbsF(y-p1y) < spawnBuffer {
			return true
		}
		return core.AbsF(x-p2x) < spawnBuffer && core.AbsF(y-p2y) < spawnBuffer
	}

	var pickups []*Pickup
	for i := 0; i < cfg.Pickups.Count; i++ {
		kind := PickupBoost
		if rng.Float64() < 0.5 {
			kind = PickupDebuff
		}

		// Alternate sides so each half gets half the pickups
		minX, maxX := pickupEdgeBuffer, centerX-pickupCenterBuffer-size
		if i%2 == 1 {
			minX, maxX = centerX+pickupCenterBuffer, boardW-size-pickupEdgeBuffer
		}

		var placed *Pickup
		for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
			x := uniform(rng, minX, maxX)
			y := uniform(rng, pickupEdgeBuffer, boardH-size-pickupEdgeBuffer)
			candidate := core.NewRect(x, y, size, size)

			if overlapsWalls(candidate, walls) || inSpawnZone(x, y) {
				continue
			}
			if tooCloseToPickups(candidate, pickups, pickupSpacing) {
				continue
			}

			placed, _ = reg.New(kind, x, y, size)
			break
		}

		// Relaxed pass: anywhere on the board, wall and spawn checks only
		for attempt := 0; placed == nil && attempt < relaxedAttempts; attempt++ {
			x := uniform(rng, 0, boardW-size)
			y := uniform(rng, 0, boardH-size)
			if overlapsWalls(core.NewRect(x, y, size, size), walls) || inSpawnZone(x, y) {
				continue
			}
			placed, _ = reg.New(kind, x, y, size)
		}

		if placed != nil {
			pickups = append(pickups, placed)
		}
	}
	return pickups
}

// tooCloseToWalls checks the minimum center-to-center distance rule.
func tooCloseToWalls(candidate core.Rect, walls []core.Rect, minDistance float64) bool {
	cx, cy := candidate.Center()
	for _, w := range walls {
		wx, wy := w.Center()
		dx := cx - wx
		dy := cy - wy
		if math.Sqrt(dx*dx+dy*dy) < minDistance {
			return true
		}
	}
	return false
}

// tooCloseToPickups checks the center distance against placed pickups.
func tooCloseToPickups(candidate core.Rect, pickups []*Pickup, minDistance float64) bool {
	cx, cy := candidate.Center()
	for _, pk := range pickups {
		px, py := pk.Rect().Center()
		dx := cx - px
		dy := cy - py
		if math.Sqrt(dx*dx+dy*dy) < minDistance {
			return true
		}
	}
	return false
}

// overlapsWalls checks AABB overlap against existing walls.
func overlapsWalls(candidate core.Rect, walls []core.Rect) bool {
	for _, w := range walls {
		if candidate.Intersects(w) {
			return true
		}
	}
	return false
}

// uniform returns a random float64 in [min, max).
func uniform(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}
