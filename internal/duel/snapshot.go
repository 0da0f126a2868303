package duel

import "github.com/vovakirdan/tui-duel/internal/core"

// PlayerSnapshot is one player's observable state.
type PlayerSnapshot struct {
	ID           core.PlayerID
	X, Y         float64
	Progress     float64
	Multiplier   float64
	ShieldActive bool
	Slowed       bool
	SpedUp       bool
	Boosts       int
}

// ProjectileSnapshot is one projectile's observable state.
type ProjectileSnapshot struct {
	X, Y      float64
	Direction float64
	Deflected bool
	Owner     core.PlayerID
}

// PickupSnapshot is one uncollected pickup's observable state.
type PickupSnapshot struct {
	Kind PickupKind
	X, Y float64
}

// Snapshot is a complete observable view of the simulation, suitable for
// rendering, logging or driving an external client.
type Snapshot struct {
	State     string
	Clock     float64
	Round     int
	Wins      [2]int
	History   []core.PlayerID
	Countdown string

	Players     [2]PlayerSnapshot
	Projectiles []ProjectileSnapshot
	Pickups     []PickupSnapshot
	Walls       []core.Rect
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	now := g.clock
	snap := Snapshot{
		State:     g.State(),
		Clock:     now,
		Round:     g.match.CurrentRound,
		Wins:      g.match.Wins,
		History:   append([]core.PlayerID(nil), g.match.History...),
		Countdown: g.match.CountdownLabel(),
		Walls:     append([]core.Rect(nil), g.level.Walls...),
	}

	for i, p := range []*Player{g.p1, g.p2} {
		snap.Players[i] = PlayerSnapshot{
			ID:           p.ID,
			X:            p.X,
			Y:            p.Y,
			Progress:     p.Progress(),
			Multiplier:   p.SpeedMultiplier(now),
			ShieldActive: p.ShieldActive,
			Slowed:       p.Effects.Slowed(now),
			SpedUp:       p.Effects.SpedUp(now),
			Boosts:       p.Effects.BoostCount(now),
		}
		for _, pr := range p.Projectiles {
			snap.Projectiles = append(snap.Projectiles, ProjectileSnapshot{
				X:         pr.X,
				Y:         pr.Y,
				Direction: pr.Direction,
				Deflected: pr.Deflected,
				Owner:     p.ID,
			})
		}
	}

	for _, pk := range g.level.Pickups {
		snap.Pickups = append(snap.Pickups, PickupSnapshot{Kind: pk.Kind, X: pk.X, Y: pk.Y})
	}

	return snap
}
