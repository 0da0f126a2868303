package duel

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/core"
)

// Game phase constants
const (
	StateCountdown = "countdown"  // Pre-round countdown running
	StatePlaying   = "playing"    // Round in progress
	StateRoundOver = "round_over" // Round decided, waiting for continue
	StateMatchOver = "match_over" // Match decided, waiting for restart
)

// Game implements the duel simulation. It owns both players, the
// generated level and the round/match bookkeeping, and advances them by
// variable time steps fed from the platform layer.
type Game struct {
	p1, p2 *Player
	level  *Level
	match  *Match

	registry *PickupRegistry
	cpu      *CPUPlayer
	rng      *rand.Rand

	clock      float64 // Simulation time in seconds, monotonic across matches
	matchStart float64 // Clock value when the current match began

	runtime    core.RuntimeConfig
	cfg        config.DuelConfig
	cpuEnabled bool

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a duel game with the given configuration.
func New(cfg config.DuelConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "duel"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Duel"
}

// SetCPUEnabled controls whether the right-side player is CPU-driven.
// Takes effect on the next Reset.
func (g *Game) SetCPUEnabled(enabled bool) {
	g.cpuEnabled = enabled
}

// CPUEnabled reports whether the right-side player is CPU-driven.
func (g *Game) CPUEnabled() bool {
	return g.cpu != nil
}

// Reset initializes or restarts the game with a fresh level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Arena plus border plus two HUD rows
	g.minScreenW = g.cfg.Board.Width + 2
	g.minScreenH = g.cfg.Board.Height + 4
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.registry = DefaultPickupRegistry(g.cfg.Pickups.BoostDuration, g.cfg.Pickups.DebuffDuration)
	g.level = GenerateLevel(&g.cfg, g.registry, g.rng)

	p1x, p1y, p2x, p2y := StartPositions(&g.cfg)
	g.p1 = NewPlayer(core.Player1, p1x, p1y, &g.cfg)
	g.p2 = NewPlayer(core.Player2, p2x, p2y, &g.cfg)

	if g.cpuEnabled {
		g.cpu = NewCPUPlayer(g.cfg.CPU, g.cfg.Shooting.FireRate, g.rng)
	} else {
		g.cpu = nil
	}

	g.clock = 0
	g.matchStart = 0
	g.match = NewMatch(g.cfg.Rounds, g.clock)
}

// Step advances the simulation by dt seconds with the given inputs.
//
// Within a live round the order is fixed: shields, shooting, movement,
// projectile resolution, win check, pickup collection. The win check
// runs before pickups so a round cannot be decided and modified in the
// same tick.
func (g *Game) Step(dt float64, in core.InputFrame) {
	if g.screenTooSmall {
		return
	}

	g.clock += dt
	now := g.clock

	if g.match.MatchOver {
		if in.Command == core.CommandRestart {
			g.restartMatch(now)
		}
		return
	}
	if g.match.RoundOver {
		if in.Command == core.CommandContinue {
			g.nextRound(now)
		}
		return
	}

	p1in := in.Intent(core.Player1)
	p2in := in.Intent(core.Player2)
	if g.cpu != nil {
		p2in = g.cpu.Intent(g.p2, g.p1, float64(g.cfg.Board.Width), now)
	}

	// Shields may be raised during the countdown already
	g.p1.ShieldActive = p1in.Shield
	g.p2.ShieldActive = p2in.Shield

	if g.match.CountdownActive {
		g.match.UpdateCountdown(now)
		return
	}

	if p1in.Shoot {
		g.p1.Shoot(now)
	}
	if p2in.Shoot {
		g.p2.Shoot(now)
	}

	speed := g.cfg.Board.PlayerSpeed
	g.p1.Move(p1in.MoveX*speed, p1in.MoveY*speed, dt, now, g.p2, g.level.Walls)
	g.p2.Move(p2in.MoveX*speed, p2in.MoveY*speed, dt, now, g.p1, g.level.Walls)

	g.p1.UpdateProjectiles(dt, now, g.p2, g.level.Walls)
	g.p2.UpdateProjectiles(dt, now, g.p1, g.level.Walls)

	if g.p1.Progress() >= 100 {
		g.match.RecordRoundWin(core.Player1)
		return
	}
	if g.p2.Progress() >= 100 {
		g.match.RecordRoundWin(core.Player2)
		return
	}

	g.collectPickups(now)
}

// collectPickups resolves pickup collection, checking Player1 first when
// both players touch the same pickup in one tick.
func (g *Game) collectPickups(now float64) {
	kept := g.level.Pickups[:0]
	for _, pk := range g.level.Pickups {
		switch {
		case pk.Rect().Intersects(g.p1.Rect()):
			pk.Apply(g.p1, g.p2, now)
		case pk.Rect().Intersects(g.p2.Rect()):
			pk.Apply(g.p2, g.p1, now)
		default:
			kept = append(kept, pk)
		}
	}
	g.level.Pickups = kept
}

// nextRound starts the following round on the same level. Players return
// to their spawns with all effects cleared; remaining pickups stay.
func (g *Game) nextRound(now float64) {
	g.p1.Reset()
	g.p2.Reset()
	if g.cpu != nil {
		g.cpu.Reset()
	}
	g.match.ResetRound(now)
}

// restartMatch begins a fresh match with a newly generated level.
// The simulation clock keeps running; matchStart marks the boundary.
func (g *Game) restartMatch(now float64) {
	g.matchStart = now
	g.level = GenerateLevel(&g.cfg, g.registry, g.rng)
	g.p1.Reset()
	g.p2.Reset()
	if g.cpuEnabled {
		g.cpu = NewCPUPlayer(g.cfg.CPU, g.cfg.Shooting.FireRate, g.rng)
	}
	g.match.ResetMatch(now)
}

// State returns the current phase as one of the State constants.
func (g *Game) State() string {
	switch {
	case g.match.MatchOver:
		return StateMatchOver
	case g.match.RoundOver:
		return StateRoundOver
	case g.match.CountdownActive:
		return StateCountdown
	default:
		return StatePlaying
	}
}

// Clock returns the current simulation time in seconds.
func (g *Game) Clock() float64 {
	return g.clock
}

// MatchElapsed returns the seconds played in the current match.
func (g *Game) MatchElapsed() float64 {
	return g.clock - g.matchStart
}

// Player returns the player with the given ID.
func (g *Game) Player(id core.PlayerID) *Player {
	if id == core.Player1 {
		return g.p1
	}
	return g.p2
}

// Match returns the round and score bookkeeping.
func (g *Game) Match() *Match {
	return g.match
}

// Level returns the generated arena layout.
func (g *Game) Level() *Level {
	return g.level
}
