package duel

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/core"
)

const testDT = 1.0 / 60.0

func testGameConfig() config.DuelConfig {
	cfg := config.DefaultDuelConfig()
	cfg.Walls.Enabled = false
	cfg.Pickups.Enabled = false
	cfg.Rounds.CountdownTicks = 0
	cfg.Rounds.CountdownDuration = 0
	return cfg
}

func newTestGame(t *testing.T, cfg config.DuelConfig) *Game {
	t.Helper()
	g := New(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 1})
	return g
}

// stepIdle advances the game with no input, clearing the countdown.
func stepIdle(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(testDT, core.InputFrame{})
	}
}

func TestGameStartsInCountdown(t *testing.T) {
	g := newTestGame(t, testGameConfig())
	if g.State() != StateCountdown {
		t.Errorf("expected countdown at start, got %q", g.State())
	}
	stepIdle(g, 1)
	if g.State() != StatePlaying {
		t.Errorf("expected playing after zero-length countdown, got %q", g.State())
	}
}

func TestNoMovementDuringCountdown(t *testing.T) {
	cfg := testGameConfig()
	cfg.Rounds.CountdownTicks = 3
	cfg.Rounds.CountdownDuration = 2.0
	g := newTestGame(t, cfg)

	in := core.InputFrame{P1: core.Intent{MoveX: 1}}
	g.Step(testDT, in)
	if g.Player(core.Player1).X != 0 {
		t.Error("players must not move during countdown")
	}
	if g.State() != StateCountdown {
		t.Errorf("countdown should still be running, got %q", g.State())
	}
}

func TestShieldAllowedDuringCountdown(t *testing.T) {
	cfg := testGameConfig()
	cfg.Rounds.CountdownTicks = 3
	cfg.Rounds.CountdownDuration = 2.0
	g := newTestGame(t, cfg)

	g.Step(testDT, core.InputFrame{P1: core.Intent{Shield: true}})
	if !g.Player(core.Player1).ShieldActive {
		t.Error("shield should be raisable during countdown")
	}
}

func TestMovementInput(t *testing.T) {
	g := newTestGame(t, testGameConfig())
	stepIdle(g, 1)

	start := g.Player(core.Player1).X
	g.Step(testDT, core.InputFrame{P1: core.Intent{MoveX: 1}})
	moved := g.Player(core.Player1).X - start
	want := g.cfg.Board.PlayerSpeed * testDT
	if !almostEqual(moved, want) {
		t.Errorf("expected p1 to move %v, moved %v", want, moved)
	}
}

func TestRoundWinOnCenterline(t *testing.T) {
	g := newTestGame(t, testGameConfig())
	stepIdle(g, 1)

	// Park p1's leading edge on the centerline and let the win check run
	g.Player(core.Player1).X = float64(g.cfg.Board.Width)/2 - 1
	g.Step(testDT, core.InputFrame{})

	if g.State() != StateRoundOver {
		t.Fatalf("expected round over, got %q", g.State())
	}
	if g.Match().Wins != [2]int{1, 0} {
		t.Errorf("expected 1-0, got %v", g.Match().Wins)
	}
}

func TestFullMatchFlow(t *testing.T) {
	g := newTestGame(t, testGameConfig())
	winTarget := float64(g.cfg.Board.Width)/2 - 1

	for round := 1; round <= 3; round++ {
		stepIdle(g, 1) // Clear countdown
		g.Player(core.Player1).X = winTarget
		g.Step(testDT, core.InputFrame{})

		if round < 3 {
			if g.State() != StateRoundOver {
				t.Fatalf("round %d: expected round over, got %q", round, g.State())
			}
			// Continue to the next round; players return to spawn
			g.Step(testDT, core.InputFrame{Command: core.CommandContinue})
			if g.Player(core.Player1).X != 0 {
				t.Error("continue should return players to their spawns")
			}
		}
	}

	if g.State() != StateMatchOver {
		t.Fatalf("expected match over at 3 wins, got %q", g.State())
	}
	m := g.Match()
	if m.Wins != [2]int{3, 0} {
		t.Errorf("expected 3-0, got %v", m.Wins)
	}
	for i, id := range m.History {
		if id != core.Player1 {
			t.Errorf("history[%d]=%v, want Player1", i, id)
		}
	}

	// Ignore stray continue commands once the match is decided
	g.Step(testDT, core.InputFrame{Command: core.CommandContinue})
	if g.State() != StateMatchOver {
		t.Error("continue must not leave the match-over state")
	}

	// Restart begins a fresh match
	g.Step(testDT, core.InputFrame{Command: core.CommandRestart})
	if g.State() != StateCountdown {
		t.Errorf("restart should arm a new countdown, got %q", g.State())
	}
	if g.Match().Wins != [2]int{0, 0} {
		t.Errorf("restart should clear the score, got %v", g.Match().Wins)
	}
}

func TestMatchElapsedResetsOnRestart(t *testing.T) {
	g := newTestGame(t, testGameConfig())
	winTarget := float64(g.cfg.Board.Width)/2 - 1

	for round := 1; round <= 3; round++ {
		stepIdle(g, 1)
		g.Player(core.Player1).X = winTarget
		g.Step(testDT, core.InputFrame{})
		if round < 3 {
			g.Step(testDT, core.InputFrame{Command: core.CommandContinue})
		}
	}
	if g.State() != StateMatchOver {
		t.Fatalf("expected match over, got %q", g.State())
	}

	sessionSoFar := g.Clock()
	g.Step(testDT, core.InputFrame{Command: core.CommandRestart})
	stepIdle(g, 10)

	// The session clock keeps running, the per-match elapsed time does not
	want := 10 * testDT
	if !almostEqual(g.MatchElapsed(), want) {
		t.Errorf("elapsed after restart = %v, want %v", g.MatchElapsed(), want)
	}
	if !almostEqual(g.Clock(), sessionSoFar+11*testDT) {
		t.Errorf("session clock = %v, want %v", g.Clock(), sessionSoFar+11*testDT)
	}
}

func TestCommandsIgnoredMidRound(t *testing.T) {
	g := newTestGame(t, testGameConfig())
	stepIdle(g, 1)

	g.Step(testDT, core.InputFrame{Command: core.CommandRestart})
	if g.State() != StatePlaying || g.Match().CurrentRound != 1 {
		t.Error("restart command must be ignored while a round is live")
	}
}

func TestPickupCollection(t *testing.T) {
	cfg := testGameConfig()
	cfg.Pickups.Enabled = true
	cfg.Pickups.Count = 1
	g := newTestGame(t, cfg)
	stepIdle(g, 1)

	// Replace the generated pickup with a known boost on p1
	p1 := g.Player(core.Player1)
	pk, _ := g.registry.New(PickupBoost, p1.X, p1.Y, 1)
	g.level.Pickups = []*Pickup{pk}

	g.Step(testDT, core.InputFrame{})
	if len(g.level.Pickups) != 0 {
		t.Error("collected pickup should be removed")
	}
	if !p1.Effects.SpedUp(g.Clock()) {
		t.Error("boost pickup should speed up the collector")
	}
}

func TestDebuffPickupSlowsOpponent(t *testing.T) {
	cfg := testGameConfig()
	g := newTestGame(t, cfg)
	stepIdle(g, 1)

	p1 := g.Player(core.Player1)
	p2 := g.Player(core.Player2)
	pk, _ := g.registry.New(PickupDebuff, p1.X, p1.Y, 1)
	g.level.Pickups = []*Pickup{pk}

	g.Step(testDT, core.InputFrame{})
	if p1.Effects.Slowed(g.Clock()) {
		t.Error("debuff must not slow the collector")
	}
	if !p2.Effects.Slowed(g.Clock()) {
		t.Error("debuff should slow the opponent")
	}
}

func TestPickupsPersistAcrossRounds(t *testing.T) {
	cfg := testGameConfig()
	g := newTestGame(t, cfg)
	stepIdle(g, 1)

	pk, _ := g.registry.New(PickupBoost, 20, 3, 1)
	g.level.Pickups = []*Pickup{pk}

	g.Player(core.Player1).X = float64(g.cfg.Board.Width)/2 - 1
	g.Step(testDT, core.InputFrame{})
	g.Step(testDT, core.InputFrame{Command: core.CommandContinue})

	if len(g.level.Pickups) != 1 {
		t.Error("uncollected pickups should persist into the next round")
	}
}

func TestCPUOpponent(t *testing.T) {
	cfg := testGameConfig()
	g := New(cfg)
	g.SetCPUEnabled(true)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 1})
	if !g.CPUEnabled() {
		t.Fatal("CPU should be enabled after reset")
	}
	stepIdle(g, 1)

	// The CPU should race toward the centerline without any P2 input
	start := g.Player(core.Player2).X
	stepIdle(g, 60)
	if g.Player(core.Player2).X >= start {
		t.Errorf("CPU player did not advance: start=%v now=%v", start, g.Player(core.Player2).X)
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := New(testGameConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})
	if !g.screenTooSmall {
		t.Fatal("20x10 should be too small for a 40x20 board")
	}

	// Stepping is a no-op; rendering shows the size hint
	g.Step(testDT, core.InputFrame{})
	if g.Clock() != 0 {
		t.Error("simulation must not advance when the screen is too small")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if screen.String() == "" {
		t.Error("render should still produce output")
	}
}

func TestSnapshotReflectsState(t *testing.T) {
	g := newTestGame(t, testGameConfig())
	stepIdle(g, 1)
	g.Step(testDT, core.InputFrame{P1: core.Intent{MoveX: 1, Shield: false}})

	snap := g.Snapshot()
	if snap.State != StatePlaying {
		t.Errorf("snapshot state %q, want playing", snap.State)
	}
	if snap.Players[0].ID != core.Player1 || snap.Players[1].ID != core.Player2 {
		t.Error("snapshot player order should be P1 then P2")
	}
	if !almostEqual(snap.Players[0].X, g.Player(core.Player1).X) {
		t.Error("snapshot position should match the live player")
	}
	if snap.Players[0].Multiplier < 0 || snap.Players[0].Multiplier > MaxSpeedMultiplier {
		t.Errorf("snapshot multiplier out of bounds: %v", snap.Players[0].Multiplier)
	}
}

func TestRenderDrawsPlayersAndHUD(t *testing.T) {
	cfg := config.DefaultDuelConfig()
	cfg.Rounds.CountdownTicks = 0
	cfg.Rounds.CountdownDuration = 0
	g := newTestGame(t, cfg)
	stepIdle(g, 1)

	screen := core.NewScreen(80, 30)
	g.Render(screen)

	out := screen.String()
	if out == "" {
		t.Fatal("expected render output")
	}
	if !strings.Contains(screen.Row(0), "Round") {
		t.Error("expected the round indicator on the top row")
	}

	// Both players should appear somewhere on the screen
	found := 0
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.Get(x, y) == PlayerChar {
				found++
			}
		}
	}
	if found < 2 {
		t.Errorf("expected both player glyphs on screen, found %d", found)
	}
}
