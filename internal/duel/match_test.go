package duel

import (
	"testing"

	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/core"
)

func testRounds() config.RoundsConfig {
	return config.RoundsConfig{RoundsToWin: 3, CountdownTicks: 3, CountdownDuration: 2.0}
}

func TestCountdownCadence(t *testing.T) {
	m := NewMatch(testRounds(), 0)

	if !m.CountdownActive {
		t.Fatal("countdown should start active")
	}
	if m.CountdownLabel() != "3" {
		t.Errorf("expected label 3, got %q", m.CountdownLabel())
	}

	// 4 steps (3, 2, 1, GO) over 2 seconds: one step every 0.5s
	if m.UpdateCountdown(0.4) {
		t.Error("countdown completed too early")
	}
	m.UpdateCountdown(0.5)
	if m.CountdownLabel() != "2" {
		t.Errorf("expected label 2 at t=0.5, got %q", m.CountdownLabel())
	}
	m.UpdateCountdown(1.0)
	m.UpdateCountdown(1.5)
	if m.CountdownLabel() != "GO!" {
		t.Errorf("expected GO! at t=1.5, got %q", m.CountdownLabel())
	}
	if !m.UpdateCountdown(2.0) {
		t.Error("countdown should complete at t=2.0")
	}
	if m.CountdownActive {
		t.Error("countdown should be inactive after completing")
	}
}

func TestRecordRoundWins(t *testing.T) {
	m := NewMatch(testRounds(), 0)

	m.RecordRoundWin(core.Player1)
	if m.Wins != [2]int{1, 0} || !m.RoundOver || m.MatchOver {
		t.Errorf("after first win: wins=%v roundOver=%v matchOver=%v", m.Wins, m.RoundOver, m.MatchOver)
	}
	if m.CurrentRound != 2 {
		t.Errorf("round counter should advance, got %d", m.CurrentRound)
	}

	m.ResetRound(1.0)
	if m.RoundOver || !m.CountdownActive {
		t.Error("round reset should clear round-over and arm the countdown")
	}

	m.RecordRoundWin(core.Player1)
	if m.MatchOver {
		t.Error("match should not end at 2 wins")
	}
	m.ResetRound(2.0)
	m.RecordRoundWin(core.Player1)
	if !m.MatchOver {
		t.Error("match should end at 3 wins")
	}
	if m.Wins != [2]int{3, 0} {
		t.Errorf("expected final score 3-0, got %v", m.Wins)
	}

	want := []core.PlayerID{core.Player1, core.Player1, core.Player1}
	if len(m.History) != len(want) {
		t.Fatalf("history length %d, want %d", len(m.History), len(want))
	}
	for i, id := range want {
		if m.History[i] != id {
			t.Errorf("history[%d]=%v, want %v", i, m.History[i], id)
		}
	}
	if m.Leader() != core.Player1 {
		t.Errorf("leader should be Player1, got %v", m.Leader())
	}
}

func TestResetMatchClearsEverything(t *testing.T) {
	m := NewMatch(testRounds(), 0)
	m.RecordRoundWin(core.Player2)
	m.RecordRoundWin(core.Player2)
	m.RecordRoundWin(core.Player2)

	m.ResetMatch(5.0)
	if m.Wins != [2]int{0, 0} || len(m.History) != 0 {
		t.Error("match reset should clear score and history")
	}
	if m.MatchOver || m.RoundOver || !m.CountdownActive || m.CurrentRound != 1 {
		t.Error("match reset should rearm round 1 with a countdown")
	}
}

func TestScoreString(t *testing.T) {
	m := NewMatch(testRounds(), 0)
	m.RecordRoundWin(core.Player1)
	m.RecordRoundWin(core.Player2)
	m.RecordRoundWin(core.Player1)
	if got := m.Score(); got != "P1: 2  P2: 1" {
		t.Errorf("unexpected score string %q", got)
	}
}

func TestHistoryString(t *testing.T) {
	m := NewMatch(testRounds(), 0)
	if got := m.HistoryString(); got != "" {
		t.Errorf("expected empty history before any round, got %q", got)
	}

	m.RecordRoundWin(core.Player1)
	m.RecordRoundWin(core.Player2)
	m.RecordRoundWin(core.Player1)
	if got := m.HistoryString(); got != "P1,P2,P1" {
		t.Errorf("unexpected history string %q", got)
	}
}
