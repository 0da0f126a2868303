package duel

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/core"
)

// Match tracks rounds, scores and the pre-round countdown across a
// best-of series. All times are simulation-clock seconds.
type Match struct {
	Wins         [2]int
	CurrentRound int
	History      []core.PlayerID
	MatchOver    bool
	RoundOver    bool

	CountdownActive bool
	countdownTicks  int
	lastCountdownAt float64

	cfg config.RoundsConfig
}

// NewMatch creates a match and arms the first round's countdown.
func NewMatch(cfg config.RoundsConfig, now float64) *Match {
	m := &Match{cfg: cfg}
	m.ResetMatch(now)
	return m
}

// ResetMatch clears all match state and starts the countdown.
func (m *Match) ResetMatch(now float64) {
	m.Wins = [2]int{}
	m.CurrentRound = 1
	m.History = m.History[:0]
	m.MatchOver = false
	m.RoundOver = false
	m.startCountdown(now)
}

// ResetRound prepares the next round, keeping the match score.
func (m *Match) ResetRound(now float64) {
	m.RoundOver = false
	m.startCountdown(now)
}

func (m *Match) startCountdown(now float64) {
	m.CountdownActive = true
	m.countdownTicks = m.cfg.CountdownTicks
	m.lastCountdownAt = now
}

// UpdateCountdown advances the countdown. The sequence has
// CountdownTicks+1 steps (the numbers plus "GO"), spread evenly across
// CountdownDuration. Returns true on the tick the countdown completes.
func (m *Match) UpdateCountdown(now float64) bool {
	if !m.CountdownActive {
		return false
	}
	stepLen := m.cfg.CountdownDuration / float64(m.cfg.CountdownTicks+1)
	if now-m.lastCountdownAt >= stepLen {
		m.countdownTicks--
		m.lastCountdownAt = now
		if m.countdownTicks < 0 {
			m.CountdownActive = false
			return true
		}
	}
	return false
}

// CountdownLabel returns the text to display for the current countdown
// step: the remaining number, or "GO!" on the final step.
func (m *Match) CountdownLabel() string {
	if m.countdownTicks <= 0 {
		return "GO!"
	}
	return fmt.Sprintf("%d", m.countdownTicks)
}

// RecordRoundWin credits a round to the winner and checks for match
// victory. The round counter advances even for the final round, so the
// displayed round number always counts played rounds plus one.
func (m *Match) RecordRoundWin(winner core.PlayerID) {
	idx := 0
	if winner == core.Player2 {
		idx = 1
	}
	m.Wins[idx]++
	m.History = append(m.History, winner)
	m.RoundOver = true

	if m.Wins[idx] >= m.cfg.RoundsToWin {
		m.MatchOver = true
	}
	m.CurrentRound++
}

// Leader returns the player with more round wins, or 0 on a tie.
func (m *Match) Leader() core.PlayerID {
	switch {
	case m.Wins[0] > m.Wins[1]:
		return core.Player1
	case m.Wins[1] > m.Wins[0]:
		return core.Player2
	default:
		return 0
	}
}

// Score returns the current match score as a display string.
func (m *Match) Score() string {
	return fmt.Sprintf("P1: %d  P2: %d", m.Wins[0], m.Wins[1])
}

// HistoryString returns the round-winner sequence as a comma-separated
// string, e.g. "P1,P1,P2".
func (m *Match) HistoryString() string {
	names := make([]string, len(m.History))
	for i, id := range m.History {
		names[i] = id.String()
	}
	return strings.Join(names, ",")
}
