package core

// PlayerID identifies one of the two duelists.
type PlayerID int

// Player identifiers. Player1 starts on the left, Player2 on the right.
const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// String returns a human-readable name for the player.
func (id PlayerID) String() string {
	switch id {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "Unknown"
	}
}

// Intent is one player's raw input for a single simulation tick.
// MoveX/MoveY are unit-interval axis values (typically -1, 0 or +1); the
// game scales them by its configured base speed. Shoot is edge-triggered,
// Shield is level-triggered (held).
type Intent struct {
	MoveX  float64
	MoveY  float64
	Shoot  bool
	Shield bool
}

// Command is a lifecycle request delivered alongside per-tick intents.
// Commands sent in the wrong phase are ignored by the game.
type Command int

const (
	CommandNone     Command = iota
	CommandContinue // Advance past a finished round (valid in RoundOver)
	CommandRestart  // Start a fresh match (valid in MatchOver)
)

// InputFrame carries both players' intents and any lifecycle command
// for a single simulation tick.
type InputFrame struct {
	P1      Intent
	P2      Intent
	Command Command
}

// Intent returns the intent for the given player.
func (f InputFrame) Intent(id PlayerID) Intent {
	if id == Player1 {
		return f.P1
	}
	return f.P2
}

// Clear resets edge-triggered fields for the next frame, preserving
// level-triggered shield state.
func (f *InputFrame) Clear() {
	f.P1.MoveX, f.P1.MoveY, f.P1.Shoot = 0, 0, false
	f.P2.MoveX, f.P2.MoveY, f.P2.Shoot = 0, 0, false
	f.Command = CommandNone
}
