package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// keyMap defines the bindings for both players plus lifecycle keys.
// Player 1 plays on WASD with v/b, Player 2 on the arrow keys with ,/.
// Shields are toggles since terminals deliver no key-release events.
type keyMap struct {
	P1Up     key.Binding
	P1Down   key.Binding
	P1Left   key.Binding
	P1Right  key.Binding
	P1Shoot  key.Binding
	P1Shield key.Binding

	P2Up     key.Binding
	P2Down   key.Binding
	P2Left   key.Binding
	P2Right  key.Binding
	P2Shoot  key.Binding
	P2Shield key.Binding

	Continue key.Binding
	Restart  key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		P1Up:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w/a/s/d", "p1 move")),
		P1Down:   key.NewBinding(key.WithKeys("s")),
		P1Left:   key.NewBinding(key.WithKeys("a")),
		P1Right:  key.NewBinding(key.WithKeys("d")),
		P1Shoot:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "p1 shoot")),
		P1Shield: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "p1 shield")),

		P2Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("arrows", "p2 move")),
		P2Down:   key.NewBinding(key.WithKeys("down")),
		P2Left:   key.NewBinding(key.WithKeys("left")),
		P2Right:  key.NewBinding(key.WithKeys("right")),
		P2Shoot:  key.NewBinding(key.WithKeys(","), key.WithHelp(",", "p2 shoot")),
		P2Shield: key.NewBinding(key.WithKeys("."), key.WithHelp(".", "p2 shield")),

		Continue: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "next round")),
		Restart:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap for the one-line help bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1Up, k.P1Shoot, k.P1Shield, k.P2Up, k.P2Shoot, k.P2Shield, k.Quit}
}

// FullHelp implements help.KeyMap for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Up, k.P1Shoot, k.P1Shield},
		{k.P2Up, k.P2Shoot, k.P2Shield},
		{k.Continue, k.Restart, k.Quit},
	}
}

// applyKey updates the pending input frame from a key press.
// Returns true if the key was a quit request. Shield keys are handled by
// the model since they toggle persistent state.
func (k keyMap) applyKey(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch {
	case key.Matches(msg, k.Quit):
		return true

	case key.Matches(msg, k.P1Up):
		frame.P1.MoveY = -1
	case key.Matches(msg, k.P1Down):
		frame.P1.MoveY = 1
	case key.Matches(msg, k.P1Left):
		frame.P1.MoveX = -1
	case key.Matches(msg, k.P1Right):
		frame.P1.MoveX = 1
	case key.Matches(msg, k.P1Shoot):
		frame.P1.Shoot = true

	case key.Matches(msg, k.P2Up):
		frame.P2.MoveY = -1
	case key.Matches(msg, k.P2Down):
		frame.P2.MoveY = 1
	case key.Matches(msg, k.P2Left):
		frame.P2.MoveX = -1
	case key.Matches(msg, k.P2Right):
		frame.P2.MoveX = 1
	case key.Matches(msg, k.P2Shoot):
		frame.P2.Shoot = true

	case key.Matches(msg, k.Continue):
		frame.Command = core.CommandContinue
	case key.Matches(msg, k.Restart):
		frame.Command = core.CommandRestart
	}
	return false
}
