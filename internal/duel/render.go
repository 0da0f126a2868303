package duel

import (
	"fmt"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar        = '█'
	WallChar          = '▓'
	CenterlineChar    = '┆'
	ProjectileChar    = '•'
	DeflectedChar     = '◆'
	BoostPickupChar   = '+'
	DebuffPickupChar  = '-'
	ShieldLeftWing    = '('
	ShieldRightWing   = ')'
	ProgressFillChar  = '='
	ProgressEmptyChar = ' '
)

// progressBarWidth is the HUD progress bar length in cells.
const progressBarWidth = 10

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)

	left, top := g.arenaOrigin(dst)
	g.renderArena(dst, left, top)
	g.renderOverlay(dst, left, top)
}

// arenaOrigin returns the screen cell of the arena's top-left tile.
func (g *Game) arenaOrigin(dst *core.Screen) (int, int) {
	left := (dst.Width() - g.cfg.Board.Width) / 2
	if left < 1 {
		left = 1
	}
	return left, 3
}

// renderHUD draws scores, round number and both progress bars.
func (g *Game) renderHUD(dst *core.Screen) {
	p1Score := fmt.Sprintf("P1: %d", g.match.Wins[0])
	dst.DrawTextColored(1, 0, p1Score, core.ColorRed)

	roundText := fmt.Sprintf("Round %d", g.match.CurrentRound)
	if g.match.MatchOver {
		roundText = "Match over"
	}
	dst.DrawTextCentered(0, roundText)

	p2Score := fmt.Sprintf("P2: %d", g.match.Wins[1])
	dst.DrawTextColored(dst.Width()-len(p2Score)-1, 0, p2Score, core.ColorBlue)

	now := g.clock
	p1Line := progressLine(g.p1.Progress(), g.p1.SpeedMultiplier(now))
	dst.DrawTextColored(1, 1, p1Line, core.ColorRed)

	p2Line := progressLine(g.p2.Progress(), g.p2.SpeedMultiplier(now))
	dst.DrawTextColored(dst.Width()-len(p2Line)-1, 1, p2Line, core.ColorBlue)
}

// progressLine builds one player's HUD line: progress bar, percentage
// and current speed multiplier.
func progressLine(progress, multiplier float64) string {
	pct := core.ClampF(progress, 0, 100)
	filled := int(pct / 100 * progressBarWidth)
	bar := make([]rune, progressBarWidth)
	for i := range bar {
		if i < filled {
			bar[i] = ProgressFillChar
		} else {
			bar[i] = ProgressEmptyChar
		}
	}
	return fmt.Sprintf("[%s] %3.0f%% x%.2f", string(bar), pct, multiplier)
}

// renderArena draws the border, centerline, walls, pickups, projectiles
// and both players.
func (g *Game) renderArena(dst *core.Screen, left, top int) {
	boardW := g.cfg.Board.Width
	boardH := g.cfg.Board.Height

	dst.DrawBox(left-1, top-1, boardW+2, boardH+2)

	centerCol := left + boardW/2
	for row := 0; row < boardH; row++ {
		dst.SetColored(centerCol, top+row, CenterlineChar, core.ColorGray)
	}

	for _, wall := range g.level.Walls {
		x := left + int(wall.X)
		y := top + int(wall.Y)
		w := int(wall.W)
		h := int(wall.H)
		for dy := 0; dy < h; dy++ {
			for dx := 0; dx < w; dx++ {
				dst.SetColored(x+dx, y+dy, WallChar, core.ColorGray)
			}
		}
	}

	for _, pk := range g.level.Pickups {
		x := left + int(pk.X)
		y := top + int(pk.Y)
		switch pk.Kind {
		case PickupBoost:
			dst.SetColored(x, y, BoostPickupChar, core.ColorBrightGreen)
		case PickupDebuff:
			dst.SetColored(x, y, DebuffPickupChar, core.ColorMagenta)
		}
	}

	for _, p := range []*Player{g.p1, g.p2} {
		for _, pr := range p.Projectiles {
			x := left + int(pr.X)
			y := top + int(pr.Y)
			if pr.Deflected {
				dst.SetColored(x, y, DeflectedChar, core.ColorBrightYellow)
			} else {
				dst.SetColored(x, y, ProjectileChar, core.ColorYellow)
			}
		}
	}

	g.renderPlayer(dst, g.p1, left, top, core.ColorRed)
	g.renderPlayer(dst, g.p2, left, top, core.ColorBlue)
}

// renderPlayer draws one player, with shield wings when shielding.
func (g *Game) renderPlayer(dst *core.Screen, p *Player, left, top int, color core.Color) {
	x := left + int(p.X)
	y := top + int(p.Y)
	dst.SetColored(x, y, PlayerChar, color)
	if p.ShieldActive {
		dst.SetColored(x-1, y, ShieldLeftWing, color)
		dst.SetColored(x+1, y, ShieldRightWing, color)
	}
}

// renderOverlay draws phase-dependent messages on top of the arena.
func (g *Game) renderOverlay(dst *core.Screen, left, top int) {
	switch g.State() {
	case StateCountdown:
		label := g.match.CountdownLabel()
		row := top + g.cfg.Board.Height/2
		col := left + (g.cfg.Board.Width-len(label))/2
		dst.DrawTextColored(col, row, label, core.ColorBrightYellow)

	case StateRoundOver:
		winner := "P1"
		if n := len(g.match.History); n > 0 && g.match.History[n-1] == core.Player2 {
			winner = "P2"
		}
		title := fmt.Sprintf("%s WINS ROUND %d", winner, g.match.CurrentRound-1)
		g.drawCenteredBox(dst, title, "Press SPACE for next round")

	case StateMatchOver:
		winner := "P1"
		if g.match.Leader() == core.Player2 {
			winner = "P2"
		}
		title := fmt.Sprintf("%s WINS THE MATCH %d-%d", winner, g.match.Wins[0], g.match.Wins[1])
		g.drawCenteredBox(dst, title, "Press R to restart, Q to quit")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
