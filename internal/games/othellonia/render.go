package othellonia

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-othellonia/internal/core"
	"github.com/vovakirdan/tui-othellonia/internal/match"
	"github.com/vovakirdan/tui-othellonia/internal/othello"
)

const (
	cellWidth  = 4 // columns per board square
	cellHeight = 2 // rows per board square

	boardW = othello.Size*cellWidth + 2 // +2 for the frame
	boardH = othello.Size*cellHeight + 1

	panelGap   = 3
	panelWidth = 34
	lifeBarLen = 12

	minWidth  = 2 + boardW + panelGap + panelWidth
	minHeight = boardH + 5
)

// Board glyphs.
const (
	stoneRune  = '●'
	placedRune = '◉'
	hintRune   = '·'
	threatRune = '!'
)

// Render draws the board, the side panel and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	if g.screenW < minWidth || g.screenH < minHeight {
		g.renderTooSmall(dst)
		return
	}

	st := g.session.State()

	originX := max(0, (g.screenW-minWidth)/2)
	boardX := originX + 2
	boardY := 2

	dst.DrawTextCentered(0, g.Title(), core.ColorBrightWhite)

	g.renderBoard(dst, st, boardX, boardY)
	g.renderPanel(dst, st, boardX+boardW+panelGap, boardY)
	g.renderFooter(dst, st, boardX, boardY+boardH+1)

	if st.Over {
		g.renderResult(dst, st.Result, boardY)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorBrightRed)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", minWidth, minHeight, g.screenW, g.screenH), core.ColorGray)
}

// squareOrigin returns the top-left screen cell of a board square.
func squareOrigin(boardX, boardY int, p othello.Pos) (int, int) {
	return boardX + 1 + p.Col*cellWidth, boardY + 1 + p.Row*cellHeight
}

func (g *Game) renderBoard(dst *core.Screen, st match.State, boardX, boardY int) {
	frame := core.NewRect(boardX, boardY, boardW, boardH+1)
	dst.DrawBox(frame, core.ColorGray)

	for c := range othello.Size {
		x, _ := squareOrigin(boardX, boardY, othello.Pos{Col: c})
		dst.DrawColorText(x+1, boardY-1, fmt.Sprint(c), core.ColorGray)
	}
	for r := range othello.Size {
		_, y := squareOrigin(boardX, boardY, othello.Pos{Row: r})
		dst.DrawColorText(boardX-2, y, fmt.Sprint(r), core.ColorGray)
	}

	hints := g.hints()
	for r := range othello.Size {
		for c := range othello.Size {
			p := othello.Pos{Row: r, Col: c}
			g.renderSquare(dst, st.Board.At(p), p, hints, boardX, boardY)
		}
	}
}

// hints maps each legal square to its threat flag for the side to move.
// Hints are hidden while the computer is to act.
func (g *Game) hints() map[othello.Pos]bool {
	if !g.cfg.UI.ShowHints || !g.session.HumanToAct() {
		return nil
	}
	out := make(map[othello.Pos]bool)
	for _, m := range g.session.LegalMoves() {
		out[m.Pos] = g.cfg.UI.ShowThreats && m.IsThreat()
	}
	return out
}

func (g *Game) renderSquare(dst *core.Screen, cell othello.Cell, p othello.Pos, hints map[othello.Pos]bool, boardX, boardY int) {
	x, y := squareOrigin(boardX, boardY, p)

	bg := core.ColorDarkGreen
	if p.IsCorner() {
		bg = core.ColorGreen
	}
	dst.DrawRect(core.NewRect(x, y, cellWidth, cellHeight), core.Cell{Rune: ' ', BG: bg})

	glyph := core.Cell{Rune: ' ', BG: bg}
	switch {
	case !cell.Empty():
		glyph.Rune = stoneRune
		if cell.Provenance == othello.Placed {
			glyph.Rune = placedRune
		}
		glyph.FG = core.ColorBlack
		if cell.Color == othello.White {
			glyph.FG = core.ColorBrightWhite
		}
	default:
		if threat, ok := hints[p]; ok {
			glyph.Rune = hintRune
			glyph.FG = core.ColorBrightYellow
			if threat {
				glyph.Rune = threatRune
				glyph.FG = core.ColorBrightRed
			}
		}
	}
	dst.SetCell(x+1, y, glyph)

	if p == g.cursor && !g.session.State().Over {
		dst.SetCell(x, y, core.Cell{Rune: '[', FG: core.ColorYellow, BG: bg})
		dst.SetCell(x+2, y, core.Cell{Rune: ']', FG: core.ColorYellow, BG: bg})
	}
}

func (g *Game) renderPanel(dst *core.Screen, st match.State, x, y int) {
	dst.DrawColorText(x, y, fmt.Sprintf("Turn %d", st.Turn), core.ColorBrightWhite)
	dst.DrawColorText(x+10, y, modeLabel(g.session), core.ColorGray)

	g.renderLife(dst, st, othello.Black, x, y+2)
	g.renderLife(dst, st, othello.White, x, y+3)

	stones := fmt.Sprintf("Stones  %s %d  %s %d",
		othello.Black.Icon(), st.Board.CountColor(othello.Black),
		othello.White.Icon(), st.Board.CountColor(othello.White))
	dst.DrawColorText(x, y+5, stones, core.ColorGray)

	logY := y + 7
	lines := max(1, min(g.cfg.UI.LogLines, g.screenH-logY-2))
	box := core.NewRect(x, logY, panelWidth, lines+2)
	dst.DrawBox(box, core.ColorGray)
	dst.DrawColorText(x+2, logY, " Battle log ", core.ColorWhite)

	for i, entry := range newestFirst(st.Log, lines) {
		fg := core.ColorWhite
		if entry.Threat {
			fg = core.ColorOrange
		}
		dst.DrawColorText(x+2, logY+1+i, entry.String(), fg)
	}
}

func (g *Game) renderLife(dst *core.Screen, st match.State, c othello.Color, x, y int) {
	marker := "  "
	if !st.Over && st.Active == c {
		marker = "> "
	}
	life := st.Life(c)
	start := g.cfg.Match.StartingLife
	filled := 0
	if start > 0 {
		filled = core.Clamp((life*lifeBarLen+start-1)/start, 0, lifeBarLen)
	}

	fg := core.ColorBrightGreen
	switch {
	case life*4 <= start:
		fg = core.ColorBrightRed
	case life*2 <= start:
		fg = core.ColorBrightYellow
	}

	n := dst.DrawColorText(x, y, fmt.Sprintf("%s%s %-5s %6d ", marker, c.Icon(), title(c), life), core.ColorWhite)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", lifeBarLen-filled)
	dst.DrawColorText(x+n, y, bar, fg)
}

func (g *Game) renderFooter(dst *core.Screen, st match.State, x, y int) {
	status := g.status(st)
	fg := core.ColorBrightWhite
	if !st.Over && g.session.Phase() == match.PhasePassed && g.session.HumanToAct() {
		status += ": press p to confirm"
		fg = core.ColorBrightYellow
	}
	dst.DrawColorText(x, y, status, fg)
	if g.message != "" {
		dst.DrawColorText(x, y+1, g.message, core.ColorCyan)
	}
}

func (g *Game) renderResult(dst *core.Screen, r match.Result, boardY int) {
	lines := []string{"GAME OVER", r.String(), "r: new match   b: menu"}
	w := 0
	for _, l := range lines {
		w = max(w, core.TextWidth(l))
	}
	w += 4
	h := len(lines) + 2
	x := (g.screenW - w) / 2
	y := boardY + (boardH-h)/2

	box := core.NewRect(x, y, w, h)
	dst.DrawRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, core.ColorBrightYellow)
	for i, l := range lines {
		fg := core.ColorBrightWhite
		if i == 0 {
			fg = core.ColorBrightYellow
		}
		dst.DrawColorText(x+(w-core.TextWidth(l))/2, y+1+i, l, fg)
	}
}

func modeLabel(s *match.Session) string {
	switch s.Mode() {
	case match.ModeVsCPU:
		return fmt.Sprintf("vs computer (%s)", s.CPUColor())
	case match.ModeDemo:
		return "demo"
	default:
		return "two players"
	}
}

// newestFirst returns up to n entries, most recent first.
func newestFirst(log []match.LogEntry, n int) []match.LogEntry {
	out := make([]match.LogEntry, 0, min(n, len(log)))
	for i := len(log) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, log[i])
	}
	return out
}
