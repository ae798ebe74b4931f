package crush

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-crush/internal/core"
	"github.com/vovakirdan/tui-crush/internal/games/crush/core"
)

// Cell sizes tried from largest to smallest. Terminal cells are about twice
// as tall as wide, so a cell is twice as wide as it is tall.
var cellSizes = []struct{ w, h int }{
	{6, 3},
	{4, 2},
	{2, 1},
}

const (
	helpHeight = 1

	candyRune    = '█'
	selectedRune = '▒'
	bombRune     = '✹'
	flashRune    = '✦'
	emptyRune    = '·'
)

// tokenColors maps candy colors to screen colors.
var tokenColors = map[core.Color]platformcore.Color{
	core.ColorRed:    platformcore.ColorRed,
	core.ColorYellow: platformcore.ColorYellow,
	core.ColorGreen:  platformcore.ColorGreen,
	core.ColorBlue:   platformcore.ColorBlue,
	core.ColorPurple: platformcore.ColorMagenta,
	core.ColorOrange: platformcore.ColorOrange,
	core.ColorCyan:   platformcore.ColorCyan,
	core.ColorWhite:  platformcore.ColorWhite,
}

// calculateLayout picks the largest cell size whose board fits the screen
// and centers the board below the HUD.
func (g *Game) calculateLayout() {
	width := g.session.Width()
	g.tooSmall = true

	for _, size := range cellSizes {
		boardW := width*size.w + 1
		boardH := width * size.h
		if boardW+2 > g.screenW || boardH+2+g.hudHeight+helpHeight > g.screenH {
			continue
		}
		g.cellW = size.w
		g.cellH = size.h
		g.boardX = (g.screenW - boardW) / 2
		g.boardY = g.hudHeight + 1
		g.tooSmall = false
		return
	}
}

// boardRect returns the screen area covered by the cells.
func (g *Game) boardRect() platformcore.Rect {
	width := g.session.Width()
	return platformcore.NewRect(g.boardX, g.boardY, width*g.cellW, width*g.cellH)
}

// cellAt returns the board cell under screen position (x, y), or -1.
func (g *Game) cellAt(x, y int) int {
	if g.tooSmall || g.cellW == 0 || g.cellH == 0 || !g.boardRect().Contains(x, y) {
		return -1
	}
	col := (x - g.boardX) / g.cellW
	row := (y - g.boardY) / g.cellH
	return row*g.session.Width() + col
}

// cellRect returns the screen area of a cell. The first column and, for
// cells taller than one line, the last line are the gap to the neighbors.
func (g *Game) cellRect(cell int) platformcore.Rect {
	width := g.session.Width()
	x := g.boardX + (cell%width)*g.cellW
	y := g.boardY + (cell/width)*g.cellH
	h := g.cellH
	if h > 1 {
		h--
	}
	return platformcore.NewRect(x+1, y, g.cellW-1, h)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderHelp(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and timers.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	dst.DrawTextCenteredWithColor(0, g.Title(), platformcore.ColorBrightMagenta)

	boardW := g.session.Width()*g.cellW + 1
	left := g.boardX - 1
	right := g.boardX + boardW + 1

	score := fmt.Sprintf("Score: %d", g.session.Score())
	dst.DrawTextWithColor(left, 1, score, platformcore.ColorBrightWhite)

	chain := fmt.Sprintf("Best chain: %d", g.stats.BestChain)
	dst.DrawText(right-len(chain), 1, chain)

	var bomb string
	if g.session.BombPresent() {
		bomb = "Bomb on board!"
		dst.DrawTextWithColor(left, 2, bomb, platformcore.ColorBrightRed)
	} else {
		secs := (g.bombTimer.Remaining() + g.tickRate - 1) / g.tickRate
		bomb = fmt.Sprintf("Bomb in %ds", secs)
		dst.DrawTextWithColor(left, 2, bomb, platformcore.ColorGray)
	}

	if g.mode == ModeBlitz {
		secs := (g.clock.Left() + g.tickRate - 1) / g.tickRate
		clock := fmt.Sprintf("Time %d:%02d", secs/60, secs%60)
		c := platformcore.ColorBrightWhite
		if secs <= 10 {
			c = platformcore.ColorBrightRed
		}
		dst.DrawTextWithColor(right-len(clock), 2, clock, c)
	} else if g.lastPoints > 0 {
		last := fmt.Sprintf("+%d", g.lastPoints)
		dst.DrawTextWithColor(right-len(last), 2, last, platformcore.ColorBrightGreen)
	}
}

// renderBoard draws the frame, the tokens and the cursor.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	width := g.session.Width()
	frame := platformcore.NewRect(g.boardX-1, g.boardY-1, width*g.cellW+3, width*g.cellH+2)
	if g.cellH > 1 {
		frame.H--
	}
	dst.DrawBox(frame, platformcore.ColorGray)

	for cell := 0; cell < width*width; cell++ {
		g.renderCell(dst, cell)
	}
	g.renderCursor(dst)
}

// renderCell draws one token.
func (g *Game) renderCell(dst *platformcore.Screen, cell int) {
	r := g.cellRect(cell)
	tok := g.session.Token(cell)

	if _, ok := g.flash.Get(cell); ok {
		dst.DrawRect(r, flashRune, platformcore.ColorBrightWhite)
		return
	}

	switch {
	case tok.IsEmpty():
		cx, cy := r.Center()
		dst.SetWithColor(cx, cy, emptyRune, platformcore.ColorGray)
	case tok.IsBomb():
		dst.DrawRect(r, bombRune, platformcore.ColorBrightRed)
	default:
		c, _ := tok.Color()
		color := tokenColors[c]
		ch := candyRune
		if cell == g.selected {
			ch = selectedRune
			color = color.Bright()
		}
		dst.DrawRect(r, ch, color)
	}
}

// renderCursor brackets the cursor cell in the gap columns around it.
func (g *Game) renderCursor(dst *platformcore.Screen) {
	r := g.cellRect(g.cursor)
	color := platformcore.ColorBrightWhite
	if g.selected >= 0 {
		color = platformcore.ColorBrightYellow
	}
	for y := r.Y; y < r.Bottom(); y++ {
		dst.SetWithColor(r.X-1, y, '[', color)
		dst.SetWithColor(r.Right(), y, ']', color)
	}
}

// renderHelp draws the control hints below the board.
func (g *Game) renderHelp(dst *platformcore.Screen) {
	y := g.screenH - 1
	dst.DrawTextCenteredWithColor(y, g.Controls(), platformcore.ColorGray)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *platformcore.Screen) {
	width := g.session.Width()
	centerX := g.boardX + (width*g.cellW)/2
	centerY := g.boardY + (width*g.cellH)/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		score := fmt.Sprintf("Final score: %d", g.session.Score())
		g.drawOverlay(dst, centerX, centerY, "TIME UP", score, "Press R to restart")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := platformcore.NewRect(0, 0, maxLen+4, len(lines)+2)
	box.X = centerX - box.W/2
	box.Y = centerY - box.H/2

	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, platformcore.ColorBrightWhite)
	for i, line := range lines {
		dst.DrawTextWithColor(centerX-len(line)/2, box.Y+1+i, line, platformcore.ColorBrightWhite)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Space: Pick/Swap | Enter: Bomb | P: Pause | Q: Quit"
}
