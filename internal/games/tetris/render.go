package tetris

import (
	"fmt"

	"github.com/vovakirdan/blockdrop/internal/core"
)

const (
	blockRune = '█'
	emptyRune = '·'
)

// Render draws the board, the HUD sidebar and any state overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		minW, minH := g.MinSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Resize to at least %dx%d", minW, minH))
		return
	}

	v := g.engine.View()
	boardW := v.Width*cellWidth + 2
	boardH := v.Height + 2
	totalW := boardW + sidebarGap + sidebarWidth

	ox := (dst.Width() - totalW) / 2
	oy := 1 + (dst.Height()-boardH-1)/2
	if oy < 1 {
		oy = 1
	}

	dst.DrawTextCentered(oy-1, "T E T R I S")
	g.renderBoard(dst, v, core.NewRect(ox, oy, boardW, boardH))
	g.renderSidebar(dst, v, ox+boardW+sidebarGap, oy)

	switch {
	case !v.Started:
		g.renderOverlay(dst, "Press Enter to start", "←→ move  ↑ rotate  ↓ drop")
	case v.GameOver:
		line2 := fmt.Sprintf("Score %d  Lines %d", v.Score, v.Lines)
		if g.newBest {
			line2 = fmt.Sprintf("New best! %d", v.Score)
		}
		g.renderOverlay(dst, "Game Over", line2, "Enter: play again")
	case v.Paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderBoard(dst *core.Screen, v View, box core.Rect) {
	dst.DrawBox(box)
	cells := v.Composite()
	for y, row := range cells {
		for x, c := range row {
			sx := box.X + 1 + x*cellWidth
			sy := box.Y + 1 + y
			if c == Empty {
				dst.SetColored(sx, sy, ' ', core.ColorGray)
				dst.SetColored(sx+1, sy, emptyRune, core.ColorGray)
				continue
			}
			color := c.Kind().Color()
			dst.SetColored(sx, sy, blockRune, color)
			dst.SetColored(sx+1, sy, blockRune, color)
		}
	}
}

func (g *Game) renderSidebar(dst *core.Screen, v View, x, y int) {
	line := y
	field := func(label string, value int) {
		dst.DrawTextColored(x, line, label, core.ColorGray)
		dst.DrawText(x, line+1, fmt.Sprintf("%d", value))
		line += 3
	}
	field("SCORE", v.Score)
	field("LINES", v.Lines)
	field("LEVEL", v.Level)
	field("BEST", g.highScore)

	dst.DrawTextColored(x, line, "NEXT", core.ColorGray)
	line++
	if v.Next != nil {
		p := NewPiece(*v.Next)
		color := p.Kind.Color()
		for r, row := range p.Shape {
			for c, filled := range row {
				if filled {
					dst.SetColored(x+c*cellWidth, line+r, blockRune, color)
					dst.SetColored(x+c*cellWidth+1, line+r, blockRune, color)
				}
			}
		}
	}
	line += 3

	if line+1 < y+v.Height+2 {
		dst.DrawTextColored(x, line, "P pause  R new", core.ColorGray)
		dst.DrawTextColored(x, line+1, "Q quit", core.ColorGray)
	}
}

// renderOverlay draws a centered box holding the given lines.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > maxLen {
			maxLen = n
		}
	}
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(maxLen+4, len(lines)*2+1)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i*2, l, core.ColorBrightWhite)
	}
}
