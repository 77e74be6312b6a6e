package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/stonefruit/tetrad/engine"
)

var (
	backdrop  = color.RGBA{18, 18, 24, 255}
	wellColor = color.RGBA{30, 30, 40, 255}
	gridLine  = color.RGBA{45, 45, 58, 255}

	kindColors = [engine.NumKinds]color.RGBA{
		engine.KindI: {0, 240, 240, 255},
		engine.KindJ: {0, 0, 240, 255},
		engine.KindL: {240, 160, 0, 255},
		engine.KindO: {240, 240, 0, 255},
		engine.KindS: {0, 240, 0, 255},
		engine.KindT: {160, 0, 240, 255},
		engine.KindZ: {240, 0, 0, 255},
	}
)

// Draw renders the current snapshot: the well, locked cells, ghost and
// active piece, the clear flash, and the side panel.
func (a *App) Draw(screen *ebiten.Image) {
	s := a.game.Snapshot()

	screen.Fill(backdrop)
	vector.DrawFilledRect(screen, 0, 0, boardW, boardH, wellColor, false)
	for x := 1; x < engine.Cols; x++ {
		vector.StrokeLine(screen, float32(x*cellSize), 0, float32(x*cellSize), boardH, 1, gridLine, false)
	}

	for y := engine.HiddenRows; y < engine.Rows; y++ {
		for x := 0; x < engine.Cols; x++ {
			if c := s.Cells[y][x]; c != engine.CellEmpty {
				fillCell(screen, x, y-engine.HiddenRows, kindColors[c.Kind()])
			}
		}
	}

	if !s.Over {
		ghost := kindColors[s.ActiveKind]
		for _, c := range s.GhostCells {
			if c[1] >= engine.HiddenRows {
				strokeCell(screen, c[0], c[1]-engine.HiddenRows, ghost)
			}
		}
		for _, c := range s.ActiveCells {
			if c[1] >= engine.HiddenRows {
				fillCell(screen, c[0], c[1]-engine.HiddenRows, kindColors[s.ActiveKind])
			}
		}
	}

	if s.ClearFraction > 0 {
		flash := color.RGBA{255, 255, 255, uint8(200 * s.ClearFraction)}
		for _, row := range s.ClearRows[:s.ClearCount] {
			if row >= engine.HiddenRows {
				vector.DrawFilledRect(screen, 0, float32((row-engine.HiddenRows)*cellSize),
					boardW, cellSize, flash, false)
			}
		}
	}

	a.drawPanel(screen, s)

	if s.Paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", boardW/2-18, boardH/2)
	}
	if s.Over {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", boardW/2-28, boardH/2)
		ebitenutil.DebugPrintAt(screen, "R to restart", boardW/2-36, boardH/2+14)
	}
}

// drawPanel renders scores, the hold box, and the preview stack to the
// right of the well.
func (a *App) drawPanel(screen *ebiten.Image, s engine.Snapshot) {
	px := boardW + 12
	line := 0
	text := func(str string) {
		ebitenutil.DebugPrintAt(screen, str, px, 8+line*14)
		line++
	}

	text(fmt.Sprintf("SCORE %d", s.Score))
	text(fmt.Sprintf("BEST  %d", a.best))
	text(fmt.Sprintf("LINES %d", s.Lines))
	text(fmt.Sprintf("LEVEL %d", s.Level))
	if s.Combo > 0 {
		text(fmt.Sprintf("COMBO x%d", s.Combo))
	} else {
		line++
	}
	if s.B2B {
		text("BACK-TO-BACK")
	} else {
		line++
	}
	if s.LastClear != engine.ClearNone {
		text(s.LastClear.String())
	} else {
		line++
	}

	holdY := 8 + (line+1)*14
	ebitenutil.DebugPrintAt(screen, "HOLD", px, holdY)
	if s.HasHold {
		clr := kindColors[s.HoldKind]
		if s.HoldUsed {
			clr = color.RGBA{100, 100, 100, 255}
		}
		drawMini(screen, s.HoldKind, px, holdY+18, clr)
	}

	nextY := holdY + 18 + 3*cellSize/2
	ebitenutil.DebugPrintAt(screen, "NEXT", px, nextY)
	for i, k := range s.Preview {
		drawMini(screen, k, px, nextY+18+i*3*cellSize/4, kindColors[k])
	}
}

func fillCell(screen *ebiten.Image, x, y int, clr color.RGBA) {
	vector.DrawFilledRect(screen, float32(x*cellSize)+1, float32(y*cellSize)+1,
		cellSize-2, cellSize-2, clr, false)
}

func strokeCell(screen *ebiten.Image, x, y int, clr color.RGBA) {
	vector.StrokeRect(screen, float32(x*cellSize)+1, float32(y*cellSize)+1,
		cellSize-2, cellSize-2, 1, clr, false)
}

// drawMini renders a kind at half scale, for the hold and preview boxes.
func drawMini(screen *ebiten.Image, k engine.Kind, px, py int, clr color.RGBA) {
	const mini = cellSize / 2
	for _, c := range engine.KindCells(k) {
		vector.DrawFilledRect(screen,
			float32(px+c[0]*mini)+1, float32(py+(c[1]-1)*mini)+1,
			mini-2, mini-2, clr, false)
	}
}
