// Package render draws the arena and menus onto a tcell screen. The game
// model works in board pixels; the renderer maps every grid cell onto a
// two-column block of terminal cells and rounds sub-cell draw positions
// at the last moment, so interpolation survives the coarse terminal grid.
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kobra/board"
	"github.com/lixenwraith/kobra/component"
	"github.com/lixenwraith/kobra/engine"
	"github.com/lixenwraith/kobra/system"
)

const (
	// Terminal columns per grid cell; rows stay 1:1. Two columns keep
	// cells roughly square on common fonts.
	cellCols = 2
)

// Renderer owns the mapping from board pixels to terminal cells
type Renderer struct {
	screen  tcell.Screen
	b       board.Board
	originX int
	originY int
}

func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Layout centers the arena for the given board on the current terminal
// size. Call it after board changes and on terminal resize.
func (r *Renderer) Layout(b board.Board) {
	r.b = b
	sw, sh := r.screen.Size()
	r.originX = (sw - b.Cols()*cellCols) / 2
	r.originY = (sh - b.Rows()) / 2
	if r.originX < 1 {
		r.originX = 1
	}
	if r.originY < 2 {
		r.originY = 2
	}
}

func (r *Renderer) Clear() {
	r.screen.Fill(' ', StyleBackground)
}

func (r *Renderer) Show() {
	r.screen.Show()
}

// RenderGame draws one frame of the running game
func (r *Renderer) RenderGame(w *engine.World, snake engine.Entity, score int, paused, musicOn bool) {
	r.Clear()
	r.drawBorder()
	r.drawObstacles(w)
	r.drawEdibles(w)
	r.drawSnake(w, snake)
	r.drawScore(score, musicOn)
	if paused {
		r.drawCenteredText(r.originY+r.b.Rows()/2, "PAUSED", StyleTitle)
	}
}

func (r *Renderer) drawBorder() {
	left, top := r.originX-1, r.originY-1
	right := r.originX + r.b.Cols()*cellCols
	bottom := r.originY + r.b.Rows()

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, nil, StyleBorder)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, StyleBorder)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, tcell.RuneVLine, nil, StyleBorder)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, StyleBorder)
	}
	r.screen.SetContent(left, top, tcell.RuneULCorner, nil, StyleBorder)
	r.screen.SetContent(right, top, tcell.RuneURCorner, nil, StyleBorder)
	r.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, StyleBorder)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, StyleBorder)
}

func (r *Renderer) drawObstacles(w *engine.World) {
	for _, e := range w.Obstacles.Entities() {
		pos, ok := w.Positions.Get(e)
		if !ok {
			continue
		}
		r.drawCell(float64(pos.X), float64(pos.Y), '▓', StyleObstacle)
	}
}

func (r *Renderer) drawEdibles(w *engine.World) {
	for _, e := range w.Edibles.Entities() {
		pos, ok := w.Positions.Get(e)
		if !ok {
			continue
		}
		food, _ := w.Edibles.Get(e)
		style := StyleApple
		if food.Kind == component.EdibleGrape {
			style = StyleGrape
		}
		r.drawCell(float64(pos.X), float64(pos.Y), '●', style)
	}
}

// drawSnake renders the head at its interpolated draw position and each
// tail segment sliding toward the cell ahead of it with the same alpha,
// so the whole chain moves as one.
func (r *Renderer) drawSnake(w *engine.World, snake engine.Entity) {
	pos, ok := w.Positions.Get(snake)
	if !ok {
		return
	}
	body, _ := w.Bodies.Get(snake)
	itp, _ := w.Interpolations.Get(snake)
	inFlight := itp.InFlight(pos)

	alpha := 0.0
	if inFlight {
		alpha = itp.Alpha
	}

	headStyle := StyleHeadAlive
	if !body.Alive {
		headStyle = StyleHeadDead
	}

	// Tail, far end first so the head overdraws overlaps
	aheadX, aheadY := pos.X, pos.Y
	type segDraw struct{ x, y float64 }
	draws := make([]segDraw, len(body.Segments))
	for i, seg := range body.Segments {
		draws[i] = segDraw{
			x: r.axisDraw(seg.X, aheadX, alpha, r.b.Width),
			y: r.axisDraw(seg.Y, aheadY, alpha, r.b.Height),
		}
		aheadX, aheadY = seg.X, seg.Y
	}
	for i := len(draws) - 1; i >= 0; i-- {
		r.drawCell(draws[i].x, draws[i].y, '█', StyleTail)
	}

	// Head
	headX, headY := float64(pos.X), float64(pos.Y)
	if inFlight {
		vx := system.WrapVelocity(pos.X, itp.TargetX, r.b.Width)
		vy := system.WrapVelocity(pos.Y, itp.TargetY, r.b.Height)
		headX = system.DrawPosition(pos.X, itp.TargetX, alpha, itp.Wrapped.X(), vx, r.b.CellSize, r.b.Width)
		headY = system.DrawPosition(pos.Y, itp.TargetY, alpha, itp.Wrapped.Y(), vy, r.b.CellSize, r.b.Height)
	}
	r.drawCell(headX, headY, '█', headStyle)
}

// axisDraw interpolates one axis of a tail segment toward the cell ahead,
// detecting edge wrapping per segment pair.
func (r *Renderer) axisDraw(from, to int, alpha float64, limit int) float64 {
	wrapped := from != to && system.WillWrapAround(from, to, limit, r.b.CellSize)
	v := 0
	if wrapped {
		v = system.WrapVelocity(from, to, limit)
	}
	return system.DrawPosition(from, to, alpha, wrapped, v, r.b.CellSize, limit)
}

// drawCell paints one grid cell at a pixel draw position, plus the
// wraparound companion on the opposite edge when the position straddles
// the board boundary.
func (r *Renderer) drawCell(px, py float64, ch rune, style tcell.Style) {
	r.drawCellAt(px, py, ch, style)

	dupX, okX := system.DuplicatePosition(px, r.b.CellSize, r.b.Width)
	dupY, okY := system.DuplicatePosition(py, r.b.CellSize, r.b.Height)
	if okX {
		r.drawCellAt(dupX, py, ch, style)
	}
	if okY {
		r.drawCellAt(px, dupY, ch, style)
	}
	if okX && okY {
		r.drawCellAt(dupX, dupY, ch, style)
	}
}

func (r *Renderer) drawCellAt(px, py float64, ch rune, style tcell.Style) {
	col := int(math.Round(px / float64(r.b.CellSize) * cellCols))
	row := int(math.Round(py / float64(r.b.CellSize)))
	// Draw positions stay within one cell of the arena, so a rounded
	// coordinate one step outside is a half-cell seam position; clamp it
	// back onto the edge instead of dropping the draw.
	if row == -1 {
		row = 0
	} else if row == r.b.Rows() {
		row = r.b.Rows() - 1
	}
	if col == r.b.Cols()*cellCols {
		col = r.b.Cols()*cellCols - 1
	}
	if row < 0 || row >= r.b.Rows() {
		return
	}
	// Clip per column: a draw position straddling the arena edge keeps
	// its inside columns.
	for dx := 0; dx < cellCols; dx++ {
		c := col + dx
		if c < 0 || c >= r.b.Cols()*cellCols {
			continue
		}
		r.screen.SetContent(r.originX+c, r.originY+row, ch, nil, style)
	}
}

func (r *Renderer) drawScore(score int, musicOn bool) {
	text := fmt.Sprintf(" Score: %d ", score)
	r.drawText(r.originX-1, r.originY-2, text, StyleScore)
	if musicOn {
		r.drawText(r.originX+r.b.Cols()*cellCols-3, r.originY-2, "♪", StyleStatus)
	}
}

// RenderMenu draws a titled vertical menu with one focused line
func (r *Renderer) RenderMenu(title string, items []string, selected int, footer string) {
	r.Clear()
	_, sh := r.screen.Size()
	top := sh/2 - len(items)/2 - 2

	r.drawCenteredText(top, title, StyleTitle)
	for i, item := range items {
		style := StyleStatus
		text := "  " + item + "  "
		if i == selected {
			style = StyleMenuFocus
			text = "> " + item + " <"
		}
		r.drawCenteredText(top+2+i, text, style)
	}
	if footer != "" {
		r.drawCenteredText(sh-2, footer, StyleStatus)
	}
}

// RenderGameOver draws the death screen over a frozen arena
func (r *Renderer) RenderGameOver(score int, cause string) {
	mid := r.originY + r.b.Rows()/2
	r.drawCenteredText(mid-1, " GAME OVER ", StyleHeadDead.Bold(true))
	r.drawCenteredText(mid, fmt.Sprintf(" %s - score %d ", cause, score), StyleTitle)
	r.drawCenteredText(mid+2, " Enter to restart, M for menu ", StyleStatus)
}

func (r *Renderer) drawCenteredText(row int, text string, style tcell.Style) {
	sw, _ := r.screen.Size()
	r.drawText((sw-len([]rune(text)))/2, row, text, style)
}

func (r *Renderer) drawText(col, row int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(col+i, row, ch, nil, style)
	}
}
