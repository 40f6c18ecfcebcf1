package client

import (
	"CanvasPong/core"

	"github.com/gdamore/tcell"
)

const BallSymbol = 0x25CF   // 球符號
const PaddleSymbol = 0x2588 // 球拍符號
const NetSymbol = 0x2590    // 中線
const ScoreSymbol = 0x2588

const PausedLabel = "PAUSED"

// ScreenRenderer draws snapshots on a tcell screen, scaling field
// coordinates to whatever size the terminal currently has.
type ScreenRenderer struct {
	screen tcell.Screen
	style  tcell.Style
}

func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{
		screen: screen,
		style: tcell.StyleDefault.
			Background(tcell.ColorBlack).
			Foreground(tcell.ColorWhite),
	}
}

func (r *ScreenRenderer) Render(snapshot core.Snapshot, paused bool) error {
	width, height := r.screen.Size()
	if width <= 0 || height <= 0 {
		return nil
	}
	view := viewport{
		width: width, height: height,
		sx: float64(width) / snapshot.FieldWidth,
		sy: float64(height) / snapshot.FieldHeight,
	}

	r.screen.Clear()

	r.fill(width/2, 0, width/2+1, height, NetSymbol)

	for _, paddle := range snapshot.Paddles {
		col0, col1 := view.span(paddle.X, paddle.X+paddle.Width, view.sx, width)
		row0, row1 := view.span(paddle.Y, paddle.Y+paddle.Height, view.sy, height)
		r.fill(col0, row0, col1, row1, PaddleSymbol)
	}

	r.screen.SetContent(view.col(snapshot.Ball.X), view.row(snapshot.Ball.Y), BallSymbol, nil, r.style)

	//分數更新
	r.drawLetters(view.col(core.BoardP1X), 1, snapshot.ScoreLabel(core.Left))
	r.drawLetters(view.col(core.BoardP2X), 1, snapshot.ScoreLabel(core.Right))

	if paused {
		r.drawText((width-len(PausedLabel))/2, height/2, PausedLabel)
	}

	r.screen.Show()
	return nil
}

func (r *ScreenRenderer) fill(col0, row0, col1, row1 int, ch rune) {
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			r.screen.SetContent(col, row, ch, nil, r.style)
		}
	}
}

// drawLetters draws word centered on column x with its top at row y.
func (r *ScreenRenderer) drawLetters(x, y int, word string) {
	startX := x - wordWidth(word)/2
	for i, letter := range []rune(word) {
		offsetX := startX + i*(letterWidth+1)
		for _, cell := range GetCellsFromChar(letter) {
			r.screen.SetContent(offsetX+cell[0], y+cell[1], ScoreSymbol, nil, r.style)
		}
	}
}

func (r *ScreenRenderer) drawText(x, y int, text string) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, r.style.Reverse(true))
	}
}

type viewport struct {
	width, height int
	sx, sy        float64
}

func (v viewport) col(x float64) int {
	return clampCell(int(x*v.sx), v.width)
}

func (v viewport) row(y float64) int {
	return clampCell(int(y*v.sy), v.height)
}

// span maps [from, to) in field units to cells, never narrower than one cell.
func (v viewport) span(from, to, scale float64, limit int) (int, int) {
	start := clampCell(int(from*scale), limit)
	end := int(to * scale)
	if end > limit {
		end = limit
	}
	if end <= start {
		end = start + 1
	}
	return start, end
}

func clampCell(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v >= limit {
		return limit - 1
	}
	return v
}
