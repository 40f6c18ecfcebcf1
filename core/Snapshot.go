package core

import "strconv"

// Snapshot is a value copy of the simulation a renderer needs for one frame.
// Pausing does not change it; the pause flag reaches renderers separately.
type Snapshot struct {
	FieldWidth, FieldHeight float64

	Ball    BallView
	Paddles [2]PaddleView
	Scores  [2]int
}

type BallView struct {
	X, Y, Radius float64
}

type PaddleView struct {
	X, Y          float64
	Width, Height float64
}

// ScoreLabel returns the score of side ready for display.
func (s Snapshot) ScoreLabel(side Side) string {
	return strconv.Itoa(s.Scores[side])
}
