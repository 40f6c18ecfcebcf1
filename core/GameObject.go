package core

// Side identifies which player owns a paddle or a point.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "Left"
	}
	return "Right"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Intent is the pending movement a player asked for. The zero value is Stop.
type Intent int

const (
	Stop Intent = iota
	Up
	Down
)

func (i Intent) String() string {
	switch i {
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Stop"
	}
}

type Field struct {
	Width, Height float64
}

type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
}

type Paddle struct {
	Side          Side
	X, Y          float64
	Width, Height float64
	Step          float64
}

func (p *Paddle) MoveUp() {
	p.Y -= p.Step
}

func (p *Paddle) MoveDown() {
	p.Y += p.Step
}

// Clamp keeps the paddle inside the field vertically.
func (p *Paddle) Clamp(field Field) {
	p.Y = coerceIn(p.Y, 0, field.Height-p.Height)
}

func newPaddle(side Side) Paddle {
	x := float64(PaddleP1X)
	if side == Right {
		x = PaddleP2X
	}
	return Paddle{
		Side:   side,
		X:      x,
		Y:      PaddleStartY,
		Width:  PaddleWidth,
		Height: PaddleHeight,
		Step:   PaddleStep,
	}
}

func coerceIn(value, min, max float64) float64 {
	if value <= min {
		return min
	}
	if value >= max {
		return max
	}
	return value
}

func isInBetween(value, min, max float64) bool {
	return value >= min && value <= max
}
