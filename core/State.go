package core

// Randomizer supplies the ball's velocity after a point.
type Randomizer interface {
	Float64() float64
}

// State is the single authoritative record of a game session. It is owned by
// one goroutine; see Loop.
type State struct {
	Field   Field
	Ball    Ball
	Paddles [2]Paddle
	Scores  [2]int

	paused  bool
	intents [2]Intent
	rnd     Randomizer
}

func NewState(rnd Randomizer) *State {
	return &State{
		Field: Field{Width: FieldWidth, Height: FieldHeight},
		Ball: Ball{
			X: BallStartX, Y: BallStartY,
			DX: BallStartDX, DY: BallStartDY,
			Radius: BallRadius,
		},
		Paddles: [2]Paddle{newPaddle(Left), newPaddle(Right)},
		rnd:     rnd,
	}
}

// ApplyIntent overwrites the pending intent of one side.
func (s *State) ApplyIntent(side Side, intent Intent) {
	s.intents[side] = intent
}

func (s *State) Intent(side Side) Intent {
	return s.intents[side]
}

func (s *State) TogglePause() {
	s.paused = !s.paused
}

func (s *State) Paused() bool {
	return s.paused
}

func (s *State) Snapshot() Snapshot {
	left, right := s.Paddles[Left], s.Paddles[Right]
	return Snapshot{
		FieldWidth:  s.Field.Width,
		FieldHeight: s.Field.Height,
		Ball:        BallView{X: s.Ball.X, Y: s.Ball.Y, Radius: s.Ball.Radius},
		Paddles: [2]PaddleView{
			{X: left.X, Y: left.Y, Width: left.Width, Height: left.Height},
			{X: right.X, Y: right.Y, Width: right.Width, Height: right.Height},
		},
		Scores: s.Scores,
	}
}
