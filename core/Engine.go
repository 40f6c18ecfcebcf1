package core

// TickResult reports what happened during one tick.
type TickResult struct {
	Skipped      bool // paused, nothing changed
	WallBounce   bool
	PaddleBounce bool
	Scored       bool
	Scorer       Side
}

// Tick advances the state by exactly one step. The order of the stages is
// fixed: bounces are decided on the position before this tick's movement, and
// the ball then moves with the velocity those decisions produced.
func Tick(s *State) TickResult {
	if s.paused {
		return TickResult{Skipped: true}
	}

	var result TickResult

	//檢查有沒有撞到上下牆壁
	if isCollidesWithWall(s) {
		s.Ball.DY = -s.Ball.DY
		result.WallBounce = true
	}

	//檢查是否有碰到球拍
	if isTouchPaddle(s) {
		s.Ball.DX = -s.Ball.DX
		result.PaddleBounce = true
	}

	if scorer, out := isBallOutSide(s); out {
		calculateScore(s, scorer)
		resetNewRound(s)
		result.Scored = true
		result.Scorer = scorer
	}

	s.Ball.X += s.Ball.DX
	s.Ball.Y += s.Ball.DY

	movePaddles(s)

	return result
}

func isCollidesWithWall(s *State) bool {
	ball := s.Ball
	top := ball.Y < ball.Radius && ball.DY < 0
	bottom := ball.Y+ball.Radius > s.Field.Height && ball.DY > 0
	return top || bottom
}

func isTouchPaddle(s *State) bool {
	ball := s.Ball
	left := s.Paddles[Left]
	right := s.Paddles[Right]

	if ball.DX < 0 &&
		isInBetween(ball.X-ball.Radius, left.X, left.X+left.Width) &&
		isBallOnTheSameHeightAsPaddle(ball, left) {
		return true
	}
	if ball.DX > 0 &&
		isInBetween(ball.X+ball.Radius, right.X, right.X+right.Width) &&
		isBallOnTheSameHeightAsPaddle(ball, right) {
		return true
	}
	return false
}

func isBallOnTheSameHeightAsPaddle(ball Ball, paddle Paddle) bool {
	return isInBetween(ball.Y, paddle.Y-PaddleCaptureMargin, paddle.Y+paddle.Height+PaddleCaptureMargin)
}

// isBallOutSide reports whether the ball has fully left the field and, if so,
// which side earned the point.
func isBallOutSide(s *State) (Side, bool) {
	ball := s.Ball
	if ball.X+ball.Radius < 0 {
		return Right, true
	}
	if ball.X-ball.Radius > s.Field.Width {
		return Left, true
	}
	return Left, false
}

func calculateScore(s *State, scorer Side) {
	s.Scores[scorer] += 1
}

// resetNewRound puts the ball back in the center. Both components are drawn
// from [0, BallResetSpeedMax), so the serve is not aimed at either player.
func resetNewRound(s *State) {
	s.Ball.X = s.Field.Width / 2
	s.Ball.Y = s.Field.Height / 2
	s.Ball.DX = s.rnd.Float64() * BallResetSpeedMax
	s.Ball.DY = s.rnd.Float64() * BallResetSpeedMax
}

func movePaddles(s *State) {
	for i := range s.Paddles {
		paddle := &s.Paddles[i]
		switch s.intents[paddle.Side] {
		case Up:
			paddle.MoveUp()
		case Down:
			paddle.MoveDown()
		default:
			continue
		}
		paddle.Clamp(s.Field)
	}
}
