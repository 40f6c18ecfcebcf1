package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const PayloadTerminator = "~"

const BattleSituationHeader = "BS" // Battle status 戰鬥中的狀態

const battleFieldCount = 8

var ErrMalformedPayload = errors.New("malformed payload")

// GenerateBattlePayload encodes a snapshot as
// BS ballX,ballY,player1X,player1Y,player1Score,player2X,player2Y,player2Score ~
func GenerateBattlePayload(snapshot Snapshot) string {
	left, right := snapshot.Paddles[Left], snapshot.Paddles[Right]
	payload := strings.Join([]string{
		formatCoordinate(snapshot.Ball.X),
		formatCoordinate(snapshot.Ball.Y),
		formatCoordinate(left.X),
		formatCoordinate(left.Y),
		strconv.Itoa(snapshot.Scores[Left]),
		formatCoordinate(right.X),
		formatCoordinate(right.Y),
		strconv.Itoa(snapshot.Scores[Right]),
	}, ",")
	return BattleSituationHeader + payload + PayloadTerminator
}

// ParseBattlePayload reverses GenerateBattlePayload. Only the fields carried by
// the payload are filled in; sizes and field dimensions come from the constants.
func ParseBattlePayload(payload string) (Snapshot, error) {
	if !strings.HasPrefix(payload, BattleSituationHeader) || !strings.HasSuffix(payload, PayloadTerminator) {
		return Snapshot{}, fmt.Errorf("%w: %q", ErrMalformedPayload, payload)
	}

	p := strings.Split(removeHeaderTerminator(payload), ",")
	if len(p) != battleFieldCount {
		return Snapshot{}, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedPayload, battleFieldCount, len(p))
	}

	var coords [6]float64
	for i, idx := range []int{0, 1, 2, 3, 5, 6} {
		v, err := strconv.ParseFloat(p[idx], 64)
		if err != nil {
			return Snapshot{}, fmt.Errorf("%w: field %d: %v", ErrMalformedPayload, idx, err)
		}
		coords[i] = v
	}
	player1Score, err := strconv.Atoi(p[4])
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: player1 score: %v", ErrMalformedPayload, err)
	}
	player2Score, err := strconv.Atoi(p[7])
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: player2 score: %v", ErrMalformedPayload, err)
	}

	return Snapshot{
		FieldWidth:  FieldWidth,
		FieldHeight: FieldHeight,
		Ball:        BallView{X: coords[0], Y: coords[1], Radius: BallRadius},
		Paddles: [2]PaddleView{
			{X: coords[2], Y: coords[3], Width: PaddleWidth, Height: PaddleHeight},
			{X: coords[4], Y: coords[5], Width: PaddleWidth, Height: PaddleHeight},
		},
		Scores: [2]int{player1Score, player2Score},
	}, nil
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func removeHeaderTerminator(payload string) string {
	return payload[len(BattleSituationHeader) : len(payload)-len(PayloadTerminator)]
}
