package bot

import (
	"github.com/iamasit07/4-in-a-row-3d/internal/domain"
)

const (
	// Score for a completed line. Player1 is positive, Player2 negative.
	SCORE_WIN = 10000

	// Per-line scores for a line held by only one side.
	SCORE_THREE_IN_LINE = 50
	SCORE_TWO_IN_LINE   = 5
	SCORE_ONE_IN_LINE   = 1
)

var lineScores = [domain.ToWin]int{0, SCORE_ONE_IN_LINE, SCORE_TWO_IN_LINE, SCORE_THREE_IN_LINE}

// Evaluate scores a board from Player1's point of view: +/-SCORE_WIN when a
// side has won, otherwise the sum over all patterns of the line scores. Lines
// holding marks of both sides are dead and count 0.
func Evaluate(board *domain.Board, patterns domain.PatternSet) int {
	switch domain.FindWinner(board, patterns) {
	case domain.Player1:
		return SCORE_WIN
	case domain.Player2:
		return -SCORE_WIN
	}

	score := 0
	for _, p := range patterns {
		p1, p2 := p.Counts(board)
		if p1 > 0 && p2 > 0 {
			continue
		}
		// a full line was handled above, so counts stay below ToWin here
		switch {
		case p1 > 0:
			score += lineScores[p1]
		case p2 > 0:
			score -= lineScores[p2]
		}
	}
	return score
}

func winScore(side domain.PlayerID) int {
	if side == domain.Player1 {
		return SCORE_WIN
	}
	return -SCORE_WIN
}
