package bot

import (
	"lukechampine.com/frand"

	"github.com/iamasit07/4-in-a-row-3d/internal/domain"
)

func emptyBoard() *domain.Board {
	b := domain.NewBoard()
	return &b
}

func place(b *domain.Board, p domain.PlayerID, cells ...domain.Coord) {
	for _, c := range cells {
		b.Set(c, p)
	}
}

func seededRNG(seed byte) *frand.RNG {
	var s [32]byte
	s[0] = seed
	return frand.NewCustom(s[:], 1024, 12)
}

// randomBoard plays marks alternately (Player1 first) on random empty cells
// and retries until the position has no winner.
func randomBoard(rng *frand.RNG, marks int) domain.Board {
	ps := domain.DefaultPatterns()
	for {
		b := domain.NewBoard()
		side := domain.Player1
		for i := 0; i < marks; i++ {
			empty := b.EmptyCells()
			b.Set(empty[rng.Intn(len(empty))], side)
			side = side.Opponent()
		}
		if domain.FindWinner(&b, ps) == domain.Empty {
			return b
		}
	}
}

// sideToMove follows from the number of marks, Player1 moving first.
func sideToMove(b *domain.Board) domain.PlayerID {
	if b.Count(domain.Player1) > b.Count(domain.Player2) {
		return domain.Player2
	}
	return domain.Player1
}
