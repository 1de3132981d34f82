package bot

import (
	"testing"

	"github.com/matryer/is"

	"github.com/iamasit07/4-in-a-row-3d/internal/domain"
)

func TestSearchParallelMatchesSequential(t *testing.T) {
	is := is.New(t)
	ps := domain.DefaultPatterns()
	rng := seededRNG(5)

	for i := 0; i < 12; i++ {
		b := randomBoard(rng, 4+rng.Intn(36))
		before := b
		side := sideToMove(&b)

		for _, noShortcut := range []bool{false, true} {
			seq := NewSearcher(ps)
			seq.DisableShortcut = noShortcut
			par := NewSearcher(ps)
			par.DisableShortcut = noShortcut

			want := fullWindow(seq, &b, side, 2)
			got := par.SearchParallel(&b, side, 2, 4)

			is.Equal(got.Score, want.Score)
			is.Equal(got.Move == nil, want.Move == nil)
			if want.Move != nil {
				is.Equal(*got.Move, *want.Move)
			}
			is.Equal(b, before)
		}
	}
}

func TestSearchParallelImmediateWin(t *testing.T) {
	is := is.New(t)
	ps := domain.DefaultPatterns()
	b := domain.NewBoard()
	place(&b, domain.Player2, domain.Coord{Layer: 2, Row: 0, Col: 0}, domain.Coord{Layer: 2, Row: 1, Col: 1}, domain.Coord{Layer: 2, Row: 2, Col: 2})

	res := NewSearcher(ps).SearchParallel(&b, domain.Player2, 3, 2)
	is.Equal(res.Score, -SCORE_WIN)
	is.Equal(*res.Move, domain.Coord{Layer: 2, Row: 3, Col: 3})
}

func TestSearchParallelTerminal(t *testing.T) {
	is := is.New(t)
	ps := domain.DefaultPatterns()
	b := domain.NewBoard()
	place(&b, domain.Player2, ps[10][:]...)

	res := NewSearcher(ps).SearchParallel(&b, domain.Player1, 3, 2)
	is.Equal(res.Score, -SCORE_WIN)
	is.True(res.Move == nil)
}
