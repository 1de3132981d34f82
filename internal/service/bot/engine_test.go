package bot

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/iamasit07/4-in-a-row-3d/internal/domain"
)

func TestParseDifficulty(t *testing.T) {
	is := is.New(t)
	is.Equal(ParseDifficulty("easy"), DifficultyEasy)
	is.Equal(ParseDifficulty("hard"), DifficultyHard)
	is.Equal(ParseDifficulty(""), DifficultyMedium)
	is.Equal(ParseDifficulty("impossible"), DifficultyMedium)

	is.Equal(DifficultyEasy.Depth(), 1)
	is.Equal(DifficultyMedium.Depth(), DEFAULT_DEPTH)
	is.Equal(DifficultyHard.Depth(), DEFAULT_DEPTH+1)
}

func TestEngineDepthOverride(t *testing.T) {
	is := is.New(t)
	e := NewEngine(domain.DefaultPatterns(), DifficultyHard)
	is.Equal(e.SearchDepth(), 4)
	e.Depth = 2
	is.Equal(e.SearchDepth(), 2)
}

func TestEngineBestMove(t *testing.T) {
	is := is.New(t)
	b := domain.NewBoard()
	place(&b, domain.Player1, domain.Coord{Layer: 1, Row: 0, Col: 0}, domain.Coord{Layer: 1, Row: 1, Col: 0}, domain.Coord{Layer: 1, Row: 2, Col: 0})
	place(&b, domain.Player2, domain.Coord{Layer: 0, Row: 0, Col: 0}, domain.Coord{Layer: 3, Row: 3, Col: 3})
	before := b

	e := NewEngine(domain.DefaultPatterns(), DifficultyEasy)
	res, stats, err := e.BestMove(b, domain.Player2)
	is.NoErr(err)
	is.Equal(stats.Depth, 1)
	is.True(stats.Nodes > 0)
	is.True(res.Move != nil)

	e.Difficulty = DifficultyMedium
	res, _, err = e.BestMove(b, domain.Player2)
	is.NoErr(err)
	is.Equal(*res.Move, domain.Coord{Layer: 1, Row: 3, Col: 0})
	is.Equal(b, before)

	e.Workers = 4
	par, _, err := e.BestMove(b, domain.Player2)
	is.NoErr(err)
	is.Equal(par, res)
}

func TestEngineInvalidPlayer(t *testing.T) {
	is := is.New(t)
	_, _, err := NewEngine(nil, DifficultyEasy).BestMove(domain.NewBoard(), domain.Empty)
	is.True(errors.Is(err, domain.ErrInvalidPlayer))
}

func TestEngineNoMove(t *testing.T) {
	is := is.New(t)
	b := domain.NewBoard()
	place(&b, domain.Player1, domain.DefaultPatterns()[0][:]...)
	res, stats, err := NewEngine(nil, ParseDifficulty("medium")).BestMove(b, domain.Player2)
	is.NoErr(err)
	is.Equal(stats.Nodes, int64(1))
	is.True(res.Move == nil)
	is.Equal(res.Score, SCORE_WIN)
}
