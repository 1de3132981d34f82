package selfplay

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/matryer/is"

	"github.com/iamasit07/4-in-a-row-3d/internal/domain"
	"github.com/iamasit07/4-in-a-row-3d/internal/service/bot"
)

func easyMatch(games, parallel int, seed uint64) MatchConfig {
	ps := domain.DefaultPatterns()
	return MatchConfig{
		Games:       games,
		X:           bot.NewEngine(ps, bot.DifficultyEasy),
		O:           bot.NewEngine(ps, bot.DifficultyEasy),
		RandomPlies: 4,
		Seed:        seed,
		Parallel:    parallel,
		Patterns:    ps,
	}
}

func TestRunIsDeterministic(t *testing.T) {
	is := is.New(t)
	seq, err := Run(context.Background(), easyMatch(6, 1, 42))
	is.NoErr(err)
	par, err := Run(context.Background(), easyMatch(6, 4, 42))
	is.NoErr(err)

	is.Equal(seq.Games, 6)
	is.Equal(seq.XWins+seq.OWins+seq.Draws, 6)
	for i := range seq.Results {
		a, b := seq.Results[i], par.Results[i]
		is.Equal(a.Index, i)
		is.Equal(len(a.Opening), 4)
		is.Equal(a.Opening, b.Opening)
		is.Equal(a.Winner, b.Winner)
		is.Equal(a.Moves, b.Moves)
		is.Equal(a.Nodes, b.Nodes)
		is.True(a.Moves >= 4)
		is.Equal(a.EngineMoves, a.Moves-4)
	}
	is.True(seq.MeanNodes > 0)
	is.Equal(seq.MeanMoves, par.MeanMoves)
}

func TestPlayGameSeedsOpenings(t *testing.T) {
	is := is.New(t)
	cfg := easyMatch(1, 1, 7)
	cfg.RandomPlies = 6

	a, err := PlayGame(context.Background(), 0, cfg)
	is.NoErr(err)
	b, err := PlayGame(context.Background(), 1, cfg)
	is.NoErr(err)
	again, err := PlayGame(context.Background(), 0, cfg)
	is.NoErr(err)

	is.Equal(a.Opening, again.Opening)
	is.True(!slices.Equal(a.Opening, b.Opening))
	is.True(a.Winner != domain.Empty || a.Moves == domain.Cells)
}

func TestRunCancelled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, easyMatch(2, 2, 1))
	is.True(errors.Is(err, context.Canceled))
}

func TestRunNeedsEngines(t *testing.T) {
	is := is.New(t)
	_, err := Run(context.Background(), MatchConfig{Games: 1})
	is.True(err != nil)
}

func TestSummarize(t *testing.T) {
	is := is.New(t)
	r := summarize([]GameResult{
		{Winner: domain.Player1, Moves: 10, EngineMoves: 2, Nodes: 100},
		{Winner: domain.Player2, Moves: 20, EngineMoves: 4, Nodes: 400},
		{Winner: domain.Empty, Moves: 30},
	})
	is.Equal(r.XWins, 1)
	is.Equal(r.OWins, 1)
	is.Equal(r.Draws, 1)
	is.Equal(r.MeanMoves, 20.0)
	is.Equal(r.StdMoves, 10.0)
	is.Equal(r.MeanNodes, 50.0) // 50, 100 and 0 nodes per move

	one := summarize([]GameResult{{Winner: domain.Player1, Moves: 9}})
	is.Equal(one.MeanMoves, 9.0)
	is.Equal(one.StdMoves, 0.0)
}
