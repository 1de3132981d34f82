package selfplay

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
	"lukechampine.com/frand"

	"github.com/iamasit07/4-in-a-row-3d/internal/domain"
	"github.com/iamasit07/4-in-a-row-3d/internal/service/bot"
)

// MoveEngine is the part of bot.Engine a match needs.
type MoveEngine interface {
	BestMove(board domain.Board, botPlayer domain.PlayerID) (bot.SearchResult, bot.Stats, error)
}

type MatchConfig struct {
	Games int
	X     MoveEngine
	O     MoveEngine
	// RandomPlies random moves open every game so that games differ.
	RandomPlies int
	Seed        uint64
	// Parallel is the number of games played at once.
	Parallel int
	Patterns domain.PatternSet
}

type GameResult struct {
	Index   int
	Winner  domain.PlayerID
	Moves   int
	Opening []domain.Coord
	// EngineMoves counts the moves chosen by search, Nodes the nodes they took.
	EngineMoves int
	Nodes       int64
	Elapsed     time.Duration
}

func (r GameResult) NodesPerMove() float64 {
	if r.EngineMoves == 0 {
		return 0
	}
	return float64(r.Nodes) / float64(r.EngineMoves)
}

type Report struct {
	Games     int
	XWins     int
	OWins     int
	Draws     int
	MeanMoves float64
	StdMoves  float64
	MeanNodes float64
	StdNodes  float64
	Results   []GameResult
}

func (r Report) String() string {
	return fmt.Sprintf("games %d: X %d, O %d, draws %d; moves %.1f ± %.1f; nodes/move %.0f ± %.0f",
		r.Games, r.XWins, r.OWins, r.Draws, r.MeanMoves, r.StdMoves, r.MeanNodes, r.StdNodes)
}

// Run plays cfg.Games engine-vs-engine games. Results are ordered by game
// index and do not depend on cfg.Parallel.
func Run(ctx context.Context, cfg MatchConfig) (Report, error) {
	if cfg.X == nil || cfg.O == nil {
		return Report{}, fmt.Errorf("selfplay: both engines are required")
	}
	if cfg.Patterns == nil {
		cfg.Patterns = domain.DefaultPatterns()
	}

	results := make([]GameResult, cfg.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Parallel, 1))
	for i := range cfg.Games {
		g.Go(func() error {
			res, err := PlayGame(ctx, i, cfg)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			results[i] = res
			log.Debug().
				Int("game", i).
				Str("winner", res.Winner.Symbol()).
				Int("moves", res.Moves).
				Dur("elapsed", res.Elapsed).
				Msg("selfplay game finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := summarize(results)
	log.Info().Stringer("report", report).Msg("selfplay finished")
	return report, nil
}

// PlayGame plays game number index to the end. The opening is drawn from a
// generator seeded by cfg.Seed and index.
func PlayGame(ctx context.Context, index int, cfg MatchConfig) (GameResult, error) {
	if cfg.Patterns == nil {
		cfg.Patterns = domain.DefaultPatterns()
	}
	rng := gameRNG(cfg.Seed, index)
	g := domain.NewGame(cfg.Patterns)
	res := GameResult{Index: index}
	start := time.Now()

	for ply := 0; ply < cfg.RandomPlies && !g.IsFinished(); ply++ {
		empty := g.Board.EmptyCells()
		c := empty[rng.Intn(len(empty))]
		if err := g.MakeMove(g.CurrentPlayer, c); err != nil {
			return res, err
		}
		res.Opening = append(res.Opening, c)
	}

	passes := 0
	for !g.IsFinished() && passes < 2 {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		engine := cfg.X
		if g.CurrentPlayer == domain.Player2 {
			engine = cfg.O
		}
		result, stats, err := engine.BestMove(g.Board, g.CurrentPlayer)
		if err != nil {
			return res, err
		}
		res.Nodes += stats.Nodes

		if result.Move == nil {
			g.Pass()
			passes++
			continue
		}
		passes = 0
		res.EngineMoves++
		if err := g.MakeMove(g.CurrentPlayer, *result.Move); err != nil {
			return res, fmt.Errorf("engine move %v: %w", *result.Move, err)
		}
	}

	res.Winner = g.Winner
	res.Moves = g.MoveCount
	res.Elapsed = time.Since(start)
	return res, nil
}

func gameRNG(seed uint64, index int) *frand.RNG {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:8], seed)
	binary.LittleEndian.PutUint64(s[8:16], uint64(index))
	return frand.NewCustom(s[:], 1024, 12)
}

func summarize(results []GameResult) Report {
	r := Report{Games: len(results), Results: results}
	for _, res := range results {
		switch res.Winner {
		case domain.Player1:
			r.XWins++
		case domain.Player2:
			r.OWins++
		default:
			r.Draws++
		}
	}
	r.MeanMoves, r.StdMoves = meanStdDev(lo.Map(results, func(res GameResult, _ int) float64 {
		return float64(res.Moves)
	}))
	r.MeanNodes, r.StdNodes = meanStdDev(lo.Map(results, func(res GameResult, _ int) float64 {
		return res.NodesPerMove()
	}))
	return r
}

// meanStdDev is stat.MeanStdDev with the sample deviation of fewer than two
// values taken as zero.
func meanStdDev(xs []float64) (float64, float64) {
	switch len(xs) {
	case 0:
		return 0, 0
	case 1:
		return xs[0], 0
	}
	return stat.MeanStdDev(xs, nil)
}
