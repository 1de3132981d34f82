package bot

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row-3d/internal/domain"
)

// Engine picks moves for the computer-controlled side.
type Engine struct {
	Patterns   domain.PatternSet
	Difficulty BotDifficulty
	// Depth overrides the difficulty's depth when positive.
	Depth int
	// Workers > 1 splits the root moves across that many goroutines.
	Workers int
}

// Stats describes the work done for one decision.
type Stats struct {
	Depth   int
	Nodes   int64
	Elapsed time.Duration
}

func NewEngine(patterns domain.PatternSet, difficulty BotDifficulty) *Engine {
	return &Engine{Patterns: patterns, Difficulty: difficulty}
}

func (e *Engine) SearchDepth() int {
	if e.Depth > 0 {
		return e.Depth
	}
	return e.Difficulty.Depth()
}

// BestMove searches a snapshot of board for botPlayer. A nil Move means there
// is no legal action: the position is already decided or the board is full.
func (e *Engine) BestMove(board domain.Board, botPlayer domain.PlayerID) (SearchResult, Stats, error) {
	if !botPlayer.IsSide() {
		return SearchResult{}, Stats{}, fmt.Errorf("best move: %w", domain.ErrInvalidPlayer)
	}

	patterns := e.Patterns
	if patterns == nil {
		patterns = domain.DefaultPatterns()
	}

	depth := e.SearchDepth()
	searcher := NewSearcher(patterns)
	start := time.Now()

	var result SearchResult
	if e.Workers > 1 {
		result = searcher.SearchParallel(&board, botPlayer, depth, e.Workers)
	} else {
		result = searcher.Search(&board, botPlayer, depth, -MINIMAX_INFINITY, MINIMAX_INFINITY)
	}

	stats := Stats{Depth: depth, Nodes: searcher.Nodes(), Elapsed: time.Since(start)}

	ev := log.Debug().
		Str("player", botPlayer.Symbol()).
		Int("depth", depth).
		Int("score", result.Score).
		Int64("nodes", stats.Nodes).
		Dur("elapsed", stats.Elapsed)
	if result.Move != nil {
		ev = ev.Stringer("move", result.Move)
	}
	ev.Msg("engine decision")

	return result, stats, nil
}
