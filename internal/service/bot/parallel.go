package bot

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/iamasit07/4-in-a-row-3d/internal/domain"
)

// SearchParallel splits the root moves across up to workers goroutines. Each
// branch searches its own copy of the board with the full sentinel window, so
// the result (score and move) is the same as Search with that window:
// the first immediate win in scan order if there is one, otherwise the
// earliest move reaching the best score.
func (s *Searcher) SearchParallel(board *domain.Board, side domain.PlayerID, depth, workers int) SearchResult {
	s.nodes = 1

	if depth == 0 || domain.IsBoardFull(board) || domain.FindWinner(board, s.patterns) != domain.Empty {
		return SearchResult{Score: Evaluate(board, s.patterns)}
	}

	moves := board.EmptyCells()

	if !s.DisableShortcut {
		for _, move := range moves {
			board.Set(move, side)
			won := s.completesLine(board, move, side)
			board.Clear(move)
			if won {
				return SearchResult{Score: winScore(side), Move: &move}
			}
		}
	}

	scores := make([]int, len(moves))
	var nodes atomic.Int64

	g := errgroup.Group{}
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, move := range moves {
		g.Go(func() error {
			child := *board
			child.Set(move, side)
			branch := &Searcher{
				DisablePruning:  s.DisablePruning,
				DisableShortcut: s.DisableShortcut,
				patterns:        s.patterns,
				byCell:          s.byCell,
			}
			scores[i] = branch.search(&child, side.Opponent(), depth-1, -MINIMAX_INFINITY, MINIMAX_INFINITY).Score
			nodes.Add(branch.nodes)
			return nil
		})
	}
	// branches never fail; the group only bounds concurrency
	_ = g.Wait()
	s.nodes += nodes.Load()

	maximizing := side == domain.Player1
	bestScore := MINIMAX_INFINITY
	if maximizing {
		bestScore = -MINIMAX_INFINITY
	}
	var bestMove *domain.Coord
	for i := range moves {
		if (maximizing && scores[i] > bestScore) || (!maximizing && scores[i] < bestScore) {
			bestScore = scores[i]
			bestMove = &moves[i]
		}
	}
	return SearchResult{Score: bestScore, Move: bestMove}
}
