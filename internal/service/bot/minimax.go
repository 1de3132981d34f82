package bot

import (
	"github.com/iamasit07/4-in-a-row-3d/internal/domain"
)

const (
	// MINIMAX_INFINITY is the sentinel for the initial alpha/beta window. It
	// sits far outside anything Evaluate can return.
	MINIMAX_INFINITY = 100000
)

// SearchResult is the outcome of a search. Move is nil when the node was
// terminal (win, depth exhausted or full board) and so no move was tried.
type SearchResult struct {
	Score int
	Move  *domain.Coord
}

// Searcher runs depth-limited minimax with alpha-beta pruning over a board it
// mutates in place and restores before returning. A Searcher must not be used
// from more than one goroutine at a time.
type Searcher struct {
	// DisablePruning turns the search into plain minimax.
	DisablePruning bool
	// DisableShortcut stops a node from returning as soon as one of the
	// mover's placements completes a line; every move is then recursed into.
	DisableShortcut bool

	patterns domain.PatternSet
	byCell   *[domain.Size][domain.Size][domain.Size][]int
	nodes    int64
}

func NewSearcher(patterns domain.PatternSet) *Searcher {
	return &Searcher{
		patterns: patterns,
		byCell:   patterns.Index(),
	}
}

// Nodes returns the number of nodes visited by the last search.
func (s *Searcher) Nodes() int64 {
	return s.nodes
}

// Search is the package-level entry point with the default options.
func Search(board *domain.Board, side domain.PlayerID, depth, alpha, beta int, patterns domain.PatternSet) SearchResult {
	return NewSearcher(patterns).Search(board, side, depth, alpha, beta)
}

// Search returns the minimax value of board for side to move and the move
// that achieves it. Player1 maximizes, Player2 minimizes. Ties keep the
// earliest move in scan order. board is left exactly as it was passed in.
func (s *Searcher) Search(board *domain.Board, side domain.PlayerID, depth, alpha, beta int) SearchResult {
	s.nodes = 0
	return s.search(board, side, depth, alpha, beta)
}

func (s *Searcher) search(board *domain.Board, side domain.PlayerID, depth, alpha, beta int) SearchResult {
	s.nodes++

	if depth == 0 || domain.IsBoardFull(board) || domain.FindWinner(board, s.patterns) != domain.Empty {
		return SearchResult{Score: Evaluate(board, s.patterns)}
	}

	maximizing := side == domain.Player1
	bestScore := MINIMAX_INFINITY
	if maximizing {
		bestScore = -MINIMAX_INFINITY
	}
	var bestMove *domain.Coord

	for _, move := range board.EmptyCells() {
		board.Set(move, side)

		if !s.DisableShortcut && s.completesLine(board, move, side) {
			board.Clear(move)
			return SearchResult{Score: winScore(side), Move: &move}
		}

		result := s.search(board, side.Opponent(), depth-1, alpha, beta)
		board.Clear(move)

		if (maximizing && result.Score > bestScore) || (!maximizing && result.Score < bestScore) {
			bestScore = result.Score
			bestMove = &move
		}

		if s.DisablePruning {
			continue
		}
		if maximizing {
			alpha = max(alpha, bestScore)
		} else {
			beta = min(beta, bestScore)
		}
		if beta <= alpha {
			break
		}
	}

	return SearchResult{Score: bestScore, Move: bestMove}
}

// completesLine reports whether the mark just placed at c finished a line for
// side. Only the lines through c can have changed.
func (s *Searcher) completesLine(board *domain.Board, c domain.Coord, side domain.PlayerID) bool {
	for _, i := range s.byCell[c.Layer][c.Row][c.Col] {
		if s.patterns[i].Owner(board) == side {
			return true
		}
	}
	return false
}
