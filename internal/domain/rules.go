package domain

import "github.com/samber/lo"

// FindWinner returns the owner of the first completed pattern in set order,
// or Empty when there is none.
func FindWinner(b *Board, patterns PatternSet) PlayerID {
	_, winner, _ := WinningLine(b, patterns)
	return winner
}

// WinningLine is FindWinner that also hands back the completed line, for
// highlighting.
func WinningLine(b *Board, patterns PatternSet) (WinPattern, PlayerID, bool) {
	for _, p := range patterns {
		if owner := p.Owner(b); owner != Empty {
			return p, owner, true
		}
	}
	return WinPattern{}, Empty, false
}

func IsBoardFull(b *Board) bool {
	return b.IsFull()
}

// FindThreats returns the cells that would complete a line for player: lines
// where player holds ToWin-1 cells and the last one is empty. Each cell is
// reported once, in the order its first line appears.
func FindThreats(b *Board, patterns PatternSet, player PlayerID) []Coord {
	threats := []Coord{}
	for _, p := range patterns {
		countPlayer, countEmpty := 0, 0
		var emptyCell Coord
		for _, c := range p {
			switch b.At(c) {
			case player:
				countPlayer++
			case Empty:
				countEmpty++
				emptyCell = c
			}
		}
		if countPlayer == ToWin-1 && countEmpty == 1 {
			threats = append(threats, emptyCell)
		}
	}
	return lo.Uniq(threats)
}
