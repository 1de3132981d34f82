package domain

import "sync"

// WinPattern is one straight line of ToWin cells. Filling all of them wins.
type WinPattern [ToWin]Coord

// PatternSet is the full list of lines. Treat it as read-only once built.
type PatternSet []WinPattern

// Directions holds one vector per line direction: 3 axis, 6 face-diagonal and
// 4 space-diagonal. Never both v and -v, so each line is produced once.
var Directions = [13]Coord{
	{Row: 1},
	{Col: 1},
	{Layer: 1},
	{Row: 1, Col: 1},
	{Row: 1, Col: -1},
	{Layer: 1, Row: 1},
	{Layer: -1, Row: 1},
	{Layer: 1, Col: 1},
	{Layer: -1, Col: 1},
	{Layer: 1, Row: 1, Col: 1},
	{Layer: -1, Row: 1, Col: 1},
	{Layer: 1, Row: 1, Col: -1},
	{Layer: -1, Row: 1, Col: -1},
}

// GeneratePatterns walks ToWin steps from every cell in every direction and
// keeps the walks that stay on the board. The order is deterministic.
func GeneratePatterns() PatternSet {
	patterns := make(PatternSet, 0, 76)
	for l := 0; l < Size; l++ {
		for r := 0; r < Size; r++ {
			for c := 0; c < Size; c++ {
				start := Coord{Layer: l, Row: r, Col: c}
				for _, dir := range Directions {
					if p, ok := walk(start, dir); ok {
						patterns = append(patterns, p)
					}
				}
			}
		}
	}
	return patterns
}

func walk(start, dir Coord) (WinPattern, bool) {
	var p WinPattern
	cur := start
	for i := 0; i < ToWin; i++ {
		if !cur.InBounds() {
			return p, false
		}
		p[i] = cur
		cur = cur.Add(dir)
	}
	return p, true
}

// DefaultPatterns is computed on first use and shared for the life of the
// process.
var DefaultPatterns = sync.OnceValue(GeneratePatterns)

// Through returns the patterns containing c, in set order.
func (ps PatternSet) Through(c Coord) []WinPattern {
	var out []WinPattern
	for _, p := range ps {
		if p.Contains(c) {
			out = append(out, p)
		}
	}
	return out
}

// Index groups the pattern indices by cell so callers can look at only the
// lines a move touches.
func (ps PatternSet) Index() *[Size][Size][Size][]int {
	var idx [Size][Size][Size][]int
	for i, p := range ps {
		for _, c := range p {
			idx[c.Layer][c.Row][c.Col] = append(idx[c.Layer][c.Row][c.Col], i)
		}
	}
	return &idx
}

func (p WinPattern) Contains(c Coord) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// Owner returns the side holding all cells of p, or Empty.
func (p WinPattern) Owner(b *Board) PlayerID {
	first := b.At(p[0])
	if first == Empty {
		return Empty
	}
	for _, c := range p[1:] {
		if b.At(c) != first {
			return Empty
		}
	}
	return first
}

// Counts tallies how many cells of p each side holds.
func (p WinPattern) Counts(b *Board) (p1, p2 int) {
	for _, c := range p {
		switch b.At(c) {
		case Player1:
			p1++
		case Player2:
			p2++
		}
	}
	return p1, p2
}
