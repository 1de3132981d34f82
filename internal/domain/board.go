package domain

// Board is the 4x4x4 cube indexed [layer][row][col]. Being an array, its
// dimensions can never change and assigning it takes a full snapshot.
type Board [Size][Size][Size]PlayerID

func NewBoard() Board {
	return Board{}
}

// BoardFromSlices converts a nested-slice board (as a presentation layer would
// hold it) into a Board, rejecting anything that is not exactly 4x4x4.
func BoardFromSlices(cells [][][]PlayerID) (Board, error) {
	var b Board
	if len(cells) != Size {
		return b, ErrBadDimensions
	}
	for l := range cells {
		if len(cells[l]) != Size {
			return b, ErrBadDimensions
		}
		for r := range cells[l] {
			if len(cells[l][r]) != Size {
				return b, ErrBadDimensions
			}
			for c, v := range cells[l][r] {
				if !v.Valid() {
					return b, ErrInvalidCell
				}
				b[l][r][c] = v
			}
		}
	}
	return b, nil
}

// ToSlices is the inverse of BoardFromSlices.
func (b *Board) ToSlices() [][][]PlayerID {
	out := make([][][]PlayerID, Size)
	for l := range b {
		out[l] = make([][]PlayerID, Size)
		for r := range b[l] {
			out[l][r] = make([]PlayerID, Size)
			copy(out[l][r], b[l][r][:])
		}
	}
	return out
}

func (b *Board) At(c Coord) PlayerID {
	return b[c.Layer][c.Row][c.Col]
}

// Set writes without validation; the search uses it in its place/retract loop.
func (b *Board) Set(c Coord, p PlayerID) {
	b[c.Layer][c.Row][c.Col] = p
}

func (b *Board) Clear(c Coord) {
	b[c.Layer][c.Row][c.Col] = Empty
}

// Place is the validating version of Set used for real moves.
func (b *Board) Place(c Coord, p PlayerID) error {
	if !c.InBounds() {
		return ErrOutOfBounds
	}
	if !p.IsSide() {
		return ErrInvalidPlayer
	}
	if b.At(c) != Empty {
		return ErrCellOccupied
	}
	b.Set(c, p)
	return nil
}

func (b *Board) IsFull() bool {
	for l := range b {
		for r := range b[l] {
			for c := range b[l][r] {
				if b[l][r][c] == Empty {
					return false
				}
			}
		}
	}
	return true
}

// EmptyCells lists the empty cells in scan order: layer, then row, then
// column, all ascending. Move ordering (and so tie-breaking) depends on it.
func (b *Board) EmptyCells() []Coord {
	moves := make([]Coord, 0, Cells)
	for l := 0; l < Size; l++ {
		for r := 0; r < Size; r++ {
			for c := 0; c < Size; c++ {
				if b[l][r][c] == Empty {
					moves = append(moves, Coord{Layer: l, Row: r, Col: c})
				}
			}
		}
	}
	return moves
}

func (b *Board) Count(p PlayerID) int {
	n := 0
	for l := range b {
		for r := range b[l] {
			for c := range b[l][r] {
				if b[l][r][c] == p {
					n++
				}
			}
		}
	}
	return n
}

func (b *Board) Reset() {
	*b = Board{}
}
