package domain

type Game struct {
	Board         Board
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	WinningLine   []Coord
	MoveCount     int
	LastMove      *Coord
	patterns      PatternSet
}

func NewGame(patterns PatternSet) *Game {
	g := &Game{patterns: patterns}
	g.Reset()
	return g
}

// Reset starts a new game on the same pattern set.
func (g *Game) Reset() {
	g.Board.Reset()
	g.CurrentPlayer = Player1
	g.Status = StatusActive
	g.Winner = Empty
	g.WinningLine = nil
	g.MoveCount = 0
	g.LastMove = nil
}

func (g *Game) Patterns() PatternSet {
	return g.patterns
}

func (g *Game) MakeMove(player PlayerID, c Coord) error {
	if g.Status != StatusActive {
		return ErrGameOver
	}
	if !player.IsSide() {
		return ErrInvalidMove
	}
	if player != g.CurrentPlayer {
		return ErrNotYourTurn
	}

	if err := g.Board.Place(c, player); err != nil {
		return err
	}

	g.MoveCount++
	last := c
	g.LastMove = &last

	if line, winner, ok := WinningLine(&g.Board, g.patterns); ok {
		g.Status = StatusWon
		g.Winner = winner
		g.WinningLine = line[:]
		return nil
	}

	if IsBoardFull(&g.Board) {
		g.Status = StatusDraw
		return nil
	}

	g.CurrentPlayer = g.CurrentPlayer.Opponent()
	return nil
}

// Pass hands the turn to the other side without a move. The computer side
// does this when the search returns no move.
func (g *Game) Pass() {
	if g.Status == StatusActive {
		g.CurrentPlayer = g.CurrentPlayer.Opponent()
	}
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
