package domain

import "fmt"

var BotNames = map[string]string{
	"easy":   "Alice",
	"medium": "Bob",
	"hard":   "Charles",
}

func GetBotName(difficulty string) string {
	if name, ok := BotNames[difficulty]; ok {
		return name
	}
	return "BOT"
}

// PlayerID is the state of a single cell, and doubles as the side to move.
// Player1 ("X") is the maximizing side, Player2 ("O") the minimizing side.
type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

func (p PlayerID) Valid() bool {
	return p == Empty || p == Player1 || p == Player2
}

// IsSide reports whether p can move (Empty cannot).
func (p PlayerID) IsSide() bool {
	return p == Player1 || p == Player2
}

func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Empty
	}
}

func (p PlayerID) Symbol() string {
	switch p {
	case Player1:
		return "X"
	case Player2:
		return "O"
	default:
		return "."
	}
}

func ParsePlayer(s string) (PlayerID, error) {
	switch s {
	case "X", "x", "1":
		return Player1, nil
	case "O", "o", "2":
		return Player2, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrInvalidPlayer, s)
	}
}

const (
	// Size is the edge length of the cube on every axis.
	Size  = 4
	ToWin = 4
	Cells = Size * Size * Size
)

// Coord addresses one cell of the cube.
type Coord struct {
	Layer int `json:"layer"`
	Row   int `json:"row"`
	Col   int `json:"col"`
}

func (c Coord) InBounds() bool {
	return c.Layer >= 0 && c.Layer < Size &&
		c.Row >= 0 && c.Row < Size &&
		c.Col >= 0 && c.Col < Size
}

func (c Coord) Add(d Coord) Coord {
	return Coord{Layer: c.Layer + d.Layer, Row: c.Row + d.Row, Col: c.Col + d.Col}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.Layer, c.Row, c.Col)
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove   Error = "invalid move"
	ErrOutOfBounds   Error = "coordinate out of bounds"
	ErrCellOccupied  Error = "cell is occupied"
	ErrBadDimensions Error = "board must be 4x4x4"
	ErrInvalidCell   Error = "invalid cell value"
	ErrInvalidPlayer Error = "invalid player"
	ErrNotYourTurn   Error = "not your turn"
	ErrGameOver      Error = "game is over"
)
