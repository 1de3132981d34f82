package domain

// Message types pushed to the presentation layer.
const (
	MsgGameStart = "game_start"
	MsgMoveMade  = "move_made"
	MsgBotPass   = "bot_pass"
	MsgGameOver  = "game_over"
	MsgBoard     = "board"
)

type ServerMessage struct {
	Type        string         `json:"type"`
	GameID      string         `json:"gameId,omitempty"`
	Message     string         `json:"message,omitempty"`
	Player      int            `json:"player,omitempty"`
	Move        *Coord         `json:"move,omitempty"`
	Score       *int           `json:"score,omitempty"`
	Board       [][][]PlayerID `json:"board,omitempty"`
	NextTurn    int            `json:"nextTurn,omitempty"`
	Winner      int            `json:"winner,omitempty"`
	WinningLine []Coord        `json:"winningLine,omitempty"`
	Threats     []Coord        `json:"threats,omitempty"`
	Reason      string         `json:"reason,omitempty"`
}
