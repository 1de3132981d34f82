package console

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row-3d/internal/domain"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

// Notifier writes session messages to a terminal, either as a rendered board
// or as one JSON object per line.
type Notifier struct {
	w     io.Writer
	mode  string
	human domain.PlayerID

	// writeMu keeps concurrent messages from interleaving on w.
	writeMu sync.Mutex
}

func NewNotifier(w io.Writer, mode string, human domain.PlayerID) *Notifier {
	if mode != OutputJSON {
		mode = OutputText
	}
	return &Notifier{w: w, mode: mode, human: human}
}

func (n *Notifier) Notify(msg domain.ServerMessage) error {
	n.writeMu.Lock()
	defer n.writeMu.Unlock()

	if n.mode == OutputJSON {
		return json.NewEncoder(n.w).Encode(msg)
	}
	_, err := io.WriteString(n.w, n.describe(msg))
	return err
}

// Printf writes free text in text mode and an info message in JSON mode.
// Write errors are logged, not returned.
func (n *Notifier) Printf(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	var err error
	if n.mode == OutputJSON {
		err = n.Notify(domain.ServerMessage{Type: "info", Message: text})
	} else {
		n.writeMu.Lock()
		_, err = io.WriteString(n.w, text)
		n.writeMu.Unlock()
	}
	if err != nil {
		log.Warn().Err(err).Msg("console write failed")
	}
}

// Show is Notify for messages the host pulls itself, such as redraws.
func (n *Notifier) Show(msg domain.ServerMessage) {
	if err := n.Notify(msg); err != nil {
		log.Warn().Err(err).Str("type", msg.Type).Msg("console write failed")
	}
}

func (n *Notifier) describe(msg domain.ServerMessage) string {
	var head string
	switch msg.Type {
	case domain.MsgGameStart:
		head = fmt.Sprintf("new game %s, you play %s\n", msg.GameID, n.human.Symbol())
	case domain.MsgMoveMade:
		who := "computer"
		if domain.PlayerID(msg.Player) == n.human {
			who = "you"
		}
		head = fmt.Sprintf("%s (%s) played %v\n", who, domain.PlayerID(msg.Player).Symbol(), *msg.Move)
		if who == "computer" && msg.Score != nil {
			head += fmt.Sprintf("evaluation %+d\n", *msg.Score)
		}
	case domain.MsgBotPass:
		head = "computer has no move and passes\n"
	case domain.MsgBoard:
	case domain.MsgGameOver:
		switch {
		case msg.Winner == int(n.human):
			head = "four in a row, you win!\n"
		case msg.Winner != 0:
			head = "four in a row, the computer wins\n"
		default:
			head = "board is full, draw\n"
		}
	default:
		return msg.Message + "\n"
	}

	var last *domain.Coord
	if msg.Move != nil && domain.PlayerID(msg.Player) != n.human {
		last = msg.Move
	}
	out := head + RenderBoard(msg.Board, last, msg.WinningLine, msg.Threats)
	if len(msg.Threats) > 0 {
		out += fmt.Sprintf("computer threatens %v\n", msg.Threats)
	}
	if msg.Type != domain.MsgGameOver && domain.PlayerID(msg.NextTurn) == n.human {
		out += "your move> "
	}
	return out
}
