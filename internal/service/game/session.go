package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row-3d/internal/domain"
	"github.com/iamasit07/4-in-a-row-3d/internal/service/bot"
	"github.com/iamasit07/4-in-a-row-3d/pkg/uid"
)

// Notifier receives every state change of a session. The presentation layer
// implements it and re-renders from the message.
type Notifier interface {
	Notify(msg domain.ServerMessage) error
}

// MoveEngine is the part of bot.Engine a session needs.
type MoveEngine interface {
	BestMove(board domain.Board, botPlayer domain.PlayerID) (bot.SearchResult, bot.Stats, error)
}

// GameSession holds the authoritative game between one human and the engine.
type GameSession struct {
	GameID      string
	Game        *domain.Game
	HumanPlayer domain.PlayerID
	BotPlayer   domain.PlayerID
	CreatedAt   time.Time
	FinishedAt  time.Time
	LastScore   *int

	engine   MoveEngine
	notifier Notifier
	mu       sync.Mutex
}

func NewGameSession(patterns domain.PatternSet, human domain.PlayerID, engine MoveEngine, notifier Notifier) (*GameSession, error) {
	if !human.IsSide() {
		return nil, fmt.Errorf("new session: %w", domain.ErrInvalidPlayer)
	}
	return &GameSession{
		GameID:      uid.GenerateGameID(),
		Game:        domain.NewGame(patterns),
		HumanPlayer: human,
		BotPlayer:   human.Opponent(),
		CreatedAt:   time.Now(),
		engine:      engine,
		notifier:    notifier,
	}, nil
}

// Start announces the game and, when the engine plays first, makes its move.
func (gs *GameSession) Start() error {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.startLocked()
}

func (gs *GameSession) startLocked() error {
	log.Info().Str("game", gs.GameID).Str("human", gs.HumanPlayer.Symbol()).Msg("game started")
	gs.send(gs.stateMessage(domain.MsgGameStart, nil))
	if gs.Game.CurrentPlayer == gs.BotPlayer {
		return gs.botMoveLocked()
	}
	return nil
}

// HandleMove applies the human's move and, if the game goes on, answers with
// the engine's move.
func (gs *GameSession) HandleMove(c domain.Coord) error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.Game.IsFinished() {
		return domain.ErrGameOver
	}
	if gs.Game.CurrentPlayer != gs.HumanPlayer {
		return domain.ErrNotYourTurn
	}
	if err := gs.Game.MakeMove(gs.HumanPlayer, c); err != nil {
		return err
	}

	log.Debug().Str("game", gs.GameID).Stringer("move", c).Msg("human move")
	gs.send(gs.stateMessage(domain.MsgMoveMade, &c))

	if gs.Game.IsFinished() {
		gs.finishLocked()
		return nil
	}
	return gs.botMoveLocked()
}

// HandleBotMove plays the engine's turn. It is a no-op when it is not the
// engine's turn.
func (gs *GameSession) HandleBotMove() error {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.botMoveLocked()
}

func (gs *GameSession) botMoveLocked() error {
	if gs.Game.IsFinished() || gs.Game.CurrentPlayer != gs.BotPlayer {
		return nil
	}

	// the engine works on a snapshot; the session's board is only touched
	// through MakeMove
	result, stats, err := gs.engine.BestMove(gs.Game.Board, gs.BotPlayer)
	if err != nil {
		return fmt.Errorf("bot move: %w", err)
	}
	score := result.Score
	gs.LastScore = &score

	if result.Move == nil {
		log.Info().Str("game", gs.GameID).Int("score", score).Msg("engine has no move, passing")
		gs.Game.Pass()
		gs.send(gs.stateMessage(domain.MsgBotPass, nil))
		return nil
	}

	move := *result.Move
	if err := gs.Game.MakeMove(gs.BotPlayer, move); err != nil {
		return fmt.Errorf("bot move %v: %w", move, err)
	}

	log.Debug().
		Str("game", gs.GameID).
		Stringer("move", move).
		Int("score", score).
		Int64("nodes", stats.Nodes).
		Dur("elapsed", stats.Elapsed).
		Msg("bot move")
	gs.send(gs.stateMessage(domain.MsgMoveMade, &move))

	if gs.Game.IsFinished() {
		gs.finishLocked()
	}
	return nil
}

// Reset clears the board for a new game with the same sides.
func (gs *GameSession) Reset() error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.Game.Reset()
	gs.GameID = uid.GenerateGameID()
	gs.CreatedAt = time.Now()
	gs.FinishedAt = time.Time{}
	gs.LastScore = nil
	return gs.startLocked()
}

// Threats returns the cells where player could complete a line right now.
func (gs *GameSession) Threats(player domain.PlayerID) []domain.Coord {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return domain.FindThreats(&gs.Game.Board, gs.Game.Patterns(), player)
}

// Snapshot returns the current state as a board message without sending it,
// for hosts that redraw on demand.
func (gs *GameSession) Snapshot() domain.ServerMessage {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.stateMessage(domain.MsgBoard, gs.Game.LastMove)
}

func (gs *GameSession) finishLocked() {
	gs.FinishedAt = time.Now()
	duration := gs.FinishedAt.Sub(gs.CreatedAt)

	msg := gs.stateMessage(domain.MsgGameOver, gs.Game.LastMove)
	if gs.Game.Status == domain.StatusWon {
		msg.Reason = "four_in_a_row"
	} else {
		msg.Reason = "draw"
	}

	log.Info().
		Str("game", gs.GameID).
		Str("reason", msg.Reason).
		Str("winner", gs.Game.Winner.Symbol()).
		Int("moves", gs.Game.MoveCount).
		Dur("duration", duration).
		Msg("game over")
	gs.send(msg)
}

func (gs *GameSession) stateMessage(msgType string, move *domain.Coord) domain.ServerMessage {
	g := gs.Game
	msg := domain.ServerMessage{
		Type:        msgType,
		GameID:      gs.GameID,
		Move:        move,
		Score:       gs.LastScore,
		Board:       g.Board.ToSlices(),
		Winner:      int(g.Winner),
		WinningLine: g.WinningLine,
	}
	if move != nil {
		msg.Player = int(g.Board.At(*move))
	}
	if !g.IsFinished() {
		msg.NextTurn = int(g.CurrentPlayer)
		msg.Threats = domain.FindThreats(&g.Board, g.Patterns(), gs.BotPlayer)
	}
	return msg
}

func (gs *GameSession) send(msg domain.ServerMessage) {
	if gs.notifier == nil {
		return
	}
	if err := gs.notifier.Notify(msg); err != nil {
		log.Warn().Err(err).Str("game", gs.GameID).Str("type", msg.Type).Msg("notify failed")
	}
}
