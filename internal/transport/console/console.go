package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row-3d/internal/domain"
	"github.com/iamasit07/4-in-a-row-3d/internal/service/game"
)

// Run reads commands from in until quit, EOF or ctx is cancelled. The
// session must have been created with n as its notifier.
func Run(ctx context.Context, in io.Reader, n *Notifier, session *game.GameSession) error {
	if err := session.Start(); err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		var line string
		var ok bool
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			select {
			case err := <-scanErr:
				return err
			default:
				return nil
			}
		}
		if line == "" {
			continue
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			n.Printf("%v (type help for commands)\n", err)
			continue
		}

		switch cmd.Kind {
		case CmdQuit:
			log.Info().Str("game", session.GameID).Msg("player quit")
			return nil
		case CmdHelp:
			n.Printf("%s", helpText)
		case CmdNew:
			if err := session.Reset(); err != nil {
				return fmt.Errorf("new game: %w", err)
			}
		case CmdThreats:
			n.Show(session.Snapshot())
			n.Printf("your threats %v, computer threats %v\n",
				session.Threats(session.HumanPlayer), session.Threats(session.BotPlayer))
		case CmdMove:
			err := session.HandleMove(cmd.Move)
			var derr domain.Error
			switch {
			case err == nil:
			case errors.Is(err, domain.ErrGameOver):
				n.Printf("game is over, type new to play again\n")
			case errors.As(err, &derr):
				n.Printf("illegal move %v: %v\n", cmd.Move, derr)
			default:
				return err
			}
		}
	}
}
