package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iamasit07/4-in-a-row-3d/internal/domain"
)

type CommandKind int

const (
	CmdMove CommandKind = iota
	CmdNew
	CmdThreats
	CmdHelp
	CmdQuit
)

type Command struct {
	Kind CommandKind
	Move domain.Coord
}

const helpText = `commands:
  <layer> <row> <col>   place your mark, e.g. "0 3 1" (commas allowed)
  new                   restart on an empty board
  threats               show cells where either side can win next move
  help                  show this help
  quit                  leave
`

// ParseCommand reads one input line. Coordinates are 0-based.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ReplaceAll(strings.TrimSpace(line), ",", " "))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	switch strings.ToLower(fields[0]) {
	case "new", "reset", "n":
		return Command{Kind: CmdNew}, nil
	case "threats", "t":
		return Command{Kind: CmdThreats}, nil
	case "help", "h", "?":
		return Command{Kind: CmdHelp}, nil
	case "quit", "exit", "q":
		return Command{Kind: CmdQuit}, nil
	}

	if len(fields) != 3 {
		return Command{}, fmt.Errorf("unknown command %q", line)
	}
	var xs [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Command{}, fmt.Errorf("bad coordinate %q: %w", f, err)
		}
		xs[i] = v
	}
	c := domain.Coord{Layer: xs[0], Row: xs[1], Col: xs[2]}
	if !c.InBounds() {
		return Command{}, fmt.Errorf("%v: %w", c, domain.ErrOutOfBounds)
	}
	return Command{Kind: CmdMove, Move: c}, nil
}
