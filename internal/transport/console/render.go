package console

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/iamasit07/4-in-a-row-3d/internal/domain"
)

const layerGap = "    "

// RenderBoard draws the four layers side by side. Cells on the winning line
// are bracketed, the last move is parenthesised and empty threat cells are
// shown as '*'.
func RenderBoard(board [][][]domain.PlayerID, last *domain.Coord, winning, threats []domain.Coord) string {
	var sb strings.Builder

	headers := make([]string, len(board))
	for l := range board {
		headers[l] = fmt.Sprintf("%-14s", fmt.Sprintf("layer %d", l))
	}
	sb.WriteString("    " + strings.Join(headers, layerGap) + "\n")

	cols := make([]string, domain.Size)
	for c := range cols {
		cols[c] = fmt.Sprintf(" %d ", c)
	}
	colHeader := strings.Join(cols, "") + "  "
	sb.WriteString("    " + strings.Join(lo.Times(len(board), func(int) string { return colHeader }), layerGap) + "\n")

	for r := 0; r < domain.Size; r++ {
		rows := make([]string, len(board))
		for l := range board {
			var row strings.Builder
			for c := 0; c < domain.Size; c++ {
				row.WriteString(renderCell(board[l][r][c], domain.Coord{Layer: l, Row: r, Col: c}, last, winning, threats))
			}
			row.WriteString("  ")
			rows[l] = row.String()
		}
		fmt.Fprintf(&sb, "%d   %s\n", r, strings.Join(rows, layerGap))
	}
	return sb.String()
}

func renderCell(p domain.PlayerID, c domain.Coord, last *domain.Coord, winning, threats []domain.Coord) string {
	switch {
	case lo.Contains(winning, c):
		return "[" + p.Symbol() + "]"
	case last != nil && *last == c:
		return "(" + p.Symbol() + ")"
	case p == domain.Empty && lo.Contains(threats, c):
		return " * "
	default:
		return " " + p.Symbol() + " "
	}
}
