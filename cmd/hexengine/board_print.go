package main

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/hexmind/hexengine/pkg/hexboard"
)

var profile = termenv.ColorProfile()

func colorize(label string, color hexboard.Color) string {
	switch color {
	case hexboard.ColorA:
		return termenv.String(label).Foreground(profile.Color("39")).Bold().String()
	case hexboard.ColorB:
		return termenv.String(label).Foreground(profile.Color("203")).Bold().String()
	default:
		return termenv.String(label).Foreground(profile.Color("240")).String()
	}
}

// renderBoard draws the rhombic Hex grid, indenting each row so the
// hex adjacency reads left-to-right the way it plays.
func renderBoard(b *hexboard.Board) string {
	var out strings.Builder

	out.WriteString("  ")
	for c := 0; c < b.Size; c++ {
		out.WriteString(fmt.Sprintf(" %c", rune('a'+c)))
	}
	out.WriteByte('\n')

	for r := 0; r < b.Size; r++ {
		out.WriteString(strings.Repeat(" ", r))
		out.WriteString(fmt.Sprintf("%2d ", r+1))
		for c := 0; c < b.Size; c++ {
			stone := b.At(hexboard.Cell{Row: r, Col: c})
			out.WriteString(colorize(stone.String(), stone))
			out.WriteByte(' ')
		}
		out.WriteByte('\n')
	}
	return out.String()
}
