package model

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const turnSeparator = "----------------------------------"

// TerminalRenderer prints generations as text, one line per row
type TerminalRenderer struct {
	out io.Writer
}

func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

// DisplayTurn prints the turn banner followed by the grid
func (r *TerminalRenderer) DisplayTurn(turn int, g *Grid) error {
	if _, err := fmt.Fprintf(r.out, "%s\n           Turn %d              \n\n", turnSeparator, turn); err != nil {
		return errors.Wrapf(err, "[DisplayTurn] failed to write banner for turn: %d", turn)
	}
	return r.Display(g)
}

// Display renders the grid followed by a blank separator line
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.out)
	for _, row := range g.current() {
		for _, c := range row {
			w.WriteString(c.String())
		}
		w.WriteByte('\n')
	}
	w.WriteByte('\n')
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "[Display] failed to write grid")
	}
	return nil
}
