package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-universe/rules"
)

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// String renders a cell the way the terminal output shows it
func (c Cell) String() string {
	if c == Alive {
		return "x"
	}
	return "-"
}

// Grid owns the current generation of a fixed-size toroidal universe.
//
// Two buffers of the same shape are kept. Step reads only the active buffer,
// writes the next generation into the other one and then swaps them, so callers
// never observe a half-computed generation. A Grid is not safe for concurrent use.
type Grid struct {
	rows    int
	cols    int
	buffers [2][][]Cell
	active  int
}

// NewGrid creates a rows x cols grid with every cell seeded by a fair coin flip
// drawn from rng. A nil rng falls back to a time-seeded source.
func NewGrid(rows, cols int, rng *rand.Rand) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] rows: %d, cols: %d", rows, cols)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}

	g := newEmptyGrid(rows, cols)
	for _, row := range g.current() {
		for j := range row {
			row[j] = Cell(rng.IntN(2))
		}
	}
	return g, nil
}

// NewGridFromCells creates a grid holding a copy of the given pattern
func NewGridFromCells(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidDimension, "[NewGridFromCells] empty pattern")
	}

	g := newEmptyGrid(len(cells), len(cells[0]))
	for i, row := range cells {
		if len(row) != g.cols {
			return nil, errors.Wrapf(ErrInvalidDimension,
				"[NewGridFromCells] row %d has %d cells, want %d", i, len(row), g.cols)
		}
		for j, c := range row {
			if c != Alive {
				c = Dead
			}
			g.current()[i][j] = c
		}
	}
	return g, nil
}

func newEmptyGrid(rows, cols int) *Grid {
	g := &Grid{rows: rows, cols: cols}
	for b := range g.buffers {
		g.buffers[b] = make([][]Cell, rows)
		for i := range g.buffers[b] {
			g.buffers[b][i] = make([]Cell, cols)
		}
	}
	return g
}

func (g *Grid) current() [][]Cell {
	return g.buffers[g.active]
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns
func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsAlive reports whether the cell at (row, col) is alive
func (g *Grid) IsAlive(row, col int) (bool, error) {
	if !g.inBounds(row, col) {
		return false, errors.Wrapf(ErrIndexOutOfBounds, "[IsAlive] (%d, %d) outside %dx%d", row, col, g.rows, g.cols)
	}
	return g.current()[row][col] == Alive, nil
}

// CountLiveNeighbors counts the live cells among the eight positions around
// (row, col), addressing them with wrapIndex.
func (g *Grid) CountLiveNeighbors(row, col int) (int, error) {
	if !g.inBounds(row, col) {
		return 0, errors.Wrapf(ErrIndexOutOfBounds,
			"[CountLiveNeighbors] (%d, %d) outside %dx%d", row, col, g.rows, g.cols)
	}
	return g.countLiveNeighbors(row, col), nil
}

func (g *Grid) countLiveNeighbors(row, col int) int {
	cells := g.current()
	count := 0
	for di := -1; di <= 1; di++ {
		ni := wrapIndex(row, di, g.rows)
		for dj := -1; dj <= 1; dj++ {
			if cells[ni][wrapIndex(col, dj, g.cols)] == Alive {
				count++
			}
		}
	}
	// the 3x3 block includes the cell itself
	if cells[row][col] == Alive {
		count--
	}
	return count
}

// wrapIndex moves pos by d on an axis of the given size. Stepping past the last
// index wraps to 0. Stepping below 0 resolves to the last index, counting back
// from the end of the axis.
func wrapIndex(pos, d, size int) int {
	n := pos + d
	if n > size-1 {
		return 0
	}
	if n < 0 {
		return size + n
	}
	return n
}

// Step advances the grid by one generation
func (g *Grid) Step() {
	var (
		cur  = g.current()
		next = g.buffers[1-g.active]
	)
	for i, row := range cur {
		for j, c := range row {
			if rules.ApplyConwayRules(g.countLiveNeighbors(i, j), c == Alive) {
				next[i][j] = Alive
			} else {
				next[i][j] = Dead
			}
		}
	}
	g.active = 1 - g.active
}

// Snapshot returns a copy of the current generation
func (g *Grid) Snapshot() [][]Cell {
	out := make([][]Cell, g.rows)
	for i, row := range g.current() {
		out[i] = append([]Cell(nil), row...)
	}
	return out
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, row := range g.current() {
		for _, c := range row {
			if c == Alive {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 digest of the current generation
func (g *Grid) Hash() string {
	h := md5.New()
	for _, row := range g.current() {
		for _, c := range row {
			h.Write([]byte{byte(c)})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
