package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-conway/rules"
)

// EdgePolicy selects how neighbor counting treats positions outside the grid.
type EdgePolicy uint8

const (
	// EdgeClipped treats every position outside the grid as permanently dead.
	EdgeClipped EdgePolicy = iota
	// EdgeWrap joins opposite edges so the grid behaves as a torus.
	EdgeWrap
)

// Grid represents the game board: a fixed-size matrix of live/dead cells.
//
// The grid holds two equally-sized cell matrices and swaps them on every
// Step, so each generation is computed entirely from a snapshot of the
// previous one. A Grid is not safe for concurrent use; callers driving
// Step and reads from different goroutines own that exclusion.
type Grid struct {
	rows, cols int
	edge       EdgePolicy
	cells      [][]bool
	scratch    [][]bool // next-generation buffer, swapped with cells on Step
}

// NewGrid creates a grid with clipped edges and all cells dead.
func NewGrid(rows, cols int) (*Grid, error) {
	return NewGridWithEdge(rows, cols, EdgeClipped)
}

// NewGridWithEdge creates a grid with the given edge policy and all cells dead.
func NewGridWithEdge(rows, cols int, edge EdgePolicy) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGridWithEdge] got %dx%d", rows, cols)
	}
	return &Grid{
		rows:    rows,
		cols:    cols,
		edge:    edge,
		cells:   newCellMatrix(rows, cols),
		scratch: newCellMatrix(rows, cols),
	}, nil
}

func newCellMatrix(rows, cols int) [][]bool {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return cells
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int {
	return g.cols
}

// Edge returns the grid's edge policy.
func (g *Grid) Edge() EdgePolicy {
	return g.edge
}

// SetAlive marks the cell at c alive. Marking a live cell again is a no-op.
func (g *Grid) SetAlive(c Coord) error {
	if !g.inBounds(c) {
		return errors.Wrapf(ErrOutOfBounds, "[SetAlive] cell (%d,%d) outside %dx%d grid", c.Row, c.Col, g.rows, g.cols)
	}
	g.cells[c.Row][c.Col] = true
	return nil
}

// IsAlive reports whether the cell at c is alive.
func (g *Grid) IsAlive(c Coord) (bool, error) {
	if !g.inBounds(c) {
		return false, errors.Wrapf(ErrOutOfBounds, "[IsAlive] cell (%d,%d) outside %dx%d grid", c.Row, c.Col, g.rows, g.cols)
	}
	return g.cells[c.Row][c.Col], nil
}

func (g *Grid) inBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Step advances the grid by one generation, replacing the current state.
//
// Every cell's next state is derived from the pre-step snapshot: results
// accumulate in the scratch matrix and the buffers are swapped once the
// full pass is complete, so no cell ever observes a neighbor's already
// updated state.
func (g *Grid) Step() {
	for row := range g.rows {
		for col := range g.cols {
			g.scratch[row][col] = rules.ApplyConwayRules(g.countLiveNeighbors(row, col), g.cells[row][col])
		}
	}
	g.cells, g.scratch = g.scratch, g.cells
}

// countLiveNeighbors counts live cells in the Moore neighborhood of (row, col).
func (g *Grid) countLiveNeighbors(row, col int) int {
	if g.edge == EdgeWrap {
		return g.countLiveNeighborsWrapped(row, col)
	}

	count := 0

	// Clamp the neighborhood to the grid, so off-grid positions count as dead
	minRow := max(0, row-1)
	maxRow := min(g.rows-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.cols-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue // Skip the cell itself
			}
			if g.cells[r][c] {
				count++
			}
		}
	}

	return count
}

// countLiveNeighborsWrapped counts Moore neighbors with toroidal indexing.
func (g *Grid) countLiveNeighborsWrapped(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr + g.rows) % g.rows
			c := (col + dc + g.cols) % g.cols
			if g.cells[r][c] {
				count++
			}
		}
	}
	return count
}

// LiveCells returns the coordinates of every live cell in row-major order.
// The slice is a complete snapshot of the current generation; mutating the
// grid afterwards does not affect it.
func (g *Grid) LiveCells() []Coord {
	var live []Coord
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col] {
				live = append(live, Coord{Row: row, Col: col})
			}
		}
	}
	return live
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col] {
				count++
			}
		}
	}
	return
}

// Randomize fills the grid with random living cells, each alive with the
// given probability. The random source must not be nil.
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for row := range g.rows {
		for col := range g.cols {
			g.cells[row][col] = rng.Float64() < density
		}
	}
}

// Fingerprint returns an MD5 hash of the current grid state, used by the
// run loop to detect static or cycling boards.
func (g *Grid) Fingerprint() string {
	h := md5.New()
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
