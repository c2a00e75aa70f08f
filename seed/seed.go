// Package seed builds populated grids from one of three seeding modes:
// random density, an RLE pattern file, or a JSON pattern file. The modes
// are mutually exclusive by construction, and Initialize is all-or-nothing:
// a failed run never leaks a partially-populated grid.
package seed

import (
	"math"
	"math/rand/v2"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-conway/model"
	"github.com/sheikhrachel/go-conway/pattern"
)

// Kind identifies a seeding mode.
type Kind uint8

const (
	// KindNone is the zero Source's mode; Initialize rejects it.
	KindNone Kind = iota
	// KindRandom seeds every cell independently with a fixed probability.
	KindRandom
	// KindRLE seeds from a Run-Length-Encoded pattern file.
	KindRLE
	// KindJSON seeds from a JSON cell-list pattern file.
	KindJSON
)

// Source selects exactly one way of producing the initial generation.
// Construct sources with Random, FromRLE, or FromJSON; the zero value
// selects nothing and fails Initialize.
type Source struct {
	kind    Kind
	density float64
	path    string
}

// Random seeds each cell alive independently with the given probability.
func Random(density float64) Source {
	return Source{kind: KindRandom, density: density}
}

// FromRLE seeds from the Run-Length-Encoded pattern file at path.
func FromRLE(path string) Source {
	return Source{kind: KindRLE, path: path}
}

// FromJSON seeds from the JSON pattern file at path.
func FromJSON(path string) Source {
	return Source{kind: KindJSON, path: path}
}

// Kind reports which seeding mode the source selects.
func (s Source) Kind() Kind {
	return s.kind
}

// Options carries the requested grid geometry and the random source used by
// Initialize.
type Options struct {
	// Rows and Cols request a grid size. For file-backed sources a zero
	// dimension is derived from the pattern instead; random seeding
	// requires both.
	Rows int
	Cols int

	// Edge is the boundary policy of the produced grid.
	Edge model.EdgePolicy

	// Rand drives random seeding. Nil falls back to a time-seeded source,
	// so tests inject a fixed one for determinism.
	Rand *rand.Rand
}

// rng returns the injected random source, or a time-seeded one when the
// caller provided none.
func (o Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
}

// Initialize builds a grid populated from the given source.
func Initialize(opts Options, src Source) (*model.Grid, error) {
	switch src.kind {
	case KindRandom:
		return initializeRandom(opts, src.density)
	case KindRLE, KindJSON:
		return initializeFromFile(opts, src)
	default:
		return nil, errors.Wrap(ErrInvalidSource, "[Initialize] zero source")
	}
}

func initializeRandom(opts Options, density float64) (*model.Grid, error) {
	if opts.Rows <= 0 || opts.Cols <= 0 {
		return nil, errors.Wrapf(ErrMissingDimensions, "[Initialize] random seeding got %dx%d", opts.Rows, opts.Cols)
	}
	if math.IsNaN(density) || density < 0 || density > 1 {
		return nil, errors.Wrapf(ErrInvalidProbability, "[Initialize] density %v", density)
	}

	grid, err := model.NewGridWithEdge(opts.Rows, opts.Cols, opts.Edge)
	if err != nil {
		return nil, err
	}
	grid.Randomize(opts.rng(), density)
	return grid, nil
}

func initializeFromFile(opts Options, src Source) (*model.Grid, error) {
	data, err := os.ReadFile(src.path)
	if err != nil {
		return nil, errors.Wrapf(ErrFileRead, "[Initialize] pattern file %s: %v", src.path, err)
	}

	var pat *pattern.Pattern
	if src.kind == KindJSON {
		pat, err = pattern.DecodeJSON(string(data))
	} else {
		pat, err = pattern.DecodeRLE(string(data))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "[Initialize] pattern file %s", src.path)
	}

	return place(opts, pat)
}

// place builds the grid at the resolved dimensions and copies the pattern
// into it. Each dimension resolves to max(requested, pattern); the pattern
// box is then centered by floor division, which degenerates to absolute
// placement when the grid is exactly pattern-sized.
func place(opts Options, pat *pattern.Pattern) (*model.Grid, error) {
	patRows, patCols := pat.Bounds()

	rows, cols := patRows, patCols
	if opts.Rows > 0 {
		rows = max(rows, opts.Rows)
	}
	if opts.Cols > 0 {
		cols = max(cols, opts.Cols)
	}

	grid, err := model.NewGridWithEdge(rows, cols, opts.Edge)
	if err != nil {
		return nil, err
	}

	offRow := (rows - patRows) / 2
	offCol := (cols - patCols) / 2
	for _, cell := range pat.Cells {
		target := model.Coord{Row: cell.Row + offRow, Col: cell.Col + offCol}
		if err := grid.SetAlive(target); err != nil {
			return nil, errors.Wrapf(ErrPatternTooLarge,
				"[Initialize] pattern cell (%d,%d) lands at (%d,%d), outside the %dx%d grid",
				cell.Row, cell.Col, target.Row, target.Col, rows, cols)
		}
	}
	return grid, nil
}
