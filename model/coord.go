package model

// Coord identifies a single cell by its zero-based row and column.
type Coord struct {
	Row int
	Col int
}
