package pattern

import "github.com/sheikhrachel/go-conway/model"

// Pattern is a decoded arrangement of live cells, relative to origin (0,0).
//
// Rows and Cols hold the pattern's declared bounding box; decoders that
// allow omitting dimensions (JSON) leave both zero when the input declared
// none. Rule is the rule string the source declared, if any; it is recorded
// for information only: the engine always applies B3/S23 semantics, a
// documented limitation rather than a validation failure.
type Pattern struct {
	Rows  int
	Cols  int
	Rule  string
	Cells []model.Coord
}

// Bounds returns the declared bounding box, falling back to the minimal box
// containing every live cell (maximum row/col plus one) when the source
// declared no dimensions.
func (p *Pattern) Bounds() (rows, cols int) {
	if p.Rows > 0 && p.Cols > 0 {
		return p.Rows, p.Cols
	}
	for _, c := range p.Cells {
		rows = max(rows, c.Row+1)
		cols = max(cols, c.Col+1)
	}
	return rows, cols
}
