package pattern

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-conway/model"
)

// headerRE matches the RLE header line `x = <int>, y = <int>` with an
// optional trailing `, rule = <string>`. Matching is case-insensitive with
// flexible spacing, and `type` is accepted as an alias for `rule` because
// older community files use it.
var headerRE = regexp.MustCompile(`(?i)^x\s*=\s*(\d+)\s*,\s*y\s*=\s*(\d+)\s*(?:,\s*(?:rule|type)\s*=\s*(\S+)\s*)?$`)

// maxRunCount caps a single run length; anything larger cannot describe a
// cell inside a sane bounding box and would risk overflowing the cursor.
const maxRunCount = 1 << 30

/*
DecodeRLE parses a Run-Length-Encoded life pattern, as used by the pattern
collections on conwaylife.com, into its declared bounding box and the live
cells it describes.

The format: `#`-prefixed comment lines; one header line
`x = <width>, y = <height>(, rule = <string>)?`; then a body of
`<count><tag>` runs where `b` advances over dead cells, `o` emits live
cells, `$` ends the row (a count skips several rows), a missing count means
1, and `!` terminates the pattern; everything after it is ignored. The
declared rule is recorded on the Pattern but never alters decoding; only
B3/S23 semantics are implemented downstream.

Live cells are emitted in row-major order relative to the pattern origin;
offsetting into a larger grid is the caller's concern.
*/
func DecodeRLE(text string) (*Pattern, error) {
	var (
		headerSeen bool
		rows, cols int
		rule       string
		bodyLines  []string
	)

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if headerSeen {
			bodyLines = append(bodyLines, trimmed)
			continue
		}

		m := headerRE.FindStringSubmatch(trimmed)
		if m == nil {
			return nil, errors.Wrapf(ErrMalformedHeader, "[DecodeRLE] expected `x = <int>, y = <int>` header, got %q", trimmed)
		}

		var err error
		if cols, err = strconv.Atoi(m[1]); err != nil {
			return nil, errors.Wrapf(ErrMalformedHeader, "[DecodeRLE] width %q out of range", m[1])
		}
		if rows, err = strconv.Atoi(m[2]); err != nil {
			return nil, errors.Wrapf(ErrMalformedHeader, "[DecodeRLE] height %q out of range", m[2])
		}
		if rows == 0 || cols == 0 {
			return nil, errors.Wrapf(ErrMalformedHeader, "[DecodeRLE] declared dimensions %dx%d must be positive", rows, cols)
		}
		rule = m[3]
		headerSeen = true
	}

	if !headerSeen {
		return nil, errors.Wrap(ErrMalformedHeader, "[DecodeRLE] missing header line")
	}

	cells, err := decodeRLEBody(bodyLines, rows, cols)
	if err != nil {
		return nil, err
	}

	return &Pattern{Rows: rows, Cols: cols, Rule: rule, Cells: cells}, nil
}

// decodeRLEBody walks the run tokens, tracking a (row, col) cursor and
// emitting a coordinate for every live cell. Live cells are cross-checked
// against the declared box rather than clamped; dead runs may pad past the
// edge, which some generators do.
func decodeRLEBody(lines []string, rows, cols int) ([]model.Coord, error) {
	var (
		cells      []model.Coord
		row, col   int
		count      int
		terminated bool
	)

scan:
	for _, line := range lines {
		for _, tag := range line {
			switch {
			case tag >= '0' && tag <= '9':
				count = count*10 + int(tag-'0')
				if count > maxRunCount {
					return nil, errors.Wrapf(ErrMalformedBody, "[DecodeRLE] run count on row %d is absurdly large", row)
				}
			case tag == 'b' || tag == 'B':
				col += runLength(count)
				count = 0
			case tag == 'o' || tag == 'O':
				n := runLength(count)
				count = 0
				if row >= rows || col+n > cols {
					return nil, errors.Wrapf(ErrMalformedBody, "[DecodeRLE] live run of %d at (%d,%d) exceeds the declared %dx%d box", n, row, col, rows, cols)
				}
				for range n {
					cells = append(cells, model.Coord{Row: row, Col: col})
					col++
				}
			case tag == '$':
				row += runLength(count)
				count = 0
				col = 0
			case tag == '!':
				terminated = true
				break scan
			case tag == ' ' || tag == '\t' || tag == '\r':
				// bodies wrap at arbitrary columns; stray whitespace is fine
			default:
				return nil, errors.Wrapf(ErrMalformedBody, "[DecodeRLE] unrecognized tag %q on row %d", tag, row)
			}
		}
	}

	// A missing terminator is tolerated, but a count with no tag to apply
	// it to means the pattern was cut off mid-run.
	if !terminated && count != 0 {
		return nil, errors.Wrap(ErrMalformedBody, "[DecodeRLE] dangling run count at end of pattern")
	}

	return cells, nil
}

// runLength interprets a pending count, which defaults to 1 when absent.
func runLength(count int) int {
	if count == 0 {
		return 1
	}
	return count
}
