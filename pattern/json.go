package pattern

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-conway/model"
)

// jsonCell mirrors one entry of the cell list. Pointer fields distinguish a
// missing field from zero, and float64 lets the decoder reject fractional
// values itself instead of surfacing a bare type error.
type jsonCell struct {
	Row *float64 `json:"row"`
	Col *float64 `json:"col"`
}

// jsonPattern mirrors the object form of the document.
type jsonPattern struct {
	Rows  *int       `json:"rows"`
	Cols  *int       `json:"cols"`
	Cells []jsonCell `json:"cells"`
}

// maxCoordValue bounds a cell coordinate. Nothing larger can index a real
// grid, and converting such a float to int would overflow.
const maxCoordValue = math.MaxInt32

/*
DecodeJSON parses this project's JSON pattern format into its optional
declared dimensions and the live cells it lists.

Two document shapes are accepted. The schema is a stable contract, so
files written against it keep decoding across versions:

	[{"row": 0, "col": 1}, {"row": 1, "col": 2}]

	{"rows": 10, "cols": 20, "cells": [{"row": 0, "col": 1}]}

`rows` and `cols` are optional but must be declared together and be
positive; without them the caller derives a minimum bounding grid via
Bounds. Every cell needs non-negative integer `row` and `col` values of
at most 2^31-1. Cell order is preserved.
*/
func DecodeJSON(text string) (*Pattern, error) {
	var doc jsonPattern
	if strings.HasPrefix(strings.TrimSpace(text), "[") {
		if err := json.Unmarshal([]byte(text), &doc.Cells); err != nil {
			return nil, errors.Wrapf(ErrMalformedJSON, "[DecodeJSON] cell list: %v", err)
		}
	} else {
		if err := json.Unmarshal([]byte(text), &doc); err != nil {
			return nil, errors.Wrapf(ErrMalformedJSON, "[DecodeJSON] pattern object: %v", err)
		}
	}

	if (doc.Rows == nil) != (doc.Cols == nil) {
		return nil, errors.Wrap(ErrMalformedJSON, "[DecodeJSON] rows and cols must be declared together")
	}

	p := &Pattern{}
	if doc.Rows != nil {
		if *doc.Rows <= 0 || *doc.Cols <= 0 {
			return nil, errors.Wrapf(ErrMalformedJSON, "[DecodeJSON] declared dimensions %dx%d must be positive", *doc.Rows, *doc.Cols)
		}
		p.Rows, p.Cols = *doc.Rows, *doc.Cols
	}

	for i, cell := range doc.Cells {
		row, err := coordValue(cell.Row, "row", i)
		if err != nil {
			return nil, err
		}
		col, err := coordValue(cell.Col, "col", i)
		if err != nil {
			return nil, err
		}
		p.Cells = append(p.Cells, model.Coord{Row: row, Col: col})
	}

	return p, nil
}

// coordValue validates a single row/col field of the cell at index idx.
func coordValue(v *float64, field string, idx int) (int, error) {
	switch {
	case v == nil:
		return 0, errors.Wrapf(ErrInvalidCoordinate, "[DecodeJSON] cell %d is missing %q", idx, field)
	case *v != math.Trunc(*v):
		return 0, errors.Wrapf(ErrInvalidCoordinate, "[DecodeJSON] cell %d has non-integer %s %v", idx, field, *v)
	case *v < 0:
		return 0, errors.Wrapf(ErrInvalidCoordinate, "[DecodeJSON] cell %d has negative %s %v", idx, field, *v)
	case *v > maxCoordValue:
		return 0, errors.Wrapf(ErrInvalidCoordinate, "[DecodeJSON] cell %d has out-of-range %s %v", idx, field, *v)
	}
	return int(*v), nil
}
