package pattern

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-conway/model"
)

func TestDecodeJSONCellList(t *testing.T) {
	p, err := DecodeJSON(`[{"row": 0, "col": 1}, {"row": 0, "col": 0}]`)
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}

	// Document order is preserved, not sorted
	assertCells(t, p.Cells, []model.Coord{
		{Row: 0, Col: 1},
		{Row: 0, Col: 0},
	})

	// No declared dimensions, so the bounding box is derived
	rows, cols := p.Bounds()
	if rows != 1 || cols != 2 {
		t.Fatalf("Bounds() = %dx%d, expected 1x2", rows, cols)
	}
}

func TestDecodeJSONObjectForm(t *testing.T) {
	p, err := DecodeJSON(`{"rows": 10, "cols": 20, "cells": [{"row": 4, "col": 7}]}`)
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	if p.Rows != 10 || p.Cols != 20 {
		t.Fatalf("declared dimensions = %dx%d, expected 10x20", p.Rows, p.Cols)
	}
	assertCells(t, p.Cells, []model.Coord{{Row: 4, Col: 7}})

	rows, cols := p.Bounds()
	if rows != 10 || cols != 20 {
		t.Fatalf("Bounds() = %dx%d, expected declared 10x20", rows, cols)
	}
}

func TestDecodeJSONEmptyDocuments(t *testing.T) {
	for _, text := range []string{`[]`, `{"cells": []}`, `{}`} {
		p, err := DecodeJSON(text)
		if err != nil {
			t.Fatalf("DecodeJSON(%s) failed: %v", text, err)
		}
		if len(p.Cells) != 0 {
			t.Fatalf("DecodeJSON(%s) produced %d cells", text, len(p.Cells))
		}
	}
}

func TestDecodeJSONMalformedDocuments(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"truncated", `[{"row": 0, "col": 1}`},
		{"not json at all", `bob$2bo$3o!`},
		{"cells not a list", `{"cells": 5}`},
		{"rows without cols", `{"rows": 10, "cells": []}`},
		{"cols without rows", `{"cols": 10, "cells": []}`},
		{"zero dimensions", `{"rows": 0, "cols": 10, "cells": []}`},
		{"negative dimensions", `{"rows": 5, "cols": -1, "cells": []}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeJSON(tc.text); !errors.Is(err, ErrMalformedJSON) {
				t.Fatalf("DecodeJSON error = %v, expected ErrMalformedJSON", err)
			}
		})
	}
}

func TestDecodeJSONInvalidCoordinates(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"missing row", `[{"col": 1}]`},
		{"missing col", `[{"row": 1}]`},
		{"fractional row", `[{"row": 1.5, "col": 0}]`},
		{"negative col", `[{"row": 0, "col": -2}]`},
		{"oversized row", `[{"row": 1e300, "col": 0}]`},
		{"oversized col", `[{"row": 0, "col": 2147483648}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeJSON(tc.text); !errors.Is(err, ErrInvalidCoordinate) {
				t.Fatalf("DecodeJSON error = %v, expected ErrInvalidCoordinate", err)
			}
		})
	}
}

func TestBoundsDerivation(t *testing.T) {
	p := &Pattern{Cells: []model.Coord{
		{Row: 2, Col: 0},
		{Row: 0, Col: 6},
	}}
	rows, cols := p.Bounds()
	if rows != 3 || cols != 7 {
		t.Fatalf("Bounds() = %dx%d, expected 3x7", rows, cols)
	}

	empty := &Pattern{}
	rows, cols = empty.Bounds()
	if rows != 0 || cols != 0 {
		t.Fatalf("empty Bounds() = %dx%d, expected 0x0", rows, cols)
	}
}
