package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestFrameDrawsBorderedGrid(t *testing.T) {
	g := mustGrid(t, 2, 3)
	setAll(t, g,
		Coord{Row: 0, Col: 0},
		Coord{Row: 1, Col: 2},
	)

	var buf bytes.Buffer
	r := &TerminalRenderer{}
	r.Frame(g, &buf)

	want := strings.Join([]string{
		"┌──────┐",
		"│██    │",
		"│    ██│",
		"└──────┘",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("rendered frame:\n%s\nexpected:\n%s", got, want)
	}
}

func TestResetEmitsClearSequence(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalRenderer{}
	r.Reset(&buf)
	if got := buf.String(); got != "\x1b[H\x1b[J" {
		t.Fatalf("Reset wrote %q, expected cursor home + erase", got)
	}
}

func TestFramePoolRecyclesCleanBuffers(t *testing.T) {
	pool := NewFramePool()

	buf := pool.Get()
	buf.WriteString("stale frame")
	pool.Put(buf)

	if got := pool.Get(); got.Len() != 0 {
		t.Fatalf("pooled buffer came back with %d leftover bytes", got.Len())
	}

	// Nil hand-back must not panic
	pool.Put(nil)
}
