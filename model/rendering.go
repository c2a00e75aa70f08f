package model

import (
	"bytes"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	borderTopLeft     = "┌"
	borderTopRight    = "┐"
	borderBottomLeft  = "└"
	borderBottomRight = "┘"
	borderHorizontal  = "─"
	borderVertical    = "│"

	// Cursor home + erase below; each frame overdraws the previous one
	ansiClear = "\x1b[H\x1b[J"
)

// TerminalRenderer draws grid frames for a text console.
//
// Frames are rendered into caller-supplied buffers so a whole frame can be
// written to the terminal in a single call, and so buffers can be recycled
// through a FramePool when rendering and writing happen on different
// goroutines.
type TerminalRenderer struct{}

// Reset writes the ANSI sequence that repositions the cursor and clears the
// screen, so the frame written after it replaces the previous one.
func (r *TerminalRenderer) Reset(buf *bytes.Buffer) {
	buf.WriteString(ansiClear)
}

// Frame renders the grid's current generation into buf as a box-bordered
// block of cells. It reads only the grid's dimensions and live-cell list,
// walking the row-major LiveCells snapshot in step with the scan.
func (r *TerminalRenderer) Frame(g *Grid, buf *bytes.Buffer) {
	var (
		rows = g.Rows()
		cols = g.Cols()
		live = g.LiveCells()
		next = 0
	)

	writeBorderRow(buf, borderTopLeft, borderTopRight, cols)
	for row := 0; row < rows; row++ {
		buf.WriteString(borderVertical)
		for col := 0; col < cols; col++ {
			if next < len(live) && live[next].Row == row && live[next].Col == col {
				buf.WriteString(gridPosBlock)
				next++
			} else {
				buf.WriteString(gridPosEmpty)
			}
		}
		buf.WriteString(borderVertical)
		buf.WriteByte('\n')
	}
	writeBorderRow(buf, borderBottomLeft, borderBottomRight, cols)
}

// writeBorderRow draws a horizontal border sized to the double-width cells.
func writeBorderRow(buf *bytes.Buffer, left, right string, cols int) {
	buf.WriteString(left)
	buf.WriteString(strings.Repeat(borderHorizontal, cols*2))
	buf.WriteString(right)
	buf.WriteByte('\n')
}
