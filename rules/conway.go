package rules

// RuleString is the canonical name of the only rule this engine implements:
// birth on exactly 3 live neighbors, survival on 2 or 3. Pattern files may
// declare other rules; they are recorded but never change engine behavior.
const RuleString = "B3/S23"

/*
ApplyConwayRules applies Conway's Game of Life rules (B3/S23) to determine
the next state of a cell from its live Moore-neighbor count:

  - a live cell with 2 or 3 live neighbors survives, otherwise it dies;
  - a dead cell with exactly 3 live neighbors becomes alive.

Both collapse to: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
