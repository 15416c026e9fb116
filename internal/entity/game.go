package entity

import (
	"errors"
	"fmt"
)

type Cell string

const (
	EmptyCell Cell = ""
	PlayerX   Cell = "X"
	PlayerO   Cell = "O"
)

const GridSize = 9

type Phase string

const (
	PhaseInProgress Phase = "in_progress"
	PhaseDecided    Phase = "decided"
	PhaseDrawn      Phase = "drawn"
)

const StatusDraw = "Draw"

var (
	ErrUnknownMark   = errors.New("unknown cell mark")
	ErrMarkImbalance = errors.New("mark counts out of balance")

	// WinCombos - rows, columns, then diagonals. Evaluate reports the first match in this order.
	WinCombos = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Grid - a 3x3 board snapshot in row-major order.
type Grid [GridSize]Cell

type WinResult struct {
	Winner Cell   `json:"winner"`
	Line   [3]int `json:"line"`
}

func (that Cell) IsMark() bool {
	return that == PlayerX || that == PlayerO
}

// MarkForMove - X plays on even history indexes, O on odd ones.
func MarkForMove(index int) Cell {
	if index%2 == 0 {
		return PlayerX
	}
	return PlayerO
}

// Evaluate - returns the first completed line of the grid, if any.
func Evaluate(grid Grid) (WinResult, bool) {
	for _, combo := range WinCombos {
		a, b, c := grid[combo[0]], grid[combo[1]], grid[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return WinResult{Winner: a, Line: combo}, true
		}
	}

	return WinResult{}, false
}

func (that Grid) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// PhaseOf - derives the game phase from the grid on every call.
func PhaseOf(grid Grid) Phase {
	if _, ok := Evaluate(grid); ok {
		return PhaseDecided
	}

	if grid.IsFull() {
		return PhaseDrawn
	}

	return PhaseInProgress
}

// Status - the caller-facing status line for a grid with next to move.
func Status(grid Grid, next Cell) string {
	if result, ok := Evaluate(grid); ok {
		return "Winner: " + string(result.Winner)
	}

	if grid.IsFull() {
		return StatusDraw
	}

	return "Next player: " + string(next)
}

func (that Grid) Count(mark Cell) int {
	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}

	return count
}

// Validate - checks cell values and that X leads O by at most one mark.
func (that Grid) Validate() error {
	for i, cell := range that {
		if cell != EmptyCell && !cell.IsMark() {
			return fmt.Errorf("%w: %q at cell %d", ErrUnknownMark, cell, i)
		}
	}

	xs, os := that.Count(PlayerX), that.Count(PlayerO)
	if xs != os && xs != os+1 {
		return fmt.Errorf("%w: %d X, %d O", ErrMarkImbalance, xs, os)
	}

	return nil
}

// RowCol - converts a flat cell index to its row and column.
func RowCol(cell int) (int, int) {
	return cell / 3, cell % 3
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < GridSize
}
