package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// HistoryEntry - a grid snapshot and the cell that produced it. Move is nil for the initial grid.
type HistoryEntry struct {
	Grid entity.Grid `json:"grid"`
	Move *int        `json:"move"`
}

// Location - row and column of the move, ok is false for the initial grid.
func (that HistoryEntry) Location() (row, col int, ok bool) {
	if that.Move == nil {
		return 0, 0, false
	}

	row, col = entity.RowCol(*that.Move)
	return row, col, true
}

func (that HistoryEntry) clone() HistoryEntry {
	if that.Move != nil {
		move := *that.Move
		that.Move = &move
	}

	return that
}

// GameHistory - the snapshots of one game plus the cursor into them.
// The zero value is a new game. It is owned by a single session and is not safe for concurrent use.
type GameHistory struct {
	entries []HistoryEntry
	current int
}

func NewGame() *GameHistory {
	return &GameHistory{
		entries: []HistoryEntry{{Grid: entity.Grid{}}},
	}
}

// history - the stored entries, seeded with the empty grid on first use.
func (that *GameHistory) history() []HistoryEntry {
	if len(that.entries) == 0 {
		that.entries = []HistoryEntry{{Grid: entity.Grid{}}}
		that.current = 0
	}

	return that.entries
}

func (that *GameHistory) CurrentGrid() entity.Grid {
	return that.history()[that.current].Grid
}

func (that *GameHistory) CurrentIndex() int {
	return that.current
}

func (that *GameHistory) Len() int {
	return len(that.history())
}

// Entries - a copy of the stored snapshots, moves included.
func (that *GameHistory) Entries() []HistoryEntry {
	entries := make([]HistoryEntry, 0, that.Len())
	for _, entry := range that.history() {
		entries = append(entries, entry.clone())
	}

	return entries
}

func (that *GameHistory) NextPlayer() entity.Cell {
	return entity.MarkForMove(that.current)
}

func (that *GameHistory) Status() string {
	return entity.Status(that.CurrentGrid(), that.NextPlayer())
}

func (that *GameHistory) Phase() entity.Phase {
	return entity.PhaseOf(that.CurrentGrid())
}

// CheckMove - reports why a move at cell would be rejected, nil if it would be accepted.
func (that *GameHistory) CheckMove(cell int) error {
	if !entity.IsValidCell(cell) {
		return apperror.ErrInvalidCell
	}

	grid := that.CurrentGrid()

	if grid[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	if _, ok := entity.Evaluate(grid); ok {
		return apperror.ErrGameFinished
	}

	return nil
}

// ApplyMove - places the next mark at cell, discarding entries after the current one.
// A rejected move leaves the history untouched.
func (that *GameHistory) ApplyMove(cell int) bool {
	if that.CheckMove(cell) != nil {
		return false
	}

	grid := that.CurrentGrid()
	grid[cell] = that.NextPlayer()

	that.entries = append(that.history()[:that.current+1:that.current+1], HistoryEntry{Grid: grid, Move: &cell})
	that.current = len(that.entries) - 1

	return true
}

// JumpTo - moves the cursor to index without touching the stored entries.
func (that *GameHistory) JumpTo(index int) bool {
	if index < 0 || index >= that.Len() {
		return false
	}

	that.current = index
	return true
}
