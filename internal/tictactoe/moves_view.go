package tictactoe

import "fmt"

const gameStartLabel = "game start"

type MoveView struct {
	Index       int          `json:"index"`
	Entry       HistoryEntry `json:"entry"`
	Current     bool         `json:"current"`
	Label       string       `json:"label"`
	Description string       `json:"description"`
}

// MovesView - the history paired with each entry's index, oldest first when ascending.
func (that *GameHistory) MovesView(ascending bool) []MoveView {
	entries := that.history()
	views := make([]MoveView, len(entries))

	for i, entry := range entries {
		pos := i
		if !ascending {
			pos = len(entries) - 1 - i
		}

		views[pos] = MoveView{
			Index:       i,
			Entry:       entry.clone(),
			Current:     i == that.current,
			Label:       moveLabel(i, entry),
			Description: moveDescription(i, entry, i == that.current),
		}
	}

	return views
}

func moveLabel(index int, entry HistoryEntry) string {
	row, col, ok := entry.Location()
	if index == 0 || !ok {
		return gameStartLabel
	}

	return fmt.Sprintf("move #%d (%d, %d)", index, row, col)
}

func moveDescription(index int, entry HistoryEntry, current bool) string {
	if current {
		return "You are at " + moveLabel(index, entry)
	}

	return "Go to " + moveLabel(index, entry)
}
