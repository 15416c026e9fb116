package tictactoe

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type snapshot struct {
	Entries []HistoryEntry `json:"entries"`
	Current int            `json:"current"`
}

func (that *GameHistory) MarshalJSON() ([]byte, error) {
	return json.Marshal(snapshot{Entries: that.history(), Current: that.current})
}

// UnmarshalJSON - restores a history, replaying every entry against the move rules.
func (that *GameHistory) UnmarshalJSON(data []byte) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to unmarshal history: %w", err)
	}

	if err := validateEntries(snap.Entries); err != nil {
		return err
	}

	if snap.Current < 0 || snap.Current >= len(snap.Entries) {
		return fmt.Errorf("%w: current index %d of %d entries", apperror.ErrCorruptHistory, snap.Current, len(snap.Entries))
	}

	that.entries = snap.Entries
	that.current = snap.Current

	return nil
}

func validateEntries(entries []HistoryEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: no entries", apperror.ErrCorruptHistory)
	}

	if entries[0].Grid != (entity.Grid{}) || entries[0].Move != nil {
		return fmt.Errorf("%w: entry 0 is not the empty grid", apperror.ErrCorruptHistory)
	}

	replay := NewGame()
	for i, entry := range entries[1:] {
		index := i + 1

		if err := entry.Grid.Validate(); err != nil {
			return fmt.Errorf("%w: entry %d: %w", apperror.ErrCorruptHistory, index, err)
		}

		if entry.Move == nil {
			return fmt.Errorf("%w: entry %d has no move", apperror.ErrCorruptHistory, index)
		}

		if err := replay.CheckMove(*entry.Move); err != nil {
			return fmt.Errorf("%w: entry %d: %w", apperror.ErrCorruptHistory, index, err)
		}

		replay.ApplyMove(*entry.Move)
		if replay.CurrentGrid() != entry.Grid {
			return fmt.Errorf("%w: entry %d grid does not follow from move %d", apperror.ErrCorruptHistory, index, *entry.Move)
		}
	}

	return nil
}
