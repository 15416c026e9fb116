package tictactoe

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameHistory_JSON(t *testing.T) {
	t.Run("Restores entries and cursor", func(t *testing.T) {
		// Given: a game that jumped back after three moves
		game := NewGame()
		playMoves(t, game, 0, 4, 8)
		require.True(t, game.JumpTo(2))

		// When: encoding and decoding it
		data, err := json.Marshal(game)
		require.NoError(t, err)

		restored := &GameHistory{}
		err = json.Unmarshal(data, restored)

		// Then: the restored history is identical
		require.NoError(t, err)
		assert.Equal(t, game.Entries(), restored.Entries())
		assert.Equal(t, 2, restored.CurrentIndex())
	})

	t.Run("Initial move encodes as null", func(t *testing.T) {
		data, err := json.Marshal(NewGame())
		require.NoError(t, err)

		assert.JSONEq(t, `{"entries":[{"grid":["","","","","","","","",""],"move":null}],"current":0}`, string(data))
	})

	corrupt := map[string]string{
		"no entries":          `{"entries":[],"current":0}`,
		"cursor out of range": `{"entries":[{"grid":["","","","","","","","",""],"move":null}],"current":1}`,
		"non-empty start":     `{"entries":[{"grid":["X","","","","","","","",""],"move":null}],"current":0}`,
		"missing move": `{"entries":[{"grid":["","","","","","","","",""],"move":null},
			{"grid":["X","","","","","","","",""],"move":null}],"current":0}`,
		"wrong mark": `{"entries":[{"grid":["","","","","","","","",""],"move":null},
			{"grid":["O","","","","","","","",""],"move":0}],"current":1}`,
		"unknown mark": `{"entries":[{"grid":["","","","","","","","",""],"move":null},
			{"grid":["Z","","","","","","","",""],"move":0}],"current":1}`,
		"move does not match grid": `{"entries":[{"grid":["","","","","","","","",""],"move":null},
			{"grid":["X","","","","","","","",""],"move":3}],"current":1}`,
	}

	for name, payload := range corrupt {
		t.Run("Rejects "+name, func(t *testing.T) {
			restored := &GameHistory{}

			err := json.Unmarshal([]byte(payload), restored)

			require.ErrorIs(t, err, apperror.ErrCorruptHistory)
		})
	}
}
