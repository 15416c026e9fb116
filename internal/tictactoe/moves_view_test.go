package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameHistory_MovesView(t *testing.T) {
	t.Run("Ascending view labels every entry", func(t *testing.T) {
		// Given: a game with moves at cells 4 and 2
		game := NewGame()
		playMoves(t, game, 4, 2)

		// When: listing the moves in ascending order
		views := game.MovesView(true)

		// Then: labels carry the row and column of each move
		require.Len(t, views, 3)
		assert.Equal(t, 0, views[0].Index)
		assert.Equal(t, "game start", views[0].Label)
		assert.Equal(t, "Go to game start", views[0].Description)
		assert.Equal(t, "move #1 (1, 1)", views[1].Label)
		assert.Equal(t, "Go to move #1 (1, 1)", views[1].Description)
		assert.Equal(t, "move #2 (0, 2)", views[2].Label)
		assert.True(t, views[2].Current)
		assert.Equal(t, "You are at move #2 (0, 2)", views[2].Description)
	})

	t.Run("Descending view is the exact reverse", func(t *testing.T) {
		game := NewGame()
		playMoves(t, game, 0, 4, 8, 2)

		ascending := game.MovesView(true)
		descending := game.MovesView(false)

		require.Len(t, descending, game.Len())
		require.Len(t, ascending, game.Len())
		for i := range ascending {
			assert.Equal(t, ascending[i], descending[len(descending)-1-i])
		}
	})

	t.Run("Listing does not change the history", func(t *testing.T) {
		game := NewGame()
		playMoves(t, game, 0, 4)
		require.True(t, game.JumpTo(1))
		before := game.Entries()

		views := game.MovesView(false)

		assert.Equal(t, before, game.Entries())
		assert.Equal(t, 1, game.CurrentIndex())
		assert.True(t, views[1].Current)
	})

	t.Run("Writing through returned moves leaves the history intact", func(t *testing.T) {
		// Given: a game with one move at the centre
		game := NewGame()
		playMoves(t, game, 4)

		// When: overwriting the move through both read results
		*game.Entries()[1].Move = 7
		*game.MovesView(true)[1].Entry.Move = 0

		// Then: the stored move and its label are unchanged
		require.NotNil(t, game.Entries()[1].Move)
		assert.Equal(t, 4, *game.Entries()[1].Move)
		assert.Equal(t, "move #1 (1, 1)", game.MovesView(true)[1].Label)
		assert.False(t, game.ApplyMove(4))
	})

	t.Run("Current game start has no coordinates", func(t *testing.T) {
		game := NewGame()

		views := game.MovesView(true)

		require.Len(t, views, 1)
		assert.Equal(t, "You are at game start", views[0].Description)
	})
}
