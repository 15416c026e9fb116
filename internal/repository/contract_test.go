package repository

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSessionRepositoryContract - behaviour every SessionRepository backend must share.
func runSessionRepositoryContract(t *testing.T, ctx context.Context, newRepo func(t *testing.T) SessionRepository) {
	t.Helper()

	t.Run("CreateOrUpdate_and_GetByID", func(t *testing.T) {
		repo := newRepo(t)

		// Given: a game with two moves and the cursor moved back
		game := tictactoe.NewGame()
		require.True(t, game.ApplyMove(4))
		require.True(t, game.ApplyMove(0))
		require.True(t, game.JumpTo(1))

		// When: it is saved and read back
		require.NoError(t, repo.CreateOrUpdate(ctx, "s1", game))
		stored, err := repo.GetByID(ctx, "s1")

		// Then: the stored history matches the saved one
		require.NoError(t, err)
		assert.Equal(t, game.Entries(), stored.Entries())
		assert.Equal(t, 1, stored.CurrentIndex())
	})

	t.Run("Stored history is not aliased", func(t *testing.T) {
		repo := newRepo(t)

		game := tictactoe.NewGame()
		require.NoError(t, repo.CreateOrUpdate(ctx, "s2", game))

		// When: the caller keeps mutating its own copy
		require.True(t, game.ApplyMove(0))

		// Then: the stored session is unchanged until the next save
		stored, err := repo.GetByID(ctx, "s2")
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Len())
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.GetByID(ctx, "9999999")

		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("DeleteByID_Success", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.CreateOrUpdate(ctx, "s3", tictactoe.NewGame()))

		require.NoError(t, repo.DeleteByID(ctx, "s3"))

		_, err := repo.GetByID(ctx, "s3")
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		repo := newRepo(t)

		err := repo.DeleteByID(ctx, "9999999")

		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}
