package service

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGameService_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a fresh game with a generated id", func(t *testing.T) {
		// Given: a repo accepting any game
		repo := &mockGameRepo{}
		repo.On("CreateOrUpdate", mock.Anything, mock.AnythingOfType("*entity.Game")).Return(nil).Once()

		// When: creating a 4x4 two-player game
		game, err := NewGameService(repo).CreateGame(ctx, 4, entity.ModePvP)

		// Then: the game is new, sized and identified
		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.Equal(t, 4, game.Board.Size)
		assert.Equal(t, entity.StartingMark, game.Turn)
		repo.AssertExpectations(t)
	})

	t.Run("Returns repo errors", func(t *testing.T) {
		repo := &mockGameRepo{}
		repo.On("CreateOrUpdate", mock.Anything, mock.Anything).Return(errRedisDown).Once()

		game, err := NewGameService(repo).CreateGame(ctx, 3, entity.ModePvC)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
	})
}

func TestGameService_GetGameByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Wraps not found", func(t *testing.T) {
		repo := &mockGameRepo{}
		repo.On("GetByID", mock.Anything, "missing").Return(nil, apperror.ErrGameNotFound).Once()

		game, err := NewGameService(repo).GetGameByID(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, game)
	})

	t.Run("Returns stored game", func(t *testing.T) {
		stored := entity.NewGame("g1", 3, entity.ModePvP)
		repo := &mockGameRepo{}
		repo.On("GetByID", mock.Anything, "g1").Return(stored, nil).Once()

		game, err := NewGameService(repo).GetGameByID(ctx, "g1")

		require.NoError(t, err)
		assert.Same(t, stored, game)
	})
}

func TestGameService_DeleteGame(t *testing.T) {
	repo := &mockGameRepo{}
	repo.On("DeleteByID", mock.Anything, "g1").Return(nil).Once()

	require.NoError(t, NewGameService(repo).DeleteGame(context.Background(), "g1"))
	repo.AssertExpectations(t)
}
