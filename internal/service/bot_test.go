package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Blocks the human and passes the turn back", func(t *testing.T) {
		// Given: a computer game where O threatens the top row
		game := entity.NewGame("g1", 3, entity.ModePvC)
		require.NoError(t, game.MakeTurn(entity.PlayerO, 1))
		require.NoError(t, game.MakeTurn(entity.PlayerX, 5))
		require.NoError(t, game.MakeTurn(entity.PlayerO, 2))

		// When: the bot moves
		cell, err := NewBotService(newTestLogger()).MakeTurn(game)

		// Then: it blocks on cell 3 and it is the human's turn again
		require.NoError(t, err)
		assert.Equal(t, 3, cell)
		assert.Equal(t, entity.PlayerX, game.Board.Cell(3))
		assert.Equal(t, entity.PlayerO, game.Turn)
	})

	t.Run("Refuses to move on the human's turn", func(t *testing.T) {
		game := entity.NewGame("g1", 3, entity.ModePvC)

		_, err := NewBotService(newTestLogger()).MakeTurn(game)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.NewBoard(3), game.Board)
	})

	t.Run("Refuses to move in a two-player game", func(t *testing.T) {
		game := entity.NewGame("g1", 3, entity.ModePvP)
		require.NoError(t, game.MakeTurn(entity.PlayerO, 1))

		_, err := NewBotService(newTestLogger()).MakeTurn(game)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Refuses to move in a finished game", func(t *testing.T) {
		// Given: O already won the left column
		game := entity.NewGame("g1", 3, entity.ModePvC)
		for _, position := range []int{1, 2, 4, 3, 7} {
			require.NoError(t, game.MakeTurn(game.Turn, position))
		}

		_, err := NewBotService(newTestLogger()).MakeTurn(game)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}
