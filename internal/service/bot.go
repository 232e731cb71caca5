package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

type BotService interface {
	MakeTurn(game *entity.Game) (int, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// MakeTurn searches the game's board for the computer mark and plays the result.
// The game must be ongoing and on the computer's turn.
func (that *botService) MakeTurn(game *entity.Game) (int, error) {
	if game.IsFinished() {
		return 0, apperror.ErrGameFinished
	}

	if !game.IsComputerTurn() {
		return 0, apperror.ErrNotYourTurn
	}

	result, err := minimax.Analyze(game.Board, game.Computer, game.Human)
	if err != nil {
		return 0, fmt.Errorf("failed to search move: %w", err)
	}

	if err = game.MakeTurn(game.Computer, result.Position); err != nil {
		return 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot made turn",
		"gameID", game.ID,
		"cell", result.Position,
		"score", result.Score,
		"nodes", result.Nodes,
	)

	return result.Position, nil
}
