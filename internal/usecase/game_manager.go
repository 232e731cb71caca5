package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type gameService interface {
	CreateGame(ctx context.Context, size int, mode string) (*entity.Game, error)
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	UpdateGame(ctx context.Context, game *entity.Game) error
	DeleteGame(ctx context.Context, gameID string) error
}

type botService interface {
	MakeTurn(game *entity.Game) (int, error)
}

type scoreService interface {
	Record(ctx context.Context, game *entity.Game, outcome entity.Outcome) (string, error)
	GetScores(ctx context.Context) (map[string]int64, error)
}

type Move struct {
	Mark     entity.Mark `json:"mark"`
	Position int         `json:"position"`
}

// TurnResult is what the caller needs after a turn: the board as the turn left it,
// the outcome, and the score key bumped by a terminal outcome. Game is the stored
// state, already reset when the outcome is terminal.
type TurnResult struct {
	Game     *entity.Game   `json:"game"`
	Board    *entity.Board  `json:"board"`
	Moves    []Move         `json:"moves"`
	Outcome  entity.Outcome `json:"outcome"`
	ScoreKey string         `json:"score_key,omitempty"`
}

type GameManager struct {
	logger *slog.Logger

	gameService  gameService
	botService   botService
	scoreService scoreService

	maxComputerBoardSize int
}

func NewGameManager(
	logger *slog.Logger,
	gameService gameService,
	botService botService,
	scoreService scoreService,
	maxComputerBoardSize int,
) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameService:  gameService,
		botService:   botService,
		scoreService: scoreService,

		maxComputerBoardSize: maxComputerBoardSize,
	}
}

// StartGame validates the size and mode and stores a new match.
func (that *GameManager) StartGame(ctx context.Context, size int, mode string) (*entity.Game, error) {
	if size < entity.MinBoardSize {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidBoardSize, size)
	}

	if !entity.IsValidMode(mode) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownGameMode, mode)
	}

	if mode == entity.ModePvC && size > that.maxComputerBoardSize {
		return nil, fmt.Errorf("%w: %d > %d", apperror.ErrBoardTooLarge, size, that.maxComputerBoardSize)
	}

	game, err := that.gameService.CreateGame(ctx, size, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game started", "gameID", game.ID, "size", size, "mode", mode)

	return game, nil
}

// MakeTurn plays position for whoever is on turn. Against the computer the reply is
// played in the same call. A failed move leaves the stored game untouched.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, position int) (*TurnResult, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	mark := game.Turn
	if err = game.MakeTurn(mark, position); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	result := &TurnResult{
		Moves: []Move{{Mark: mark, Position: position}},
	}

	if !game.IsFinished() && game.IsComputerTurn() {
		cell, err := that.botService.MakeTurn(game)
		if err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}

		result.Moves = append(result.Moves, Move{Mark: game.Computer, Position: cell})
	}

	result.Board = game.Board.Clone()
	result.Outcome = game.Outcome()

	if result.Outcome.IsTerminal() {
		result.ScoreKey, err = that.scoreService.Record(ctx, game, result.Outcome)
		if err != nil {
			log.Error("failed to record score", "error", err)
		}

		log.Info("game over", "status", result.Outcome.Status, "winner", result.Outcome.Winner)

		game.Reset()
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	result.Game = game

	return result, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) EndGame(ctx context.Context, gameID string) error {
	if err := that.gameService.DeleteGame(ctx, gameID); err != nil {
		return fmt.Errorf("failed to end game: %w", err)
	}

	return nil
}

func (that *GameManager) Scores(ctx context.Context) (map[string]int64, error) {
	scores, err := that.scoreService.GetScores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	return scores, nil
}
