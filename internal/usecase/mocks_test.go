package usecase

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/mock"
)

type mockGameService struct {
	mock.Mock
}

func (that *mockGameService) CreateGame(ctx context.Context, size int, mode string) (*entity.Game, error) {
	args := that.Called(ctx, size, mode)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGameService) UpdateGame(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameService) DeleteGame(ctx context.Context, gameID string) error {
	args := that.Called(ctx, gameID)
	return args.Error(0)
}

type mockBotService struct {
	mock.Mock
}

func (that *mockBotService) MakeTurn(game *entity.Game) (int, error) {
	args := that.Called(game)
	return args.Int(0), args.Error(1)
}

type mockScoreService struct {
	mock.Mock
}

func (that *mockScoreService) Record(ctx context.Context, game *entity.Game, outcome entity.Outcome) (string, error) {
	args := that.Called(ctx, game, outcome)
	return args.String(0), args.Error(1)
}

func (that *mockScoreService) GetScores(ctx context.Context) (map[string]int64, error) {
	args := that.Called(ctx)
	scores, _ := args.Get(0).(map[string]int64)
	return scores, args.Error(1)
}
