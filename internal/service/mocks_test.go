package service

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/mock"
)

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

type mockScoreRepo struct {
	mock.Mock
}

func (that *mockScoreRepo) Increment(ctx context.Context, key string) (int64, error) {
	args := that.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (that *mockScoreRepo) GetAll(ctx context.Context) (map[string]int64, error) {
	args := that.Called(ctx)
	scores, _ := args.Get(0).(map[string]int64)
	return scores, args.Error(1)
}
