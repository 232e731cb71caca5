package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const scoresKey = "scores"

// ScoreRepository keeps win counters in a single Redis hash.
type ScoreRepository interface {
	Increment(ctx context.Context, key string) (int64, error)
	GetAll(ctx context.Context) (map[string]int64, error)
}

type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

func (that *dbScore) Increment(ctx context.Context, key string) (int64, error) {
	count, err := that.client.HIncrBy(ctx, scoresKey, key, 1).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment score %s: %w", key, err)
	}

	return count, nil
}

func (that *dbScore) GetAll(ctx context.Context) (map[string]int64, error) {
	response, err := that.client.HGetAll(ctx, scoresKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	scores := make(map[string]int64, len(response))
	for key, value := range response {
		count, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid score %s=%q: %w", key, value, err)
		}
		scores[key] = count
	}

	return scores, nil
}
