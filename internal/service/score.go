package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	ScorePvPO = "PvP_O"
	ScorePvPX = "PvP_X"
	ScorePvC  = "PvC"
)

type ScoreService interface {
	Record(ctx context.Context, game *entity.Game, outcome entity.Outcome) (string, error)
	GetScores(ctx context.Context) (map[string]int64, error)
}

type scoreRepo interface {
	Increment(ctx context.Context, key string) (int64, error)
	GetAll(ctx context.Context) (map[string]int64, error)
}

type scoreService struct {
	scoreRepo scoreRepo
}

func NewScoreService(scoreRepo scoreRepo) ScoreService {
	return &scoreService{
		scoreRepo: scoreRepo,
	}
}

// ScoreKey maps a finished match to the counter it bumps.
// Two-player wins count per mark; against the computer only human wins count.
// Draws and computer wins return an empty key.
func ScoreKey(game *entity.Game, outcome entity.Outcome) string {
	if outcome.Status != entity.OutcomeWin {
		return ""
	}

	switch {
	case game.Mode == entity.ModePvP && outcome.Winner == entity.PlayerO:
		return ScorePvPO
	case game.Mode == entity.ModePvP && outcome.Winner == entity.PlayerX:
		return ScorePvPX
	case game.Mode == entity.ModePvC && outcome.Winner == game.Human:
		return ScorePvC
	default:
		return ""
	}
}

// Record increments the counter for a terminal outcome and returns its key,
// or an empty key when the outcome is not counted.
func (that *scoreService) Record(ctx context.Context, game *entity.Game, outcome entity.Outcome) (string, error) {
	key := ScoreKey(game, outcome)
	if key == "" {
		return "", nil
	}

	if _, err := that.scoreRepo.Increment(ctx, key); err != nil {
		return "", fmt.Errorf("failed to record score: %w", err)
	}

	return key, nil
}

// GetScores returns every known counter, zero when never incremented.
func (that *scoreService) GetScores(ctx context.Context) (map[string]int64, error) {
	stored, err := that.scoreRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	scores := map[string]int64{ScorePvPO: 0, ScorePvPX: 0, ScorePvC: 0}
	for key, count := range stored {
		scores[key] = count
	}

	return scores, nil
}
