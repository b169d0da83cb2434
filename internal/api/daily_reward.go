package api

import (
	"context"
	"fmt"

	"raffle-admin-panel/internal/models"
	"raffle-admin-panel/internal/platform/backend"
)

type DailyRewardService struct {
	c *backend.Client
}

func (s *DailyRewardService) List(ctx context.Context) ([]models.DailyReward, error) {
	var rewards []models.DailyReward
	if err := s.c.GetJSON(ctx, "api/daily-reward/get", nil, &rewards); err != nil {
		return nil, err
	}
	return rewards, nil
}

func (s *DailyRewardService) Create(ctx context.Context, reward models.DailyReward) (*models.DailyReward, error) {
	var created models.DailyReward
	if err := s.c.PostJSON(ctx, "api/daily-reward/create", reward, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *DailyRewardService) UpdateByDay(ctx context.Context, day int, reward models.DailyReward) (*models.DailyReward, error) {
	var updated models.DailyReward
	path := fmt.Sprintf("api/daily-reward/update/day/%d", day)
	if err := s.c.PutJSON(ctx, path, reward, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
