package api

import (
	"context"

	"raffle-admin-panel/internal/models"
	"raffle-admin-panel/internal/platform/backend"
)

type LeaderboardService struct {
	c *backend.Client
}

func (s *LeaderboardService) Top(ctx context.Context) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	if err := s.c.GetJSON(ctx, "api/leaderboard", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *LeaderboardService) Settings(ctx context.Context) (*models.LeaderboardSettings, error) {
	var settings models.LeaderboardSettings
	if err := s.c.GetJSON(ctx, "api/leaderboard/settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings replaces the active configuration wholesale.
func (s *LeaderboardService) UpdateSettings(ctx context.Context, in models.LeaderboardSettings) (*models.LeaderboardSettings, error) {
	var updated models.LeaderboardSettings
	if err := s.c.PutJSON(ctx, "api/leaderboard/settings", in, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
