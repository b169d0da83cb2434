package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"raffle-admin-panel/internal/models"
	"raffle-admin-panel/internal/platform/backend"
)

type RaffleService struct {
	c *backend.Client
}

func (s *RaffleService) Create(ctx context.Context, raffle models.Raffle) (*models.CurrentRaffle, error) {
	var created models.CurrentRaffle
	if err := s.c.PostJSON(ctx, "api/raffle/create", raffle, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *RaffleService) Current(ctx context.Context) (*models.CurrentRaffle, error) {
	var current models.CurrentRaffle
	if err := s.c.GetJSON(ctx, "api/raffle/current", nil, &current); err != nil {
		return nil, err
	}
	return &current, nil
}

// Complete asks the backend to draw the winner and close the current raffle.
func (s *RaffleService) Complete(ctx context.Context) (*models.Raffle, error) {
	var completed models.Raffle
	if err := s.c.PostJSON(ctx, "api/raffle/complete", nil, &completed); err != nil {
		return nil, err
	}
	return &completed, nil
}

type setPrizeResponse struct {
	Prize *models.RafflePrize `json:"prize"`
}

func (s *RaffleService) SetPrize(ctx context.Context, prizeID int64) (*models.RafflePrize, error) {
	var resp setPrizeResponse
	body := map[string]int64{"prizeId": prizeID}
	if err := s.c.PostJSON(ctx, "api/raffle/set-prize", body, &resp); err != nil {
		return nil, err
	}
	return resp.Prize, nil
}

func (s *RaffleService) ByID(ctx context.Context, id int64) (*models.Raffle, error) {
	var raffle models.Raffle
	if err := s.c.GetJSON(ctx, fmt.Sprintf("api/raffle/%d", id), nil, &raffle); err != nil {
		return nil, err
	}
	return &raffle, nil
}

func (s *RaffleService) History(ctx context.Context, limit, offset int) ([]models.Raffle, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var raffles []models.Raffle
	if err := s.c.GetJSON(ctx, "api/raffle/history", query, &raffles); err != nil {
		return nil, err
	}
	return raffles, nil
}

type raffleSettingsResponse struct {
	Raffle *models.Raffle `json:"raffle"`
}

func (s *RaffleService) UpdateSettings(ctx context.Context, in models.RaffleSettingsInput) (*models.Raffle, error) {
	var resp raffleSettingsResponse
	if err := s.c.PutJSON(ctx, "api/raffle/update-settings", in, &resp); err != nil {
		return nil, err
	}
	return resp.Raffle, nil
}
