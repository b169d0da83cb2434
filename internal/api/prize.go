package api

import (
	"context"
	"fmt"

	"raffle-admin-panel/internal/models"
	"raffle-admin-panel/internal/platform/backend"
)

type PrizeService struct {
	c *backend.Client
}

func (s *PrizeService) List(ctx context.Context) ([]models.RafflePrize, error) {
	var prizes []models.RafflePrize
	if err := s.c.GetJSON(ctx, "api/raffle-prize", nil, &prizes); err != nil {
		return nil, err
	}
	return prizes, nil
}

// Create submits the prize fields plus an optional image as multipart.
func (s *PrizeService) Create(ctx context.Context, form *Upload) (*models.RafflePrize, error) {
	body, contentType, err := form.Close()
	if err != nil {
		return nil, err
	}
	var created models.RafflePrize
	if err := s.c.PostMultipart(ctx, "api/raffle-prize", body, contentType, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PrizeService) Update(ctx context.Context, id int64, form *Upload) (*models.RafflePrize, error) {
	body, contentType, err := form.Close()
	if err != nil {
		return nil, err
	}
	var updated models.RafflePrize
	if err := s.c.PutMultipart(ctx, fmt.Sprintf("api/raffle-prize/%d", id), body, contentType, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
