package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"raffle-admin-panel/internal/models"
	"raffle-admin-panel/internal/platform/backend"
)

type UserPrizeService struct {
	c *backend.Client
}

// Requested lists prizes users have asked to be delivered.
func (s *UserPrizeService) Requested(ctx context.Context, limit, offset int) ([]models.UserPrize, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var prizes []models.UserPrize
	if err := s.c.GetJSON(ctx, "api/user-prize/requested", query, &prizes); err != nil {
		return nil, err
	}
	return prizes, nil
}

// Confirm marks a requested prize as delivered.
func (s *UserPrizeService) Confirm(ctx context.Context, id int64) (*models.UserPrize, error) {
	var confirmed models.UserPrize
	if err := s.c.PostJSON(ctx, fmt.Sprintf("api/user-prize/confirm/%d", id), nil, &confirmed); err != nil {
		return nil, err
	}
	return &confirmed, nil
}
