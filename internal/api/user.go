package api

import (
	"context"
	"fmt"
	"net/url"

	"raffle-admin-panel/internal/models"
	"raffle-admin-panel/internal/platform/backend"
)

type UserService struct {
	c *backend.Client
}

// UserSearch narrows the user lookup; empty fields are omitted.
type UserSearch struct {
	UserID     string
	TelegramID string
	Username   string
}

func (s *UserService) ByID(ctx context.Context, id int64) (*models.UserInfo, error) {
	var user models.UserInfo
	if err := s.c.GetJSON(ctx, fmt.Sprintf("api/user/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Search(ctx context.Context, params UserSearch) ([]models.UserInfo, error) {
	query := url.Values{}
	if params.UserID != "" {
		query.Set("userId", params.UserID)
	}
	if params.TelegramID != "" {
		query.Set("telegramId", params.TelegramID)
	}
	if params.Username != "" {
		query.Set("username", params.Username)
	}

	var users []models.UserInfo
	if err := s.c.GetJSON(ctx, "api/user/search", query, &users); err != nil {
		return nil, err
	}
	return users, nil
}
