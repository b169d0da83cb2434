package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"raffle-admin-panel/internal/models"
	"raffle-admin-panel/internal/platform/backend"
)

type ReferralService struct {
	c *backend.Client
}

// PayoutRequests lists withdrawal requests, filtered and paginated
// server-side.
func (s *ReferralService) PayoutRequests(ctx context.Context, filter models.PayoutFilter) (*models.PayoutRequestPage, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.UserID != 0 {
		query.Set("userId", strconv.FormatInt(filter.UserID, 10))
	}
	if filter.Page != 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit != 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.SortBy != "" {
		query.Set("sortBy", filter.SortBy)
	}
	if filter.SortOrder != "" {
		query.Set("sortOrder", filter.SortOrder)
	}

	var page models.PayoutRequestPage
	if err := s.c.GetJSON(ctx, "api/referral/admin/referral-payout-requests", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ProcessPayoutRequest records the admin decision and returns the updated row.
func (s *ReferralService) ProcessPayoutRequest(ctx context.Context, id int64, in models.ProcessPayoutInput) (*models.ReferralPayoutRequest, error) {
	var updated models.ReferralPayoutRequest
	path := fmt.Sprintf("api/referral/admin/referral-payout-requests/%d/process", id)
	if err := s.c.PutJSON(ctx, path, in, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
