package api

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"raffle-admin-panel/internal/common/errors"
	"raffle-admin-panel/internal/models"
	"raffle-admin-panel/internal/platform/backend"
)

type CaseService struct {
	c *backend.Client
}

func (s *CaseService) List(ctx context.Context) ([]models.Case, error) {
	var cases []models.Case
	if err := s.c.GetJSON(ctx, "api/case", nil, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

func (s *CaseService) ByID(ctx context.Context, id int64) (*models.Case, error) {
	var c models.Case
	if err := s.c.GetJSON(ctx, fmt.Sprintf("api/case/%d", id), nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CaseService) Create(ctx context.Context, form *Upload) (*models.Case, error) {
	body, contentType, err := form.Close()
	if err != nil {
		return nil, err
	}
	var created models.Case
	if err := s.c.PostMultipart(ctx, "api/case", body, contentType, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *CaseService) Update(ctx context.Context, id int64, form *Upload) (*models.Case, error) {
	body, contentType, err := form.Close()
	if err != nil {
		return nil, err
	}
	var updated models.Case
	if err := s.c.PutMultipart(ctx, fmt.Sprintf("api/case/%d", id), body, contentType, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *CaseService) Delete(ctx context.Context, id int64) error {
	return s.c.Delete(ctx, fmt.Sprintf("api/case/%d", id), nil)
}

// Stats fetches opening statistics. The endpoint's shape is not pinned by the
// backend contract, so known keys are decoded and the rest is preserved.
func (s *CaseService) Stats(ctx context.Context) (*models.CaseStats, error) {
	raw := map[string]any{}
	if err := s.c.GetJSON(ctx, "api/case/stats", nil, &raw); err != nil {
		return nil, err
	}

	var stats models.CaseStats
	if err := mapstructure.Decode(raw, &stats); err != nil {
		return nil, errors.Wrap(err, errors.CodeBackend, "malformed case stats payload")
	}
	return &stats, nil
}

func (s *CaseService) AddItem(ctx context.Context, caseID int64, form *Upload) (*models.CaseItem, error) {
	body, contentType, err := form.Close()
	if err != nil {
		return nil, err
	}
	var item models.CaseItem
	if err := s.c.PostMultipart(ctx, fmt.Sprintf("api/case/%d/item", caseID), body, contentType, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CaseService) UpdateItem(ctx context.Context, itemID int64, form *Upload) (*models.CaseItem, error) {
	body, contentType, err := form.Close()
	if err != nil {
		return nil, err
	}
	var item models.CaseItem
	if err := s.c.PutMultipart(ctx, fmt.Sprintf("api/case/item/%d", itemID), body, contentType, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CaseService) DeleteItem(ctx context.Context, itemID int64) error {
	return s.c.Delete(ctx, fmt.Sprintf("api/case/item/%d", itemID), nil)
}

// Give grants cases to a user directly, outside of purchases.
func (s *CaseService) Give(ctx context.Context, in models.GiveCaseInput) error {
	return s.c.PostJSON(ctx, "api/case/give", in, nil)
}
