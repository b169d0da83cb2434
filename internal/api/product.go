package api

import (
	"context"
	"fmt"

	"raffle-admin-panel/internal/models"
	"raffle-admin-panel/internal/platform/backend"
)

type ProductService struct {
	c *backend.Client
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.c.GetJSON(ctx, "api/product/all", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) Create(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	var created models.Product
	if err := s.c.PostJSON(ctx, "api/product/create", in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *ProductService) Update(ctx context.Context, id int64, in models.ProductInput) (*models.Product, error) {
	var updated models.Product
	if err := s.c.PutJSON(ctx, fmt.Sprintf("api/product/update/%d", id), in, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
