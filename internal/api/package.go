package api

import (
	"context"
	"fmt"

	"raffle-admin-panel/internal/models"
	"raffle-admin-panel/internal/platform/backend"
)

type PackageService struct {
	c *backend.Client
}

func (s *PackageService) List(ctx context.Context) ([]models.RaffleTicketPackage, error) {
	var packages []models.RaffleTicketPackage
	if err := s.c.GetJSON(ctx, "api/raffle/package/all", nil, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (s *PackageService) Create(ctx context.Context, in models.TicketPackageInput) (*models.RaffleTicketPackage, error) {
	var created models.RaffleTicketPackage
	if err := s.c.PostJSON(ctx, "api/raffle/package/create", in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PackageService) Update(ctx context.Context, id int64, in models.TicketPackageInput) (*models.RaffleTicketPackage, error) {
	var updated models.RaffleTicketPackage
	if err := s.c.PutJSON(ctx, fmt.Sprintf("api/raffle/package/%d", id), in, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
