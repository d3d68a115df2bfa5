package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"vitrine/internal/api"
	"vitrine/internal/domain"
)

// AdminService backs the back-office pages. Every mutation is followed by a
// full list re-fetch in the handler; nothing here patches lists in place.
type AdminService struct {
	API *api.Client
}

func NewAdminService(client *api.Client) *AdminService {
	return &AdminService{API: client}
}

// Dashboard joins the four financial endpoints before rendering.
type Dashboard struct {
	Summary            domain.FinancialSummary
	SalesOverTime      []domain.SalesPoint
	StatusDistribution domain.StatusDistribution
	CouponPerformance  []domain.CouponPerformance
}

func (s *AdminService) Dashboard(ctx context.Context, token string) (Dashboard, error) {
	var d Dashboard
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		d.Summary, err = s.API.FinancialSummary(ctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		d.SalesOverTime, err = s.API.SalesOverTime(ctx, token, "monthly")
		return err
	})
	g.Go(func() error {
		var err error
		d.StatusDistribution, err = s.API.PaymentStatus(ctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		d.CouponPerformance, err = s.API.CouponPerformance(ctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}
	return d, nil
}

// ProductsPage bundles the list with the categories the edit form needs.
func (s *AdminService) ProductsPage(ctx context.Context) ([]domain.Product, []domain.Category, error) {
	var (
		products []domain.Product
		cats     []domain.Category
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.API.Products(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		cats, err = s.API.Categories(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return products, cats, nil
}

func (s *AdminService) SaveProduct(ctx context.Context, token string, id int, payload api.ProductPayload) error {
	if id > 0 {
		_, err := s.API.UpdateProduct(ctx, token, id, payload)
		return err
	}
	_, err := s.API.CreateProduct(ctx, token, payload)
	return err
}

func (s *AdminService) SaveCategory(ctx context.Context, token string, id int, payload api.CategoryPayload) error {
	if id > 0 {
		_, err := s.API.UpdateCategory(ctx, token, id, payload)
		return err
	}
	_, err := s.API.CreateCategory(ctx, token, payload)
	return err
}

func (s *AdminService) SaveBanner(ctx context.Context, token string, id int, payload api.BannerPayload) error {
	if id > 0 {
		_, err := s.API.UpdateBanner(ctx, token, id, payload)
		return err
	}
	_, err := s.API.CreateBanner(ctx, token, payload)
	return err
}
