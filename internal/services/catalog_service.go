package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"vitrine/internal/api"
	"vitrine/internal/domain"
)

type CatalogService struct {
	API *api.Client
}

func NewCatalogService(client *api.Client) *CatalogService {
	return &CatalogService{API: client}
}

// HomeData is the storefront landing payload. Each slice degrades to empty
// on fetch failure; FetchError flags that products or categories could not
// be loaded so the page can show a banner instead of crashing.
type HomeData struct {
	Banners    []domain.Banner
	Products   []domain.Product
	Categories []domain.Category
	FetchError bool
}

// Home fetches banners, products and categories in parallel and joins them
// before rendering. Failures never propagate: an unreachable backend yields
// an empty grid plus the error flag.
func (s *CatalogService) Home(ctx context.Context) HomeData {
	var data HomeData
	var productsErr, categoriesErr error

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// A missing carousel is cosmetic; ignore the error entirely.
		if banners, err := s.API.ActiveBanners(ctx); err == nil {
			data.Banners = banners
		}
		return nil
	})
	g.Go(func() error {
		data.Products, productsErr = s.API.Products(ctx)
		return nil
	})
	g.Go(func() error {
		data.Categories, categoriesErr = s.API.Categories(ctx)
		return nil
	})
	_ = g.Wait()

	data.FetchError = productsErr != nil || categoriesErr != nil
	if data.Banners == nil {
		data.Banners = []domain.Banner{}
	}
	if data.Products == nil {
		data.Products = []domain.Product{}
	}
	if data.Categories == nil {
		data.Categories = []domain.Category{}
	}
	return data
}

// CategoryPage fetches the category record and its products in parallel.
func (s *CatalogService) CategoryPage(ctx context.Context, categoryID int) (domain.Category, []domain.Product, error) {
	var (
		cat      domain.Category
		products []domain.Product
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cat, err = s.API.Category(ctx, categoryID)
		return err
	})
	g.Go(func() error {
		// Product fetch failure degrades to an empty list under the header.
		if ps, err := s.API.ProductsByCategory(ctx, categoryID); err == nil {
			products = ps
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.Category{}, nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return cat, products, nil
}

func (s *CatalogService) Search(ctx context.Context, q string) ([]domain.Product, error) {
	return s.API.SearchProducts(ctx, q)
}

func (s *CatalogService) Product(ctx context.Context, id int) (domain.Product, error) {
	return s.API.Product(ctx, id)
}
