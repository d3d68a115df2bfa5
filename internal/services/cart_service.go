package services

import (
	"context"

	"vitrine/internal/api"
	"vitrine/internal/domain"
)

// CartService wraps every cart mutation in the write-then-invalidate
// contract: the mutating call is awaited, then the full cart is re-fetched.
// No optimistic local update ever happens, so the rendered cart can never
// diverge from the backend's.
type CartService struct {
	API *api.Client
}

func NewCartService(client *api.Client) *CartService {
	return &CartService{API: client}
}

func (s *CartService) View(ctx context.Context, token string) (domain.Cart, error) {
	return s.API.Cart(ctx, token)
}

func (s *CartService) AddItem(ctx context.Context, token string, productID, quantity int) (domain.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}
	if err := s.API.AddCartItem(ctx, token, productID, quantity); err != nil {
		return domain.Cart{}, err
	}
	return s.API.Cart(ctx, token)
}

func (s *CartService) SetQuantity(ctx context.Context, token string, productID, quantity int) (domain.Cart, error) {
	if err := s.API.UpdateCartItem(ctx, token, productID, quantity); err != nil {
		return domain.Cart{}, err
	}
	return s.API.Cart(ctx, token)
}

func (s *CartService) RemoveItem(ctx context.Context, token string, productID int) (domain.Cart, error) {
	if err := s.API.RemoveCartItem(ctx, token, productID); err != nil {
		return domain.Cart{}, err
	}
	return s.API.Cart(ctx, token)
}

func (s *CartService) ApplyCoupon(ctx context.Context, token, code string) (domain.Cart, error) {
	if err := s.API.ApplyCoupon(ctx, token, code); err != nil {
		return domain.Cart{}, err
	}
	return s.API.Cart(ctx, token)
}

func (s *CartService) RemoveCoupon(ctx context.Context, token string) (domain.Cart, error) {
	if err := s.API.RemoveCoupon(ctx, token); err != nil {
		return domain.Cart{}, err
	}
	return s.API.Cart(ctx, token)
}
