package services

import (
	"context"

	"github.com/pkg/errors"

	"vitrine/internal/api"
	"vitrine/internal/domain"
)

type OrderService struct {
	API *api.Client
}

func NewOrderService(client *api.Client) *OrderService {
	return &OrderService{API: client}
}

// History lists the customer's own orders.
func (s *OrderService) History(ctx context.Context, token string) ([]domain.Order, error) {
	return s.API.Orders(ctx, token)
}

// Checkout creates the order from the current cart and then asks the backend
// for a payment-session URL. The caller redirects the browser there; payment
// itself never touches this process.
func (s *OrderService) Checkout(ctx context.Context, token string) (string, error) {
	order, err := s.API.CreateOrder(ctx, token)
	if err != nil {
		return "", err
	}
	sess, err := s.API.CreateCheckoutSession(ctx, token, order.ID)
	if err != nil {
		return "", err
	}
	if sess.URL() == "" {
		return "", errors.Errorf("sessão de pagamento sem URL para o pedido %d", order.ID)
	}
	return sess.URL(), nil
}
