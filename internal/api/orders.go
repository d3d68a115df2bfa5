package api

import (
	"context"
	"fmt"

	"vitrine/internal/domain"
)

// Orders lists the authenticated customer's own orders.
func (c *Client) Orders(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	err := c.get(ctx, "/orders/", token, &orders)
	return orders, err
}

// CreateOrder turns the current cart into an order on the backend.
func (c *Client) CreateOrder(ctx context.Context, token string) (domain.Order, error) {
	var o domain.Order
	err := c.post(ctx, "/orders/", token, nil, &o)
	return o, err
}

// AllOrders is the admin-only listing across every customer.
func (c *Client) AllOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	err := c.get(ctx, "/orders/admin/all", token, &orders)
	return orders, err
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token string, orderID int, status string) (domain.Order, error) {
	var o domain.Order
	body := map[string]string{"status": status}
	err := c.put(ctx, fmt.Sprintf("/orders/%d/status", orderID), token, body, &o)
	return o, err
}

// CheckoutSession is the payment hand-off returned by the backend. The
// payment page itself is external; this process only redirects to it.
type CheckoutSession struct {
	CheckoutURL string `json:"checkout_url"`
	RawURL      string `json:"url"`
}

func (s CheckoutSession) URL() string {
	if s.CheckoutURL != "" {
		return s.CheckoutURL
	}
	return s.RawURL
}

func (c *Client) CreateCheckoutSession(ctx context.Context, token string, orderID int) (CheckoutSession, error) {
	var s CheckoutSession
	err := c.post(ctx, fmt.Sprintf("/payments/create-checkout-session/%d", orderID), token, nil, &s)
	return s, err
}
