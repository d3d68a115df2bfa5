package api

import (
	"context"
	"fmt"

	"vitrine/internal/domain"
)

func (c *Client) Cart(ctx context.Context, token string) (domain.Cart, error) {
	var cart domain.Cart
	err := c.get(ctx, "/cart/", token, &cart)
	return cart, err
}

func (c *Client) AddCartItem(ctx context.Context, token string, productID, quantity int) error {
	body := map[string]int{"product_id": productID, "quantity": quantity}
	return c.post(ctx, "/cart/items/", token, body, nil)
}

func (c *Client) UpdateCartItem(ctx context.Context, token string, productID, quantity int) error {
	body := map[string]int{"quantity": quantity}
	return c.put(ctx, fmt.Sprintf("/cart/items/%d", productID), token, body, nil)
}

func (c *Client) RemoveCartItem(ctx context.Context, token string, productID int) error {
	return c.delete(ctx, fmt.Sprintf("/cart/items/%d", productID), token)
}

func (c *Client) ApplyCoupon(ctx context.Context, token, code string) error {
	body := map[string]string{"code": code}
	return c.post(ctx, "/cart/apply-coupon", token, body, nil)
}

func (c *Client) RemoveCoupon(ctx context.Context, token string) error {
	return c.delete(ctx, "/cart/apply-coupon", token)
}
