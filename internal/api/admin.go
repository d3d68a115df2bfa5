package api

import (
	"context"
	"fmt"

	"vitrine/internal/domain"
)

func (c *Client) AdminUsers(ctx context.Context, token string) ([]domain.User, error) {
	var users []domain.User
	err := c.get(ctx, "/admin/users/", token, &users)
	return users, err
}

// SetUserActive flips the is_active flag on a managed account.
func (c *Client) SetUserActive(ctx context.Context, token string, userID int, active bool) error {
	body := map[string]bool{"is_active": active}
	return c.put(ctx, fmt.Sprintf("/admin/users/%d", userID), token, body, nil)
}

func (c *Client) DeleteUser(ctx context.Context, token string, userID int) error {
	return c.delete(ctx, fmt.Sprintf("/admin/users/%d", userID), token)
}

func (c *Client) FinancialSummary(ctx context.Context, token string) (domain.FinancialSummary, error) {
	var s domain.FinancialSummary
	err := c.get(ctx, "/admin/dashboard/financial/summary", token, &s)
	return s, err
}

func (c *Client) SalesOverTime(ctx context.Context, token, period string) ([]domain.SalesPoint, error) {
	var points []domain.SalesPoint
	err := c.get(ctx, "/admin/dashboard/financial/sales-over-time?period="+period, token, &points)
	return points, err
}

func (c *Client) PaymentStatus(ctx context.Context, token string) (domain.StatusDistribution, error) {
	var dist domain.StatusDistribution
	err := c.get(ctx, "/admin/dashboard/financial/payment-status", token, &dist)
	return dist, err
}

func (c *Client) CouponPerformance(ctx context.Context, token string) ([]domain.CouponPerformance, error) {
	var perf []domain.CouponPerformance
	err := c.get(ctx, "/admin/dashboard/financial/coupon-performance", token, &perf)
	return perf, err
}
