package api

import (
	"context"
	"fmt"

	"vitrine/internal/domain"
)

// ActiveBanners is the public storefront carousel feed.
func (c *Client) ActiveBanners(ctx context.Context) ([]domain.Banner, error) {
	var banners []domain.Banner
	err := c.get(ctx, "/banners/active/", "", &banners)
	return banners, err
}

// Banners lists every banner, active or not. Admin only.
func (c *Client) Banners(ctx context.Context, token string) ([]domain.Banner, error) {
	var banners []domain.Banner
	err := c.get(ctx, "/banners/", token, &banners)
	return banners, err
}

type BannerPayload struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	LinkURL  string `json:"link_url,omitempty"`
	Position int    `json:"position"`
	IsActive bool   `json:"is_active"`
}

func (c *Client) CreateBanner(ctx context.Context, token string, payload BannerPayload) (domain.Banner, error) {
	var b domain.Banner
	err := c.post(ctx, "/banners/", token, payload, &b)
	return b, err
}

func (c *Client) UpdateBanner(ctx context.Context, token string, id int, payload BannerPayload) (domain.Banner, error) {
	var b domain.Banner
	err := c.put(ctx, fmt.Sprintf("/banners/%d", id), token, payload, &b)
	return b, err
}

func (c *Client) DeleteBanner(ctx context.Context, token string, id int) error {
	return c.delete(ctx, fmt.Sprintf("/banners/%d", id), token)
}
