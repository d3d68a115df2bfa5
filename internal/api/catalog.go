package api

import (
	"context"
	"fmt"
	"net/url"

	"vitrine/internal/domain"
)

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := c.get(ctx, "/products/", "", &products)
	return products, err
}

func (c *Client) Product(ctx context.Context, id int) (domain.Product, error) {
	var p domain.Product
	err := c.get(ctx, fmt.Sprintf("/products/%d", id), "", &p)
	return p, err
}

// SearchProducts queries the catalog by free-text keyword.
func (c *Client) SearchProducts(ctx context.Context, q string) ([]domain.Product, error) {
	var products []domain.Product
	err := c.get(ctx, "/products/?q="+url.QueryEscape(q), "", &products)
	return products, err
}

func (c *Client) ProductsByCategory(ctx context.Context, categoryID int) ([]domain.Product, error) {
	var products []domain.Product
	err := c.get(ctx, fmt.Sprintf("/products/?category_id=%d", categoryID), "", &products)
	return products, err
}

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var cats []domain.Category
	err := c.get(ctx, "/categories/", "", &cats)
	return cats, err
}

func (c *Client) Category(ctx context.Context, id int) (domain.Category, error) {
	var cat domain.Category
	err := c.get(ctx, fmt.Sprintf("/categories/%d", id), "", &cat)
	return cat, err
}

// ProductPayload is the admin create/update body for a product.
type ProductPayload struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	CategoryID  int     `json:"category_id"`
	ImageURL    string  `json:"image_url,omitempty"`
	Description string  `json:"description,omitempty"`
}

func (c *Client) CreateProduct(ctx context.Context, token string, payload ProductPayload) (domain.Product, error) {
	var p domain.Product
	err := c.post(ctx, "/products/", token, payload, &p)
	return p, err
}

func (c *Client) UpdateProduct(ctx context.Context, token string, id int, payload ProductPayload) (domain.Product, error) {
	var p domain.Product
	err := c.put(ctx, fmt.Sprintf("/products/%d", id), token, payload, &p)
	return p, err
}

func (c *Client) DeleteProduct(ctx context.Context, token string, id int) error {
	return c.delete(ctx, fmt.Sprintf("/products/%d", id), token)
}

type CategoryPayload struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

func (c *Client) CreateCategory(ctx context.Context, token string, payload CategoryPayload) (domain.Category, error) {
	var cat domain.Category
	err := c.post(ctx, "/categories/", token, payload, &cat)
	return cat, err
}

func (c *Client) UpdateCategory(ctx context.Context, token string, id int, payload CategoryPayload) (domain.Category, error) {
	var cat domain.Category
	err := c.put(ctx, fmt.Sprintf("/categories/%d", id), token, payload, &cat)
	return cat, err
}

func (c *Client) DeleteCategory(ctx context.Context, token string, id int) error {
	return c.delete(ctx, fmt.Sprintf("/categories/%d", id), token)
}
