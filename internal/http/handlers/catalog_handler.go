package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"vitrine/internal/domain"
	applog "vitrine/internal/log"
	"vitrine/internal/services"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

// Home renders banners, featured products and categories. A failed fetch
// degrades to empty sections plus an error banner, never a hard failure.
func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	data := h.Catalog.Home(c.Context())
	if data.FetchError {
		applog.Error(c, "home.fetch.fail", nil, nil)
	}
	return render(c, "home", fiber.Map{
		"Banners":    data.Banners,
		"Products":   data.Products,
		"Categories": data.Categories,
		"FetchError": data.FetchError,
	})
}

func (h *CatalogHandler) Category(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Categoria não encontrada"})
	}
	cat, products, err := h.Catalog.CategoryPage(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Categoria não encontrada"})
	}
	return render(c, "category", fiber.Map{"Category": cat, "Products": products})
}

func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		// Initial page load: empty search, no error
		return render(c, "search", fiber.Map{"Q": "", "Products": []domain.Product{}, "Count": 0})
	}
	products, err := h.Catalog.Search(c.Context(), q)
	if err != nil {
		applog.Error(c, "search.fail", err, map[string]any{"q": q})
		return render(c, "search", fiber.Map{"Q": q, "Products": []domain.Product{}, "Count": 0, "Err": errorMessage(err)})
	}
	return render(c, "search", fiber.Map{"Q": q, "Products": products, "Count": len(products)})
}
