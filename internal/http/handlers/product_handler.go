package handlers

import (
	"github.com/gofiber/fiber/v2"

	"vitrine/internal/services"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Este produto não está mais disponível"})
	}
	p, err := h.Catalog.Product(c.Context(), id)
	if err != nil || p.ID == 0 {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Este produto não está mais disponível"})
	}
	return render(c, "product", fiber.Map{"Product": p})
}
