package handlers

import (
	"github.com/gofiber/fiber/v2"

	"vitrine/internal/api"
	"vitrine/internal/forms"
	applog "vitrine/internal/log"
	"vitrine/internal/services"
	"vitrine/internal/session"
)

// AdminCatalogHandler is the CRUD surface for products, categories and
// banners. Every page follows the same contract: list from a full fetch,
// save or confirmed-delete, then redirect to the list, which fetches the
// whole collection again. Nothing is patched in place.
type AdminCatalogHandler struct {
	Admin *services.AdminService
	API   *api.Client
}

// ---------- Products ----------

func (h *AdminCatalogHandler) Products(c *fiber.Ctx) error {
	products, cats, err := h.Admin.ProductsPage(c.Context())
	if err != nil {
		applog.Error(c, "admin.products.list.fail", err, nil)
		return render(c, "admin_products", fiber.Map{"Err": errorMessage(err)})
	}
	return render(c, "admin_products", fiber.Map{"Products": products, "Categories": cats})
}

func (h *AdminCatalogHandler) SaveProduct(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id") // zero means create
	var form forms.Product
	if err := c.BodyParser(&form); err != nil {
		return h.productsWithError(c, "Dados do formulário inválidos.")
	}
	if err := forms.Check(form); err != nil {
		return h.productsWithError(c, err.Error())
	}

	payload := api.ProductPayload{
		Name:        form.Name,
		Price:       form.Price,
		CategoryID:  form.CategoryID,
		ImageURL:    form.ImageURL,
		Description: form.Description,
	}
	if err := h.Admin.SaveProduct(c.Context(), session.Token(c), id, payload); err != nil {
		applog.Error(c, "admin.products.save.fail", err, map[string]any{"product_id": id})
		return h.productsWithError(c, errorMessage(err))
	}
	applog.Audit(c, "admin.products.save", map[string]any{"product_id": id, "name": form.Name})
	return c.Redirect("/admin/products")
}

func (h *AdminCatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).SendString("produto inválido")
	}
	if err := h.API.DeleteProduct(c.Context(), session.Token(c), id); err != nil {
		applog.Error(c, "admin.products.delete.fail", err, map[string]any{"product_id": id})
		return h.productsWithError(c, errorMessage(err))
	}
	applog.Audit(c, "admin.products.delete", map[string]any{"product_id": id})
	return c.Redirect("/admin/products")
}

func (h *AdminCatalogHandler) productsWithError(c *fiber.Ctx, msg string) error {
	c.Status(fiber.StatusBadRequest)
	data := fiber.Map{"Err": msg}
	if products, cats, err := h.Admin.ProductsPage(c.Context()); err == nil {
		data["Products"] = products
		data["Categories"] = cats
	}
	return render(c, "admin_products", data)
}

// ---------- Categories ----------

func (h *AdminCatalogHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.API.Categories(c.Context())
	if err != nil {
		applog.Error(c, "admin.categories.list.fail", err, nil)
		return render(c, "admin_categories", fiber.Map{"Err": errorMessage(err)})
	}
	return render(c, "admin_categories", fiber.Map{"Categories": cats})
}

func (h *AdminCatalogHandler) SaveCategory(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	var form forms.Category
	if err := c.BodyParser(&form); err != nil {
		return h.categoriesWithError(c, "Dados do formulário inválidos.")
	}
	if err := forms.Check(form); err != nil {
		return h.categoriesWithError(c, err.Error())
	}

	payload := api.CategoryPayload{Title: form.Title, Description: form.Description, ImageURL: form.ImageURL}
	if err := h.Admin.SaveCategory(c.Context(), session.Token(c), id, payload); err != nil {
		applog.Error(c, "admin.categories.save.fail", err, map[string]any{"category_id": id})
		return h.categoriesWithError(c, errorMessage(err))
	}
	applog.Audit(c, "admin.categories.save", map[string]any{"category_id": id, "title": form.Title})
	return c.Redirect("/admin/categories")
}

func (h *AdminCatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).SendString("categoria inválida")
	}
	if err := h.API.DeleteCategory(c.Context(), session.Token(c), id); err != nil {
		applog.Error(c, "admin.categories.delete.fail", err, map[string]any{"category_id": id})
		return h.categoriesWithError(c, errorMessage(err))
	}
	applog.Audit(c, "admin.categories.delete", map[string]any{"category_id": id})
	return c.Redirect("/admin/categories")
}

func (h *AdminCatalogHandler) categoriesWithError(c *fiber.Ctx, msg string) error {
	c.Status(fiber.StatusBadRequest)
	data := fiber.Map{"Err": msg}
	if cats, err := h.API.Categories(c.Context()); err == nil {
		data["Categories"] = cats
	}
	return render(c, "admin_categories", data)
}

// ---------- Banners ----------

func (h *AdminCatalogHandler) Banners(c *fiber.Ctx) error {
	banners, err := h.API.Banners(c.Context(), session.Token(c))
	if err != nil {
		applog.Error(c, "admin.banners.list.fail", err, nil)
		return render(c, "admin_banners", fiber.Map{"Err": errorMessage(err)})
	}
	return render(c, "admin_banners", fiber.Map{"Banners": banners})
}

func (h *AdminCatalogHandler) SaveBanner(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	var form forms.Banner
	if err := c.BodyParser(&form); err != nil {
		return h.bannersWithError(c, "Dados do formulário inválidos.")
	}
	if err := forms.Check(form); err != nil {
		return h.bannersWithError(c, err.Error())
	}

	payload := api.BannerPayload{
		Title:    form.Title,
		ImageURL: form.ImageURL,
		LinkURL:  form.LinkURL,
		Position: form.Position,
		IsActive: form.IsActive,
	}
	if err := h.Admin.SaveBanner(c.Context(), session.Token(c), id, payload); err != nil {
		applog.Error(c, "admin.banners.save.fail", err, map[string]any{"banner_id": id})
		return h.bannersWithError(c, errorMessage(err))
	}
	applog.Audit(c, "admin.banners.save", map[string]any{"banner_id": id, "title": form.Title})
	return c.Redirect("/admin/banners")
}

func (h *AdminCatalogHandler) DeleteBanner(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).SendString("banner inválido")
	}
	if err := h.API.DeleteBanner(c.Context(), session.Token(c), id); err != nil {
		applog.Error(c, "admin.banners.delete.fail", err, map[string]any{"banner_id": id})
		return h.bannersWithError(c, errorMessage(err))
	}
	applog.Audit(c, "admin.banners.delete", map[string]any{"banner_id": id})
	return c.Redirect("/admin/banners")
}

func (h *AdminCatalogHandler) bannersWithError(c *fiber.Ctx, msg string) error {
	c.Status(fiber.StatusBadRequest)
	data := fiber.Map{"Err": msg}
	if banners, err := h.API.Banners(c.Context(), session.Token(c)); err == nil {
		data["Banners"] = banners
	}
	return render(c, "admin_banners", data)
}
