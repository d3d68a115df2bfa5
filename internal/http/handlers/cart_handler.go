package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"vitrine/internal/forms"
	applog "vitrine/internal/log"
	"vitrine/internal/services"
	"vitrine/internal/session"
)

// CartHandler serves the interactive cart. Every mutating action goes
// through the write-then-invalidate contract in CartService and ends in a
// redirect back to /cart, which re-renders from the fresh fetch.
type CartHandler struct {
	Cart *services.CartService
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	cart, err := h.Cart.View(c.Context(), session.Token(c))
	if err != nil {
		applog.Error(c, "cart.fetch.fail", err, nil)
		return render(c, "cart", fiber.Map{"Err": errorMessage(err)})
	}
	return render(c, "cart", fiber.Map{"Cart": cart})
}

// Add puts a product in the cart (from the product detail page).
func (h *CartHandler) Add(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.FormValue("product_id"))
	if err != nil || productID < 1 {
		return c.Status(fiber.StatusBadRequest).SendString("produto inválido")
	}
	quantity, err := strconv.Atoi(c.FormValue("quantity", "1"))
	if err != nil || quantity < 1 {
		quantity = 1
	}

	if _, err := h.Cart.AddItem(c.Context(), session.Token(c), productID, quantity); err != nil {
		applog.Error(c, "cart.add.fail", err, map[string]any{"product_id": productID})
		return h.viewWithError(c, err)
	}
	applog.Audit(c, "cart.add", map[string]any{"product_id": productID, "quantity": quantity})
	return c.Redirect("/cart")
}

// UpdateQuantity sets the quantity of one cart line. A quantity of zero is
// rejected here; removal has its own confirmed action.
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil || productID < 1 {
		return c.Status(fiber.StatusBadRequest).SendString("produto inválido")
	}
	quantity, err := strconv.Atoi(c.FormValue("quantity"))
	if err != nil || quantity < 1 {
		return c.Status(fiber.StatusBadRequest).SendString("quantidade inválida")
	}

	if _, err := h.Cart.SetQuantity(c.Context(), session.Token(c), productID, quantity); err != nil {
		applog.Error(c, "cart.update.fail", err, map[string]any{"product_id": productID})
		return h.viewWithError(c, err)
	}
	applog.Audit(c, "cart.update", map[string]any{"product_id": productID, "quantity": quantity})
	return c.Redirect("/cart")
}

// Remove deletes a cart line. The template gates this POST behind an
// explicit confirm(); cancelling issues no request at all.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil || productID < 1 {
		return c.Status(fiber.StatusBadRequest).SendString("produto inválido")
	}

	if _, err := h.Cart.RemoveItem(c.Context(), session.Token(c), productID); err != nil {
		applog.Error(c, "cart.remove.fail", err, map[string]any{"product_id": productID})
		return h.viewWithError(c, err)
	}
	applog.Audit(c, "cart.remove", map[string]any{"product_id": productID})
	return c.Redirect("/cart")
}

func (h *CartHandler) ApplyCoupon(c *fiber.Ctx) error {
	var form forms.Coupon
	_ = c.BodyParser(&form)
	if err := forms.Check(form); err != nil {
		return h.viewWithMessage(c, err.Error())
	}

	if _, err := h.Cart.ApplyCoupon(c.Context(), session.Token(c), form.Code); err != nil {
		applog.Error(c, "cart.coupon.apply.fail", err, map[string]any{"code": form.Code})
		return h.viewWithError(c, err)
	}
	applog.Audit(c, "cart.coupon.apply", map[string]any{"code": form.Code})
	return c.Redirect("/cart")
}

func (h *CartHandler) RemoveCoupon(c *fiber.Ctx) error {
	if _, err := h.Cart.RemoveCoupon(c.Context(), session.Token(c)); err != nil {
		applog.Error(c, "cart.coupon.remove.fail", err, nil)
		return h.viewWithError(c, err)
	}
	applog.Audit(c, "cart.coupon.remove", nil)
	return c.Redirect("/cart")
}

// viewWithError re-renders the cart from a fresh fetch with the failure
// message inline, so the user never sees a dead end.
func (h *CartHandler) viewWithError(c *fiber.Ctx, cause error) error {
	return h.viewWithMessage(c, errorMessage(cause))
}

func (h *CartHandler) viewWithMessage(c *fiber.Ctx, msg string) error {
	data := fiber.Map{"Err": msg}
	if cart, err := h.Cart.View(c.Context(), session.Token(c)); err == nil {
		data["Cart"] = cart
	}
	c.Status(fiber.StatusBadRequest)
	return render(c, "cart", data)
}
