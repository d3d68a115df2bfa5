package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "vitrine/internal/log"
	"vitrine/internal/services"
	"vitrine/internal/session"
)

type CheckoutHandler struct {
	Orders *services.OrderService
}

// Checkout turns the cart into an order and hands the browser off to the
// external payment page with a full redirect.
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	url, err := h.Orders.Checkout(c.Context(), session.Token(c))
	if err != nil {
		applog.Error(c, "checkout.fail", err, nil)
		c.Status(fiber.StatusBadRequest)
		return render(c, "cart", fiber.Map{"Err": errorMessage(err)})
	}
	applog.Audit(c, "checkout.redirect", nil)
	return c.Redirect(url, fiber.StatusSeeOther)
}

// PaymentSuccess is the landing page the payment provider returns to.
func (h *CheckoutHandler) PaymentSuccess(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.Status(fiber.StatusBadRequest)
		return render(c, "payment_success", fiber.Map{"Err": "ID da sessão de pagamento não encontrado."})
	}
	applog.Info(c, "payment.success.view", map[string]any{"session_id": sessionID})
	return render(c, "payment_success", fiber.Map{"SessionID": sessionID})
}
