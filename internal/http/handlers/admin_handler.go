package handlers

import (
	"github.com/gofiber/fiber/v2"

	"vitrine/internal/api"
	"vitrine/internal/domain"
	applog "vitrine/internal/log"
	"vitrine/internal/services"
	"vitrine/internal/session"
)

// AdminHandler covers the back-office pages that are not entity CRUD:
// dashboard, order management and user management.
type AdminHandler struct {
	Admin *services.AdminService
	API   *api.Client
}

// GET /admin/dashboard
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	d, err := h.Admin.Dashboard(c.Context(), session.Token(c))
	if err != nil {
		applog.Error(c, "admin.dashboard.fail", err, nil)
		return render(c, "admin_dashboard", fiber.Map{"Err": errorMessage(err)})
	}
	return render(c, "admin_dashboard", fiber.Map{
		"Summary":            d.Summary,
		"SalesOverTime":      d.SalesOverTime,
		"StatusDistribution": d.StatusDistribution,
		"CouponPerformance":  d.CouponPerformance,
	})
}

// GET /admin/orders
func (h *AdminHandler) Orders(c *fiber.Ctx) error {
	orders, err := h.API.AllOrders(c.Context(), session.Token(c))
	if err != nil {
		applog.Error(c, "admin.orders.list.fail", err, nil)
		return render(c, "admin_orders", fiber.Map{"Err": errorMessage(err)})
	}
	return render(c, "admin_orders", fiber.Map{"Orders": orders})
}

// GET /admin/orders/:id — detail view with the status transition buttons.
// The backend has no single-order endpoint; the detail comes from the same
// full listing the table uses, so both stay in sync after a transition.
func (h *AdminHandler) OrderDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Pedido não encontrado"})
	}
	orders, err := h.API.AllOrders(c.Context(), session.Token(c))
	if err != nil {
		applog.Error(c, "admin.orders.list.fail", err, nil)
		return render(c, "admin_orders", fiber.Map{"Err": errorMessage(err)})
	}
	for _, o := range orders {
		if o.ID == id {
			return render(c, "admin_order_detail", fiber.Map{
				"Order":       o,
				"Transitions": transitionsFor(o.Status),
			})
		}
	}
	return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Pedido não encontrado"})
}

// transitionsFor offers every status except the current one; whether a
// transition is legal is entirely the backend's call.
func transitionsFor(current string) []string {
	out := make([]string, 0, len(domain.AllStatuses)-1)
	for _, s := range domain.AllStatuses {
		if s != current {
			out = append(out, s)
		}
	}
	return out
}

// POST /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	status := c.FormValue("status")
	if err != nil || id < 1 || status == "" {
		return c.Status(fiber.StatusBadRequest).SendString("pedido ou status ausente")
	}
	if _, err := h.API.UpdateOrderStatus(c.Context(), session.Token(c), id, status); err != nil {
		applog.Error(c, "admin.orders.status.fail", err, map[string]any{"order_id": id, "status": status})
		orders, listErr := h.API.AllOrders(c.Context(), session.Token(c))
		if listErr != nil {
			return render(c, "admin_orders", fiber.Map{"Err": errorMessage(err)})
		}
		return render(c, "admin_orders", fiber.Map{"Orders": orders, "Err": errorMessage(err)})
	}
	applog.Audit(c, "admin.orders.status", map[string]any{"order_id": id, "status": status})
	// Redirect back to the detail, which re-fetches list and order alike
	return c.Redirect("/admin/orders/" + c.Params("id"))
}

// GET /admin/users
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	users, err := h.API.AdminUsers(c.Context(), session.Token(c))
	if err != nil {
		applog.Error(c, "admin.users.list.fail", err, nil)
		return render(c, "admin_users", fiber.Map{"Err": errorMessage(err)})
	}
	return render(c, "admin_users", fiber.Map{"Users": users})
}

// POST /admin/users/:id/active — flips the active flag.
func (h *AdminHandler) ToggleUserActive(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).SendString("usuário inválido")
	}
	active := c.FormValue("active") == "true"
	if err := h.API.SetUserActive(c.Context(), session.Token(c), id, active); err != nil {
		applog.Error(c, "admin.users.toggle.fail", err, map[string]any{"user_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("não foi possível atualizar o usuário")
	}
	applog.Audit(c, "admin.users.toggle", map[string]any{"user_id": id, "active": active})
	return c.Redirect("/admin/users")
}

// POST /admin/users/:id/delete — behind a confirm() in the template.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).SendString("usuário inválido")
	}
	if err := h.API.DeleteUser(c.Context(), session.Token(c), id); err != nil {
		applog.Error(c, "admin.users.delete.fail", err, map[string]any{"user_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("não foi possível excluir o usuário")
	}
	applog.Audit(c, "admin.users.delete", map[string]any{"user_id": id})
	return c.Redirect("/admin/users")
}
