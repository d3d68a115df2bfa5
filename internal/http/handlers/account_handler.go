package handlers

import (
	"github.com/gofiber/fiber/v2"

	"vitrine/internal/api"
	"vitrine/internal/forms"
	applog "vitrine/internal/log"
	"vitrine/internal/services"
	"vitrine/internal/session"
)

// AccountHandler serves the customer's own pages: profile, password change
// and order history.
type AccountHandler struct {
	Session *services.SessionService
	Orders  *services.OrderService
	API     *api.Client
}

func (h *AccountHandler) Profile(c *fiber.Ctx) error {
	return render(c, "account_profile", fiber.Map{"Profile": currentUser(c)})
}

func (h *AccountHandler) UpdateProfile(c *fiber.Ctx) error {
	var form forms.Profile
	if err := c.BodyParser(&form); err != nil {
		c.Status(fiber.StatusBadRequest)
		return render(c, "account_profile", fiber.Map{"Err": "Dados do formulário inválidos.", "Profile": currentUser(c)})
	}
	if err := forms.Check(form); err != nil {
		c.Status(fiber.StatusBadRequest)
		return render(c, "account_profile", fiber.Map{"Err": err.Error(), "Profile": currentUser(c)})
	}

	updated, err := h.API.UpdateProfile(c.Context(), session.Token(c), api.ProfilePayload{
		FullName:          form.FullName,
		Phone:             form.Phone,
		AddressStreet:     form.AddressStreet,
		AddressNumber:     form.AddressNumber,
		AddressComplement: form.AddressComplement,
		AddressZip:        form.AddressZip,
		AddressCity:       form.AddressCity,
		AddressState:      form.AddressState,
	})
	if err != nil {
		applog.Error(c, "account.profile.update.fail", err, nil)
		c.Status(fiber.StatusBadRequest)
		return render(c, "account_profile", fiber.Map{"Err": errorMessage(err), "Profile": currentUser(c)})
	}
	applog.Audit(c, "account.profile.update", map[string]any{"user_id": updated.ID})
	return render(c, "account_profile", fiber.Map{"Profile": &updated, "OK": "Perfil atualizado com sucesso."})
}

func (h *AccountHandler) PasswordForm(c *fiber.Ctx) error {
	return render(c, "account_password", fiber.Map{})
}

func (h *AccountHandler) UpdatePassword(c *fiber.Ctx) error {
	var form forms.PasswordChange
	if err := c.BodyParser(&form); err != nil {
		c.Status(fiber.StatusBadRequest)
		return render(c, "account_password", fiber.Map{"Err": "Dados do formulário inválidos."})
	}
	if err := forms.Check(form); err != nil {
		c.Status(fiber.StatusBadRequest)
		return render(c, "account_password", fiber.Map{"Err": err.Error()})
	}

	err := h.API.UpdatePassword(c.Context(), session.Token(c), api.PasswordPayload{
		CurrentPassword: form.CurrentPassword,
		NewPassword:     form.NewPassword,
	})
	if err != nil {
		applog.Error(c, "account.password.update.fail", err, nil)
		c.Status(fiber.StatusBadRequest)
		return render(c, "account_password", fiber.Map{"Err": errorMessage(err)})
	}
	applog.Audit(c, "account.password.update", nil)
	return render(c, "account_password", fiber.Map{"OK": "Senha alterada com sucesso."})
}

func (h *AccountHandler) OrderHistory(c *fiber.Ctx) error {
	orders, err := h.Orders.History(c.Context(), session.Token(c))
	if err != nil {
		applog.Error(c, "account.orders.fail", err, nil)
		return render(c, "account_orders", fiber.Map{"Err": errorMessage(err)})
	}
	return render(c, "account_orders", fiber.Map{"Orders": orders})
}
