package handlers

import (
	"github.com/gofiber/fiber/v2"

	"vitrine/internal/api"
	"vitrine/internal/forms"
	applog "vitrine/internal/log"
	"vitrine/internal/services"
	"vitrine/internal/session"
)

type AuthHandler struct {
	Session       *services.SessionService
	SecureCookies bool
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	if currentUser(c) != nil {
		return c.Redirect("/")
	}
	return render(c, "login", fiber.Map{})
}

// Login posts credentials to the backend and routes by role on success:
// superuser lands on the dashboard, everyone else on the storefront.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Informe e-mail e senha."})
	}

	token, u, err := h.Session.Login(c.Context(), email, password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": errorMessage(err)})
	}

	session.Set(c, token, h.SecureCookies)
	applog.Audit(c, "auth.login.success", map[string]any{"email": email, "superuser": u.IsSuperuser})
	if u.IsSuperuser {
		return c.Redirect("/admin/dashboard")
	}
	return c.Redirect("/")
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	if currentUser(c) != nil {
		return c.Redirect("/")
	}
	return render(c, "register", fiber.Map{"Form": forms.Register{}})
}

// Register creates the account and, on success, logs in with the same
// credentials right away.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var form forms.Register
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("register", fiber.Map{"Err": "Dados do formulário inválidos.", "Form": form})
	}
	if err := forms.Check(form); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("register", fiber.Map{"Err": err.Error(), "Form": form})
	}

	token, u, err := h.Session.Register(c.Context(), api.RegisterPayload{
		Email:             form.Email,
		Password:          form.Password,
		FullName:          form.FullName,
		CPF:               form.CPF,
		Phone:             form.Phone,
		AddressStreet:     form.AddressStreet,
		AddressNumber:     form.AddressNumber,
		AddressComplement: form.AddressComplement,
		AddressZip:        form.AddressZip,
		AddressCity:       form.AddressCity,
		AddressState:      form.AddressState,
	})
	if err != nil {
		applog.Error(c, "auth.register.fail", err, map[string]any{"email": form.Email})
		return c.Status(fiber.StatusBadRequest).Render("register", fiber.Map{"Err": errorMessage(err), "Form": form})
	}

	session.Set(c, token, h.SecureCookies)
	applog.Audit(c, "auth.register.success", map[string]any{"email": form.Email})
	if u.IsSuperuser {
		return c.Redirect("/admin/dashboard")
	}
	return c.Redirect("/")
}

// Logout is purely local: expire the cookie and go to the login page.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	session.Clear(c)
	applog.Audit(c, "auth.logout", nil)
	return c.Redirect("/login")
}
