package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"vitrine/internal/domain"
	applog "vitrine/internal/log"
	"vitrine/internal/services"
	"vitrine/internal/session"
)

// AttachUser resolves the current user from the access_token cookie on every
// request so templates can render the header. A token the backend rejects is
// cleared on the spot; the request continues unauthenticated.
func AttachUser(sess *services.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := session.Token(c)
		if tok == "" {
			return c.Next()
		}
		u, err := sess.CurrentUser(c.Context(), tok)
		if err != nil {
			if errors.Is(err, services.ErrSessionExpired) {
				applog.Security(c, "session.expired", nil)
				session.Clear(c)
			}
			return c.Next()
		}
		c.Locals("user", u)
		return c.Next()
	}
}

func currentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}

// RequireUser enforces that a user is logged in; otherwise redirect to login.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if currentUser(c) == nil {
			return c.Redirect("/login")
		}
		return c.Next()
	}
}

// RequireAdmin gates the back-office behind the superuser flag.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := currentUser(c)
		if u == nil {
			return c.Redirect("/login")
		}
		if !u.IsSuperuser {
			applog.Security(c, "access.denied.admin", map[string]any{"user_id": u.ID})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Acesso negado"})
		}
		return c.Next()
	}
}
