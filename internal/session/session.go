// Package session handles the access_token cookie, the sole client-side
// persisted credential. Its presence or absence is the whole "am I logged
// in" question; everything else is re-derived from the backend per request.
package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const CookieName = "access_token"

// DefaultTTL matches the backend's fixed one-day token expiry.
const DefaultTTL = 24 * time.Hour

// Token returns the bearer token of the current request, or "".
func Token(c *fiber.Ctx) string {
	return c.Cookies(CookieName)
}

// Set persists the token. The cookie lifetime is clamped to the token's own
// exp claim when it parses as a JWT, so the browser never presents a
// credential the backend already considers dead.
func Set(c *fiber.Ctx, token string, secure bool) {
	expires := time.Now().Add(DefaultTTL)
	if exp, ok := tokenExpiry(token); ok && exp.Before(expires) {
		expires = exp
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   secure,
	})
}

// Clear expires the cookie. Logout is purely local; invalidating the token
// server-side is the backend's concern.
func Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// tokenExpiry reads the exp claim without verifying the signature. The token
// is opaque to this process; verification belongs to the backend.
func tokenExpiry(token string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
