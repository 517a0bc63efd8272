package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const sessionCookie = "storefront_session"

// SessionMiddleware gives every visitor a stable session id, carried in a
// long-lived cookie. The session scopes the cart and shipping draft the way
// a browser's local storage did.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var id string
			if cookie, err := c.Cookie(sessionCookie); err == nil && cookie.Value != "" {
				id = cookie.Value
			} else {
				id = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     sessionCookie,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(180 * 24 * time.Hour),
				})
			}
			c.Set("session_id", id)
			return next(c)
		}
	}
}

// SessionID returns the visitor's session id set by SessionMiddleware.
func SessionID(c echo.Context) string {
	if id, ok := c.Get("session_id").(string); ok {
		return id
	}
	return ""
}
