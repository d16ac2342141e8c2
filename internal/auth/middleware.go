package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ContextKey is where the middleware stores the verified *Claims on the
// echo context.
const ContextKey = "user"

// Middleware gates every record route: a missing or malformed
// Authorization header is a 401, a token that fails verification is a
// 403. On success the decoded identity is attached to the request
// context for handlers to read.
func Middleware(m *Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Access denied"})
			}
			claims, err := m.Verify(token)
			if err != nil {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "Invalid token"})
			}
			c.Set(ContextKey, claims)
			return next(c)
		}
	}
}
