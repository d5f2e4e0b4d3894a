package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"StorefrontAPI/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const sessionContextKey = "auth_session"

type SessionLookup interface {
	Get(ctx context.Context, id string) (*model.Session, error)
}

// SessionMiddleware resolves the bearer session id into a Session and sets
// it on the request context. Requests without a valid session get 401 with a
// login URL carrying the originally requested destination, so the client can
// come back after signing in.
func SessionMiddleware(sessions SessionLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := BearerCredential(c)
			if id == "" {
				return unauthenticated(c)
			}
			sess, err := sessions.Get(c.Request().Context(), id)
			if err != nil {
				return unauthenticated(c)
			}
			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// GetSession extracts the session placed by SessionMiddleware.
func GetSession(c echo.Context) *model.Session {
	v := c.Get(sessionContextKey)
	if v == nil {
		return nil
	}
	if sess, ok := v.(*model.Session); ok {
		return sess
	}
	return nil
}

// TokenClaims parses display-only claims (expiry, subject) out of the
// backend bearer token. The token is opaque to this service and verification
// is the backend's job, so the parse is deliberately unverified.
func TokenClaims(token string) jwt.MapClaims {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	return claims
}

// BearerCredential returns the bearer session id from the Authorization
// header, or "" when absent or malformed.
func BearerCredential(c echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.Fields(auth)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}

func unauthenticated(c echo.Context) error {
	from := c.Request().URL.RequestURI()
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"error":     "unauthenticated",
		"login_url": "/login?from=" + url.QueryEscape(from),
	})
}
