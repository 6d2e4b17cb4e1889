package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cmyzu/campus-backend/pkg/tokens"
)

const (
	ClaimsKey = "claims"
	UserIDKey = "user_id"
	RoleKey   = "role"
)

type SessionAuth struct {
	Secret []byte
}

func NewSessionAuth(secret []byte) *SessionAuth {
	return &SessionAuth{Secret: secret}
}

// BearerToken pulls the token out of the Authorization header. An absent
// or malformed header fails before any token parsing happens.
func BearerToken(c echo.Context) (string, bool) {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if h == "" {
		return "", false
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// RequireAuth rejects requests without a verifiable session token.
func (m *SessionAuth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := BearerToken(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"success": false,
				"error":   "missing bearer token",
			})
		}

		claims, err := tokens.SessionClaimsFromToken(token, m.Secret)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"success": false,
				"error":   "invalid or expired token",
			})
		}

		c.Set(ClaimsKey, claims)
		c.Set(UserIDKey, claims.Subject)
		c.Set(RoleKey, claims.Role)
		return next(c)
	}
}

// RequireAdmin layers the role check on top of RequireAuth: a verified
// token without the admin role answers 403, not 401.
func (m *SessionAuth) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return m.RequireAuth(func(c echo.Context) error {
		if role, _ := c.Get(RoleKey).(string); role != "admin" {
			return c.JSON(http.StatusForbidden, echo.Map{
				"success": false,
				"error":   "admin role required",
			})
		}
		return next(c)
	})
}

// ClaimsFromContext returns the verified claims set by RequireAuth.
func ClaimsFromContext(c echo.Context) (*tokens.SessionClaims, bool) {
	claims, ok := c.Get(ClaimsKey).(*tokens.SessionClaims)
	return claims, ok
}
