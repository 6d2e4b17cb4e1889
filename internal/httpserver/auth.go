package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cmyzu/campus-backend/internal/middleware"
	"github.com/cmyzu/campus-backend/internal/service"
	"github.com/cmyzu/campus-backend/internal/transport"
	"github.com/cmyzu/campus-backend/pkg/logging"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return respondErr(c, http.StatusBadRequest, msgInvalidBody)
	}
	if !strings.Contains(req.Email, "@") {
		l.Warn("login_error", "status", 400, "reason", "bad email format")
		return respondErr(c, http.StatusBadRequest, "email is not valid")
	}
	if req.Password == "" {
		l.Warn("login_error", "status", 400, "reason", "empty password")
		return respondErr(c, http.StatusBadRequest, "password is required")
	}

	res, err := h.Svc.IssueSession(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// one message for unknown email, inactive account and wrong
			// password: no enumeration signal
			return respondErr(c, http.StatusUnauthorized, "invalid email or password")
		}
		l.Error("login_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	return respondOK(c, http.StatusOK, echo.Map{
		"user":  res.User,
		"token": res.Token,
	})
}

func (h *AuthHTTP) Me(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.me")

	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "missing bearer token")
	}

	user, err := h.Svc.RefreshUser(ctx, claims)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			l.Warn("me_rejected", "status", 401, "reason", "user missing or inactive")
			return respondErr(c, http.StatusUnauthorized, "unauthorized")
		}
		l.Error("me_error", "status", 500, "error", err)
		return respondErr(c, http.StatusInternalServerError, msgInternal)
	}

	return respondOK(c, http.StatusOK, echo.Map{"user": user})
}

// Logout is stateless and always succeeds: the token stays valid until
// expiry, the client discards it. Verification feeds the audit event only.
func (h *AuthHTTP) Logout(c echo.Context) error {
	if token, ok := middleware.BearerToken(c); ok {
		h.Svc.EndSession(c.Request().Context(), token)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
