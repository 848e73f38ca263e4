package handler

import (
	"net/http"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/delivery/http/response"
	"blog/internal/domain/service"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication-related handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Refresh re-issues a session token for the authenticated caller. The route
// guard guarantees an authenticated verdict by the time this runs.
func (h *AuthHandler) Refresh(c echo.Context) error {
	verdict := deliverycontext.GetVerdict(c)

	claims := &service.Claims{
		UserID:   verdict.UserID,
		Username: verdict.Username,
		Role:     verdict.Role,
	}

	output, err := h.uc.Refresh(c.Request().Context(), claims)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// ChangePassword rotates the authenticated caller's password.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var input usecase.ChangePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	verdict := deliverycontext.GetVerdict(c)
	if err := h.uc.ChangePassword(c.Request().Context(), verdict, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

// Me returns the authenticated caller's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	verdict := deliverycontext.GetVerdict(c)

	user, err := h.uc.Profile(c.Request().Context(), verdict)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}
