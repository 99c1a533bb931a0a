// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strings"

	"rentauth/internal/delivery/api/response"
	"rentauth/internal/domain/entity"
	domainerrors "rentauth/internal/domain/errors"
	"rentauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the public account routes.
type AuthHandler struct {
	authUC    usecase.AuthUsecase
	accountUC usecase.AccountUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase, accountUC usecase.AccountUsecase) *AuthHandler {
	return &AuthHandler{authUC: authUC, accountUC: accountUC}
}

// bindAndValidate binds the request body and runs the echo validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid request body")
	}

	return errors.WithStack(c.Validate(req))
}

// Register handles account registration.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	role := entity.RoleCustomer
	if strings.TrimSpace(req.Role) != "" {
		parsed, ok := entity.ParseRole(req.Role)
		if !ok {
			return domainerrors.ErrValidationFailed.WithDetails("unknown role " + req.Role)
		}
		role = parsed
	}
	if role.IsAdmin() {
		return domainerrors.ErrForbidden.WithDetails("admin accounts cannot self-register")
	}

	account, err := h.authUC.Register(c.Request().Context(), req.toInput(role))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"account": newAccountResponse(account),
		"message": "Registration successful. Please check your email to verify your account.",
	})
}

// Login handles credential login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		Account:          newAccountResponse(output.Account),
		RolePresentation: output.Presentation,
	})
}

// VerifyEmail consumes the verification link.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	token := c.QueryParam("token")
	if strings.TrimSpace(token) == "" {
		return response.BadRequest(c, "INVALID_INPUT", "token is required")
	}

	if _, err := h.authUC.VerifyEmail(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Email verified successfully. You can now log in."})
}

// ResendVerification issues a fresh verification link.
func (h *AuthHandler) ResendVerification(c echo.Context) error {
	var req EmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authUC.ResendVerification(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Verification email sent."})
}

// ForgotPassword always answers the same way, whether or not the email exists.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req EmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authUC.InitiatePasswordReset(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{
		Message: "If an account exists for this email, a password reset link has been sent.",
	})
}

// ResetPassword completes a password reset.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.authUC.CompletePasswordReset(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Password has been reset. You can now log in."})
}

// Profile returns the public view of an account.
func (h *AuthHandler) Profile(c echo.Context) error {
	email := c.QueryParam("email")
	if strings.TrimSpace(email) == "" {
		return response.BadRequest(c, "INVALID_INPUT", "email is required")
	}

	account, err := h.accountUC.GetProfile(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account))
}

// Logout is an acknowledgement; sessions are held by the client.
func (h *AuthHandler) Logout(c echo.Context) error {
	return response.Success(c, http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}

// CheckEmail reports whether an email is free to register.
func (h *AuthHandler) CheckEmail(c echo.Context) error {
	available, err := h.accountUC.IsEmailAvailable(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"available": available})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
