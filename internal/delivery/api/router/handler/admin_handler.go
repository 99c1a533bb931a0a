package handler

import (
	"context"
	"log/slog"
	"net/http"

	"rentauth/internal/delivery/api/response"
	deliverycontext "rentauth/internal/delivery/context"
	"rentauth/internal/domain/entity"
	domainerrors "rentauth/internal/domain/errors"
	"rentauth/internal/usecase"
	"rentauth/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the admin routes.
type AdminHandler struct {
	authUC    usecase.AuthUsecase
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(authUC usecase.AuthUsecase, accountUC usecase.AccountUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{authUC: authUC, accountUC: accountUC, logger: logger}
}

// Statistics returns user base aggregates.
func (h *AdminHandler) Statistics(c echo.Context) error {
	stats, err := h.accountUC.GetStatistics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// RoleStatistics returns the count per role.
func (h *AdminHandler) RoleStatistics(c echo.Context) error {
	distribution, err := h.accountUC.GetRoleDistribution(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, distribution)
}

// UsersByRole lists accounts holding the :role path parameter.
func (h *AdminHandler) UsersByRole(c echo.Context) error {
	role, ok := entity.ParseRole(c.Param("role"))
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails("unknown role " + c.Param("role"))
	}

	accounts, err := h.accountUC.ListByRole(c.Request().Context(), role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountListResponse(accounts))
}

// BusinessUsers lists active owners and businesses in ?location=.
func (h *AdminHandler) BusinessUsers(c echo.Context) error {
	accounts, err := h.accountUC.ListBusinessInLocation(c.Request().Context(), c.QueryParam("location"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountListResponse(accounts))
}

// Customers lists active customers in ?location=.
func (h *AdminHandler) Customers(c echo.Context) error {
	accounts, err := h.accountUC.ListCustomersInLocation(c.Request().Context(), c.QueryParam("location"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountListResponse(accounts))
}

// RecentRegistrations lists accounts created in the last 30 days.
func (h *AdminHandler) RecentRegistrations(c echo.Context) error {
	accounts, err := h.accountUC.ListRecentRegistrations(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountListResponse(accounts))
}

// UsersByDomain lists accounts whose email is at ?domain=.
func (h *AdminHandler) UsersByDomain(c echo.Context) error {
	accounts, err := h.accountUC.ListByEmailDomain(c.Request().Context(), c.QueryParam("domain"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountListResponse(accounts))
}

// Deactivate soft-disables an account.
func (h *AdminHandler) Deactivate(c echo.Context) error {
	return h.accountAction(c, "deactivate", h.authUC.Deactivate, "Account deactivated")
}

// Reactivate re-enables an account.
func (h *AdminHandler) Reactivate(c echo.Context) error {
	return h.accountAction(c, "reactivate", h.authUC.Reactivate, "Account reactivated")
}

// ResetAttempts clears the failed-login counter and any lockout.
func (h *AdminHandler) ResetAttempts(c echo.Context) error {
	return h.accountAction(c, "reset-attempts", h.accountUC.ResetLoginAttempts, "Login attempts reset")
}

func (h *AdminHandler) accountAction(c echo.Context, action string, run func(ctx context.Context, email string) error, message string) error {
	var req EmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := run(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	h.audit(c, action, req.Email)

	return response.Success(c, http.StatusOK, MessageResponse{Message: message})
}

// CleanupTokens clears expired token pairs now instead of waiting for the sweep.
func (h *AdminHandler) CleanupTokens(c echo.Context) error {
	cleared, err := h.accountUC.CleanupExpiredTokens(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	h.audit(c, "cleanup-tokens", "")

	return response.Success(c, http.StatusOK, map[string]int64{"cleared": cleared})
}

func (h *AdminHandler) audit(c echo.Context, action, target string) {
	attrs := []any{slog.String("action", action)}
	if claims := deliverycontext.GetAdminClaims(c); claims != nil {
		attrs = append(attrs, slog.String("admin", util.MaskEmail(claims.Email)))
	}
	if target != "" {
		attrs = append(attrs, slog.String("target", util.MaskEmail(target)))
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Admin action", attrs...)
}
