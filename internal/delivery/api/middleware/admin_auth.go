package middleware

import (
	"log/slog"
	"strings"

	"rentauth/internal/delivery/api/response"
	deliverycontext "rentauth/internal/delivery/context"
	"rentauth/internal/domain/entity"
	"rentauth/internal/domain/service"
	"rentauth/internal/util"

	"github.com/labstack/echo/v4"
)

// AdminAuthMiddleware guards the admin routes with a bearer token.
type AdminAuthMiddleware struct {
	verifier service.AdminTokenVerifier
	logger   *slog.Logger
}

// NewAdminAuthMiddleware is the constructor for AdminAuthMiddleware.
func NewAdminAuthMiddleware(verifier service.AdminTokenVerifier, logger *slog.Logger) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate validates the bearer token and requires an admin role.
func (m *AdminAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.verifier.Verify(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Info("Admin token rejected",
				slog.Any("error", err),
			)

			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		if role, ok := entity.ParseRole(claims.Role); !ok || !role.IsAdmin() {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: admin role required")
		}

		deliverycontext.SetAdminClaims(c, claims)
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Admin request authorized",
			slog.String("admin", util.MaskEmail(claims.Email)),
			slog.String("path", c.Path()),
		)

		return next(c)
	}
}
