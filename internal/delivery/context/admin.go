package context

import (
	"rentauth/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyAdminClaims is the key for storing verified admin claims in echo.Context.
const KeyAdminClaims ContextKey = "admin_claims"

// SetAdminClaims stores the verified admin claims in echo.Context.
func SetAdminClaims(c echo.Context, claims *service.AdminClaims) {
	c.Set(string(KeyAdminClaims), claims)
}

// GetAdminClaims returns the admin claims set by the admin middleware, or nil.
func GetAdminClaims(c echo.Context) *service.AdminClaims {
	claims, _ := c.Get(string(KeyAdminClaims)).(*service.AdminClaims)

	return claims
}
