package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims defines the claims an admin bearer token must carry.
type AdminClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// AdminTokenVerifier validates bearer tokens presented to the admin routes.
// Tokens are minted elsewhere; this service only verifies them.
type AdminTokenVerifier interface {
	Verify(tokenString string) (*AdminClaims, error)
}
