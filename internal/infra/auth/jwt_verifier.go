package auth

import (
	"rentauth/config"
	"rentauth/internal/domain/entity"
	"rentauth/internal/domain/service"
	"rentauth/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	errMissingAdminSecret = errors.New("admin jwt secret must be provided")
	errNotAdmin           = errors.New("token does not carry an admin role")
)

// jwtAdminVerifier checks HS256 bearer tokens signed with secretKey.admin.
type jwtAdminVerifier struct {
	secret []byte
}

// NewJWTAdminVerifier is the constructor for jwtAdminVerifier.
func NewJWTAdminVerifier(cfg *config.Config) (service.AdminTokenVerifier, error) {
	if cfg == nil || cfg.SecretKey.Admin == "" {
		return nil, errMissingAdminSecret
	}

	return &jwtAdminVerifier{secret: []byte(cfg.SecretKey.Admin)}, nil
}

// Verify parses the token, checks its signature and expiry, and requires an admin role.
func (v *jwtAdminVerifier) Verify(tokenString string) (*service.AdminClaims, error) {
	claims := &service.AdminClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "invalid admin token")
	}

	role, ok := entity.ParseRole(claims.Role)
	if !ok || !role.IsAdmin() {
		return nil, errNotAdmin
	}

	return claims, nil
}
