package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core entity in the system, one per registered email.
// PasswordHash never leaves the core; the delivery layer maps accounts to
// response DTOs that omit it.
type Account struct {
	ID           uuid.UUID
	Email        string // Stored lower-cased.
	PasswordHash string
	Role         Role
	FirstName    string
	LastName     string
	PhoneNumber  string
	Location     string

	BusinessName    string
	BusinessLicense string
	BusinessType    string

	EmailVerified bool
	Enabled       bool
	Active        bool

	// VerificationToken and TokenExpiresAt are set and cleared together.
	// The slot is shared by email verification and password reset.
	VerificationToken *string
	TokenExpiresAt    *time.Time

	LoginAttempts int
	LockoutUntil  *time.Time
	LastLoginAt   *time.Time

	TotalRentals  int
	AverageRating float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName joins first and last name.
func (a *Account) FullName() string {
	if a.LastName == "" {
		return a.FirstName
	}

	return a.FirstName + " " + a.LastName
}

// IsLocked reports whether a lockout is in force at now.
func (a *Account) IsLocked(now time.Time) bool {
	return a.LockoutUntil != nil && now.Before(*a.LockoutUntil)
}

// IsBusinessUser reports whether the account lists items for rent.
func (a *Account) IsBusinessUser() bool {
	return a.Role.RequiresBusinessInfo()
}

// HasBusinessInfo reports whether all business fields are filled in.
func (a *Account) HasBusinessInfo() bool {
	return a.BusinessName != "" && a.BusinessLicense != "" && a.BusinessType != ""
}

// SetToken stores a token together with its expiry.
func (a *Account) SetToken(token string, expiresAt time.Time) {
	a.VerificationToken = &token
	a.TokenExpiresAt = &expiresAt
}

// ClearToken empties the token slot.
func (a *Account) ClearToken() {
	a.VerificationToken = nil
	a.TokenExpiresAt = nil
}

// TokenExpired reports whether the stored token is past its expiry at now.
func (a *Account) TokenExpired(now time.Time) bool {
	return a.TokenExpiresAt != nil && now.After(*a.TokenExpiresAt)
}

// ResetLoginAttempts clears the failed-login counter and any lockout.
func (a *Account) ResetLoginAttempts() {
	a.LoginAttempts = 0
	a.LockoutUntil = nil
}
