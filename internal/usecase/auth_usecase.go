// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"rentauth/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Location    string
	Role        entity.Role // Empty means CUSTOMER.

	BusinessName    string
	BusinessLicense string
	BusinessType    string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the authenticated account and how the client should present it.
type LoginOutput struct {
	Account      *entity.Account
	Presentation RolePresentation
}

// FailedLoginOutcome describes the counter state after a failed attempt.
type FailedLoginOutcome struct {
	Attempts int
	// Locked is true when this attempt triggered the lockout.
	Locked         bool
	LockoutMinutes int
}

// AuthUsecase is the account security state machine.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.Account, error)

	// Authenticate checks credentials, then active, then lockout, then
	// verification. It has no side effects.
	Authenticate(ctx context.Context, email, password string) (*entity.Account, error)

	// CheckLockout returns an AccountLockedError while a lockout is in force.
	// Unknown emails are not locked.
	CheckLockout(ctx context.Context, email string) error

	// RecordFailedLogin returns a nil outcome for unknown emails.
	RecordFailedLogin(ctx context.Context, email string) (*FailedLoginOutcome, error)
	RecordSuccessfulLogin(ctx context.Context, account *entity.Account) error

	// Login runs the full sequence: lockout check, authentication, counter update.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	VerifyEmail(ctx context.Context, token string) (bool, error)
	ResendVerification(ctx context.Context, email string) error

	// InitiatePasswordReset never reveals whether the email exists.
	InitiatePasswordReset(ctx context.Context, email string) error
	CompletePasswordReset(ctx context.Context, token, newPassword string) (bool, error)

	Deactivate(ctx context.Context, email string) error
	Reactivate(ctx context.Context, email string) error
}
