// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"rentauth/internal/domain/entity"
	"rentauth/internal/errors"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no account matches the lookup.
var ErrAccountNotFound = errors.New("account not found")

// LoginAttemptResult is the row state after an atomic failed-login increment.
type LoginAttemptResult struct {
	Attempts     int
	LockoutUntil *time.Time
	// Locked is true when this increment reached the threshold and set the lockout.
	Locked bool
}

// AccountRepository is the credential store.
// Email arguments are matched case-insensitively.
type AccountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByEmailForUpdate loads the account and holds a row lock until the
	// surrounding transaction ends. Outside a transaction it behaves like FindByEmail.
	FindByEmailForUpdate(ctx context.Context, email string) (*entity.Account, error)

	// FindByToken matches the token slot regardless of expiry.
	FindByToken(ctx context.Context, token string) (*entity.Account, error)

	// FindByValidToken matches the token slot only while now <= tokenExpiresAt.
	FindByValidToken(ctx context.Context, token string, now time.Time) (*entity.Account, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)

	Create(ctx context.Context, account *entity.Account) error
	Update(ctx context.Context, account *entity.Account) error

	// ClearToken empties the token slot of one account.
	ClearToken(ctx context.Context, id uuid.UUID) error

	// IncrementLoginAttempts adds one failed attempt in a single statement and,
	// when the new count reaches threshold, sets lockoutUntil in the same statement.
	// It returns ErrAccountNotFound for unknown emails.
	IncrementLoginAttempts(ctx context.Context, email string, threshold int, lockoutUntil, now time.Time) (*LoginAttemptResult, error)

	// ResetLoginAttempts zeroes the counter and clears the lockout.
	ResetLoginAttempts(ctx context.Context, id uuid.UUID) error

	// ClearExpiredTokens empties every token slot that expired before now
	// and returns the number of rows changed.
	ClearExpiredTokens(ctx context.Context, now time.Time) (int64, error)

	CountAccounts(ctx context.Context) (*entity.AccountCounts, error)
	CountByRole(ctx context.Context) ([]entity.RoleCount, error)

	ListByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error)
	// ListActiveByRolesInLocation returns active accounts with any of roles whose location matches, case-insensitively.
	ListActiveByRolesInLocation(ctx context.Context, roles []entity.Role, location string) ([]*entity.Account, error)
	ListCreatedSince(ctx context.Context, since time.Time) ([]*entity.Account, error)
	ListByEmailDomain(ctx context.Context, domain string) ([]*entity.Account, error)
}
