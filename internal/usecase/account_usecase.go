package usecase

import (
	"context"

	"rentauth/internal/domain/entity"
)

// AccountUsecase serves profile lookups, reporting and admin maintenance.
type AccountUsecase interface {
	GetProfile(ctx context.Context, email string) (*entity.Account, error)
	IsEmailAvailable(ctx context.Context, email string) (bool, error)

	GetStatistics(ctx context.Context) (*entity.AccountStatistics, error)
	GetRoleDistribution(ctx context.Context) ([]entity.RoleCount, error)

	ListByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error)
	ListBusinessInLocation(ctx context.Context, location string) ([]*entity.Account, error)
	ListCustomersInLocation(ctx context.Context, location string) ([]*entity.Account, error)
	// ListRecentRegistrations returns accounts created in the last 30 days, newest first.
	ListRecentRegistrations(ctx context.Context) ([]*entity.Account, error)
	ListByEmailDomain(ctx context.Context, domain string) ([]*entity.Account, error)

	ResetLoginAttempts(ctx context.Context, email string) error

	// CleanupExpiredTokens clears expired token pairs and returns how many were cleared.
	CleanupExpiredTokens(ctx context.Context) (int64, error)
}
