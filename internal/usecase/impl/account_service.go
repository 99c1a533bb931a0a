package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "rentauth/internal/delivery/context"
	"rentauth/internal/domain/entity"
	domainerrors "rentauth/internal/domain/errors"
	"rentauth/internal/domain/repository"
	"rentauth/internal/errors"
	"rentauth/internal/usecase"
	"rentauth/internal/util"

	"go.uber.org/fx"
)

const recentRegistrationWindow = 30 * 24 * time.Hour

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	now         func() time.Time
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return newAccountService(params)
}

func newAccountService(params AccountServiceParams) *accountService {
	return &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountService) GetProfile(ctx context.Context, email string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(mapNotFound(err), "failed to find account")
	}

	return account, nil
}

// IsEmailAvailable reports whether no account, in any state, owns the email.
func (srv *accountService) IsEmailAvailable(ctx context.Context, email string) (bool, error) {
	email = util.NormalizeEmail(email)
	if email == "" {
		return false, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	exists, err := srv.accountRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return false, errors.Wrap(err, "failed to check email")
	}

	return !exists, nil
}

// GetStatistics aggregates the user base. Every role appears in the
// distribution, with zero when it has no accounts.
func (srv *accountService) GetStatistics(ctx context.Context) (*entity.AccountStatistics, error) {
	counts, err := srv.accountRepo.CountAccounts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count accounts")
	}

	distribution, err := srv.GetRoleDistribution(ctx)
	if err != nil {
		return nil, err
	}

	stats := &entity.AccountStatistics{
		TotalUsers:       counts.Total,
		ActiveUsers:      counts.Active,
		VerifiedUsers:    counts.Verified,
		UnverifiedUsers:  counts.Unverified,
		VerificationRate: entity.Percentage(counts.Verified, counts.Total),
		ActiveRate:       entity.Percentage(counts.Active, counts.Total),
		RoleDistribution: distribution,
		GeneratedAt:      srv.now().UTC(),
	}

	for _, rc := range distribution {
		switch rc.Role {
		case entity.RoleOwner:
			stats.Business.Owners = rc.Count
		case entity.RoleBusiness:
			stats.Business.Businesses = rc.Count
		}
	}
	stats.Business.TotalBusinessUsers = stats.Business.Owners + stats.Business.Businesses
	stats.Business.OwnerPercentage = entity.Percentage(stats.Business.Owners, stats.Business.TotalBusinessUsers)

	return stats, nil
}

func (srv *accountService) GetRoleDistribution(ctx context.Context) ([]entity.RoleCount, error) {
	rows, err := srv.accountRepo.CountByRole(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count accounts by role")
	}

	byRole := make(map[entity.Role]int64, len(rows))
	for _, row := range rows {
		byRole[row.Role] += row.Count
	}

	distribution := make([]entity.RoleCount, 0, len(entity.AllRoles))
	for _, role := range entity.AllRoles {
		distribution = append(distribution, entity.RoleCount{Role: role, Count: byRole[role]})
	}

	return distribution, nil
}

func (srv *accountService) ListByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + role.String())
	}

	accounts, err := srv.accountRepo.ListByRole(ctx, role)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s accounts", role)
	}

	return accounts, nil
}

// ListBusinessInLocation returns active owners and businesses whose location matches, ignoring case.
func (srv *accountService) ListBusinessInLocation(ctx context.Context, location string) ([]*entity.Account, error) {
	return srv.listInLocation(ctx, location, entity.RoleOwner, entity.RoleBusiness)
}

func (srv *accountService) ListCustomersInLocation(ctx context.Context, location string) ([]*entity.Account, error) {
	return srv.listInLocation(ctx, location, entity.RoleCustomer)
}

func (srv *accountService) listInLocation(ctx context.Context, location string, roles ...entity.Role) ([]*entity.Account, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("location is required")
	}

	accounts, err := srv.accountRepo.ListActiveByRolesInLocation(ctx, roles, location)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts by location")
	}

	return accounts, nil
}

func (srv *accountService) ListRecentRegistrations(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.ListCreatedSince(ctx, srv.now().Add(-recentRegistrationWindow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent registrations")
	}

	return accounts, nil
}

// ListByEmailDomain accepts "example.com" or "@example.com".
func (srv *accountService) ListByEmailDomain(ctx context.Context, domain string) ([]*entity.Account, error) {
	domain = strings.TrimPrefix(util.NormalizeEmail(domain), "@")
	if domain == "" || strings.ContainsAny(domain, "@%_ ") {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid email domain")
	}

	accounts, err := srv.accountRepo.ListByEmailDomain(ctx, domain)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts by email domain")
	}

	return accounts, nil
}

// ResetLoginAttempts lifts a lockout on behalf of an administrator.
func (srv *accountService) ResetLoginAttempts(ctx context.Context, email string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewAccountRepository()

		account, err := repo.FindByEmailForUpdate(ctx, email)
		if err != nil {
			return errors.Wrap(mapNotFound(err), "failed to lock account")
		}

		return repo.ResetLoginAttempts(ctx, account.ID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Login attempts reset", slog.String("email", util.MaskEmail(email)))

	return nil
}

func (srv *accountService) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	cleared, err := srv.accountRepo.ClearExpiredTokens(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to clear expired tokens")
	}

	if cleared > 0 {
		srv.log(ctx).Info("Expired tokens cleared", slog.Int64("count", cleared))
	} else {
		srv.log(ctx).Debug("No expired tokens to clear")
	}

	return cleared, nil
}
