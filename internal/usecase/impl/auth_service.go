// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"rentauth/config"
	deliverycontext "rentauth/internal/delivery/context"
	"rentauth/internal/domain/entity"
	domainerrors "rentauth/internal/domain/errors"
	"rentauth/internal/domain/repository"
	"rentauth/internal/domain/service"
	"rentauth/internal/errors"
	"rentauth/internal/usecase"
	"rentauth/internal/util"

	"go.uber.org/fx"
)

// securityPolicy holds the tunables of the account state machine.
type securityPolicy struct {
	verificationTTL        time.Duration
	passwordResetTTL       time.Duration
	maxLoginAttempts       int
	lockoutDuration        time.Duration
	minResetPasswordLength int
}

func newSecurityPolicy(cfg *config.Config) securityPolicy {
	auth := &config.AuthConfig{}
	if cfg != nil && cfg.Auth != nil {
		copied := *cfg.Auth
		auth = &copied
	}

	policy := securityPolicy{
		verificationTTL:        auth.VerificationTokenTTL,
		passwordResetTTL:       auth.PasswordResetTokenTTL,
		maxLoginAttempts:       auth.MaxLoginAttempts,
		lockoutDuration:        auth.LockoutDuration,
		minResetPasswordLength: auth.MinResetPasswordLength,
	}
	if policy.verificationTTL <= 0 {
		policy.verificationTTL = config.DefaultVerificationTokenTTL
	}
	if policy.passwordResetTTL <= 0 {
		policy.passwordResetTTL = config.DefaultPasswordResetTokenTTL
	}
	if policy.maxLoginAttempts <= 0 {
		policy.maxLoginAttempts = config.DefaultMaxLoginAttempts
	}
	if policy.lockoutDuration <= 0 {
		policy.lockoutDuration = config.DefaultLockoutDuration
	}
	if policy.minResetPasswordLength <= 0 {
		policy.minResetPasswordLength = config.DefaultMinResetPasswordLength
	}

	return policy
}

// authService implements the AuthUsecase interface.
type authService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	tokens      service.TokenGenerator
	notifier    service.Notifier
	policy      securityPolicy
	now         func() time.Time
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	AccountRepo    repository.AccountRepository
	Hasher         service.PasswordHasher
	TokenGenerator service.TokenGenerator
	Notifier       service.Notifier
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return newAuthService(params)
}

func newAuthService(params AuthServiceParams) *authService {
	return &authService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		tokens:      params.TokenGenerator,
		notifier:    params.Notifier,
		policy:      newSecurityPolicy(params.Config),
		now:         time.Now,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// notify sends a notification and absorbs any failure.
func (srv *authService) notify(ctx context.Context, account *entity.Account, kind entity.NotificationKind, notificationCtx entity.NotificationContext) {
	if err := srv.notifier.Notify(ctx, account, kind, notificationCtx); err != nil {
		srv.log(ctx).Warn("Failed to send account notification",
			slog.String("kind", string(kind)),
			slog.String("email", util.MaskEmail(account.Email)),
			slog.Any("error", err),
		)
	}
}

// Register creates an unverified account and mails its verification link.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.Account, error) {
	email := util.NormalizeEmail(input.Email)
	if input.Role == "" {
		input.Role = entity.RoleCustomer
	}

	if err := validateRegistration(email, input); err != nil {
		return nil, err
	}

	exists, err := srv.accountRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing account")
	}
	if exists {
		srv.log(ctx).Info("Registration rejected for existing email", slog.String("email", util.MaskEmail(email)))

		return nil, domainerrors.ErrDuplicateAccount
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	token, err := srv.tokens.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification token")
	}

	account := &entity.Account{
		Email:         email,
		PasswordHash:  passwordHash,
		Role:          input.Role,
		FirstName:     strings.TrimSpace(input.FirstName),
		LastName:      strings.TrimSpace(input.LastName),
		PhoneNumber:   strings.TrimSpace(input.PhoneNumber),
		Location:      strings.TrimSpace(input.Location),
		EmailVerified: false,
		Enabled:       false,
		Active:        true,
		LoginAttempts: 0,
	}
	if input.Role.RequiresBusinessInfo() {
		account.BusinessName = strings.TrimSpace(input.BusinessName)
		account.BusinessLicense = strings.TrimSpace(input.BusinessLicense)
		account.BusinessType = strings.TrimSpace(input.BusinessType)
	}
	account.SetToken(token, srv.now().Add(srv.policy.verificationTTL))

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account registered",
		slog.Any("accountID", account.ID),
		slog.String("role", account.Role.String()),
		slog.String("token", util.MaskToken(token)),
	)

	srv.notify(ctx, account, entity.NotificationVerification, entity.NotificationContext{Token: token})

	return account, nil
}

func validateRegistration(email string, input usecase.RegisterInput) error {
	if email == "" {
		return domainerrors.ErrValidationFailed.WithDetails("email is required")
	}
	if input.Password == "" {
		return domainerrors.ErrValidationFailed.WithDetails("password is required")
	}
	if !input.Role.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown role " + input.Role.String())
	}
	if strings.TrimSpace(input.Location) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("location is required")
	}
	if !input.Role.RequiresBusinessInfo() {
		return nil
	}

	var missing []string
	if strings.TrimSpace(input.BusinessName) == "" {
		missing = append(missing, "businessName")
	}
	if strings.TrimSpace(input.BusinessLicense) == "" {
		missing = append(missing, "businessLicense")
	}
	if strings.TrimSpace(input.BusinessType) == "" {
		missing = append(missing, "businessType")
	}
	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("%s required for role %s", strings.Join(missing, ", "), input.Role),
		)
	}

	return nil
}

// Authenticate checks, in order: existence and password, active, lockout, verification.
func (srv *authService) Authenticate(ctx context.Context, email, password string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Debug("Authentication failed: unknown email", slog.String("email", util.MaskEmail(email)))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}

	if !srv.hasher.Check(password, account.PasswordHash) {
		srv.log(ctx).Debug("Authentication failed: password mismatch", slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !account.Active {
		return nil, domainerrors.ErrAccountDeactivated
	}

	now := srv.now()
	if account.IsLocked(now) {
		return nil, domainerrors.NewAccountLockedError(util.CeilMinutes(account.LockoutUntil.Sub(now)))
	}

	if !account.EmailVerified || !account.Enabled {
		return nil, domainerrors.ErrEmailNotVerified
	}

	return account, nil
}

// CheckLockout never reveals whether the email exists.
func (srv *authService) CheckLockout(ctx context.Context, email string) error {
	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to load account")
	}

	now := srv.now()
	if account.IsLocked(now) {
		return domainerrors.NewAccountLockedError(util.CeilMinutes(account.LockoutUntil.Sub(now)))
	}

	return nil
}

// RecordFailedLogin increments the counter atomically in the store and
// notifies the owner when this failure triggers the lockout.
func (srv *authService) RecordFailedLogin(ctx context.Context, email string) (*usecase.FailedLoginOutcome, error) {
	now := srv.now()

	result, err := srv.accountRepo.IncrementLoginAttempts(ctx, email, srv.policy.maxLoginAttempts, now.Add(srv.policy.lockoutDuration), now)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to record failed login")
	}

	outcome := &usecase.FailedLoginOutcome{Attempts: result.Attempts, Locked: result.Locked}
	if !result.Locked {
		srv.log(ctx).Info("Failed login recorded",
			slog.String("email", util.MaskEmail(email)),
			slog.Int("attempts", result.Attempts),
		)

		return outcome, nil
	}

	outcome.LockoutMinutes = util.CeilMinutes(srv.policy.lockoutDuration)
	srv.log(ctx).Warn("Account locked after repeated failed logins",
		slog.String("email", util.MaskEmail(email)),
		slog.Int("attempts", result.Attempts),
		slog.Int("lockoutMinutes", outcome.LockoutMinutes),
	)

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Failed to load locked account for notification", slog.Any("error", err))

		return outcome, nil
	}
	srv.notify(ctx, account, entity.NotificationAccountLocked, entity.NotificationContext{LockoutMinutes: outcome.LockoutMinutes})

	return outcome, nil
}

// RecordSuccessfulLogin stamps lastLoginAt and clears the counter pair.
func (srv *authService) RecordSuccessfulLogin(ctx context.Context, account *entity.Account) error {
	now := srv.now()

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewAccountRepository()

		locked, err := repo.FindByEmailForUpdate(ctx, account.Email)
		if err != nil {
			return errors.Wrap(mapNotFound(err), "failed to lock account")
		}

		locked.LastLoginAt = &now
		locked.ResetLoginAttempts()
		if err := repo.Update(ctx, locked); err != nil {
			return errors.Wrap(err, "failed to record successful login")
		}

		*account = *locked

		return nil
	})
}

// Login runs lockout check, authentication and counter bookkeeping.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := util.NormalizeEmail(input.Email)

	if err := srv.CheckLockout(ctx, email); err != nil {
		return nil, err
	}

	account, err := srv.Authenticate(ctx, email, input.Password)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrInvalidCredentials) {
			return nil, err
		}

		outcome, recordErr := srv.RecordFailedLogin(ctx, email)
		if recordErr != nil {
			return nil, recordErr
		}
		if outcome != nil && outcome.Locked {
			return nil, domainerrors.NewAccountLockedError(outcome.LockoutMinutes)
		}

		return nil, err
	}

	if err := srv.RecordSuccessfulLogin(ctx, account); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("accountID", account.ID), slog.String("role", account.Role.String()))

	return &usecase.LoginOutput{
		Account:      account,
		Presentation: usecase.PresentationFor(account),
	}, nil
}

// VerifyEmail consumes a verification token. An account that is already
// verified returns true untouched.
func (srv *authService) VerifyEmail(ctx context.Context, token string) (bool, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return false, domainerrors.ErrInvalidToken
	}

	var verified *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewAccountRepository()

		account, err := srv.lockAccountByToken(ctx, repo, token)
		if err != nil {
			return err
		}

		if account.EmailVerified {
			return nil
		}

		if account.TokenExpired(srv.now()) {
			return domainerrors.NewTokenExpiredError(domainerrors.TokenTypeVerification, *account.TokenExpiresAt)
		}

		account.EmailVerified = true
		account.Enabled = true
		account.ClearToken()
		if err := repo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to mark email verified")
		}
		verified = account

		return nil
	})
	if err != nil {
		return false, err
	}

	if verified != nil {
		srv.log(ctx).Info("Email verified", slog.Any("accountID", verified.ID))
		srv.notify(ctx, verified, entity.NotificationWelcome, entity.NotificationContext{})
	}

	return true, nil
}

// lockAccountByToken resolves a token to its account and re-reads the row
// under lock, failing with InvalidToken if the slot changed in between.
func (srv *authService) lockAccountByToken(ctx context.Context, repo repository.AccountRepository, token string) (*entity.Account, error) {
	account, err := repo.FindByToken(ctx, token)
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Info("Unknown token presented", slog.String("token", util.MaskToken(token)))

		return nil, domainerrors.ErrInvalidToken
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account by token")
	}

	locked, err := repo.FindByEmailForUpdate(ctx, account.Email)
	if err != nil {
		return nil, errors.Wrap(mapNotFound(err), "failed to lock account")
	}
	if locked.VerificationToken == nil || *locked.VerificationToken != token {
		return nil, domainerrors.ErrInvalidToken
	}

	return locked, nil
}

// ResendVerification replaces the token slot; the previous link stops working at once.
func (srv *authService) ResendVerification(ctx context.Context, email string) error {
	var (
		account *entity.Account
		token   string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewAccountRepository()

		var err error
		account, err = repo.FindByEmailForUpdate(ctx, email)
		if err != nil {
			return errors.Wrap(mapNotFound(err), "failed to lock account")
		}

		if !account.Active {
			return domainerrors.ErrAccountDeactivated
		}
		if account.EmailVerified {
			return domainerrors.ErrAlreadyVerified
		}

		token, err = srv.tokens.Generate()
		if err != nil {
			return errors.Wrap(err, "failed to generate verification token")
		}

		account.SetToken(token, srv.now().Add(srv.policy.verificationTTL))
		if err := repo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to store verification token")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Verification token reissued", slog.Any("accountID", account.ID), slog.String("token", util.MaskToken(token)))
	srv.notify(ctx, account, entity.NotificationVerification, entity.NotificationContext{Token: token})

	return nil
}

// InitiatePasswordReset returns nil for unknown or inactive accounts, and
// swallows every failure that happens after the account was found.
func (srv *authService) InitiatePasswordReset(ctx context.Context, email string) error {
	var (
		account *entity.Account
		token   string
		found   bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewAccountRepository()

		var err error
		account, err = repo.FindByEmailForUpdate(ctx, email)
		if err != nil {
			return err
		}
		if !account.Active {
			return nil
		}
		found = true

		token, err = srv.tokens.Generate()
		if err != nil {
			return errors.Wrap(err, "failed to generate reset token")
		}

		// Shares the slot with email verification; an in-flight verification link is invalidated.
		account.SetToken(token, srv.now().Add(srv.policy.passwordResetTTL))

		return repo.Update(ctx, account)
	})

	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		srv.log(ctx).Debug("Password reset requested for unknown email", slog.String("email", util.MaskEmail(email)))

		return nil
	case err != nil && !found:
		return errors.Wrap(err, "failed to load account for password reset")
	case err != nil:
		srv.log(ctx).Error("Password reset initiation failed", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil
	case !found:
		srv.log(ctx).Debug("Password reset requested for inactive account", slog.Any("accountID", account.ID))

		return nil
	}

	srv.log(ctx).Info("Password reset token issued", slog.Any("accountID", account.ID), slog.String("token", util.MaskToken(token)))
	srv.notify(ctx, account, entity.NotificationPasswordReset, entity.NotificationContext{Token: token})

	return nil
}

// CompletePasswordReset replaces the password hash for a valid reset token.
func (srv *authService) CompletePasswordReset(ctx context.Context, token, newPassword string) (bool, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return false, domainerrors.ErrInvalidToken
	}
	if utf8.RuneCountInString(newPassword) < srv.policy.minResetPasswordLength {
		return false, domainerrors.ErrWeakPassword.WithDetails(
			fmt.Sprintf("password must be at least %d characters", srv.policy.minResetPasswordLength),
		)
	}

	// Unknown and expired tokens are turned away before paying for bcrypt.
	now := srv.now()
	if _, err := srv.accountRepo.FindByValidToken(ctx, token, now); err != nil {
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return false, errors.Wrap(err, "failed to find account by token")
		}

		return false, srv.classifyUnusableToken(ctx, srv.accountRepo, token, now)
	}

	passwordHash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during reset", slog.Any("error", err))

		return false, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var accountID any
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewAccountRepository()
		now := srv.now()

		account, err := srv.lockAccountByToken(ctx, repo, token)
		if err != nil {
			return err
		}
		if account.TokenExpired(now) {
			return domainerrors.NewTokenExpiredError(domainerrors.TokenTypePasswordReset, *account.TokenExpiresAt)
		}

		account.PasswordHash = passwordHash
		account.ClearToken()
		if err := repo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to store new password")
		}
		accountID = account.ID

		return nil
	})
	if err != nil {
		return false, err
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("accountID", accountID))

	return true, nil
}

// classifyUnusableToken tells an expired token apart from an unknown one.
func (srv *authService) classifyUnusableToken(ctx context.Context, repo repository.AccountRepository, token string, now time.Time) error {
	account, err := repo.FindByToken(ctx, token)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.ErrInvalidToken
	}
	if err != nil {
		return errors.Wrap(err, "failed to find account by token")
	}

	if account.TokenExpiresAt != nil && account.TokenExpired(now) {
		return domainerrors.NewTokenExpiredError(domainerrors.TokenTypePasswordReset, *account.TokenExpiresAt)
	}

	return domainerrors.ErrInvalidToken
}

// Deactivate soft-disables an account.
func (srv *authService) Deactivate(ctx context.Context, email string) error {
	return srv.updateAccount(ctx, email, "deactivate", func(account *entity.Account) {
		account.Active = false
		account.Enabled = false
	})
}

// Reactivate re-enables an account; it can log in again only if its email is verified.
func (srv *authService) Reactivate(ctx context.Context, email string) error {
	return srv.updateAccount(ctx, email, "reactivate", func(account *entity.Account) {
		account.Active = true
		account.Enabled = account.EmailVerified
	})
}

func (srv *authService) updateAccount(ctx context.Context, email, action string, mutate func(*entity.Account)) error {
	var accountID any
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewAccountRepository()

		account, err := repo.FindByEmailForUpdate(ctx, email)
		if err != nil {
			return errors.Wrap(mapNotFound(err), "failed to lock account")
		}

		mutate(account)
		if err := repo.Update(ctx, account); err != nil {
			return errors.Wrapf(err, "failed to %s account", action)
		}
		accountID = account.ID

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Account status changed", slog.String("action", action), slog.Any("accountID", accountID))

	return nil
}

// mapNotFound turns the repository sentinel into the domain error callers see.
func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.ErrAccountNotFound
	}

	return err
}
