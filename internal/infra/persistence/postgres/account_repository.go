package postgres

import (
	"context"
	"time"

	"rentauth/internal/domain/entity"
	domainerrors "rentauth/internal/domain/errors"
	"rentauth/internal/domain/repository"
	"rentauth/internal/errors"
	"rentauth/internal/infra/persistence/model"
	"rentauth/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// accountRepository implements repository.AccountRepository using GORM.
// Credential reads and all writes go to the primary; reporting queries are
// left to dbresolver and land on a replica when one is configured.
type accountRepository struct {
	db   *gorm.DB
	inTx bool
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (repo *accountRepository) primary(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Write)
}

func (repo *accountRepository) reporting(ctx context.Context) *gorm.DB {
	if repo.inTx {
		return repo.db.WithContext(ctx)
	}

	return repo.db.WithContext(ctx).Clauses(dbresolver.Read)
}

func (repo *accountRepository) first(query *gorm.DB, op string) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := query.First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewStorageError(err, op)
	}

	return toAccountDomain(&accountM), nil
}

func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.first(repo.primary(ctx).Where("id = ?", id), "failed to find account by id")
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.first(repo.primary(ctx).Where("email = ?", util.NormalizeEmail(email)), "failed to find account by email")
}

func (repo *accountRepository) FindByEmailForUpdate(ctx context.Context, email string) (*entity.Account, error) {
	query := repo.primary(ctx).Where("email = ?", util.NormalizeEmail(email))
	if repo.inTx {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	return repo.first(query, "failed to lock account by email")
}

func (repo *accountRepository) FindByToken(ctx context.Context, token string) (*entity.Account, error) {
	return repo.first(repo.primary(ctx).Where("verification_token = ?", token), "failed to find account by token")
}

func (repo *accountRepository) FindByValidToken(ctx context.Context, token string, now time.Time) (*entity.Account, error) {
	query := repo.primary(ctx).Where("verification_token = ? AND token_expires_at >= ?", token, now)

	return repo.first(query, "failed to find account by valid token")
}

func (repo *accountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := repo.primary(ctx).Model(&model.AccountModel{}).
		Where("email = ?", util.NormalizeEmail(email)).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewStorageError(err, "failed to check email existence")
	}

	return count > 0, nil
}

// Create persists a new account. A missing ID is assigned a time-ordered UUID.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate account id")
		}
		account.ID = id
	}

	accountM := fromAccountDomain(account)
	if err := repo.primary(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateAccount.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required account information")
		}

		return domainerrors.NewStorageError(err, "failed to create account")
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update writes every column of the account, zero values included.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	result := repo.primary(ctx).Model(accountM).Select("*").Omit("id", "created_at").Updates(accountM)
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateAccount.WrapMessage("email already exists")
		}

		return domainerrors.NewStorageError(err, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

func (repo *accountRepository) ClearToken(ctx context.Context, id uuid.UUID) error {
	result := repo.primary(ctx).Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"verification_token": nil,
			"token_expires_at":   nil,
		})
	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to clear token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// IncrementLoginAttempts runs a single
//
//	UPDATE users SET login_attempts = login_attempts + 1,
//	  lockout_until = CASE WHEN login_attempts + 1 >= threshold THEN lockoutUntil ELSE lockout_until END
//	WHERE email = ? RETURNING login_attempts, lockout_until
//
// so concurrent failures can never lose an increment.
func (repo *accountRepository) IncrementLoginAttempts(
	ctx context.Context,
	email string,
	threshold int,
	lockoutUntil, now time.Time,
) (*repository.LoginAttemptResult, error) {
	var rows []model.AccountModel
	result := incrementLoginAttempts(repo.primary(ctx), &rows, email, threshold, lockoutUntil, now)
	if result.Error != nil {
		return nil, domainerrors.NewStorageError(result.Error, "failed to increment login attempts")
	}
	if result.RowsAffected == 0 || len(rows) == 0 {
		return nil, repository.ErrAccountNotFound
	}

	row := rows[0]

	return &repository.LoginAttemptResult{
		Attempts:     row.LoginAttempts,
		LockoutUntil: row.LockoutUntil,
		Locked:       row.LoginAttempts >= threshold && row.LockoutUntil != nil,
	}, nil
}

func incrementLoginAttempts(
	db *gorm.DB,
	rows *[]model.AccountModel,
	email string,
	threshold int,
	lockoutUntil, now time.Time,
) *gorm.DB {
	return db.Model(rows).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "login_attempts"}, {Name: "lockout_until"}}}).
		Where("email = ?", util.NormalizeEmail(email)).
		UpdateColumns(map[string]any{
			"login_attempts": gorm.Expr("login_attempts + 1"),
			"lockout_until": gorm.Expr(
				"CASE WHEN login_attempts + 1 >= ? THEN CAST(? AS timestamptz) ELSE lockout_until END",
				threshold, lockoutUntil,
			),
			"updated_at": now,
		})
}

func (repo *accountRepository) ResetLoginAttempts(ctx context.Context, id uuid.UUID) error {
	result := repo.primary(ctx).Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"login_attempts": 0,
			"lockout_until":  nil,
		})
	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to reset login attempts")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// ClearExpiredTokens is idempotent: a second run finds nothing left to clear.
func (repo *accountRepository) ClearExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	result := repo.primary(ctx).Model(&model.AccountModel{}).
		Where("verification_token IS NOT NULL AND token_expires_at < ?", now).
		Updates(map[string]any{
			"verification_token": nil,
			"token_expires_at":   nil,
		})
	if result.Error != nil {
		return 0, domainerrors.NewStorageError(result.Error, "failed to clear expired tokens")
	}

	return result.RowsAffected, nil
}

func (repo *accountRepository) CountAccounts(ctx context.Context) (*entity.AccountCounts, error) {
	var counts entity.AccountCounts
	err := repo.reporting(ctx).Model(&model.AccountModel{}).
		Select(
			"COUNT(*) AS total, " +
				"COUNT(*) FILTER (WHERE active) AS active, " +
				"COUNT(*) FILTER (WHERE email_verified) AS verified, " +
				"COUNT(*) FILTER (WHERE NOT email_verified) AS unverified",
		).
		Scan(&counts).Error
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to count accounts")
	}

	return &counts, nil
}

func (repo *accountRepository) CountByRole(ctx context.Context) ([]entity.RoleCount, error) {
	var rows []model.RoleCountRow
	err := repo.reporting(ctx).Model(&model.AccountModel{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Order("role").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to count accounts by role")
	}

	counts := make([]entity.RoleCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, entity.RoleCount{Role: entity.Role(row.Role), Count: row.Count})
	}

	return counts, nil
}

func (repo *accountRepository) ListByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error) {
	return repo.list(repo.reporting(ctx).Where("role = ?", role.String()), "failed to list accounts by role")
}

func (repo *accountRepository) ListActiveByRolesInLocation(ctx context.Context, roles []entity.Role, location string) ([]*entity.Account, error) {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.String())
	}

	query := repo.reporting(ctx).
		Where("role IN ? AND active = ? AND LOWER(location) = LOWER(?)", names, true, location)

	return repo.list(query, "failed to list accounts in location")
}

func (repo *accountRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]*entity.Account, error) {
	return repo.list(repo.reporting(ctx).Where("created_at >= ?", since), "failed to list recent accounts")
}

func (repo *accountRepository) ListByEmailDomain(ctx context.Context, domain string) ([]*entity.Account, error) {
	query := repo.reporting(ctx).Where("email LIKE ?", "%@"+util.NormalizeEmail(domain))

	return repo.list(query, "failed to list accounts by email domain")
}

func (repo *accountRepository) list(query *gorm.DB, op string) ([]*entity.Account, error) {
	var accountMs []model.AccountModel
	if err := query.Order("created_at DESC").Find(&accountMs).Error; err != nil {
		return nil, domainerrors.NewStorageError(err, op)
	}

	accounts := make([]*entity.Account, 0, len(accountMs))
	for i := range accountMs {
		accounts = append(accounts, toAccountDomain(&accountMs[i]))
	}

	return accounts, nil
}

// --- Mapper Functions ---

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:                data.ID,
		Email:             data.Email,
		PasswordHash:      data.PasswordHash,
		Role:              entity.Role(data.Role),
		FirstName:         data.FirstName,
		LastName:          data.LastName,
		PhoneNumber:       data.PhoneNumber,
		Location:          data.Location,
		BusinessName:      data.BusinessName,
		BusinessLicense:   data.BusinessLicense,
		BusinessType:      data.BusinessType,
		EmailVerified:     data.EmailVerified,
		Enabled:           data.Enabled,
		Active:            data.Active,
		VerificationToken: data.VerificationToken,
		TokenExpiresAt:    data.TokenExpiresAt,
		LoginAttempts:     data.LoginAttempts,
		LockoutUntil:      data.LockoutUntil,
		LastLoginAt:       data.LastLoginAt,
		TotalRentals:      data.TotalRentals,
		AverageRating:     data.AverageRating,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:                data.ID,
		Email:             util.NormalizeEmail(data.Email),
		PasswordHash:      data.PasswordHash,
		Role:              data.Role.String(),
		FirstName:         data.FirstName,
		LastName:          data.LastName,
		PhoneNumber:       data.PhoneNumber,
		Location:          data.Location,
		BusinessName:      data.BusinessName,
		BusinessLicense:   data.BusinessLicense,
		BusinessType:      data.BusinessType,
		EmailVerified:     data.EmailVerified,
		Enabled:           data.Enabled,
		Active:            data.Active,
		VerificationToken: data.VerificationToken,
		TokenExpiresAt:    data.TokenExpiresAt,
		LoginAttempts:     data.LoginAttempts,
		LockoutUntil:      data.LockoutUntil,
		LastLoginAt:       data.LastLoginAt,
		TotalRentals:      data.TotalRentals,
		AverageRating:     data.AverageRating,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
