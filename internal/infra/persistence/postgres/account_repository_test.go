package postgres

import (
	"strings"
	"testing"
	"time"

	"rentauth/internal/domain/entity"
	"rentauth/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB builds statements with the postgres dialect without connecting.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=rentauth dbname=rentauth sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	return db
}

func TestAccountMapper_RoundTripKeepsSecurityState(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	lockout := now.Add(15 * time.Minute)
	account := &entity.Account{
		ID:            uuid.New(),
		Email:         "Owner@Example.com",
		PasswordHash:  "$2a$12$hash",
		Role:          entity.RoleOwner,
		FirstName:     "Olga",
		LastName:      "Owner",
		Location:      "Lisbon",
		BusinessName:  "Olga Tools",
		BusinessType:  "TOOLS",
		LoginAttempts: 5,
		LockoutUntil:  &lockout,
		Active:        true,
	}
	account.SetToken("0123456789abcdef0123456789abcdef", now.Add(24*time.Hour))

	accountM := fromAccountDomain(account)
	assert.Equal(t, "owner@example.com", accountM.Email, "email is stored lower-cased")
	assert.Equal(t, "OWNER", accountM.Role)

	back := toAccountDomain(accountM)
	require.NotNil(t, back)
	assert.Equal(t, account.ID, back.ID)
	assert.Equal(t, entity.RoleOwner, back.Role)
	assert.Equal(t, 5, back.LoginAttempts)
	assert.Equal(t, lockout, *back.LockoutUntil)
	assert.Equal(t, *account.VerificationToken, *back.VerificationToken)
	assert.Equal(t, *account.TokenExpiresAt, *back.TokenExpiresAt)
	assert.True(t, back.Active)
	assert.False(t, back.Enabled)
}

func TestAccountMapper_Nil(t *testing.T) {
	assert.Nil(t, toAccountDomain(nil))
	assert.Nil(t, fromAccountDomain(nil))
}

func TestConstraintErrors(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))

	assert.True(t, isNotNullConstraintViolation(errors.New(`ERROR: null value in column "location" violates not-null constraint (SQLSTATE 23502)`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("connection refused")))
}

func TestIncrementLoginAttempts_SingleAtomicStatement(t *testing.T) {
	db := newDryRunDB(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	lockoutUntil := now.Add(15 * time.Minute)

	var rows []model.AccountModel
	result := incrementLoginAttempts(db, &rows, " B@X.com ", 5, lockoutUntil, now)
	require.NoError(t, result.Error)

	sql := result.Statement.SQL.String()
	assert.True(t, strings.HasPrefix(sql, `UPDATE "users" SET `), sql)
	assert.Contains(t, sql, `"login_attempts"=login_attempts + 1`)
	assert.Contains(t, sql, `"lockout_until"=CASE WHEN login_attempts + 1 >= $`)
	assert.Contains(t, sql, `THEN CAST($`)
	assert.Contains(t, sql, `ELSE lockout_until END`)
	assert.Contains(t, sql, `WHERE email = $`)
	assert.True(t, strings.HasSuffix(sql, `RETURNING "login_attempts","lockout_until"`), sql)
	assert.Equal(t, 1, strings.Count(sql, "UPDATE"))

	vars := result.Statement.Vars
	assert.Contains(t, vars, 5)
	assert.Contains(t, vars, lockoutUntil)
	assert.Contains(t, vars, now)
	assert.Contains(t, vars, "b@x.com")
	assert.Empty(t, rows)
}
