package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"rentauth/internal/domain/entity"
	domainerrors "rentauth/internal/domain/errors"
	"rentauth/internal/domain/repository"
	"rentauth/internal/domain/service"
	"rentauth/internal/infra/auth"
	mockSvc "rentauth/internal/mocks/service"
	"rentauth/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPassword = "Str0ng!Pass"

type authServiceFixture struct {
	service  *authService
	store    *memoryStore
	clock    *testClock
	notifier *mockSvc.MockNotifier
}

func createTestAuthService(t *testing.T) authServiceFixture {
	t.Helper()

	return newAuthServiceFixture(t, fakeHasher{}, &sequenceTokens{})
}

func newAuthServiceFixture(t *testing.T, hasher service.PasswordHasher, tokens service.TokenGenerator) authServiceFixture {
	t.Helper()

	clock := newTestClock()
	store := newMemoryStore(clock)
	notifier := mockSvc.NewMockNotifier(t)

	srv := newAuthService(AuthServiceParams{
		TxManager:      store,
		AccountRepo:    store,
		Hasher:         hasher,
		TokenGenerator: tokens,
		Notifier:       notifier,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})
	srv.now = clock.Now

	return authServiceFixture{service: srv, store: store, clock: clock, notifier: notifier}
}

func customerInput(email string) usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:     email,
		Password:  testPassword,
		FirstName: "Ana",
		LastName:  "Lopez",
		Location:  "Madrid",
	}
}

// captureToken records the token handed to the notifier for a kind.
func (f authServiceFixture) captureToken(kind entity.NotificationKind) *string {
	var token string
	f.notifier.EXPECT().
		Notify(mock.Anything, mock.Anything, kind, mock.Anything).
		Run(func(_ context.Context, _ *entity.Account, _ entity.NotificationKind, notificationCtx entity.NotificationContext) {
			token = notificationCtx.Token
		}).
		Return(nil).
		Once()

	return &token
}

// registerVerified registers an account and verifies it.
func (f authServiceFixture) registerVerified(t *testing.T, email string) *entity.Account {
	t.Helper()

	token := f.captureToken(entity.NotificationVerification)
	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything, entity.NotificationWelcome, mock.Anything).Return(nil).Once()

	ctx := context.Background()
	_, err := f.service.Register(ctx, customerInput(email))
	require.NoError(t, err)

	ok, err := f.service.VerifyEmail(ctx, *token)
	require.NoError(t, err)
	require.True(t, ok)

	return f.store.get(email)
}

func TestAuthService_Register_DefaultsToUnverifiedCustomer(t *testing.T) {
	f := createTestAuthService(t)
	token := f.captureToken(entity.NotificationVerification)

	account, err := f.service.Register(context.Background(), customerInput("  Ana@Example.COM "))
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", account.Email)
	assert.Equal(t, entity.RoleCustomer, account.Role)
	assert.False(t, account.EmailVerified)
	assert.False(t, account.Enabled)
	assert.True(t, account.Active)
	assert.Equal(t, 0, account.LoginAttempts)
	require.NotNil(t, account.VerificationToken)
	assert.Equal(t, *token, *account.VerificationToken)
	require.NotNil(t, account.TokenExpiresAt)
	assert.Equal(t, f.clock.Now().Add(24*time.Hour), *account.TokenExpiresAt)
	assert.Equal(t, "hashed:"+testPassword, account.PasswordHash)

	stored := f.store.get("ana@example.com")
	require.NotNil(t, stored)
	assert.Equal(t, account.ID, stored.ID)
}

func TestAuthService_Register_DuplicateEmailIgnoresCase(t *testing.T) {
	f := createTestAuthService(t)
	f.captureToken(entity.NotificationVerification)

	ctx := context.Background()
	_, err := f.service.Register(ctx, customerInput("ana@example.com"))
	require.NoError(t, err)

	_, err = f.service.Register(ctx, customerInput("ANA@Example.com"))
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateAccount)
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.RegisterInput)
	}{
		{name: "missing email", mutate: func(in *usecase.RegisterInput) { in.Email = "  " }},
		{name: "missing password", mutate: func(in *usecase.RegisterInput) { in.Password = "" }},
		{name: "unknown role", mutate: func(in *usecase.RegisterInput) { in.Role = "LANDLORD" }},
		{name: "missing location", mutate: func(in *usecase.RegisterInput) { in.Location = "" }},
		{name: "owner without business info", mutate: func(in *usecase.RegisterInput) { in.Role = entity.RoleOwner }},
		{
			name: "business without license",
			mutate: func(in *usecase.RegisterInput) {
				in.Role = entity.RoleBusiness
				in.BusinessName = "Rent Co"
				in.BusinessType = "Agency"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAuthService(t)

			input := customerInput("ana@example.com")
			tt.mutate(&input)

			account, err := f.service.Register(context.Background(), input)
			assert.Nil(t, account)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Nil(t, f.store.get("ana@example.com"))
		})
	}
}

func TestAuthService_Register_BusinessFieldsOnlyForBusinessRoles(t *testing.T) {
	f := createTestAuthService(t)
	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything, entity.NotificationVerification, mock.Anything).Return(nil).Times(2)

	ctx := context.Background()

	owner := customerInput("owner@example.com")
	owner.Role = entity.RoleOwner
	owner.BusinessName = "Flats SL"
	owner.BusinessLicense = "LIC-1"
	owner.BusinessType = "Apartments"
	account, err := f.service.Register(ctx, owner)
	require.NoError(t, err)
	assert.True(t, account.HasBusinessInfo())

	customer := customerInput("customer@example.com")
	customer.BusinessName = "Ignored"
	account, err = f.service.Register(ctx, customer)
	require.NoError(t, err)
	assert.Empty(t, account.BusinessName)
}

func TestAuthService_Register_NotifierFailureIsAbsorbed(t *testing.T) {
	f := createTestAuthService(t)
	f.notifier.EXPECT().
		Notify(mock.Anything, mock.Anything, entity.NotificationVerification, mock.Anything).
		Return(errors.New("smtp down"))

	account, err := f.service.Register(context.Background(), customerInput("ana@example.com"))
	require.NoError(t, err)
	assert.NotNil(t, account)
	assert.NotNil(t, f.store.get("ana@example.com"))
}

func TestAuthService_Register_TokenGenerationFailure(t *testing.T) {
	tokens := mockSvc.NewMockTokenGenerator(t)
	tokens.EXPECT().Generate().Return("", errors.New("entropy source unavailable")).Once()
	f := newAuthServiceFixture(t, fakeHasher{}, tokens)

	account, err := f.service.Register(context.Background(), customerInput("ana@example.com"))
	require.Error(t, err)
	assert.Nil(t, account)
	assert.Contains(t, err.Error(), "failed to generate verification token")
	assert.Nil(t, f.store.get("ana@example.com"))
}

func TestAuthService_LongPasswordsRegisterAndReset(t *testing.T) {
	f := newAuthServiceFixture(t, auth.NewBcryptHasher(newTestConfig()), &sequenceTokens{})
	ctx := context.Background()
	original := strings.Repeat("Aa1!", 20)
	replacement := strings.Repeat("Bb2?", 20)

	verifyToken := f.captureToken(entity.NotificationVerification)
	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything, entity.NotificationWelcome, mock.Anything).Return(nil).Once()

	input := customerInput("ana@example.com")
	input.Password = original
	_, err := f.service.Register(ctx, input)
	require.NoError(t, err)

	ok, err := f.service.VerifyEmail(ctx, *verifyToken)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = f.service.Authenticate(ctx, "ana@example.com", original)
	require.NoError(t, err)

	resetToken := f.captureToken(entity.NotificationPasswordReset)
	require.NoError(t, f.service.InitiatePasswordReset(ctx, "ana@example.com"))

	ok, err = f.service.CompletePasswordReset(ctx, *resetToken, replacement)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = f.service.Authenticate(ctx, "ana@example.com", replacement)
	assert.NoError(t, err)
	_, err = f.service.Authenticate(ctx, "ana@example.com", original)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_VerifyEmail_ThenLoginSucceeds(t *testing.T) {
	f := createTestAuthService(t)
	account := f.registerVerified(t, "ana@example.com")

	assert.True(t, account.EmailVerified)
	assert.True(t, account.Enabled)
	assert.Nil(t, account.VerificationToken)
	assert.Nil(t, account.TokenExpiresAt)

	output, err := f.service.Login(context.Background(), usecase.LoginInput{Email: "ANA@example.com", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, "/customer-dashboard", output.Presentation.RedirectPath)
	assert.False(t, output.Presentation.IsBusinessUser)
	require.NotNil(t, output.Account.LastLoginAt)
	assert.Equal(t, f.clock.Now(), *output.Account.LastLoginAt)
}

func TestAuthService_VerifyEmail_ExpiredToken(t *testing.T) {
	f := createTestAuthService(t)
	token := f.captureToken(entity.NotificationVerification)

	ctx := context.Background()
	_, err := f.service.Register(ctx, customerInput("ana@example.com"))
	require.NoError(t, err)

	f.clock.Advance(25 * time.Hour)

	ok, err := f.service.VerifyEmail(ctx, *token)
	assert.False(t, ok)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)

	var expired *domainerrors.TokenExpiredError
	require.ErrorAs(t, err, &expired)
	assert.Equal(t, domainerrors.TokenTypeVerification, expired.TokenType)

	stored := f.store.get("ana@example.com")
	assert.False(t, stored.EmailVerified)
	assert.False(t, stored.Enabled)

	_, err = f.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: testPassword})
	assert.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)
}

func TestAuthService_VerifyEmail_UnknownOrEmptyToken(t *testing.T) {
	f := createTestAuthService(t)

	for _, token := range []string{"", "   ", "deadbeef"} {
		ok, err := f.service.VerifyEmail(context.Background(), token)
		assert.False(t, ok)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	}
}

func TestAuthService_VerifyEmail_ConsumedTokenIsInvalid(t *testing.T) {
	f := createTestAuthService(t)
	token := f.captureToken(entity.NotificationVerification)
	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything, entity.NotificationWelcome, mock.Anything).Return(nil).Once()

	ctx := context.Background()
	_, err := f.service.Register(ctx, customerInput("ana@example.com"))
	require.NoError(t, err)

	ok, err := f.service.VerifyEmail(ctx, *token)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = f.service.VerifyEmail(ctx, *token)
	assert.False(t, ok)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_VerifyEmail_AlreadyVerifiedIsUnchanged(t *testing.T) {
	f := createTestAuthService(t)
	f.registerVerified(t, "ana@example.com")

	// A verified account whose slot holds a reset token.
	resetToken := f.captureToken(entity.NotificationPasswordReset)
	require.NoError(t, f.service.InitiatePasswordReset(context.Background(), "ana@example.com"))
	before := f.store.get("ana@example.com")

	ok, err := f.service.VerifyEmail(context.Background(), *resetToken)
	require.NoError(t, err)
	assert.True(t, ok)

	after := f.store.get("ana@example.com")
	assert.Equal(t, before.VerificationToken, after.VerificationToken)
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
}

func TestAuthService_ResendVerification_ReplacesToken(t *testing.T) {
	f := createTestAuthService(t)
	first := f.captureToken(entity.NotificationVerification)

	ctx := context.Background()
	_, err := f.service.Register(ctx, customerInput("ana@example.com"))
	require.NoError(t, err)

	second := f.captureToken(entity.NotificationVerification)
	require.NoError(t, f.service.ResendVerification(ctx, "ana@example.com"))
	assert.NotEqual(t, *first, *second)

	ok, err := f.service.VerifyEmail(ctx, *first)
	assert.False(t, ok)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything, entity.NotificationWelcome, mock.Anything).Return(nil).Once()
	ok, err = f.service.VerifyEmail(ctx, *second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthService_ResendVerification_Errors(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	err := f.service.ResendVerification(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)

	f.registerVerified(t, "ana@example.com")
	err = f.service.ResendVerification(ctx, "ana@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyVerified)

	f.store.put(&entity.Account{Email: "gone@example.com", Active: false})
	err = f.service.ResendVerification(ctx, "gone@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrAccountDeactivated)
}

func TestAuthService_Login_FourFailuresDoNotLock(t *testing.T) {
	f := createTestAuthService(t)
	f.registerVerified(t, "ana@example.com")
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := f.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}

	stored := f.store.get("ana@example.com")
	assert.Equal(t, 4, stored.LoginAttempts)
	assert.Nil(t, stored.LockoutUntil)

	output, err := f.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, 0, output.Account.LoginAttempts)

	stored = f.store.get("ana@example.com")
	assert.Equal(t, 0, stored.LoginAttempts)
	assert.Nil(t, stored.LockoutUntil)
}

func TestAuthService_Login_FifthFailureLocks(t *testing.T) {
	f := createTestAuthService(t)
	f.registerVerified(t, "ana@example.com")
	ctx := context.Background()

	var lockedNotice entity.NotificationContext
	f.notifier.EXPECT().
		Notify(mock.Anything, mock.Anything, entity.NotificationAccountLocked, mock.Anything).
		Run(func(_ context.Context, _ *entity.Account, _ entity.NotificationKind, notificationCtx entity.NotificationContext) {
			lockedNotice = notificationCtx
		}).
		Return(nil).
		Once()

	var err error
	for i := 0; i < 5; i++ {
		_, err = f.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: "wrong"})
	}

	var locked *domainerrors.AccountLockedError
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, 15, locked.RemainingMinutes)
	assert.Equal(t, 15, lockedNotice.LockoutMinutes)

	stored := f.store.get("ana@example.com")
	assert.Equal(t, 5, stored.LoginAttempts)
	require.NotNil(t, stored.LockoutUntil)
	assert.Equal(t, f.clock.Now().Add(15*time.Minute), *stored.LockoutUntil)

	// The correct password is refused while locked.
	f.clock.Advance(time.Minute)
	_, err = f.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: testPassword})
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, 14, locked.RemainingMinutes)

	// After expiry the account logs in and the counters reset.
	f.clock.Advance(15 * time.Minute)
	output, err := f.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, 0, output.Account.LoginAttempts)
	assert.Nil(t, output.Account.LockoutUntil)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	f := createTestAuthService(t)

	_, err := f.service.Login(context.Background(), usecase.LoginInput{Email: "nobody@example.com", Password: testPassword})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Authenticate_CheckOrder(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	until := f.clock.Now().Add(10 * time.Minute)

	f.store.put(&entity.Account{
		Email: "inactive-locked@example.com", PasswordHash: "hashed:" + testPassword,
		Active: false, LockoutUntil: &until,
	})
	f.store.put(&entity.Account{
		Email: "locked-unverified@example.com", PasswordHash: "hashed:" + testPassword,
		Active: true, LockoutUntil: &until,
	})
	f.store.put(&entity.Account{
		Email: "unverified@example.com", PasswordHash: "hashed:" + testPassword,
		Active: true,
	})

	_, err := f.service.Authenticate(ctx, "inactive-locked@example.com", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = f.service.Authenticate(ctx, "inactive-locked@example.com", testPassword)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDeactivated)

	_, err = f.service.Authenticate(ctx, "locked-unverified@example.com", testPassword)
	assert.ErrorIs(t, err, domainerrors.ErrAccountLocked)

	_, err = f.service.Authenticate(ctx, "unverified@example.com", testPassword)
	assert.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)
}

func TestAuthService_Authenticate_HasNoSideEffects(t *testing.T) {
	f := createTestAuthService(t)
	f.registerVerified(t, "ana@example.com")
	before := f.store.get("ana@example.com")

	_, err := f.service.Authenticate(context.Background(), "ana@example.com", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	_, err = f.service.Authenticate(context.Background(), "ana@example.com", testPassword)
	require.NoError(t, err)

	assert.Equal(t, before, f.store.get("ana@example.com"))
}

func TestAuthService_CheckLockout(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	assert.NoError(t, f.service.CheckLockout(ctx, "nobody@example.com"))

	until := f.clock.Now().Add(90 * time.Second)
	f.store.put(&entity.Account{Email: "ana@example.com", Active: true, LockoutUntil: &until})

	err := f.service.CheckLockout(ctx, "ana@example.com")
	var locked *domainerrors.AccountLockedError
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, 2, locked.RemainingMinutes)

	f.clock.Advance(2 * time.Minute)
	assert.NoError(t, f.service.CheckLockout(ctx, "ana@example.com"))
}

func TestAuthService_RecordFailedLogin_LocksAtThreshold(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	f.store.put(&entity.Account{
		Email: "b@x.com", PasswordHash: "hashed:" + testPassword,
		Active: true, EmailVerified: true, Enabled: true,
	})

	for i := 1; i <= 4; i++ {
		outcome, err := f.service.RecordFailedLogin(ctx, "b@x.com")
		require.NoError(t, err)
		require.NotNil(t, outcome)
		assert.Equal(t, i, outcome.Attempts)
		assert.False(t, outcome.Locked)
	}
	assert.NoError(t, f.service.CheckLockout(ctx, "b@x.com"))

	f.notifier.EXPECT().
		Notify(mock.Anything, mock.Anything, entity.NotificationAccountLocked, entity.NotificationContext{LockoutMinutes: 15}).
		Return(nil).
		Once()

	outcome, err := f.service.RecordFailedLogin(ctx, "b@x.com")
	require.NoError(t, err)
	require.NotNil(t, outcome)
	assert.Equal(t, 5, outcome.Attempts)
	assert.True(t, outcome.Locked)
	assert.Equal(t, 15, outcome.LockoutMinutes)

	err = f.service.CheckLockout(ctx, "b@x.com")
	var locked *domainerrors.AccountLockedError
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, 15, locked.RemainingMinutes)
}

func TestAuthService_RecordFailedLogin_UnknownEmail(t *testing.T) {
	f := createTestAuthService(t)

	outcome, err := f.service.RecordFailedLogin(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, outcome)
}

func TestAuthService_RecordFailedLogin_StorageError(t *testing.T) {
	f := createTestAuthService(t)
	f.store.failWith = errors.New("connection reset")

	outcome, err := f.service.RecordFailedLogin(context.Background(), "ana@example.com")
	assert.Error(t, err)
	assert.Nil(t, outcome)
	assert.Contains(t, err.Error(), "failed to record failed login")
}

func TestAuthService_PasswordReset_Flow(t *testing.T) {
	f := createTestAuthService(t)
	f.registerVerified(t, "ana@example.com")
	ctx := context.Background()

	token := f.captureToken(entity.NotificationPasswordReset)
	require.NoError(t, f.service.InitiatePasswordReset(ctx, "Ana@Example.com"))

	stored := f.store.get("ana@example.com")
	require.NotNil(t, stored.TokenExpiresAt)
	assert.Equal(t, f.clock.Now().Add(2*time.Hour), *stored.TokenExpiresAt)

	ok, err := f.service.CompletePasswordReset(ctx, *token, "N3w!Password")
	require.NoError(t, err)
	assert.True(t, ok)

	stored = f.store.get("ana@example.com")
	assert.Nil(t, stored.VerificationToken)
	assert.Nil(t, stored.TokenExpiresAt)

	_, err = f.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: testPassword})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	output, err := f.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: "N3w!Password"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", output.Account.Email)

	// The consumed token cannot be replayed.
	ok, err = f.service.CompletePasswordReset(ctx, *token, "An0ther!Pass")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_InitiatePasswordReset_UnknownEmailSendsNothing(t *testing.T) {
	f := createTestAuthService(t)

	err := f.service.InitiatePasswordReset(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	f.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_InitiatePasswordReset_InactiveSendsNothing(t *testing.T) {
	f := createTestAuthService(t)
	f.store.put(&entity.Account{Email: "gone@example.com", Active: false})

	err := f.service.InitiatePasswordReset(context.Background(), "gone@example.com")
	assert.NoError(t, err)
	assert.Nil(t, f.store.get("gone@example.com").VerificationToken)
}

func TestAuthService_InitiatePasswordReset_InvalidatesPendingVerification(t *testing.T) {
	f := createTestAuthService(t)
	verification := f.captureToken(entity.NotificationVerification)

	ctx := context.Background()
	_, err := f.service.Register(ctx, customerInput("ana@example.com"))
	require.NoError(t, err)

	f.captureToken(entity.NotificationPasswordReset)
	require.NoError(t, f.service.InitiatePasswordReset(ctx, "ana@example.com"))

	ok, err := f.service.VerifyEmail(ctx, *verification)
	assert.False(t, ok)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_CompletePasswordReset_Rejections(t *testing.T) {
	f := createTestAuthService(t)
	f.registerVerified(t, "ana@example.com")
	ctx := context.Background()

	token := f.captureToken(entity.NotificationPasswordReset)
	require.NoError(t, f.service.InitiatePasswordReset(ctx, "ana@example.com"))

	ok, err := f.service.CompletePasswordReset(ctx, *token, "short")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domainerrors.ErrWeakPassword)

	ok, err = f.service.CompletePasswordReset(ctx, "", "N3w!Password")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	ok, err = f.service.CompletePasswordReset(ctx, "bogus-token", "N3w!Password")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	f.clock.Advance(3 * time.Hour)
	ok, err = f.service.CompletePasswordReset(ctx, *token, "N3w!Password")
	assert.False(t, ok)
	var expired *domainerrors.TokenExpiredError
	require.ErrorAs(t, err, &expired)
	assert.Equal(t, domainerrors.TokenTypePasswordReset, expired.TokenType)

	// The old password still works.
	_, err = f.service.Authenticate(ctx, "ana@example.com", testPassword)
	assert.NoError(t, err)
}

func TestAuthService_CompletePasswordReset_ChecksTokenBeforeHashing(t *testing.T) {
	hasher := mockSvc.NewMockPasswordHasher(t)
	f := newAuthServiceFixture(t, hasher, &sequenceTokens{})
	ctx := context.Background()

	stale := &entity.Account{Email: "stale@example.com", Active: true, EmailVerified: true, Enabled: true}
	stale.SetToken("stale-token", f.clock.Now().Add(-time.Minute))
	f.store.put(stale)

	ok, err := f.service.CompletePasswordReset(ctx, "bogus-token", "N3w!Password")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	ok, err = f.service.CompletePasswordReset(ctx, "stale-token", "N3w!Password")
	assert.False(t, ok)
	var expired *domainerrors.TokenExpiredError
	require.ErrorAs(t, err, &expired)

	hasher.AssertNotCalled(t, "Hash", mock.Anything)

	fresh := &entity.Account{Email: "ana@example.com", Active: true, EmailVerified: true, Enabled: true}
	fresh.SetToken("fresh-token", f.clock.Now().Add(time.Hour))
	f.store.put(fresh)
	hasher.EXPECT().Hash("N3w!Password").Return("bcrypt:new", nil).Once()

	ok, err = f.service.CompletePasswordReset(ctx, "fresh-token", "N3w!Password")
	require.NoError(t, err)
	assert.True(t, ok)

	stored := f.store.get("ana@example.com")
	assert.Equal(t, "bcrypt:new", stored.PasswordHash)
	assert.Nil(t, stored.VerificationToken)
}

func TestAuthService_DeactivateAndReactivate(t *testing.T) {
	f := createTestAuthService(t)
	f.registerVerified(t, "ana@example.com")
	ctx := context.Background()

	require.NoError(t, f.service.Deactivate(ctx, "ana@example.com"))
	stored := f.store.get("ana@example.com")
	assert.False(t, stored.Active)
	assert.False(t, stored.Enabled)

	_, err := f.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: testPassword})
	assert.ErrorIs(t, err, domainerrors.ErrAccountDeactivated)

	require.NoError(t, f.service.Reactivate(ctx, "ana@example.com"))
	_, err = f.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: testPassword})
	assert.NoError(t, err)

	err = f.service.Deactivate(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAuthService_Reactivate_UnverifiedStaysDisabled(t *testing.T) {
	f := createTestAuthService(t)
	f.store.put(&entity.Account{Email: "ana@example.com", Active: false})

	require.NoError(t, f.service.Reactivate(context.Background(), "ana@example.com"))

	stored := f.store.get("ana@example.com")
	assert.True(t, stored.Active)
	assert.False(t, stored.Enabled)
}

func TestAuthService_TransactionRollsBackOnFailure(t *testing.T) {
	f := createTestAuthService(t)
	f.registerVerified(t, "ana@example.com")
	before := f.store.get("ana@example.com")

	err := f.store.Execute(context.Background(), func(_ repository.RepositoryFactory) error {
		account := f.store.get("ana@example.com")
		account.Active = false
		require.NoError(t, f.store.Update(context.Background(), account))

		return errors.New("boom")
	})
	assert.Error(t, err)
	assert.Equal(t, before, f.store.get("ana@example.com"))
}
