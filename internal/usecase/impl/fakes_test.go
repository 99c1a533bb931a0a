package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"rentauth/config"
	"rentauth/internal/domain/entity"
	domainerrors "rentauth/internal/domain/errors"
	"rentauth/internal/domain/repository"
	"rentauth/internal/util"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:             4,
			VerificationTokenTTL:   24 * time.Hour,
			PasswordResetTokenTTL:  2 * time.Hour,
			MaxLoginAttempts:       5,
			LockoutDuration:        15 * time.Minute,
			MinResetPasswordLength: 8,
		},
	}
}

// testClock is a settable clock shared by the service and the fake store.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// fakeHasher marks hashes with a prefix so tests can read them.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// sequenceTokens hands out predictable unique tokens.
type sequenceTokens struct {
	mu   sync.Mutex
	next int
}

func (g *sequenceTokens) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.next++

	return strings.Repeat("0", 30) + string(rune('a'+g.next%26)) + string(rune('a'+g.next/26%26)), nil
}

// memoryStore is an in-memory credential store. Transactions snapshot the
// rows and restore them when the callback fails.
type memoryStore struct {
	mu    sync.Mutex
	rows  map[uuid.UUID]entity.Account
	clock *testClock

	// failWith makes every call fail with the given error when set.
	failWith error
}

func newMemoryStore(clock *testClock) *memoryStore {
	return &memoryStore{rows: make(map[uuid.UUID]entity.Account), clock: clock}
}

func cloneAccount(a entity.Account) *entity.Account {
	clone := a
	if a.VerificationToken != nil {
		token := *a.VerificationToken
		clone.VerificationToken = &token
	}
	if a.TokenExpiresAt != nil {
		at := *a.TokenExpiresAt
		clone.TokenExpiresAt = &at
	}
	if a.LockoutUntil != nil {
		at := *a.LockoutUntil
		clone.LockoutUntil = &at
	}
	if a.LastLoginAt != nil {
		at := *a.LastLoginAt
		clone.LastLoginAt = &at
	}

	return &clone
}

// get returns a copy of the stored row, for assertions.
func (s *memoryStore) get(email string) *entity.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.rows {
		if row.Email == util.NormalizeEmail(email) {
			return cloneAccount(row)
		}
	}

	return nil
}

// put stores a row directly, bypassing the service.
func (s *memoryStore) put(account *entity.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	account.Email = util.NormalizeEmail(account.Email)
	s.rows[account.ID] = *cloneAccount(*account)
}

func (s *memoryStore) findLocked(match func(entity.Account) bool) (*entity.Account, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for _, row := range s.rows {
		if match(row) {
			return cloneAccount(row), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (s *memoryStore) find(match func(entity.Account) bool) (*entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.findLocked(match)
}

func (s *memoryStore) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	return s.find(func(a entity.Account) bool { return a.ID == id })
}

func (s *memoryStore) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	normalized := util.NormalizeEmail(email)

	return s.find(func(a entity.Account) bool { return a.Email == normalized })
}

func (s *memoryStore) FindByEmailForUpdate(ctx context.Context, email string) (*entity.Account, error) {
	return s.FindByEmail(ctx, email)
}

func (s *memoryStore) FindByToken(_ context.Context, token string) (*entity.Account, error) {
	return s.find(func(a entity.Account) bool {
		return a.VerificationToken != nil && *a.VerificationToken == token
	})
}

func (s *memoryStore) FindByValidToken(_ context.Context, token string, now time.Time) (*entity.Account, error) {
	return s.find(func(a entity.Account) bool {
		return a.VerificationToken != nil && *a.VerificationToken == token &&
			a.TokenExpiresAt != nil && !now.After(*a.TokenExpiresAt)
	})
}

func (s *memoryStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.FindByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if err == repository.ErrAccountNotFound {
		return false, nil
	}

	return false, err
}

func (s *memoryStore) Create(_ context.Context, account *entity.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		return s.failWith
	}
	for _, row := range s.rows {
		if row.Email == account.Email {
			return domainerrors.ErrDuplicateAccount
		}
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	account.CreatedAt = s.clock.Now()
	account.UpdatedAt = account.CreatedAt
	s.rows[account.ID] = *cloneAccount(*account)

	return nil
}

func (s *memoryStore) Update(_ context.Context, account *entity.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.rows[account.ID]; !ok {
		return repository.ErrAccountNotFound
	}
	account.UpdatedAt = s.clock.Now()
	s.rows[account.ID] = *cloneAccount(*account)

	return nil
}

func (s *memoryStore) mutate(id uuid.UUID, fn func(*entity.Account)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		return s.failWith
	}
	row, ok := s.rows[id]
	if !ok {
		return repository.ErrAccountNotFound
	}
	fn(&row)
	s.rows[id] = row

	return nil
}

func (s *memoryStore) ClearToken(_ context.Context, id uuid.UUID) error {
	return s.mutate(id, func(a *entity.Account) { a.ClearToken() })
}

func (s *memoryStore) IncrementLoginAttempts(_ context.Context, email string, threshold int, lockoutUntil, _ time.Time) (*repository.LoginAttemptResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		return nil, s.failWith
	}
	normalized := util.NormalizeEmail(email)
	for id, row := range s.rows {
		if row.Email != normalized {
			continue
		}
		row.LoginAttempts++
		locked := row.LoginAttempts >= threshold
		if locked {
			until := lockoutUntil
			row.LockoutUntil = &until
		}
		s.rows[id] = row

		return &repository.LoginAttemptResult{Attempts: row.LoginAttempts, LockoutUntil: row.LockoutUntil, Locked: locked}, nil
	}

	return nil, repository.ErrAccountNotFound
}

func (s *memoryStore) ResetLoginAttempts(_ context.Context, id uuid.UUID) error {
	return s.mutate(id, func(a *entity.Account) { a.ResetLoginAttempts() })
}

func (s *memoryStore) ClearExpiredTokens(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		return 0, s.failWith
	}
	var cleared int64
	for id, row := range s.rows {
		if row.VerificationToken != nil && row.TokenExpiresAt != nil && row.TokenExpiresAt.Before(now) {
			row.ClearToken()
			s.rows[id] = row
			cleared++
		}
	}

	return cleared, nil
}

func (s *memoryStore) CountAccounts(_ context.Context) (*entity.AccountCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		return nil, s.failWith
	}
	counts := &entity.AccountCounts{}
	for _, row := range s.rows {
		counts.Total++
		if row.Active {
			counts.Active++
		}
		if row.EmailVerified {
			counts.Verified++
		} else {
			counts.Unverified++
		}
	}

	return counts, nil
}

func (s *memoryStore) CountByRole(_ context.Context) ([]entity.RoleCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		return nil, s.failWith
	}
	byRole := make(map[entity.Role]int64)
	for _, row := range s.rows {
		byRole[row.Role]++
	}
	counts := make([]entity.RoleCount, 0, len(byRole))
	for role, count := range byRole {
		counts = append(counts, entity.RoleCount{Role: role, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Role < counts[j].Role })

	return counts, nil
}

func (s *memoryStore) list(match func(entity.Account) bool) ([]*entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		return nil, s.failWith
	}
	accounts := make([]*entity.Account, 0)
	for _, row := range s.rows {
		if match(row) {
			accounts = append(accounts, cloneAccount(row))
		}
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].CreatedAt.After(accounts[j].CreatedAt) })

	return accounts, nil
}

func (s *memoryStore) ListByRole(_ context.Context, role entity.Role) ([]*entity.Account, error) {
	return s.list(func(a entity.Account) bool { return a.Role == role })
}

func (s *memoryStore) ListActiveByRolesInLocation(_ context.Context, roles []entity.Role, location string) ([]*entity.Account, error) {
	return s.list(func(a entity.Account) bool {
		return a.Active && entity.Roles(roles).Contains(a.Role) && strings.EqualFold(a.Location, location)
	})
}

func (s *memoryStore) ListCreatedSince(_ context.Context, since time.Time) ([]*entity.Account, error) {
	return s.list(func(a entity.Account) bool { return !a.CreatedAt.Before(since) })
}

func (s *memoryStore) ListByEmailDomain(_ context.Context, domain string) ([]*entity.Account, error) {
	suffix := "@" + util.NormalizeEmail(domain)

	return s.list(func(a entity.Account) bool { return strings.HasSuffix(a.Email, suffix) })
}

// Execute implements repository.TransactionManager.
func (s *memoryStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.mu.Lock()
	snapshot := make(map[uuid.UUID]entity.Account, len(s.rows))
	for id, row := range s.rows {
		snapshot[id] = *cloneAccount(row)
	}
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.rows = snapshot
		s.mu.Unlock()

		return err
	}

	return nil
}

// NewAccountRepository implements repository.RepositoryFactory.
func (s *memoryStore) NewAccountRepository() repository.AccountRepository {
	return s
}
