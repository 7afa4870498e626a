package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/matrimony-service/internal/domain"
	apperrors "github.com/spec-kit/matrimony-service/pkg/util"
)

type fakeUserRepo struct {
	byEmail   map[string]*domain.User
	createErr error
	creates   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.creates++
	if f.createErr != nil {
		return f.createErr
	}
	copied := *user
	f.byEmail[user.Email] = &copied
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ string) (*domain.User, error) {
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if user, ok := f.byEmail[email]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(f.byEmail))
	for _, user := range f.byEmail {
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeUserRepo) SetRole(_ context.Context, id string, role domain.Role) error {
	for _, user := range f.byEmail {
		if user.ID == id {
			user.Role = role
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeUserRepo) SetTier(_ context.Context, id string, tier domain.Tier) error {
	for _, user := range f.byEmail {
		if user.ID == id {
			user.Tier = tier
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	for email, user := range f.byEmail {
		if user.ID == id {
			delete(f.byEmail, email)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func TestRegister_NewAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAccountService(repo)

	user, created, err := svc.Register(context.Background(), "Alice", "alice@example.com", nil)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, domain.RoleStandard, user.Role)
	assert.Equal(t, domain.TierStandard, user.Tier)
}

func TestRegister_ExistingAccountUnchanged(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byEmail["alice@example.com"] = &domain.User{
		Email: "alice@example.com",
		Name:  "Alice",
		Role:  domain.RoleAdmin,
	}
	svc := NewAccountService(repo)

	user, created, err := svc.Register(context.Background(), "Impostor", "alice@example.com", nil)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Alice", user.Name, "existing record is reported unchanged")
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.Zero(t, repo.creates, "no insert attempted for a known email")
}

func TestRegister_ConcurrentWinnerReported(t *testing.T) {
	repo := newFakeUserRepo()
	repo.createErr = &pgconn.PgError{Code: "23505"}

	// simulate the racing registration landing between the lookup and
	// the insert
	winner := &domain.User{Email: "bob@example.com", Name: "Bob"}
	lookups := 0
	wrapped := &lookupSequenceRepo{fakeUserRepo: repo, onLookup: func() (*domain.User, error) {
		lookups++
		if lookups == 1 {
			return nil, pgx.ErrNoRows
		}
		return winner, nil
	}}

	user, created, err := NewAccountService(wrapped).Register(context.Background(), "Bob", "bob@example.com", nil)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, winner, user)
}

type lookupSequenceRepo struct {
	*fakeUserRepo
	onLookup func() (*domain.User, error)
}

func (r *lookupSequenceRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return r.onLookup()
}

func TestPromote_MissingAccountMapsToNotFound(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAccountService(repo)

	err := svc.PromoteAdmin(context.Background(), "missing-id")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)

	err = svc.PromotePremium(context.Background(), "missing-id")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestIsAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byEmail["admin@example.com"] = &domain.User{Email: "admin@example.com", Role: domain.RoleAdmin}
	repo.byEmail["member@example.com"] = &domain.User{Email: "member@example.com", Role: domain.RoleStandard}
	svc := NewAccountService(repo)

	admin, err := svc.IsAdmin(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.True(t, admin)

	member, err := svc.IsAdmin(context.Background(), "member@example.com")
	require.NoError(t, err)
	assert.False(t, member)

	ghost, err := svc.IsAdmin(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.False(t, ghost, "unknown accounts are simply not admins")
}

func TestRegister_LookupFailurePropagated(t *testing.T) {
	repo := newFakeUserRepo()
	wrapped := &lookupSequenceRepo{fakeUserRepo: repo, onLookup: func() (*domain.User, error) {
		return nil, errors.New("store unreachable")
	}}
	svc := NewAccountService(wrapped)

	_, _, err := svc.Register(context.Background(), "Carol", "carol@example.com", nil)
	assert.EqualError(t, err, "store unreachable")
}
