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

type fakeFavouriteRepo struct {
	marks     []domain.Favourite
	createErr error
}

func (f *fakeFavouriteRepo) Create(_ context.Context, favourite *domain.Favourite) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.marks = append(f.marks, *favourite)
	return nil
}

func (f *fakeFavouriteRepo) GetByID(_ context.Context, _ string) (*domain.Favourite, error) {
	return nil, pgx.ErrNoRows
}

func (f *fakeFavouriteRepo) List(_ context.Context) ([]domain.Favourite, error) {
	return f.marks, nil
}

func (f *fakeFavouriteRepo) ListByEmail(_ context.Context, email string) ([]domain.Favourite, error) {
	var out []domain.Favourite
	for _, mark := range f.marks {
		if mark.UserEmail == email {
			out = append(out, mark)
		}
	}
	return out, nil
}

func (f *fakeFavouriteRepo) Exists(_ context.Context, email string, biodataID int64) (bool, error) {
	for _, mark := range f.marks {
		if mark.UserEmail == email && mark.BiodataID == biodataID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFavouriteRepo) Delete(_ context.Context, _ string) error { return nil }

func TestFavouriteCreate_DuplicateRejected(t *testing.T) {
	repo := &fakeFavouriteRepo{}
	svc := NewFavouriteService(repo)

	input := FavouriteCreateInput{UserEmail: "user@example.com", BiodataID: 7}

	_, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, repo.marks, 1)

	_, err = svc.Create(context.Background(), input)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Len(t, repo.marks, 1, "duplicate must not add a second mark")
}

func TestFavouriteCreate_SamePairDifferentAccounts(t *testing.T) {
	repo := &fakeFavouriteRepo{}
	svc := NewFavouriteService(repo)

	_, err := svc.Create(context.Background(), FavouriteCreateInput{UserEmail: "a@example.com", BiodataID: 7})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), FavouriteCreateInput{UserEmail: "b@example.com", BiodataID: 7})
	require.NoError(t, err)

	assert.Len(t, repo.marks, 2)
}

func TestFavouriteCreate_RacingInsertMapsToConflict(t *testing.T) {
	repo := &fakeFavouriteRepo{createErr: &pgconn.PgError{Code: "23505"}}
	svc := NewFavouriteService(repo)

	_, err := svc.Create(context.Background(), FavouriteCreateInput{UserEmail: "user@example.com", BiodataID: 9})
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
}

func TestFavouriteCreate_OtherInsertErrorSurfaced(t *testing.T) {
	repo := &fakeFavouriteRepo{createErr: &pgconn.PgError{Code: "40001"}}
	svc := NewFavouriteService(repo)

	_, err := svc.Create(context.Background(), FavouriteCreateInput{UserEmail: "user@example.com", BiodataID: 9})
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	assert.False(t, errors.As(err, &domainErr), "non-duplicate store errors pass through untouched")
}
