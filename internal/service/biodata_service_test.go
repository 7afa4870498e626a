package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/matrimony-service/internal/domain"
	"github.com/spec-kit/matrimony-service/internal/repository"
	apperrors "github.com/spec-kit/matrimony-service/pkg/util"
)

type fakeCounterRepo struct {
	value int64
	err   error
}

func (f *fakeCounterRepo) Next(_ context.Context, _ string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.value++
	return f.value, nil
}

type fakeBiodataRepo struct {
	created []domain.Biodata
	err     error
}

func (f *fakeBiodataRepo) Create(_ context.Context, biodata *domain.Biodata) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *biodata)
	return nil
}

func (f *fakeBiodataRepo) GetByID(_ context.Context, _ string) (*domain.Biodata, error) {
	return nil, pgx.ErrNoRows
}

func (f *fakeBiodataRepo) List(_ context.Context, _ repository.BiodataFilter) ([]domain.Biodata, error) {
	return f.created, nil
}

func (f *fakeBiodataRepo) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeBiodataRepo) Count(_ context.Context, _ *domain.BiodataType) (int64, error) {
	return int64(len(f.created)), nil
}

func TestBiodataCreate_SequenceStartsAtOne(t *testing.T) {
	counters := &fakeCounterRepo{}
	repo := &fakeBiodataRepo{}
	svc := NewBiodataService(repo, counters, nil)

	first, err := svc.Create(context.Background(), BiodataCreateInput{
		Type:         domain.BiodataTypeMale,
		Name:         "First",
		ContactEmail: "first@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.BiodataID)

	second, err := svc.Create(context.Background(), BiodataCreateInput{
		Type:         domain.BiodataTypeFemale,
		Name:         "Second",
		ContactEmail: "second@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.BiodataID)
}

func TestBiodataCreate_DeletedNumbersNotReclaimed(t *testing.T) {
	counters := &fakeCounterRepo{}
	repo := &fakeBiodataRepo{}
	svc := NewBiodataService(repo, counters, nil)

	for i := 0; i < 2; i++ {
		_, err := svc.Create(context.Background(), BiodataCreateInput{
			Type:         domain.BiodataTypeMale,
			Name:         "P",
			ContactEmail: "p@example.com",
		})
		require.NoError(t, err)
	}

	require.NoError(t, svc.Delete(context.Background(), "some-id"))

	third, err := svc.Create(context.Background(), BiodataCreateInput{
		Type:         domain.BiodataTypeMale,
		Name:         "After delete",
		ContactEmail: "after@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.BiodataID)
}

func TestBiodataCreate_AllocatorFailure(t *testing.T) {
	counters := &fakeCounterRepo{err: errors.New("connection refused")}
	repo := &fakeBiodataRepo{}
	svc := NewBiodataService(repo, counters, nil)

	_, err := svc.Create(context.Background(), BiodataCreateInput{
		Type:         domain.BiodataTypeMale,
		Name:         "Never stored",
		ContactEmail: "never@example.com",
	})
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALLOCATION_FAILED", domainErr.Code)
	assert.Empty(t, repo.created, "no profile may be written when allocation fails")
}

func TestBiodataCreate_InsertFailureSurfaced(t *testing.T) {
	counters := &fakeCounterRepo{}
	repo := &fakeBiodataRepo{err: errors.New("insert failed")}
	svc := NewBiodataService(repo, counters, nil)

	_, err := svc.Create(context.Background(), BiodataCreateInput{
		Type:         domain.BiodataTypeMale,
		Name:         "Broken",
		ContactEmail: "broken@example.com",
	})
	assert.EqualError(t, err, "insert failed")
}
