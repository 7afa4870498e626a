package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/matrimony-service/internal/domain"
	"github.com/spec-kit/matrimony-service/internal/repository"
	apperrors "github.com/spec-kit/matrimony-service/pkg/util"
)

// FavouriteCreateInput captures a favourite-mark submission.
type FavouriteCreateInput struct {
	UserEmail         string
	BiodataID         int64
	BiodataName       *string
	PermanentDivision *string
	Occupation        *string
}

// FavouriteService enforces the one-mark-per-(account, profile) invariant.
type FavouriteService struct {
	favourites repository.FavouriteRepository
}

// NewFavouriteService builds the service.
func NewFavouriteService(favourites repository.FavouriteRepository) *FavouriteService {
	return &FavouriteService{favourites: favourites}
}

// Create performs the duplicate-guarded insert: an existing mark for the
// pair rejects with Conflict and no write occurs. The unique index on
// (user_email, biodata_id) closes the check-insert window; a racing
// insert surfaces as the same Conflict.
func (s *FavouriteService) Create(ctx context.Context, input FavouriteCreateInput) (*domain.Favourite, error) {
	exists, err := s.favourites.Exists(ctx, input.UserEmail, input.BiodataID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflict("this biodata is already in your favourites", map[string]any{
			"biodata_id": input.BiodataID,
		})
	}

	favourite := &domain.Favourite{
		UserEmail:         input.UserEmail,
		BiodataID:         input.BiodataID,
		BiodataName:       input.BiodataName,
		PermanentDivision: input.PermanentDivision,
		Occupation:        input.Occupation,
	}
	if err := s.favourites.Create(ctx, favourite); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperrors.NewConflict("this biodata is already in your favourites", map[string]any{
				"biodata_id": input.BiodataID,
			})
		}
		return nil, err
	}
	return favourite, nil
}

// GetByID looks a favourite mark up by its store identifier.
func (s *FavouriteService) GetByID(ctx context.Context, id string) (*domain.Favourite, error) {
	return s.favourites.GetByID(ctx, id)
}

// List returns every favourite mark.
func (s *FavouriteService) List(ctx context.Context) ([]domain.Favourite, error) {
	return s.favourites.List(ctx)
}

// ListByEmail returns the marks owned by the given account.
func (s *FavouriteService) ListByEmail(ctx context.Context, email string) ([]domain.Favourite, error) {
	return s.favourites.ListByEmail(ctx, email)
}

// Delete removes a favourite mark.
func (s *FavouriteService) Delete(ctx context.Context, id string) error {
	return s.favourites.Delete(ctx, id)
}
