package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/matrimony-service/internal/domain"
)

// FavouriteRepository encapsulates favourite-mark persistence.
type FavouriteRepository interface {
	Create(ctx context.Context, favourite *domain.Favourite) error
	GetByID(ctx context.Context, id string) (*domain.Favourite, error)
	List(ctx context.Context) ([]domain.Favourite, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Favourite, error)
	Exists(ctx context.Context, email string, biodataID int64) (bool, error)
	Delete(ctx context.Context, id string) error
}

type favouriteRepository struct {
	pool *pgxpool.Pool
}

// NewFavouriteRepository instantiates repository.
func NewFavouriteRepository(pool *pgxpool.Pool) FavouriteRepository {
	return &favouriteRepository{pool: pool}
}

func (r *favouriteRepository) Create(ctx context.Context, favourite *domain.Favourite) error {
	const query = `
        INSERT INTO favourites (user_email, biodata_id, biodata_name, permanent_division, occupation)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		favourite.UserEmail,
		favourite.BiodataID,
		favourite.BiodataName,
		favourite.PermanentDivision,
		favourite.Occupation,
	).Scan(&favourite.ID, &favourite.CreatedAt)
}

func (r *favouriteRepository) GetByID(ctx context.Context, id string) (*domain.Favourite, error) {
	const query = `
        SELECT id, user_email, biodata_id, biodata_name, permanent_division, occupation, created_at
        FROM favourites WHERE id=$1`

	var f domain.Favourite
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&f.ID,
		&f.UserEmail,
		&f.BiodataID,
		&f.BiodataName,
		&f.PermanentDivision,
		&f.Occupation,
		&f.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *favouriteRepository) List(ctx context.Context) ([]domain.Favourite, error) {
	const query = `
        SELECT id, user_email, biodata_id, biodata_name, permanent_division, occupation, created_at
        FROM favourites ORDER BY created_at`
	return r.fetchMany(ctx, query)
}

func (r *favouriteRepository) ListByEmail(ctx context.Context, email string) ([]domain.Favourite, error) {
	const query = `
        SELECT id, user_email, biodata_id, biodata_name, permanent_division, occupation, created_at
        FROM favourites WHERE user_email=$1 ORDER BY created_at`
	return r.fetchMany(ctx, query, email)
}

func (r *favouriteRepository) Exists(ctx context.Context, email string, biodataID int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM favourites WHERE user_email=$1 AND biodata_id=$2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email, biodataID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *favouriteRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM favourites WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *favouriteRepository) fetchMany(ctx context.Context, query string, args ...any) ([]domain.Favourite, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Favourite
	for rows.Next() {
		var f domain.Favourite
		if err := rows.Scan(
			&f.ID,
			&f.UserEmail,
			&f.BiodataID,
			&f.BiodataName,
			&f.PermanentDivision,
			&f.Occupation,
			&f.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	return result, rows.Err()
}
