package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/matrimony-service/internal/domain"
)

// PremiumRequestRepository encapsulates premium-request persistence.
type PremiumRequestRepository interface {
	Create(ctx context.Context, request *domain.PremiumRequest) error
	GetByID(ctx context.Context, id string) (*domain.PremiumRequest, error)
	List(ctx context.Context) ([]domain.PremiumRequest, error)
	ListByEmail(ctx context.Context, email string) ([]domain.PremiumRequest, error)
	SetTier(ctx context.Context, id string, tier domain.Tier) error
	Delete(ctx context.Context, id string) error
	CountByTier(ctx context.Context, tier domain.Tier) (int64, error)
}

type premiumRequestRepository struct {
	pool *pgxpool.Pool
}

// NewPremiumRequestRepository instantiates repository.
func NewPremiumRequestRepository(pool *pgxpool.Pool) PremiumRequestRepository {
	return &premiumRequestRepository{pool: pool}
}

func (r *premiumRequestRepository) Create(ctx context.Context, request *domain.PremiumRequest) error {
	const query = `
        INSERT INTO premium_requests (email, biodata_id, name, tier)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		request.Email,
		request.BiodataID,
		request.Name,
		request.Tier,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
}

func (r *premiumRequestRepository) GetByID(ctx context.Context, id string) (*domain.PremiumRequest, error) {
	const query = `
        SELECT id, email, biodata_id, name, tier, created_at, updated_at
        FROM premium_requests WHERE id=$1`

	var req domain.PremiumRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID,
		&req.Email,
		&req.BiodataID,
		&req.Name,
		&req.Tier,
		&req.CreatedAt,
		&req.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *premiumRequestRepository) List(ctx context.Context) ([]domain.PremiumRequest, error) {
	const query = `
        SELECT id, email, biodata_id, name, tier, created_at, updated_at
        FROM premium_requests ORDER BY created_at`
	return r.fetchMany(ctx, query)
}

func (r *premiumRequestRepository) ListByEmail(ctx context.Context, email string) ([]domain.PremiumRequest, error) {
	const query = `
        SELECT id, email, biodata_id, name, tier, created_at, updated_at
        FROM premium_requests WHERE email=$1 ORDER BY created_at`
	return r.fetchMany(ctx, query, email)
}

func (r *premiumRequestRepository) SetTier(ctx context.Context, id string, tier domain.Tier) error {
	const query = `UPDATE premium_requests SET tier=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, tier, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *premiumRequestRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM premium_requests WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *premiumRequestRepository) CountByTier(ctx context.Context, tier domain.Tier) (int64, error) {
	const query = `SELECT COUNT(*) FROM premium_requests WHERE tier=$1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, tier).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *premiumRequestRepository) fetchMany(ctx context.Context, query string, args ...any) ([]domain.PremiumRequest, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.PremiumRequest
	for rows.Next() {
		var req domain.PremiumRequest
		if err := rows.Scan(
			&req.ID,
			&req.Email,
			&req.BiodataID,
			&req.Name,
			&req.Tier,
			&req.CreatedAt,
			&req.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, req)
	}
	return result, rows.Err()
}
