package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/matrimony-service/internal/domain"
)

// SuccessStoryRepository encapsulates success-story persistence.
type SuccessStoryRepository interface {
	Create(ctx context.Context, story *domain.SuccessStory) error
	List(ctx context.Context) ([]domain.SuccessStory, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type successStoryRepository struct {
	pool *pgxpool.Pool
}

// NewSuccessStoryRepository instantiates repository.
func NewSuccessStoryRepository(pool *pgxpool.Pool) SuccessStoryRepository {
	return &successStoryRepository{pool: pool}
}

func (r *successStoryRepository) Create(ctx context.Context, story *domain.SuccessStory) error {
	const query = `
        INSERT INTO success_stories (self_biodata_id, partner_biodata_id, couple_image, marriage_date, review)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		story.SelfBiodataID,
		story.PartnerBiodataID,
		story.CoupleImage,
		story.MarriageDate,
		story.Review,
	).Scan(&story.ID, &story.CreatedAt)
}

func (r *successStoryRepository) List(ctx context.Context) ([]domain.SuccessStory, error) {
	const query = `
        SELECT id, self_biodata_id, partner_biodata_id, couple_image, marriage_date, review, created_at
        FROM success_stories ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SuccessStory
	for rows.Next() {
		var s domain.SuccessStory
		if err := rows.Scan(
			&s.ID,
			&s.SelfBiodataID,
			&s.PartnerBiodataID,
			&s.CoupleImage,
			&s.MarriageDate,
			&s.Review,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *successStoryRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM success_stories WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *successStoryRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM success_stories`

	var count int64
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
