package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/matrimony-service/internal/domain"
)

// BiodataFilter captures public browse parameters.
type BiodataFilter struct {
	Type  *domain.BiodataType
	Limit int
}

// BiodataRepository encapsulates profile persistence.
type BiodataRepository interface {
	Create(ctx context.Context, biodata *domain.Biodata) error
	GetByID(ctx context.Context, id string) (*domain.Biodata, error)
	List(ctx context.Context, filter BiodataFilter) ([]domain.Biodata, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, biodataType *domain.BiodataType) (int64, error)
}

type biodataRepository struct {
	pool *pgxpool.Pool
}

// NewBiodataRepository instantiates repository.
func NewBiodataRepository(pool *pgxpool.Pool) BiodataRepository {
	return &biodataRepository{pool: pool}
}

func (r *biodataRepository) Create(ctx context.Context, biodata *domain.Biodata) error {
	const query = `
        INSERT INTO biodata (biodata_id, biodata_type, name, profile_image, date_of_birth, age,
            occupation, permanent_division, expected_partner_age, contact_email, mobile_number)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		biodata.BiodataID,
		biodata.Type,
		biodata.Name,
		biodata.ProfileImage,
		biodata.DateOfBirth,
		biodata.Age,
		biodata.Occupation,
		biodata.PermanentDivision,
		biodata.ExpectedPartnerAge,
		biodata.ContactEmail,
		biodata.MobileNumber,
	).Scan(&biodata.ID, &biodata.CreatedAt, &biodata.UpdatedAt)
}

func (r *biodataRepository) GetByID(ctx context.Context, id string) (*domain.Biodata, error) {
	const query = `
        SELECT id, biodata_id, biodata_type, name, profile_image, date_of_birth, age,
               occupation, permanent_division, expected_partner_age, contact_email, mobile_number,
               created_at, updated_at
        FROM biodata WHERE id=$1`

	var b domain.Biodata
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.BiodataID,
		&b.Type,
		&b.Name,
		&b.ProfileImage,
		&b.DateOfBirth,
		&b.Age,
		&b.Occupation,
		&b.PermanentDivision,
		&b.ExpectedPartnerAge,
		&b.ContactEmail,
		&b.MobileNumber,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *biodataRepository) List(ctx context.Context, filter BiodataFilter) ([]domain.Biodata, error) {
	query := `
        SELECT id, biodata_id, biodata_type, name, profile_image, date_of_birth, age,
               occupation, permanent_division, expected_partner_age, contact_email, mobile_number,
               created_at, updated_at
        FROM biodata`
	args := []any{}
	if filter.Type != nil {
		query += ` WHERE biodata_type=$1`
		args = append(args, *filter.Type)
	}
	query += ` ORDER BY biodata_id`
	if filter.Limit > 0 {
		query += ` LIMIT ` + strconv.Itoa(filter.Limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Biodata
	for rows.Next() {
		var b domain.Biodata
		if err := rows.Scan(
			&b.ID,
			&b.BiodataID,
			&b.Type,
			&b.Name,
			&b.ProfileImage,
			&b.DateOfBirth,
			&b.Age,
			&b.Occupation,
			&b.PermanentDivision,
			&b.ExpectedPartnerAge,
			&b.ContactEmail,
			&b.MobileNumber,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

func (r *biodataRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM biodata WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *biodataRepository) Count(ctx context.Context, biodataType *domain.BiodataType) (int64, error) {
	query := `SELECT COUNT(*) FROM biodata`
	args := []any{}
	if biodataType != nil {
		query += ` WHERE biodata_type=$1`
		args = append(args, *biodataType)
	}

	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
