package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/matrimony-service/internal/domain"
)

// PaymentRepository encapsulates contact-request payment persistence.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	List(ctx context.Context) ([]domain.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Payment, error)
	SetStatus(ctx context.Context, id string, status domain.PaymentStatus) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository instantiates repository.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	const query = `
        INSERT INTO payments (email, biodata_id, amount_cents, status)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		payment.Email,
		payment.BiodataID,
		payment.AmountCents,
		payment.Status,
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
}

func (r *paymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	const query = `
        SELECT id, email, biodata_id, amount_cents, status, created_at, updated_at
        FROM payments ORDER BY created_at`
	return r.fetchMany(ctx, query)
}

func (r *paymentRepository) ListByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	const query = `
        SELECT id, email, biodata_id, amount_cents, status, created_at, updated_at
        FROM payments WHERE email=$1 ORDER BY created_at`
	return r.fetchMany(ctx, query, email)
}

func (r *paymentRepository) SetStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	const query = `UPDATE payments SET status=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM payments WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *paymentRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM payments`

	var count int64
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *paymentRepository) fetchMany(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(
			&p.ID,
			&p.Email,
			&p.BiodataID,
			&p.AmountCents,
			&p.Status,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}
