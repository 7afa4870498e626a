package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/matrimony-service/internal/domain"
	"github.com/spec-kit/matrimony-service/internal/repository"
)

const uniqueViolation = "23505"

// AccountService coordinates account registration and elevation flows.
type AccountService struct {
	users repository.UserRepository
}

// NewAccountService builds the service.
func NewAccountService(users repository.UserRepository) *AccountService {
	return &AccountService{users: users}
}

// Register creates an account on first registration. When a record
// already shares the email it is returned unchanged with created=false;
// the users.email unique index backstops concurrent registrations.
func (s *AccountService) Register(ctx context.Context, name, email string, photoURL *string) (*domain.User, bool, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	user := &domain.User{
		Name:     name,
		Email:    email,
		PhotoURL: photoURL,
		Role:     domain.RoleStandard,
		Tier:     domain.TierStandard,
	}
	if err := s.users.Create(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			// a concurrent registration won the index; report the survivor
			winner, lookupErr := s.users.GetByEmail(ctx, email)
			if lookupErr != nil {
				return nil, false, lookupErr
			}
			return winner, false, nil
		}
		return nil, false, err
	}
	return user, true, nil
}

// IsAdmin reports whether the account behind the email holds the admin role.
func (s *AccountService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}

// List returns every account record.
func (s *AccountService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// PromoteAdmin elevates the account's role.
func (s *AccountService) PromoteAdmin(ctx context.Context, id string) error {
	return s.users.SetRole(ctx, id, domain.RoleAdmin)
}

// PromotePremium elevates the account's tier.
func (s *AccountService) PromotePremium(ctx context.Context, id string) error {
	return s.users.SetTier(ctx, id, domain.TierPremium)
}

// Delete removes an account by explicit admin action.
func (s *AccountService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
