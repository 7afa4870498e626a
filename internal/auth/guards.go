package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/matrimony-service/internal/repository"
	apperrors "github.com/spec-kit/matrimony-service/pkg/util"
)

// Guard is one named authorization check in a pipeline. Guards attached
// to a route run in declared order and short-circuit on first failure.
type Guard struct {
	Name   string
	Handle fiber.Handler
}

// RequireAdmin resolves the account behind the verified claims and
// rejects callers whose role is not admin. It trusts the claims attached
// by VerifyToken and must run after it.
func RequireAdmin(users repository.UserRepository) Guard {
	return Guard{
		Name: "require-admin",
		Handle: func(c *fiber.Ctx) error {
			claims, ok := ClaimsFromContext(c)
			if !ok {
				return apperrors.NewUnauthorized(unauthorizedMessage)
			}

			user, err := users.GetByEmail(c.Context(), claims.Email)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return apperrors.NewForbidden("forbidden access")
				}
				return apperrors.MapError(err)
			}
			if !user.IsAdmin() {
				return apperrors.NewForbidden("forbidden access")
			}
			return c.Next()
		},
	}
}

// RequireSelf rejects callers whose verified subject does not match the
// named path parameter. Must run after VerifyToken.
func RequireSelf(param string) Guard {
	return Guard{
		Name: "require-self",
		Handle: func(c *fiber.Ctx) error {
			claims, ok := ClaimsFromContext(c)
			if !ok {
				return apperrors.NewUnauthorized(unauthorizedMessage)
			}
			if c.Params(param) != claims.Email {
				return apperrors.NewForbidden("forbidden access")
			}
			return c.Next()
		},
	}
}
