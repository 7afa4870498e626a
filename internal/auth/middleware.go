package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/matrimony-service/pkg/util"
)

const claimsKey = "auth_claims"

// unauthorizedMessage is the single outward message for every credential
// failure. A missing header, a malformed header, a bad signature and an
// expired token are distinct branches internally but indistinguishable
// to the caller.
const unauthorizedMessage = "unauthorized access"

// Middleware validates bearer credentials and attaches claims.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// VerifyToken returns the identity-verification guard. On success the
// decoded claims are attached to the request for downstream guards.
func (m *Middleware) VerifyToken() Guard {
	return Guard{Name: "verify-token", Handle: m.handle}
}

func (m *Middleware) handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized(unauthorizedMessage)
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized(unauthorizedMessage)
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized(unauthorizedMessage)
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// ClaimsFromContext retrieves the verified identity claims.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
