package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/matrimony-service/internal/auth"
	"github.com/spec-kit/matrimony-service/internal/domain"
	"github.com/spec-kit/matrimony-service/internal/observability"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ string) (*domain.User, error) {
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if user, ok := f.byEmail[email]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.User, error) { return nil, nil }

func (f *fakeUserRepo) SetRole(_ context.Context, _ string, _ domain.Role) error { return nil }

func (f *fakeUserRepo) SetTier(_ context.Context, _ string, _ domain.Tier) error { return nil }

func (f *fakeUserRepo) Delete(_ context.Context, _ string) error { return nil }

type pipelineFixture struct {
	app      *fiber.App
	tokens   *auth.TokenManager
	executed *bool
}

func newPipelineFixture(t *testing.T, guards func(m *auth.Middleware, users *fakeUserRepo) []auth.Guard) pipelineFixture {
	t.Helper()

	users := &fakeUserRepo{byEmail: map[string]*domain.User{
		"admin@example.com":  {Email: "admin@example.com", Role: domain.RoleAdmin},
		"member@example.com": {Email: "member@example.com", Role: domain.RoleStandard},
	}}

	tokens := auth.NewTokenManager("test-secret", 60)
	middleware := auth.NewMiddleware(tokens)

	executed := false
	app := fiber.New(fiber.Config{UnescapePath: true})
	app.Use(errorHandlingMiddleware(zap.NewNop(), observability.NewMetrics()))

	chain := []fiber.Handler{}
	for _, guard := range guards(middleware, users) {
		chain = append(chain, guard.Handle)
	}
	chain = append(chain, func(c *fiber.Ctx) error {
		executed = true
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/guarded/:email", chain...)

	return pipelineFixture{app: app, tokens: tokens, executed: &executed}
}

func (f pipelineFixture) request(t *testing.T, target, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	return resp
}

func adminChain(m *auth.Middleware, users *fakeUserRepo) []auth.Guard {
	return []auth.Guard{m.VerifyToken(), auth.RequireAdmin(users)}
}

func selfChain(m *auth.Middleware, _ *fakeUserRepo) []auth.Guard {
	return []auth.Guard{m.VerifyToken(), auth.RequireSelf("email")}
}

func mintExpiredToken(t *testing.T, email string) string {
	t.Helper()
	claims := &auth.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestAdminChain_RejectsWithoutSideEffects(t *testing.T) {
	expired := mintExpiredToken(t, "admin@example.com")

	f := newPipelineFixture(t, adminChain)
	memberToken, _, err := f.tokens.GenerateToken("member@example.com", "")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"no credential", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"expired credential", "Bearer " + expired, http.StatusUnauthorized},
		{"valid non-admin", "Bearer " + memberToken, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := f.request(t, "/guarded/any", tc.header)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.False(t, *f.executed, "underlying operation must not execute")
		})
	}
}

func TestAdminChain_MissingAndInvalidIndistinguishable(t *testing.T) {
	f := newPipelineFixture(t, adminChain)

	missing := f.request(t, "/guarded/any", "")
	invalid := f.request(t, "/guarded/any", "Bearer garbage")

	assert.Equal(t, missing.StatusCode, invalid.StatusCode)

	missingBody, err := io.ReadAll(missing.Body)
	require.NoError(t, err)
	invalidBody, err := io.ReadAll(invalid.Body)
	require.NoError(t, err)
	assert.Equal(t, string(missingBody), string(invalidBody))
}

func TestAdminChain_UnknownAccountForbidden(t *testing.T) {
	f := newPipelineFixture(t, adminChain)

	token, _, err := f.tokens.GenerateToken("ghost@example.com", "")
	require.NoError(t, err)

	resp := f.request(t, "/guarded/any", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.False(t, *f.executed)
}

func TestAdminChain_AllowsAdmin(t *testing.T) {
	f := newPipelineFixture(t, adminChain)

	token, _, err := f.tokens.GenerateToken("admin@example.com", "")
	require.NoError(t, err)

	resp := f.request(t, "/guarded/any", "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, *f.executed)
}

func TestSelfChain_RejectsOtherSubject(t *testing.T) {
	f := newPipelineFixture(t, selfChain)

	token, _, err := f.tokens.GenerateToken("member@example.com", "")
	require.NoError(t, err)

	resp := f.request(t, "/guarded/admin@example.com", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.False(t, *f.executed)
}

func TestSelfChain_AllowsPercentEncodedOwnEmail(t *testing.T) {
	f := newPipelineFixture(t, selfChain)

	token, _, err := f.tokens.GenerateToken("member@example.com", "")
	require.NoError(t, err)

	resp := f.request(t, "/guarded/member%40example.com", "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, *f.executed)
}

func TestSelfChain_PercentEncodedOtherEmailStillRejected(t *testing.T) {
	f := newPipelineFixture(t, selfChain)

	token, _, err := f.tokens.GenerateToken("member@example.com", "")
	require.NoError(t, err)

	resp := f.request(t, "/guarded/admin%40example.com", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.False(t, *f.executed)
}

func TestSelfChain_AllowsOwnResource(t *testing.T) {
	f := newPipelineFixture(t, selfChain)

	token, _, err := f.tokens.GenerateToken("member@example.com", "")
	require.NoError(t, err)

	resp := f.request(t, "/guarded/member@example.com", "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, *f.executed)
}
