package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"storefront/internal/auth"
	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/model"
)

// stubAuthService satisfies service.AuthService for routing tests; only
// Authenticate is expected to be reached.
type stubAuthService struct {
	user *model.User
}

func (s *stubAuthService) Register(ctx context.Context, email, password, fullName string, role model.Role) (*model.User, error) {
	return s.user, nil
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, string, *model.User, error) {
	return "", "", s.user, nil
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (string, string, *model.User, error) {
	return "", "", s.user, nil
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	return s.user, nil
}

func newTestEcho(secret string) *echo.Echo {
	e := echo.New()
	cfg := &config.Config{
		JWTSecret:   secret,
		CORSOrigins: []string{"*"},
		MaxBodySize: "11M",
	}

	authHandler := handler.NewAuthHandler(&stubAuthService{
		user: &model.User{Email: "test@example.com", Role: model.RoleClient},
	}, false)

	Register(
		e,
		cfg,
		authHandler,
		handler.NewOrderHandler(nil),
		handler.NewProductHandler(nil),
		handler.NewCategoryHandler(nil),
		handler.NewCompanyHandler(nil),
		handler.NewProjectHandler(nil),
	)
	return e
}

func TestSecuredGroup_AcceptsSignedAccessToken(t *testing.T) {
	e := newTestEcho("test-secret")

	token, err := auth.NewJWTService("test-secret").GenerateAccessToken("test@example.com")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"test@example.com"`)
}

func TestSecuredGroup_RejectsForeignSignature(t *testing.T) {
	e := newTestEcho("test-secret")

	token, err := auth.NewJWTService("other-secret").GenerateAccessToken("test@example.com")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthz(t *testing.T) {
	e := newTestEcho("test-secret")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
