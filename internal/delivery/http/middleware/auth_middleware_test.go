package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_MissingCredentialsRedirectsToLogin(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	middleware := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/checkout/smart-watch?ref=home", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := middleware.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	// The original URL survives the round trip through the login page.
	assert.Equal(t, "/auth/login?next=%2Fcheckout%2Fsmart-watch%3Fref%3Dhome", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthMiddleware_MalformedHeaderRejected(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	middleware := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := middleware.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidTokenRejected(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken("expired-token").Return(nil, errors.New("token is expired"))
	middleware := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := middleware.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ValidTokenSetsIdentity(t *testing.T) {
	userID := uuid.New()
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken("good-token").
		Return(&service.Claims{UserID: userID, Roles: []string{entity.RoleStaff}, Type: "access"}, nil)
	middleware := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := middleware.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, c.Get("userID"))
	assert.Equal(t, []string{entity.RoleStaff}, c.Get("roles"))
}

func TestAuthMiddleware_RequireRole_Allowed(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	middleware := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("roles", []string{entity.RoleStaff})

	err := middleware.RequireRole(entity.RoleStaff)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireRole_Forbidden(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	middleware := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("roles", []string{})

	err := middleware.RequireRole(entity.RoleStaff)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireRole_MissingRoleInfo(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	middleware := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := middleware.RequireRole(entity.RoleStaff)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
