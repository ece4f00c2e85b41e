package middlewares_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"collection-console/internal/config"
	"collection-console/internal/middlewares"
	"collection-console/internal/mocks"
	"collection-console/internal/testutil"
)

func signTestToken(t *testing.T, email string, expiry time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{"exp": expiry.Unix()}
	if email != "" {
		claims["email"] = email
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

type authGateFixture struct {
	session *mocks.MockSessionProvider
	config  *config.Config
	handler http.Handler
	reached bool
}

func newAuthGateFixture(t *testing.T) *authGateFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &authGateFixture{
		session: mocks.NewMockSessionProvider(ctrl),
		config:  config.DefaultConfig(),
	}
	f.config.Auth.AdminUsers = []string{"admin@example.com"}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.reached = true
		w.WriteHeader(http.StatusOK)
	})

	baseCtx := middlewares.NewAppContext(context.Background(), f.config,
		slog.New(testutil.NewTestLogHandler()), f.session, nil, nil)
	f.handler = middlewares.AppContextMiddleware(baseCtx)(middlewares.RequireAuth(next))

	return f
}

func (f *authGateFixture) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuthPublicPathsBypassGate(t *testing.T) {
	publicPaths := []string{
		"/api/health",
		"/unauthorised",
		"/auth/login",
		"/auth/callback",
		"/auth/logout",
		"/assets/site.css",
	}

	for _, path := range publicPaths {
		t.Run(path, func(t *testing.T) {
			f := newAuthGateFixture(t)

			rec := f.serve(httptest.NewRequest("GET", path, nil))

			assert.True(t, f.reached, "public path should reach the handler")
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestRequireAuthMissingTokenRedirectsToLogin(t *testing.T) {
	f := newAuthGateFixture(t)
	f.session.EXPECT().GetAccessToken(gomock.Any()).Return("", false)

	rec := f.serve(httptest.NewRequest("GET", "/collections/col-1", nil))

	assert.False(t, f.reached)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))
}

func TestRequireAuthInvalidTokenRedirectsToUnauthorised(t *testing.T) {
	f := newAuthGateFixture(t)

	req := httptest.NewRequest("GET", "/collections/col-1", nil)
	req.Header.Set(f.config.Auth.TrustedProxyHeader, "not-a-token")

	rec := f.serve(req)

	assert.False(t, f.reached)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/unauthorised", rec.Header().Get("Location"))
}

func TestRequireAuthTokenWithoutEmailRedirectsToUnauthorised(t *testing.T) {
	f := newAuthGateFixture(t)

	req := httptest.NewRequest("GET", "/collections/col-1", nil)
	req.Header.Set(f.config.Auth.TrustedProxyHeader,
		signTestToken(t, "", time.Now().Add(time.Hour)))

	rec := f.serve(req)

	assert.False(t, f.reached)
	assert.Equal(t, "/unauthorised", rec.Header().Get("Location"))
}

func TestRequireAuthExpiredTokenRedirectsToUnauthorised(t *testing.T) {
	f := newAuthGateFixture(t)

	req := httptest.NewRequest("GET", "/collections/col-1", nil)
	req.Header.Set(f.config.Auth.TrustedProxyHeader,
		signTestToken(t, "user@example.com", time.Now().Add(-time.Hour)))

	rec := f.serve(req)

	assert.False(t, f.reached)
	assert.Equal(t, "/unauthorised", rec.Header().Get("Location"))
}

func TestRequireAuthValidHeaderTokenAnnotatesSession(t *testing.T) {
	f := newAuthGateFixture(t)
	token := signTestToken(t, "user@example.com", time.Now().Add(time.Hour))

	f.session.EXPECT().SetAccessToken(gomock.Any(), token)
	f.session.EXPECT().SetIsAdmin(gomock.Any(), false)

	req := httptest.NewRequest("GET", "/collections/col-1", nil)
	req.Header.Set(f.config.Auth.TrustedProxyHeader, token)

	rec := f.serve(req)

	assert.True(t, f.reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthAdminAllowlistSetsAdminFlag(t *testing.T) {
	f := newAuthGateFixture(t)
	token := signTestToken(t, "Admin@Example.com", time.Now().Add(time.Hour))

	f.session.EXPECT().SetAccessToken(gomock.Any(), token)
	f.session.EXPECT().SetIsAdmin(gomock.Any(), true)

	req := httptest.NewRequest("GET", "/collections/col-1", nil)
	req.Header.Set(f.config.Auth.TrustedProxyHeader, token)

	f.serve(req)

	assert.True(t, f.reached)
}

func TestRequireAuthFallsBackToSessionToken(t *testing.T) {
	f := newAuthGateFixture(t)
	token := signTestToken(t, "user@example.com", time.Now().Add(time.Hour))

	f.session.EXPECT().GetAccessToken(gomock.Any()).Return(token, true)
	f.session.EXPECT().SetAccessToken(gomock.Any(), token)
	f.session.EXPECT().SetIsAdmin(gomock.Any(), false)

	rec := f.serve(httptest.NewRequest("GET", "/collections/col-1", nil))

	assert.True(t, f.reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}
