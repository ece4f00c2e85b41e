package testutil

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"collection-console/internal/config"
	"collection-console/internal/middlewares"
	"collection-console/internal/mocks"
)

// TestContext bundles everything a handler test needs: a recorded
// response, gomock doubles for the session and the backend, and an
// AppContext wired the same way the real middleware chain wires it.
type TestContext struct {
	T           *testing.T
	Ctrl        *gomock.Controller
	Config      *config.Config
	MockSession *mocks.MockSessionProvider
	MockBackend *mocks.MockService
	LogHandler  *TestLogHandler
	Request     *http.Request
	Response    *httptest.ResponseRecorder
	AppCtx      *middlewares.AppContext
}

func NewTestContext(t *testing.T, method, target string) *TestContext {
	return NewTestContextWithBody(t, method, target, nil, "")
}

// NewTestContextWithForm builds a context around a form POST, the shape
// almost every mutation handler in this app receives.
func NewTestContextWithForm(t *testing.T, target string, form url.Values) *TestContext {
	return NewTestContextWithBody(t, http.MethodPost, target,
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

func NewTestContextWithBody(t *testing.T, method, target string, body io.Reader, contentType string) *TestContext {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockSession := mocks.NewMockSessionProvider(ctrl)
	mockBackend := mocks.NewMockService(ctrl)
	logHandler := NewTestLogHandler()

	cfg := config.DefaultConfig()
	cfg.Backend.Host = "http://backend.test"
	cfg.Backend.ServiceToken = "test-service-token"

	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp := httptest.NewRecorder()

	tc := &TestContext{
		T:           t,
		Ctrl:        ctrl,
		Config:      cfg,
		MockSession: mockSession,
		MockBackend: mockBackend,
		LogHandler:  logHandler,
		Request:     req,
		Response:    resp,
	}
	tc.rebuildAppContext()

	t.Cleanup(ctrl.Finish)

	return tc
}

func (tc *TestContext) rebuildAppContext() {
	tc.AppCtx = &middlewares.AppContext{
		Context:        tc.Request.Context(),
		Config:         tc.Config,
		Logger:         slog.New(tc.LogHandler),
		SessionManager: tc.MockSession,
		Backend:        tc.MockBackend,
		Request:        tc.Request,
		Response:       tc.Response,
	}
}

// WithHeader sets a request header and returns the context for chaining.
func (tc *TestContext) WithHeader(key, value string) *TestContext {
	tc.Request.Header.Set(key, value)
	return tc
}

// WithChiParams attaches chi route parameters so handlers reading
// chi.URLParam see the values routing would have extracted.
func (tc *TestContext) WithChiParams(params map[string]string) *TestContext {
	routeCtx := chi.NewRouteContext()
	for key, value := range params {
		routeCtx.URLParams.Add(key, value)
	}
	tc.Request = tc.Request.WithContext(
		context.WithValue(tc.Request.Context(), chi.RouteCtxKey, routeCtx))
	tc.rebuildAppContext()
	return tc
}

func (tc *TestContext) CallHandler(handler middlewares.AppHandler) {
	tc.T.Helper()
	handler(tc.AppCtx)
}

func (tc *TestContext) AssertStatus(expected int) {
	tc.T.Helper()
	assert.Equal(tc.T, expected, tc.Response.Code)
}

// AssertRedirect checks for a 303 to the exact location, the contract
// every form handler follows.
func (tc *TestContext) AssertRedirect(location string) {
	tc.T.Helper()
	assert.Equal(tc.T, http.StatusSeeOther, tc.Response.Code)
	assert.Equal(tc.T, location, tc.Response.Header().Get("Location"))
}

func (tc *TestContext) AssertJSONField(field string, expected any) {
	tc.T.Helper()
	var body map[string]any
	require.NoError(tc.T, json.Unmarshal(tc.Response.Body.Bytes(), &body))
	assert.Equal(tc.T, expected, body[field])
}
