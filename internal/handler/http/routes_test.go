package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akulikov/scoresync/internal/config"
	"github.com/akulikov/scoresync/internal/logger"
	"github.com/akulikov/scoresync/internal/service"
	"github.com/akulikov/scoresync/internal/utils"
	"github.com/akulikov/scoresync/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "scoresync-test"
)

func testAppConfig() config.App {
	return config.App{
		Version:      "test-version",
		TokenSignKey: testSignKey,
		TokenIssuer:  testIssuer,
	}
}

// ---- Mock: SyncResolverService ----

type stubResolverSvc struct{}

func (m *stubResolverSvc) Push(_ context.Context, _ int64, _ models.PushRequest) (models.PushResponse, error) {
	return models.PushResponse{}, nil
}
func (m *stubResolverSvc) Pull(_ context.Context, _ int64, _ models.PullRequest) (models.PullResponse, error) {
	return models.PullResponse{ServerTime: time.Now()}, nil
}

// ---- Mock: AppInfoService ----

type stubAppInfoSvc struct{}

func (m *stubAppInfoSvc) GetAppVersion(_ context.Context) string {
	return "test-version"
}

// ---- Helper ----

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := NewHandler(
		&service.Services{
			SyncResolverService: &stubResolverSvc{},
			AppInfoService:      &stubAppInfoSvc{},
		},
		testAppConfig(),
		logger.Nop(),
	)
	return h.Init()
}

func validAuthHeader(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, 1, time.Hour, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}

// ---- Public routes: reachable without auth ----

func TestInit_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "test-version", rr.Body.String())
}

// ---- Protected routes: 401 without token ----

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/sync/push"},
		{http.MethodPost, "/api/sync/pull"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" without token → 401", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code,
				"missing token should result in 401")
		})
	}
}

// ---- Protected routes: pass with valid token ----

func TestInit_ProtectedRoutes_PassWithValidToken(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/sync/push"},
		{http.MethodPost, "/api/sync/pull"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" with token → not 401", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", validAuthHeader(t))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusUnauthorized, rr.Code,
				"valid token should not result in 401")
		})
	}
}

// ---- Unknown routes return 404 ----

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method  string
		path    string
		addAuth bool
	}{
		{http.MethodGet, "/api/nonexistent", false},
		{http.MethodPost, "/api/sync/unknown", true},
		{http.MethodGet, "/totally/wrong", false},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.addAuth {
				req.Header.Set("Authorization", validAuthHeader(t))
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- Wrong method on existing route gets chi's default 405 ----

func TestInit_WrongMethod_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{
			name:   "GET on /api/sync/push (POST only)",
			method: http.MethodGet,
			path:   "/api/sync/push",
		},
		{
			name:   "POST on /api/version/ (GET only)",
			method: http.MethodPost,
			path:   "/api/version/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

// ---- X-Trace-ID is always present in the response ----

func TestInit_TraceIDHeader_AlwaysSet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

// ---- Incoming X-Trace-ID is echoed back ----

func TestInit_TraceIDHeader_EchoedFromRequest(t *testing.T) {
	router := newTestRouter(t)
	const customTraceID = "my-custom-trace-id-12345"

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set("X-Trace-ID", customTraceID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, customTraceID, rr.Header().Get("X-Trace-ID"))
}
