package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/starwars-api/config"
	"github.com/oksasatya/starwars-api/internal/application"
	"github.com/oksasatya/starwars-api/internal/container"
	"github.com/oksasatya/starwars-api/internal/infrastructure/database"
	"github.com/oksasatya/starwars-api/internal/interface/middleware"
	"github.com/oksasatya/starwars-api/internal/router"
	"github.com/oksasatya/starwars-api/internal/testutil"
	"github.com/oksasatya/starwars-api/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	engine *gin.Engine
	db     *database.DB
	fx     testutil.Fixtures
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := testutil.NewDB(t)
	fx := testutil.Seed(t, db)
	cfg := &config.Config{
		AppName:             "starwars-test",
		Env:                 "test",
		CORSAllowedOrigins:  "*",
		CatalogCacheTTL:     time.Minute,
		DebugMetricsEnabled: true,
	}
	c := &container.Container{
		Config:  cfg,
		Logger:  helpers.NewNopLogger(),
		DB:      db,
		JWT:     helpers.NewJWTManager("router-test-secret", time.Hour),
		Metrics: middleware.NewMetrics("starwars_test"),
	}
	return &testServer{engine: router.New(c), db: db, fx: fx}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T, email, password string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/login", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res application.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token)
	assert.Equal(t, email, res.Identity)
	return res.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func msg(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, w)["msg"]
}

// =============================================================================
// Favorites over HTTP
// =============================================================================

func TestTatooineScenario(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "a@b.com", testutil.UserPassword)

	w := s.do(t, http.MethodPost, "/favorite/planet/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	user := decode[application.UserView](t, w)
	assert.Equal(t, "a@b.com", user.Email)
	require.Len(t, user.Favorites, 1)
	require.NotNil(t, user.Favorites[0].Planet)
	assert.Equal(t, "Tatooine", *user.Favorites[0].Planet)
	assert.Nil(t, user.Favorites[0].People)
	assert.Contains(t, w.Body.String(), `"planet":"Tatooine","people":null`)

	w = s.do(t, http.MethodDelete, "/favorite/planet/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"favorites":[]`)

	w = s.do(t, http.MethodDelete, "/favorite/planet/1", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "invalid planet id", msg(t, w))
}

func TestFavoritePeople_AddListRemove(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "a@b.com", testutil.UserPassword)

	w := s.do(t, http.MethodPost, "/favorite/people/3", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/favorite/people/3", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodGet, "/users/favorites", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := decode[application.UserView](t, w)
	require.Len(t, user.Favorites, 1)
	require.NotNil(t, user.Favorites[0].People)
	assert.Equal(t, "Yoda", *user.Favorites[0].People)

	w = s.do(t, http.MethodDelete, "/favorite/people/3", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, testutil.CountFavorites(t, s.db))
}

func TestFavorites_UnknownTarget(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "a@b.com", testutil.UserPassword)

	w := s.do(t, http.MethodPost, "/favorite/planet/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "invalid planet id", msg(t, w))

	w = s.do(t, http.MethodPost, "/favorite/people/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "invalid people id", msg(t, w))

	assert.Equal(t, 0, testutil.CountFavorites(t, s.db))
}

func TestFavorites_RequireToken(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
	}{
		{"missing header", http.MethodPost, "/favorite/planet/1", ""},
		{"garbage token", http.MethodPost, "/favorite/planet/1", "not-a-jwt"},
		{"delete without token", http.MethodDelete, "/favorite/people/1", ""},
		{"list without token", http.MethodGet, "/users/favorites", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, tt.method, tt.path, tt.token, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.NotEmpty(t, msg(t, w))
		})
	}
	assert.Equal(t, 0, testutil.CountFavorites(t, s.db))
}

func TestFavorites_InvalidPathID(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "a@b.com", testutil.UserPassword)

	for _, path := range []string{"/favorite/planet/abc", "/favorite/planet/0", "/favorite/people/-4"} {
		w := s.do(t, http.MethodPost, path, token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, "invalid id", msg(t, w))
	}
}

func TestIDsBeyondInt32Range(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "a@b.com", testutil.UserPassword)

	w := s.do(t, http.MethodGet, "/planets/3000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "planet was not found", msg(t, w))

	w = s.do(t, http.MethodPost, "/favorite/planet/3000000000", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "invalid planet id", msg(t, w))

	w = s.do(t, http.MethodDelete, "/favorite/people/9223372036854775807", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "invalid people id", msg(t, w))

	// past int64 the id never reaches the store
	w = s.do(t, http.MethodGet, "/users/9223372036854775808", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid id", msg(t, w))

	assert.Equal(t, 0, testutil.CountFavorites(t, s.db))
}

// =============================================================================
// Login
// =============================================================================

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		body   any
		status int
		msg    string
	}{
		{"wrong password", map[string]string{"email": "a@b.com", "password": "nope"}, http.StatusUnauthorized, "Bad username or password"},
		{"unknown user", map[string]string{"email": "who@b.com", "password": "x"}, http.StatusUnauthorized, "Bad username or password"},
		{"inactive user", map[string]string{"email": "gone@b.com", "password": testutil.UserPassword}, http.StatusUnauthorized, "Bad username or password"},
		{"missing password", map[string]string{"email": "a@b.com"}, http.StatusBadRequest, "password is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/login", "", tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.msg, msg(t, w))
		})
	}
}

func TestLogin_MalformedBody(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =============================================================================
// Read endpoints
// =============================================================================

func TestCatalogEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/planets", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	planets := decode[[]application.PlanetView](t, w)
	require.Len(t, planets, 2)
	assert.Equal(t, "Tatooine", planets[0].Name)
	require.Len(t, planets[0].Residents, 1)
	assert.Equal(t, "Luke Skywalker", planets[0].Residents[0].Name)

	w = s.do(t, http.MethodGet, "/planets/2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alderaan", decode[application.PlanetView](t, w).Name)

	w = s.do(t, http.MethodGet, "/planets/42", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "planet was not found", msg(t, w))

	w = s.do(t, http.MethodGet, "/people", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]application.PersonView](t, w), 3)
	assert.NotContains(t, w.Body.String(), "homeworld")

	w = s.do(t, http.MethodGet, "/people/42", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "person not found", msg(t, w))

	w = s.do(t, http.MethodGet, "/people/x", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/users", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := decode[[]application.UserView](t, w)
	assert.Len(t, users, 3)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "is_active")

	w = s.do(t, http.MethodGet, "/users/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a@b.com", decode[application.UserView](t, w).Email)

	w = s.do(t, http.MethodGet, "/users/99", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "user not found", msg(t, w))
}

// =============================================================================
// Routing surface
// =============================================================================

func TestSitemap(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sitemap struct {
		Routes []struct {
			Method string `json:"method"`
			Path   string `json:"path"`
		} `json:"routes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sitemap))

	seen := map[string]bool{}
	for _, r := range sitemap.Routes {
		seen[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /planets", "GET /people/:id", "POST /login",
		"GET /users/favorites", "POST /favorite/planet/:id", "DELETE /favorite/people/:id",
	} {
		assert.True(t, seen[want], want)
	}
}

func TestUnknownRouteAndMethod(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/starships", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "route not found", msg(t, w))

	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID), "global middleware runs for unmatched routes")

	w = s.do(t, http.MethodPut, "/planets", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "method not allowed", msg(t, w))
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, w)["status"])

	w = s.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "starwars_test_http_requests_total")

	w = s.do(t, http.MethodGet, "/debug/vars", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS_AllowAllOrigins(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/planets", nil)
	req.Header.Set("Origin", "http://example.test")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
