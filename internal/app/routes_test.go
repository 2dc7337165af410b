package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/VihaFernando/TickTocker/internal/auth"
	"github.com/VihaFernando/TickTocker/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	r := gin.New()
	r.Use(cors.New(corsConfig(cfg.App)))
	Mount(r, cfg, Services{Sessions: auth.NewStore(rdb, time.Hour)})
	return r
}

func testConfig(env string) config.Config {
	var cfg config.Config
	cfg.App = config.AppConfig{Env: env, Version: "1.2.3", PublicURL: "https://tick.example"}
	return cfg
}

func TestMetaRoutes(t *testing.T) {
	r := newTestRouter(t, testConfig("dev"))

	cases := []struct {
		path string
		want string
	}{
		{"/health", `{"ok":true,"env":"dev"}`},
		{"/version", `{"version":"1.2.3"}`},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		assert.Equal(t, http.StatusOK, w.Code, tc.path)
		assert.JSONEq(t, tc.want, w.Body.String(), tc.path)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, w.Body.String(), `"api":"/api/v1"`)
}

func TestProtectedRoutesNeedSession(t *testing.T) {
	r := newTestRouter(t, testConfig("dev"))
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/timers"},
		{http.MethodPost, "/api/v1/timers"},
		{http.MethodGet, "/api/v1/timers/main"},
		{http.MethodDelete, "/api/v1/timers/00000000-0000-0000-0000-000000000001"},
		{http.MethodGet, "/api/v1/auth/me"},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, tc.method+" "+tc.path)
	}
}

func TestCORS(t *testing.T) {
	preflight := func(r *gin.Engine, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/timers", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	prod := newTestRouter(t, testConfig("production"))
	w := preflight(prod, "https://tick.example")
	assert.Equal(t, "https://tick.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	w = preflight(prod, "https://evil.example")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	dev := newTestRouter(t, testConfig("dev"))
	w = preflight(dev, "http://localhost:5173")
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
