package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rebookz-admin/internal/config"
	"rebookz-admin/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:         "test",
		AppPort:        "3000",
		ServerURL:      "http://localhost:5001",
		APIBaseURL:     "http://localhost:5001/api",
		APITimeout:     time.Second,
		SessionSecret:  "secret",
		SessionTTL:     time.Hour,
		SessionCookie:  "rebookz_session",
		SessionStore:   "memory",
		PageSize:       10,
		KeywordMode:    "live",
		LoginRateLimit: 2,
		LoginRateBurst: 5,
	}
}

func TestNewServer(t *testing.T) {
	c, err := newServer(testConfig(), session.NewMemoryStore())
	require.NoError(t, err)

	router := c.Routes()

	t.Run("Health Check", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"ok"`)
	})

	t.Run("Admin requires a session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/login", rr.Header().Get("Location"))
	})
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		store, closeStore, err := openStore(ctx, testConfig())
		require.NoError(t, err)
		defer closeStore()
		assert.IsType(t, &session.MemoryStore{}, store)
	})

	t.Run("Redis unreachable", func(t *testing.T) {
		cfg := testConfig()
		cfg.SessionStore = "redis"
		cfg.RedisAddr = "127.0.0.1:1"

		_, _, err := openStore(ctx, cfg)
		assert.ErrorContains(t, err, "failed to ping redis")
	})
}

func TestSweepOnce(t *testing.T) {
	c, err := newServer(testConfig(), session.NewMemoryStore())
	require.NoError(t, err)

	expired := &session.Session{ID: "s1", ExpiresAt: time.Now().Add(-time.Minute)}
	c.Workspaces().Get(expired)
	require.Equal(t, 1, c.Workspaces().Len())

	sweepOnce(context.Background(), session.NewMemoryStore(), c.Workspaces())
	assert.Equal(t, 0, c.Workspaces().Len())
}

func TestRun(t *testing.T) {
	origStart := startServerFunc
	defer func() { startServerFunc = origStart }()

	var gotAddr string
	startServerFunc = func(ctx context.Context, addr string, handler http.Handler) error {
		gotAddr = addr
		assert.NotNil(t, handler)
		return nil
	}

	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "8089")
	t.Setenv("SESSION_STORE", "memory")
	t.Setenv("KEYWORD_MODE", "submit")

	require.NoError(t, run())
	assert.Equal(t, ":8089", gotAddr)
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("SESSION_STORE", "etcd")

	assert.ErrorContains(t, run(), "load config")
}

func TestStartServer_Shutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- startServer(ctx, "127.0.0.1:0", http.NotFoundHandler()) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not shut down")
	}
}
