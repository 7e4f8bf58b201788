package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flowworks-backend/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRequestIDGeneratesAndPropagates(t *testing.T) {
	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, seen, 32)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "edge-1234abcd")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "edge-1234abcd", seen)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "bad id\nwith newline")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEqual(t, "bad id\nwith newline", seen)
	assert.Len(t, seen, 32)
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"https://flowworks.example"})(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/site", nil)
	req.Header.Set("Origin", "https://flowworks.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "https://flowworks.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/site", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://flowworks.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestRateLimiterWindow(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"))

	now = now.Add(time.Minute + time.Second)
	assert.True(t, rl.Allow("a"))
}

func TestRateLimiterDisabled(t *testing.T) {
	rl := NewRateLimiter(0, time.Minute)
	for i := 0; i < 10; i++ {
		assert.True(t, rl.Allow("a"))
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	h := rl.Middleware(okHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = "203.0.113.7:5000"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}

func TestRateLimiterSharesBucketAcrossPaths(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	h := rl.Middleware(okHandler)

	codes := make([]int, 0, 4)
	for _, path := range []string{"/api/contact", "/api/v1/contact", "/api/contact", "/api/v1/contact"} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.RemoteAddr = "203.0.113.9:4100"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)

	other := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	other.RemoteAddr = "198.51.100.4:4100"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAuth(t *testing.T) {
	manager := &auth.Manager{Secret: []byte("s"), AccessTTL: time.Minute, RefreshTTL: time.Hour, Issuer: "test"}
	h := AdminAuth("key-123", manager)(okHandler)

	plain := httptest.NewRecorder()
	h.ServeHTTP(plain, httptest.NewRequest(http.MethodGet, "/api/admin/contacts", nil))
	assert.Equal(t, http.StatusUnauthorized, plain.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/contacts", nil)
	req.Header.Set("X-Admin-Key", "key-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	access, err := manager.NewAccessToken("admin", auth.RoleAdmin)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/admin/contacts", nil)
	req.AddCookie(&http.Cookie{Name: auth.AccessCookie, Value: access})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	refresh, err := manager.NewRefreshToken("admin", auth.RoleAdmin)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/admin/contacts", nil)
	req.AddCookie(&http.Cookie{Name: auth.AccessCookie, Value: refresh})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuthNotConfigured(t *testing.T) {
	h := AdminAuth("", nil)(okHandler)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
