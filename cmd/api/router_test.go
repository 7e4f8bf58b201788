package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"flowworks-backend/internal/admin"
	"flowworks-backend/internal/cache"
	"flowworks-backend/internal/casestudies"
	"flowworks-backend/internal/config"
	"flowworks-backend/internal/contact"
	"flowworks-backend/internal/services"
	"flowworks-backend/internal/site"
	"flowworks-backend/internal/validation"

	"github.com/stretchr/testify/assert"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{
		FrontendOrigins:       []string{"https://flowworks.dev"},
		RateLimitContact:      2,
		RateLimitWindowSec:    60,
		AdminAPIKey:           "test-admin-key",
		ContactSuccessClearMs: 5000,
		PhoneDefaultRegion:    "US",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	val := validation.New("US")
	c := cache.NewMemory()

	return newRouter(routerDeps{
		cfg:         cfg,
		log:         logger,
		caseStudies: casestudies.NewHandler(casestudies.NewService(casestudies.NewRepository()), c, time.Minute, logger),
		services:    services.NewHandler(services.NewService(services.NewRepository()), c, time.Minute, logger),
		contact:     contact.NewHandler(contact.NewService(contact.NewMemoryRepository(), time.UTC, nil, "US"), val, logger, 5000),
		admin:       admin.NewHandler(nil, admin.Credentials{}, false, val, logger),
		site:        site.NewHandler(site.Info{SiteURL: "https://flowworks.dev"}, logger),
	})
}

func serve(h http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRoutesMountedOnBothPrefixes(t *testing.T) {
	router := testRouter(t)
	paths := []string{
		"/site",
		"/case-studies",
		"/case-studies/facets",
		"/case-studies/matrix",
		"/case-studies/stripe-invoicing",
		"/testimonials",
		"/services",
		"/services/crm-integration",
		"/phone/format?value=6502530000",
	}
	for _, prefix := range []string{"/api", "/api/v1"} {
		for _, p := range paths {
			rec := serve(router, http.MethodGet, prefix+p, "", nil)
			assert.Equal(t, http.StatusOK, rec.Code, prefix+p)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"), prefix+p)
		}
	}

	rec := serve(router, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminContactsRequireAuth(t *testing.T) {
	router := testRouter(t)

	rec := serve(router, http.MethodGet, "/api/admin/contacts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(router, http.MethodGet, "/api/v1/admin/contacts", "", map[string]string{"X-Admin-Key": "test-admin-key"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"x"}`, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestContactIsRateLimited(t *testing.T) {
	router := testRouter(t)
	body := `{"name":"Dana","email":"dana@example.com","message":"Hello"}`
	headers := map[string]string{"X-Real-IP": "203.0.113.9"}

	accepted := 0
	for i := 0; i < 3; i++ {
		for _, prefix := range []string{"/api", "/api/v1"} {
			rec := serve(router, http.MethodPost, prefix+"/contact", body, headers)
			switch rec.Code {
			case http.StatusOK:
				accepted++
				assert.Contains(t, rec.Body.String(), `"success":true`)
			case http.StatusTooManyRequests:
				assert.Equal(t, "60", rec.Header().Get("Retry-After"))
			default:
				t.Fatalf("unexpected status %d on %s", rec.Code, prefix)
			}
		}
	}
	assert.Equal(t, 2, accepted)

	rec := serve(router, http.MethodPost, "/api/v1/contact", body, map[string]string{"X-Real-IP": "198.51.100.4"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	router := testRouter(t)
	rec := serve(router, http.MethodOptions, "/api/contact", "", map[string]string{
		"Origin":                        "https://flowworks.dev",
		"Access-Control-Request-Method": "POST",
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://flowworks.dev", rec.Header().Get("Access-Control-Allow-Origin"))
}
