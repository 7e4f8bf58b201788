// Package admin signs the site operator in and out with JWT cookies.
package admin

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"flowworks-backend/internal/auth"
	"flowworks-backend/internal/httpx"
	"flowworks-backend/internal/middleware"
	"flowworks-backend/internal/transport"
	"flowworks-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

// refreshCookiePath covers both /api/admin and /api/v1/admin.
const refreshCookiePath = "/api"

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type Credentials struct {
	Username     string
	PasswordHash string
}

// ErrWeakHash marks a stored hash generated below the configured cost.
var ErrWeakHash = errors.New("admin password hash below configured bcrypt cost")

// Check validates a configured hash. An empty hash means login is disabled
// and passes.
func (c Credentials) Check(minCost int) error {
	if c.PasswordHash == "" {
		return nil
	}
	cost, err := auth.HashCost(c.PasswordHash)
	if err != nil {
		return fmt.Errorf("admin password hash unreadable: %w", err)
	}
	if cost < minCost {
		return fmt.Errorf("%w: cost %d, want %d", ErrWeakHash, cost, minCost)
	}
	return nil
}

type Handler struct {
	manager *auth.Manager
	creds   Credentials
	secure  bool
	val     *validation.Validator
	log     *slog.Logger
}

// NewHandler accepts a nil manager; login then answers 503.
func NewHandler(manager *auth.Manager, creds Credentials, secureCookies bool, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		manager: manager,
		creds:   creds,
		secure:  secureCookies,
		val:     val,
		log:     log,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)
	r.Post("/logout", h.Logout)
}

func (h *Handler) configured() bool {
	return h.manager != nil && h.creds.PasswordHash != ""
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	var req LoginRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin login: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin login: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	if !h.configured() {
		log.Warn("admin login: not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.creds.Username)) == 1
	passErr := auth.ComparePassword(h.creds.PasswordHash, req.Password)
	if !userOK || passErr != nil {
		log.Warn("admin login: invalid credentials", slog.String("username", req.Username))
		transport.WriteError(w, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	if !h.issue(w, log, h.creds.Username) {
		return
	}
	log.Info("admin login: ok", slog.String("username", req.Username))
	transport.WriteJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	if h.manager == nil {
		log.Warn("admin refresh: not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
		return
	}

	cookie, err := r.Cookie(auth.RefreshCookie)
	if err != nil || cookie.Value == "" {
		log.Warn("admin refresh: missing refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}

	claims, err := h.manager.Parse(cookie.Value)
	if err != nil || claims.Role != auth.RoleAdmin || claims.Kind != auth.KindRefresh {
		log.Warn("admin refresh: invalid refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}

	if !h.issue(w, log, claims.Subject) {
		return
	}
	log.Info("admin refresh: ok", slog.String("username", claims.Subject))
	transport.WriteJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	h.setCookies(w, "", "", -1, -1)
	log.Info("admin logout: ok")
	transport.WriteJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

func (h *Handler) issue(w http.ResponseWriter, log *slog.Logger, subject string) bool {
	access, err := h.manager.NewAccessToken(subject, auth.RoleAdmin)
	if err != nil {
		log.Error("admin token: sign failed", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return false
	}
	refresh, err := h.manager.NewRefreshToken(subject, auth.RoleAdmin)
	if err != nil {
		log.Error("admin token: sign failed", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return false
	}
	h.setCookies(w, access, refresh, maxAge(h.manager.AccessTTL), maxAge(h.manager.RefreshTTL))
	return true
}

// setCookies writes both auth cookies. A negative max age clears them.
func (h *Handler) setCookies(w http.ResponseWriter, access, refresh string, accessAge, refreshAge int) {
	var expires time.Time
	if accessAge < 0 {
		expires = time.Unix(0, 0)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.AccessCookie,
		Value:    access,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   accessAge,
		Expires:  expires,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     auth.RefreshCookie,
		Value:    refresh,
		Path:     refreshCookiePath,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   refreshAge,
		Expires:  expires,
	})
}

func maxAge(ttl time.Duration) int {
	return int(ttl.Seconds())
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
