// Package site serves the public settings the front end boots with and the
// health check.
package site

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"flowworks-backend/internal/transport"
)

type Info struct {
	SiteURL               string `json:"siteUrl"`
	CalendlyURL           string `json:"calendlyUrl"`
	ContactSuccessClearMs int    `json:"contactSuccessClearMs"`
}

// Check reports whether a dependency is reachable.
type Check func(ctx context.Context) error

type Handler struct {
	info   Info
	checks map[string]Check
	log    *slog.Logger
}

func NewHandler(info Info, log *slog.Logger) *Handler {
	return &Handler{info: info, checks: make(map[string]Check), log: log}
}

// AddCheck registers a dependency that Health pings.
func (h *Handler) AddCheck(name string, check Check) {
	h.checks[name] = check
}

func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, http.StatusOK, h.info)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := http.StatusOK
	results := make(map[string]string, len(names))
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			h.log.Warn("health check: failed", slog.String("dependency", name), slog.String("error", err.Error()))
			results[name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = "ok"
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}
	transport.WriteJSON(w, status, map[string]interface{}{
		"status":       overall,
		"dependencies": results,
	})
}
