package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"flowworks-backend/internal/cache"
	"flowworks-backend/internal/middleware"
	"flowworks-backend/internal/transport"

	"github.com/go-chi/chi/v5"
)

const listCacheKey = "services:all"

type Handler struct {
	service *Service
	cache   cache.Cache
	ttl     time.Duration
	log     *slog.Logger
}

func NewHandler(service *Service, c cache.Cache, ttl time.Duration, log *slog.Logger) *Handler {
	if c == nil {
		c = cache.NewNoop()
	}
	return &Handler{
		service: service,
		cache:   c,
		ttl:     ttl,
		log:     log,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	transport.ServeCached(w, r, h.cache, h.ttl, log, "services list", listCacheKey, func(ctx context.Context) (interface{}, error) {
		items, err := h.service.List(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"services": items}, nil
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("services get: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("services get: not found", slog.String("service_id", id))
			transport.WriteError(w, http.StatusNotFound, "service not found", nil)
			return
		}
		log.Error("services get: catalog error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "catalog error", nil)
		return
	}

	log.Info("services get: ok", slog.String("service_id", item.ID))
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
