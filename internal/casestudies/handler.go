package casestudies

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"flowworks-backend/internal/cache"
	"flowworks-backend/internal/httpx"
	"flowworks-backend/internal/middleware"
	"flowworks-backend/internal/transport"

	"github.com/go-chi/chi/v5"
)

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

// Routes mounts the public case-study endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/facets", h.Facets)
	r.Get("/matrix", h.Matrix)
	r.Get("/{id}", h.Get)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	q := r.URL.Query()

	criteria, err := ParseCriteria(q.Get("q"), httpx.QueryList(q, "industry"), httpx.QueryList(q, "function"))
	if err != nil {
		var catErr *CategoryError
		if errors.As(err, &catErr) {
			log.Warn("case studies list: unknown category", slog.String("field", catErr.Field), slog.String("value", catErr.Value))
			transport.WriteError(w, http.StatusBadRequest, "validation error", map[string]string{catErr.Field: "oneof"})
			return
		}
		transport.WriteError(w, http.StatusBadRequest, "invalid query", nil)
		return
	}

	h.serveCached(w, r, log, "case studies list", listCacheKey(criteria), func(ctx context.Context) (interface{}, error) {
		items, err := h.service.List(ctx, criteria)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"items": items,
			"total": len(items),
		}, nil
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("case studies get: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("case studies get: not found", slog.String("case_id", id))
			transport.WriteError(w, http.StatusNotFound, "case study not found", nil)
			return
		}
		log.Error("case studies get: catalog error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "catalog error", nil)
		return
	}

	log.Info("case studies get: ok", slog.String("case_id", item.ID), slog.Int("related", len(item.Related)))
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) Facets(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	h.serveCached(w, r, log, "case studies facets", "case-studies:facets", func(ctx context.Context) (interface{}, error) {
		return h.service.Facets(ctx)
	})
}

func (h *Handler) Matrix(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	h.serveCached(w, r, log, "case studies matrix", "case-studies:matrix", func(ctx context.Context) (interface{}, error) {
		return h.service.Matrix(ctx)
	})
}

func (h *Handler) Testimonials(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	h.serveCached(w, r, log, "testimonials list", "case-studies:testimonials", func(ctx context.Context) (interface{}, error) {
		items, err := h.service.Testimonials(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"items": items}, nil
	})
}

func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, log *slog.Logger, op, key string, build func(ctx context.Context) (interface{}, error)) {
	transport.ServeCached(w, r, h.cache, h.ttl, log, op, key, build)
}

// listCacheKey is independent of the order facet values were sent in.
func listCacheKey(c Criteria) string {
	industries := make([]string, 0, len(c.Industries))
	for _, v := range c.Industries {
		industries = append(industries, string(v))
	}
	functions := make([]string, 0, len(c.Functions))
	for _, v := range c.Functions {
		functions = append(functions, string(v))
	}
	slices.Sort(industries)
	slices.Sort(functions)
	return "case-studies:list:q=" + strings.ToLower(c.Query) +
		"|i=" + strings.Join(industries, ",") +
		"|f=" + strings.Join(functions, ",")
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
