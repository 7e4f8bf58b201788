package contact

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"flowworks-backend/internal/httpx"
	"flowworks-backend/internal/middleware"
	"flowworks-backend/internal/transport"
	"flowworks-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

const (
	successMessage = "Thanks for reaching out! We'll get back to you within one business day."
	failureMessage = "Something went wrong sending your message. Please try again or email us directly."
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
	clearMs int
	// dispatch runs post-submit notifications off the request path.
	dispatch func(func())
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger, clearAfterMs int) *Handler {
	return &Handler{
		service:  service,
		val:      val,
		log:      log,
		clearMs:  clearAfterMs,
		dispatch: func(fn func()) { go fn() },
	}
}

// AdminRoutes mounts inquiry management behind the admin middleware.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Get("/", h.AdminList)
	r.Get("/{id}", h.AdminGet)
	r.Patch("/{id}", h.AdminUpdateStatus)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req SubmitRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("contact submit: invalid json")
		transport.WriteJSON(w, http.StatusBadRequest, SubmitResponse{Success: false, Message: "invalid json"})
		return
	}
	req.Normalize()

	if err := h.val.Struct(req); err != nil {
		details := httpx.ValidationDetails(h.val.ValidationErrors(err))
		log.Warn("contact submit: validation error", slog.Int("fields", len(details)))
		transport.WriteJSON(w, http.StatusBadRequest, SubmitResponse{
			Success: false,
			Message: "validation error",
			Errors:  details,
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	inq, err := h.service.Submit(ctx, req, Meta{
		SourceIP:  middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		log.Error("contact submit: database error", slog.String("error", err.Error()))
		transport.WriteJSON(w, http.StatusInternalServerError, SubmitResponse{Success: false, Message: failureMessage})
		return
	}

	h.dispatch(func() {
		notifyCtx, notifyCancel := context.WithTimeout(context.Background(), 8*time.Second)
		defer notifyCancel()
		if err := h.service.Notify(notifyCtx, inq); err != nil {
			h.log.Warn("contact submit: notification failed",
				slog.String("inquiry_id", inq.ID),
				slog.String("error", err.Error()),
			)
		}
	})

	log.Info("contact submit: ok", slog.String("inquiry_id", inq.ID), slog.String("interest", inq.Interest))
	transport.WriteJSON(w, http.StatusOK, SubmitResponse{
		Success:      true,
		Message:      successMessage,
		ClearAfterMs: h.clearMs,
	})
}

func (h *Handler) FormatPhone(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, http.StatusOK, map[string]string{
		"formatted": h.service.FormatPhone(r.URL.Query().Get("value")),
	})
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	limit, offset, err := httpx.ParseLimitOffset(r.URL.Query(), 20, 100)
	if err != nil {
		log.Warn("admin contacts list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	filter := ListFilter{
		Status: r.URL.Query().Get("status"),
		Email:  r.URL.Query().Get("email"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, total, err := h.service.List(ctx, filter, limit, offset)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			transport.WriteError(w, http.StatusBadRequest, "invalid query", map[string]string{"status": "oneof"})
			return
		}
		log.Error("admin contacts list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items":  items,
		"limit":  limit,
		"offset": offset,
		"total":  total,
	})
}

func (h *Handler) AdminGet(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	inq, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			transport.WriteError(w, http.StatusNotFound, "inquiry not found", nil)
			return
		}
		log.Error("admin contacts get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, inq)
}

func (h *Handler) AdminUpdateStatus(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	var req StatusUpdateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	if err := h.val.Struct(req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	updated, err := h.service.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			transport.WriteError(w, http.StatusNotFound, "inquiry not found", nil)
		case errors.Is(err, ErrInvalidStatus):
			transport.WriteError(w, http.StatusBadRequest, "validation error", map[string]string{"status": "oneof"})
		default:
			log.Error("admin contacts update: database error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		}
		return
	}

	log.Info("admin contacts update: ok", slog.String("inquiry_id", updated.ID), slog.String("status", updated.Status))
	transport.WriteJSON(w, http.StatusOK, updated)
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
