package transport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"flowworks-backend/internal/cache"
)

// buildTimeout bounds payload construction on a cache miss.
const buildTimeout = 5 * time.Second

// ServeCached answers from c when possible, otherwise builds the payload,
// stores it under key for ttl and writes it. Cache failures are logged and
// only cost a rebuild. op prefixes every log message.
func ServeCached(w http.ResponseWriter, r *http.Request, c cache.Cache, ttl time.Duration, log *slog.Logger, op, key string, build func(ctx context.Context) (interface{}, error)) {
	if cached, ok, err := c.Get(r.Context(), key); err == nil && ok {
		log.Info(op+": cache hit", slog.String("key", key))
		WriteRaw(w, http.StatusOK, cached)
		return
	} else if err != nil {
		log.Warn(op+": cache read failed", slog.String("error", err.Error()))
	}

	ctx, cancel := context.WithTimeout(r.Context(), buildTimeout)
	defer cancel()

	payload, err := build(ctx)
	if err != nil {
		log.Error(op+": catalog error", slog.String("error", err.Error()))
		WriteError(w, http.StatusInternalServerError, "catalog error", nil)
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		log.Error(op+": encode error", slog.String("error", err.Error()))
		WriteError(w, http.StatusInternalServerError, "encode error", nil)
		return
	}
	if err := c.Set(r.Context(), key, raw, ttl); err != nil {
		log.Warn(op+": cache write failed", slog.String("error", err.Error()))
	}

	log.Info(op+": ok", slog.String("key", key))
	WriteRaw(w, http.StatusOK, raw)
}
