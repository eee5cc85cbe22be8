package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dugoutlabs/ratings-api/internal/rating"
)

// Health check endpoint
// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"revision":  h.ratings.Revision(),
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint
// @Summary Readiness probe
// @Description Reports per-dependency health and the rating queue backlog
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /ready [get]
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Check all dependencies
	checks := map[string]bool{
		"postgres":   h.pg.Ping(ctx) == nil,
		"clickhouse": h.ch.Ping(ctx) == nil,
		"redis":      h.redis.Ping(ctx).Err() == nil,
	}

	ready := true
	for _, ok := range checks {
		if !ok {
			ready = false
			break
		}
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	w.Header().Set("Cache-Control", "no-store")
	h.jsonResponse(w, status, map[string]interface{}{
		"ready":      ready,
		"checks":     checks,
		"queueDepth": h.pool.QueueDepth(),
	})
}

// InternalAuthMiddleware guards the operational endpoints with the
// deploy-time internal token.
func (h *Handler) InternalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Internal-Token")
		if token == "" {
			token = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		}

		// An unset token closes the endpoints entirely.
		if h.internalToken == "" || token != h.internalToken {
			h.errorResponse(w, http.StatusUnauthorized, "Missing or invalid internal token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// CacheControl marks responses cacheable for maxAge so a reverse proxy
// can absorb repeat reads.
func CacheControl(maxAge time.Duration) func(http.Handler) http.Handler {
	value := fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds()))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", value)
			next.ServeHTTP(w, r)
		})
	}
}

// seasonParams resolves the year and stage query parameters, defaulting
// both from the calendar.
func (h *Handler) seasonParams(r *http.Request) (int, rating.Stage, error) {
	now := h.now().UTC()
	year := now.Year()
	stage := rating.StageForMonth(now.Month())

	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1900 || y > 2100 {
			return 0, 0, fmt.Errorf("invalid year %q", v)
		}
		year = y
	}
	if v := r.URL.Query().Get("stage"); v != "" {
		s, err := rating.ParseStage(v)
		if err != nil {
			return 0, 0, err
		}
		stage = s
	}
	return year, stage, nil
}

// parseIntParam reads an integer query parameter with a fallback.
func parseIntParam(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}
