package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dugoutlabs/ratings-api/internal/logic"
)

// SearchPlayers finds players by name prefix or ID
// @Summary Search players
// @Description Case-insensitive name search across the roster
// @Tags Players
// @Produce json
// @Param q query string true "Search term, at least 2 characters"
// @Param limit query int false "Maximum results, default 25"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /players/search [get]
func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if len(q) < 2 {
		h.errorResponse(w, http.StatusBadRequest, "Search term must be at least 2 characters")
		return
	}

	limit := parseIntParam(r, "limit", 25)
	if limit < 1 || limit > 100 {
		limit = 25
	}

	players, err := h.players.SearchPlayers(r.Context(), q, limit)
	if err != nil {
		h.logger.Errorw("Failed to search players", "q", q, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Search failed")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"players": players,
		"count":   len(players),
	})
}

// GetPlayerProfile returns roster data plus career touchstones
// @Summary Get player profile
// @Tags Players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} models.PlayerProfile
// @Failure 404 {object} map[string]string
// @Router /players/{playerID} [get]
func (h *Handler) GetPlayerProfile(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	profile, err := h.players.GetProfile(r.Context(), playerID)
	if err != nil {
		if errors.Is(err, logic.ErrNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Player not found")
			return
		}
		h.logger.Errorw("Failed to load player profile", "player", playerID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to load player profile")
		return
	}

	h.jsonResponse(w, http.StatusOK, profile)
}
