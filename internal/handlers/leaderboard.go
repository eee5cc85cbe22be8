package handlers

import (
	"net/http"

	"github.com/dugoutlabs/ratings-api/internal/models"
)

// GetLeaderboard serves the precomputed rating board
// @Summary Get rating leaderboard
// @Description Players ranked by WAR for one class, year and stage. X-Board-State reports whether a rebuild is in flight.
// @Tags Ratings
// @Produce json
// @Param class query string true "pitchers or batters"
// @Param year query int false "Board year, defaults to the current season"
// @Param stage query string false "preseason, early, mid, late or complete"
// @Param limit query int false "Rows to return, default 50, max 200"
// @Success 200 {object} models.Board
// @Failure 400 {object} map[string]string
// @Router /leaderboard [get]
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	var class string
	switch r.URL.Query().Get("class") {
	case "pitchers":
		class = models.ClassPitcher
	case "batters":
		class = models.ClassBatter
	default:
		h.errorResponse(w, http.StatusBadRequest, "Class must be pitchers or batters")
		return
	}

	year, stage, err := h.seasonParams(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	limit := parseIntParam(r, "limit", 50)

	board, err := h.leaderboard.Board(r.Context(), class, year, stage, limit)
	if err != nil {
		h.logger.Errorw("Failed to load leaderboard", "class", class, "year", year, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to load leaderboard")
		return
	}

	state := "ready"
	if board.Building {
		state = "building"
	}
	w.Header().Set("X-Board-State", state)
	h.jsonResponse(w, http.StatusOK, board)
}
