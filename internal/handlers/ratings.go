package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dugoutlabs/ratings-api/internal/logic"
	"github.com/dugoutlabs/ratings-api/internal/rating"
)

// GetPlayerRatings computes or serves a player's ratings
// @Summary Get player ratings
// @Description Current rating (tr), future rating (tfr) or both, for a given year and season stage
// @Tags Ratings
// @Produce json
// @Param playerID path string true "Player ID"
// @Param mode query string false "tr, tfr or both (default both)"
// @Param year query int false "Rating year, defaults to the current season"
// @Param stage query string false "preseason, early, mid, late or complete"
// @Success 200 {object} models.RatingPair
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /players/{playerID}/ratings [get]
func (h *Handler) GetPlayerRatings(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	ctx := r.Context()

	year, stage, err := h.seasonParams(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	switch mode := r.URL.Query().Get("mode"); mode {
	case "", "both":
		pair, err := h.ratings.Pair(ctx, playerID, year, stage)
		if err != nil {
			h.ratingError(w, playerID, err)
			return
		}
		h.jsonResponse(w, http.StatusOK, pair)

	case string(rating.ModeTR), string(rating.ModeTFR):
		result, err := h.ratings.Get(ctx, playerID, rating.Mode(mode), year, stage)
		if err != nil {
			h.ratingError(w, playerID, err)
			return
		}
		h.jsonResponse(w, http.StatusOK, result)

	default:
		h.errorResponse(w, http.StatusBadRequest, "Mode must be tr, tfr or both")
	}
}

// ratingError maps rating failures onto status codes. A missing input is
// the caller's to know about by name, not a server fault.
func (h *Handler) ratingError(w http.ResponseWriter, playerID string, err error) {
	var missing *rating.MissingDataError
	switch {
	case errors.Is(err, logic.ErrNotFound):
		h.errorResponse(w, http.StatusNotFound, "Player not found")
	case errors.As(err, &missing):
		h.errorResponse(w, http.StatusUnprocessableEntity, fmt.Sprintf("Cannot rate player: missing %s", missing.What))
	default:
		h.logger.Errorw("Failed to compute rating", "player", playerID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute rating")
	}
}
