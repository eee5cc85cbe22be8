package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/dugoutlabs/ratings-api/internal/rating"
)

type rebuildRequest struct {
	Year  int    `json:"year" validate:"omitempty,gte=1900,lte=2100"`
	Stage string `json:"stage" validate:"omitempty,oneof=preseason early mid late complete"`
}

// RebuildBoards queues a full leaderboard rebuild
// @Summary Rebuild rating boards
// @Description Queues a rating job for every active player in both classes. Year and stage default to the current season.
// @Tags System
// @Accept json
// @Produce json
// @Security InternalToken
// @Success 202 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /internal/rebuild [post]
func (h *Handler) RebuildBoards(w http.ResponseWriter, r *http.Request) {
	var req rebuildRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(io.LimitReader(r.Body, MaxBodySize)).Decode(&req); err != nil {
			h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
	}
	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid rebuild request: "+err.Error())
		return
	}

	now := h.now().UTC()
	year := now.Year()
	stage := rating.StageForMonth(now.Month())
	if req.Year != 0 {
		year = req.Year
	}
	if req.Stage != "" {
		s, err := rating.ParseStage(req.Stage)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		stage = s
	}

	// Rebuilds usually follow a data load. Drop the memoized cohorts so
	// the queued jobs rank against fresh distributions.
	h.distributions.Invalidate()

	runID, err := h.pool.RunFullBoard(r.Context(), year, stage)
	if err != nil {
		h.logger.Errorw("Failed to queue board rebuild", "year", year, "stage", stage.String(), "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to queue rebuild")
		return
	}

	h.logger.Infow("Board rebuild requested", "run", runID, "year", year, "stage", stage.String())
	h.jsonResponse(w, http.StatusAccepted, map[string]interface{}{
		"run_id": runID,
		"year":   year,
		"stage":  stage.String(),
		"status": "queued",
	})
}
