package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dugoutlabs/ratings-api/internal/logic"
	"github.com/dugoutlabs/ratings-api/internal/rating"
)

// GetDistributionSummary describes one reference distribution
// @Summary Get distribution summary
// @Description Quartiles and extremes of the cohort distribution a rating percentile is read against
// @Tags Distributions
// @Produce json
// @Param metric path string true "Component or outcome metric, e.g. k9, woba, pitch_war"
// @Param cohort query string false "mlb-peak, prospect-pool or qual-pa (default mlb-peak)"
// @Param year query int false "Season year, defaults to the current season"
// @Param stage query string false "preseason, early, mid, late or complete"
// @Success 200 {object} rating.Summary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /distributions/{metric} [get]
func (h *Handler) GetDistributionSummary(w http.ResponseWriter, r *http.Request) {
	metric := chi.URLParam(r, "metric")
	cohort := r.URL.Query().Get("cohort")
	if cohort == "" {
		cohort = rating.CohortMLBPeak
	}

	year, stage, err := h.seasonParams(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.distributions.Summary(r.Context(), metric, cohort, year, stage)
	if err != nil {
		switch {
		case errors.Is(err, logic.ErrUnknownMetric), errors.Is(err, logic.ErrUnknownCohort):
			h.errorResponse(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, logic.ErrNotFound):
			h.errorResponse(w, http.StatusNotFound, "No distribution for that metric and cohort")
		default:
			h.logger.Errorw("Failed to summarize distribution",
				"metric", metric,
				"cohort", cohort,
				"error", err,
			)
			h.errorResponse(w, http.StatusInternalServerError, "Failed to summarize distribution")
		}
		return
	}

	h.jsonResponse(w, http.StatusOK, summary)
}
