package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/dugoutlabs/ratings-api/internal/logic"
	"github.com/dugoutlabs/ratings-api/internal/models"
	"github.com/dugoutlabs/ratings-api/internal/rating"
)

func ratingsRequest(t *testing.T, playerID, query string) *http.Request {
	t.Helper()
	req := httptest.NewRequest("GET", "/api/players/"+playerID+"/ratings?"+query, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("playerID", playerID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetPlayerRatings(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		mockGet        func(ctx context.Context, playerID string, mode rating.Mode, year int, stage rating.Stage) (*models.RatingResult, error)
		mockPair       func(ctx context.Context, playerID string, year int, stage rating.Stage) (*models.RatingPair, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "Default Serves Both Modes",
			query: "",
			mockPair: func(ctx context.Context, playerID string, year int, stage rating.Stage) (*models.RatingPair, error) {
				// The pinned clock puts August in the late stage.
				if year != 2026 || stage != rating.StageLate {
					t.Errorf("defaults = %d/%s, want 2026/late", year, stage)
				}
				return &models.RatingPair{
					Current: &models.RatingResult{PlayerID: playerID, Overall: 3.5},
					Future:  &models.RatingResult{PlayerID: playerID, Overall: 4.0},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"future"`,
		},
		{
			name:  "Explicit Year And Stage",
			query: "mode=tr&year=2024&stage=complete",
			mockGet: func(ctx context.Context, playerID string, mode rating.Mode, year int, stage rating.Stage) (*models.RatingResult, error) {
				if mode != rating.ModeTR {
					t.Errorf("mode = %s, want tr", mode)
				}
				if year != 2024 || stage != rating.StageComplete {
					t.Errorf("season = %d/%s, want 2024/complete", year, stage)
				}
				return &models.RatingResult{PlayerID: playerID, Mode: models.ModeTR, Overall: 3.0}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"overall":3`,
		},
		{
			name:  "Future Mode Only",
			query: "mode=tfr",
			mockGet: func(ctx context.Context, playerID string, mode rating.Mode, year int, stage rating.Stage) (*models.RatingResult, error) {
				if mode != rating.ModeTFR {
					t.Errorf("mode = %s, want tfr", mode)
				}
				return &models.RatingResult{PlayerID: playerID, Mode: models.ModeTFR}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown Mode",
			query:          "mode=wins",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "tr, tfr or both",
		},
		{
			name:           "Unknown Stage",
			query:          "stage=playoffs",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "unknown season stage",
		},
		{
			name:           "Bad Year",
			query:          "year=abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "Player Not Found",
			query: "",
			mockPair: func(ctx context.Context, playerID string, year int, stage rating.Stage) (*models.RatingPair, error) {
				return nil, fmt.Errorf("load player %s: %w", playerID, logic.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Player not found",
		},
		{
			name:  "Missing Scouting Input",
			query: "mode=tfr",
			mockGet: func(ctx context.Context, playerID string, mode rating.Mode, year int, stage rating.Stage) (*models.RatingResult, error) {
				return nil, &rating.MissingDataError{PlayerID: playerID, What: "scouting profile"}
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "missing scouting profile",
		},
		{
			name:  "Compute Error",
			query: "",
			mockPair: func(ctx context.Context, playerID string, year int, stage rating.Stage) (*models.RatingPair, error) {
				return nil, errors.New("clickhouse timeout")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(Config{
				Ratings: &MockRatingService{GetFunc: tt.mockGet, PairFunc: tt.mockPair},
			})

			w := httptest.NewRecorder()
			h.GetPlayerRatings(w, ratingsRequest(t, "p1", tt.query))

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedBody != "" && !strings.Contains(w.Body.String(), tt.expectedBody) {
				t.Errorf("body %q missing %q", w.Body.String(), tt.expectedBody)
			}
		})
	}
}
