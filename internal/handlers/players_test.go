package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/dugoutlabs/ratings-api/internal/logic"
	"github.com/dugoutlabs/ratings-api/internal/models"
)

func TestSearchPlayers(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		mockSearch     func(ctx context.Context, q string, limit int) ([]models.PlayerSummary, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "Happy Path",
			query: "q=vega",
			mockSearch: func(ctx context.Context, q string, limit int) ([]models.PlayerSummary, error) {
				if q != "vega" {
					t.Errorf("q = %q, want vega", q)
				}
				if limit != 25 {
					t.Errorf("limit = %d, want 25", limit)
				}
				return []models.PlayerSummary{
					{ID: "p1", Name: "Ramon Vega", Position: "SP", Class: models.ClassPitcher},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Ramon Vega",
		},
		{
			name:           "Query Too Short",
			query:          "q=v",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "at least 2 characters",
		},
		{
			name:           "Query Missing",
			query:          "",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "Limit Clamped",
			query: "q=vega&limit=9999",
			mockSearch: func(ctx context.Context, q string, limit int) ([]models.PlayerSummary, error) {
				if limit != 25 {
					t.Errorf("limit = %d, want clamp to 25", limit)
				}
				return []models.PlayerSummary{}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "Service Error",
			query: "q=vega",
			mockSearch: func(ctx context.Context, q string, limit int) ([]models.PlayerSummary, error) {
				return nil, errors.New("postgres down")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(Config{
				Players: &MockPlayerService{SearchPlayersFunc: tt.mockSearch},
			})

			req := httptest.NewRequest("GET", "/api/players/search?"+tt.query, nil)
			w := httptest.NewRecorder()

			h.SearchPlayers(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if tt.expectedBody != "" && !strings.Contains(w.Body.String(), tt.expectedBody) {
				t.Errorf("body %q missing %q", w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestGetPlayerProfile(t *testing.T) {
	tests := []struct {
		name           string
		playerID       string
		mockProfile    func(ctx context.Context, id string) (*models.PlayerProfile, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "Found",
			playerID: "p1",
			mockProfile: func(ctx context.Context, id string) (*models.PlayerProfile, error) {
				return &models.PlayerProfile{
					Player:      models.Player{ID: id, Name: "Ramon Vega", Class: models.ClassPitcher},
					HasScouting: true,
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Ramon Vega",
		},
		{
			name:     "Not Found",
			playerID: "ghost",
			mockProfile: func(ctx context.Context, id string) (*models.PlayerProfile, error) {
				return nil, logic.ErrNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Player not found",
		},
		{
			name:     "Service Error",
			playerID: "ghost",
			mockProfile: func(ctx context.Context, id string) (*models.PlayerProfile, error) {
				return nil, errors.New("postgres timeout")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(Config{
				Players: &MockPlayerService{GetProfileFunc: tt.mockProfile},
			})

			req := httptest.NewRequest("GET", "/api/players/"+tt.playerID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("playerID", tt.playerID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			h.GetPlayerProfile(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if tt.expectedBody != "" && !strings.Contains(w.Body.String(), tt.expectedBody) {
				t.Errorf("body %q missing %q", w.Body.String(), tt.expectedBody)
			}
		})
	}
}
