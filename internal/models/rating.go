package models

import "time"

// Rating modes.
const (
	ModeTR  = "tr"
	ModeTFR = "tfr"
)

// ComponentRating is one skill component of a rating: the grade on the
// 20-80 scale, the underlying stat rate it was derived from, and where
// that rate sits in the reference cohort.
type ComponentRating struct {
	Name       string  `json:"name"`
	Grade      float64 `json:"grade"`
	Rate       float64 `json:"rate"`
	Percentile float64 `json:"percentile"`
}

// RatingMetrics carries the outcome numbers behind the overall rating.
// FIP is set for pitchers, WOBA for batters.
type RatingMetrics struct {
	FIP         float64 `json:"fip,omitempty"`
	WOBA        float64 `json:"woba,omitempty"`
	WAR         float64 `json:"war"`
	ProjectedIP float64 `json:"projected_ip,omitempty"`
	ProjectedPA float64 `json:"projected_pa,omitempty"`
}

// RatingSample describes how much observed data backed the rating.
type RatingSample struct {
	EffectiveIP float64 `json:"effective_ip,omitempty"`
	EffectivePA float64 `json:"effective_pa,omitempty"`
	Confidence  float64 `json:"confidence"`
}

// RatingResult is one computed rating for one player in one mode.
type RatingResult struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Class      string `json:"class"`
	Role       string `json:"role"`
	Age        int    `json:"age"`
	AsOfYear   int    `json:"as_of_year"`
	Stage      string `json:"stage"`
	Mode       string `json:"mode"`
	Revision   string `json:"revision"`

	// Overall is on the half-star scale, 0.5 through 5.0.
	Overall           float64           `json:"overall"`
	OverallPercentile float64           `json:"overall_percentile"`
	Components        []ComponentRating `json:"components"`
	Metrics           RatingMetrics     `json:"metrics"`
	Sample            RatingSample      `json:"sample"`

	ComputedAt time.Time `json:"computed_at"`
}

// RatingPair bundles both modes for the mode=both endpoint response.
type RatingPair struct {
	Current *RatingResult `json:"current"`
	Future  *RatingResult `json:"future"`
}
