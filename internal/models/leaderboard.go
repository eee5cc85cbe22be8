package models

import "time"

// BoardEntry is one row of the precomputed rating board. The worker pool
// writes these to Redis; the leaderboard endpoint reads them back ranked
// by WAR.
type BoardEntry struct {
	Rank       int     `json:"rank"`
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Class      string  `json:"class"`
	Role       string  `json:"role"`
	Age        int     `json:"age"`
	Current    float64 `json:"current"`
	Future     float64 `json:"future"`
	WAR        float64 `json:"war"`
}

// Board is the leaderboard endpoint payload.
type Board struct {
	Class    string       `json:"class"`
	Year     int          `json:"year"`
	Stage    string       `json:"stage"`
	Building bool         `json:"building,omitempty"`
	BuiltAt  time.Time    `json:"built_at,omitempty"`
	Entries  []BoardEntry `json:"entries"`
}
