package models

// Player classification constants used across storage, services and the
// rating pipeline. Two-way players get one row per class.
const (
	ClassPitcher = "pitcher"
	ClassBatter  = "batter"
)

// Roles within a class.
const (
	RoleStarter  = "sp"
	RoleReliever = "rp"
	RoleBatter   = "bat"
)

// League levels as stored in ClickHouse. Ordered top to bottom.
const (
	LevelMLB    = "mlb"
	LevelAAA    = "aaa"
	LevelAA     = "aa"
	LevelHighA  = "hia"
	LevelSingle = "a"
	LevelRookie = "rk"
)

// SeasonStatLine is one player-season-level row of counting stats as
// exported by the sim. Pitching and batting columns coexist; which side is
// meaningful depends on Class.
type SeasonStatLine struct {
	PlayerID string `json:"player_id"`
	Year     int    `json:"year"`
	Age      int    `json:"age"`
	Level    string `json:"level"`
	Class    string `json:"class"`

	// Pitching
	IP            Innings `json:"ip,omitempty"`
	BattersFaced  uint32  `json:"batters_faced,omitempty"`
	PitchSO       uint32  `json:"pitch_so,omitempty"`
	PitchBB       uint32  `json:"pitch_bb,omitempty"`
	PitchHR       uint32  `json:"pitch_hr,omitempty"`
	PitchHits     uint32  `json:"pitch_h,omitempty"`
	GamesStarted  uint32  `json:"gs,omitempty"`
	GamesRelieved uint32  `json:"gr,omitempty"`

	// Batting
	PA      uint32 `json:"pa,omitempty"`
	Hits    uint32 `json:"h,omitempty"`
	Doubles uint32 `json:"double,omitempty"`
	Triples uint32 `json:"triple,omitempty"`
	HR      uint32 `json:"hr,omitempty"`
	BB      uint32 `json:"bb,omitempty"`
	SO      uint32 `json:"so,omitempty"`
}

// IsMLB reports whether the line was recorded at the top level.
func (s *SeasonStatLine) IsMLB() bool {
	return s.Level == LevelMLB
}

// Sample returns the line's sample size in the class's native unit:
// innings pitched for pitchers, plate appearances for batters.
func (s *SeasonStatLine) Sample() float64 {
	if s.Class == ClassPitcher {
		return float64(s.IP)
	}
	return float64(s.PA)
}
