package models

// Player is the master bio record kept in Postgres.
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BirthYear int    `json:"birth_year"`
	Bats      string `json:"bats,omitempty"`
	Throws    string `json:"throws,omitempty"`
	Position  string `json:"position"`
	Class     string `json:"class"`
}

// AgeAt returns the player's seasonal age for a given year (age on July 1
// by sim convention, which the export bakes into birth_year).
func (p *Player) AgeAt(year int) int {
	if p.BirthYear == 0 {
		return 0
	}
	return year - p.BirthYear
}

// PlayerSummary is the search-result row.
type PlayerSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Class    string `json:"class"`
}

// PlayerProfile is the full player endpoint payload: bio plus career
// season lines, newest first.
type PlayerProfile struct {
	Player      Player           `json:"player"`
	MLBSeasons  []SeasonStatLine `json:"mlb_seasons"`
	MinorLeague []SeasonStatLine `json:"minor_seasons,omitempty"`
	HasScouting bool             `json:"has_scouting"`
}
