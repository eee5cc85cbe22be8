package rating

import (
	"errors"
	"fmt"
)

// MissingDataError reports a required input that was absent. Thin samples
// are never missing data; they shift weight toward scouting instead. This
// error fires only when a path has nothing to stand on: no scouting
// profile on the future-rating path, an unknown age, or a player with
// neither observed stats nor a grade sheet.
type MissingDataError struct {
	PlayerID string
	What     string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("player %s: missing %s", e.PlayerID, e.What)
}

// IsMissingData reports whether err wraps a MissingDataError.
func IsMissingData(err error) bool {
	var m *MissingDataError
	return errors.As(err, &m)
}

// ErrEmptyDistribution is returned when a percentile lookup hits a
// reference distribution with no members.
var ErrEmptyDistribution = errors.New("rating: empty reference distribution")

// ErrUnknownMode is returned for modes other than TR and TFR.
var ErrUnknownMode = errors.New("rating: unknown rating mode")

// ErrUnknownClass is returned for classes other than pitcher and batter.
var ErrUnknownClass = errors.New("rating: unknown player class")
