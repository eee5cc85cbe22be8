package rating

import (
	"fmt"
	"time"
)

// Stage names where in the season cycle a rating is computed. It selects
// the year-weight vector: early in a season the in-progress year carries
// little weight, after the final standings it carries the most, and in
// the preseason it carries none.
type Stage int

const (
	StagePreseason Stage = iota
	StageEarly
	StageMid
	StageLate
	StageComplete

	numStages
)

var stageNames = [numStages]string{
	StagePreseason: "preseason",
	StageEarly:     "early",
	StageMid:       "mid",
	StageLate:      "late",
	StageComplete:  "complete",
}

func (s Stage) String() string {
	if s < 0 || s >= numStages {
		return "unknown"
	}
	return stageNames[s]
}

// ParseStage resolves a stage name from the API surface.
func ParseStage(name string) (Stage, error) {
	for s, n := range stageNames {
		if n == name {
			return Stage(s), nil
		}
	}
	return 0, fmt.Errorf("unknown season stage %q", name)
}

// StageForMonth derives the default stage from the calendar.
func StageForMonth(m time.Month) Stage {
	switch {
	case m <= time.March:
		return StagePreseason
	case m <= time.May:
		return StageEarly
	case m <= time.July:
		return StageMid
	case m <= time.September:
		return StageLate
	default:
		return StageComplete
	}
}

// Weights returns the stage's year-weight vector, current year first.
// The vector always sums to 10.
func (p Params) Weights(s Stage) [4]float64 {
	if s < 0 || s >= numStages {
		s = StageComplete
	}
	return p.StageWeights[s]
}
