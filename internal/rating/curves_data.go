package rating

import "github.com/dugoutlabs/ratings-api/internal/models"

// Development age tracks, calibrated offline against six seasons of sim
// history. Each component gets four tracks bucketed by peak rate; the
// composite FIP and wOBA tracks drive the overall star rating. Ages span
// 19-30; development is treated as complete at 30.

func ageTrack(v19, v21, v23, v25, v27, v30 float64) Table {
	return NewTable(PolicyInterpolate,
		Breakpoint{19, v19},
		Breakpoint{21, v21},
		Breakpoint{23, v23},
		Breakpoint{25, v25},
		Breakpoint{27, v27},
		Breakpoint{30, v30},
	)
}

var componentCurves = map[Component]DevCurve{
	CompK9: {buckets: []devBucket{
		{0, ageTrack(5.5, 6.3, 7.0, 7.5, 7.8, 7.9)},
		{8.5, ageTrack(6.2, 7.1, 7.9, 8.5, 8.9, 9.0)},
		{9.5, ageTrack(6.8, 7.8, 8.8, 9.5, 9.9, 10.0)},
		{10.5, ageTrack(7.4, 8.6, 9.7, 10.6, 11.0, 11.2)},
	}},
	CompBB9: {buckets: []devBucket{
		{0, ageTrack(3.6, 3.1, 2.7, 2.4, 2.2, 2.1)},
		{2.4, ageTrack(4.2, 3.7, 3.3, 3.0, 2.8, 2.7)},
		{3.1, ageTrack(4.8, 4.3, 3.9, 3.6, 3.4, 3.3)},
		{3.8, ageTrack(5.6, 5.0, 4.6, 4.3, 4.1, 4.0)},
	}},
	CompHR9: {buckets: []devBucket{
		{0, ageTrack(1.15, 1.02, 0.92, 0.84, 0.79, 0.77)},
		{0.85, ageTrack(1.32, 1.20, 1.10, 1.03, 0.99, 0.97)},
		{1.10, ageTrack(1.50, 1.38, 1.28, 1.21, 1.17, 1.15)},
		{1.35, ageTrack(1.72, 1.60, 1.50, 1.43, 1.39, 1.37)},
	}},
	CompKPct: {buckets: []devBucket{
		{0, ageTrack(22.0, 19.5, 17.3, 15.6, 14.8, 14.5)},
		{16, ageTrack(25.5, 23.0, 20.8, 19.1, 18.3, 18.0)},
		{20, ageTrack(29.0, 26.5, 24.3, 22.6, 21.8, 21.5)},
		{24, ageTrack(32.5, 30.0, 27.8, 26.1, 25.3, 25.0)},
	}},
	CompBBPct: {buckets: []devBucket{
		{0, ageTrack(4.2, 5.0, 5.8, 6.4, 6.8, 7.0)},
		{7, ageTrack(5.2, 6.3, 7.4, 8.3, 8.8, 9.0)},
		{9, ageTrack(6.2, 7.5, 8.9, 10.0, 10.6, 10.8)},
		{11.5, ageTrack(7.2, 8.8, 10.5, 12.0, 12.8, 13.0)},
	}},
	CompHRPct: {buckets: []devBucket{
		{0, ageTrack(0.9, 1.2, 1.6, 1.9, 2.0, 2.1)},
		{2.2, ageTrack(1.5, 2.0, 2.5, 2.9, 3.1, 3.2)},
		{3.5, ageTrack(2.0, 2.7, 3.4, 4.0, 4.3, 4.4)},
		{4.8, ageTrack(2.6, 3.5, 4.5, 5.3, 5.7, 5.8)},
	}},
	CompHitPct: {buckets: []devBucket{
		{0, ageTrack(16.4, 17.4, 18.3, 19.0, 19.3, 19.4)},
		{19, ageTrack(17.9, 19.0, 20.0, 20.8, 21.1, 21.2)},
		{21.5, ageTrack(19.2, 20.4, 21.5, 22.3, 22.7, 22.8)},
		{23.5, ageTrack(20.6, 21.9, 23.1, 24.0, 24.4, 24.5)},
	}},
	CompGapPct: {buckets: []devBucket{
		{0, ageTrack(2.7, 3.1, 3.4, 3.7, 3.8, 3.9)},
		{4.0, ageTrack(3.4, 3.9, 4.3, 4.6, 4.8, 4.9)},
		{5.0, ageTrack(4.0, 4.6, 5.1, 5.5, 5.7, 5.8)},
		{6.0, ageTrack(4.6, 5.3, 5.9, 6.4, 6.6, 6.7)},
	}},
	CompTriplePct: {buckets: []devBucket{
		{0, ageTrack(0.18, 0.22, 0.25, 0.27, 0.28, 0.28)},
		{0.35, ageTrack(0.32, 0.38, 0.43, 0.46, 0.48, 0.48)},
		{0.55, ageTrack(0.50, 0.59, 0.66, 0.71, 0.73, 0.73)},
		{0.85, ageTrack(0.72, 0.85, 0.96, 1.03, 1.06, 1.06)},
	}},
}

// CurveFor returns the development curve for a component.
func CurveFor(c Component) DevCurve { return componentCurves[c] }

// Composite tracks for the overall star rating, bucketed by peak FIP and
// peak wOBA.
var (
	curveFIP = DevCurve{buckets: []devBucket{
		{0, ageTrack(4.45, 4.00, 3.55, 3.20, 3.02, 2.95)},
		{3.2, ageTrack(4.85, 4.45, 4.05, 3.75, 3.60, 3.55)},
		{3.8, ageTrack(5.30, 4.92, 4.56, 4.30, 4.17, 4.12)},
		{4.4, ageTrack(5.80, 5.45, 5.12, 4.88, 4.76, 4.72)},
	}}
	curveWOBA = DevCurve{buckets: []devBucket{
		{0, ageTrack(0.252, 0.268, 0.283, 0.294, 0.300, 0.302)},
		{0.305, ageTrack(0.270, 0.288, 0.305, 0.318, 0.324, 0.326)},
		{0.330, ageTrack(0.286, 0.306, 0.325, 0.339, 0.346, 0.348)},
		{0.355, ageTrack(0.302, 0.324, 0.345, 0.361, 0.369, 0.371)},
	}}
)

// CompositeCurve returns the overall-metric curve for a class.
func CompositeCurve(class string) DevCurve {
	if class == models.ClassPitcher {
		return curveFIP
	}
	return curveWOBA
}
