package rating

import "math"

// DevCurve maps player age to the expected stat value along a development
// path. Buckets split the curve by peak ability so an elite ceiling and a
// fringe ceiling develop along different tracks; Floor is the inclusive
// lower bound of the peak-rate range the bucket covers.
type DevCurve struct {
	buckets []devBucket
}

type devBucket struct {
	floor float64
	curve Table // age -> expected value, interpolated
}

// BucketFor selects the development track for a peak rate value.
func (dc DevCurve) BucketFor(peakRate float64) Table {
	out := dc.buckets[0].curve
	for _, b := range dc.buckets {
		if peakRate >= b.floor {
			out = b.curve
		} else {
			break
		}
	}
	return out
}

// DevInput is one development-curve resolution.
type DevInput struct {
	Curve        Table   // the selected age track
	TFR          float64 // peak rating on the output scale
	ScaleMin     float64 // 20 for grades, 0.5 for stars
	Age          float64
	HigherBetter bool

	// Observed performance; Actual is NaN when nothing qualified.
	Actual      float64
	Sample      float64
	Stab        float64
	Sensitivity float64
}

// ResolveDevelopment walks a peak rating back to the present: a fraction
// of the peak from the age track, nudged by how the player's observed
// rate compares to the track's expectation, the nudge shrunk by sample
// size. The result never exceeds the peak rating and never drops below
// the scale minimum. Past the track's last age, development is complete
// and the current rating equals the peak rating.
func ResolveDevelopment(in DevInput) float64 {
	minAge, maxAge := in.Curve.Min(), in.Curve.Max()
	if in.Age >= maxAge {
		return in.TFR
	}

	var f float64
	if in.HigherBetter {
		eMin := in.Curve.Lookup(minAge)
		eMax := in.Curve.Lookup(maxAge)
		if span := eMax - eMin; span != 0 {
			f = clamp((in.Curve.Lookup(in.Age)-eMin)/span, 0, 1)
		} else {
			f = 1
		}
	} else {
		f = clamp((in.Age-minAge)/(maxAge-minAge), 0, 1)
	}

	out := in.ScaleMin + (in.TFR-in.ScaleMin)*f

	if !math.IsNaN(in.Actual) && in.Sample > 0 {
		expected := in.Curve.Lookup(in.Age)
		if expected != 0 {
			dev := (in.Actual - expected) / expected
			if !in.HigherBetter {
				dev = -dev
			}
			dev *= in.Sample / (in.Sample + in.Stab)
			out += dev * in.Sensitivity
		}
	}

	return clamp(out, in.ScaleMin, in.TFR)
}
