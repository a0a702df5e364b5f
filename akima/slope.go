package akima

import (
	"fmt"
	"math"
)

// computeSlopes returns the chord slope b(i)/a(i) for every segment. The
// last point has no segment of its own and repeats the preceding slope.
//
// A segment between two waypoints with zero x-delta has no slope and is
// rejected. Support segments are synthetic: extrapolation may well turn
// them vertical or collapse them to a point. Their slope is NaN, which never
// matches another slope.
func computeSlopes(pts *supportedPath) ([]float64, error) {
	n := pts.N()
	m := make([]float64, n)
	for i := 0; i < n-1; i++ {
		ai := a(pts, i)
		if ai == 0 {
			if pts.isSupport(i) || pts.isSupport(i+1) {
				tracer().Debugf("support segment %d has zero x-delta", i)
				m[i] = math.NaN()
				continue
			}
			return nil, fmt.Errorf("%w between waypoints %d and %d", ErrDegenerateSegment,
				i-supportCount, i+1-supportCount)
		}
		m[i] = b(pts, i) / ai
	}
	m[n-1] = m[n-2]
	return m, nil
}
