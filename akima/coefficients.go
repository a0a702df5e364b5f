package akima

import (
	"math"
)

// direction returns the blended direction cosines (cos θ, sin θ) at
// index i, mixing the directions of the segments before and after i,
// weighted by the co-linearity of their neighbours. If both weighted
// components vanish, or i has no forward neighbour segment, the direction
// of a single segment is used, see segmentDirection.
func direction(pts *supportedPath, i int) (float64, float64, error) {
	if i+1 >= pts.N()-1 || i < 2 {
		c, s := segmentDirection(pts, i)
		return c, s, nil
	}
	sNext, err := absS(pts, i, i+1)
	if err != nil {
		return 0, 0, err
	}
	sPrev, err := absS(pts, i-2, i-1)
	if err != nil {
		return 0, 0, err
	}
	a0 := sNext*a(pts, i-1) + sPrev*a(pts, i)
	b0 := sNext*b(pts, i-1) + sPrev*b(pts, i)
	if a0 == 0 && b0 == 0 {
		c, s := segmentDirection(pts, i)
		return c, s, nil
	}
	r0 := math.Hypot(a0, b0)
	return a0 / r0, b0 / r0, nil
}

// segmentDirection is the direction of segment i. Support segments may be
// reversed or of zero length, so for them the nearest segment between two
// waypoints stands in.
func segmentDirection(pts *supportedPath, i int) (float64, float64) {
	first, last := supportCount, pts.N()-supportCount-2
	if i < first {
		i = first
	} else if i > last {
		i = last
	}
	th := math.Atan2(b(pts, i), a(pts, i))
	return math.Cos(th), math.Sin(th)
}

// cubic computes the coefficients of the cubic over segment i, for x(z)
// and y(z), z ∈ [0,1]. The curve starts at point i with direction
// θ(i), ends at point i+1 with direction θ(i+1), and its tangent
// magnitude at either end equals the chord length r of the segment.
func cubic(pts *supportedPath, i int) (p, q [4]float64, err error) {
	ai, bi := a(pts, i), b(pts, i)
	r := math.Sqrt(ai*ai + bi*bi)
	cos0, sin0, err := direction(pts, i)
	if err != nil {
		return p, q, err
	}
	cos1, sin1, err := direction(pts, i+1)
	if err != nil {
		return p, q, err
	}
	z := pts.Z(i)
	p = [4]float64{
		z.X(),
		r * cos0,
		3*ai - r*(cos1+2*cos0),
		-2*ai + r*(cos1+cos0),
	}
	q = [4]float64{
		z.Y(),
		r * sin0,
		3*bi - r*(sin1+2*sin0),
		-2*bi + r*(sin1+sin0),
	}
	return p, q, nil
}
