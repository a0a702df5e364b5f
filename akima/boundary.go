package akima

import (
	"github.com/npillmayer/pathsmooth"
)

// supportedPath is a raw path extended by two synthetic support points at
// each end. It is a view: the raw points are shared, indices are mapped
// with a fixed offset, and nothing is inserted into the raw sequence.
//
//	index:  0    1    2 .. n+1      n+2  n+3
//	point:  s1   s2   raw[0..n-1]   s4   s5
type supportedPath struct {
	raw   points
	front [supportCount]pathsmooth.Pair
	back  [supportCount]pathsmooth.Pair
}

// extend computes the support points of a raw path. The raw path needs at
// least 3 points; this is checked by Validate.
func extend(raw points) *supportedPath {
	sp := &supportedPath{raw: raw}
	first, last := raw.Z(0), raw.Z(raw.N()-1)
	n := raw.N() - 1
	// front, extrapolated from the first two segments
	x2 := a(raw, 1) - 2*a(raw, 0) + first.X()
	y2 := b(raw, 1) - 2*b(raw, 0) + first.Y()
	x1 := a(raw, 0) - 2*(first.X()-x2) + x2
	y1 := b(raw, 0) - 2*(first.Y()-y2) + y2
	sp.front = [supportCount]pathsmooth.Pair{pathsmooth.P(x1, y1), pathsmooth.P(x2, y2)}
	// back, extrapolated from the last two segments
	x4 := 2*a(raw, n-1) - a(raw, n-2) + last.X()
	y4 := 2*b(raw, n-1) - b(raw, n-2) + last.Y()
	x5 := 2*(x4-last.X()) - a(raw, n-1) + x4
	y5 := 2*(y4-last.Y()) - b(raw, n-1) + y4
	sp.back = [supportCount]pathsmooth.Pair{pathsmooth.P(x4, y4), pathsmooth.P(x5, y5)}
	tracer().Debugf("support points front %v %v, back %v %v",
		sp.front[0], sp.front[1], sp.back[0], sp.back[1])
	return sp
}

// N returns the number of points including support points.
func (sp *supportedPath) N() int {
	return sp.raw.N() + 2*supportCount
}

// Z returns point i of the extended sequence.
func (sp *supportedPath) Z(i int) pathsmooth.Pair {
	switch {
	case i < supportCount:
		return sp.front[i]
	case i < supportCount+sp.raw.N():
		return sp.raw.Z(i - supportCount)
	default:
		return sp.back[i-supportCount-sp.raw.N()]
	}
}

// isSupport is a predicate: is point i synthetic?
func (sp *supportedPath) isSupport(i int) bool {
	return i < supportCount || i >= supportCount+sp.raw.N()
}

// pmap maps a raw index to its index in the extended sequence.
func (sp *supportedPath) pmap(i int) int {
	return i + supportCount
}
