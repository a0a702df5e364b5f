package akima

import (
	"fmt"

	"github.com/npillmayer/pathsmooth"
)

// Nullpath creates an empty path, to be extended by subsequent builder
// calls. The following example builds a path of three waypoints:
//
//	path := Nullpath().Knot(P(0,0)).Knot(P(1,2)).Knot(P(2,3)).End()
//
// Calling End() returns the path, ready to be smoothed by Smooth(path).
func Nullpath() *Path {
	return &Path{}
}

// FromPairs creates a path from a sequence of waypoints. The sequence is
// copied.
func FromPairs(pts []pathsmooth.Pair) *Path {
	path := &Path{points: make([]pathsmooth.Pair, len(pts))}
	copy(path.points, pts)
	return path
}

// FromXY creates a path from separate x and y coordinate slices.
func FromXY(xs, ys []float64) (*Path, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x-values, %d y-values", ErrMismatchedCoordinates, len(xs), len(ys))
	}
	path := &Path{points: make([]pathsmooth.Pair, len(xs))}
	for i := range xs {
		path.points[i] = pathsmooth.P(xs[i], ys[i])
	}
	return path, nil
}

// Knot appends a waypoint to a path. Part of builder functionality.
func (path *Path) Knot(p pathsmooth.Pair) *Path {
	path.points = append(path.points, p)
	return path
}

// End an open path. Part of builder functionality.
func (path *Path) End() *Path {
	return path
}

// N returns the number of waypoints.
func (path *Path) N() int {
	return len(path.points)
}

// Z returns waypoint i.
func (path *Path) Z(i int) pathsmooth.Pair {
	return path.points[i]
}

// Waypoints returns a copy of all waypoints.
func (path *Path) Waypoints() []pathsmooth.Pair {
	pts := make([]pathsmooth.Pair, len(path.points))
	copy(pts, path.points)
	return pts
}
