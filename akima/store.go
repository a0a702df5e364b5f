package akima

import (
	"fmt"
	"math"

	"github.com/npillmayer/pathsmooth"
)

// Segment i runs from point i to point i+1.

func delta(pts points, i int) pathsmooth.Pair {
	return pts.Z(i+1) - pts.Z(i)
}

// x-delta of segment i
func a(pts points, i int) float64 {
	return pts.Z(i+1).X() - pts.Z(i).X()
}

// y-delta of segment i
func b(pts points, i int) float64 {
	return pts.Z(i+1).Y() - pts.Z(i).Y()
}

// S is the cross product of segments i and j. It is small for nearly
// parallel segments and is used as a co-linearity weight.
func S(pts points, i, j int) (float64, error) {
	if i == j {
		return 0, fmt.Errorf("%w: S(%d,%d)", ErrInvalidIndexPair, i, j)
	}
	if err := checkSegment(pts, i); err != nil {
		return 0, err
	}
	if err := checkSegment(pts, j); err != nil {
		return 0, err
	}
	return delta(pts, i).Cross(delta(pts, j)), nil
}

// |S(i,j)|, for callers which need the magnitude only.
func absS(pts points, i, j int) (float64, error) {
	s, err := S(pts, i, j)
	return math.Abs(s), err
}

// Euclidean chord length of segment i.
func segmentLength(pts points, i int) float64 {
	return math.Sqrt(a(pts, i)*a(pts, i) + b(pts, i)*b(pts, i))
}

func checkSegment(pts points, i int) error {
	if i < 0 || i >= pts.N()-1 {
		return fmt.Errorf("%w: segment %d of %d", ErrIndexOutOfRange, i, pts.N()-1)
	}
	return nil
}
