package akima

import (
	"fmt"
	"math"

	"github.com/npillmayer/pathsmooth"
	"github.com/npillmayer/pathsmooth/polyn"
)

// Spline is the result of smoothing a path. It is immutable: every
// accessor returns copies.
//
// Points are addressed by their waypoint index i in [0, N-1]. Point i
// carries the cubic over the segment from waypoint i to waypoint i+1; for
// the last waypoint this segment leads to the first back support point.
type Spline struct {
	support *supportedPath
	points  []Point
	xs, ys  []polyn.Polynomial // x(z) and y(z) of point i
	dxs     []polyn.Polynomial // dx/dz
	dys     []polyn.Polynomial // dy/dz
}

// N returns the number of waypoints.
func (s *Spline) N() int {
	return len(s.points)
}

// Segments returns the number of segments between waypoints, N-1.
func (s *Spline) Segments() int {
	return len(s.points) - 1
}

// Offset is the index of waypoint 0 within the support points.
func (s *Spline) Offset() int {
	return supportCount
}

// SupportPoints returns the extended point sequence: two synthetic points,
// the waypoints, and two more synthetic points.
func (s *Spline) SupportPoints() []pathsmooth.Pair {
	pts := make([]pathsmooth.Pair, s.support.N())
	for i := range pts {
		pts[i] = s.support.Z(i)
	}
	return pts
}

// Point returns waypoint i with its derived parameters.
func (s *Spline) Point(i int) (Point, error) {
	if err := s.checkPoint(i); err != nil {
		return Point{}, err
	}
	return s.points[i], nil
}

// Points returns all waypoints with their derived parameters.
func (s *Spline) Points() []Point {
	pts := make([]Point, len(s.points))
	copy(pts, s.points)
	return pts
}

// Coefficients returns the cubic coefficients of point i, for x(z) and y(z).
func (s *Spline) Coefficients(i int) (p, q [4]float64, err error) {
	if err = s.checkPoint(i); err != nil {
		return
	}
	return s.points[i].P, s.points[i].Q, nil
}

// SegmentLength returns the chord length of the segment starting at
// waypoint i.
func (s *Spline) SegmentLength(i int) (float64, error) {
	if err := s.checkPoint(i); err != nil {
		return 0, err
	}
	return segmentLength(s.support, s.support.pmap(i)), nil
}

// S returns the cross term of segments i and j of the extended sequence
// (see SupportPoints). i = j is an error.
func (s *Spline) S(i, j int) (float64, error) {
	return S(s.support, i, j)
}

// Eval evaluates the cubic of point i at z ∈ [0,1].
// Eval(i, 0) is waypoint i.
func (s *Spline) Eval(i int, z float64) (pathsmooth.Pair, error) {
	if err := s.checkParam(i, z); err != nil {
		return pathsmooth.Origin, err
	}
	return pathsmooth.P(s.xs[i].Eval(z), s.ys[i].Eval(z)), nil
}

// Tangent evaluates the derivative (dx/dz, dy/dz) of the cubic of point i
// at z ∈ [0,1].
func (s *Spline) Tangent(i int, z float64) (pathsmooth.Pair, error) {
	if err := s.checkParam(i, z); err != nil {
		return pathsmooth.Origin, err
	}
	return pathsmooth.P(s.dxs[i].Eval(z), s.dys[i].Eval(z)), nil
}

// X returns the polynomial x(z) of point i.
func (s *Spline) X(i int) (polyn.Polynomial, error) {
	if err := s.checkPoint(i); err != nil {
		return polyn.Polynomial{}, err
	}
	return s.xs[i].CopyPolynomial(), nil
}

// Y returns the polynomial y(z) of point i.
func (s *Spline) Y(i int) (polyn.Polynomial, error) {
	if err := s.checkPoint(i); err != nil {
		return polyn.Polynomial{}, err
	}
	return s.ys[i].CopyPolynomial(), nil
}

func (s *Spline) checkPoint(i int) error {
	if i < 0 || i >= len(s.points) {
		return fmt.Errorf("%w: point %d of %d", ErrIndexOutOfRange, i, len(s.points))
	}
	return nil
}

func (s *Spline) checkParam(i int, z float64) error {
	if err := s.checkPoint(i); err != nil {
		return err
	}
	if math.IsNaN(z) || z < 0 || z > 1 {
		return fmt.Errorf("%w: z = %g", ErrInvalidParameter, z)
	}
	return nil
}
