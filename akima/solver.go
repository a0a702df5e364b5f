package akima

import (
	"fmt"
	"math"

	"github.com/npillmayer/pathsmooth/polyn"
)

// Validate checks if a path can be smoothed: it needs at least 3
// waypoints, finite coordinates, and no two consecutive waypoints with
// equal x-coordinate.
func (path *Path) Validate() error {
	if path == nil {
		return ErrNilPath
	}
	n := path.N()
	if n < 3 {
		return fmt.Errorf("%w: need at least 3 waypoints, got %d", ErrTooFewPoints, n)
	}
	for i := 0; i < n; i++ {
		if !path.points[i].IsFinite() {
			return fmt.Errorf("%w at waypoint %d", ErrInvalidWaypoint, i)
		}
	}
	for i := 0; i < n-1; i++ {
		if a(path, i) == 0 {
			return fmt.Errorf("%w between waypoints %d and %d", ErrDegenerateSegment, i, i+1)
		}
	}
	return nil
}

// Smooth computes the Akima spline through the waypoints of path.
// It validates the path and returns an error for invalid geometry; in this
// case no coefficients are produced at all. The path is copied, later
// changes to it do not affect the spline.
//
// Smooth is a pure function of the waypoints: smoothing the same
// waypoints twice yields identical splines.
func Smooth(path *Path) (*Spline, error) {
	if err := path.Validate(); err != nil {
		tracer().Errorf("cannot smooth path: %v", err)
		return nil, err
	}
	raw := FromPairs(path.points)
	ext := extend(raw)
	m, err := computeSlopes(ext)
	if err != nil {
		tracer().Errorf("cannot smooth path: %v", err)
		return nil, err
	}
	t, err := computeGradients(ext, m)
	if err != nil {
		tracer().Errorf("cannot smooth path: %v", err)
		return nil, err
	}
	spline := &Spline{
		support: ext,
		points:  make([]Point, raw.N()),
		xs:      make([]polyn.Polynomial, raw.N()),
		ys:      make([]polyn.Polynomial, raw.N()),
		dxs:     make([]polyn.Polynomial, raw.N()),
		dys:     make([]polyn.Polynomial, raw.N()),
	}
	for i := 0; i < raw.N(); i++ {
		k := ext.pmap(i)
		p, q, err := cubic(ext, k)
		if err != nil {
			return nil, err
		}
		slope := m[k]
		if math.IsNaN(slope) { // support segment without slope
			slope = m[k-1]
		}
		spline.points[i] = Point{
			Pair: raw.Z(i),
			Params: Params{
				Slope:    slope,
				Gradient: t[k],
				P:        p,
				Q:        q,
			},
		}
		spline.xs[i] = polyn.FromCoefficients(p[:]...)
		spline.ys[i] = polyn.FromCoefficients(q[:]...)
		spline.dxs[i] = spline.xs[i].Derivative()
		spline.dys[i] = spline.ys[i].Derivative()
	}
	tracer().Infof("smoothed path of %d waypoints", raw.N())
	return spline, nil
}

// MustSmooth is a convenience helper which panics on validation errors.
func MustSmooth(path *Path) *Spline {
	s, err := Smooth(path)
	if err != nil {
		panic(err)
	}
	return s
}

// Smoother is a single-use smoothing job for one path. Its Smooth method
// may be called exactly once; further calls fail with ErrAlreadySmoothed.
// Clients without need for this one-shot discipline call Smooth(path).
type Smoother struct {
	path   *Path
	spline *Spline
	done   bool
}

// NewSmoother creates a smoother for a copy of path. Paths with fewer
// than 3 waypoints are rejected right away.
func NewSmoother(path *Path) (*Smoother, error) {
	if path == nil {
		return nil, ErrNilPath
	}
	if path.N() < 3 {
		return nil, fmt.Errorf("%w: need at least 3 waypoints, got %d", ErrTooFewPoints, path.N())
	}
	return &Smoother{path: FromPairs(path.points)}, nil
}

// Smooth runs the smoothing pass.
func (sm *Smoother) Smooth() (*Spline, error) {
	if sm.done {
		return nil, ErrAlreadySmoothed
	}
	sm.done = true
	s, err := Smooth(sm.path)
	if err != nil {
		return nil, err
	}
	sm.spline = s
	return s, nil
}

// Spline returns the result of a successful smoothing pass, or nil.
func (sm *Smoother) Spline() *Spline {
	return sm.spline
}
