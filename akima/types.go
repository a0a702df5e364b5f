package akima

import (
	"errors"

	"github.com/npillmayer/pathsmooth"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'akima'
func tracer() tracing.Trace {
	return tracing.Select("akima")
}

// Number of synthetic support points added at each end of a path.
const supportCount = 2

var (
	// ErrNilPath indicates a nil path pointer.
	ErrNilPath = errors.New("path must not be nil")
	// ErrTooFewPoints indicates fewer waypoints than needed for one interior gradient.
	ErrTooFewPoints = errors.New("path has too few waypoints")
	// ErrInvalidWaypoint indicates a waypoint coordinate contains NaN/Inf.
	ErrInvalidWaypoint = errors.New("path has invalid waypoint coordinate")
	// ErrMismatchedCoordinates indicates x and y coordinate slices of unequal length.
	ErrMismatchedCoordinates = errors.New("x and y coordinates differ in length")
	// ErrDegenerateSegment indicates a segment with zero x-delta, i.e. an undefined slope.
	ErrDegenerateSegment = errors.New("path has degenerate segment")
	// ErrInvalidIndexPair indicates a cross term S(i,j) requested for i = j.
	ErrInvalidIndexPair = errors.New("cross term needs two distinct segments")
	// ErrIndexOutOfRange indicates a point or segment index outside the spline.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidParameter indicates a curve parameter outside [0,1].
	ErrInvalidParameter = errors.New("curve parameter outside [0,1]")
	// ErrInvalidStep indicates a non-positive sampling step.
	ErrInvalidStep = errors.New("sampling step must be positive")
	// ErrAlreadySmoothed indicates a second smoothing pass on a single-use smoother.
	ErrAlreadySmoothed = errors.New("path has already been smoothed")
)

// Path is an open sequence of raw waypoints. To construct a path, start
// with Nullpath(), which creates an empty path, and then extend it.
type Path struct {
	points []pathsmooth.Pair // waypoint i
}

// Params holds the derived parameters of a point: the chord slope of the
// segment starting at it, Akima's gradient, and the cubic coefficients
// for x(z) and y(z) over that segment.
type Params struct {
	Slope    float64
	Gradient float64
	P        [4]float64 // x(z) = P[0] + P[1]z + P[2]z² + P[3]z³
	Q        [4]float64 // y(z) = Q[0] + Q[1]z + Q[2]z² + Q[3]z³
}

// Point is a waypoint together with its derived parameters.
type Point struct {
	pathsmooth.Pair
	Params
}

// points is an index-addressable point sequence. Both raw paths and
// paths extended by support points satisfy it.
type points interface {
	N() int
	Z(i int) pathsmooth.Pair
}
