package akima

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/pathsmooth"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	f()
}

func mustSmooth(t *testing.T, path *Path) *Spline {
	t.Helper()
	s, err := Smooth(path)
	if err != nil {
		t.Fatalf("Smooth failed: %v", err)
	}
	return s
}

// The demo centerline: a flat stretch running into a
// sharp climb.
func demopath(t *testing.T) *Path {
	t.Helper()
	xs := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	ys := []float64{10, 10, 10, 10, 10, 10, 10.5, 15, 50, 60, 85}
	path, err := FromXY(xs, ys)
	require.NoError(t, err)
	return path
}

func TestCreatePath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath().Knot(pathsmooth.P(1, 1)).Knot(pathsmooth.P(2, 2)).Knot(pathsmooth.P(3, 1)).End()
	if path.N() != 3 {
		t.Fail()
	}
	assert.Equal(t, pathsmooth.P(2, 2), path.Z(1))
}

func TestFromPairsCopies(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []pathsmooth.Pair{pathsmooth.P(0, 0), pathsmooth.P(1, 1), pathsmooth.P(2, 0)}
	path := FromPairs(pts)
	pts[0] = pathsmooth.P(5, 5)
	assert.Equal(t, pathsmooth.P(0, 0), path.Z(0))
	wp := path.Waypoints()
	wp[1] = pathsmooth.P(9, 9)
	assert.Equal(t, pathsmooth.P(1, 1), path.Z(1))
}

func TestFromXYRejectsMismatchedLengths(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := FromXY([]float64{0, 1, 2}, []float64{0, 1})
	if !errors.Is(err, ErrMismatchedCoordinates) {
		t.Fatalf("expected ErrMismatchedCoordinates, got %v", err)
	}
}

func TestSmoothRejectsNilPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Smooth(nil)
	if !errors.Is(err, ErrNilPath) {
		t.Fatalf("expected ErrNilPath, got %v", err)
	}
}

func TestSmoothRejectsTooFewPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath().Knot(pathsmooth.P(0, 0)).Knot(pathsmooth.P(1, 1)).End()
	_, err := Smooth(path)
	if !errors.Is(err, ErrTooFewPoints) {
		t.Fatalf("expected ErrTooFewPoints, got %v", err)
	}
	_, err = NewSmoother(path)
	if !errors.Is(err, ErrTooFewPoints) {
		t.Fatalf("expected ErrTooFewPoints from NewSmoother, got %v", err)
	}
}

func TestSmoothRejectsInvalidWaypoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath().Knot(pathsmooth.P(0, 0)).Knot(pathsmooth.P(1, math.Inf(1))).
		Knot(pathsmooth.P(2, 0)).End()
	_, err := Smooth(path)
	if !errors.Is(err, ErrInvalidWaypoint) {
		t.Fatalf("expected ErrInvalidWaypoint, got %v", err)
	}
}

func TestSmoothRejectsDuplicateX(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath().
		Knot(pathsmooth.P(0, 1)).
		Knot(pathsmooth.P(1, 3)).
		Knot(pathsmooth.P(2, 5)).
		Knot(pathsmooth.P(2, 9)).
		Knot(pathsmooth.P(3, 10)).End()
	s, err := Smooth(path)
	if !errors.Is(err, ErrDegenerateSegment) {
		t.Fatalf("expected ErrDegenerateSegment, got %v", err)
	}
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "between waypoints 2 and 3")
}

func TestSmoothAcceptsCollapsedSupportSegments(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// a(1) = 2·a(0) collapses the inner front support point onto waypoint 0,
	// a(n-2) = 2·a(n-1) does the same at the back
	path := Nullpath().
		Knot(pathsmooth.P(0, 0)).
		Knot(pathsmooth.P(1, 1)).
		Knot(pathsmooth.P(3, 3)).
		Knot(pathsmooth.P(4, 4)).End()
	s, err := Smooth(path)
	require.NoError(t, err)
	for i := 0; i < s.N(); i++ {
		pt, err := s.Point(i)
		require.NoError(t, err)
		for k := 2; k < 4; k++ {
			assert.InDelta(t, 0.0, pt.P[k], 1e-12, "p%d at %d", k, i)
			assert.InDelta(t, 0.0, pt.Q[k], 1e-12, "q%d at %d", k, i)
		}
		assert.Equal(t, 1.0, pt.Slope, "slope at %d", i)
		assert.Equal(t, 1.0, pt.Gradient, "gradient at %d", i)
	}
	// a(1) = 1.5·a(0) makes the outer front support segment vertical
	path, err = FromXY([]float64{0, 2, 5}, []float64{0, 1, 4})
	require.NoError(t, err)
	s, err = Smooth(path)
	require.NoError(t, err)
	assert.False(t, floats.HasNaN(coefficients(t, s)))
	for i := 0; i < s.N(); i++ {
		z, err := s.Eval(i, 0)
		require.NoError(t, err)
		assert.Equal(t, path.Z(i), z)
	}
}

func TestSmoothAcceptsFineSpacing(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path, err := FromXY([]float64{0, 1e-8, 2e-8, 3e-8}, []float64{0, 2e-8, 1e-8, 3e-8})
	require.NoError(t, err)
	require.NoError(t, path.Validate())
	s := mustSmooth(t, path)
	all := coefficients(t, s)
	assert.False(t, floats.HasNaN(all))
	for _, c := range all {
		assert.False(t, math.IsInf(c, 0))
	}
	for i := 0; i < s.Segments(); i++ {
		z, err := s.Eval(i, 1)
		require.NoError(t, err)
		assert.InDelta(t, path.Z(i+1).X(), z.X(), 1e-20)
		assert.InDelta(t, path.Z(i+1).Y(), z.Y(), 1e-20)
	}
}

func TestMustSmoothPanicsOnInvalidPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath().Knot(pathsmooth.P(0, 0)).End()
	mustPanic(t, func() { MustSmooth(path) })
}

func TestSmootherIsSingleUse(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sm, err := NewSmoother(demopath(t))
	require.NoError(t, err)
	assert.Nil(t, sm.Spline())
	s, err := sm.Smooth()
	require.NoError(t, err)
	require.NotNil(t, s)
	again, err := sm.Smooth()
	if !errors.Is(err, ErrAlreadySmoothed) {
		t.Fatalf("expected ErrAlreadySmoothed, got %v", err)
	}
	assert.Nil(t, again)
	assert.Same(t, s, sm.Spline())
	assert.Equal(t, 15, len(s.SupportPoints()), "second call must not extend again")
}

func TestSmootherDoesNotAliasPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := demopath(t)
	sm, err := NewSmoother(path)
	require.NoError(t, err)
	path.Knot(pathsmooth.P(10, 90)) // would be degenerate
	s, err := sm.Smooth()
	require.NoError(t, err)
	assert.Equal(t, 11, s.N())
}
