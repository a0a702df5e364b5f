package akima

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/pathsmooth"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testpath() *Path {
	return Nullpath().Knot(pathsmooth.P(1, 1)).Knot(pathsmooth.P(2, 2)).Knot(pathsmooth.P(4, 1)).End()
}

func TestDelta(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	delta1 := delta(path, 1)
	t.Logf("delta [1->2] = %g\n", delta1)
	if delta1 != 2-1i {
		t.Fail()
	}
	assert.Equal(t, 2.0, a(path, 1))
	assert.Equal(t, -1.0, b(path, 1))
	assert.Equal(t, math.Sqrt(5), segmentLength(path, 1))
}

func TestCrossTerm(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	s, err := S(path, 0, 1) // (1,1) × (2,-1)
	require.NoError(t, err)
	assert.Equal(t, -3.0, s)
	s, err = S(path, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, s)
	abs, err := absS(path, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, abs)
}

func TestCrossTermRejectsEqualIndices(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := S(testpath(), 1, 1)
	if !errors.Is(err, ErrInvalidIndexPair) {
		t.Fatalf("expected ErrInvalidIndexPair, got %v", err)
	}
}

func TestCrossTermRejectsMissingSegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := S(testpath(), 0, 2)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	_, err = S(testpath(), -1, 0)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestExtendAddsTwoPointsEachEnd(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	ext := extend(path)
	require.Equal(t, path.N()+4, ext.N())
	for i := 0; i < path.N(); i++ {
		assert.Equal(t, path.Z(i), ext.Z(ext.pmap(i)))
		assert.False(t, ext.isSupport(ext.pmap(i)))
	}
	for _, i := range []int{0, 1, ext.N() - 2, ext.N() - 1} {
		assert.True(t, ext.isSupport(i))
	}
	// deltas (1,1), (2,-1)
	assert.Equal(t, pathsmooth.P(1, -2), ext.Z(1))
	assert.Equal(t, pathsmooth.P(2, -7), ext.Z(0))
	assert.Equal(t, pathsmooth.P(7, -2), ext.Z(5))
	assert.Equal(t, pathsmooth.P(11, -7), ext.Z(6))
	assert.Equal(t, 3, path.N(), "raw path must not grow")
}

func TestSlopesCopyLastSegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ext := extend(demopath(t))
	m, err := computeSlopes(ext)
	require.NoError(t, err)
	require.Equal(t, ext.N(), len(m))
	assert.Equal(t, 0.0, m[ext.pmap(0)])
	assert.Equal(t, 35.0, m[ext.pmap(7)])
	assert.Equal(t, 55.0, m[ext.N()-2])
	assert.Equal(t, m[ext.N()-2], m[ext.N()-1])
}

func TestGradientFlatShortcut(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path, err := FromXY([]float64{0, 1, 2, 3, 4, 5}, []float64{0, 1, 2, 3, 5, 9})
	require.NoError(t, err)
	ext := extend(path)
	m, err := computeSlopes(ext)
	require.NoError(t, err)
	g, err := computeGradients(ext, m)
	require.NoError(t, err)
	// waypoints 0..2 lie on a straight line of slope 1
	for i := 0; i <= 2; i++ {
		assert.Equal(t, 1.0, g[ext.pmap(i)], "gradient at waypoint %d", i)
	}
}

func TestGradientWeights(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ext := extend(demopath(t))
	m, err := computeSlopes(ext)
	require.NoError(t, err)
	g, err := computeGradients(ext, m)
	require.NoError(t, err)
	// waypoint 6: segments (1,0) (1,0.5) | (1,4.5) (1,35)
	w2 := math.Sqrt(4.5 * 30.5)
	w3 := math.Sqrt(0.5 * 34.5)
	want := (w2*0.5 + w3*4.5) / (w2 + w3)
	assert.InDelta(t, want, g[ext.pmap(6)], 1e-12)
	assert.Equal(t, 0.0, g[ext.pmap(4)])
}

func TestGradientEqualWeightsFallback(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// around waypoint 2 segments alternate between two directions, so both
	// S(i-2,i) and S(i-1,i+1) vanish while slopes differ
	path, err := FromXY([]float64{0, 1, 2, 3, 4, 5, 6}, []float64{0, 1, 1, 2, 2, 3, 3})
	require.NoError(t, err)
	ext := extend(path)
	m, err := computeSlopes(ext)
	require.NoError(t, err)
	g, err := computeGradients(ext, m)
	require.NoError(t, err)
	assert.Equal(t, 0.5, g[ext.pmap(2)])
	assert.Equal(t, 0.5, g[ext.pmap(3)])
}

func TestDirectionFallsBackToSegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ext := extend(demopath(t))
	// the first back support point has no forward neighbour: the last
	// segment between waypoints, (1,25), stands in
	c, s, err := direction(ext, ext.N()-2)
	require.NoError(t, err)
	th := math.Atan2(25, 1)
	assert.Equal(t, math.Cos(th), c)
	assert.Equal(t, math.Sin(th), s)
	c, s, err = direction(ext, ext.pmap(0))
	require.NoError(t, err)
	assert.Equal(t, 1.0, c)
	assert.Equal(t, 0.0, s)
}

func TestSlopesOfCollapsedSupportSegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// a(1) = 2·a(0): the inner front support point falls onto waypoint 0
	path, err := FromXY([]float64{0, 1, 3, 4}, []float64{0, 1, 3, 4})
	require.NoError(t, err)
	ext := extend(path)
	assert.Equal(t, ext.Z(1), ext.Z(2))
	m, err := computeSlopes(ext)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(m[1]))
	assert.Equal(t, 1.0, m[0])
	assert.Equal(t, 1.0, m[ext.pmap(0)])
	g, err := computeGradients(ext, m)
	require.NoError(t, err)
	// no slope triple matches and all weights vanish: the defined slope wins
	assert.Equal(t, 1.0, g[ext.pmap(0)])
	c, s, err := direction(ext, ext.pmap(0))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2/2, c, 1e-15)
	assert.InDelta(t, math.Sqrt2/2, s, 1e-15)
}

func TestMeanSlope(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v, err := meanSlope(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)
	v, err = meanSlope(math.NaN(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
	v, err = meanSlope(3, math.NaN())
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
	_, err = meanSlope(math.NaN(), math.NaN())
	if !errors.Is(err, ErrDegenerateSegment) {
		t.Fatalf("expected ErrDegenerateSegment, got %v", err)
	}
}
