package akima

import (
	"fmt"
	"math"
)

// computeGradients returns Akima's tangent estimate t[i] for every index i
// in [2, N-3] of the extended sequence. Entries outside this range are 0.
//
// Where three consecutive slopes around i are equal, the path is locally
// straight and t[i] is the slope itself. Otherwise the slopes of the two
// segments adjacent to i are blended with weights
//
//	w2 = √|S(i-2,i)·S(i,i+1)|,  w3 = √|S(i-2,i-1)·S(i-1,i+1)|
//
// If both weights vanish, or the weighted x-delta does, Akima's fallback
// for coinciding weights applies: t[i] is the mean of the slopes m[i-1] and
// m[i], skipping an undefined support slope.
//
// Akima describes a second weighting, |S(i,i+1)| and |S(i-2,i-1)|, for
// specific slope-equality patterns. It is not applied here.
func computeGradients(pts *supportedPath, m []float64) ([]float64, error) {
	n := pts.N()
	t := make([]float64, n)
	for i := 2; i < n-2; i++ {
		if (m[i-2] == m[i-1] && m[i-1] == m[i]) || (m[i-1] == m[i] && m[i] == m[i+1]) {
			t[i] = m[i-1]
			continue
		}
		w2, err := weight(pts, i-2, i, i, i+1)
		if err != nil {
			return nil, err
		}
		w3, err := weight(pts, i-2, i-1, i-1, i+1)
		if err != nil {
			return nil, err
		}
		den := w2*a(pts, i-1) + w3*a(pts, i)
		if den == 0 { // no preference, or a vertical blend
			if t[i], err = meanSlope(m[i-1], m[i]); err != nil {
				return nil, fmt.Errorf("%w: gradient undefined at point %d", err, i-supportCount)
			}
		} else {
			t[i] = (w2*b(pts, i-1) + w3*b(pts, i)) / den
		}
		tracer().Debugf("t.%d = %.4g (w2 = %.4g, w3 = %.4g)", i, t[i], w2, w3)
	}
	return t, nil
}

// √|S(i,j)·S(k,l)|
func weight(pts *supportedPath, i, j, k, l int) (float64, error) {
	s1, err := S(pts, i, j)
	if err != nil {
		return 0, err
	}
	s2, err := S(pts, k, l)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(math.Abs(s1 * s2)), nil
}

// mean of the defined slopes among m1 and m2
func meanSlope(m1, m2 float64) (float64, error) {
	switch {
	case math.IsNaN(m1) && math.IsNaN(m2):
		return 0, ErrDegenerateSegment
	case math.IsNaN(m1):
		return m2, nil
	case math.IsNaN(m2):
		return m1, nil
	}
	return (m1 + m2) / 2, nil
}
