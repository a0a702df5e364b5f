// Package akima smoothes paths by Hiroshi Akima's method of interpolation.
/*

An Akima spline is a piecewise cubic curve through a sequence of
waypoints. In contrast to "normal" cubic splines it does not oscillate:
the tangent at a waypoint is estimated locally from the slopes of the
neighbouring segments, weighted by how co-linear these segments are. The
primary source of information is:

   A New Method of Interpolation and Smooth Curve Fitting Based on Local
   Procedures -- Hiroshi Akima
   Journal of the ACM, Vol. 17, No. 4, October 1970

Usage

Clients build a path of raw waypoints, e.g. a coarse centerline, and smooth
it:

   path := Nullpath().Knot(P(0,10)).Knot(P(1,10)).Knot(P(2,10.5)).Knot(P(3,15)).End()
   spline, err := Smooth(path)

The spline holds a cubic for each waypoint i, valid over the segment
starting at it and parametrized by z ∈ [0,1]:

   x(z) = p0 + p1 z + p2 z² + p3 z³
   y(z) = q0 + q1 z + q2 z² + q3 z³

Clients evaluate these cubics with Eval, or let Sample produce a dense
point sequence with an approximate spacing.

Every waypoint needs two neighbours on each side. At the ends of a path,
two synthetic support points are extrapolated from the first and last two
segments. They are part of the spline (see SupportPoints), but are never
inserted into the client's path. A support point may coincide with its
neighbour or share its x-coordinate; unlike waypoints, this is allowed.

Caveats

Waypoints must have strictly distinct consecutive x-coordinates, as slopes
are taken as dy/dx. This holds for centerlines which are monotonic in x.
Closed paths are not supported.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package akima

import (
	"fmt"
	"strings"
)

// AsString returns a spline's coefficients as a (debugging) string, one
// line per waypoint:
//
//	(0,10) p=[0.0000,1.0000,0.0000,0.0000] q=[10.0000,0.0000,0.0000,0.0000]
func AsString(spline *Spline) string {
	var sb strings.Builder
	for i, pt := range spline.points {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("(%.4g,%.4g) p=%s q=%s", pt.X(), pt.Y(),
			coeffstring(pt.P), coeffstring(pt.Q)))
	}
	return sb.String()
}

func coeffstring(c [4]float64) string {
	return fmt.Sprintf("[%.4f,%.4f,%.4f,%.4f]", c[0], c[1], c[2], c[3])
}
