/*
Package polygon deals with polylines and polygons of 2D points.

A smoothed path, once sampled, is an open polyline. Closed polygons are
used for regions a path is checked against. Both are held as polyclip
contours.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/pathsmooth"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/floats"
)

// L traces to the polygon tracer.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is an ordered sequence of knots, either open (a polyline) or
// closed (cyclic).
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls:
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// FromPairs creates an open polyline from a sequence of points.
func FromPairs(pts []pathsmooth.Pair) *Polygon {
	pg := &Polygon{contour: make(polyclip.Contour, 0, len(pts))}
	for _, p := range pts {
		pg.Knot(p)
	}
	return pg
}

// Box creates a closed rectangle spanned by two opposite corners.
func Box(p1, p2 pathsmooth.Pair) *Polygon {
	minx, maxx := math.Min(p1.X(), p2.X()), math.Max(p1.X(), p2.X())
	miny, maxy := math.Min(p1.Y(), p2.Y()), math.Max(p1.Y(), p2.Y())
	return NullPolygon().
		Knot(pathsmooth.P(minx, miny)).
		Knot(pathsmooth.P(maxx, miny)).
		Knot(pathsmooth.P(maxx, maxy)).
		Knot(pathsmooth.P(minx, maxy)).
		Cycle()
}

// Knot appends a point. Part of builder functionality.
func (pg *Polygon) Knot(p pathsmooth.Pair) *Polygon {
	pg.contour.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	return pg
}

// End an open polyline. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// Pt returns knot i.
func (pg *Polygon) Pt(i int) pathsmooth.Pair {
	p := pg.contour[i]
	return pathsmooth.P(p.X, p.Y)
}

// BoundingBox returns the lower left and upper right corners of the
// smallest axis-aligned rectangle enclosing all knots.
func (pg *Polygon) BoundingBox() (pathsmooth.Pair, pathsmooth.Pair) {
	if pg.N() == 0 {
		return pathsmooth.Origin, pathsmooth.Origin
	}
	r := pg.contour.BoundingBox()
	return pathsmooth.P(r.Min.X, r.Min.Y), pathsmooth.P(r.Max.X, r.Max.Y)
}

// Contains is a predicate: is p inside this closed polygon? Open polylines
// contain nothing.
func (pg *Polygon) Contains(p pathsmooth.Pair) bool {
	if !pg.cycle || pg.N() < 3 {
		return false
	}
	return pg.contour.Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// Outside returns the indices of all knots of pg which are not contained
// in region.
func (pg *Polygon) Outside(region *Polygon) []int {
	var out []int
	for i := 0; i < pg.N(); i++ {
		if !region.Contains(pg.Pt(i)) {
			out = append(out, i)
		}
	}
	if len(out) > 0 {
		L().Infof("%d of %d knots outside region", len(out), pg.N())
	}
	return out
}

// Length returns the summed Euclidean length of all edges, including the
// closing edge of a cycle.
func (pg *Polygon) Length() float64 {
	n := pg.N()
	if n < 2 {
		return 0
	}
	edges := make([]float64, 0, n)
	for i := 0; i < n-1; i++ {
		edges = append(edges, (pg.Pt(i+1) - pg.Pt(i)).Abs())
	}
	if pg.cycle {
		edges = append(edges, (pg.Pt(0) - pg.Pt(n-1)).Abs())
	}
	return floats.Sum(edges)
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			b.WriteString(" -- ")
		}
		b.WriteString(fmt.Sprintf("(%.4g,%.4g)", pg.contour[i].X, pg.contour[i].Y))
	}
	if pg.cycle {
		b.WriteString(" -- cycle")
	}
	return b.String()
}
