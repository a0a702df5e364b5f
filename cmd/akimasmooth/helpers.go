package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/pathsmooth"
	"github.com/npillmayer/pathsmooth/akima"
	"github.com/npillmayer/pathsmooth/polygon"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// demoXY is the demo path: flat for 5 waypoints, then a steep rise.
var demoXY = [2][]float64{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	{10, 10, 10, 10, 10, 10, 10.5, 15, 50, 60, 85},
}

func demoPath() *akima.Path {
	path, err := akima.FromXY(demoXY[0], demoXY[1])
	if err != nil {
		panic(err) // static data
	}
	return path
}

// readWaypoints parses "x,y" rows. Blank lines and lines starting with '#'
// are skipped.
func readWaypoints(r io.Reader) (*akima.Path, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	path := akima.Nullpath()
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading waypoints: %w", err)
		}
		line, _ := cr.FieldPos(0)
		x, err := parseCoord(rec[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		y, err := parseCoord(rec[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		path.Knot(pathsmooth.P(x, y))
	}
	return path.End(), nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if !pathsmooth.IsFinite(v) {
		return 0, fmt.Errorf("coordinate %q is not finite", s)
	}
	return v, nil
}

// writePoses writes a header naming the frame, followed by "x,y,yaw" rows.
func writePoses(w io.Writer, frame string, poses []akima.Pose) error {
	if _, err := fmt.Fprintf(w, "# frame: %s\n", frame); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	for _, pose := range poses {
		err := cw.Write([]string{
			strconv.FormatFloat(pose.Position.X(), 'f', 6, 64),
			strconv.FormatFloat(pose.Position.Y(), 'f', 6, 64),
			strconv.FormatFloat(pose.Yaw, 'f', 6, 64),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func toXYs(pts []pathsmooth.Pair) plotter.XYs {
	xys := make(plotter.XYs, 0, len(pts))
	for _, p := range pts {
		xys = append(xys, plotter.XY{X: p.X(), Y: p.Y()})
	}
	return xys
}

// renderPlot draws the raw waypoints, the smoothed samples and the
// extrapolated support points into a PNG file.
func renderPlot(file string, raw, smoothed, support []pathsmooth.Pair, widthIn, heightIn float64) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Akima spline, %d waypoints", len(raw))
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	rawLine, err := plotter.NewLine(toXYs(raw))
	if err != nil {
		return err
	}
	rawLine.Color = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	rawLine.Width = vg.Points(1)
	rawLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(rawLine)
	p.Legend.Add("waypoints", rawLine)

	smoothLine, err := plotter.NewLine(toXYs(smoothed))
	if err != nil {
		return err
	}
	smoothLine.Color = color.RGBA{B: 200, A: 255}
	smoothLine.Width = vg.Points(1.5)
	p.Add(smoothLine)
	p.Legend.Add("spline", smoothLine)

	if len(support) > 0 {
		scatter, err := plotter.NewScatter(toXYs(support))
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
		scatter.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(scatter)
		p.Legend.Add("support", scatter)
	}

	all := append(append([]pathsmooth.Pair{}, raw...), support...)
	lo, hi := polygon.FromPairs(all).BoundingBox()
	pad := 0.05 * (hi - lo).Abs()
	p.X.Min, p.X.Max = lo.X()-pad, hi.X()+pad
	p.Y.Min, p.Y.Max = lo.Y()-pad, hi.Y()+pad

	return p.Save(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch, file)
}
