package akima

import (
	"fmt"

	"github.com/npillmayer/pathsmooth"
)

// maxSegmentSamples bounds the number of samples per segment.
const maxSegmentSamples = 1e6

// Sample produces a dense point sequence along the spline. Each segment
// between consecutive waypoints is sampled at parameter increments of
// step / chord length, so that samples are roughly step apart. The
// parametrization is not arc-length proportional; spacing is approximate.
// The last waypoint is appended exactly.
//
// A step finer than 1/maxSegmentSamples of a segment's chord length is
// rejected with ErrInvalidStep.
func (s *Spline) Sample(step float64) ([]pathsmooth.Pair, error) {
	if !(step > 0) || !pathsmooth.IsFinite(step) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidStep, step)
	}
	lengths := make([]float64, s.Segments())
	for i := range lengths {
		lengths[i], _ = s.SegmentLength(i)
		if lengths[i]/step > maxSegmentSamples {
			return nil, fmt.Errorf("%w: %g yields more than %g samples on segment %d",
				ErrInvalidStep, step, float64(maxSegmentSamples), i)
		}
	}
	var samples []pathsmooth.Pair
	for i, length := range lengths {
		increment := step / length
		for z := 0.0; z < 1; z += increment {
			samples = append(samples, pathsmooth.P(s.xs[i].Eval(z), s.ys[i].Eval(z)))
		}
	}
	samples = append(samples, s.points[len(s.points)-1].Pair)
	tracer().Debugf("sampled %d points at step %g", len(samples), step)
	return samples, nil
}

// Pose is a point of an exported path together with its heading.
type Pose struct {
	Position pathsmooth.Pair
	Yaw      float64 // radians, counter-clockwise from the x-axis
}

// Poses attaches a heading to each point: the direction towards the next
// point. The last point keeps the heading of its predecessor.
func Poses(pts []pathsmooth.Pair) []Pose {
	if len(pts) == 0 {
		return nil
	}
	poses := make([]Pose, len(pts))
	for i := 0; i < len(pts)-1; i++ {
		poses[i] = Pose{Position: pts[i], Yaw: (pts[i+1] - pts[i]).Angle()}
	}
	last := len(pts) - 1
	poses[last].Position = pts[last]
	if last > 0 {
		poses[last].Yaw = poses[last-1].Yaw
	}
	return poses
}

// TransformPoses maps poses into another frame. Positions are transformed
// by at, headings are turned by the rotation of at.
func TransformPoses(poses []Pose, at pathsmooth.AT) []Pose {
	rot := at.Rotation()
	out := make([]Pose, len(poses))
	for i, p := range poses {
		out[i] = Pose{Position: at.Transform(p.Position), Yaw: p.Yaw + rot}
	}
	return out
}
