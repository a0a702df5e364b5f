// Command akimasmooth smooths a 2D waypoint path with an Akima spline and
// exports densely sampled poses.
//
// Waypoints are read as CSV rows "x,y"; lines starting with '#' are
// ignored. Poses are written as CSV rows "x,y,yaw" in the configured frame.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/npillmayer/pathsmooth"
	"github.com/npillmayer/pathsmooth/akima"
	"github.com/npillmayer/pathsmooth/internal/config"
	"github.com/npillmayer/pathsmooth/polygon"
)

type options struct {
	configFile string
	in, out    string
	plotFile   string
	step       float64
	demo       bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configFile, "config", "", "YAML configuration file")
	flag.StringVar(&opts.in, "in", "-", "Waypoint CSV file, '-' for stdin")
	flag.StringVar(&opts.out, "out", "-", "Pose CSV file, '-' for stdout")
	flag.StringVar(&opts.plotFile, "plot", "", "Render path and spline to this PNG file")
	flag.Float64Var(&opts.step, "step", 0, "Sample distance (overrides config)")
	flag.BoolVar(&opts.demo, "demo", false, "Smooth the built-in demo path")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatalf("akimasmooth: %v", err)
	}
}

func run(opts options) error {
	cfg := config.Default()
	if opts.configFile != "" {
		var err error
		if cfg, err = config.Load(opts.configFile); err != nil {
			return err
		}
	}
	if opts.step != 0 {
		cfg.Step = opts.step
	}
	if opts.plotFile != "" {
		cfg.Plot.File = opts.plotFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	path, err := loadPath(opts)
	if err != nil {
		return err
	}
	spline, err := akima.Smooth(path)
	if err != nil {
		return fmt.Errorf("smoothing %d waypoints: %w", path.N(), err)
	}
	samples, err := spline.Sample(cfg.Step)
	if err != nil {
		return err
	}
	if region := cfg.Region(); region != nil {
		if out := checkBounds(samples, region); len(out) > 0 {
			log.Printf("warning: %d of %d samples leave bounds %v, first at %v",
				len(out), len(samples), cfg.Bounds, samples[out[0]])
		}
	}
	poses := akima.TransformPoses(akima.Poses(samples), cfg.Transform())

	w, closeOut, err := openOutput(opts.out)
	if err != nil {
		return err
	}
	if err := writePoses(w, cfg.Frame.Name, poses); err != nil {
		closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return err
	}
	if cfg.Plot.File != "" {
		err = renderPlot(cfg.Plot.File, path.Waypoints(), samples, spline.SupportPoints(),
			cfg.Plot.WidthIn, cfg.Plot.HeightIn)
		if err != nil {
			return fmt.Errorf("rendering plot: %w", err)
		}
	}
	return nil
}

func loadPath(opts options) (*akima.Path, error) {
	if opts.demo {
		return demoPath(), nil
	}
	if opts.in == "-" {
		return readWaypoints(os.Stdin)
	}
	f, err := os.Open(opts.in)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readWaypoints(f)
}

func openOutput(name string) (io.Writer, func() error, error) {
	if name == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// checkBounds returns the indices of samples outside region.
func checkBounds(samples []pathsmooth.Pair, region *polygon.Polygon) []int {
	return polygon.FromPairs(samples).Outside(region)
}
