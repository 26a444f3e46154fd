package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/osuushi/convexhull/advanced"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end for the hull builders. Input is one point per line,
// "x y z" (or "x y" with --planar), separated by spaces or commas. Blank lines
// and lines starting with # are skipped. Faces are printed one per line as
// three input indices; a planar hull is printed as one index per line.
func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Everything main does, returning the exit code so deferred cleanup, like
// flushing a CPU profile, still happens on failure.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app, o := newApp()
	kingpin.MustParse(app.Parse(args))

	logger, err := newLogger(o.verbose)
	app.FatalIfError(err, "creating logger")
	defer logger.Sync()

	if o.cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(o.cpuProfile), profile.Quiet).Stop()
	}

	if err := run(o, logger, stdin, stdout, stderr); err != nil {
		logger.Error("failed", zap.Error(err))
		return 1
	}
	return 0
}

type options struct {
	input      string
	planar     bool
	algorithm  string
	clockwise  bool
	validate   bool
	svg        string
	png        string
	imgcat     bool
	scale      float64
	trace      bool
	color      bool
	cpuProfile string
	verbose    bool
}

var algorithms = map[string]advanced.PlanarAlgorithm{
	"monotone": advanced.MonotoneChain,
	"giftwrap": advanced.GiftWrapping,
}

func newApp() (*kingpin.Application, *options) {
	o := &options{}
	app := kingpin.New("hull3d", "Compute the convex hull of a point set.")
	app.Flag("planar", "Read 2D points and compute a planar hull.").BoolVar(&o.planar)
	app.Flag("algorithm", "Planar hull algorithm (monotone or giftwrap).").Default("monotone").EnumVar(&o.algorithm, "monotone", "giftwrap")
	app.Flag("clockwise", "Wind the planar hull clockwise.").BoolVar(&o.clockwise)
	app.Flag("validate", "Check the 3D hull for closure, orientation and convexity.").BoolVar(&o.validate)
	app.Flag("svg", "Render the hull as an SVG file.").PlaceHolder("FILE").StringVar(&o.svg)
	app.Flag("png", "Render the hull as a PNG file.").PlaceHolder("FILE").StringVar(&o.png)
	app.Flag("imgcat", "Preview the hull in the terminal (iTerm only).").BoolVar(&o.imgcat)
	app.Flag("scale", "Pixels per unit when rendering.").Default("10").Float64Var(&o.scale)
	app.Flag("trace", "Trace the merge events of the 3D builder to stderr.").BoolVar(&o.trace)
	app.Flag("color", "Colour the trace.").Default("true").BoolVar(&o.color)
	app.Flag("cpuprofile", "Write a CPU profile into this directory.").PlaceHolder("DIR").StringVar(&o.cpuProfile)
	app.Flag("verbose", "Log at debug level.").Short('v').BoolVar(&o.verbose)
	app.Arg("input", "Point file. Reads stdin if omitted.").StringVar(&o.input)
	return app, o
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(o *options, logger *zap.Logger, stdin io.Reader, stdout, stderr io.Writer) error {
	in := stdin
	name := "stdin"
	if o.input != "" {
		file, err := os.Open(o.input)
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer file.Close()
		in, name = file, o.input
	}

	dimensions := 3
	if o.planar {
		dimensions = 2
	}
	coordinates, err := readCoordinates(in, dimensions)
	if err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}
	logger.Info("read points", zap.String("input", name), zap.Int("count", len(coordinates)))

	if o.planar {
		return runPlanar(o, logger, coordinates, stdout)
	}
	return runHull(o, logger, coordinates, stdout, stderr)
}

func runHull(o *options, logger *zap.Logger, coordinates [][]float64, stdout, stderr io.Writer) error {
	points := make([]advanced.Point, len(coordinates))
	for i, c := range coordinates {
		points[i] = advanced.Point{X: c[0], Y: c[1], Z: c[2]}
	}

	var buildOptions []advanced.Option
	if o.trace {
		buildOptions = append(buildOptions, advanced.WithTrace(stderr), advanced.WithColor(o.color))
	}
	start := time.Now()
	faces, err := advanced.Build(points, buildOptions...)
	if err != nil {
		return err
	}
	logger.Info("built hull", zap.Int("faces", len(faces)), zap.Duration("elapsed", time.Since(start)))

	if o.validate {
		if err := advanced.Validate(points, faces); err != nil {
			return errors.Wrap(err, "invalid hull")
		}
		logger.Info("hull is valid")
	}

	w := bufio.NewWriter(stdout)
	for _, f := range faces {
		fmt.Fprintf(w, "%d %d %d\n", f[0], f[1], f[2])
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return render(o, logger, advanced.ProjectHull(points, faces))
}

func runPlanar(o *options, logger *zap.Logger, coordinates [][]float64, stdout io.Writer) error {
	points := make([]advanced.PlanarPoint, len(coordinates))
	for i, c := range coordinates {
		points[i] = advanced.PlanarPoint{X: c[0], Y: c[1]}
	}

	winding := advanced.CounterClockwise
	if o.clockwise {
		winding = advanced.Clockwise
	}
	algorithm := algorithms[o.algorithm]
	start := time.Now()
	hull := advanced.BuildPlanar(points, advanced.WithAlgorithm(algorithm), advanced.WithWinding(winding))
	logger.Info("built planar hull",
		zap.Stringer("algorithm", algorithm),
		zap.Stringer("winding", winding),
		zap.Int("vertices", len(hull)),
		zap.Duration("elapsed", time.Since(start)),
	)

	w := bufio.NewWriter(stdout)
	for _, i := range hull {
		fmt.Fprintln(w, i)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return render(o, logger, advanced.PlanarDrawing(points, hull))
}

func render(o *options, logger *zap.Logger, d advanced.Drawing) error {
	if o.svg != "" {
		file, err := os.Create(o.svg)
		if err != nil {
			return errors.Wrap(err, "creating svg")
		}
		err = d.RenderSVG(file, o.scale)
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return errors.Wrap(err, "writing svg")
		}
		logger.Debug("wrote svg", zap.String("path", o.svg))
	}

	if o.png != "" {
		file, err := os.Create(o.png)
		if err != nil {
			return errors.Wrap(err, "creating png")
		}
		err = d.RenderPNG(file, o.scale)
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return errors.Wrap(err, "writing png")
		}
		logger.Debug("wrote png", zap.String("path", o.png))
	}

	if o.imgcat {
		path := o.png
		if path == "" {
			path = filepath.Join(os.TempDir(), "hull3d.png")
		}
		if err := d.Preview(path, o.scale); err != nil {
			return errors.Wrap(err, "previewing")
		}
	}
	return nil
}

func readCoordinates(in io.Reader, dimensions int) ([][]float64, error) {
	var coordinates [][]float64
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line, dimensions)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		coordinates = append(coordinates, point)
	}
	return coordinates, scanner.Err()
}

func parsePoint(line string, dimensions int) ([]float64, error) {
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) != dimensions {
		return nil, errors.Errorf("expected %d coordinates, got %d", dimensions, len(parts))
	}
	point := make([]float64, dimensions)
	for i, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "coordinate %d", i+1)
		}
		point[i] = value
	}
	return point, nil
}
