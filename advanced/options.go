package advanced

import (
	"io"

	"github.com/osuushi/convexhull/internal"
)

type config struct {
	hull      internal.HullOptions
	algorithm PlanarAlgorithm
	winding   Winding
}

type Option func(*config)

// Write a trace of every merge and event of the 3D builder to w.
func WithTrace(w io.Writer) Option {
	return func(c *config) {
		c.hull.Trace = w
	}
}

// Colour the trace with ANSI escapes.
func WithColor(color bool) Option {
	return func(c *config) {
		c.hull.Color = color
	}
}

// Pick the planar hull algorithm. The default is MonotoneChain.
func WithAlgorithm(algorithm PlanarAlgorithm) Option {
	return func(c *config) {
		c.algorithm = algorithm
	}
}

// Pick the winding of planar hulls. The default is CounterClockwise.
func WithWinding(winding Winding) Option {
	return func(c *config) {
		c.winding = winding
	}
}

func newConfig(options []Option) *config {
	c := &config{
		algorithm: MonotoneChain,
		winding:   CounterClockwise,
	}
	for _, option := range options {
		option(c)
	}
	return c
}
