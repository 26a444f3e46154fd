package internal

import (
	"fmt"
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo/float"
	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the drawing so that edges on the boundary stay visible
const drawPadding = 20

// A Drawing is a flat picture of a hull: points, polygons over those points
// drawn as outlines, and polygons drawn filled on top of the outlines.
type Drawing struct {
	Points   []PlanarPoint
	Outlines [][]int
	Filled   [][]int
}

// Project a 3D hull onto the x/y plane as seen from above. Faces that point
// up are filled, and the ones underneath show through as outlines.
func ProjectHull(points []Point, faces []Face) Drawing {
	d := Drawing{Points: make([]PlanarPoint, len(points))}
	for i, p := range points {
		d.Points[i] = PlanarPoint{X: p.X, Y: p.Y}
	}
	for _, f := range faces {
		a, b, c := points[f[0]], points[f[1]], points[f[2]]
		indices := []int{f[0], f[1], f[2]}
		if b.Sub(a).Cross(c.Sub(a)).Z > 0 {
			d.Filled = append(d.Filled, indices)
		} else {
			d.Outlines = append(d.Outlines, indices)
		}
	}
	return d
}

// Draw a planar hull over the point set it was computed from.
func PlanarDrawing(points []PlanarPoint, hull []int) Drawing {
	d := Drawing{Points: points}
	if len(hull) > 0 {
		d.Filled = [][]int{hull}
	}
	return d
}

func (d Drawing) bounds() (minX, minY, maxX, maxY float64) {
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range d.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(d.Points) == 0 {
		return 0, 0, 0, 0
	}
	return
}

func (d Drawing) size(scale float64) (width, height int) {
	minX, minY, maxX, maxY := d.bounds()
	width = int(scale*(maxX-minX)) + drawPadding*2
	height = int(scale*(maxY-minY)) + drawPadding*2
	return
}

// Map a point into image space, with the origin at the bottom left.
func (d Drawing) toImage(p PlanarPoint, scale float64, height int) (float64, float64) {
	minX, minY, _, _ := d.bounds()
	x := (p.X-minX)*scale + drawPadding
	y := float64(height) - ((p.Y-minY)*scale + drawPadding)
	return x, y
}

// Render the drawing as a PNG with gg.
func (d Drawing) RenderPNG(w io.Writer, scale float64) error {
	width, height := d.size(scale)
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	minX, minY, _, _ := d.bounds()
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	trace := func(polygon []int) {
		first := d.Points[polygon[0]]
		c.MoveTo(first.X, first.Y)
		for _, i := range polygon[1:] {
			c.LineTo(d.Points[i].X, d.Points[i].Y)
		}
		c.ClosePath()
	}

	c.SetLineWidth(1)
	c.SetRGBA(0.5, 0.5, 0.5, 0.6)
	for _, polygon := range d.Outlines {
		trace(polygon)
		c.Stroke()
	}
	c.SetLineWidth(2)
	for _, polygon := range d.Filled {
		trace(polygon)
		c.SetRGBA(0, 0.5, 0, 0.4)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	c.SetRGB(1, 1, 0)
	for _, p := range d.Points {
		// Radii are in user space, unlike line widths
		c.DrawCircle(p.X, p.Y, 2/scale)
		c.Fill()
	}
	return c.EncodePNG(w)
}

// svgo drops write errors, so keep the first one here
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// Render the drawing as an SVG document with svgo.
func (d Drawing) RenderSVG(w io.Writer, scale float64) error {
	width, height := d.size(scale)
	out := &errWriter{w: w}
	canvas := svg.New(out)
	canvas.Start(float64(width), float64(height))
	canvas.Rect(0, 0, float64(width), float64(height), "fill:black")

	polygon := func(indices []int, style string) {
		xs := make([]float64, len(indices))
		ys := make([]float64, len(indices))
		for k, i := range indices {
			xs[k], ys[k] = d.toImage(d.Points[i], scale, height)
		}
		canvas.Polygon(xs, ys, style)
	}
	for _, indices := range d.Outlines {
		polygon(indices, "fill:none;stroke:gray;stroke-opacity:0.6;stroke-width:1")
	}
	for _, indices := range d.Filled {
		polygon(indices, "fill:green;fill-opacity:0.4;stroke:cyan;stroke-width:2")
	}
	for i, p := range d.Points {
		x, y := d.toImage(p, scale, height)
		canvas.Circle(x, y, 2, "fill:yellow")
		canvas.Text(x+3, y-3, fmt.Sprint(i), "fill:white;font-size:8px")
	}
	canvas.End()
	return out.err
}

// Write the drawing to a PNG file and print it in the terminal (iTerm only).
func (d Drawing) Preview(path string, scale float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.RenderPNG(file, scale); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
