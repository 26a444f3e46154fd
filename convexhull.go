// A divide and conquer 3D convex hull package for Go.
//
// Hull takes a set of points in space and returns the triangles of their
// convex hull, as indices into the input, wound counterclockwise when seen
// from outside. It runs in O(n log n) time by tracking a 2D hull through time
// over a recursive merge, and never builds a half-edge mesh.
//
// PlanarHull is the 2D companion: the convex polygon around a set of points in
// the plane.
package convexhull

import "github.com/osuushi/convexhull/advanced"

type Point = advanced.Point
type Face = advanced.Face
type PlanarPoint = advanced.PlanarPoint
type Winding = advanced.Winding

const (
	CounterClockwise = advanced.CounterClockwise
	Clockwise        = advanced.Clockwise
)

// Returned, wrapped, when there are fewer than three points. Match it with
// errors.Is.
var ErrTooFewPoints = advanced.ErrTooFewPoints

// Returned, wrapped, when a coordinate is NaN or infinite.
var ErrNonFinite = advanced.ErrNonFinite

// Returned, wrapped, when the points are too degenerate to close a surface.
var ErrDegenerate = advanced.ErrDegenerate

// Compute the triangles of the convex hull of points.
//
// Shared coordinates and coplanar corners are fine. See advanced.Build for the
// details, and for tracing.
func Hull(points []Point) ([]Face, error) {
	return advanced.Build(points)
}

// Compute the convex hull of points in the plane as indices, starting from the
// lowest point and going around in the given winding. Collinear points on the
// boundary are left out. With fewer than three points, or no area, the result
// is empty.
func PlanarHull(points []PlanarPoint, winding Winding) []int {
	return advanced.BuildPlanar(points, advanced.WithWinding(winding))
}
