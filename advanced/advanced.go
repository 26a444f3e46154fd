// Building blocks of the convexhull package, for callers who want more control
// than the top level API gives: tracing, a choice of planar algorithm, hull
// validation, and rendering of the result.
package advanced

import "github.com/osuushi/convexhull/internal"

type Point = internal.Point
type Face = internal.Face
type PlanarPoint = internal.PlanarPoint
type Winding = internal.Winding
type PlanarAlgorithm = internal.PlanarAlgorithm
type Drawing = internal.Drawing
type HullError = internal.HullError

const (
	CounterClockwise = internal.CounterClockwise
	Clockwise        = internal.Clockwise

	MonotoneChain = internal.MonotoneChain
	GiftWrapping  = internal.GiftWrapping
)

var (
	ErrTooFewPoints = internal.ErrTooFewPoints
	ErrNonFinite    = internal.ErrNonFinite
	ErrDegenerate   = internal.ErrDegenerate
)

// Convert a recovered HullError into an error. Any other panic is re-raised.
// Use this in a deferred function around calls that can throw.
func HandleHullPanicRecover(r interface{}) error {
	return internal.HandleHullPanicRecover(r)
}

// Check that faces are the closed, consistently outward wound boundary of the
// convex hull of points.
func Validate(points []Point, faces []Face) error {
	return internal.ValidateHull(points, faces)
}

// Flatten a 3D hull onto the x/y plane for rendering.
func ProjectHull(points []Point, faces []Face) Drawing {
	return internal.ProjectHull(points, faces)
}

func PlanarDrawing(points []PlanarPoint, hull []int) Drawing {
	return internal.PlanarDrawing(points, hull)
}
