package advanced

import "github.com/osuushi/convexhull/internal"

// Compute the boundary of the 3D convex hull of points as triangles of input
// indices, wound counterclockwise when seen from outside.
//
// Axis aligned input, such as a cube, is handled. Colinear or coplanar points
// that crowd the boundary can give sliver faces, and input the builder cannot
// close a surface over fails with ErrDegenerate.
func Build(points []Point, options ...Option) (result []Face, err error) {
	defer func() {
		recoveredErr := HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	c := newConfig(options)
	return internal.ConvexHull3D(points, c.hull), nil
}

// Compute the convex hull of points in the plane as input indices, starting
// at the lowest point. Fewer than three points, or a set with no area, gives
// nil, and so does a hull that the chosen algorithm fails to close.
func BuildPlanar(points []PlanarPoint, options ...Option) (result []int) {
	defer func() {
		if HandleHullPanicRecover(recover()) != nil {
			result = nil
		}
	}()
	c := newConfig(options)
	return internal.PlanarHull(points, c.algorithm, c.winding)
}
