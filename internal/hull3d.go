package internal

import (
	"io"
	"math"
)

type HullOptions struct {
	// If set, every merge and event is traced here.
	Trace io.Writer
	// Colour the trace with ANSI escapes.
	Color bool
}

// Compute the boundary of the convex hull of points as counterclockwise
// (outward facing) triangles.
//
// One run of the builder only finds the lower hull, so the points go through it
// twice: once as given, and once with z negated, which turns the upper hull
// into a lower hull. Faces from the mirrored run come out inside-out and are
// reversed.
//
// The builder needs points in general position, so it runs on a rotated and
// jittered copy (see generalPosition). Input with many colinear or coplanar
// points can still give sliver faces, and a surface that fails to close is
// reported as ErrDegenerate rather than returned.
func ConvexHull3D(points []Point, options HullOptions) []Face {
	if len(points) < 3 {
		throwf(ErrTooFewPoints, "got %d points", len(points))
	}
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) || !isFinite(p.Z) {
			throwf(ErrNonFinite, "point %d is %v", i, p)
		}
	}

	moved := generalPosition(points)
	trace := newTracer(options.Trace, options.Color)
	// A hull over n points in general position has 2n-4 faces
	faces := make([]Face, 0, 2*len(points))
	for _, upper := range []bool{false, true} {
		trace.pass(upper)
		builder := &hullBuilder{
			verts: newVertexArena(moved, upper),
			trace: trace,
		}
		events := builder.lowerHull()
		builder.verts.replay(events, func(face Face) {
			if upper {
				face[0], face[2] = face[2], face[0]
			}
			faces = append(faces, face)
		})
	}
	if err := validateSurface(len(points), faces); err != nil {
		throwf(ErrDegenerate, "%v", err)
	}
	return faces
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
