package internal

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Jitter is this fraction of the bounding diameter
const jitter = 1e-9

// A fixed rotation with no special relation to the axes
var skew = mgl64.Rotate3DX(0.5).Mul3(mgl64.Rotate3DY(0.7)).Mul3(mgl64.Rotate3DZ(0.3))

// Move a copy of points into general position for the builder.
//
// Axis aligned input is full of shared x values and faces parallel to the z
// axis, so the points are centered and turned by the skew rotation. Four
// coplanar hull points, like the corners of a cube face, are then split apart
// by jittering every coordinate with a seeded offset far below anything the
// output could show. Faces are index triples, so the output only changes
// where the input was degenerate to begin with.
func generalPosition(points []Point) []Point {
	lo, hi := boundingBox(points)
	center := lo.Add(hi).Mul(0.5)
	scale := jitter * boundingDiameter(points)
	rng := rand.New(rand.NewSource(1))

	moved := make([]Point, len(points))
	for i, p := range points {
		d := p.Sub(center)
		v := skew.Mul3x1(mgl64.Vec3{d.X, d.Y, d.Z})
		moved[i] = Point{
			X: v[0] + scale*(2*rng.Float64()-1),
			Y: v[1] + scale*(2*rng.Float64()-1),
			Z: v[2] + scale*(2*rng.Float64()-1),
		}
	}
	return moved
}
