package internal

import "math"

// The builder views the point set as a 2D hull in the x/y plane that evolves
// over time: at time t, a point (x, y, z) sits at (x, z - t*y). At t = -Inf this
// is the lower hull of the x/y projection, and every change the 2D hull goes
// through as t increases is a face of the 3D lower hull (lower in z).

// Orientation of p, q, r projected onto the x/y plane. Negative iff clockwise.
// A sentinel operand always counts as convex, so boundary comparisons never
// block the bridge search.
func (a vertexArena) turn(p, q, r ref) float64 {
	if p == sentinel || q == sentinel || r == sentinel {
		return 1
	}
	vp, vq, vr := &a[p], &a[q], &a[r]
	return (vq.x-vp.x)*(vr.y-vp.y) - (vr.x-vp.x)*(vq.y-vp.y)
}

// The moment when turn(p, q, r) changes sign, i.e. when the three points become
// collinear in the moving projection. This is the ordering key for events. It
// is +Inf when any operand is the sentinel. A zero x/y turn gives ±Inf or NaN,
// neither of which the merge loop ever selects.
func (a vertexArena) time(p, q, r ref) float64 {
	if p == sentinel || q == sentinel || r == sentinel {
		return math.Inf(1)
	}
	vp, vq, vr := &a[p], &a[q], &a[r]
	return ((vq.x-vp.x)*(vr.z-vp.z) - (vr.x-vp.x)*(vq.z-vp.z)) / a.turn(p, q, r)
}

// Orient3D is six times the signed volume of the tetrahedron a, b, c, d. It is
// positive when d lies on the side (b-a)×(c-a) points to, i.e. in front of the
// counterclockwise face a, b, c.
func Orient3D(a, b, c, d Point) float64 {
	return b.Sub(a).Cross(c.Sub(a)).Dot(d.Sub(a))
}
