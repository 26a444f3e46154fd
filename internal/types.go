package internal

import (
	"math"

	"github.com/golang/geo/r3"
)

// Point is an input coordinate triple. Points are never modified; the builder
// copies the coordinates it needs into its own arena.
type Point = r3.Vector

// Face is a triangle of the hull boundary given as indices into the input
// points. Seen from outside the hull, the three points wind counterclockwise,
// so (B-A)×(C-A) is the outward normal.
type Face [3]int

// A ref is a stable handle into a vertexArena. The zero ref is the sentinel: it
// sits at infinity, terminates every event list, and stands in for a missing
// neighbor. Comparing against it is always by handle, never by coordinates.
type ref int32

const sentinel ref = 0

type vertex struct {
	x, y, z float64
	// Current hull adjacency. These change repeatedly while merging and only
	// settle once the top level splice is done.
	prev, next ref
}

// A vertexArena owns every vertex of one pass. Slot 0 is the sentinel; input
// point i lives in slot i+1. The sentinel's links are scratch space: toggling a
// vertex at the end of a chain may write to them, and nothing reads them back
// except through another toggle.
type vertexArena []vertex

// Build an arena from input points. When flip is set, z is negated, which turns
// the upper hull into a lower hull.
func newVertexArena(points []Point, flip bool) vertexArena {
	if len(points) >= math.MaxInt32 {
		fatalf("too many points for a vertex arena: %d", len(points))
	}
	arena := make(vertexArena, len(points)+1)
	inf := math.Inf(1)
	arena[sentinel] = vertex{x: inf, y: inf, z: inf}
	for i, p := range points {
		z := p.Z
		if flip {
			z = -z
		}
		arena[i+1] = vertex{x: p.X, y: p.Y, z: z}
	}
	return arena
}

// Number of real vertices, not counting the sentinel.
func (a vertexArena) size() int {
	return len(a) - 1
}

// Input index of a handle. The sentinel maps to -1.
func (a vertexArena) index(r ref) int {
	return int(r) - 1
}

// All real handles, in input order.
func (a vertexArena) refs() []ref {
	refs := make([]ref, a.size())
	for i := range refs {
		refs[i] = ref(i + 1)
	}
	return refs
}

// Is r currently spliced in between its recorded neighbors? If not, the next
// toggle on r is an insertion.
func (a vertexArena) linked(r ref) bool {
	return a[a[r].prev].next == r
}

// Toggle the adjacency of r. If r is not linked to its recorded prev/next, link
// it in; otherwise unlink it. The effect depends only on the current link
// state, which is what lets an event list be replayed.
func (a vertexArena) toggle(r ref) {
	prev, next := a[r].prev, a[r].next
	if a[prev].next != r {
		// insert
		a[prev].next = r
		a[next].prev = r
	} else {
		// delete
		a[prev].next = next
		a[next].prev = prev
	}
}
