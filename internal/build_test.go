package internal

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildLowerHull(points []Point) (vertexArena, []ref) {
	builder := &hullBuilder{verts: newVertexArena(points, false)}
	events := builder.lowerHull()
	return builder.verts, events
}

// Events up to (not including) the terminating sentinel
func eventList(events []ref) []ref {
	for i, e := range events {
		if e == sentinel {
			return events[:i]
		}
	}
	panic("event list is not terminated")
}

func TestBuild_SinglePoint(t *testing.T) {
	a := newVertexArena([]Point{{X: 1, Y: 2, Z: 3}}, false)
	out := make([]ref, 2)
	scratch := make([]ref, 2)
	a[1].prev, a[1].next = 1, 1
	builder := &hullBuilder{verts: a}
	builder.build(1, 1, out, scratch)

	assert.Equal(t, sentinel, out[0])
	assert.Equal(t, sentinel, a[1].prev)
	assert.Equal(t, sentinel, a[1].next)
}

func TestBuild_TwoPoints(t *testing.T) {
	a, events := buildLowerHull([]Point{{X: 0}, {X: 1}})
	assert.Empty(t, eventList(events))
	assert.Equal(t, ref(2), a[1].next)
	assert.Equal(t, ref(1), a[2].prev)
	assert.Equal(t, sentinel, a[1].prev)
	assert.Equal(t, sentinel, a[2].next)
}

func TestBuild_MiddlePointAbove(t *testing.T) {
	// At t = -Inf, the middle point is above the chord, so it is not on the
	// hull yet. It enters once its falling z catches up.
	a, events := buildLowerHull([]Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 2, Y: 0, Z: 0},
	})
	require.Equal(t, []ref{2}, eventList(events))
	assert.Equal(t, ref(3), a[1].next)
	assert.Equal(t, ref(1), a[3].prev)
	assert.False(t, a.linked(2))
	assert.Equal(t, ref(1), a[2].prev)
	assert.Equal(t, ref(3), a[2].next)
}

func TestBuild_MiddlePointBelow(t *testing.T) {
	a, events := buildLowerHull([]Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: -1, Z: 0},
		{X: 2, Y: 0, Z: 0},
	})
	require.Equal(t, []ref{2}, eventList(events))
	assert.True(t, a.linked(2))
	assert.Equal(t, []ref{1, 2, 3}, collectList(a, 1))
}

func TestBuild_Tetrahedron(t *testing.T) {
	a, events := buildLowerHull(tetrahedron())
	require.Equal(t, []ref{3}, eventList(events))
	// Only the two extreme points are on the hull at t = -Inf
	assert.Equal(t, []ref{1, 2}, collectList(a, 1))
}

// Replaying the events must take the hull from t = -Inf to t = +Inf, where the
// projection is the upper hull of (x, y): every vertex on it has all other
// points below its neighboring edges.
func TestBuild_ReplayEndsOnUpperChain(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	points := randomPoints(rng, 200, 10)
	a, events := buildLowerHull(points)
	a.replay(events, func(Face) {})

	// Sorting again would overwrite the links, so find the start by hand
	leftmost := ref(1)
	for _, r := range a.refs() {
		if a[r].x < a[leftmost].x {
			leftmost = r
		}
	}
	chain := collectList(a, leftmost)
	require.GreaterOrEqual(t, len(chain), 2)
	for i := 2; i < len(chain); i++ {
		assert.Less(t, a.turn(chain[i-2], chain[i-1], chain[i]), 0.0, "chain must turn clockwise")
	}
}

func TestBuild_EventCount(t *testing.T) {
	// A lower hull over n points in general position has at most 2n-5 faces,
	// and one event per face.
	rng := rand.New(rand.NewSource(8))
	for _, n := range []int{4, 5, 17, 64, 333} {
		points := randomPoints(rng, n, 1)
		_, events := buildLowerHull(points)
		assert.LessOrEqual(t, len(eventList(events)), 2*n-5)
	}
}

func TestRecord_Overflow(t *testing.T) {
	events := make([]ref, 3)
	k := record(events, 0, 1)
	k = record(events, k, 2)
	assert.Equal(t, 2, k)
	assert.Panics(t, func() {
		record(events, k, 3)
	})
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "left", leftEvent.String())
	assert.Equal(t, "v→", vForward.String())
}
