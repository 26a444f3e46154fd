package internal

import "math"

// Candidate moves in the chronological merge. The first two replay an event
// from a sub-hull, the rest move one end of the bridge.
type move int

const (
	leftEvent move = iota
	rightEvent
	uForward
	uBackward
	vBackward
	vForward
	moveCount
)

var moveNames = [moveCount]string{"left", "right", "u→", "←u", "←v", "v→"}

func (m move) String() string {
	return moveNames[m]
}

type hullBuilder struct {
	verts vertexArena
	trace *tracer
}

// Compute the lower hull of the n vertices listed from head (in ascending x
// order). On return, the vertices are linked as the hull looks at t = -Inf, and
// out holds every event of this subtree in chronological order, terminated by
// the sentinel. Both out and scratch need room for 2n refs. The children write
// their events into scratch and use out as their own scratch space.
func (b *hullBuilder) build(head ref, n int, out, scratch []ref) {
	a := b.verts
	if n == 1 {
		a[head].prev = sentinel
		a[head].next = sentinel
		out[0] = sentinel
		return
	}

	// Find the last vertex of the left half
	u := head
	for i := 0; i < n/2-1; i++ {
		u = a[u].next
	}
	mid := a[u].next
	v := mid

	split := n / 2 * 2
	b.build(head, n/2, scratch, out)
	b.build(mid, n-n/2, scratch[split:], out[split:])

	// Find the initial bridge
	for {
		if a.turn(u, v, a[v].next) < 0 {
			v = a[v].next
		} else if a.turn(a[u].prev, u, v) < 0 {
			u = a[u].prev
		} else {
			break
		}
	}
	b.trace.merge(a, n, u, v)

	// Merge by tracking the bridge uv over time
	var t [moveCount]float64
	i, j, k := 0, split, 0
	for now := math.Inf(-1); ; {
		l, r := scratch[i], scratch[j]
		t[leftEvent] = a.time(a[l].prev, l, a[l].next)
		t[rightEvent] = a.time(a[r].prev, r, a[r].next)
		t[uForward] = a.time(u, a[u].next, v)
		t[uBackward] = a.time(a[u].prev, u, v)
		t[vBackward] = a.time(u, a[v].prev, v)
		t[vForward] = a.time(u, v, a[v].next)

		// Take the earliest candidate strictly after the last one
		best, next := move(-1), math.Inf(1)
		for m, tm := range t {
			if tm > now && tm < next {
				best, next = move(m), tm
			}
		}
		if best < 0 {
			break
		}

		switch best {
		case leftEvent:
			b.trace.event(a, best, l, next)
			if a[l].x < a[u].x {
				k = record(out, k, l)
			}
			a.toggle(l)
			i++
		case rightEvent:
			b.trace.event(a, best, r, next)
			if a[r].x > a[v].x {
				k = record(out, k, r)
			}
			a.toggle(r)
			j++
		case uForward:
			u = a[u].next
			b.trace.event(a, best, u, next)
			k = record(out, k, u)
		case uBackward:
			b.trace.event(a, best, u, next)
			k = record(out, k, u)
			u = a[u].prev
		case vBackward:
			v = a[v].prev
			b.trace.event(a, best, v, next)
			k = record(out, k, v)
		case vForward:
			b.trace.event(a, best, v, next)
			k = record(out, k, v)
			v = a[v].next
		}
		now = next
	}
	out[k] = sentinel

	// Close the final bridge, then go back in time to restore the links as they
	// were at the start of the merge.
	a[u].next = v
	a[v].prev = u
	for k--; k >= 0; k-- {
		e := out[k]
		if a[e].x <= a[u].x || a[e].x >= a[v].x {
			// Outside the bridge: undo the event
			a.toggle(e)
			if e == u {
				u = a[u].prev
			} else if e == v {
				v = a[v].next
			}
		} else {
			// Between the bridge ends: splice it in and make it an end
			a[u].next = e
			a[e].prev = u
			a[v].prev = e
			a[e].next = v
			if a[e].x < a[mid].x {
				u = e
			} else {
				v = e
			}
		}
	}
	b.trace.splice(a, u, v)
}

// Append r to an event list, keeping room for the terminating sentinel.
func record(events []ref, k int, r ref) int {
	if k >= len(events)-1 {
		fatalf("event list overflow: %d events recorded", k)
	}
	events[k] = r
	return k + 1
}

// Run the builder over every vertex of the arena and return the top level
// event list.
func (b *hullBuilder) lowerHull() []ref {
	n := b.verts.size()
	head := b.verts.sortByX(b.verts.refs())
	out := make([]ref, 2*n)
	scratch := make([]ref, 2*n)
	b.build(head, n, out, scratch)
	return out
}
