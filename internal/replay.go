package internal

// Walk a top level event list from the start, emitting the face each event
// sweeps over and then applying it. The triple must be read before toggling:
// it is the adjacency the event is about to create or destroy.
//
// An insertion and a deletion sweep their triangle in opposite senses, so the
// link state decides the winding. Insertions give (prev, e, next), deletions
// (next, e, prev), and every emitted face of a pass winds the same way.
func (a vertexArena) replay(events []ref, emit func(Face)) {
	for _, e := range events {
		if e == sentinel {
			return
		}
		prev, next := a[e].prev, a[e].next
		if prev == sentinel || next == sentinel {
			throwf(ErrDegenerate, "event on %d would make a face at infinity", a.index(e))
		}
		if a.linked(e) {
			prev, next = next, prev
		}
		emit(Face{a.index(prev), a.index(e), a.index(next)})
		a.toggle(e)
	}
}
