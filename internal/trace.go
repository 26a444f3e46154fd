package internal

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/convexhull/dbg"
)

// Event trace for debugging merges. A nil *tracer is valid and traces nothing,
// so the builder can call it unconditionally.
type tracer struct {
	w  io.Writer
	au aurora.Aurora
}

func newTracer(w io.Writer, color bool) *tracer {
	if w == nil {
		return nil
	}
	return &tracer{w: w, au: aurora.NewAurora(color)}
}

func (t *tracer) printf(format string, args ...interface{}) {
	fmt.Fprintf(t.w, format+"\n", args...)
}

func (t *tracer) pass(upper bool) {
	if t == nil {
		return
	}
	name := "lower"
	if upper {
		name = "upper"
	}
	t.printf("%s", t.au.Bold(fmt.Sprintf("== %s hull", name)))
}

func (t *tracer) merge(a vertexArena, n int, u, v ref) {
	if t == nil {
		return
	}
	t.printf("merge %d points, bridge %s-%s", n, vertexName(a, u), vertexName(a, v))
}

func (t *tracer) event(a vertexArena, m move, r ref, key float64) {
	if t == nil {
		return
	}
	var label aurora.Value
	switch m {
	case leftEvent, rightEvent:
		if a.linked(r) {
			label = t.au.Red(fmt.Sprintf("%s delete", m))
		} else {
			label = t.au.Green(fmt.Sprintf("%s insert", m))
		}
	default:
		label = t.au.Cyan(fmt.Sprintf("bridge %s", m))
	}
	t.printf("  %-16s %s at %g", label, vertexName(a, r), key)
}

func (t *tracer) splice(a vertexArena, u, v ref) {
	if t == nil {
		return
	}
	t.printf("  spliced, bridge %s-%s", vertexName(a, u), vertexName(a, v))
}

func vertexName(a vertexArena, r ref) string {
	return dbg.Index(a.index(r))
}
