package internal

import (
	"math"
	"sort"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/bigxy"
	"github.com/twpayne/go-geom/xy/orientation"
)

type PlanarPoint struct {
	X float64
	Y float64
}

type Winding int

const (
	CounterClockwise Winding = iota
	Clockwise
)

func (w Winding) String() string {
	if w == Clockwise {
		return "clockwise"
	}
	return "counterclockwise"
}

type PlanarAlgorithm int

const (
	// Andrew's monotone chain over the points sorted bottom to top.
	MonotoneChain PlanarAlgorithm = iota
	// Jarvis march. O(nh), which beats the sort when the hull is tiny.
	GiftWrapping
)

func (a PlanarAlgorithm) String() string {
	switch a {
	case MonotoneChain:
		return "monotone"
	case GiftWrapping:
		return "giftwrap"
	}
	return "unknown"
}

const Tolerance = 1e-9

// Floats that differ by less than Tolerance are the same coordinate. Without
// this, points on a nearly horizontal line would sort by noise.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Points are ordered by Y, and points at the same height by X, so that the
// lowest point of a set is unique unless two points coincide.
func (p PlanarPoint) Below(other PlanarPoint) bool {
	if Equal(p.Y, other.Y) {
		return p.X < other.X
	}
	return p.Y < other.Y
}

func (p PlanarPoint) coord() geom.Coord {
	return geom.Coord{p.X, p.Y}
}

func orient(p, q, r PlanarPoint) orientation.Type {
	return bigxy.OrientationIndex(p.coord(), q.coord(), r.coord())
}

// Compute the convex hull of a set of points in the plane, as indices into
// points. The result starts at the lowest point and has no collinear or
// repeated vertices. Fewer than three points, or a set with no area, gives nil.
// An unknown algorithm also gives nil.
func PlanarHull(points []PlanarPoint, algorithm PlanarAlgorithm, winding Winding) []int {
	if len(points) < 3 {
		return nil
	}

	var hull []int
	switch algorithm {
	case MonotoneChain:
		hull = monotoneChain(points)
	case GiftWrapping:
		hull = giftWrap(points)
	}
	if len(hull) < 3 {
		return nil
	}

	if winding == Clockwise {
		// The start stays put
		for i, j := 1, len(hull)-1; i < j; i, j = i+1, j-1 {
			hull[i], hull[j] = hull[j], hull[i]
		}
	}
	return hull
}

func monotoneChain(points []PlanarPoint) []int {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return points[order[i]].Below(points[order[j]])
	})

	hull := make([]int, 0, len(points)+1)
	push := func(i, floor int) {
		for len(hull) > floor && orient(points[hull[len(hull)-2]], points[hull[len(hull)-1]], points[i]) != orientation.CounterClockwise {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, i)
	}

	// Right chain going up
	for _, i := range order {
		push(i, 1)
	}
	// Left chain coming back down. The floor stops it from eating the right chain.
	floor := len(hull)
	for k := len(order) - 2; k >= 0; k-- {
		push(order[k], floor)
	}
	// The bottom point closes the loop and appears twice
	return hull[:len(hull)-1]
}

func giftWrap(points []PlanarPoint) []int {
	start := 0
	for i, p := range points {
		if p.Below(points[start]) {
			start = i
		}
	}

	var hull []int
	current := start
	for {
		hull = append(hull, current)
		if len(hull) > len(points) {
			fatalf("gift wrapping did not close after %d points", len(hull))
		}

		here := points[current]
		candidate := -1
		for i, p := range points {
			if p == here {
				continue
			}
			if candidate < 0 {
				candidate = i
				continue
			}
			switch orient(here, points[candidate], p) {
			case orientation.Clockwise:
				candidate = i
			case orientation.Collinear:
				if squaredDistance(here, p) > squaredDistance(here, points[candidate]) {
					candidate = i
				}
			}
		}
		// Every point coincides with the start
		if candidate < 0 {
			return nil
		}
		if points[candidate] == points[start] {
			return hull
		}
		current = candidate
	}
}

func squaredDistance(p, q PlanarPoint) float64 {
	dx, dy := q.X-p.X, q.Y-p.Y
	return dx*dx + dy*dy
}
