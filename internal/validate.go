package internal

import (
	"math"

	"github.com/pkg/errors"
)

// Relative tolerance for the flatness and outwardness checks
const validateTolerance = 1e-9

// Check that faces form the closed, outward facing boundary of the convex hull
// of points:
//
//  1. Every face has three distinct indices into points, and non-zero area.
//  2. Every directed edge is used by exactly one face, and its reverse by
//     another, so the surface is closed and consistently wound.
//  3. V - E + F = 2.
//  4. No point lies in front of any face.
func ValidateHull(points []Point, faces []Face) error {
	if err := validateSurface(len(points), faces); err != nil {
		return err
	}
	diameter := boundingDiameter(points)

	for i, f := range faces {
		a, b, c := points[f[0]], points[f[1]], points[f[2]]
		normal := b.Sub(a).Cross(c.Sub(a))
		if normal.Norm() <= validateTolerance*diameter*diameter {
			return errors.Errorf("face %d %v: zero area", i, f)
		}
		tolerance := validateTolerance * normal.Norm() * diameter
		for j, p := range points {
			if Orient3D(a, b, c, p) > tolerance {
				return errors.Errorf("face %d %v: point %d is in front of it", i, f, j)
			}
		}
	}
	return nil
}

// The combinatorial half of ValidateHull: faces over n points form a closed,
// consistently wound sphere. This needs no coordinates and runs in time
// linear in the number of faces.
func validateSurface(n int, faces []Face) error {
	if len(faces) == 0 {
		return errors.New("hull has no faces")
	}

	edges := make(map[[2]int]int, 3*len(faces))
	vertices := make(map[int]struct{})
	for i, f := range faces {
		for _, index := range f {
			if index < 0 || index >= n {
				return errors.Errorf("face %d %v: index %d out of range", i, f, index)
			}
			vertices[index] = struct{}{}
		}
		if f[0] == f[1] || f[1] == f[2] || f[2] == f[0] {
			return errors.Errorf("face %d %v: repeated vertex", i, f)
		}
		for k := range f {
			edges[[2]int{f[k], f[(k+1)%3]}]++
		}
	}

	for edge, count := range edges {
		if count > 1 {
			return errors.Errorf("edge %d-%d is used by %d faces in the same direction", edge[0], edge[1], count)
		}
		if _, ok := edges[[2]int{edge[1], edge[0]}]; !ok {
			return errors.Errorf("edge %d-%d has no twin", edge[0], edge[1])
		}
	}

	v, e, f := len(vertices), len(edges)/2, len(faces)
	if v-e+f != 2 {
		return errors.Errorf("euler characteristic is %d (V=%d, E=%d, F=%d)", v-e+f, v, e, f)
	}
	return nil
}

// Length of the bounding box diagonal, or 1 for a single point.
func boundingDiameter(points []Point) float64 {
	lo, hi := boundingBox(points)
	if d := hi.Sub(lo).Norm(); d > 0 {
		return d
	}
	return 1
}

// Opposite corners of the axis aligned box around points.
func boundingBox(points []Point) (lo, hi Point) {
	if len(points) == 0 {
		return
	}
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo.X, hi.X = math.Min(lo.X, p.X), math.Max(hi.X, p.X)
		lo.Y, hi.Y = math.Min(lo.Y, p.Y), math.Max(hi.Y, p.Y)
		lo.Z, hi.Z = math.Min(lo.Z, p.Z), math.Max(hi.Z, p.Z)
	}
	return
}
