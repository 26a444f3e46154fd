package internal

import (
	"math/rand"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a hull is valid. See ValidateHull for the rules. On
// failure, the points and faces are dumped so the case can be reproduced.
func AssertValidHull(t *testing.T, points []Point, faces []Face) {
	t.Helper()
	err := ValidateHull(points, faces)
	if err != nil && len(points) <= 50 {
		t.Logf("points: %s", pretty.Sprint(points))
		t.Logf("faces: %s", pretty.Sprint(faces))
	}
	require.NoError(t, err)
}

// Put a face into a canonical rotation, with the smallest index first. The
// cyclic order, and so the winding, is kept.
func canonicalFace(f Face) Face {
	for f[0] > f[1] || f[0] > f[2] {
		f = Face{f[1], f[2], f[0]}
	}
	return f
}

func faceSet(faces []Face) map[Face]struct{} {
	set := make(map[Face]struct{}, len(faces))
	for _, f := range faces {
		set[canonicalFace(f)] = struct{}{}
	}
	return set
}

func hullVertices(faces []Face) map[int]struct{} {
	set := make(map[int]struct{})
	for _, f := range faces {
		for _, i := range f {
			set[i] = struct{}{}
		}
	}
	return set
}

func randomPoints(rng *rand.Rand, n int, scale float64) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: (rng.Float64()*2 - 1) * scale,
			Y: (rng.Float64()*2 - 1) * scale,
			Z: (rng.Float64()*2 - 1) * scale,
		}
	}
	return points
}

func tetrahedron() []Point {
	return []Point{
		{X: 0, Y: 0, Z: 0},
		{X: 3, Y: 1, Z: 0.5},
		{X: 1, Y: 4, Z: 1},
		{X: 1.5, Y: 1.2, Z: 5},
	}
}

func TestValidateHull(t *testing.T) {
	points := tetrahedron()
	good := []Face{{0, 2, 1}, {1, 3, 0}, {3, 2, 0}, {2, 3, 1}}
	assert.NoError(t, ValidateHull(points, good))

	t.Run("no faces", func(t *testing.T) {
		assert.EqualError(t, ValidateHull(points, nil), "hull has no faces")
	})

	t.Run("index out of range", func(t *testing.T) {
		faces := append([]Face{{0, 2, 7}}, good[1:]...)
		assert.ErrorContains(t, ValidateHull(points, faces), "out of range")
	})

	t.Run("repeated vertex", func(t *testing.T) {
		faces := append([]Face{{0, 2, 2}}, good[1:]...)
		assert.ErrorContains(t, ValidateHull(points, faces), "repeated vertex")
	})

	t.Run("inward face", func(t *testing.T) {
		faces := append([]Face{{0, 1, 2}}, good[1:]...)
		assert.Error(t, ValidateHull(points, faces))
	})

	t.Run("all faces inward", func(t *testing.T) {
		var faces []Face
		for _, f := range good {
			faces = append(faces, Face{f[2], f[1], f[0]})
		}
		assert.ErrorContains(t, ValidateHull(points, faces), "in front of it")
	})

	t.Run("open surface", func(t *testing.T) {
		assert.ErrorContains(t, ValidateHull(points, good[:3]), "no twin")
	})

	t.Run("missing point", func(t *testing.T) {
		outside := append(tetrahedron(), Point{X: 1, Y: 1, Z: -3})
		assert.ErrorContains(t, ValidateHull(outside, good), "in front of it")
	})
}

func TestValidateSurface(t *testing.T) {
	good := []Face{{0, 2, 1}, {1, 3, 0}, {3, 2, 0}, {2, 3, 1}}
	assert.NoError(t, validateSurface(4, good))
	assert.ErrorContains(t, validateSurface(3, good), "out of range")

	// Two closed surfaces are not one sphere
	twice := append([]Face(nil), good...)
	for _, f := range good {
		twice = append(twice, Face{f[0] + 4, f[1] + 4, f[2] + 4})
	}
	assert.ErrorContains(t, validateSurface(8, twice), "euler characteristic is 4")
}

func TestCanonicalFace(t *testing.T) {
	assert.Equal(t, Face{1, 5, 3}, canonicalFace(Face{5, 3, 1}))
	assert.Equal(t, Face{1, 5, 3}, canonicalFace(Face{3, 1, 5}))
	assert.Equal(t, Face{1, 5, 3}, canonicalFace(Face{1, 5, 3}))
	assert.NotEqual(t, canonicalFace(Face{1, 3, 5}), canonicalFace(Face{1, 5, 3}))
}
