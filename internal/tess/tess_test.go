package tess

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertStreams checks the stream invariants every generator must hold.
func assertStreams(t *testing.T, m *Mesh) {
	t.Helper()
	require.NotNil(t, m)
	require.NotEmpty(t, m.Positions)
	assert.Len(t, m.Indices, len(m.Positions))
	assert.Len(t, m.Barycentric, len(m.Positions))
	assert.Zero(t, len(m.Positions)%3)

	for i, idx := range m.Indices {
		if !assert.Equal(t, uint32(i), idx, "index %d", i) {
			break
		}
	}
	for i := 0; i < len(m.Barycentric); i += 3 {
		if !assert.Equal(t, baryCorners[:], m.Barycentric[i:i+3], "triangle %d", i/3) {
			break
		}
	}
	for i, p := range m.Positions {
		if !assert.Equal(t, float32(1), p[3], "w of vertex %d", i) {
			break
		}
	}
}

// faceNormal returns the unnormalized normal of triangle i using the
// right-hand rule over its emission order.
func faceNormal(m *Mesh, i int) (n, centroid [3]float64) {
	tri := m.Triangle(i)
	var p [3][3]float64
	for k := 0; k < 3; k++ {
		for c := 0; c < 3; c++ {
			p[k][c] = float64(tri[k][c])
			centroid[c] += p[k][c] / 3
		}
	}
	e1 := [3]float64{p[1][0] - p[0][0], p[1][1] - p[0][1], p[1][2] - p[0][2]}
	e2 := [3]float64{p[2][0] - p[0][0], p[2][1] - p[0][1], p[2][2] - p[0][2]}
	n = [3]float64{
		e1[1]*e2[2] - e1[2]*e2[1],
		e1[2]*e2[0] - e1[0]*e2[2],
		e1[0]*e2[1] - e1[1]*e2[0],
	}
	return
}

// assertOutward checks that every non-degenerate triangle faces away from
// the origin. All primitives here are convex and contain the origin.
func assertOutward(t *testing.T, m *Mesh) (degenerate int) {
	t.Helper()
	for i := 0; i < m.NumTriangles(); i++ {
		n, c := faceNormal(m, i)
		area := 0.5 * math.Sqrt(n[0]*n[0]+n[1]*n[1]+n[2]*n[2])
		if area < 1e-9 {
			degenerate++
			continue
		}
		dot := n[0]*c[0] + n[1]*c[1] + n[2]*c[2]
		if !assert.Greater(t, dot, 0.0, "triangle %d faces inward", i) {
			return
		}
	}
	return
}

func TestEmit(t *testing.T) {
	b := newBuilder(2)
	b.emit([3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{0, 1, 0})
	b.emit([3]float64{1, 1, 1}, [3]float64{1, 1, 1}, [3]float64{1, 1, 1}) // zero area is kept

	m := b.m
	assertStreams(t, m)
	assert.Equal(t, 2, m.NumTriangles())
	assert.Equal(t, [4]float32{1, 0, 0, 1}, m.Positions[1])
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, m.Indices)
	assert.Equal(t, [3][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, m.Triangle(0))
}

func TestCube(t *testing.T) {
	tests := []struct {
		subdivisions int
		tris         int
	}{
		{1, 12},
		{2, 48},
		{3, 108},
		{0, 12},
		{-4, 12},
	}
	for _, tt := range tests {
		m := Cube(tt.subdivisions)
		assertStreams(t, m)
		assert.Equal(t, tt.tris, m.NumTriangles(), "Cube(%d)", tt.subdivisions)
		assert.Len(t, m.Indices, tt.tris*3)
		assert.Zero(t, assertOutward(t, m), "Cube(%d) degenerate triangles", tt.subdivisions)

		for i, p := range m.Positions {
			for k := 0; k < 3; k++ {
				if !assert.True(t, p[k] >= -0.5 && p[k] <= 0.5, "vertex %d axis %d = %v", i, k, p[k]) {
					return
				}
			}
		}
		mn, mx := m.Bounds()
		assert.Equal(t, [3]float32{-0.5, -0.5, -0.5}, mn)
		assert.Equal(t, [3]float32{0.5, 0.5, 0.5}, mx)
	}
}

func TestCubeClampMatchesOne(t *testing.T) {
	assert.Equal(t, Cube(1), Cube(0))
	assert.Equal(t, Cube(1), Cube(-3))
}

func TestCylinder(t *testing.T) {
	tests := []struct {
		radial, height int
		tris           int
	}{
		{8, 1, 32},
		{8, 4, 80},
		{3, 1, 12},
		{1, 1, 12},
		{16, 0, 64},
	}
	for _, tt := range tests {
		m := Cylinder(tt.radial, tt.height)
		assertStreams(t, m)
		assert.Equal(t, tt.tris, m.NumTriangles(), "Cylinder(%d, %d)", tt.radial, tt.height)
		assert.Zero(t, assertOutward(t, m))

		for i, p := range m.Positions {
			if !assert.True(t, p[1] >= -0.5 && p[1] <= 0.5, "vertex %d y = %v", i, p[1]) {
				return
			}
			rr := math.Hypot(float64(p[0]), float64(p[2]))
			if !assert.LessOrEqual(t, rr, 0.5+1e-6, "vertex %d radius", i) {
				return
			}
		}
	}
	assert.Equal(t, Cylinder(3, 2), Cylinder(1, 2))
	assert.Equal(t, Cylinder(5, 1), Cylinder(5, -1))
}

func TestCylinderSideOnSurface(t *testing.T) {
	m := Cylinder(12, 3)
	side := 12 * 3 * 2 * 3
	for i, p := range m.Positions[:side] {
		rr := math.Hypot(float64(p[0]), float64(p[2]))
		if !assert.InDelta(t, 0.5, rr, 1e-6, "side vertex %d", i) {
			return
		}
	}
	mn, mx := m.Bounds()
	assert.InDelta(t, -0.5, mn[1], 1e-7)
	assert.InDelta(t, 0.5, mx[1], 1e-7)
}

func TestCone(t *testing.T) {
	tests := []struct {
		radial, height int
		tris           int
	}{
		{8, 1, 24},
		{8, 3, 56},
		{2, 1, 9},
		{6, 0, 18},
	}
	for _, tt := range tests {
		m := Cone(tt.radial, tt.height)
		assertStreams(t, m)
		assert.Equal(t, tt.tris, m.NumTriangles(), "Cone(%d, %d)", tt.radial, tt.height)

		// one zero-area triangle per wedge where the top band meets the apex
		r, _ := clampDivisions(tt.radial, tt.height)
		assert.Equal(t, r, assertOutward(t, m))
	}
}

func TestConeTaper(t *testing.T) {
	m := Cone(10, 4)
	for i, p := range m.Positions {
		want := 0.5 * (1 - (float64(p[1]) + 0.5))
		rr := math.Hypot(float64(p[0]), float64(p[2]))
		if !assert.LessOrEqual(t, rr, want+1e-6, "vertex %d", i) {
			return
		}
	}
	var apex int
	for _, p := range m.Positions {
		if p[1] == 0.5 {
			apex++
			assert.InDelta(t, 0, p[0], 1e-7)
			assert.InDelta(t, 0, p[2], 1e-7)
		}
	}
	assert.Equal(t, 10*3, apex)
}

func TestSphere(t *testing.T) {
	tests := []struct {
		slices, stacks int
		tris           int
	}{
		{10, 10, 180},
		{16, 16, 480},
		{12, 20, 456},
		{3, 3, 180},
		{0, 24, 460},
	}
	for _, tt := range tests {
		m := Sphere(tt.slices, tt.stacks)
		assertStreams(t, m)
		assert.Equal(t, tt.tris, m.NumTriangles(), "Sphere(%d, %d)", tt.slices, tt.stacks)
		assert.Zero(t, assertOutward(t, m))

		for i, p := range m.Positions {
			l := math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2]))
			if !assert.InDelta(t, 0.5, l, 1e-6, "vertex %d", i) {
				return
			}
		}
	}
	assert.Equal(t, Sphere(10, 10), Sphere(4, 9))
}

func TestSpherePoles(t *testing.T) {
	m := Sphere(10, 10)
	// north fan first: one triangle per slice, pole in the middle slot
	for j := 0; j < 10; j++ {
		assert.Equal(t, [4]float32{0, 0.5, 0, 1}, m.Positions[j*3+1])
	}
	// south fan last, pole in the final slot
	n := m.NumTriangles()
	for j := n - 10; j < n; j++ {
		assert.Equal(t, [4]float32{0, -0.5, 0, 1}, m.Positions[j*3+2])
	}
}

func TestDeterministic(t *testing.T) {
	for _, k := range Kinds {
		a, err := Generate(k, 7, 5)
		require.NoError(t, err)
		b, err := Generate(k, 7, 5)
		require.NoError(t, err)
		assert.Equal(t, a, b, k.String())
	}
}

func TestConcurrentGeneration(t *testing.T) {
	want := Sphere(24, 18)
	done := make(chan *Mesh, 8)
	for i := 0; i < 8; i++ {
		go func() { done <- Sphere(24, 18) }()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, want, <-done)
	}
}

func TestFlatStreams(t *testing.T) {
	m := Cube(1)
	flat := m.FlatPositions()
	require.Len(t, flat, 36*4)
	flat3 := m.FlatPositions3()
	require.Len(t, flat3, 36*3)
	for i := 0; i < 36; i++ {
		assert.Equal(t, flat[i*4:i*4+3], flat3[i*3:i*3+3])
		assert.Equal(t, float32(1), flat[i*4+3])
	}

	bary := m.FlatBarycentric()
	require.Len(t, bary, 36*3)
	assert.Equal(t, []float32{1, 0, 0, 0, 1, 0, 0, 0, 1}, bary[:9])
}

func TestIndices16(t *testing.T) {
	idx, err := Cube(2).Indices16()
	require.NoError(t, err)
	require.Len(t, idx, 48*3)
	assert.Equal(t, uint16(143), idx[143])

	// 6*60*60*2*3 = 129600 vertices
	_, err = Cube(60).Indices16()
	assert.ErrorIs(t, err, ErrIndexOverflow)
}

func TestBoundsEmpty(t *testing.T) {
	mn, mx := (&Mesh{}).Bounds()
	assert.Equal(t, [3]float32{}, mn)
	assert.Equal(t, [3]float32{}, mx)
}
