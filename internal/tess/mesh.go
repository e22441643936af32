// Package tess generates unit-sized triangle meshes for a small, closed set of
// primitives by parametric sampling. Each generator returns a fresh Mesh; the
// package keeps no state between calls, so generators may run concurrently.
package tess

import (
	"errors"
	"fmt"
	"math"
)

// ErrIndexOverflow is returned when a mesh has too many vertices for 16-bit indices.
var ErrIndexOverflow = errors.New("tess: index overflow")

// Canonical barycentric values for the three corners of every triangle.
var baryCorners = [3][3]float32{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// Mesh holds the triangle soup produced by one generator.
// Vertices are not shared between triangles: every corner is emitted
// separately, so the three slices always have the same length.
//
// Positions are homogeneous points with w = 1. Indices is an emission log
// (Indices[i] == i), kept so consumers can issue indexed draws directly.
// A Mesh is never modified after its generator returns.
type Mesh struct {
	Positions   [][4]float32
	Barycentric [][3]float32
	Indices     []uint32
}

// builder appends triangles to a Mesh under construction.
type builder struct {
	m *Mesh
}

func newBuilder(numTris int) *builder {
	n := numTris * 3
	return &builder{m: &Mesh{
		Positions:   make([][4]float32, 0, n),
		Barycentric: make([][3]float32, 0, n),
		Indices:     make([]uint32, 0, n),
	}}
}

// emit appends one triangle. Zero-area triangles are accepted as-is.
func (b *builder) emit(p0, p1, p2 [3]float64) {
	for k, p := range [3][3]float64{p0, p1, p2} {
		nverts := uint32(len(b.m.Positions))
		b.m.Positions = append(b.m.Positions, [4]float32{float32(p[0]), float32(p[1]), float32(p[2]), 1})
		b.m.Barycentric = append(b.m.Barycentric, baryCorners[k])
		b.m.Indices = append(b.m.Indices, nverts)
	}
}

// quad emits a, b, c, d as the two triangles {a,b,c} and {a,c,d}.
func (b *builder) quad(p0, p1, p2, p3 [3]float64) {
	b.emit(p0, p1, p2)
	b.emit(p0, p2, p3)
}

// NumVertices returns the number of emitted vertices.
func (m *Mesh) NumVertices() int {
	return len(m.Positions)
}

// NumTriangles returns the number of emitted triangles.
func (m *Mesh) NumTriangles() int {
	return len(m.Positions) / 3
}

// Triangle returns the Cartesian corners of triangle i.
func (m *Mesh) Triangle(i int) [3][3]float32 {
	var t [3][3]float32
	for k := 0; k < 3; k++ {
		p := m.Positions[i*3+k]
		t[k] = [3]float32{p[0], p[1], p[2]}
	}
	return t
}

// FlatPositions returns positions as a float array with stride 4.
func (m *Mesh) FlatPositions() []float32 {
	out := make([]float32, 0, len(m.Positions)*4)
	for _, p := range m.Positions {
		out = append(out, p[0], p[1], p[2], p[3])
	}
	return out
}

// FlatPositions3 returns positions with the w component dropped (stride 3),
// the layout lit shader programs expect.
func (m *Mesh) FlatPositions3() []float32 {
	out := make([]float32, 0, len(m.Positions)*3)
	for _, p := range m.Positions {
		out = append(out, p[0], p[1], p[2])
	}
	return out
}

// FlatBarycentric returns barycentric coordinates with stride 3.
func (m *Mesh) FlatBarycentric() []float32 {
	out := make([]float32, 0, len(m.Barycentric)*3)
	for _, b := range m.Barycentric {
		out = append(out, b[0], b[1], b[2])
	}
	return out
}

// Indices16 converts the index stream to 16-bit element indices.
func (m *Mesh) Indices16() ([]uint16, error) {
	if len(m.Indices) > math.MaxUint16+1 {
		return nil, fmt.Errorf("%w: %d vertices exceed 16-bit range", ErrIndexOverflow, len(m.Indices))
	}
	out := make([]uint16, len(m.Indices))
	for i, idx := range m.Indices {
		out[i] = uint16(idx)
	}
	return out, nil
}

// Bounds returns the axis-aligned bounding box of all positions.
// An empty mesh returns zero vectors.
func (m *Mesh) Bounds() (mn, mx [3]float32) {
	if len(m.Positions) == 0 {
		return
	}
	for k := 0; k < 3; k++ {
		mn[k] = m.Positions[0][k]
		mx[k] = m.Positions[0][k]
	}
	for _, p := range m.Positions[1:] {
		for k := 0; k < 3; k++ {
			if p[k] < mn[k] {
				mn[k] = p[k]
			}
			if p[k] > mx[k] {
				mx[k] = p[k]
			}
		}
	}
	return
}
