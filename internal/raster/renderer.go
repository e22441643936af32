package raster

import (
	"image"
	"math"

	"shape-tessellator/internal/tess"
	"shape-tessellator/internal/viewmatrix"
)

// RenderMesh draws a wireframe snapshot of m at size×supersample pixels.
// Only the position and barycentric streams are read.
func RenderMesh(m *tess.Mesh, view viewmatrix.View, size, supersample int, st Style) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample
	if m.NumTriangles() == 0 {
		return image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	}

	margin := 16 * supersample
	pr := viewmatrix.ProjectMesh(m, view.Matrix(), renderSize, margin)

	st.ZMin, st.ZMax = math.Inf(1), math.Inf(-1)
	for _, z := range pr.PZ {
		st.ZMin = math.Min(st.ZMin, z)
		st.ZMax = math.Max(st.ZMax, z)
	}
	st.LineWidth *= float64(supersample)

	fb := NewFrameBuffer(renderSize, renderSize)
	for t := 0; t < m.NumTriangles(); t++ {
		i := t * 3
		vi := [3]int{int(m.Indices[i]), int(m.Indices[i+1]), int(m.Indices[i+2])}
		bary := [3][3]float32{m.Barycentric[vi[0]], m.Barycentric[vi[1]], m.Barycentric[vi[2]]}
		RasterizeTriangle(fb, pr.PX, pr.PY, pr.PZ, vi, bary, &st)
	}
	return fb.Image()
}
