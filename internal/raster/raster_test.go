package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-tessellator/internal/tess"
	"shape-tessellator/internal/viewmatrix"
)

var identityBary = [3][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

func pixel(fb *FrameBuffer, x, y int) [4]uint8 {
	i := (y*fb.Width + x) * 4
	return [4]uint8{fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3]}
}

func TestRasterizeTriangleEdgesAndFill(t *testing.T) {
	fb := NewFrameBuffer(64, 64)
	st := DefaultStyle()
	st.LineWidth = 1.5
	px := []float64{4, 60, 4}
	py := []float64{4, 4, 60}
	pz := []float64{0, 0, 0}
	RasterizeTriangle(fb, px, py, pz, [3]int{0, 1, 2}, identityBary, &st)

	edge := [4]uint8{st.Edge[0], st.Edge[1], st.Edge[2], 255}
	fill := [4]uint8{st.Fill[0], st.Fill[1], st.Fill[2], 255}
	assert.Equal(t, edge, pixel(fb, 20, 4), "top edge")
	assert.Equal(t, edge, pixel(fb, 4, 20), "left edge")
	assert.Equal(t, fill, pixel(fb, 15, 15), "interior")
	assert.Equal(t, [4]uint8{}, pixel(fb, 50, 50), "outside")
	assert.Greater(t, fb.Covered(), 1000)
}

func TestRasterizeTriangleDepth(t *testing.T) {
	fb := NewFrameBuffer(32, 32)
	st := DefaultStyle()
	st.LineWidth = 0
	st.ZMin, st.ZMax = -1, 1
	px := []float64{0, 32, 0}
	py := []float64{0, 0, 32}

	RasterizeTriangle(fb, px, py, []float64{1, 1, 1}, [3]int{0, 1, 2}, identityBary, &st)
	near := pixel(fb, 5, 5)
	RasterizeTriangle(fb, px, py, []float64{-1, -1, -1}, [3]int{0, 1, 2}, identityBary, &st)
	assert.Equal(t, near, pixel(fb, 5, 5), "farther triangle is hidden")
	assert.Equal(t, st.Fill[0], near[0])

	fb2 := NewFrameBuffer(32, 32)
	RasterizeTriangle(fb2, px, py, []float64{-1, -1, -1}, [3]int{0, 1, 2}, identityBary, &st)
	far := pixel(fb2, 5, 5)
	assert.Less(t, far[0], near[0], "depth cue darkens far surfaces")
}

func TestRasterizeTriangleSkipsDegenerate(t *testing.T) {
	fb := NewFrameBuffer(16, 16)
	st := DefaultStyle()
	RasterizeTriangle(fb, []float64{2, 8, 14}, []float64{2, 8, 14}, []float64{0, 0, 0}, [3]int{0, 1, 2}, identityBary, &st)
	RasterizeTriangle(fb, []float64{2, 8}, []float64{2, 8}, []float64{0, 0}, [3]int{0, 1, 2}, identityBary, &st)
	assert.Zero(t, fb.Covered())
}

func TestRenderMesh(t *testing.T) {
	for _, k := range tess.Kinds {
		m, err := tess.Generate(k, 12, 6)
		require.NoError(t, err)
		img := RenderMesh(m, viewmatrix.DefaultView(), 64, 2, DefaultStyle())
		assert.Equal(t, 128, img.Bounds().Dx(), k.String())

		// corners stay transparent, center is covered
		assert.Zero(t, img.NRGBAAt(0, 0).A, k.String())
		assert.Equal(t, uint8(255), img.NRGBAAt(64, 64).A, k.String())
	}
}

func TestRenderMeshEmpty(t *testing.T) {
	img := RenderMesh(&tess.Mesh{}, viewmatrix.DefaultView(), 8, 0, DefaultStyle())
	assert.Equal(t, 8, img.Bounds().Dx())
}
