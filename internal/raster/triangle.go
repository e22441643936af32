package raster

import "math"

// RasterizeTriangle fills one projected triangle with z-buffering and draws
// its edges wherever the interpolated barycentric attribute comes within
// LineWidth pixels of zero.
//
// This is the hot path: no allocation inside the pixel loop.
func RasterizeTriangle(
	fb *FrameBuffer,
	px, py, pz []float64,
	vi [3]int,
	bary [3][3]float32,
	st *Style,
) {
	nv := len(px)
	for _, i := range vi {
		if i < 0 || i >= nv {
			return
		}
	}

	x0, y0, z0 := px[vi[0]], py[vi[0]], pz[vi[0]]
	x1, y1, z1 := px[vi[1]], py[vi[1]], pz[vi[1]]
	x2, y2, z2 := px[vi[2]], py[vi[2]], pz[vi[2]]

	// Bounding box
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup; edge-on and zero-area triangles draw nothing.
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	// Screen gradients of the three screen weights.
	g0x, g0y := dy12*invDet, dx21*invDet
	g1x, g1y := dy20*invDet, dx02*invDet
	g2x, g2y := -g0x-g1x, -g0y-g1y

	// Each mesh barycentric channel is a linear blend of the screen weights,
	// so its gradient is the same blend of theirs. Dividing by the gradient
	// length turns a channel value into a pixel distance from its edge.
	var invGrad [3]float64
	for c := 0; c < 3; c++ {
		gx := float64(bary[0][c])*g0x + float64(bary[1][c])*g1x + float64(bary[2][c])*g2x
		gy := float64(bary[0][c])*g0y + float64(bary[1][c])*g1y + float64(bary[2][c])*g2y
		l := math.Sqrt(gx*gx + gy*gy)
		if l > 1e-12 {
			invGrad[c] = 1 / l
		} else {
			invGrad[c] = math.Inf(1)
		}
	}

	size := fb.Width
	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * size
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			edgeDist := math.Inf(1)
			for c := 0; c < 3; c++ {
				b := w0*float64(bary[0][c]) + w1*float64(bary[1][c]) + w2*float64(bary[2][c])
				if d := b * invGrad[c]; d < edgeDist {
					edgeDist = d
				}
			}

			var cr, cg, cb float64
			if edgeDist < st.LineWidth {
				cr, cg, cb = float64(st.Edge[0]), float64(st.Edge[1]), float64(st.Edge[2])
			} else {
				shade := st.shadeAt(z)
				cr = float64(st.Fill[0]) * shade
				cg = float64(st.Fill[1]) * shade
				cb = float64(st.Fill[2]) * shade
			}

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(cr)
			fb.Color[pxIdx+1] = clamp255(cg)
			fb.Color[pxIdx+2] = clamp255(cb)
			fb.Color[pxIdx+3] = 255
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
