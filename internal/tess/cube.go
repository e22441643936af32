package tess

// Cube returns a unit cube centered at the origin, spanning [-0.5, 0.5] on
// every axis. Each face is divided into subdivisions×subdivisions quads.
// Subdivisions below 1 are raised to 1.
func Cube(subdivisions int) *Mesh {
	if subdivisions < 1 {
		subdivisions = 1
	}
	const s = 0.5
	step := 1.0 / float64(subdivisions)

	b := newBuilder(6 * subdivisions * subdivisions * 2)

	// Corner order per face is BL, BR, TR, TL as seen from outside,
	// so both triangles wind counter-clockwise around the outward normal.
	for i := 0; i < subdivisions; i++ {
		for j := 0; j < subdivisions; j++ {
			u0 := -s + float64(i)*step
			u1 := u0 + step
			v0 := -s + float64(j)*step
			v1 := v0 + step
			if i == subdivisions-1 {
				u1 = s
			}
			if j == subdivisions-1 {
				v1 = s
			}

			// +Z
			b.quad([3]float64{u0, v0, s}, [3]float64{u1, v0, s}, [3]float64{u1, v1, s}, [3]float64{u0, v1, s})
			// -Z
			b.quad([3]float64{u1, v0, -s}, [3]float64{u0, v0, -s}, [3]float64{u0, v1, -s}, [3]float64{u1, v1, -s})
			// +X
			b.quad([3]float64{s, v0, u1}, [3]float64{s, v0, u0}, [3]float64{s, v1, u0}, [3]float64{s, v1, u1})
			// -X
			b.quad([3]float64{-s, v0, u0}, [3]float64{-s, v0, u1}, [3]float64{-s, v1, u1}, [3]float64{-s, v1, u0})
			// +Y
			b.quad([3]float64{u0, s, v1}, [3]float64{u1, s, v1}, [3]float64{u1, s, v0}, [3]float64{u0, s, v0})
			// -Y
			b.quad([3]float64{u0, -s, v0}, [3]float64{u1, -s, v0}, [3]float64{u1, -s, v1}, [3]float64{u0, -s, v1})
		}
	}
	return b.m
}
