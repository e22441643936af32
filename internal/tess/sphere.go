package tess

import "math"

const minSphereDivisions = 10

// Sphere returns a UV sphere of radius 0.5 centered at the origin, divided
// into slices wedges around Y and stacks bands from the north pole (+Y) to
// the south pole (-Y). Both counts are raised to at least 10.
//
// The first and last bands are fans closing on the poles, one triangle per
// wedge; every other band contributes two triangles per wedge.
func Sphere(slices, stacks int) *Mesh {
	slices = max(slices, minSphereDivisions)
	stacks = max(stacks, minSphereDivisions)

	north := [3]float64{0, radius, 0}
	south := [3]float64{0, -radius, 0}

	b := newBuilder(slices*(stacks-2)*2 + 2*slices)

	for i := 0; i < stacks; i++ {
		phi0 := math.Pi * float64(i) / float64(stacks)
		phi1 := math.Pi * float64(i+1) / float64(stacks)

		y0, r0 := radius*math.Cos(phi0), radius*math.Sin(phi0)
		y1, r1 := radius*math.Cos(phi1), radius*math.Sin(phi1)

		for j := 0; j < slices; j++ {
			theta0 := 2 * math.Pi * float64(j) / float64(slices)
			theta1 := 2 * math.Pi * float64(j+1) / float64(slices)

			switch i {
			case 0:
				b.emit(ringPoint(r1, theta0, y1), north, ringPoint(r1, theta1, y1))
			case stacks - 1:
				b.emit(ringPoint(r0, theta0, y0), ringPoint(r0, theta1, y0), south)
			default:
				p00 := ringPoint(r0, theta0, y0)
				p01 := ringPoint(r0, theta1, y0)
				p10 := ringPoint(r1, theta0, y1)
				p11 := ringPoint(r1, theta1, y1)
				b.emit(p00, p11, p10)
				b.emit(p00, p01, p11)
			}
		}
	}
	return b.m
}
