package tess

import "math"

// coneRadius is the side radius at height y: 0.5 at the base, 0 at the apex.
func coneRadius(y float64) float64 {
	return radius * (1 - (y-yBottom)/(yTop-yBottom))
}

// Cone returns a unit cone with a base of radius 0.5 at y = -0.5 and its
// apex at y = 0.5. The side is divided into radialDivisions wedges and
// heightDivisions bands; the base is a triangle fan. Divisions are clamped
// as for Cylinder.
//
// The band touching the apex has two coincident upper corners, so its first
// triangle per wedge has zero area. It is emitted anyway to keep the
// triangle count regular.
func Cone(radialDivisions, heightDivisions int) *Mesh {
	radialDivisions, heightDivisions = clampDivisions(radialDivisions, heightDivisions)

	dTheta := 2 * math.Pi / float64(radialDivisions)
	dy := (yTop - yBottom) / float64(heightDivisions)

	b := newBuilder(radialDivisions*heightDivisions*2 + radialDivisions)

	for i := 0; i < radialDivisions; i++ {
		theta0 := float64(i) * dTheta
		theta1 := float64(i+1) * dTheta
		for j := 0; j < heightDivisions; j++ {
			y0 := yBottom + float64(j)*dy
			y1 := yBottom + float64(j+1)*dy
			if j == heightDivisions-1 {
				y1 = yTop
			}
			r0 := coneRadius(y0)
			r1 := coneRadius(y1)

			p00 := ringPoint(r0, theta0, y0)
			p01 := ringPoint(r0, theta1, y0)
			p10 := ringPoint(r1, theta0, y1)
			p11 := ringPoint(r1, theta1, y1)

			b.emit(p00, p10, p11)
			b.emit(p00, p11, p01)
		}
	}

	bottomCap(b, radialDivisions, dTheta)
	return b.m
}
