package tess

import "math"

const (
	radius  = 0.5
	yTop    = 0.5
	yBottom = -0.5

	minRadial = 3
	minHeight = 1
)

// clampDivisions applies the radial and height floors shared by the
// cylinder and the cone.
func clampDivisions(radial, height int) (int, int) {
	return max(radial, minRadial), max(height, minHeight)
}

// ringPoint returns the point at angle theta on a horizontal circle of
// radius r at height y.
func ringPoint(r, theta, y float64) [3]float64 {
	return [3]float64{r * math.Cos(theta), y, r * math.Sin(theta)}
}

// Cylinder returns a closed unit cylinder of radius 0.5 spanning y in
// [-0.5, 0.5]. The side is divided into radialDivisions wedges and
// heightDivisions bands; both caps are triangle fans. Radial divisions
// below 3 and height divisions below 1 are raised to those floors.
func Cylinder(radialDivisions, heightDivisions int) *Mesh {
	radialDivisions, heightDivisions = clampDivisions(radialDivisions, heightDivisions)

	dTheta := 2 * math.Pi / float64(radialDivisions)
	dy := (yTop - yBottom) / float64(heightDivisions)

	b := newBuilder(radialDivisions*heightDivisions*2 + 2*radialDivisions)

	// Side
	for i := 0; i < radialDivisions; i++ {
		theta0 := float64(i) * dTheta
		theta1 := float64(i+1) * dTheta
		for j := 0; j < heightDivisions; j++ {
			y0 := yBottom + float64(j)*dy
			y1 := yBottom + float64(j+1)*dy
			if j == heightDivisions-1 {
				y1 = yTop
			}
			b.emit(ringPoint(radius, theta0, y1), ringPoint(radius, theta1, y1), ringPoint(radius, theta1, y0))
			b.emit(ringPoint(radius, theta0, y1), ringPoint(radius, theta1, y0), ringPoint(radius, theta0, y0))
		}
	}

	// Top cap, facing +Y
	top := [3]float64{0, yTop, 0}
	for i := 0; i < radialDivisions; i++ {
		theta0 := float64(i) * dTheta
		theta1 := float64(i+1) * dTheta
		b.emit(top, ringPoint(radius, theta1, yTop), ringPoint(radius, theta0, yTop))
	}

	bottomCap(b, radialDivisions, dTheta)
	return b.m
}

// bottomCap emits a fan at y = -0.5 facing -Y.
func bottomCap(b *builder, radialDivisions int, dTheta float64) {
	bottom := [3]float64{0, yBottom, 0}
	for i := 0; i < radialDivisions; i++ {
		theta0 := float64(i) * dTheta
		theta1 := float64(i+1) * dTheta
		b.emit(bottom, ringPoint(radius, theta0, yBottom), ringPoint(radius, theta1, yBottom))
	}
}
