package mathutil

import "math"

// Vec3 is a point or direction in model space.
type Vec3 [3]float64

// Vec3From32 widens the first three components of p.
func Vec3From32(p []float32) Vec3 {
	return Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }
func (v Vec3) Sub(o Vec3) Vec3 { return v.Add(o.Scale(-1)) }
func (v Vec3) Scale(f float64) Vec3 { return Vec3{f * v[0], f * v[1], f * v[2]} }
func (v Vec3) Dot(o Vec3) float64 { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] }

func (v Vec3) Cross(o Vec3) Vec3 {
	var out Vec3
	for i := range out {
		j, k := (i+1)%3, (i+2)%3
		out[i] = v[j]*o[k] - v[k]*o[j]
	}
	return out
}

func (v Vec3) Len() float64 { return math.Hypot(math.Hypot(v[0], v[1]), v[2]) }

// Normalize returns the unit vector along v, or zero for a near-zero v.
func (v Vec3) Normalize() Vec3 {
	if l := v.Len(); l >= 1e-12 {
		return v.Scale(1 / l)
	}
	return Vec3{}
}

// TriNormal is (b-a)×(c-a): it follows the winding, and its length is
// twice the triangle's area.
func TriNormal(a, b, c Vec3) Vec3 {
	return b.Sub(a).Cross(c.Sub(a))
}

func Centroid(a, b, c Vec3) Vec3 {
	return a.Add(b).Add(c).Scale(1.0 / 3)
}
