package mathutil

import "math"

// Mat3 is a 3×3 matrix held as three row vectors.
type Mat3 [3]Vec3

func Mat3Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// MulVec3 returns M × v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v)}
}

// Mul returns M × n.
func (m Mat3) Mul(n Mat3) Mat3 {
	cols := n.Transpose()
	var out Mat3
	for r := range out {
		out[r] = cols.MulVec3(m[r])
	}
	return out
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Det is the scalar triple product of the rows.
func (m Mat3) Det() float64 {
	return m[0].Dot(m[1].Cross(m[2]))
}

// Rotation returns the right-handed rotation by rad radians about axis
// (Rodrigues' formula). The axis need not be unit length.
func Rotation(axis Vec3, rad float64) Mat3 {
	k := axis.Normalize()
	c, s := math.Cos(rad), math.Sin(rad)
	t := 1 - c
	return Mat3{
		{c + t*k[0]*k[0], t*k[0]*k[1] - s*k[2], t*k[0]*k[2] + s*k[1]},
		{t*k[1]*k[0] + s*k[2], c + t*k[1]*k[1], t*k[1]*k[2] - s*k[0]},
		{t*k[2]*k[0] - s*k[1], t*k[2]*k[1] + s*k[0], c + t*k[2]*k[2]},
	}
}

func RotX(rad float64) Mat3 { return Rotation(Vec3{1, 0, 0}, rad) }
func RotY(rad float64) Mat3 { return Rotation(Vec3{0, 1, 0}, rad) }
func RotZ(rad float64) Mat3 { return Rotation(Vec3{0, 0, 1}, rad) }

func Deg2Rad(deg float64) float64 { return deg / 180 * math.Pi }

// YawPitch spins about +Y by yaw, then tilts about +X by pitch (degrees).
func YawPitch(yawDeg, pitchDeg float64) Mat3 {
	return RotX(Deg2Rad(pitchDeg)).Mul(RotY(Deg2Rad(yawDeg)))
}
