package viewmatrix

import (
	"math"

	"shape-tessellator/internal/mathutil"
	"shape-tessellator/internal/tess"
)

// View describes an orthographic snapshot camera.
type View struct {
	Yaw   float64 // degrees around +Y
	Pitch float64 // degrees around +X, positive shows the top
}

// DefaultView is the three-quarter view used when a shape sets no angles.
func DefaultView() View {
	return View{Yaw: mathutil.DefaultYaw, Pitch: mathutil.DefaultPitch}
}

// Matrix returns the view rotation.
func (v View) Matrix() mathutil.Mat3 {
	return mathutil.YawPitch(v.Yaw, v.Pitch)
}

// Projection holds screen-space coordinates for every mesh vertex.
// X grows right, Y grows down, Z grows toward the viewer.
type Projection struct {
	PX, PY, PZ []float64
}

// ProjectMesh rotates the mesh by R and fits its rotated X/Y extent into a
// renderSize square, leaving margin pixels on every side.
func ProjectMesh(m *tess.Mesh, R mathutil.Mat3, renderSize, margin int) Projection {
	n := m.NumVertices()
	rotated := make([]mathutil.Vec3, n)

	allMin := mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	allMax := mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i, p := range m.Positions {
		t := R.MulVec3(mathutil.Vec3From32(p[:]))
		rotated[i] = t
		for k := 0; k < 3; k++ {
			allMin[k] = math.Min(allMin[k], t[k])
			allMax[k] = math.Max(allMax[k], t[k])
		}
	}

	center := allMin.Add(allMax).Scale(0.5)
	span := math.Max(allMax[0]-allMin[0], allMax[1]-allMin[1])
	if span < 0.001 {
		span = 0.001
	}
	scale := float64(renderSize-2*margin) / span
	half := float64(renderSize) / 2

	pr := Projection{
		PX: make([]float64, n),
		PY: make([]float64, n),
		PZ: make([]float64, n),
	}
	for i, t := range rotated {
		pr.PX[i] = (t[0]-center[0])*scale + half
		pr.PY[i] = -(t[1]-center[1])*scale + half
		pr.PZ[i] = t[2]
	}
	return pr
}
