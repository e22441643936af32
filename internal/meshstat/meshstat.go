// Package meshstat summarizes the geometry of a generated mesh: counts,
// extents, surface area, and a face-orientation audit.
package meshstat

import (
	"fmt"
	"io"

	"shape-tessellator/internal/mathutil"
	"shape-tessellator/internal/tess"
)

// Directions in the order reports print them.
var Directions = []string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}

// Below this area a triangle counts as degenerate and is left out of the
// direction and orientation tallies.
const degenerateArea = 1e-9

// Report holds summary statistics for one mesh.
type Report struct {
	Vertices   int
	Triangles  int
	Min, Max   mathutil.Vec3
	Area       float64
	AreaByDir  map[string]float64
	Degenerate int
	// Inward counts triangles whose normal points toward the origin.
	// Meaningful for convex meshes containing the origin.
	Inward int
}

// Analyze computes a Report for m.
func Analyze(m *tess.Mesh) Report {
	mn, mx := m.Bounds()
	r := Report{
		Vertices:  m.NumVertices(),
		Triangles: m.NumTriangles(),
		Min:       mathutil.Vec3From32(mn[:]),
		Max:       mathutil.Vec3From32(mx[:]),
		AreaByDir: make(map[string]float64, len(Directions)),
	}

	for i := 0; i < r.Triangles; i++ {
		tri := m.Triangle(i)
		a := mathutil.Vec3From32(tri[0][:])
		b := mathutil.Vec3From32(tri[1][:])
		c := mathutil.Vec3From32(tri[2][:])

		n := mathutil.TriNormal(a, b, c)
		area := 0.5 * n.Len()
		r.Area += area
		if area < degenerateArea {
			r.Degenerate++
			continue
		}
		r.AreaByDir[dominantDir(n)] += area
		if n.Dot(mathutil.Centroid(a, b, c)) < 0 {
			r.Inward++
		}
	}
	return r
}

// dominantDir names the axis direction with the largest normal component.
func dominantDir(n mathutil.Vec3) string {
	axis := 0
	for k := 1; k < 3; k++ {
		if abs(n[k]) > abs(n[axis]) {
			axis = k
		}
	}
	name := [3]string{"X", "Y", "Z"}[axis]
	if n[axis] < 0 {
		return "-" + name
	}
	return "+" + name
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Size returns the bounding box extents.
func (r Report) Size() mathutil.Vec3 {
	return r.Max.Sub(r.Min)
}

// Write prints the report in the inspect tool's layout.
func (r Report) Write(w io.Writer) error {
	sz := r.Size()
	if _, err := fmt.Fprintf(w, "  verts=%d, tris=%d, degenerate=%d, inward=%d\n",
		r.Vertices, r.Triangles, r.Degenerate, r.Inward); err != nil {
		return err
	}
	fmt.Fprintf(w, "    BBox: X[%.3f, %.3f] Y[%.3f, %.3f] Z[%.3f, %.3f]\n",
		r.Min[0], r.Max[0], r.Min[1], r.Max[1], r.Min[2], r.Max[2])
	fmt.Fprintf(w, "    Size: %.3f x %.3f x %.3f\n", sz[0], sz[1], sz[2])
	fmt.Fprintf(w, "    Area: %.4f\n", r.Area)
	fmt.Fprintln(w, "    --- Surface area by direction ---")
	for _, d := range Directions {
		if _, err := fmt.Fprintf(w, "    %s: %.4f\n", d, r.AreaByDir[d]); err != nil {
			return err
		}
	}
	return nil
}
