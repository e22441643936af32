package raster

// Style controls how the wireframe snapshot colors surfaces and edges.
type Style struct {
	Fill [3]uint8 // surface color nearest the viewer
	Edge [3]uint8 // triangle edge color

	// LineWidth is the edge half-width in pixels, measured in screen space
	// from the interpolated barycentric coordinates.
	LineWidth float64

	// DepthCue darkens the farthest surface by this fraction (0..1).
	DepthCue float64

	// Depth range of the mesh, filled in by the renderer.
	ZMin, ZMax float64
}

// DefaultStyle returns light grey faces with dark blue edges.
func DefaultStyle() Style {
	return Style{
		Fill:      [3]uint8{214, 218, 224},
		Edge:      [3]uint8{30, 52, 96},
		LineWidth: 0.75,
		DepthCue:  0.45,
	}
}

// shadeAt returns the depth-cued fill factor for depth z.
func (s *Style) shadeAt(z float64) float64 {
	span := s.ZMax - s.ZMin
	if span <= 0 {
		return 1
	}
	t := (s.ZMax - z) / span // 0 nearest, 1 farthest
	return 1 - s.DepthCue*t
}
