package tess

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned for a shape kind outside the supported set.
var ErrUnknownKind = errors.New("tess: unknown shape kind")

// Kind identifies one of the supported primitives.
type Kind int

const (
	KindCube Kind = iota
	KindCylinder
	KindCone
	KindSphere
)

// Kinds lists every supported primitive in declaration order.
var Kinds = []Kind{KindCube, KindCylinder, KindCone, KindSphere}

var kindNames = [...]string{
	KindCube:     "cube",
	KindCylinder: "cylinder",
	KindCone:     "cone",
	KindSphere:   "sphere",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a case-insensitive name ("cube", "cylinder", "cone",
// "sphere") to its Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Generate builds a mesh of the given kind. a and b are the kind's two
// parameters: subdivisions (b unused) for a cube, radial and height
// divisions for a cylinder or cone, slices and stacks for a sphere.
func Generate(kind Kind, a, b int) (*Mesh, error) {
	switch kind {
	case KindCube:
		return Cube(a), nil
	case KindCylinder:
		return Cylinder(a, b), nil
	case KindCone:
		return Cone(a, b), nil
	case KindSphere:
		return Sphere(a, b), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
}

// ExpectedTriangles returns the triangle count Generate produces for the
// given parameters, after clamping.
func ExpectedTriangles(kind Kind, a, b int) int {
	switch kind {
	case KindCube:
		n := max(a, 1)
		return 6 * n * n * 2
	case KindCylinder:
		r, h := clampDivisions(a, b)
		return r*h*2 + 2*r
	case KindCone:
		r, h := clampDivisions(a, b)
		return r*h*2 + r
	case KindSphere:
		s, t := max(a, minSphereDivisions), max(b, minSphereDivisions)
		return s*(t-2)*2 + 2*s
	}
	return 0
}
