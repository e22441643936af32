// Package export writes generated meshes in formats other tools can load.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"shape-tessellator/internal/tess"
)

// Streams is the JSON layout: the three mesh streams as flat arrays, ready
// for buffer upload.
type Streams struct {
	Name          string    `json:"name"`
	PositionWidth int       `json:"position_width"`
	Positions     []float32 `json:"positions"`
	Barycentric   []float32 `json:"barycentric"`
	Indices       []uint32  `json:"indices"`
}

// WriteJSON encodes m as Streams. Positions keep their w component.
func WriteJSON(w io.Writer, name string, m *tess.Mesh) error {
	s := Streams{
		Name:          name,
		PositionWidth: 4,
		Positions:     m.FlatPositions(),
		Barycentric:   m.FlatBarycentric(),
		Indices:       m.Indices,
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("export: json %s: %w", name, err)
	}
	return nil
}

// ReadJSON decodes a Streams document.
func ReadJSON(r io.Reader) (Streams, error) {
	var s Streams
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Streams{}, fmt.Errorf("export: decode json: %w", err)
	}
	return s, nil
}
