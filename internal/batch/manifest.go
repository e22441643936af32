package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one shape in the output manifest.
type ManifestEntry struct {
	Name      string   `json:"name"`
	Kind      string   `json:"kind"`
	A         int      `json:"a"`
	B         int      `json:"b"`
	Triangles int      `json:"triangles"`
	Image     string   `json:"image,omitempty"`
	Exports   []string `json:"exports,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// WriteManifest writes manifest.json describing every result.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Name:      r.Name,
			Kind:      r.Shape.Kind.String(),
			A:         r.Shape.A,
			B:         r.Shape.B,
			Triangles: r.Triangles,
			Image:     r.Image,
			Exports:   r.Exports,
			Error:     r.Error,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
