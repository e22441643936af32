package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"shape-tessellator/internal/tess"
)

// WriteOBJ writes m as a Wavefront OBJ object: one "v" line per emitted
// vertex and one "f" line per triangle. OBJ indices are 1-based.
func WriteOBJ(w io.Writer, name string, m *tess.Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", m.NumVertices(), m.NumTriangles())
	fmt.Fprintf(bw, "o %s\n", name)

	buf := make([]byte, 0, 64)
	for _, p := range m.Positions {
		buf = append(buf[:0], 'v')
		for k := 0; k < 3; k++ {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, float64(p[k]), 'g', -1, 32)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		fmt.Fprintf(bw, "f %d %d %d\n", m.Indices[i]+1, m.Indices[i+1]+1, m.Indices[i+2]+1)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: obj %s: %w", name, err)
	}
	return nil
}
