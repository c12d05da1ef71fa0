package kernel

import "github.com/kamikit/kami/pkg/geom"

// Mesh is a triangle mesh suitable for rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	FaceName string    `json:"faceName"` // which pattern face this came from
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Triangles expands the indexed mesh into explicit triangles for
// geometric queries such as overlap tests.
func (m *Mesh) Triangles() []geom.Triangle {
	tris := make([]geom.Triangle, 0, m.TriangleCount())
	for i := 0; i+2 < len(m.Indices); i += 3 {
		var t geom.Triangle
		for j := 0; j < 3; j++ {
			base := int(m.Indices[i+j]) * 3
			t[j] = geom.V(
				float64(m.Vertices[base]),
				float64(m.Vertices[base+1]),
				float64(m.Vertices[base+2]),
			)
		}
		tris = append(tris, t)
	}
	return tris
}
