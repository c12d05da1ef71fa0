// Package tessellate turns a validated crease pattern into triangle
// meshes using a geometry kernel. One mesh is produced per interior
// face of the pattern, so downstream overlap checks and fold previews
// can address faces individually.
package tessellate

import (
	"fmt"

	"github.com/kamikit/kami/pkg/geom"
	"github.com/kamikit/kami/pkg/kernel"
	"github.com/kamikit/kami/pkg/pattern"
)

// DefaultThickness is the slab thickness used when the caller passes a
// non-positive value. Paper is thin but not zero.
const DefaultThickness = 0.1

// Tessellate extracts the pattern's interior faces and extrudes each
// into a thin sheet solid, returning one mesh per face. The tessellator
// is read-only and never mutates the pattern.
func Tessellate(p *pattern.Pattern, k kernel.Kernel, thickness float64) ([]*kernel.Mesh, error) {
	if p == nil {
		return nil, nil
	}
	if thickness <= 0 {
		thickness = DefaultThickness
	}

	var meshes []*kernel.Mesh
	for i, face := range p.Faces() {
		outline := make([]geom.Vec, len(face))
		for j, idx := range face {
			outline[j] = p.Points[idx]
		}

		solid, err := k.Sheet(outline, thickness)
		if err != nil {
			return nil, fmt.Errorf("tessellate: sheet for face %d: %w", i, err)
		}

		mesh, err := k.ToMesh(solid)
		if err != nil {
			return nil, fmt.Errorf("tessellate: ToMesh failed for face %d: %w", i, err)
		}
		mesh.FaceName = fmt.Sprintf("face-%d", i)
		meshes = append(meshes, mesh)
	}

	return meshes, nil
}

// Collisions reports every pair of meshes whose triangles overlap.
// Pairs are returned as index pairs into the input slice, lower index
// first. Bounding boxes are checked before the pairwise triangle test
// so well-separated sheets cost almost nothing.
func Collisions(meshes []*kernel.Mesh, eps float64) [][2]int {
	type extent struct {
		x, y, z geom.Interval
	}
	extents := make([]extent, len(meshes))
	tris := make([][]geom.Triangle, len(meshes))
	for i, m := range meshes {
		extents[i] = extent{
			x: axisSpan(m, 0),
			y: axisSpan(m, 1),
			z: axisSpan(m, 2),
		}
		tris[i] = shrinkAll(m.Triangles())
	}

	var pairs [][2]int
	for a := 0; a < len(meshes); a++ {
		for b := a + 1; b < len(meshes); b++ {
			if meshes[a].IsEmpty() || meshes[b].IsEmpty() {
				continue
			}
			if !extents[a].x.Overlaps(extents[b].x) ||
				!extents[a].y.Overlaps(extents[b].y) ||
				!extents[a].z.Overlaps(extents[b].z) {
				continue
			}
			if trianglesOverlap(tris[a], tris[b], eps) {
				pairs = append(pairs, [2]int{a, b})
			}
		}
	}
	return pairs
}

// axisSpan returns the extent of the mesh on the given coordinate axis.
func axisSpan(m *kernel.Mesh, axis int) geom.Interval {
	span := geom.Interval{}
	for i := axis; i < len(m.Vertices); i += 3 {
		v := float64(m.Vertices[i])
		if i == axis {
			span = geom.Interval{Lo: v, Hi: v}
			continue
		}
		if v < span.Lo {
			span.Lo = v
		}
		if v > span.Hi {
			span.Hi = v
		}
	}
	return span
}

// shrinkFraction pulls triangle vertices toward their centroid before
// the overlap test. Sheets of edge-adjacent faces share a wall, and
// mere contact along it is not a collision worth reporting.
const shrinkFraction = 1e-3

func shrinkAll(tris []geom.Triangle) []geom.Triangle {
	for i, t := range tris {
		c := t[0].Add(t[1]).Add(t[2]).Scale(1.0 / 3.0)
		for j, v := range t {
			tris[i][j] = c.Lerp(v, 1-shrinkFraction)
		}
	}
	return tris
}

// trianglesOverlap reports whether any triangle of the first set fails
// to separate from any triangle of the second.
func trianglesOverlap(as, bs []geom.Triangle, eps float64) bool {
	for _, ta := range as {
		for _, tb := range bs {
			if !geom.SeparatingAxis(ta, tb, eps).Separated {
				return true
			}
		}
	}
	return false
}
