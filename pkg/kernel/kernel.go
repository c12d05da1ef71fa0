// Package kernel defines the abstract geometry kernel interface.
// Implementations (sdfx, manifold) provide solid modeling behind this
// interface. The kernel abstraction allows swapping backends without
// changing the rest of the system.
package kernel

import "github.com/kamikit/kami/pkg/geom"

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Sheet extrudes a closed 2D outline into a thin solid slab.
	// The outline is a simple polygon in the XY plane; the slab spans
	// [0, thickness] on Z.
	Sheet(outline []geom.Vec, thickness float64) (Solid, error)

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
