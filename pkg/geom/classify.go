package geom

import "fmt"

// Dimension is the intrinsic dimension of a point set.
type Dimension int

const (
	DimPoint Dimension = iota // all points coincide
	DimLine                   // collinear
	DimPlane                  // coplanar, not collinear
	DimSpace                  // general position in 3-space
)

func (d Dimension) String() string {
	switch d {
	case DimPoint:
		return "point"
	case DimLine:
		return "line"
	case DimPlane:
		return "plane"
	case DimSpace:
		return "space"
	default:
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
}

// Classification pairs an intrinsic dimension with a representative
// vector: the base point for DimPoint, a unit direction for DimLine, a
// unit plane normal for DimPlane, and nil for DimSpace, where no single
// vector characterizes the set.
type Classification struct {
	Dim Dimension
	Rep Vec
}

// Classify determines the intrinsic dimension of a non-empty point set of
// dimension at most 3. Points of lower dimension are embedded in 3-space,
// so representatives are always 3D.
//
// The algorithm anchors on the first point and the first qualifying
// direction: it is a greedy consistency check rather than a least-squares
// fit, exact for exact inputs and epsilon-bounded for noisy ones. The
// anchoring is a deterministic tie-break convention, not a geometric
// necessity, so reordering the input can change the representative (but
// not the dimension) for exact inputs.
func Classify(points []Vec, eps float64) Classification {
	eps = epsOrDefault(eps)

	p0 := lift3(points[0])
	var dirs []Vec
	for _, p := range points[1:] {
		p = lift3(p)
		if p.DistanceSquared(p0) <= eps {
			continue
		}
		d, err := Unit(p.Sub(p0), eps)
		if err != nil {
			continue
		}
		dirs = append(dirs, d)
	}
	if len(dirs) == 0 {
		return Classification{Dim: DimPoint, Rep: p0}
	}

	// Collect plane normals from every direction not parallel to the
	// anchor direction.
	d0 := dirs[0]
	var normals []Vec
	for _, d := range dirs[1:] {
		if par, err := Parallel(d, d0, eps); err == nil && par {
			continue
		}
		n, err := Unit(d.Cross(d0), eps)
		if err != nil {
			continue
		}
		normals = append(normals, n)
	}
	if len(normals) == 0 {
		return Classification{Dim: DimLine, Rep: d0}
	}

	n0 := normals[0]
	for _, n := range normals[1:] {
		if par, err := Parallel(n, n0, eps); err != nil || !par {
			return Classification{Dim: DimSpace}
		}
	}
	return Classification{Dim: DimPlane, Rep: n0}
}
