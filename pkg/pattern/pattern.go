// Package pattern defines the crease-pattern model for Kami: a set of 2D
// points joined by creases, with tiered validation and planar face
// extraction. A pattern is the output of Lisp evaluation and the input to
// tessellation; it is never mutated once handed off.
package pattern

import (
	"fmt"

	"github.com/kamikit/kami/pkg/geom"
)

// CreaseKind enumerates crease assignments.
type CreaseKind int

const (
	Border   CreaseKind = iota // sheet boundary
	Mountain                   // folds away from the viewer
	Valley                     // folds toward the viewer
	Flat                       // auxiliary, unfolded
)

func (k CreaseKind) String() string {
	switch k {
	case Border:
		return "border"
	case Mountain:
		return "mountain"
	case Valley:
		return "valley"
	case Flat:
		return "flat"
	default:
		return fmt.Sprintf("CreaseKind(%d)", int(k))
	}
}

// Crease joins two points of the pattern by index.
type Crease struct {
	A    int        `json:"a"`
	B    int        `json:"b"`
	Kind CreaseKind `json:"kind"`
}

// Pattern is a crease pattern: 2D points and the creases joining them.
type Pattern struct {
	Points  []geom.Vec `json:"points"`
	Creases []Crease   `json:"creases"`
}

// New creates an empty pattern.
func New() *Pattern {
	return &Pattern{}
}

// AddPoint registers a 2D point and returns its index. A point within
// Epsilon of an existing one is merged into it, so repeated constructions
// of the same corner share a vertex.
func (p *Pattern) AddPoint(x, y float64) int {
	pt := geom.V(x, y)
	for i, q := range p.Points {
		if q.DistanceSquared(pt) < geom.Epsilon {
			return i
		}
	}
	p.Points = append(p.Points, pt)
	return len(p.Points) - 1
}

// AddCrease joins two point indices and returns the crease index. It
// does not check the indices; Validate catches bad references.
func (p *Pattern) AddCrease(a, b int, kind CreaseKind) int {
	p.Creases = append(p.Creases, Crease{A: a, B: b, Kind: kind})
	return len(p.Creases) - 1
}

// Segment returns the crease as a bounded 2D segment.
func (p *Pattern) Segment(c Crease) geom.Line {
	return geom.Line{A: p.Points[c.A], B: p.Points[c.B]}
}

// Degree returns the number of creases incident on point i.
func (p *Pattern) Degree(i int) int {
	n := 0
	for _, c := range p.Creases {
		if c.A == i || c.B == i {
			n++
		}
	}
	return n
}
