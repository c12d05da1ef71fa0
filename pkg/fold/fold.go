// Package fold provides closed-form constructions used when filling
// holes in a crease pattern: circle-circle intersection, crease
// direction at a vertex, and quadrilateral splitting.
//
// Unlike the geom core, where degeneracy is an expected outcome, the
// inputs here are supposed to be well formed by construction, so invalid
// geometry is a hard error.
package fold

import (
	"fmt"
	"math"

	"github.com/kamikit/kami/pkg/geom"
)

// CircleCross returns the points where two 2D circles intersect. Tangent
// circles yield two coincident points. Concentric circles, circles too
// far apart, and circles nested inside one another are hard errors.
func CircleCross(c1 geom.Vec, r1 float64, c2 geom.Vec, r2 float64) ([2]geom.Vec, error) {
	var out [2]geom.Vec

	if r1 <= 0 || r2 <= 0 {
		return out, fmt.Errorf("fold: circle radius must be positive, got %g and %g", r1, r2)
	}
	d := c1.Distance(c2)
	if d < geom.Epsilon {
		return out, fmt.Errorf("fold: concentric circles at %v have no crossing", c1)
	}
	if d > r1+r2+geom.Epsilon {
		return out, fmt.Errorf("fold: circles %g apart with radii %g and %g do not reach", d, r1, r2)
	}
	if d < math.Abs(r1-r2)-geom.Epsilon {
		return out, fmt.Errorf("fold: circle with radius %g is nested inside the other", math.Min(r1, r2))
	}

	// Distance from c1 to the chord joining the crossings, along the
	// center line.
	a := (d*d + r1*r1 - r2*r2) / (2 * d)
	h2 := r1*r1 - a*a
	if h2 < 0 {
		// Tangent within tolerance.
		h2 = 0
	}
	h := math.Sqrt(h2)

	axis := c2.Sub(c1).Scale(1 / d)
	mid := c1.Add(axis.Scale(a))
	perp := geom.V(-axis[1], axis[0])

	out[0] = mid.Add(perp.Scale(h))
	out[1] = mid.Sub(perp.Scale(h))
	return out, nil
}

// CreaseDir returns the unit direction of the crease leaving vertex b
// that bisects the corner a-b-c. The corner must have two distinct,
// non-opposite legs; anything else is a hard error.
func CreaseDir(a, b, c geom.Vec) (geom.Vec, error) {
	da, err := geom.Direction(b, a, 0)
	if err != nil {
		return nil, fmt.Errorf("fold: corner leg b-a is degenerate: %w", err)
	}
	dc, err := geom.Direction(b, c, 0)
	if err != nil {
		return nil, fmt.Errorf("fold: corner leg b-c is degenerate: %w", err)
	}
	dir, err := geom.Unit(da.Add(dc), 0)
	if err != nil {
		return nil, fmt.Errorf("fold: corner at %v is a straight line, bisector undefined: %w", b, err)
	}
	return dir, nil
}

// QuadSplit splits the quadrilateral a-b-c-d into two triangles along
// whichever diagonal keeps both halves non-degenerate and consistently
// wound. A quadrilateral admitting neither diagonal is a hard error.
func QuadSplit(q [4]geom.Vec) ([2]geom.Triangle, error) {
	// Diagonal a-c first, then b-d.
	splits := [2][2]geom.Triangle{
		{{q[0], q[1], q[2]}, {q[0], q[2], q[3]}},
		{{q[1], q[2], q[3]}, {q[1], q[3], q[0]}},
	}
	for _, pair := range splits {
		o1 := geom.Orientation(pair[0].Points())
		o2 := geom.Orientation(pair[1].Points())
		if o1 != 0 && o1 == o2 {
			return pair, nil
		}
	}
	return [2]geom.Triangle{}, fmt.Errorf("fold: quadrilateral %v admits no diagonal split", q)
}
