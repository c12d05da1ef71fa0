package geom

import (
	"math"
	"sort"
)

// SignedDoubleArea returns twice the signed area of the closed 2D polygon
// with the given vertices. Counter-clockwise winding yields a positive
// result.
func SignedDoubleArea(ps []Vec) float64 {
	var sum float64
	for i, p := range ps {
		q := ps[next(i, len(ps))]
		sum += p[0]*q[1] - q[0]*p[1]
	}
	return sum
}

// Orientation returns the rotational sense of the 2D polygon: +1 for
// counter-clockwise, -1 for clockwise, 0 for a degenerate (zero-area)
// vertex sequence.
func Orientation(ps []Vec) int {
	switch a := SignedDoubleArea(ps); {
	case a > 0:
		return 1
	case a < 0:
		return -1
	default:
		return 0
	}
}

// AngularLess orders 2D vectors by their angle in [0, 2pi) measured from
// the positive x axis. It is a total order: half-planes are compared
// first and the cross-product sign second, which avoids the atan2
// discontinuity at +-pi that a plain angle-difference comparator trips
// over. Vectors along the same ray compare equal (neither is less).
func AngularLess(a, b Vec) bool {
	la, lb := lowerHalf(a), lowerHalf(b)
	if la != lb {
		// Upper half-plane angles lie in [0, pi) and sort first.
		return lb
	}
	return a[0]*b[1]-a[1]*b[0] > 0
}

// lowerHalf reports whether the angle of v lies in [pi, 2pi): below the
// x axis, or exactly along the negative x axis.
func lowerHalf(v Vec) bool {
	return v[1] < 0 || (v[1] == 0 && v[0] < 0)
}

// SortByAngle sorts ps in place by the angle of mapping(p) -
// mapping(origin). A nil mapping is the identity. The caller must have
// exclusive access to ps for the duration of the call; concurrent sorts
// of distinct slices do not contend.
func SortByAngle(ps []Vec, origin Vec, mapping func(Vec) Vec) {
	if mapping == nil {
		mapping = func(v Vec) Vec { return v }
	}
	o := mapping(origin)
	sort.SliceStable(ps, func(i, j int) bool {
		return AngularLess(mapping(ps[i]).Sub(o), mapping(ps[j]).Sub(o))
	})
}

// normalizeAngle maps an angle into [0, 2pi).
func normalizeAngle(t float64) float64 {
	t = math.Mod(t, 2*math.Pi)
	if t < 0 {
		t += 2 * math.Pi
	}
	return t
}

// InteriorAngle returns the angle at vertex b of the 2D polyline a-b-c,
// swept from the ray b->c to the ray b->a, normalized into [0, 2pi).
// Coincident points degenerate with ErrZeroMagnitude.
func InteriorAngle(a, b, c Vec, eps float64) (float64, error) {
	ta, err := Angle2D(a.Sub(b), eps)
	if err != nil {
		return 0, err
	}
	tc, err := Angle2D(c.Sub(b), eps)
	if err != nil {
		return 0, err
	}
	return normalizeAngle(ta - tc), nil
}

// TurnAngle returns the change of heading at vertex b when walking the 2D
// polyline a-b-c, normalized into [0, 2pi).
func TurnAngle(a, b, c Vec, eps float64) (float64, error) {
	in, err := Angle2D(b.Sub(a), eps)
	if err != nil {
		return 0, err
	}
	out, err := Angle2D(c.Sub(b), eps)
	if err != nil {
		return 0, err
	}
	return normalizeAngle(out - in), nil
}

// TriangleNormal returns the unit normal of the 3D triangle a, b, c
// following the right-hand rule for its winding. A degenerate (zero-area)
// triangle yields ErrZeroMagnitude.
func TriangleNormal(a, b, c Vec, eps float64) (Vec, error) {
	return Unit(b.Sub(a).Cross(c.Sub(b)), eps)
}
