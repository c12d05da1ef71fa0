package geom

// Line is a 2D line or segment through the points A and B, parametrized
// as A + t*(B-A). Whether the parameter is bounded to [0, 1] depends on
// the operation, not the type.
type Line struct {
	A, B Vec
}

// Interval is a pair of reals. The endpoints need not be ordered; every
// operation normalizes internally.
type Interval struct {
	Lo, Hi float64
}

// Normalized returns the interval with Lo <= Hi.
func (iv Interval) Normalized() Interval {
	if iv.Lo > iv.Hi {
		return Interval{Lo: iv.Hi, Hi: iv.Lo}
	}
	return iv
}

// Overlaps reports whether the two intervals share at least one point.
func (iv Interval) Overlaps(other Interval) bool {
	a, b := iv.Normalized(), other.Normalized()
	return a.Lo <= b.Hi && b.Lo <= a.Hi
}

// ParametricIntersect solves for the parameters (s, t) at which the two
// carrier lines coincide: l1.A + s*(l1.B-l1.A) == l2.A + t*(l2.B-l2.A).
//
// The determinant check is exact, not epsilon-tolerant: only a denominator
// of exactly zero (parallel or collinear lines) yields ErrParallel. This
// is intentional and distinct from the epsilon-based degeneracy checks
// elsewhere in the package; the algebraic solve itself is well defined for
// any nonzero determinant.
func ParametricIntersect(l1, l2 Line) (s, t float64, err error) {
	d1 := l1.B.Sub(l1.A)
	d2 := l2.B.Sub(l2.A)
	denom := d1[0]*d2[1] - d1[1]*d2[0]
	if denom == 0 {
		return 0, 0, ErrParallel
	}
	w := l2.A.Sub(l1.A)
	s = (w[0]*d2[1] - w[1]*d2[0]) / denom
	t = (w[0]*d1[1] - w[1]*d1[0]) / denom
	return s, t, nil
}

// SegmentIntersect returns the point where the bounded segments s1 and s2
// cross. Parallel segments yield ErrParallel; carrier lines that cross
// outside either segment yield ErrDisjoint.
func SegmentIntersect(s1, s2 Line) (Vec, error) {
	s, t, err := ParametricIntersect(s1, s2)
	if err != nil {
		return nil, err
	}
	if s < 0 || s > 1 || t < 0 || t > 1 {
		return nil, ErrDisjoint
	}
	return s1.A.Lerp(s1.B, s), nil
}

// LineIntersect returns the point where the unbounded carrier lines of l1
// and l2 cross, or ErrParallel.
func LineIntersect(l1, l2 Line) (Vec, error) {
	s, _, err := ParametricIntersect(l1, l2)
	if err != nil {
		return nil, err
	}
	return l1.A.Lerp(l1.B, s), nil
}

// SegmentsCross reports whether the interiors of the two 2D segments
// cross. It first rejects on disjoint x and y bounding intervals, then
// confirms that the endpoints of each segment lie strictly on opposite
// sides of the other segment's carrier line.
//
// The test is unreliable for exactly collinear segments: overlapping
// collinear segments report false. Callers that care about collinear
// overlap must check for it separately.
func SegmentsCross(s1, s2 Line) bool {
	if !spanOf(s1.A[0], s1.B[0]).Overlaps(spanOf(s2.A[0], s2.B[0])) {
		return false
	}
	if !spanOf(s1.A[1], s1.B[1]).Overlaps(spanOf(s2.A[1], s2.B[1])) {
		return false
	}
	return sideOf(s1, s2.A)*sideOf(s1, s2.B) < 0 &&
		sideOf(s2, s1.A)*sideOf(s2, s1.B) < 0
}

// spanOf builds the interval covering a and b.
func spanOf(a, b float64) Interval {
	return Interval{Lo: a, Hi: b}
}

// sideOf returns the orientation sign of point p relative to the directed
// line l: +1 left, -1 right, 0 on the line.
func sideOf(l Line, p Vec) int {
	d := l.B.Sub(l.A)
	w := p.Sub(l.A)
	switch cross := d[0]*w[1] - d[1]*w[0]; {
	case cross > 0:
		return 1
	case cross < 0:
		return -1
	default:
		return 0
	}
}
