// Package geom is the computational-geometry core for Kami. It provides
// dimension-generic vector algebra, 2D polygon orientation, line and
// segment intersection, intrinsic-dimension classification of point sets,
// and a dimension-adaptive separating-axis test between triangles.
//
// Degenerate inputs (zero-length vectors, parallel lines, disjoint
// segments) are reported through sentinel errors so callers can branch on
// the reason without re-deriving it. Mixing vectors of different
// dimensions in one operation is a programming error and panics.
package geom

import (
	"errors"
	"fmt"
	"math"
)

// Epsilon is the default tolerance below which a quantity is treated as
// zero. Every comparison-sensitive operation takes an eps parameter;
// passing a non-positive value selects this default.
const Epsilon = 1e-6

// Sentinel errors naming the reason an operation degenerated.
var (
	// ErrZeroMagnitude reports a vector too short to carry a direction.
	ErrZeroMagnitude = errors.New("geom: zero-magnitude vector")

	// ErrParallel reports lines or directions with no unique crossing.
	ErrParallel = errors.New("geom: parallel")

	// ErrDisjoint reports bounded segments whose carrier lines cross
	// outside one or both segments.
	ErrDisjoint = errors.New("geom: segments do not intersect")
)

// epsOrDefault substitutes Epsilon for non-positive overrides.
func epsOrDefault(eps float64) float64 {
	if eps > 0 {
		return eps
	}
	return Epsilon
}

// next is the cyclic successor index: next(i, 3) walks triangle vertices.
func next(i, n int) int {
	return (i + 1) % n
}

// Vec is a point or direction of fixed dimension. Operations never mutate
// their receiver; every result is a freshly allocated vector. Operands
// must share the receiver's dimension.
type Vec []float64

// V builds a vector from its components.
func V(xs ...float64) Vec {
	v := make(Vec, len(xs))
	copy(v, xs)
	return v
}

// Dim returns the vector's dimension.
func (v Vec) Dim() int { return len(v) }

// Clone returns a copy of v.
func (v Vec) Clone() Vec {
	w := make(Vec, len(v))
	copy(w, v)
	return w
}

func (v Vec) checkDim(w Vec) {
	if len(v) != len(w) {
		panic(fmt.Sprintf("geom: dimension mismatch: %d vs %d", len(v), len(w)))
	}
}

// Add returns v + w.
func (v Vec) Add(w Vec) Vec {
	v.checkDim(w)
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] + w[i]
	}
	return out
}

// Sub returns v - w.
func (v Vec) Sub(w Vec) Vec {
	v.checkDim(w)
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] - w[i]
	}
	return out
}

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] * s
	}
	return out
}

// Dot returns the dot product of v and w.
func (v Vec) Dot(w Vec) float64 {
	v.checkDim(w)
	var sum float64
	for i := range v {
		sum += v[i] * w[i]
	}
	return sum
}

// Cross returns the 3D cross product v x w. Both vectors must have
// dimension 3.
func (v Vec) Cross(w Vec) Vec {
	if len(v) != 3 || len(w) != 3 {
		panic("geom: cross product requires 3D vectors")
	}
	out := make(Vec, 3)
	for i := 0; i < 3; i++ {
		j, k := next(i, 3), next(i+1, 3)
		out[i] = v[j]*w[k] - v[k]*w[j]
	}
	return out
}

// LengthSquared returns the squared magnitude of v.
func (v Vec) LengthSquared() float64 { return v.Dot(v) }

// Length returns the magnitude of v.
func (v Vec) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// Distance returns the distance between points v and w.
func (v Vec) Distance(w Vec) float64 { return w.Sub(v).Length() }

// DistanceSquared returns the squared distance between points v and w.
func (v Vec) DistanceSquared(w Vec) float64 { return w.Sub(v).LengthSquared() }

// Lerp linearly interpolates between v (t=0) and w (t=1).
func (v Vec) Lerp(w Vec, t float64) Vec {
	return v.Scale(1 - t).Add(w.Scale(t))
}

// Unit returns v scaled to magnitude 1. It returns ErrZeroMagnitude when
// the squared magnitude of v is below eps, rather than producing a
// near-zero direction.
func Unit(v Vec, eps float64) (Vec, error) {
	eps = epsOrDefault(eps)
	m2 := v.LengthSquared()
	if m2 < eps {
		return nil, ErrZeroMagnitude
	}
	return v.Scale(1 / math.Sqrt(m2)), nil
}

// Direction returns the unit vector pointing from a to b.
func Direction(a, b Vec, eps float64) (Vec, error) {
	return Unit(b.Sub(a), eps)
}

// AngleBetween returns the angle in radians between a and b. Either input
// degenerating under Unit propagates ErrZeroMagnitude.
func AngleBetween(a, b Vec, eps float64) (float64, error) {
	ua, err := Unit(a, eps)
	if err != nil {
		return 0, err
	}
	ub, err := Unit(b, eps)
	if err != nil {
		return 0, err
	}
	// Clamp against rounding before acos.
	d := ua.Dot(ub)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return math.Acos(d), nil
}

// Parallel reports whether a and b point along the same line, in either
// direction, within eps. Degeneracy of either input under Unit propagates
// as ErrZeroMagnitude.
func Parallel(a, b Vec, eps float64) (bool, error) {
	eps = epsOrDefault(eps)
	ua, err := Unit(a, eps)
	if err != nil {
		return false, err
	}
	ub, err := Unit(b, eps)
	if err != nil {
		return false, err
	}
	return 1-math.Abs(ua.Dot(ub)) < eps, nil
}

// Rotate rotates the 3D vector v about the axis through the origin along
// axis by angle radians, using Rodrigues' formula. The axis need not be
// unit length, but must be unitizable; otherwise ErrZeroMagnitude is
// returned.
func Rotate(v, axis Vec, angle, eps float64) (Vec, error) {
	u, err := Unit(axis, eps)
	if err != nil {
		return nil, err
	}
	cos, sin := math.Cos(angle), math.Sin(angle)
	out := v.Scale(cos)
	out = out.Add(u.Cross(v).Scale(sin))
	out = out.Add(u.Scale(u.Dot(v) * (1 - cos)))
	return out, nil
}

// Angle2D returns the angle of the 2D vector v measured from the positive
// x axis, in (-pi, pi]. It returns ErrZeroMagnitude when the squared
// magnitude of v is below eps.
func Angle2D(v Vec, eps float64) (float64, error) {
	eps = epsOrDefault(eps)
	if v.LengthSquared() < eps {
		return 0, ErrZeroMagnitude
	}
	return math.Atan2(v[1], v[0]), nil
}

// lift3 embeds a vector of dimension at most 3 in 3-space by
// zero-padding. Vectors already 3D are returned as-is.
func lift3(v Vec) Vec {
	if len(v) == 3 {
		return v
	}
	if len(v) > 3 {
		panic(fmt.Sprintf("geom: cannot lift %dD vector to 3D", len(v)))
	}
	out := make(Vec, 3)
	copy(out, v)
	return out
}
