package geom

// Triangle is an ordered triple of same-dimension points. The vertex
// order defines the winding; edges run from each vertex to its cyclic
// successor.
type Triangle [3]Vec

// Points returns the vertices as a slice.
func (t Triangle) Points() []Vec {
	return []Vec{t[0], t[1], t[2]}
}

// Separation reports the outcome of a separating-axis search between two
// triangles.
type Separation struct {
	// Dim is the intrinsic dimension of the combined six-vertex set.
	Dim Dimension

	// Separated reports whether a separating axis was found. When the
	// combined set classifies as a point or a line, the configuration is
	// trivially separated.
	Separated bool

	// Axis is the separating direction when Separated, pointing from the
	// first triangle toward the second. For point or line configurations
	// it is the classifier's representative and carries no separation
	// meaning. When not separated it is the classifier's representative
	// (the shared plane normal for coplanar triangles, nil for general
	// position).
	Axis Vec
}

// SeparatingAxis searches for a direction along which the projections of
// t1 and t2 do not overlap, proving the triangles disjoint. The triangles
// may have dimension 2 or 3; lower dimensions are embedded in 3-space
// before the search, so any returned axis is 3D.
//
// The candidate axes depend on how the combined vertex set classifies.
// Coplanar triangles are scanned edge by edge using in-plane edge
// normals. Triangles in general position use axes of the form
// unit(cross(edge, chord)) where edge runs along one triangle and chord
// runs from the edge's start vertex to every other vertex of either
// triangle; chords within the edge's own triangle contribute the face
// normals, which handle face-parallel separations. This is a deliberate
// simplification of the classical edge-by-edge axis set that is
// sufficient for triangle pairs.
func SeparatingAxis(t1, t2 Triangle, eps float64) Separation {
	eps = epsOrDefault(eps)

	for i := range t1 {
		t1[i] = lift3(t1[i])
		t2[i] = lift3(t2[i])
	}
	pts := append(t1.Points(), t2.Points()...)
	cl := Classify(pts, eps)

	switch cl.Dim {
	case DimPoint, DimLine:
		// Degenerate configurations are defined as trivially separated;
		// the axis is only the classifier's representative.
		return Separation{Dim: cl.Dim, Separated: true, Axis: cl.Rep}

	case DimPlane:
		for _, tri := range [2]Triangle{t1, t2} {
			for i := range tri {
				e, err := Direction(tri[i], tri[next(i, 3)], eps)
				if err != nil {
					continue
				}
				m, err := Unit(e.Cross(cl.Rep), eps)
				if err != nil {
					continue
				}
				if sep, axis := tryAxis(t1, t2, m, eps); sep {
					return Separation{Dim: DimPlane, Separated: true, Axis: axis}
				}
			}
		}

	case DimSpace:
		for _, pair := range [2][2]Triangle{{t1, t2}, {t2, t1}} {
			x1 := pair[0]
			for i := range x1 {
				p := x1[i]
				e1 := x1[next(i, 3)].Sub(p)
				if e1.LengthSquared() < eps {
					continue
				}
				for _, q := range pts {
					e2 := q.Sub(p)
					if e2.LengthSquared() < eps {
						continue
					}
					if par, err := Parallel(e1, e2, eps); err != nil || par {
						continue
					}
					m, err := Unit(e1.Cross(e2), eps)
					if err != nil {
						continue
					}
					if sep, axis := tryAxis(t1, t2, m, eps); sep {
						return Separation{Dim: DimSpace, Separated: true, Axis: axis}
					}
				}
			}
		}
	}

	// Every candidate axis exhausted: the triangles intersect or touch.
	return Separation{Dim: cl.Dim, Separated: false, Axis: cl.Rep}
}

// tryAxis tests the candidate axis in both directions, returning the
// orientation that points from t1 toward t2 when it separates.
func tryAxis(t1, t2 Triangle, m Vec, eps float64) (bool, Vec) {
	if above(t1.Points(), t2.Points(), m, eps) {
		return true, m
	}
	if above(t2.Points(), t1.Points(), m, eps) {
		return true, m.Scale(-1)
	}
	return false, nil
}

// above reports whether qs lies strictly beyond ps along axis: the
// smallest projection of qs must exceed the largest projection of ps by
// more than eps.
func above(ps, qs []Vec, axis Vec, eps float64) bool {
	eps = epsOrDefault(eps)
	maxP := ps[0].Dot(axis)
	for _, p := range ps[1:] {
		if d := p.Dot(axis); d > maxP {
			maxP = d
		}
	}
	minQ := qs[0].Dot(axis)
	for _, q := range qs[1:] {
		if d := q.Dot(axis); d < minQ {
			minQ = d
		}
	}
	return minQ-maxP > eps
}
