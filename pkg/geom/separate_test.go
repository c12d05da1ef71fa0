package geom

import "testing"

func tri3(ps ...[3]float64) Triangle {
	var t Triangle
	for i, p := range ps {
		t[i] = V(p[0], p[1], p[2])
	}
	return t
}

func tri2(ps ...[2]float64) Triangle {
	var t Triangle
	for i, p := range ps {
		t[i] = V(p[0], p[1])
	}
	return t
}

// --- General position ---

func TestSeparatingAxisParallelPlanes(t *testing.T) {
	t1 := tri3([3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{0, 1, 0})
	t2 := tri3([3]float64{0, 0, 5}, [3]float64{1, 0, 5}, [3]float64{0, 1, 5})

	sep := SeparatingAxis(t1, t2, 0)
	if sep.Dim != DimSpace {
		t.Errorf("dim = %v, want space", sep.Dim)
	}
	if !sep.Separated {
		t.Fatal("expected separation")
	}
	// The axis must be parallel to z, pointing from t1 toward t2.
	par, err := Parallel(sep.Axis, V(0, 0, 1), 0)
	if err != nil || !par {
		t.Fatalf("axis = %v, want parallel to [0 0 1] (err %v)", sep.Axis, err)
	}
	if sep.Axis[2] < 0 {
		t.Errorf("axis = %v, should point from t1 toward t2", sep.Axis)
	}
}

func TestSeparatingAxisInterpenetrating(t *testing.T) {
	// Two triangles threaded through each other.
	t1 := tri3([3]float64{-1, 0, 0}, [3]float64{1, 0, 0}, [3]float64{0, 2, 0})
	t2 := tri3([3]float64{0, 1, -1}, [3]float64{0, 1, 1}, [3]float64{0, -2, 0})

	sep := SeparatingAxis(t1, t2, 0)
	if sep.Dim != DimSpace {
		t.Errorf("dim = %v, want space", sep.Dim)
	}
	if sep.Separated {
		t.Errorf("found spurious separating axis %v", sep.Axis)
	}
}

func TestSeparatingAxisSkewDisjoint(t *testing.T) {
	t1 := tri3([3]float64{0, 0, 0}, [3]float64{2, 0, 0}, [3]float64{0, 2, 0})
	t2 := tri3([3]float64{3, 3, 1}, [3]float64{5, 3, 2}, [3]float64{3, 5, 2})

	sep := SeparatingAxis(t1, t2, 0)
	if !sep.Separated {
		t.Fatal("expected separation for disjoint triangles")
	}
	// Whatever axis was found must actually separate the projections.
	if !above(t1.Points(), t2.Points(), sep.Axis, 0) {
		t.Errorf("axis %v does not separate", sep.Axis)
	}
}

// --- Coplanar ---

func TestSeparatingAxisCoplanar(t *testing.T) {
	t.Run("identical triangles overlap", func(t *testing.T) {
		t1 := tri3([3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{0, 1, 0})
		sep := SeparatingAxis(t1, t1, 0)
		if sep.Dim != DimPlane {
			t.Errorf("dim = %v, want plane", sep.Dim)
		}
		if sep.Separated {
			t.Errorf("identical triangles reported separated along %v", sep.Axis)
		}
		// The fallback axis is the shared plane normal.
		if par, err := Parallel(sep.Axis, V(0, 0, 1), 0); err != nil || !par {
			t.Errorf("axis = %v, want the plane normal", sep.Axis)
		}
	})

	t.Run("disjoint in plane", func(t *testing.T) {
		t1 := tri2([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{0, 1})
		t2 := tri2([2]float64{5, 0}, [2]float64{6, 0}, [2]float64{5, 1})
		sep := SeparatingAxis(t1, t2, 0)
		if sep.Dim != DimPlane {
			t.Errorf("dim = %v, want plane", sep.Dim)
		}
		if !sep.Separated {
			t.Fatal("expected separation")
		}
		if !above(t1.Points(), t2.Points(), sep.Axis, 0) {
			t.Errorf("axis %v does not separate", sep.Axis)
		}
	})

	t.Run("overlapping in plane", func(t *testing.T) {
		t1 := tri2([2]float64{0, 0}, [2]float64{4, 0}, [2]float64{0, 4})
		t2 := tri2([2]float64{1, 1}, [2]float64{2, 1}, [2]float64{1, 2})
		sep := SeparatingAxis(t1, t2, 0)
		if sep.Separated {
			t.Errorf("nested triangles reported separated along %v", sep.Axis)
		}
	})

	t.Run("touching edge to edge", func(t *testing.T) {
		// Sharing the segment x=1 within tolerance: projections touch,
		// so no axis separates strictly beyond epsilon.
		t1 := tri2([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{0, 1})
		t2 := tri2([2]float64{1, 0}, [2]float64{2, 0}, [2]float64{1, 1})
		sep := SeparatingAxis(t1, t2, 0)
		if sep.Separated {
			t.Errorf("touching triangles reported separated along %v", sep.Axis)
		}
	})
}

// --- Degenerate configurations ---

func TestSeparatingAxisDegenerate(t *testing.T) {
	t.Run("all vertices coincide", func(t *testing.T) {
		p := [3]float64{1, 2, 3}
		t1 := tri3(p, p, p)
		sep := SeparatingAxis(t1, t1, 0)
		if sep.Dim != DimPoint {
			t.Errorf("dim = %v, want point", sep.Dim)
		}
		if !sep.Separated {
			t.Error("point configuration should be trivially separated")
		}
	})

	t.Run("collinear configuration", func(t *testing.T) {
		t1 := tri3([3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{2, 0, 0})
		t2 := tri3([3]float64{3, 0, 0}, [3]float64{4, 0, 0}, [3]float64{5, 0, 0})
		sep := SeparatingAxis(t1, t2, 0)
		if sep.Dim != DimLine {
			t.Errorf("dim = %v, want line", sep.Dim)
		}
		if !sep.Separated {
			t.Error("line configuration should be trivially separated")
		}
		if par, err := Parallel(sep.Axis, V(1, 0, 0), 0); err != nil || !par {
			t.Errorf("axis = %v, want the line direction", sep.Axis)
		}
	})
}

// --- Projection helper ---

func TestAbove(t *testing.T) {
	ps := []Vec{V(0, 0, 0), V(1, 0, 0)}
	qs := []Vec{V(0, 0, 5), V(1, 0, 5)}
	z := V(0, 0, 1)

	if !above(ps, qs, z, 0) {
		t.Error("qs should be above ps along z")
	}
	if above(qs, ps, z, 0) {
		t.Error("ps should not be above qs along z")
	}
	// Separation below epsilon does not count.
	near := []Vec{V(0, 0, 1e-9)}
	if above(ps, near, z, 0) {
		t.Error("sub-epsilon separation should not count")
	}
}

func TestSeparatingAxisUnitResult(t *testing.T) {
	t1 := tri3([3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{0, 1, 0})
	t2 := tri3([3]float64{0, 0, 5}, [3]float64{1, 0, 5}, [3]float64{0, 1, 5})
	sep := SeparatingAxis(t1, t2, 0)
	if !sep.Separated {
		t.Fatal("expected separation")
	}
	if !approx(sep.Axis.Length(), 1) {
		t.Errorf("axis length = %v, want 1", sep.Axis.Length())
	}
}
