package fold

import (
	"math"
	"testing"

	"github.com/kamikit/kami/pkg/geom"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// --- Circle crossing ---

func TestCircleCross(t *testing.T) {
	t.Run("two crossings", func(t *testing.T) {
		pts, err := CircleCross(geom.V(0, 0), 5, geom.V(8, 0), 5)
		if err != nil {
			t.Fatalf("CircleCross: %v", err)
		}
		for _, p := range pts {
			if !approx(p.Distance(geom.V(0, 0)), 5) {
				t.Errorf("point %v not on first circle", p)
			}
			if !approx(p.Distance(geom.V(8, 0)), 5) {
				t.Errorf("point %v not on second circle", p)
			}
		}
		// 3-4-5: crossings at (4, 3) and (4, -3).
		if !approx(pts[0][0], 4) || !approx(math.Abs(pts[0][1]), 3) {
			t.Errorf("crossing = %v, want (4, +-3)", pts[0])
		}
	})

	t.Run("tangent", func(t *testing.T) {
		pts, err := CircleCross(geom.V(0, 0), 1, geom.V(2, 0), 1)
		if err != nil {
			t.Fatalf("CircleCross: %v", err)
		}
		if !approx(pts[0].Distance(pts[1]), 0) {
			t.Errorf("tangent circles should yield coincident points, got %v and %v", pts[0], pts[1])
		}
	})

	tests := []struct {
		name   string
		c1     geom.Vec
		r1     float64
		c2     geom.Vec
		r2     float64
	}{
		{"concentric", geom.V(1, 1), 2, geom.V(1, 1), 3},
		{"too far apart", geom.V(0, 0), 1, geom.V(10, 0), 1},
		{"nested", geom.V(0, 0), 10, geom.V(1, 0), 1},
		{"non-positive radius", geom.V(0, 0), 0, geom.V(1, 0), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CircleCross(tt.c1, tt.r1, tt.c2, tt.r2); err == nil {
				t.Error("expected a hard error")
			}
		})
	}
}

// --- Crease direction ---

func TestCreaseDir(t *testing.T) {
	t.Run("right-angle corner", func(t *testing.T) {
		dir, err := CreaseDir(geom.V(1, 0), geom.V(0, 0), geom.V(0, 1))
		if err != nil {
			t.Fatalf("CreaseDir: %v", err)
		}
		want := geom.V(1, 1).Scale(1 / math.Sqrt2)
		if !approx(dir[0], want[0]) || !approx(dir[1], want[1]) {
			t.Errorf("dir = %v, want %v", dir, want)
		}
	})

	t.Run("straight corner has no bisector", func(t *testing.T) {
		_, err := CreaseDir(geom.V(-1, 0), geom.V(0, 0), geom.V(1, 0))
		if err == nil {
			t.Error("expected a hard error for opposite legs")
		}
	})

	t.Run("degenerate leg", func(t *testing.T) {
		_, err := CreaseDir(geom.V(0, 0), geom.V(0, 0), geom.V(1, 0))
		if err == nil {
			t.Error("expected a hard error for a zero-length leg")
		}
	})
}

// --- Quad splitting ---

func TestQuadSplit(t *testing.T) {
	t.Run("convex quad", func(t *testing.T) {
		tris, err := QuadSplit([4]geom.Vec{
			geom.V(0, 0), geom.V(2, 0), geom.V(2, 2), geom.V(0, 2),
		})
		if err != nil {
			t.Fatalf("QuadSplit: %v", err)
		}
		total := geom.SignedDoubleArea(tris[0].Points()) + geom.SignedDoubleArea(tris[1].Points())
		if !approx(total, 8) {
			t.Errorf("split double area = %v, want 8", total)
		}
	})

	t.Run("concave quad picks the valid diagonal", func(t *testing.T) {
		// Reflex vertex at (1, 1): only the diagonal through it keeps
		// both halves wound the same way.
		q := [4]geom.Vec{
			geom.V(0, 0), geom.V(4, 0), geom.V(1, 1), geom.V(0, 4),
		}
		tris, err := QuadSplit(q)
		if err != nil {
			t.Fatalf("QuadSplit: %v", err)
		}
		o1 := geom.Orientation(tris[0].Points())
		o2 := geom.Orientation(tris[1].Points())
		if o1 == 0 || o1 != o2 {
			t.Errorf("halves wound inconsistently: %d and %d", o1, o2)
		}
	})

	t.Run("degenerate quad", func(t *testing.T) {
		_, err := QuadSplit([4]geom.Vec{
			geom.V(0, 0), geom.V(1, 0), geom.V(2, 0), geom.V(3, 0),
		})
		if err == nil {
			t.Error("expected a hard error for collinear vertices")
		}
	})
}
